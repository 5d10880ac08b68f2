package services

import (
	"context"
	"errors"
	"strings"

	"hotel-saas/models"
	"hotel-saas/store"
)

// HotelService covers a tenant's own settings, its staff accounts and the
// platform-wide hotel management used by super admins.
type HotelService struct {
	Store store.Store
}

func NewHotelService(s store.Store) *HotelService {
	return &HotelService{Store: s}
}

type UserInput struct {
	Name     string
	Email    string
	Password string
	Role     models.Role
}

func (s *HotelService) Get(ctx context.Context, hotelID string) (*models.Hotel, error) {
	return s.Store.GetHotel(ctx, hotelID)
}

func (s *HotelService) Update(ctx context.Context, hotelID string, patch models.HotelPatch) (*models.Hotel, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	return s.Store.UpdateHotel(ctx, hotelID, patch.Columns())
}

func (s *HotelService) ListAll(ctx context.Context) ([]models.Hotel, error) {
	return s.Store.ListHotels(ctx)
}

// UpdatePlatform also lets a super admin change plan and status.
func (s *HotelService) UpdatePlatform(ctx context.Context, hotelID string, patch models.PlatformHotelPatch) (*models.Hotel, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	return s.Store.UpdateHotel(ctx, hotelID, patch.Columns())
}

// Delete removes the hotel together with all of its data.
func (s *HotelService) Delete(ctx context.Context, hotelID string) error {
	return s.Store.DeleteHotel(ctx, hotelID)
}

func (s *HotelService) ListUsers(ctx context.Context, hotelID string) ([]models.User, error) {
	return s.Store.ListUsers(ctx, hotelID)
}

func (s *HotelService) GetUser(ctx context.Context, hotelID, id string) (*models.User, error) {
	return s.Store.GetUser(ctx, hotelID, id)
}

// CreateUser adds a staff account to the hotel. Super admin cannot be
// granted here.
func (s *HotelService) CreateUser(ctx context.Context, hotelID string, in UserInput) (*models.User, error) {
	user := &models.User{
		HotelID: &hotelID,
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.ToLower(strings.TrimSpace(in.Email)),
		Role:    in.Role,
		Active:  true,
	}
	if user.Role == "" {
		user.Role = models.RoleReceptionist
	}
	v := &models.ValidationError{}
	if err := user.Validate(); err != nil {
		v = err.(*models.ValidationError)
	}
	if user.Role == models.RoleSuperAdmin {
		v.Add("role", "cannot be granted to hotel staff")
	}
	if len(in.Password) < 6 {
		v.Add("password", "must be at least 6 characters")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user.Password = hash
	if err := s.Store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *HotelService) UpdateUser(ctx context.Context, hotelID, id string, patch models.UserPatch) (*models.User, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	return s.Store.UpdateUser(ctx, hotelID, id, patch)
}
