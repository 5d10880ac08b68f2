package services

import (
	"context"

	"hotel-saas/models"
	"hotel-saas/store"
)

type GuestService struct {
	Store store.Store
}

func NewGuestService(s store.Store) *GuestService {
	return &GuestService{Store: s}
}

func (s *GuestService) List(ctx context.Context, hotelID string) ([]models.Guest, error) {
	return s.Store.ListGuests(ctx, hotelID)
}

func (s *GuestService) Get(ctx context.Context, hotelID, id string) (*models.Guest, error) {
	return s.Store.GetGuest(ctx, hotelID, id)
}

func (s *GuestService) Create(ctx context.Context, hotelID string, guest *models.Guest) error {
	guest.HotelID = hotelID
	if err := guest.Validate(); err != nil {
		return err
	}
	return s.Store.CreateGuest(ctx, guest)
}

func (s *GuestService) Update(ctx context.Context, hotelID, id string, patch models.GuestPatch) (*models.Guest, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	return s.Store.UpdateGuest(ctx, hotelID, id, patch)
}
