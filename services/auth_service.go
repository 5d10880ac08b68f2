package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"hotel-saas/models"
	"hotel-saas/store"
)

type AuthService struct {
	Store   store.Store
	Tokens  *TokenService
	Revoker Revoker
	Log     *zap.Logger
}

func NewAuthService(s store.Store, tokens *TokenService, revoker Revoker, log *zap.Logger) *AuthService {
	if revoker == nil {
		revoker = NoopRevoker{}
	}
	return &AuthService{Store: s, Tokens: tokens, Revoker: revoker, Log: log}
}

type RegisterInput struct {
	HotelName string
	Email     string
	Password  string
	Phone     *string
	Address   *string
	Currency  string
}

// LoginResult is returned by Login; Hotel is nil for super admins.
type LoginResult struct {
	Token string
	User  *models.User
	Hotel *models.Hotel
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Register creates a trial hotel and its owner account in one transaction.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.Hotel, *models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = models.DefaultCurrency
	}
	hotel := &models.Hotel{
		Name:     strings.TrimSpace(in.HotelName),
		Email:    email,
		Phone:    in.Phone,
		Address:  in.Address,
		Currency: currency,
		Plan:     models.PlanTrial,
		Status:   models.HotelTrial,
	}
	if err := hotel.Validate(); err != nil {
		return nil, nil, err
	}
	if len(in.Password) < 6 {
		return nil, nil, &models.ValidationError{Fields: []models.FieldError{
			{Field: "password", Message: "must be at least 6 characters"},
		}}
	}
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, nil, err
	}

	var owner *models.User
	err = s.Store.Transaction(ctx, func(tx store.Store) error {
		if _, err := tx.GetHotelByEmail(ctx, email); err == nil {
			return ErrEmailTaken
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}
		if _, err := tx.GetUserByEmail(ctx, email); err == nil {
			return ErrEmailTaken
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}
		if err := tx.CreateHotel(ctx, hotel); err != nil {
			return err
		}
		owner = &models.User{
			HotelID:  &hotel.ID,
			Name:     hotel.Name,
			Email:    email,
			Password: hash,
			Role:     models.RoleOwner,
			Active:   true,
		}
		return tx.CreateUser(ctx, owner)
	})
	if errors.Is(err, store.ErrDuplicate) {
		return nil, nil, ErrEmailTaken
	}
	if err != nil {
		return nil, nil, err
	}
	return hotel, owner, nil
}

// Login checks the password and issues an access token. Unknown email,
// wrong password and deactivated accounts all answer ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.Store.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil || !user.Active {
		return nil, ErrInvalidCredentials
	}

	var hotel *models.Hotel
	if user.HotelID != nil {
		hotel, err = s.Store.GetHotel(ctx, *user.HotelID)
		if err != nil {
			return nil, fmt.Errorf("hotel of user %s: %w", user.ID, err)
		}
	}
	token, _, err := s.Tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: user, Hotel: hotel}, nil
}

// Logout revokes the token for the rest of its lifetime.
func (s *AuthService) Logout(ctx context.Context, claims *Claims) error {
	if claims == nil || claims.ID == "" {
		return ErrInvalidToken
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	return s.Revoker.Revoke(ctx, claims.ID, ttl)
}

// Authenticate parses a bearer token and rejects revoked ones.
func (s *AuthService) Authenticate(ctx context.Context, raw string) (*Claims, error) {
	claims, err := s.Tokens.Parse(raw)
	if err != nil {
		return nil, err
	}
	revoked, err := s.Revoker.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// EnsureSuperAdmin creates the platform account if its email is unused.
func (s *AuthService) EnsureSuperAdmin(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil
	}
	if _, err := s.Store.GetUserByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	admin := &models.User{Name: "Platform Admin", Email: email, Password: hash, Role: models.RoleSuperAdmin, Active: true}
	if err := s.Store.CreateUser(ctx, admin); err != nil {
		return err
	}
	s.Log.Info("super admin account created", zap.String("email", email))
	return nil
}
