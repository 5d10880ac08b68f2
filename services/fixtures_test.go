package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"hotel-saas/models"
	"hotel-saas/store"
)

type fixture struct {
	store *store.MemoryStore
	hotel *models.Hotel
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	s := store.NewMemoryStore()
	return &fixture{store: s, hotel: seedHotel(t, s, "Hotel Montana", "desk@montana.ht")}
}

func seedHotel(t *testing.T, s store.Store, name, email string) *models.Hotel {
	t.Helper()
	h := &models.Hotel{Name: name, Email: email, Currency: "HTG", Plan: models.PlanTrial, Status: models.HotelTrial}
	require.NoError(t, s.CreateHotel(context.Background(), h))
	return h
}

func (f *fixture) room(t *testing.T, number, nightly string) *models.Room {
	t.Helper()
	r := &models.Room{
		HotelID:       f.hotel.ID,
		RoomNumber:    number,
		Type:          "double",
		PricePerNight: dec(nightly),
		Capacity:      2,
		Status:        models.RoomAvailable,
	}
	require.NoError(t, f.store.CreateRoom(context.Background(), r))
	return r
}

func (f *fixture) guest(t *testing.T, name string) *models.Guest {
	t.Helper()
	g := &models.Guest{HotelID: f.hotel.ID, Name: name}
	require.NoError(t, f.store.CreateGuest(context.Background(), g))
	return g
}

func (f *fixture) product(t *testing.T, name, stock, threshold string) *models.Product {
	t.Helper()
	p := &models.Product{
		HotelID:        f.hotel.ID,
		Name:           name,
		Category:       "drinks",
		Unit:           "bottle",
		UnitPrice:      dec("150"),
		CurrentStock:   dec(stock),
		AlertThreshold: dec(threshold),
	}
	require.NoError(t, f.store.CreateProduct(context.Background(), p))
	return p
}

func (f *fixture) staff(t *testing.T, email string, role models.Role) *models.User {
	t.Helper()
	u := &models.User{HotelID: &f.hotel.ID, Name: "Staff", Email: email, Password: "x", Role: role, Active: true}
	require.NoError(t, f.store.CreateUser(context.Background(), u))
	return u
}
