package services

import (
	"context"

	"hotel-saas/models"
	"hotel-saas/store"
)

type RoomService struct {
	Store store.Store
}

func NewRoomService(s store.Store) *RoomService {
	return &RoomService{Store: s}
}

func (s *RoomService) List(ctx context.Context, hotelID string) ([]models.Room, error) {
	return s.Store.ListRooms(ctx, hotelID)
}

func (s *RoomService) Get(ctx context.Context, hotelID, id string) (*models.Room, error) {
	return s.Store.GetRoom(ctx, hotelID, id)
}

func (s *RoomService) Create(ctx context.Context, hotelID string, room *models.Room) error {
	room.HotelID = hotelID
	if room.Status == "" {
		room.Status = models.RoomAvailable
	}
	if err := room.Validate(); err != nil {
		return err
	}
	return s.Store.CreateRoom(ctx, room)
}

func (s *RoomService) Update(ctx context.Context, hotelID, id string, patch models.RoomPatch) (*models.Room, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	return s.Store.UpdateRoom(ctx, hotelID, id, patch)
}

// Delete fails with store.ErrReferenced while reservations point at the room.
func (s *RoomService) Delete(ctx context.Context, hotelID, id string) error {
	return s.Store.DeleteRoom(ctx, hotelID, id)
}
