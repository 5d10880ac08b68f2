package store

import (
	"context"
	"time"

	"gorm.io/gorm/clause"

	"hotel-saas/models"
)

func (s *GormStore) GetRoom(ctx context.Context, hotelID, id string) (*models.Room, error) {
	return first[models.Room](ctx, s.db, hotelID, id)
}

func (s *GormStore) LockRoom(ctx context.Context, hotelID, id string) (*models.Room, error) {
	return lockFirst[models.Room](ctx, s.db, hotelID, id)
}

func (s *GormStore) ListRooms(ctx context.Context, hotelID string) ([]models.Room, error) {
	return list[models.Room](ctx, s.db, hotelID, "room_number ASC")
}

func (s *GormStore) CreateRoom(ctx context.Context, room *models.Room) error {
	return create(ctx, s.db, room)
}

func (s *GormStore) UpdateRoom(ctx context.Context, hotelID, id string, patch models.RoomPatch) (*models.Room, error) {
	return update[models.Room](ctx, s.db, hotelID, id, patch.Columns())
}

func (s *GormStore) DeleteRoom(ctx context.Context, hotelID, id string) error {
	return remove[models.Room](ctx, s.db, hotelID, id)
}

func (s *GormStore) GetGuest(ctx context.Context, hotelID, id string) (*models.Guest, error) {
	return first[models.Guest](ctx, s.db, hotelID, id)
}

func (s *GormStore) ListGuests(ctx context.Context, hotelID string) ([]models.Guest, error) {
	return list[models.Guest](ctx, s.db, hotelID, "created_at DESC")
}

func (s *GormStore) CreateGuest(ctx context.Context, guest *models.Guest) error {
	return create(ctx, s.db, guest)
}

func (s *GormStore) UpdateGuest(ctx context.Context, hotelID, id string, patch models.GuestPatch) (*models.Guest, error) {
	return update[models.Guest](ctx, s.db, hotelID, id, patch.Columns())
}

func (s *GormStore) GetReservation(ctx context.Context, hotelID, id string) (*models.Reservation, error) {
	return first[models.Reservation](ctx, s.db, hotelID, id)
}

func (s *GormStore) ListReservations(ctx context.Context, hotelID string) ([]models.Reservation, error) {
	return list[models.Reservation](ctx, s.db, hotelID, "check_in DESC")
}

// ListReservationsForRoom reads with FOR SHARE so it sees stays committed
// after the surrounding transaction took its snapshot.
func (s *GormStore) ListReservationsForRoom(ctx context.Context, hotelID, roomID string, from, to time.Time) ([]models.Reservation, error) {
	out := []models.Reservation{}
	err := scoped(ctx, s.db, hotelID).
		Clauses(clause.Locking{Strength: "SHARE"}).
		Where("room_id = ? AND check_out > ? AND check_in < ?", roomID, from, to).
		Order("check_in ASC").
		Find(&out).Error
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (s *GormStore) CreateReservation(ctx context.Context, reservation *models.Reservation) error {
	return create(ctx, s.db, reservation)
}

func (s *GormStore) UpdateReservation(ctx context.Context, hotelID, id string, patch models.ReservationPatch) (*models.Reservation, error) {
	return update[models.Reservation](ctx, s.db, hotelID, id, patch.Columns())
}

func (s *GormStore) DeleteReservation(ctx context.Context, hotelID, id string) error {
	return remove[models.Reservation](ctx, s.db, hotelID, id)
}
