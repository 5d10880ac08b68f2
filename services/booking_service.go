package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"hotel-saas/models"
	"hotel-saas/store"
)

// ReservationService books rooms. Every write that can move a reservation
// in the room calendar runs inside one store transaction holding the room
// row lock, so two overlapping requests for the same room serialise and
// the second one sees the first.
type ReservationService struct {
	Store store.Store
}

func NewReservationService(s store.Store) *ReservationService {
	return &ReservationService{Store: s}
}

type ReservationInput struct {
	RoomID        string
	GuestID       string
	CheckIn       time.Time
	CheckOut      time.Time
	Status        models.ReservationStatus
	TotalAmount   *decimal.Decimal
	PaymentStatus models.PaymentStatus
	CreatedBy     *string
}

func (s *ReservationService) List(ctx context.Context, hotelID string) ([]models.Reservation, error) {
	return s.Store.ListReservations(ctx, hotelID)
}

func (s *ReservationService) Get(ctx context.Context, hotelID, id string) (*models.Reservation, error) {
	return s.Store.GetReservation(ctx, hotelID, id)
}

// Create validates the stay against the room's existing reservations and
// records it. When no total is given the room's nightly price is charged
// for every started night.
func (s *ReservationService) Create(ctx context.Context, hotelID string, in ReservationInput) (*models.Reservation, error) {
	res := &models.Reservation{
		HotelID:       hotelID,
		RoomID:        in.RoomID,
		GuestID:       in.GuestID,
		CheckIn:       in.CheckIn,
		CheckOut:      in.CheckOut,
		Status:        in.Status,
		PaymentStatus: in.PaymentStatus,
		CreatedBy:     in.CreatedBy,
	}
	if res.Status == "" {
		res.Status = models.ReservationPending
	}
	if res.PaymentStatus == "" {
		res.PaymentStatus = models.PaymentPending
	}
	if in.TotalAmount != nil {
		res.TotalAmount = *in.TotalAmount
	}
	if err := res.Validate(); err != nil {
		return nil, err
	}
	if !res.CheckIn.Before(res.CheckOut) {
		return nil, ErrInvalidRange
	}

	err := s.Store.Transaction(ctx, func(tx store.Store) error {
		room, err := tx.LockRoom(ctx, hotelID, res.RoomID)
		if err != nil {
			return fmt.Errorf("room %s: %w", res.RoomID, err)
		}
		if _, err := tx.GetGuest(ctx, hotelID, res.GuestID); err != nil {
			return fmt.Errorf("guest %s: %w", res.GuestID, err)
		}
		existing, err := tx.ListReservationsForRoom(ctx, hotelID, room.ID, res.CheckIn, res.CheckOut)
		if err != nil {
			return err
		}
		if err := ValidateBooking(room.ID, res.CheckIn, res.CheckOut, existing); err != nil {
			return err
		}
		if in.TotalAmount == nil {
			res.TotalAmount = StayPrice(room.PricePerNight, res.CheckIn, res.CheckOut)
		}
		return tx.CreateReservation(ctx, res)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Update applies a patch. Status changes must follow the transition table;
// a change of room or dates is validated again with the reservation itself
// left out of the comparison. Checking in marks the room occupied and
// checking out sends it to cleaning.
func (s *ReservationService) Update(ctx context.Context, hotelID, id string, patch models.ReservationPatch) (*models.Reservation, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	if patch.CheckIn != nil && patch.CheckOut != nil && !patch.CheckIn.Before(*patch.CheckOut) {
		return nil, ErrInvalidRange
	}

	var updated *models.Reservation
	err := s.Store.Transaction(ctx, func(tx store.Store) error {
		current, err := tx.GetReservation(ctx, hotelID, id)
		if err != nil {
			return err
		}

		status := current.Status
		if patch.Status != nil {
			if err := CheckTransition(current.Status, *patch.Status); err != nil {
				return err
			}
			status = *patch.Status
		}
		if patch.GuestID != nil {
			if _, err := tx.GetGuest(ctx, hotelID, *patch.GuestID); err != nil {
				return fmt.Errorf("guest %s: %w", *patch.GuestID, err)
			}
		}

		if patch.ChangesStay() {
			roomID, checkIn, checkOut := current.RoomID, current.CheckIn, current.CheckOut
			if patch.RoomID != nil {
				roomID = *patch.RoomID
			}
			if patch.CheckIn != nil {
				checkIn = *patch.CheckIn
			}
			if patch.CheckOut != nil {
				checkOut = *patch.CheckOut
			}
			if !checkIn.Before(checkOut) {
				return ErrInvalidRange
			}
			if _, err := tx.LockRoom(ctx, hotelID, roomID); err != nil {
				return fmt.Errorf("room %s: %w", roomID, err)
			}
			if status.Blocking() {
				existing, err := tx.ListReservationsForRoom(ctx, hotelID, roomID, checkIn, checkOut)
				if err != nil {
					return err
				}
				if err := ValidateBooking(roomID, checkIn, checkOut, withoutReservation(existing, id)); err != nil {
					return err
				}
			}
		}

		updated, err = tx.UpdateReservation(ctx, hotelID, id, patch)
		if err != nil {
			return err
		}
		if status != current.Status {
			if roomStatus, ok := roomStatusAfter(status); ok {
				_, err := tx.UpdateRoom(ctx, hotelID, updated.RoomID, models.RoomPatch{Status: &roomStatus})
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *ReservationService) Delete(ctx context.Context, hotelID, id string) error {
	return s.Store.DeleteReservation(ctx, hotelID, id)
}

// StayPrice charges the nightly price for every started 24h period.
func StayPrice(nightly decimal.Decimal, checkIn, checkOut time.Time) decimal.Decimal {
	stay := checkOut.Sub(checkIn)
	nights := int64(stay / (24 * time.Hour))
	if stay%(24*time.Hour) != 0 {
		nights++
	}
	return nightly.Mul(decimal.NewFromInt(nights))
}

func withoutReservation(rs []models.Reservation, id string) []models.Reservation {
	out := make([]models.Reservation, 0, len(rs))
	for _, r := range rs {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out
}
