package services

import (
	"fmt"
	"time"

	"hotel-saas/models"
)

// overlaps reports whether [aIn, aOut) and [bIn, bOut) share an instant.
// A stay ending on the day another begins does not overlap it.
func overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && bIn.Before(aOut)
}

// ValidateBooking decides whether a stay of roomID over [checkIn, checkOut)
// can be accepted given the reservations already recorded for that room.
// It never touches the store; existing is whatever the caller fetched.
func ValidateBooking(roomID string, checkIn, checkOut time.Time, existing []models.Reservation) error {
	if !checkIn.Before(checkOut) {
		return ErrInvalidRange
	}
	for _, r := range existing {
		if r.RoomID != roomID || !r.Status.Blocking() {
			continue
		}
		if overlaps(checkIn, checkOut, r.CheckIn, r.CheckOut) {
			return fmt.Errorf("%w: reservation %s (%s to %s)", ErrBookingConflict,
				r.ID, r.CheckIn.Format(dateLayout), r.CheckOut.Format(dateLayout))
		}
	}
	return nil
}

const dateLayout = "2006-01-02"
