package services

import (
	"fmt"

	"hotel-saas/models"
)

// transitions lists the statuses reachable from each status. checked_out
// and cancelled are terminal.
var transitions = map[models.ReservationStatus][]models.ReservationStatus{
	models.ReservationPending:   {models.ReservationConfirmed, models.ReservationCancelled},
	models.ReservationConfirmed: {models.ReservationCheckedIn, models.ReservationCancelled},
	models.ReservationCheckedIn: {models.ReservationCheckedOut},
}

// CheckTransition returns nil when a reservation may move from one status
// to the other. Re-applying the current status is allowed.
func CheckTransition(from, to models.ReservationStatus) error {
	if from == to {
		return nil
	}
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
}

// roomStatusAfter gives the status a room takes when its reservation
// enters the given status, if any.
func roomStatusAfter(status models.ReservationStatus) (models.RoomStatus, bool) {
	switch status {
	case models.ReservationCheckedIn:
		return models.RoomOccupied, true
	case models.ReservationCheckedOut:
		return models.RoomCleaning, true
	}
	return "", false
}
