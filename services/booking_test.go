package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-saas/models"
)

func day(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func booking(id, roomID, in, out string, status models.ReservationStatus) models.Reservation {
	r := models.Reservation{RoomID: roomID, CheckIn: day(in), CheckOut: day(out), Status: status}
	r.ID = id
	return r
}

func TestValidateBooking_Overlap(t *testing.T) {
	existing := []models.Reservation{
		booking("r1", "room-101", "2024-01-15", "2024-01-18", models.ReservationConfirmed),
	}

	tests := []struct {
		name     string
		in, out  string
		conflict bool
	}{
		{"overlaps the tail", "2024-01-16", "2024-01-20", true},
		{"overlaps the head", "2024-01-13", "2024-01-16", true},
		{"inside", "2024-01-16", "2024-01-17", true},
		{"covers", "2024-01-10", "2024-01-25", true},
		{"same range", "2024-01-15", "2024-01-18", true},
		{"starts on checkout day", "2024-01-18", "2024-01-20", false},
		{"ends on checkin day", "2024-01-12", "2024-01-15", false},
		{"well after", "2024-01-20", "2024-01-22", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBooking("room-101", day(tt.in), day(tt.out), existing)
			if tt.conflict {
				require.ErrorIs(t, err, ErrBookingConflict)
				assert.Contains(t, err.Error(), "r1")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateBooking_InvalidRange(t *testing.T) {
	assert.ErrorIs(t, ValidateBooking("room-101", day("2024-01-18"), day("2024-01-15"), nil), ErrInvalidRange)
	assert.ErrorIs(t, ValidateBooking("room-101", day("2024-01-15"), day("2024-01-15"), nil), ErrInvalidRange)
}

func TestValidateBooking_IgnoresReleasedAndOtherRooms(t *testing.T) {
	existing := []models.Reservation{
		booking("cancelled", "room-101", "2024-01-15", "2024-01-25", models.ReservationCancelled),
		booking("left", "room-101", "2024-01-15", "2024-01-25", models.ReservationCheckedOut),
		booking("elsewhere", "room-102", "2024-01-15", "2024-01-25", models.ReservationConfirmed),
	}
	assert.NoError(t, ValidateBooking("room-101", day("2024-01-20"), day("2024-01-22"), existing))
}

func TestValidateBooking_PendingAndCheckedInBlock(t *testing.T) {
	for _, status := range []models.ReservationStatus{models.ReservationPending, models.ReservationCheckedIn} {
		existing := []models.Reservation{booking("r1", "room-101", "2024-01-15", "2024-01-18", status)}
		assert.ErrorIs(t, ValidateBooking("room-101", day("2024-01-17"), day("2024-01-19"), existing), ErrBookingConflict, status)
	}
}

func TestStayPrice(t *testing.T) {
	nightly := decimal.NewFromInt(100)

	assert.True(t, StayPrice(nightly, day("2024-01-15"), day("2024-01-18")).Equal(decimal.NewFromInt(300)))

	// A partial day counts as a night.
	in := day("2024-01-15").Add(14 * time.Hour)
	out := day("2024-01-17").Add(11 * time.Hour)
	assert.True(t, StayPrice(nightly, in, out).Equal(decimal.NewFromInt(200)))
}

func TestCheckTransition(t *testing.T) {
	allowed := [][2]models.ReservationStatus{
		{models.ReservationPending, models.ReservationConfirmed},
		{models.ReservationPending, models.ReservationCancelled},
		{models.ReservationConfirmed, models.ReservationCheckedIn},
		{models.ReservationConfirmed, models.ReservationCancelled},
		{models.ReservationCheckedIn, models.ReservationCheckedOut},
		{models.ReservationCancelled, models.ReservationCancelled},
	}
	for _, tr := range allowed {
		assert.NoError(t, CheckTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}

	rejected := [][2]models.ReservationStatus{
		{models.ReservationPending, models.ReservationCheckedIn},
		{models.ReservationCheckedIn, models.ReservationCancelled},
		{models.ReservationCheckedOut, models.ReservationCheckedIn},
		{models.ReservationCancelled, models.ReservationConfirmed},
	}
	for _, tr := range rejected {
		assert.ErrorIs(t, CheckTransition(tr[0], tr[1]), ErrIllegalTransition, "%s -> %s", tr[0], tr[1])
	}
}
