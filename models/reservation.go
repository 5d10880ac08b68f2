package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReservationStatus string

const (
	ReservationPending    ReservationStatus = "pending"
	ReservationConfirmed  ReservationStatus = "confirmed"
	ReservationCheckedIn  ReservationStatus = "checked_in"
	ReservationCheckedOut ReservationStatus = "checked_out"
	ReservationCancelled  ReservationStatus = "cancelled"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationCheckedIn, ReservationCheckedOut, ReservationCancelled:
		return true
	}
	return false
}

// Blocking reports whether a reservation in this status holds its room.
func (s ReservationStatus) Blocking() bool {
	return s != ReservationCancelled && s != ReservationCheckedOut
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

type Reservation struct {
	Base
	HotelID       string            `gorm:"size:36;not null;index" json:"hotelId"`
	RoomID        string            `gorm:"size:36;not null;index:idx_reservations_room_dates,priority:1" json:"roomId"`
	GuestID       string            `gorm:"size:36;not null;index" json:"guestId"`
	CheckIn       time.Time         `gorm:"not null;index:idx_reservations_room_dates,priority:2" json:"checkIn"`
	CheckOut      time.Time         `gorm:"not null;index:idx_reservations_room_dates,priority:3" json:"checkOut"`
	Status        ReservationStatus `gorm:"size:20;not null;default:pending" json:"status"`
	TotalAmount   decimal.Decimal   `gorm:"type:decimal(10,2);not null" json:"totalAmount"`
	PaymentStatus PaymentStatus     `gorm:"size:20;not null;default:pending" json:"paymentStatus"`
	CreatedBy     *string           `gorm:"size:36" json:"createdBy"`

	Hotel   *Hotel `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Room    *Room  `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
	Guest   *Guest `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
	Creator *User  `gorm:"foreignKey:CreatedBy;constraint:OnDelete:SET NULL" json:"-"`
}

// Validate checks field shape only; the date range and room availability
// are the booking validator's job.
func (r *Reservation) Validate() error {
	v := &ValidationError{}
	v.required("roomId", r.RoomID)
	v.required("guestId", r.GuestID)
	if r.CheckIn.IsZero() {
		v.Add("checkIn", "is required")
	}
	if r.CheckOut.IsZero() {
		v.Add("checkOut", "is required")
	}
	if r.Status != ReservationPending && r.Status != ReservationConfirmed {
		v.Add("status", "a new reservation must be pending or confirmed")
	}
	v.nonNegative("totalAmount", r.TotalAmount)
	if !r.PaymentStatus.Valid() {
		v.Add("paymentStatus", "must be one of pending, completed, failed, refunded")
	}
	return v.Err()
}

type ReservationPatch struct {
	RoomID        *string            `json:"roomId"`
	GuestID       *string            `json:"guestId"`
	CheckIn       *time.Time         `json:"checkIn"`
	CheckOut      *time.Time         `json:"checkOut"`
	Status        *ReservationStatus `json:"status"`
	TotalAmount   *decimal.Decimal   `json:"totalAmount"`
	PaymentStatus *PaymentStatus     `json:"paymentStatus"`
}

// ChangesStay reports whether the patch moves the reservation in the room
// calendar.
func (p ReservationPatch) ChangesStay() bool {
	return p.RoomID != nil || p.CheckIn != nil || p.CheckOut != nil
}

func (p ReservationPatch) Validate() error {
	v := &ValidationError{}
	v.optionalID("roomId", p.RoomID)
	v.optionalID("guestId", p.GuestID)
	if p.Status != nil && !p.Status.Valid() {
		v.Add("status", "is not a known reservation status")
	}
	if p.TotalAmount != nil {
		v.nonNegative("totalAmount", *p.TotalAmount)
	}
	if p.PaymentStatus != nil && !p.PaymentStatus.Valid() {
		v.Add("paymentStatus", "must be one of pending, completed, failed, refunded")
	}
	return v.Err()
}

func (p ReservationPatch) Columns() map[string]any {
	cols := map[string]any{}
	setIf(cols, "room_id", p.RoomID)
	setIf(cols, "guest_id", p.GuestID)
	setIf(cols, "check_in", p.CheckIn)
	setIf(cols, "check_out", p.CheckOut)
	setIf(cols, "status", p.Status)
	setIf(cols, "total_amount", p.TotalAmount)
	setIf(cols, "payment_status", p.PaymentStatus)
	return cols
}
