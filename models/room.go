package models

import "github.com/shopspring/decimal"

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomCleaning    RoomStatus = "cleaning"
	RoomMaintenance RoomStatus = "maintenance"
)

func (s RoomStatus) Valid() bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomCleaning, RoomMaintenance:
		return true
	}
	return false
}

type Room struct {
	Base
	HotelID       string          `gorm:"size:36;not null;uniqueIndex:idx_rooms_hotel_number,priority:1" json:"hotelId"`
	RoomNumber    string          `gorm:"size:20;not null;uniqueIndex:idx_rooms_hotel_number,priority:2" json:"roomNumber"`
	Type          string          `gorm:"size:100;not null" json:"type"`
	PricePerNight decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"pricePerNight"`
	Capacity      int             `gorm:"not null" json:"capacity"`
	Status        RoomStatus      `gorm:"size:20;not null;default:available" json:"status"`
	Notes         *string         `gorm:"type:text" json:"notes"`

	Hotel *Hotel `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (r *Room) Validate() error {
	v := &ValidationError{}
	v.required("roomNumber", r.RoomNumber)
	v.required("type", r.Type)
	v.nonNegative("pricePerNight", r.PricePerNight)
	if r.Capacity <= 0 {
		v.Add("capacity", "must be a positive integer")
	}
	if !r.Status.Valid() {
		v.Add("status", "must be one of available, occupied, cleaning, maintenance")
	}
	return v.Err()
}

type RoomPatch struct {
	RoomNumber    *string          `json:"roomNumber"`
	Type          *string          `json:"type"`
	PricePerNight *decimal.Decimal `json:"pricePerNight"`
	Capacity      *int             `json:"capacity"`
	Status        *RoomStatus      `json:"status"`
	Notes         *string          `json:"notes"`
}

func (p RoomPatch) Validate() error {
	v := &ValidationError{}
	if p.RoomNumber != nil {
		v.required("roomNumber", *p.RoomNumber)
	}
	if p.Type != nil {
		v.required("type", *p.Type)
	}
	if p.PricePerNight != nil {
		v.nonNegative("pricePerNight", *p.PricePerNight)
	}
	if p.Capacity != nil && *p.Capacity <= 0 {
		v.Add("capacity", "must be a positive integer")
	}
	if p.Status != nil && !p.Status.Valid() {
		v.Add("status", "must be one of available, occupied, cleaning, maintenance")
	}
	return v.Err()
}

func (p RoomPatch) Columns() map[string]any {
	cols := map[string]any{}
	setIf(cols, "room_number", p.RoomNumber)
	setIf(cols, "type", p.Type)
	setIf(cols, "price_per_night", p.PricePerNight)
	setIf(cols, "capacity", p.Capacity)
	setIf(cols, "status", p.Status)
	setIf(cols, "notes", p.Notes)
	return cols
}
