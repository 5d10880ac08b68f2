package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type PaymentMethod string

const (
	MethodCash       PaymentMethod = "cash"
	MethodCard       PaymentMethod = "card"
	MethodTransfer   PaymentMethod = "transfer"
	MethodRoomCharge PaymentMethod = "room_charge"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodCard, MethodTransfer, MethodRoomCharge:
		return true
	}
	return false
}

type Payment struct {
	Base
	HotelID         string          `gorm:"size:36;not null;index" json:"hotelId"`
	ReservationID   *string         `gorm:"size:36;index" json:"reservationId"`
	Amount          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Currency        string          `gorm:"size:3;not null;default:HTG" json:"currency"`
	Method          PaymentMethod   `gorm:"size:20;not null" json:"method"`
	Status          PaymentStatus   `gorm:"size:20;not null;default:pending" json:"status"`
	StripePaymentID *string         `gorm:"size:255" json:"stripePaymentId"`
	Notes           *string         `gorm:"type:text" json:"notes"`

	Hotel       *Hotel       `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Reservation *Reservation `gorm:"constraint:OnDelete:SET NULL" json:"-"`
}

func (p *Payment) Validate() error {
	v := &ValidationError{}
	v.optionalID("reservationId", p.ReservationID)
	v.nonNegative("amount", p.Amount)
	validCurrency(v, "currency", p.Currency)
	if !p.Method.Valid() {
		v.Add("method", "must be one of cash, card, transfer, room_charge")
	}
	if !p.Status.Valid() {
		v.Add("status", "must be one of pending, completed, failed, refunded")
	}
	return v.Err()
}

type PaymentPatch struct {
	Amount *decimal.Decimal `json:"amount"`
	Method *PaymentMethod   `json:"method"`
	Status *PaymentStatus   `json:"status"`
	Notes  *string          `json:"notes"`
}

func (p PaymentPatch) Validate() error {
	v := &ValidationError{}
	if p.Amount != nil {
		v.nonNegative("amount", *p.Amount)
	}
	if p.Method != nil && !p.Method.Valid() {
		v.Add("method", "must be one of cash, card, transfer, room_charge")
	}
	if p.Status != nil && !p.Status.Valid() {
		v.Add("status", "must be one of pending, completed, failed, refunded")
	}
	return v.Err()
}

func (p PaymentPatch) Columns() map[string]any {
	cols := map[string]any{}
	setIf(cols, "amount", p.Amount)
	setIf(cols, "method", p.Method)
	setIf(cols, "status", p.Status)
	setIf(cols, "notes", p.Notes)
	return cols
}

// Invoice numbers are assigned by the server when the row is created.
// Details holds the payment as it was when the invoice was issued.
type Invoice struct {
	Base
	HotelID       string         `gorm:"size:36;not null;index" json:"hotelId"`
	PaymentID     *string        `gorm:"size:36;index" json:"paymentId"`
	InvoiceNumber string         `gorm:"size:40;not null;uniqueIndex" json:"invoiceNumber"`
	PdfURL        *string        `gorm:"type:text" json:"pdfUrl"`
	Details       datatypes.JSON `json:"details,omitempty"`

	Hotel   *Hotel   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Payment *Payment `gorm:"constraint:OnDelete:SET NULL" json:"-"`
}
