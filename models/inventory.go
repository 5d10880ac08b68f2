package models

import (
	"time"

	"github.com/shopspring/decimal"
)

var DefaultAlertThreshold = decimal.NewFromInt(10)

// Product is a restaurant stock item. CurrentStock only moves through
// recorded sales and purchases.
type Product struct {
	Base
	HotelID        string          `gorm:"size:36;not null;index" json:"hotelId"`
	Name           string          `gorm:"size:255;not null" json:"name"`
	Category       string          `gorm:"size:100;not null" json:"category"`
	UnitPrice      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
	CurrentStock   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"currentStock"`
	AlertThreshold decimal.Decimal `gorm:"type:decimal(10,2);not null;default:10" json:"alertThreshold"`
	Unit           string          `gorm:"size:50;not null" json:"unit"`

	Hotel *Hotel `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (p *Product) Validate() error {
	v := &ValidationError{}
	v.required("name", p.Name)
	v.required("category", p.Category)
	v.required("unit", p.Unit)
	v.nonNegative("unitPrice", p.UnitPrice)
	v.nonNegative("currentStock", p.CurrentStock)
	v.nonNegative("alertThreshold", p.AlertThreshold)
	return v.Err()
}

type ProductPatch struct {
	Name           *string          `json:"name"`
	Category       *string          `json:"category"`
	UnitPrice      *decimal.Decimal `json:"unitPrice"`
	AlertThreshold *decimal.Decimal `json:"alertThreshold"`
	Unit           *string          `json:"unit"`
}

func (p ProductPatch) Validate() error {
	v := &ValidationError{}
	if p.Name != nil {
		v.required("name", *p.Name)
	}
	if p.Category != nil {
		v.required("category", *p.Category)
	}
	if p.Unit != nil {
		v.required("unit", *p.Unit)
	}
	if p.UnitPrice != nil {
		v.nonNegative("unitPrice", *p.UnitPrice)
	}
	if p.AlertThreshold != nil {
		v.nonNegative("alertThreshold", *p.AlertThreshold)
	}
	return v.Err()
}

func (p ProductPatch) Columns() map[string]any {
	cols := map[string]any{}
	setIf(cols, "name", p.Name)
	setIf(cols, "category", p.Category)
	setIf(cols, "unit_price", p.UnitPrice)
	setIf(cols, "alert_threshold", p.AlertThreshold)
	setIf(cols, "unit", p.Unit)
	return cols
}

// Sale decrements its product's stock. A room_charge sale is billed to the
// room's folio and must name the room.
type Sale struct {
	Base
	HotelID       string          `gorm:"size:36;not null;index" json:"hotelId"`
	ProductID     string          `gorm:"size:36;not null;index" json:"productId"`
	EmployeeID    *string         `gorm:"size:36;index" json:"employeeId"`
	RoomID        *string         `gorm:"size:36;index" json:"roomId"`
	Quantity      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"quantity"`
	Total         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	PaymentMethod PaymentMethod   `gorm:"size:20;not null" json:"paymentMethod"`

	Hotel    *Hotel   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Product  *Product `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
	Employee *User    `gorm:"foreignKey:EmployeeID;constraint:OnDelete:SET NULL" json:"-"`
	Room     *Room    `gorm:"constraint:OnDelete:SET NULL" json:"-"`
}

func (s *Sale) Validate() error {
	v := &ValidationError{}
	v.required("productId", s.ProductID)
	v.optionalID("employeeId", s.EmployeeID)
	v.optionalID("roomId", s.RoomID)
	v.positive("quantity", s.Quantity)
	v.nonNegative("total", s.Total)
	if !s.PaymentMethod.Valid() {
		v.Add("paymentMethod", "must be one of cash, card, transfer, room_charge")
	} else if s.PaymentMethod == MethodRoomCharge && s.RoomID == nil {
		v.Add("roomId", "is required for room_charge sales")
	}
	return v.Err()
}

// Purchase increments its product's stock.
type Purchase struct {
	Base
	HotelID      string          `gorm:"size:36;not null;index" json:"hotelId"`
	SupplierID   *string         `gorm:"size:36;index" json:"supplierId"`
	ProductID    string          `gorm:"size:36;not null;index" json:"productId"`
	Quantity     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"quantity"`
	UnitCost     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unitCost"`
	Total        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	PurchaseDate time.Time       `gorm:"not null" json:"purchaseDate"`

	Hotel    *Hotel    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Supplier *Supplier `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	Product  *Product  `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
}

func (p *Purchase) Validate() error {
	v := &ValidationError{}
	v.required("productId", p.ProductID)
	v.optionalID("supplierId", p.SupplierID)
	v.positive("quantity", p.Quantity)
	v.nonNegative("unitCost", p.UnitCost)
	v.nonNegative("total", p.Total)
	return v.Err()
}

type Supplier struct {
	Base
	HotelID string  `gorm:"size:36;not null;index" json:"hotelId"`
	Name    string  `gorm:"size:255;not null" json:"name"`
	Contact *string `gorm:"size:20" json:"contact"`
	Address *string `gorm:"type:text" json:"address"`

	Hotel *Hotel `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (s *Supplier) Validate() error {
	v := &ValidationError{}
	v.required("name", s.Name)
	return v.Err()
}

type SupplierPatch struct {
	Name    *string `json:"name"`
	Contact *string `json:"contact"`
	Address *string `json:"address"`
}

func (p SupplierPatch) Validate() error {
	v := &ValidationError{}
	if p.Name != nil {
		v.required("name", *p.Name)
	}
	return v.Err()
}

func (p SupplierPatch) Columns() map[string]any {
	cols := map[string]any{}
	setIf(cols, "name", p.Name)
	setIf(cols, "contact", p.Contact)
	setIf(cols, "address", p.Address)
	return cols
}
