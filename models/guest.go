package models

// Guest has no delete operation; reservations keep pointing at it.
type Guest struct {
	Base
	HotelID string  `gorm:"size:36;not null;index" json:"hotelId"`
	Name    string  `gorm:"size:255;not null" json:"name"`
	Phone   *string `gorm:"size:20" json:"phone"`
	Email   *string `gorm:"size:191" json:"email"`
	IDCard  *string `gorm:"column:id_card;size:100" json:"idCard"`

	Hotel *Hotel `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (g *Guest) Validate() error {
	v := &ValidationError{}
	v.required("name", g.Name)
	if g.Email != nil && *g.Email != "" {
		validEmail(v, "email", *g.Email)
	}
	return v.Err()
}

type GuestPatch struct {
	Name   *string `json:"name"`
	Phone  *string `json:"phone"`
	Email  *string `json:"email"`
	IDCard *string `json:"idCard"`
}

func (p GuestPatch) Validate() error {
	v := &ValidationError{}
	if p.Name != nil {
		v.required("name", *p.Name)
	}
	if p.Email != nil && *p.Email != "" {
		validEmail(v, "email", *p.Email)
	}
	return v.Err()
}

func (p GuestPatch) Columns() map[string]any {
	cols := map[string]any{}
	setIf(cols, "name", p.Name)
	setIf(cols, "phone", p.Phone)
	setIf(cols, "email", p.Email)
	setIf(cols, "id_card", p.IDCard)
	return cols
}
