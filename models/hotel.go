package models

import (
	"net/mail"
	"strings"
)

type HotelPlan string

const (
	PlanTrial      HotelPlan = "trial"
	PlanBasic      HotelPlan = "basic"
	PlanPro        HotelPlan = "pro"
	PlanEnterprise HotelPlan = "enterprise"
)

func (p HotelPlan) Valid() bool {
	switch p {
	case PlanTrial, PlanBasic, PlanPro, PlanEnterprise:
		return true
	}
	return false
}

type HotelStatus string

const (
	HotelActive    HotelStatus = "active"
	HotelSuspended HotelStatus = "suspended"
	HotelTrial     HotelStatus = "trial"
)

func (s HotelStatus) Valid() bool {
	switch s {
	case HotelActive, HotelSuspended, HotelTrial:
		return true
	}
	return false
}

const DefaultCurrency = "HTG"

// Hotel is the tenant. Every other table except users of the platform
// itself hangs off it.
type Hotel struct {
	Base
	Name                 string      `gorm:"size:255;not null" json:"name"`
	Address              *string     `gorm:"type:text" json:"address"`
	Phone                *string     `gorm:"size:20" json:"phone"`
	Email                string      `gorm:"size:191;not null;uniqueIndex" json:"email"`
	Plan                 HotelPlan   `gorm:"size:20;not null;default:trial" json:"plan"`
	Currency             string      `gorm:"size:3;not null;default:HTG" json:"currency"`
	Status               HotelStatus `gorm:"size:20;not null;default:trial" json:"status"`
	StripeCustomerID     *string     `gorm:"size:255" json:"stripeCustomerId"`
	StripeSubscriptionID *string     `gorm:"size:255" json:"stripeSubscriptionId"`
}

func (h *Hotel) Validate() error {
	v := &ValidationError{}
	v.required("name", h.Name)
	validEmail(v, "email", h.Email)
	if !h.Plan.Valid() {
		v.Add("plan", "must be one of trial, basic, pro, enterprise")
	}
	if !h.Status.Valid() {
		v.Add("status", "must be one of active, suspended, trial")
	}
	validCurrency(v, "currency", h.Currency)
	return v.Err()
}

// HotelPatch is what a hotel owner may change on their own tenant.
type HotelPatch struct {
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	Currency *string `json:"currency"`
}

func (p HotelPatch) Validate() error {
	v := &ValidationError{}
	if p.Name != nil {
		v.required("name", *p.Name)
	}
	if p.Email != nil {
		validEmail(v, "email", *p.Email)
	}
	if p.Currency != nil {
		validCurrency(v, "currency", *p.Currency)
	}
	return v.Err()
}

func (p HotelPatch) Columns() map[string]any {
	cols := map[string]any{}
	setIf(cols, "name", p.Name)
	setIf(cols, "address", p.Address)
	setIf(cols, "phone", p.Phone)
	setIf(cols, "email", p.Email)
	if p.Currency != nil {
		cols["currency"] = strings.ToUpper(*p.Currency)
	}
	return cols
}

// PlatformHotelPatch is the super-admin view: the owner fields plus
// subscription plan and account status.
type PlatformHotelPatch struct {
	HotelPatch
	Plan   *HotelPlan   `json:"plan"`
	Status *HotelStatus `json:"status"`
}

func (p PlatformHotelPatch) Validate() error {
	v := &ValidationError{}
	if err := p.HotelPatch.Validate(); err != nil {
		v.Fields = append(v.Fields, err.(*ValidationError).Fields...)
	}
	if p.Plan != nil && !p.Plan.Valid() {
		v.Add("plan", "must be one of trial, basic, pro, enterprise")
	}
	if p.Status != nil && !p.Status.Valid() {
		v.Add("status", "must be one of active, suspended, trial")
	}
	return v.Err()
}

func (p PlatformHotelPatch) Columns() map[string]any {
	cols := p.HotelPatch.Columns()
	setIf(cols, "plan", p.Plan)
	setIf(cols, "status", p.Status)
	return cols
}

func validEmail(v *ValidationError, field, email string) {
	if strings.TrimSpace(email) == "" {
		v.Add(field, "is required")
		return
	}
	if _, err := mail.ParseAddress(email); err != nil {
		v.Add(field, "must be a valid email address")
	}
}

func validCurrency(v *ValidationError, field, currency string) {
	if len(currency) != 3 {
		v.Add(field, "must be a 3-letter currency code")
	}
}

func setIf[T any](cols map[string]any, column string, value *T) {
	if value != nil {
		cols[column] = *value
	}
}
