package models

type Role string

const (
	RoleSuperAdmin   Role = "super_admin"
	RoleOwner        Role = "owner"
	RoleReceptionist Role = "receptionist"
	RoleHousekeeping Role = "housekeeping"
	RoleChef         Role = "chef"
	RoleServer       Role = "server"
	RoleAccountant   Role = "accountant"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleOwner, RoleReceptionist, RoleHousekeeping, RoleChef, RoleServer, RoleAccountant:
		return true
	}
	return false
}

// User is a staff account. HotelID is nil only for platform super admins.
type User struct {
	Base
	HotelID  *string `gorm:"size:36;index" json:"hotelId"`
	Name     string  `gorm:"size:255;not null" json:"name"`
	Email    string  `gorm:"size:191;not null;uniqueIndex" json:"email"`
	Password string  `gorm:"size:255;not null" json:"-"`
	Role     Role    `gorm:"size:20;not null;default:receptionist" json:"role"`
	Active   bool    `gorm:"not null;default:true" json:"active"`

	Hotel *Hotel `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (u *User) Validate() error {
	v := &ValidationError{}
	v.required("name", u.Name)
	validEmail(v, "email", u.Email)
	if !u.Role.Valid() {
		v.Add("role", "is not a known role")
	}
	if u.Role == RoleSuperAdmin && u.HotelID != nil {
		v.Add("role", "super_admin cannot belong to a hotel")
	}
	if u.Role != RoleSuperAdmin && u.HotelID == nil {
		v.Add("hotelId", "is required")
	}
	return v.Err()
}

// UserPatch lists the staff fields an owner may change. Password changes
// go through the auth service so the hash never leaves it.
type UserPatch struct {
	Name   *string `json:"name"`
	Role   *Role   `json:"role"`
	Active *bool   `json:"active"`
}

func (p UserPatch) Validate() error {
	v := &ValidationError{}
	if p.Name != nil {
		v.required("name", *p.Name)
	}
	if p.Role != nil {
		if !p.Role.Valid() {
			v.Add("role", "is not a known role")
		} else if *p.Role == RoleSuperAdmin {
			v.Add("role", "cannot be granted to hotel staff")
		}
	}
	return v.Err()
}

func (p UserPatch) Columns() map[string]any {
	cols := map[string]any{}
	setIf(cols, "name", p.Name)
	setIf(cols, "role", p.Role)
	setIf(cols, "active", p.Active)
	return cols
}
