package domain

import (
	"github.com/google/uuid"
)

// Role is the platform role carried in a caller's identity.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleDonor      Role = "donor"
	RoleNGO        Role = "ngo"
	RoleShelter    Role = "shelter"
	RoleFertilizer Role = "fertilizer"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDonor, RoleNGO, RoleShelter, RoleFertilizer:
		return true
	}
	return false
}

// CanDonateMoney reports whether the role may submit money donations.
func (r Role) CanDonateMoney() bool {
	return r.Valid() && r != RoleAdmin
}

// IsBeneficiary reports whether the role may submit money requests.
func (r Role) IsBeneficiary() bool {
	switch r {
	case RoleNGO, RoleShelter, RoleFertilizer:
		return true
	}
	return false
}

// User is the locally stored projection of an identity.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	EcoPoints int64     `json:"eco_points"`
}

// RewardPoints returns floor(amount/unit) * pointsPerUnit.
func RewardPoints(amount, unit, pointsPerUnit int64) int64 {
	if amount <= 0 || unit <= 0 {
		return 0
	}
	return (amount / unit) * pointsPerUnit
}
