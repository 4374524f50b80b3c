package domain

import "time"

// Role is the privilege level attached to an account.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
	RoleSuper Role = "SUPER"
)

// ValidRole reports whether r is one of the three known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuper:
		return true
	}
	return false
}

// Elevated reports whether the role may act on resources it does not own.
func (r Role) Elevated() bool {
	return r == RoleAdmin || r == RoleSuper
}

// User models an account in the system. PasswordHash is never serialized.
type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Username     string    `json:"username,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	City         string    `json:"city,omitempty"`
	Avatar       string    `json:"avatar,omitempty"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
