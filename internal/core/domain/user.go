package domain

import "time"

const (
	RoleCustomer   = "user"
	RoleLaundryman = "laundryman"
	RoleRider      = "rider"
)

// ValidRole reports whether role is one of the three registerable roles.
func ValidRole(role string) bool {
	return role == RoleCustomer || role == RoleLaundryman || role == RoleRider
}

// User models a registered actor: a customer placing orders, a laundryman
// working the queue, or a rider delivering them.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
