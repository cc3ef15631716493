package domain

import "time"

const (
	RoleClient  = "client"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	switch role {
	case RoleClient, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// User models an account in the system. Username is the identity and is
// unique across all accounts; the password is only ever stored as a bcrypt
// hash, never in plaintext.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Enabled      bool      `json:"enabled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
