package domain

import "time"

// CustomerStatus represents the lifecycle state of a customer record.
type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "active"
	CustomerInactive CustomerStatus = "inactive"
	CustomerBlocked  CustomerStatus = "blocked"
)

// ValidCustomerStatus reports whether s is a known customer status.
func ValidCustomerStatus(s CustomerStatus) bool {
	switch s {
	case CustomerActive, CustomerInactive, CustomerBlocked:
		return true
	}
	return false
}

// Customer is a bare customer record linked to an account. It carries no
// authentication logic of its own.
type Customer struct {
	ID        string         `json:"id"`
	FullName  string         `json:"full_name"`
	Document  string         `json:"document"`
	Status    CustomerStatus `json:"status"`
	UserID    string         `json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
