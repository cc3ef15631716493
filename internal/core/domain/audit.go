package domain

import "time"

// Audit actions and outcomes recorded by the authentication pipeline.
const (
	AuditActionRegister = "register"
	AuditActionLogin    = "login"

	AuditOutcomeSuccess = "success"
	AuditOutcomeFailure = "failure"
)

// AuditEntry records a single authentication attempt for the audit trail.
type AuditEntry struct {
	Username string    `json:"username"`
	Action   string    `json:"action"`
	Outcome  string    `json:"outcome"`
	Reason   string    `json:"reason,omitempty"`
	At       time.Time `json:"at"`
}
