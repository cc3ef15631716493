package ports

import (
	"context"

	"github.com/bancobr/bank-api/internal/core/domain"
)

// AuditRepository persists authentication audit entries.
type AuditRepository interface {
	Insert(ctx context.Context, entry domain.AuditEntry) error
}

// AuditRecorder accepts audit entries for asynchronous persistence.
// Record must not block the authentication path beyond queueing.
type AuditRecorder interface {
	Record(entry domain.AuditEntry)
}
