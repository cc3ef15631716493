package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bancobr/bank-api/internal/core/domain"
)

const auditCollection = "auth_audit"

// AuditRepository appends authentication audit entries. Entries are
// write-only from the service's point of view.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type auditDoc struct {
	Username string `bson:"username"`
	Action   string `bson:"action"`
	Outcome  string `bson:"outcome"`
	Reason   string `bson:"reason,omitempty"`
	At       int64  `bson:"at"`
}

func (r *AuditRepository) Insert(ctx context.Context, entry domain.AuditEntry) error {
	doc := auditDoc{
		Username: entry.Username,
		Action:   entry.Action,
		Outcome:  entry.Outcome,
		Reason:   entry.Reason,
		At:       entry.At.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}
