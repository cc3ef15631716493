package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/bancobr/bank-api/internal/core/domain"
)

type stubAuditRepo struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
}

func (r *stubAuditRepo) Insert(_ context.Context, entry domain.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

func (r *stubAuditRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func TestAuditDispatcher_PersistsEntries(t *testing.T) {
	repo := &stubAuditRepo{}
	d := NewAuditDispatcher(2, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	const total = 20
	for i := 0; i < total; i++ {
		d.Record(domain.AuditEntry{
			Username: "leo",
			Action:   domain.AuditActionLogin,
			Outcome:  domain.AuditOutcomeSuccess,
			At:       time.Now().UTC(),
		})
	}

	deadline := time.After(2 * time.Second)
	for repo.count() < total {
		select {
		case <-deadline:
			t.Fatalf("expected %d persisted entries, got %d", total, repo.count())
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestAuditDispatcher_SameUserSameWorker(t *testing.T) {
	d := NewAuditDispatcher(4, &stubAuditRepo{}, zerolog.Nop())

	first := d.shardIndex("leo")
	for i := 0; i < 10; i++ {
		if d.shardIndex("leo") != first {
			t.Fatal("shard index must be deterministic per username")
		}
	}
}
