package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/bancobr/bank-api/internal/api/metrics"
	"github.com/bancobr/bank-api/internal/core/domain"
	"github.com/bancobr/bank-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// AuditDispatcher routes audit entries to a fixed set of workers using
// consistent hashing on the username, guaranteeing per-user ordering of the
// audit trail. Persistence happens off the authentication path.
type AuditDispatcher struct {
	workers []chan domain.AuditEntry
	repo    ports.AuditRepository
	log     zerolog.Logger
}

// NewAuditDispatcher creates a dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewAuditDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *AuditDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &AuditDispatcher{
		workers: make([]chan domain.AuditEntry, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEntry, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *AuditDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record enqueues an entry on the worker responsible for its username.
// When that worker's buffer is full the entry is dropped with a warning
// rather than blocking a login.
func (d *AuditDispatcher) Record(entry domain.AuditEntry) {
	i := d.shardIndex(entry.Username)
	select {
	case d.workers[i] <- entry:
		metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
	default:
		d.log.Warn().Str("username", entry.Username).Str("action", entry.Action).
			Msg("audit queue full, entry dropped")
	}
}

// shardIndex maps a username deterministically to a worker index.
func (d *AuditDispatcher) shardIndex(username string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(username))
	return int(h.Sum32()) % len(d.workers)
}

func (d *AuditDispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEntry) {
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			metrics.AuditQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			if err := d.repo.Insert(ctx, entry); err != nil {
				d.log.Error().Err(err).
					Str("username", entry.Username).
					Int("worker_id", id).
					Msg("audit entry persistence failed")
			}
		}
	}
}
