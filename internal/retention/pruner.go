// Package retention prunes stored results on a cron schedule.
package retention

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Store is the part of the result repository the pruner needs.
type Store interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Pruner deletes results older than maxAge each time the schedule fires.
type Pruner struct {
	store   Store
	maxAge  time.Duration
	cron    *cron.Cron
	now     func() time.Time
	timeout time.Duration
	logger  *slog.Logger
}

func New(store Store, maxAge time.Duration, schedule string, logger *slog.Logger) (*Pruner, error) {
	if logger == nil {
		logger = slog.Default()
	}
	// Standard 5-field expressions, optional seconds, and @descriptors.
	parser := cron.NewParser(
		cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	)
	p := &Pruner{
		store:   store,
		maxAge:  maxAge,
		cron:    cron.New(cron.WithParser(parser), cron.WithLocation(time.UTC)),
		now:     time.Now,
		timeout: time.Minute,
		logger:  logger,
	}
	if _, err := p.cron.AddFunc(schedule, func() { _, _ = p.PruneOnce(context.Background()) }); err != nil {
		return nil, fmt.Errorf("retention schedule %q: %w", schedule, err)
	}
	return p, nil
}

// PruneOnce deletes everything created before now-maxAge.
func (p *Pruner) PruneOnce(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	cutoff := p.now().UTC().Add(-p.maxAge)
	n, err := p.store.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		p.logger.Error("retention.prune.failed", "cutoff", cutoff, "error", err)
		return 0, err
	}
	p.logger.Info("retention.prune.ok", "cutoff", cutoff, "deleted", n)
	return n, nil
}

func (p *Pruner) Start() {
	p.logger.Info("retention scheduler started", "max_age", p.maxAge)
	p.cron.Start()
}

// Stop waits for a running prune to finish.
func (p *Pruner) Stop() {
	<-p.cron.Stop().Done()
}
