package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/Mearylis/Restaurant-Controller/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// archiveAge is how long a completed order stays active before the sweep
// moves it to the archive.
const archiveAge = time.Hour * 24 * 30

// ArchiveOrdersJob sweeps old completed orders into the archive.
// Runs hourly so the active partition stays small between ceiling-triggered
// sweeps on insert.
type ArchiveOrdersJob struct {
	store  ports.OrderStore
	cron   *cron.Cron
	logger *slog.Logger
}

// NewArchiveOrdersJob creates the hourly archival job over the given store.
func NewArchiveOrdersJob(store ports.OrderStore, logger *slog.Logger) *ArchiveOrdersJob {
	return &ArchiveOrdersJob{
		store:  store,
		cron:   cron.New(),
		logger: logger.With("component", "archive_orders_job"),
	}
}

// Start begins the archival job to run every hour.
func (j *ArchiveOrdersJob) Start() error {
	_, err := j.cron.AddFunc("@hourly", func() {
		ctx := context.Background()
		cutoff := time.Now().Add(-archiveAge)

		moved := j.store.ArchiveOlderThan(cutoff)
		if moved > 0 {
			j.logger.InfoContext(ctx, "Archived completed orders", "count", moved)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order archival job started (running hourly)")
	return nil
}

// Stop stops the archival job.
func (j *ArchiveOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order archival job stopped")
}
