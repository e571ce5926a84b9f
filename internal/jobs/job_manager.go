package jobs

import (
	"fmt"
	"log/slog"

	"github.com/Mearylis/Restaurant-Controller/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	archiveOrdersJob *ArchiveOrdersJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(store ports.OrderStore, logger *slog.Logger) *JobManager {
	return &JobManager{
		archiveOrdersJob: NewArchiveOrdersJob(store, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.archiveOrdersJob.Start(); err != nil {
		return fmt.Errorf("failed to start order archival job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.archiveOrdersJob.Stop()
}
