package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/application/usecases/commands"
)

// JobManager coordinates the scheduled jobs of the application.
type JobManager struct {
	maintenanceJob *MaintenanceJob
}

// NewJobManager creates a job manager wired to the batch command handlers.
func NewJobManager(
	expireHandler commands.ExpireGrantsCommandHandler,
	recomputeHandler commands.RecomputeRankingsCommandHandler,
	maintenanceInterval time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		maintenanceJob: NewMaintenanceJob(expireHandler, recomputeHandler, maintenanceInterval, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.maintenanceJob.Start(); err != nil {
		return fmt.Errorf("failed to start maintenance job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.maintenanceJob.Stop()
}
