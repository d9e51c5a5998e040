package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/abubekerethionyx/globalpath-p2p-delivery/internal/core/application/usecases/commands"
)

// MaintenanceJob runs the periodic marketplace sweep: grant expiry first, so
// lost premium status is reflected in the ranking pass that follows.
type MaintenanceJob struct {
	expireHandler    commands.ExpireGrantsCommandHandler
	recomputeHandler commands.RecomputeRankingsCommandHandler
	interval         time.Duration
	cron             *cron.Cron
	logger           *slog.Logger
}

// NewMaintenanceJob creates the maintenance job with the given run interval.
func NewMaintenanceJob(
	expireHandler commands.ExpireGrantsCommandHandler,
	recomputeHandler commands.RecomputeRankingsCommandHandler,
	interval time.Duration,
	logger *slog.Logger,
) *MaintenanceJob {
	return &MaintenanceJob{
		expireHandler:    expireHandler,
		recomputeHandler: recomputeHandler,
		interval:         interval,
		cron:             cron.New(),
		logger:           logger.With("component", "maintenance_job"),
	}
}

// Start schedules the sweep at the configured interval.
func (j *MaintenanceJob) Start() error {
	_, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Maintenance job started", "interval", j.interval.String())
	return nil
}

// Stop stops the maintenance job.
func (j *MaintenanceJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Maintenance job stopped")
}

func (j *MaintenanceJob) run() {
	ctx := context.Background()

	expired, err := j.expireHandler.Handle(ctx, commands.NewExpireGrantsCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Grant expiry sweep failed", "error", err)
	} else {
		j.logger.InfoContext(ctx, "Grant expiry sweep finished",
			"expired", expired.Expired, "failed", expired.Failed)
	}

	rescored, err := j.recomputeHandler.Handle(ctx, commands.NewRecomputeRankingsCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Ranking pass failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Ranking pass finished",
		"recomputed", rescored.Recomputed, "failed", rescored.Failed)
}
