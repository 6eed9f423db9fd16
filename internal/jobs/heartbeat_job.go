package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Pinger pings every live connection and evicts the stalled ones.
type Pinger interface {
	Ping(ctx context.Context) int
}

// HeartbeatJob pings real-time connections on a schedule.
type HeartbeatJob struct {
	hub      Pinger
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewHeartbeatJob creates a heartbeat running on a six-field cron schedule.
func NewHeartbeatJob(hub Pinger, schedule string, logger *slog.Logger) *HeartbeatJob {
	return &HeartbeatJob{
		hub:      hub,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "heartbeat_job"),
	}
}

// Start schedules the heartbeat.
func (j *HeartbeatJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Heartbeat job started", "schedule", j.schedule)
	return nil
}

func (j *HeartbeatJob) run() {
	ctx := context.Background()
	if evicted := j.hub.Ping(ctx); evicted > 0 {
		j.logger.DebugContext(ctx, "Heartbeat evicted connections", "count", evicted)
	}
}

// Stop stops the heartbeat and waits for a running tick to finish.
func (j *HeartbeatJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Heartbeat job stopped")
}
