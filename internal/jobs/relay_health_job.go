package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// RelayChecker reports whether the cross-instance relay connection is alive.
type RelayChecker interface {
	Ping() error
}

// RelayHealthJob checks the relay listener on the heartbeat schedule so a
// dead connection is noticed even when no events flow.
type RelayHealthJob struct {
	relay    RelayChecker
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
	healthy  bool
}

func NewRelayHealthJob(relay RelayChecker, schedule string, logger *slog.Logger) *RelayHealthJob {
	return &RelayHealthJob{
		relay:    relay,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "relay_health_job"),
		healthy:  true,
	}
}

// Start schedules the check.
func (j *RelayHealthJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Relay health job started", "schedule", j.schedule)
	return nil
}

// run logs only state changes.
func (j *RelayHealthJob) run() {
	ctx := context.Background()
	err := j.relay.Ping()
	switch {
	case err != nil && j.healthy:
		j.logger.WarnContext(ctx, "Relay connection lost", "error", err)
	case err == nil && !j.healthy:
		j.logger.InfoContext(ctx, "Relay connection restored")
	}
	j.healthy = err == nil
}

// Stop stops the check.
func (j *RelayHealthJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Relay health job stopped")
}
