package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	heartbeatJob   *HeartbeatJob
	relayHealthJob *RelayHealthJob
}

// NewJobManager creates the heartbeat job and, when relay is not nil, the
// relay health job. Both run on schedule.
func NewJobManager(hub Pinger, relay RelayChecker, schedule string, logger *slog.Logger) *JobManager {
	jm := &JobManager{
		heartbeatJob: NewHeartbeatJob(hub, schedule, logger),
	}
	if relay != nil {
		jm.relayHealthJob = NewRelayHealthJob(relay, schedule, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.heartbeatJob.Start(); err != nil {
		return fmt.Errorf("failed to start heartbeat job: %w", err)
	}

	if jm.relayHealthJob != nil {
		if err := jm.relayHealthJob.Start(); err != nil {
			// Stop already started jobs if this one fails
			jm.heartbeatJob.Stop()
			return fmt.Errorf("failed to start relay health job: %w", err)
		}
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.heartbeatJob.Stop()
	if jm.relayHealthJob != nil {
		jm.relayHealthJob.Stop()
	}
}
