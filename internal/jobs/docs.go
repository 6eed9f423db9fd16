// Package jobs provides scheduled background tasks for the laundry service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to keep the real-time channel healthy.
//
// # Available Jobs
//
// 1. HeartbeatJob - pings every websocket connection; connections whose
// outbox is full are evicted and their socket closed
// 2. RelayHealthJob - checks the PostgreSQL LISTEN connection used to relay
// events between instances (only with FANOUT_RELAY=postgres)
//
// # Usage
//
//	jobManager := jobs.NewJobManager(hub, relay, "*/30 * * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use six fields, seconds first. HEARTBEAT_SCHEDULE defaults to
// every 30 seconds; the websocket pong wait is derived from it.
//
// # Error Handling
//
// - Heartbeat failures are per connection and end in eviction
// - The relay check logs only when the connection state changes
// - Failed job starts will stop any already running jobs
package jobs
