package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// Relay modes.
const (
	RelayLocal    = "local"
	RelayPostgres = "postgres"
)

type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	StoreTimeout      time.Duration
	FanoutRelay       string
	FanoutChannel     string
	HeartbeatSchedule string
	OutboxSize        int
}

// LoadConfig reads the configuration from the environment, applying defaults
// for everything but the database credentials.
func LoadConfig() (Config, error) {
	cfg := Config{
		HTTPPort:          getenv("HTTP_PORT", "8080"),
		DBHost:            getenv("DB_HOST", "localhost"),
		DBPort:            getenv("DB_PORT", "5432"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBSslMode:         getenv("DB_SSLMODE", "disable"),
		FanoutRelay:       strings.ToLower(getenv("FANOUT_RELAY", RelayLocal)),
		FanoutChannel:     getenv("FANOUT_CHANNEL", "laundry_events"),
		HeartbeatSchedule: getenv("HEARTBEAT_SCHEDULE", "*/30 * * * * *"),
	}

	var err error
	if cfg.StoreTimeout, err = time.ParseDuration(getenv("STORE_TIMEOUT", "5s")); err != nil {
		return Config{}, fmt.Errorf("STORE_TIMEOUT: %w", err)
	}
	if cfg.OutboxSize, err = strconv.Atoi(getenv("OUTBOX_SIZE", "64")); err != nil {
		return Config{}, fmt.Errorf("OUTBOX_SIZE: %w", err)
	}

	if err = cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.DBUser == "" || c.DBName == "":
		return fmt.Errorf("DB_USER and DB_NAME are required")
	case c.StoreTimeout <= 0:
		return fmt.Errorf("STORE_TIMEOUT must be positive, got %s", c.StoreTimeout)
	case c.OutboxSize < 1:
		return fmt.Errorf("OUTBOX_SIZE must be at least 1, got %d", c.OutboxSize)
	case c.FanoutRelay != RelayLocal && c.FanoutRelay != RelayPostgres:
		return fmt.Errorf("FANOUT_RELAY must be %q or %q, got %q", RelayLocal, RelayPostgres, c.FanoutRelay)
	}
	if _, err := c.HeartbeatInterval(); err != nil {
		return fmt.Errorf("HEARTBEAT_SCHEDULE: %w", err)
	}
	return nil
}

// DSN is the key/value connection string understood by both pgx and lib/pq.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// HeartbeatInterval is the gap between two consecutive heartbeat runs.
func (c Config) HeartbeatInterval() (time.Duration, error) {
	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	schedule, err := parser.Parse(c.HeartbeatSchedule)
	if err != nil {
		return 0, err
	}
	first := schedule.Next(time.Now())
	return schedule.Next(first).Sub(first), nil
}

// PongWait is how long a websocket may stay silent: two missed heartbeats
// plus slack for the write deadline.
func (c Config) PongWait() time.Duration {
	interval, err := c.HeartbeatInterval()
	if err != nil {
		interval = 30 * time.Second
	}
	return 2*interval + 10*time.Second
}

func getenv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
