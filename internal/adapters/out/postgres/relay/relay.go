// Package relay carries broadcasts between service instances over
// PostgreSQL LISTEN/NOTIFY. Every instance publishes with pg_notify and
// feeds what its pq.Listener receives into its local hub, the publishing
// instance included.
package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"laundry/internal/core/ports"
	"laundry/internal/fanout"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// maxPayload is the NOTIFY payload limit of a default PostgreSQL build.
const maxPayload = 8000

var (
	_ ports.Broadcaster = (*Relay)(nil)

	// ErrPayloadTooLarge is logged when an event does not fit a notification.
	ErrPayloadTooLarge = errors.New("event exceeds the notification payload limit")
)

// deliverer is the local side of the relay.
type deliverer interface {
	Deliver(group ports.GroupKey, encoded []byte) int
}

// envelope is the notification payload.
type envelope struct {
	Group   ports.GroupKey  `json:"group"`
	Message json.RawMessage `json:"message"`
}

// Relay implements ports.Broadcaster across instances.
type Relay struct {
	db       *gorm.DB
	channel  string
	hub      deliverer
	listener *pq.Listener
	logger   *slog.Logger
	done     chan struct{}
}

// NewRelay creates a relay publishing through db on channel. Start must be
// called before events are received.
func NewRelay(db *gorm.DB, channel string, hub deliverer, logger *slog.Logger) *Relay {
	return &Relay{
		db:      db,
		channel: channel,
		hub:     hub,
		logger:  logger.With("component", "fanout_relay"),
		done:    make(chan struct{}),
	}
}

// Start opens the listener connection described by dsn and relays
// notifications to the hub until ctx ends or Close is called.
func (r *Relay) Start(ctx context.Context, dsn string) error {
	r.listener = pq.NewListener(dsn, time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			r.logger.WarnContext(ctx, "Listener connection event", "event", int(ev), "error", err)
		}
	})
	if err := r.listener.Listen(r.channel); err != nil {
		_ = r.listener.Close()
		return fmt.Errorf("listen on %s: %w", r.channel, err)
	}

	go r.run(ctx)
	r.logger.InfoContext(ctx, "Relay listening", "channel", r.channel)
	return nil
}

// Broadcast publishes the event with pg_notify. Failures are logged and the
// event is dropped.
func (r *Relay) Broadcast(ctx context.Context, group ports.GroupKey, event string, payload any) {
	payloadJSON, err := r.encode(group, event, payload)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to encode event", "event", event, "group", string(group), "error", err)
		return
	}

	if err = r.db.WithContext(ctx).Exec("SELECT pg_notify(?, ?)", r.channel, string(payloadJSON)).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to publish event", "event", event, "group", string(group), "error", err)
	}
}

// Ping checks the listener connection.
func (r *Relay) Ping() error {
	if r.listener == nil {
		return errors.New("relay not started")
	}
	return r.listener.Ping()
}

// Close stops relaying and releases the listener connection.
func (r *Relay) Close() error {
	select {
	case <-r.done:
		return nil
	default:
		close(r.done)
	}
	if r.listener == nil {
		return nil
	}
	return r.listener.Close()
}

func (r *Relay) encode(group ports.GroupKey, event string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	message, err := json.Marshal(fanout.Message{Event: event, Data: data})
	if err != nil {
		return nil, err
	}
	encoded, err := json.Marshal(envelope{Group: group, Message: message})
	if err != nil {
		return nil, err
	}
	if len(encoded) > maxPayload {
		return nil, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, len(encoded))
	}
	return encoded, nil
}

func (r *Relay) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-r.done:
			return
		case n, ok := <-r.listener.Notify:
			if !ok {
				return
			}
			if n == nil {
				// The connection was re-established; notifications sent
				// while it was down are lost.
				r.logger.WarnContext(ctx, "Relay reconnected")
				continue
			}
			r.dispatch(ctx, n.Extra)
		}
	}
}

func (r *Relay) dispatch(ctx context.Context, raw string) {
	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		r.logger.WarnContext(ctx, "Discarding malformed notification", "error", err)
		return
	}
	r.hub.Deliver(env.Group, env.Message)
}
