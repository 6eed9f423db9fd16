// Package fanout implements the in-process real-time channel: connections
// join subscription groups and receive the events broadcast to them.
//
// Delivery is best-effort and at-most-once. Every connection owns a bounded
// outbox; Broadcast never blocks and drops a frame for a member whose outbox
// is full. A heartbeat evicts members that stay full or were closed.
//
// Usage:
//
//	hub := fanout.NewHub(64, logger, fanout.NewMetrics(prometheus.DefaultRegisterer))
//	client := hub.Register()
//	defer hub.Unregister(client)
//	hub.Join(client, ports.ShopGroup(shopID))
//
//	for frame := range client.Outbox() {
//	    // write frame to the socket
//	}
package fanout

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"

	"laundry/internal/core/ports"
)

var _ ports.Broadcaster = (*Hub)(nil)

// Message is the JSON envelope exchanged with clients.
type Message struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// FrameKind tells the connection writer what to send.
type FrameKind int

const (
	// TextFrame carries an encoded Message.
	TextFrame FrameKind = iota
	// PingFrame asks the writer to send a protocol-level ping.
	PingFrame
)

// Frame is one unit queued on a connection outbox.
type Frame struct {
	Kind FrameKind
	Data []byte
}

// Client is one registered connection.
type Client struct {
	id     uint64
	outbox chan Frame
	groups map[ports.GroupKey]struct{}
	closed bool
}

// ID returns the connection number assigned by the hub.
func (c *Client) ID() uint64 {
	return c.id
}

// Outbox is closed when the client is unregistered or evicted.
func (c *Client) Outbox() <-chan Frame {
	return c.outbox
}

// Hub is the registry of connections and subscription groups. The zero
// value is not usable; create one with NewHub.
type Hub struct {
	mu         sync.RWMutex
	clients    map[*Client]struct{}
	groups     map[ports.GroupKey]map[*Client]struct{}
	outboxSize int
	nextID     atomic.Uint64
	logger     *slog.Logger
	metrics    *Metrics
}

// NewHub creates a hub whose connections buffer at most outboxSize frames.
func NewHub(outboxSize int, logger *slog.Logger, metrics *Metrics) *Hub {
	if outboxSize < 1 {
		outboxSize = 1
	}
	return &Hub{
		clients:    make(map[*Client]struct{}),
		groups:     make(map[ports.GroupKey]map[*Client]struct{}),
		outboxSize: outboxSize,
		logger:     logger.With("component", "fanout_hub"),
		metrics:    metrics,
	}
}

// Register adds a connection with an empty outbox and no memberships.
func (h *Hub) Register() *Client {
	c := &Client{
		id:     h.nextID.Add(1),
		outbox: make(chan Frame, h.outboxSize),
		groups: make(map[ports.GroupKey]struct{}),
	}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	h.metrics.Connections.Inc()
	return c
}

// Join adds the client to group. It reports false when the client is no
// longer registered.
func (h *Hub) Join(c *Client, group ports.GroupKey) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if c.closed {
		return false
	}
	members, ok := h.groups[group]
	if !ok {
		members = make(map[*Client]struct{})
		h.groups[group] = members
	}
	members[c] = struct{}{}
	c.groups[group] = struct{}{}
	return true
}

// Unregister removes every membership of the client and closes its outbox.
// Calling it more than once is safe.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	removed := h.remove(c)
	h.mu.Unlock()

	if removed {
		h.metrics.Connections.Dec()
	}
}

// Send queues a frame to one client. It reports false when the outbox is
// full or closed.
func (h *Hub) Send(c *Client, frame Frame) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.offer(c, frame)
}

// Broadcast encodes payload once and queues it to every member of group.
func (h *Hub) Broadcast(ctx context.Context, group ports.GroupKey, event string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to encode event", "event", event, "group", string(group), "error", err)
		return
	}
	frame, err := json.Marshal(Message{Event: event, Data: data})
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to encode event", "event", event, "group", string(group), "error", err)
		return
	}

	h.deliver(group, event, frame)
}

// Deliver queues an already encoded Message to every member of group and
// returns how many members accepted it. Frames that do not decode as a
// Message are discarded.
func (h *Hub) Deliver(group ports.GroupKey, encoded []byte) int {
	var msg Message
	if err := json.Unmarshal(encoded, &msg); err != nil || msg.Event == "" {
		h.logger.Warn("Discarding malformed frame", "group", string(group), "error", err)
		return 0
	}
	return h.deliver(group, msg.Event, encoded)
}

func (h *Hub) deliver(group ports.GroupKey, event string, encoded []byte) int {
	h.metrics.Broadcasts.WithLabelValues(event).Inc()

	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for c := range h.groups[group] {
		if h.offer(c, Frame{Kind: TextFrame, Data: encoded}) {
			delivered++
			continue
		}
		h.metrics.Dropped.Inc()
	}
	h.metrics.Delivered.Add(float64(delivered))
	return delivered
}

// Ping queues a ping to every connection and evicts those whose outbox is
// full. It returns the number of evicted connections.
func (h *Hub) Ping(ctx context.Context) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	evicted := 0
	for c := range h.clients {
		if h.offer(c, Frame{Kind: PingFrame}) {
			continue
		}
		if h.remove(c) {
			evicted++
		}
	}

	if evicted > 0 {
		h.metrics.Connections.Sub(float64(evicted))
		h.metrics.Evicted.Add(float64(evicted))
		h.logger.InfoContext(ctx, "Evicted stalled connections", "count", evicted)
	}
	return evicted
}

// Members returns the number of connections in group.
func (h *Hub) Members(group ports.GroupKey) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.groups[group])
}

// Connections returns the number of registered connections.
func (h *Hub) Connections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// offer must run with h.mu held.
func (h *Hub) offer(c *Client, frame Frame) bool {
	if c.closed {
		return false
	}
	select {
	case c.outbox <- frame:
		return true
	default:
		return false
	}
}

// remove must run with h.mu held for writing.
func (h *Hub) remove(c *Client) bool {
	if c.closed {
		return false
	}
	for group := range c.groups {
		members := h.groups[group]
		delete(members, c)
		if len(members) == 0 {
			delete(h.groups, group)
		}
	}
	delete(h.clients, c)
	c.closed = true
	close(c.outbox)
	return true
}
