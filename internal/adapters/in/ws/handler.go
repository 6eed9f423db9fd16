// Package ws serves the real-time channel over websockets.
//
// Clients send {"event": "join_shop_room", "data": {"shop_id": "..."}} or
// {"event": "join_user_room", "data": {"user_id": "..."}} and receive a
// room_joined acknowledgement followed by every event broadcast to the room.
// Leaving is implicit on disconnect.
package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/ports"
	"laundry/internal/fanout"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	EventJoinShopRoom = "join_shop_room"
	EventJoinUserRoom = "join_user_room"
	EventRoomJoined   = "room_joined"
	EventError        = "error"

	writeWait      = 10 * time.Second
	maxMessageSize = 4096
)

type joinShopData struct {
	ShopID string `json:"shop_id"`
}

type joinUserData struct {
	UserID string `json:"user_id"`
}

type roomJoined struct {
	Room string `json:"room"`
}

type failure struct {
	Message string `json:"message"`
}

// Handler upgrades requests and pumps frames between the socket and the hub.
type Handler struct {
	hub      *fanout.Hub
	upgrader websocket.Upgrader
	pongWait time.Duration
	logger   *slog.Logger
}

// NewHandler creates a handler. A connection that answers no ping within
// pongWait is closed; pongWait should exceed the heartbeat interval.
func NewHandler(hub *fanout.Hub, pongWait time.Duration, logger *slog.Logger) *Handler {
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		pongWait: pongWait,
		logger:   logger.With("component", "ws_handler"),
	}
}

// Serve handles GET /ws.
func (h *Handler) Serve(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already answered the request.
		h.logger.Warn("Upgrade failed", "error", err)
		return nil
	}

	client := h.hub.Register()
	h.logger.Debug("Connection opened", "client", client.ID())

	go h.writePump(conn, client)
	h.readPump(conn, client)
	return nil
}

func (h *Handler) readPump(conn *websocket.Conn, client *fanout.Client) {
	defer func() {
		h.hub.Unregister(client)
		h.logger.Debug("Connection closed", "client", client.ID())
	}()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(h.pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(h.pongWait))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Info("Connection dropped", "client", client.ID(), "error", err)
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(h.pongWait))

		var msg fanout.Message
		if err = json.Unmarshal(data, &msg); err != nil {
			h.reply(client, EventError, failure{Message: "malformed message"})
			continue
		}
		h.handle(client, msg)
	}
}

func (h *Handler) handle(client *fanout.Client, msg fanout.Message) {
	var (
		group ports.GroupKey
		err   error
	)

	switch msg.Event {
	case EventJoinShopRoom:
		var data joinShopData
		if err = json.Unmarshal(msg.Data, &data); err == nil {
			var shopID kernel.UUID
			if shopID, err = kernel.ParseID("shop_id", data.ShopID); err == nil {
				group = ports.ShopGroup(shopID)
			}
		}
	case EventJoinUserRoom:
		var data joinUserData
		if err = json.Unmarshal(msg.Data, &data); err == nil {
			var userID kernel.UUID
			if userID, err = kernel.ParseID("user_id", data.UserID); err == nil {
				group = ports.UserGroup(userID)
			}
		}
	default:
		h.reply(client, EventError, failure{Message: "unknown event " + msg.Event})
		return
	}

	if err != nil {
		h.reply(client, EventError, failure{Message: err.Error()})
		return
	}
	if h.hub.Join(client, group) {
		h.reply(client, EventRoomJoined, roomJoined{Room: string(group)})
	}
}

func (h *Handler) reply(client *fanout.Client, event string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	frame, err := json.Marshal(fanout.Message{Event: event, Data: data})
	if err != nil {
		return
	}
	if !h.hub.Send(client, fanout.Frame{Kind: fanout.TextFrame, Data: frame}) {
		h.logger.Warn("Reply dropped", "client", client.ID(), "event", event)
	}
}

// writePump is the only writer of conn.
func (h *Handler) writePump(conn *websocket.Conn, client *fanout.Client) {
	defer conn.Close()

	for frame := range client.Outbox() {
		deadline := time.Now().Add(writeWait)
		var err error
		switch frame.Kind {
		case fanout.PingFrame:
			err = conn.WriteControl(websocket.PingMessage, nil, deadline)
		default:
			_ = conn.SetWriteDeadline(deadline)
			err = conn.WriteMessage(websocket.TextMessage, frame.Data)
		}
		if err != nil {
			h.logger.Debug("Write failed", "client", client.ID(), "error", err)
			h.hub.Unregister(client)
			return
		}
	}

	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
}
