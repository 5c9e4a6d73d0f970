package ws

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/harborchat/backend/internal/model/chat"
	"github.com/harborchat/backend/internal/service/history"
	"github.com/harborchat/backend/internal/service/session"
)

// Options tunes per-connection behavior.
type Options struct {
	WelcomeMessage string
	PingInterval   time.Duration
}

func (o Options) withDefaults() Options {
	if o.WelcomeMessage == "" {
		o.WelcomeMessage = "connected"
	}
	if o.PingInterval <= 0 {
		o.PingInterval = 54 * time.Second
	}
	return o
}

// Handler upgrades HTTP requests and runs each connection's session
// lifecycle and message routing.
type Handler struct {
	registry session.Registry
	store    history.Store
	pool     *Pool
	opts     Options
	identify func(*http.Request) Identity
	upgrader websocket.Upgrader
}

// NewHandler wires the connection handler to its injected collaborators.
func NewHandler(registry session.Registry, store history.Store, pool *Pool, opts Options) *Handler {
	return &Handler{
		registry: registry,
		store:    store,
		pool:     pool,
		opts:     opts.withDefaults(),
		identify: assignIdentity,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes mounts the websocket endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/ws", h.handleConnection)
}

// handleConnection owns one connection from upgrade to disconnect. The
// registry entry it inserts is removed only here, on the way out.
func (h *Handler) handleConnection(w http.ResponseWriter, r *http.Request) {
	identity := h.identify(r)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed: %v", err)
		return
	}

	client := newClient(conn)
	h.pool.add(client)

	record := chat.Session{
		SessionID: identity.SessionID,
		DeviceID:  identity.DeviceID,
		IPAddress: identity.IPAddress,
		CreatedAt: time.Now().UTC(),
	}
	h.registry.Insert(session.Entry{Session: record, Conn: client})

	log.Printf("[ws] connected session=%s device=%s ip=%s", record.SessionID, record.DeviceID, record.IPAddress)

	defer func() {
		h.registry.Remove(record.SessionID)
		h.pool.remove(client)
		client.close()
		log.Printf("[ws] disconnected session=%s", record.SessionID)
	}()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go h.pingLoop(ctx, client)

	h.welcome(ctx, client, record)
	h.readLoop(ctx, client, record)
}

// welcome sends the identity handshake and replays the device's history.
// Replay is not gated on session validation: no client-submitted session id
// exists yet.
func (h *Handler) welcome(ctx context.Context, client *Client, record chat.Session) {
	init := chat.SessionInit{
		Type:      chat.KindSessionInit,
		SessionID: record.SessionID,
		DeviceID:  record.DeviceID,
		IPAddress: record.IPAddress,
	}
	if err := client.Send(init); err != nil {
		log.Printf("[ws] session_init send failed session=%s: %v", record.SessionID, err)
		return
	}

	hello := chat.ConnectionHello{
		Type:     chat.KindConnection,
		DeviceID: record.DeviceID,
		Message:  h.opts.WelcomeMessage,
	}
	if err := client.Send(hello); err != nil {
		log.Printf("[ws] connection send failed session=%s: %v", record.SessionID, err)
		return
	}

	messages, err := h.store.History(ctx, record.DeviceID)
	if err != nil {
		log.Printf("[ws] history fetch failed device=%s: %v", record.DeviceID, err)
		messages = nil
	}

	// The fetch may have yielded; confirm the session is still live before
	// writing the replay.
	if _, ok := h.registry.Get(record.SessionID); !ok {
		return
	}

	if messages == nil {
		messages = []chat.Message{}
	}
	if err := client.Send(chat.HistoryFrame{Type: chat.KindHistory, Messages: messages}); err != nil {
		log.Printf("[ws] history send failed session=%s: %v", record.SessionID, err)
	}
}

// readLoop routes inbound frames until the transport closes or a frame
// fails session validation.
func (h *Handler) readLoop(ctx context.Context, client *Client, record chat.Session) {
	for {
		_, raw, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseNormalClosure,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure) {
				log.Printf("[ws] read error session=%s: %v", record.SessionID, err)
			}
			return
		}

		frame, err := chat.DecodeFrame(raw)
		if err != nil {
			// Malformed and unknown-kind frames are dropped without
			// touching the connection.
			log.Printf("[ws] dropping frame session=%s: %v", record.SessionID, err)
			continue
		}

		entry, ok := h.registry.Get(frame.SessionID)
		if !ok {
			log.Printf("[ws] invalid session reference %q from session=%s, closing", frame.SessionID, record.SessionID)
			client.closePolicy("Invalid session")
			return
		}

		switch frame.Kind {
		case chat.KindChat:
			h.handleChat(ctx, entry, frame.Chat)
		case chat.KindSubscribe:
			h.handleSubscribe(client, record, frame.Subscribe)
		}
	}
}

// handleChat echoes the message to the socket owned by the resolved session
// and appends it to that session's device history. The registry-resolved
// device id is the single source of truth for both.
func (h *Handler) handleChat(ctx context.Context, entry session.Entry, frame *chat.ChatFrame) {
	echo := chat.ChatEcho{
		Type:      chat.KindChat,
		SessionID: entry.Session.SessionID,
		Content:   frame.Content,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if err := entry.Conn.Send(echo); err != nil {
		log.Printf("[ws] echo send failed session=%s: %v", entry.Session.SessionID, err)
	}

	// Best effort; the echo above never waits on persistence.
	if _, err := h.store.Append(ctx, entry.Session.DeviceID, frame.Content); err != nil {
		log.Printf("[ws] history append failed device=%s: %v", entry.Session.DeviceID, err)
	}
}

// handleSubscribe acknowledges the requested channel to the requesting
// connection only. Unlike the chat echo, the ack always goes to the socket
// the frame arrived on, even when the frame names another live session.
// No membership state is kept.
func (h *Handler) handleSubscribe(client *Client, record chat.Session, frame *chat.SubscribeFrame) {
	ack := chat.Subscribed{Type: chat.KindSubscribed, Channel: frame.Channel}
	if err := client.Send(ack); err != nil {
		log.Printf("[ws] subscribe ack failed session=%s: %v", record.SessionID, err)
	}
}

// pingLoop keeps intermediaries from dropping idle sockets. No read
// deadlines are armed: idle connections stay open until the transport
// reports close or error.
func (h *Handler) pingLoop(ctx context.Context, client *Client) {
	ticker := time.NewTicker(h.opts.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := client.ping(); err != nil {
				return
			}
		}
	}
}
