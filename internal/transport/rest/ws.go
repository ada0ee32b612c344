package rest

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, string, error)
}

type eventSubscriber interface {
	Subscribe(ctx context.Context, userID uuid.UUID) (<-chan domain.Event, error)
}

// RealtimeHandler upgrades authenticated clients to a websocket and streams
// their events (new messages, notifications) until either side hangs up.
type RealtimeHandler struct {
	tokens   tokenValidator
	events   eventSubscriber
	upgrader websocket.Upgrader
	log      *slog.Logger
}

// NewRealtimeHandler creates a RealtimeHandler. events may be nil, in which
// case connections are refused with 503. Browsers are accepted from the given
// origins; "*" accepts any origin.
func NewRealtimeHandler(tokens tokenValidator, events eventSubscriber, origins []string, logger *slog.Logger) *RealtimeHandler {
	return &RealtimeHandler{
		tokens: tokens,
		events: events,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(origins),
		},
		log: logger.With("handler", "realtime"),
	}
}

func originChecker(origins []string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || slices.Contains(origins, "*") || slices.Contains(origins, origin)
	}
}

type wsEvent struct {
	Type      domain.EventType `json:"type"`
	Data      any              `json:"data"`
	CreatedAt time.Time        `json:"createdAt"`
}

// Serve handles GET /api/ws?token=<access token>.
func (h *RealtimeHandler) Serve(w http.ResponseWriter, r *http.Request) {
	if h.events == nil {
		writeError(w, http.StatusServiceUnavailable, "Realtime updates are unavailable")
		return
	}

	userID, _, err := h.tokens.ValidateToken(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	// The subscription must outlive the request context once hijacked.
	ctx, cancel := context.WithCancel(context.WithoutCancel(r.Context()))
	events, err := h.events.Subscribe(ctx, userID)
	if err != nil {
		cancel()
		h.log.ErrorContext(r.Context(), "subscribe failed", slog.String("error", err.Error()))
		writeError(w, http.StatusServiceUnavailable, "Realtime updates are unavailable")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		cancel()
		return
	}

	h.log.DebugContext(ctx, "client connected", slog.String("user_id", userID.String()))
	go h.writePump(ctx, conn, events)
	h.readPump(conn)
	cancel()
	h.log.DebugContext(ctx, "client disconnected", slog.String("user_id", userID.String()))
}

// readPump drains client frames so control messages are processed. Clients
// do not send application data; anything they do send is discarded.
func (h *RealtimeHandler) readPump(conn *websocket.Conn) {
	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Warn("websocket read", slog.String("error", err.Error()))
			}
			return
		}
	}
}

func (h *RealtimeHandler) writePump(ctx context.Context, conn *websocket.Conn, events <-chan domain.Event) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case ev, ok := <-events:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteJSON(wsEvent{Type: ev.Type, Data: ev.Data, CreatedAt: ev.CreatedAt}); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
