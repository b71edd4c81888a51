package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/polkiloo/sweetorders/internal/domain/model"
	"github.com/polkiloo/sweetorders/internal/server/http/dto"
	"github.com/polkiloo/sweetorders/internal/usecase"
)

const (
	defaultPingInterval = 30 * time.Second
	writeWait           = 10 * time.Second
)

// StreamHandler pushes filtered order snapshots over websocket.
type StreamHandler struct {
	facade       StreamFacade
	logger       *slog.Logger
	upgrader     websocket.Upgrader
	pingInterval time.Duration
}

// NewStreamHandler constructs StreamHandler accepting the given origins ("*" allows any).
func NewStreamHandler(facade StreamFacade, logger *slog.Logger, allowedOrigins []string) *StreamHandler {
	return &StreamHandler{
		facade:       facade,
		logger:       logger,
		upgrader:     websocket.Upgrader{CheckOrigin: originChecker(allowedOrigins)},
		pingInterval: defaultPingInterval,
	}
}

func originChecker(allowed []string) func(*http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		set[o] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}

// Orders handles GET /api/orders/stream.
func (h *StreamHandler) Orders(c *gin.Context) {
	filter := FilterFromQuery(c)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	sub := h.facade.Subscribe()
	defer sub.Close()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			return
		case snapshot, ok := <-sub.C():
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
					time.Now().Add(writeWait))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(snapshotMessage(snapshot, filter)); err != nil {
				h.logger.Debug("websocket write failed", slog.String("error", err.Error()))
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

func snapshotMessage(snapshot model.Snapshot, filter model.OrderFilter) dto.StreamMessage {
	orders := usecase.Filter(snapshot.Orders, filter)
	return dto.StreamMessage{
		Type:    dto.SnapshotMessageType,
		Version: snapshot.Version,
		Orders:  dto.NewOrderList(orders),
		Summary: dto.NewSummaryResponse(usecase.Summarize(orders)),
	}
}
