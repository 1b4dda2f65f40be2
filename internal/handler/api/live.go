package api

import (
	"net/http"
	"sync"
	"time"

	"MarketMood/internal/domain/models"
	applogger "MarketMood/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// liveConn wraps a subscriber connection with its write lock. The websocket
// package allows at most one concurrent writer per connection, and broadcasts
// run in the goroutine of whichever request computed fresh moods.
type liveConn struct {
	conn *websocket.Conn
	wmu  sync.Mutex
}

func (c *liveConn) writeJSON(v interface{}) error {
	c.wmu.Lock()
	defer c.wmu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	return c.conn.WriteJSON(v)
}

// LiveHub fans freshly computed moods out to WebSocket subscribers.
type LiveHub struct {
	upgrader websocket.Upgrader
	l        *applogger.Logger

	mu    sync.Mutex
	conns map[*websocket.Conn]*liveConn
}

func NewLiveHub(l *applogger.Logger) *LiveHub {
	return &LiveHub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browser clients connect from the static frontend origin.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		l:     l,
		conns: make(map[*websocket.Conn]*liveConn),
	}
}

// Serve upgrades the request and keeps the connection registered until the
// peer goes away.
func (h *LiveHub) Serve(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	h.mu.Lock()
	h.conns[conn] = &liveConn{conn: conn}
	n := len(h.conns)
	h.mu.Unlock()
	if h.l != nil {
		h.l.Debug("live subscriber connected", applogger.Int("subscribers", n))
	}

	// Reads are discarded; the read loop only notices disconnects.
	go func() {
		defer h.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	return nil
}

// BroadcastMoods pushes moods to every subscriber. Implements
// usecase.MoodBroadcaster. Safe to call from concurrent requests.
func (h *LiveHub) BroadcastMoods(moods []*models.DailyMood) {
	payload := struct {
		Type  string              `json:"type"`
		Moods []*models.DailyMood `json:"moods"`
	}{Type: "moods", Moods: moods}

	h.mu.Lock()
	conns := make([]*liveConn, 0, len(h.conns))
	for _, lc := range h.conns {
		conns = append(conns, lc)
	}
	h.mu.Unlock()

	for _, lc := range conns {
		if err := lc.writeJSON(payload); err != nil {
			h.drop(lc.conn)
		}
	}
}

// Close tears down every subscriber connection.
func (h *LiveHub) Close() {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.conns))
	for conn := range h.conns {
		conns = append(conns, conn)
	}
	h.conns = make(map[*websocket.Conn]*liveConn)
	h.mu.Unlock()

	for _, conn := range conns {
		_ = conn.Close()
	}
}

func (h *LiveHub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
	_ = conn.Close()
}
