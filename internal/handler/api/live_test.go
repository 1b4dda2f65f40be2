package api

import (
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"MarketMood/internal/domain/models"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

func newLiveTestServer(t *testing.T) (*LiveHub, *httptest.Server) {
	t.Helper()
	hub := NewLiveHub(nil)
	e := echo.New()
	e.GET("/api/live", hub.Serve)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return hub, srv
}

func dialLive(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/live"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func waitForSubscribers(t *testing.T, hub *LiveHub, want int) {
	t.Helper()
	for i := 0; i < 200; i++ {
		hub.mu.Lock()
		n := len(hub.conns)
		hub.mu.Unlock()
		if n == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("subscriber count never reached %d", want)
}

func TestBroadcastMoodsDeliversToSubscriber(t *testing.T) {
	hub, srv := newLiveTestServer(t)
	client := dialLive(t, srv)
	waitForSubscribers(t, hub, 1)

	hub.BroadcastMoods([]*models.DailyMood{
		{Symbol: "AAPL", Date: "2026-08-27", RSIScore: 55.5, SentimentScore: 1.25, ArticleCount: 4},
	})

	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg struct {
		Type  string             `json:"type"`
		Moods []models.DailyMood `json:"moods"`
	}
	if err := client.ReadJSON(&msg); err != nil {
		t.Fatalf("read broadcast: %v", err)
	}
	if msg.Type != "moods" || len(msg.Moods) != 1 {
		t.Fatalf("got %+v, want one moods message", msg)
	}
	if msg.Moods[0].Symbol != "AAPL" || msg.Moods[0].RSIScore != 55.5 {
		t.Errorf("unexpected mood payload %+v", msg.Moods[0])
	}
}

// Two requests that both compute fresh records broadcast from their own
// goroutines. Writes to a shared subscriber must be serialized.
func TestBroadcastMoodsConcurrentWriters(t *testing.T) {
	hub, srv := newLiveTestServer(t)
	client := dialLive(t, srv)
	waitForSubscribers(t, hub, 1)

	// Drain everything the hub sends so writes never block on a full buffer.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := client.ReadMessage(); err != nil {
				return
			}
		}
	}()

	moods := []*models.DailyMood{
		{Symbol: "MSFT", Date: "2026-08-27", RSIScore: 48.2, SentimentScore: -0.5, ArticleCount: 2},
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hub.BroadcastMoods(moods)
		}()
	}
	wg.Wait()

	hub.Close()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("reader did not observe close")
	}
}
