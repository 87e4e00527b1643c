package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wavepark/shift-manager/internal/config"
)

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/employees", "GET", 200, 10*time.Millisecond)
	m.RecordRequest("/employees", "GET", 200, 30*time.Millisecond)
	m.RecordError("/employees", "POST", "FORBIDDEN")

	snap := m.Snapshot()
	if snap.TotalRequestCount != 2 {
		t.Fatalf("total = %d", snap.TotalRequestCount)
	}
	if snap.Requests["/employees|GET|200"] != 2 {
		t.Fatalf("requests = %v", snap.Requests)
	}
	if snap.Errors["/employees|POST|FORBIDDEN"] != 1 {
		t.Fatalf("errors = %v", snap.Errors)
	}
	if snap.AverageLatencyMS != 20 {
		t.Fatalf("avg latency = %v", snap.AverageLatencyMS)
	}

	snap.Requests["/employees|GET|200"] = 99
	if m.Snapshot().Requests["/employees|GET|200"] != 2 {
		t.Fatal("snapshot must not alias internal maps")
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, time.Millisecond)
	m.RecordError("/", "GET", "X")
	if snap := m.Snapshot(); snap.TotalRequestCount != 0 {
		t.Fatalf("snapshot = %+v", snap)
	}
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	metrics := NewMetrics()

	app := fiber.New()
	app.Use(RequestLogger(zap.New(core), metrics))
	app.Get("/ping", func(c *fiber.Ctx) error {
		if RequestID(c) == "" {
			t.Error("request id missing in handler")
		}
		return c.SendString("pong")
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if got := resp.Header.Get(RequestIDHeader); got != "req-123" {
		t.Fatalf("request id header = %q", got)
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.Header.Get(RequestIDHeader) == "" {
		t.Fatal("generated request id missing")
	}

	if logs.Len() != 2 {
		t.Fatalf("log entries = %d", logs.Len())
	}
	entry := logs.All()[0]
	if entry.ContextMap()["request_id"] != "req-123" || entry.ContextMap()["status"] != int64(200) {
		t.Fatalf("fields = %v", entry.ContextMap())
	}
	if metrics.Snapshot().Requests["/ping|GET|200"] != 2 {
		t.Fatalf("metrics = %v", metrics.Snapshot().Requests)
	}
}

func TestNewLogger(t *testing.T) {
	for _, level := range []string{"debug", "INFO", "bogus"} {
		logger, err := NewLogger(config.LoggerConfig{Level: level})
		if err != nil {
			t.Fatalf("NewLogger(%q): %v", level, err)
		}
		_ = logger.Sync()
	}
}
