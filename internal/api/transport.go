package api

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	applog "github.com/girijakangutkar/Expense-report-client/internal/log"
)

// traceTransport stamps every outgoing request with an X-Request-ID and logs
// method, path, status and duration.
type traceTransport struct {
	next http.RoundTripper
}

func newTraceTransport(next http.RoundTripper) *traceTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &traceTransport{next: next}
}

func (t *traceTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	requestID := generateRequestID()
	req.Header.Set("X-Request-ID", requestID)
	start := time.Now()

	resp, err := t.next.RoundTrip(req)

	durationMs := time.Since(start).Milliseconds()
	if err != nil {
		slog.WarnContext(req.Context(), "Request failed",
			applog.FieldComponent, applog.ComponentAPI,
			applog.FieldRequestID, requestID,
			applog.FieldMethod, req.Method,
			applog.FieldPath, req.URL.Path,
			applog.FieldDuration, durationMs,
			applog.FieldError, err.Error())
		return resp, err
	}

	level := slog.LevelDebug
	if resp.StatusCode >= 400 {
		level = slog.LevelWarn
	}
	slog.Log(req.Context(), level, "Request completed",
		applog.FieldComponent, applog.ComponentAPI,
		applog.FieldRequestID, requestID,
		applog.FieldMethod, req.Method,
		applog.FieldPath, req.URL.Path,
		applog.FieldStatusCode, resp.StatusCode,
		applog.FieldDuration, durationMs)
	return resp, nil
}

// generateRequestID creates a unique request ID for tracing.
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}
