package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	apperr "github.com/matzehuels/hillclimb/pkg/errors"
	"github.com/matzehuels/hillclimb/pkg/observability"
	"github.com/matzehuels/hillclimb/pkg/pipeline"
)

const reference = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
`

const enclosed = `Saaaa
azzza
azEza
azzza
aaaaa
`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	srv := NewServer(pipeline.NewRunner(logger), nil, Config{Workers: 2})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, ts *httptest.Server, query, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(ts.URL+"/v1/solve"+query, "text/plain", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST error: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body := decode[HealthResponse](t, resp)
	if body.Status != "ok" || body.Version == "" {
		t.Errorf("body = %+v, want status ok and a version", body)
	}
	if resp.Header.Get(RequestIDHeader) == "" {
		t.Error("response missing X-Request-ID")
	}
}

func TestSolve(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		query    string
		cost     int
		withPath bool
	}{
		{"", 31, false},
		{"?challenge=1", 31, false},
		{"?challenge=2", 29, false},
		{"?challenge=1&path=true", 31, true},
		{"?challenge=2&path=1", 29, true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			resp := post(t, ts, tt.query, reference)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, want 200", resp.StatusCode)
			}
			body := decode[SolveResponse](t, resp)
			if body.Cost != tt.cost {
				t.Errorf("cost = %d, want %d", body.Cost, tt.cost)
			}
			if body.Sources < 1 || body.Expanded < 1 {
				t.Errorf("sources/expanded = %d/%d, want positive", body.Sources, body.Expanded)
			}
			if !tt.withPath {
				if body.Path != nil {
					t.Errorf("path = %v, want omitted", body.Path)
				}
				return
			}
			if len(body.Path) != tt.cost+1 {
				t.Fatalf("path length = %d, want %d", len(body.Path), tt.cost+1)
			}
			if last := body.Path[len(body.Path)-1]; last != [2]int{2, 5} {
				t.Errorf("path ends at %v, want goal [2 5]", last)
			}
		})
	}
}

func TestSolve_Errors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name   string
		query  string
		body   string
		status int
		code   apperr.Code
	}{
		{"empty body", "", "", http.StatusBadRequest, apperr.ErrCodeMalformedGrid},
		{"ragged grid", "", "Sab\nabcE\n", http.StatusBadRequest, apperr.ErrCodeMalformedGrid},
		{"bad glyph", "", "S#E\n", http.StatusBadRequest, apperr.ErrCodeMalformedGrid},
		{"missing goal", "", "Sab\n", http.StatusBadRequest, apperr.ErrCodeMissingEndpoint},
		{"bad challenge", "?challenge=3", reference, http.StatusBadRequest, apperr.ErrCodeInvalidInput},
		{"non-numeric challenge", "?challenge=two", reference, http.StatusBadRequest, apperr.ErrCodeInvalidInput},
		{"bad path flag", "?path=maybe", reference, http.StatusBadRequest, apperr.ErrCodeInvalidInput},
		{"unreachable from start", "?challenge=1", enclosed, http.StatusUnprocessableEntity, apperr.ErrCodeNotFound},
		{"unreachable from all", "?challenge=2", enclosed, http.StatusUnprocessableEntity, apperr.ErrCodeNoPathFromAnySource},
		{"too large", "", strings.Repeat("a", apperr.MaxGridBytes+1), http.StatusBadRequest, apperr.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, ts, tt.query, tt.body)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			body := decode[ErrorResponse](t, resp)
			if body.Code != tt.code {
				t.Errorf("code = %s, want %s (message %q)", body.Code, tt.code, body.Message)
			}
			if body.RequestID == "" || body.RequestID != resp.Header.Get(RequestIDHeader) {
				t.Errorf("request_id = %q, header = %q", body.RequestID, resp.Header.Get(RequestIDHeader))
			}
			if strings.HasPrefix(body.Message, string(body.Code)) {
				t.Errorf("message %q should not repeat the code", body.Message)
			}
		})
	}
}

func TestSolve_MethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/v1/solve")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

func TestRequestID_EchoesClientValue(t *testing.T) {
	ts := newTestServer(t)
	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/v1/solve", strings.NewReader("Sab\n"))
	req.Header.Set(RequestIDHeader, "req-42")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get(RequestIDHeader); got != "req-42" {
		t.Errorf("X-Request-ID = %q, want %q", got, "req-42")
	}
	if body := decode[ErrorResponse](t, resp); body.RequestID != "req-42" {
		t.Errorf("request_id = %q, want %q", body.RequestID, "req-42")
	}
}

func TestRequestID_Generated(t *testing.T) {
	ts := newTestServer(t)
	a := post(t, ts, "", reference).Header.Get(RequestIDHeader)
	b := post(t, ts, "", reference).Header.Get(RequestIDHeader)
	if len(a) != 36 || len(b) != 36 {
		t.Errorf("generated IDs %q, %q should be UUIDs", a, b)
	}
	if a == b {
		t.Errorf("generated IDs should differ, both %q", a)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code apperr.Code
		want int
	}{
		{apperr.ErrCodeMalformedGrid, http.StatusBadRequest},
		{apperr.ErrCodeMissingEndpoint, http.StatusBadRequest},
		{apperr.ErrCodeInvalidInput, http.StatusBadRequest},
		{apperr.ErrCodeNotFound, http.StatusUnprocessableEntity},
		{apperr.ErrCodeNoPathFromAnySource, http.StatusUnprocessableEntity},
		{apperr.ErrCodeTimeout, http.StatusGatewayTimeout},
		{apperr.ErrCodeInternal, http.StatusInternalServerError},
		{"", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := StatusFor(tt.code); got != tt.want {
			t.Errorf("StatusFor(%q) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

type recordingHTTPHooks struct {
	observability.NoopHTTPHooks
	statuses chan int
}

func (h *recordingHTTPHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.statuses <- status
}

func TestAccessLog_ReportsStatus(t *testing.T) {
	hooks := &recordingHTTPHooks{statuses: make(chan int, 1)}
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	ts := newTestServer(t)
	post(t, ts, "", "Sab\n")

	select {
	case got := <-hooks.statuses:
		if got != http.StatusBadRequest {
			t.Errorf("hook status = %d, want 400", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("OnResponse was not called")
	}
}

func TestListenAndServe_StopsOnCancel(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{})
	srv := NewServer(pipeline.NewRunner(logger), nil, Config{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe() error = %v, want nil", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("ListenAndServe did not return after cancel")
	}
}
