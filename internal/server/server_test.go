package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hyperifyio/goanswer/internal/answer"
	"github.com/hyperifyio/goanswer/internal/app"
	"github.com/hyperifyio/goanswer/internal/metrics"
)

func init() { gin.SetMode(gin.TestMode) }

type stubAnswerer struct{ got []string }

func (s *stubAnswerer) Answer(_ context.Context, raw string) []answer.Record {
	s.got = append(s.got, raw)
	q := strings.TrimSpace(raw)
	if q == "" {
		return nil
	}
	return []answer.Record{{Title: q, Snippet: "snippet of " + q, Link: "https://example.org/" + q}}
}

func newTestRouter(t *testing.T) (*gin.Engine, *stubAnswerer, *prometheus.Registry) {
	t.Helper()
	stub := &stubAnswerer{}
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.ObserveAnswer(answer.SourcePrimary)
	return NewRouter(NewAPI(stub, app.BuildInfo{Version: "1.2.3", Commit: "abc", Date: "today"}), reg), stub, reg
}

func decodeAnswers(t *testing.T, rec *httptest.ResponseRecorder) []answer.Record {
	t.Helper()
	var body struct {
		Answers []answer.Record `json:"answers"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return body.Answers
}

func TestAsk_JSON(t *testing.T) {
	router, stub, _ := newTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(`{"question":" Atatürk "}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	got := decodeAnswers(t, rec)
	if len(got) != 1 || got[0].Title != "Atatürk" {
		t.Fatalf("answers: %+v", got)
	}
	if len(stub.got) != 1 || stub.got[0] != " Atatürk " {
		t.Fatalf("raw question should reach the pipeline untouched: %q", stub.got)
	}
	if rec.Header().Get(HeaderRequestID) == "" {
		t.Fatal("missing request id header")
	}
}

func TestAsk_FormAndBlank(t *testing.T) {
	router, _, _ := newTestRouter(t)
	form := url.Values{"question": {"   "}}
	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set(HeaderRequestID, "req-42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != `{"answers":[]}` {
		t.Fatalf("blank question body: %s", rec.Body.String())
	}
	if got := rec.Header().Get(HeaderRequestID); got != "req-42" {
		t.Fatalf("request id not echoed: %q", got)
	}
}

func TestAsk_BadRequests(t *testing.T) {
	router, stub, _ := newTestRouter(t)
	cases := []struct {
		name, ctype, body string
		want              int
	}{
		{"malformed json", "application/json", `{"question":`, http.StatusBadRequest},
		{"wrong type", "application/json", `{"question":42}`, http.StatusBadRequest},
		{"plain text", "text/plain", "Atatürk", http.StatusUnsupportedMediaType},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(tc.body))
		req.Header.Set("Content-Type", tc.ctype)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != tc.want {
			t.Fatalf("%s: status = %d, want %d", tc.name, rec.Code, tc.want)
		}
	}
	if len(stub.got) != 0 {
		t.Fatalf("pipeline should not run for bad requests: %q", stub.got)
	}
}

func TestHealthz(t *testing.T) {
	router, _, _ := newTestRouter(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Status string        `json:"status"`
		Build  app.BuildInfo `json:"build"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Status != "ok" || body.Build.Version != "1.2.3" {
		t.Fatalf("health body: %+v", body)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router, _, _ := newTestRouter(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `answers_total{source="primary"} 1`) {
		t.Fatalf("metrics body missing answers counter:\n%s", rec.Body.String())
	}
}
