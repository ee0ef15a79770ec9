package wiki

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

// fakeWiki serves canned MediaWiki responses keyed by the request shape.
type fakeWiki struct {
	suggestion string
	hits       []string
	page       map[string]any
	links      []string
	extract    string
	apiErr     *APIError
	lastUA     atomic.Value
	lastQuery  atomic.Value
}

func (f *fakeWiki) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f.lastUA.Store(r.Header.Get("User-Agent"))
	w.Header().Set("Content-Type", "application/json")
	if q.Get("format") != "json" || q.Get("formatversion") != "2" || q.Get("action") != "query" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if f.apiErr != nil {
		_ = json.NewEncoder(w).Encode(map[string]any{"error": f.apiErr})
		return
	}
	switch {
	case q.Get("list") == "search":
		hits := make([]map[string]any, 0, len(f.hits))
		for _, h := range f.hits {
			hits = append(hits, map[string]any{"ns": 0, "title": h})
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"query": map[string]any{
			"searchinfo": map[string]any{"suggestion": f.suggestion},
			"search":     hits,
		}})
	case q.Get("prop") == "info|pageprops":
		f.lastQuery.Store(q)
		_ = json.NewEncoder(w).Encode(map[string]any{"query": map[string]any{"pages": []any{f.page}}})
	case q.Get("prop") == "links":
		links := make([]map[string]any, 0, len(f.links))
		for _, l := range f.links {
			links = append(links, map[string]any{"ns": 0, "title": l})
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"query": map[string]any{"pages": []any{map[string]any{"pageid": f.page["pageid"], "links": links}}}})
	case q.Get("prop") == "extracts":
		if q.Get("exsentences") != "3" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"query": map[string]any{"pages": []any{map[string]any{"pageid": f.page["pageid"], "extract": f.extract}}}})
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func newTestClient(t *testing.T, f *fakeWiki) *Client {
	t.Helper()
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	return NewClient(WithEndpoint(srv.URL), WithHTTPClient(srv.Client()), WithUserAgent("goanswer-test"))
}

func TestSummary_Success(t *testing.T) {
	f := &fakeWiki{
		hits:    []string{"Mustafa Kemal Atatürk"},
		page:    map[string]any{"pageid": 42, "title": "Mustafa Kemal Atatürk", "fullurl": "https://tr.wikipedia.org/wiki/Mustafa_Kemal_Atat%C3%BCrk"},
		extract: "  One. Two. Three.  ",
	}
	c := newTestClient(t, f)
	got, err := c.Summary(context.Background(), SummaryRequest{Title: "Atatürk", Lang: "tr", Sentences: 3, AutoSuggest: true, FollowRedirect: true})
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if got.Extract != "One. Two. Three." {
		t.Fatalf("unexpected extract: %q", got.Extract)
	}
	if got.Title != "Mustafa Kemal Atatürk" || got.PageID != 42 {
		t.Fatalf("unexpected page: %+v", got)
	}
	if ua, _ := f.lastUA.Load().(string); ua != "goanswer-test" {
		t.Fatalf("user agent not sent: %q", ua)
	}
	q, _ := f.lastQuery.Load().(interface{ Get(string) string })
	if q == nil || q.Get("redirects") != "1" || q.Get("titles") != "Mustafa Kemal Atatürk" {
		t.Fatalf("page info query missing redirects or suggested title")
	}
}

func TestSummary_SuggestionWinsOverHit(t *testing.T) {
	f := &fakeWiki{
		suggestion: "Ankara",
		hits:       []string{"Ankara Kalesi"},
		page:       map[string]any{"pageid": 7, "title": "Ankara"},
		extract:    "Capital.",
	}
	c := newTestClient(t, f)
	if _, err := c.Summary(context.Background(), SummaryRequest{Title: "Ankra", Lang: "tr", Sentences: 3, AutoSuggest: true}); err != nil {
		t.Fatalf("summary: %v", err)
	}
	q, _ := f.lastQuery.Load().(interface{ Get(string) string })
	if q.Get("titles") != "Ankara" {
		t.Fatalf("expected suggestion to be used, got %q", q.Get("titles"))
	}
	if q.Get("redirects") != "" {
		t.Fatalf("redirects should be off when not requested")
	}
}

func TestSummary_NoSearchHits_NotFound(t *testing.T) {
	c := newTestClient(t, &fakeWiki{})
	_, err := c.Summary(context.Background(), SummaryRequest{Title: "xyzzy-nonexistent-topic-42", Lang: "tr", AutoSuggest: true})
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestSummary_MissingPage_NotFound(t *testing.T) {
	f := &fakeWiki{page: map[string]any{"title": "Nope", "missing": true}}
	c := newTestClient(t, f)
	_, err := c.Summary(context.Background(), SummaryRequest{Title: "Nope", Lang: "tr"})
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestSummary_Disambiguation(t *testing.T) {
	f := &fakeWiki{
		page:  map[string]any{"pageid": 9, "title": "Mercury", "pageprops": map[string]any{"disambiguation": ""}},
		links: []string{"Mercury (planet)", "Mercury (element)"},
	}
	c := newTestClient(t, f)
	_, err := c.Summary(context.Background(), SummaryRequest{Title: "Mercury", Lang: "en", Sentences: 3})
	var amb *AmbiguousError
	if !errors.As(err, &amb) {
		t.Fatalf("expected AmbiguousError, got %v", err)
	}
	if len(amb.Options) != 2 || amb.Options[0] != "Mercury (planet)" {
		t.Fatalf("unexpected options: %v", amb.Options)
	}
	if !strings.Contains(amb.Error(), "Mercury (element)") {
		t.Fatalf("error text should list options: %q", amb.Error())
	}
}

func TestSummary_APIError(t *testing.T) {
	c := newTestClient(t, &fakeWiki{apiErr: &APIError{Code: "maxlag", Info: "Waiting"}})
	_, err := c.Summary(context.Background(), SummaryRequest{Title: "X", Lang: "en"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Code != "maxlag" {
		t.Fatalf("expected APIError, got %v", err)
	}
}

func TestSummary_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()
	c := NewClient(WithEndpoint(srv.URL), WithHTTPClient(srv.Client()))
	_, err := c.Summary(context.Background(), SummaryRequest{Title: "X", Lang: "en"})
	if err == nil || !strings.Contains(err.Error(), "503") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestArticleURL(t *testing.T) {
	got := ArticleURL(DefaultArticleBase, "tr", "Mustafa Kemal Atatürk")
	if got != "https://tr.wikipedia.org/wiki/Mustafa_Kemal_Atatürk" {
		t.Fatalf("unexpected url: %q", got)
	}
	if got := ArticleURL("http://example.test/wiki", "en", "Go"); got != "http://example.test/wiki/Go" {
		t.Fatalf("unexpected url without trailing slash: %q", got)
	}
}
