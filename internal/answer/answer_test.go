package answer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/hyperifyio/goanswer/internal/resolve"
)

type stubResolver struct {
	mu    sync.Mutex
	out   resolve.Outcome
	calls []string
}

func (s *stubResolver) Resolve(_ context.Context, q string) resolve.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, q)
	return s.out
}

type recordingObserver struct {
	tiers   []string
	answers []string
}

func (o *recordingObserver) ObserveTier(tier, outcome string, _ time.Duration) {
	o.tiers = append(o.tiers, tier+":"+outcome)
}

func (o *recordingObserver) ObserveAnswer(source string) { o.answers = append(o.answers, source) }

func TestAnswer_BlankInputYieldsNothing(t *testing.T) {
	primary := &stubResolver{out: resolve.Success("x", "y")}
	fallback := &stubResolver{}
	p := New(primary, fallback, Options{})
	for _, in := range []string{"", " ", "\t\n  "} {
		if got := p.Answer(context.Background(), in); len(got) != 0 {
			t.Fatalf("Answer(%q) = %v, want no records", in, got)
		}
	}
	if len(primary.calls) != 0 || len(fallback.calls) != 0 {
		t.Fatalf("resolvers must not run for blank input")
	}
}

func TestAnswer_PrimarySuccessSkipsFallback(t *testing.T) {
	primary := &stubResolver{out: resolve.Success("summary", "https://tr.wikipedia.org/wiki/Ankara")}
	fallback := &stubResolver{}
	obs := &recordingObserver{}
	got := New(primary, fallback, Options{Observer: obs}).Answer(context.Background(), "  Ankara ")
	want := []Record{{Title: "Ankara", Snippet: "summary", Link: "https://tr.wikipedia.org/wiki/Ankara"}}
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	if len(primary.calls) != 1 || primary.calls[0] != "Ankara" {
		t.Fatalf("primary should see the trimmed query once, got %v", primary.calls)
	}
	if len(fallback.calls) != 0 {
		t.Fatalf("fallback must not run after a primary success")
	}
	if len(obs.tiers) != 1 || obs.tiers[0] != "primary:success" || obs.answers[0] != SourcePrimary {
		t.Fatalf("unexpected observations: %v %v", obs.tiers, obs.answers)
	}
}

func TestAnswer_ClassifiedPrimaryFailuresFallBack(t *testing.T) {
	cases := map[string]resolve.Outcome{
		"ambiguous": resolve.Ambiguous(resolve.ErrAmbiguous),
		"not found": resolve.NotFound(resolve.ErrNotFound),
		"failure":   resolve.Failure(errors.New("dial tcp: timeout")),
	}
	for name, primaryOut := range cases {
		t.Run(name, func(t *testing.T) {
			primary := &stubResolver{out: primaryOut}
			fallback := &stubResolver{out: resolve.Success("from search", "https://search.test/?q=Mercury")}
			got := New(primary, fallback, Options{}).Answer(context.Background(), "Mercury")
			if len(got) != 1 {
				t.Fatalf("expected one record, got %d", len(got))
			}
			if got[0].Snippet != "from search" || got[0].Link != "https://search.test/?q=Mercury" || got[0].Title != "Mercury" {
				t.Fatalf("unexpected record: %+v", got[0])
			}
			if len(fallback.calls) != 1 || fallback.calls[0] != "Mercury" {
				t.Fatalf("fallback should run exactly once with the query, got %v", fallback.calls)
			}
		})
	}
}

func TestAnswer_FallbackFailureYieldsPlaceholder(t *testing.T) {
	primary := &stubResolver{out: resolve.NotFound(resolve.ErrNotFound)}
	failed := resolve.Failure(resolve.ErrTransport)
	failed.Link = "https://search.test/?q=x"
	fallback := &stubResolver{out: failed}
	obs := &recordingObserver{}
	got := New(primary, fallback, Options{Observer: obs}).Answer(context.Background(), "x")
	want := Record{Title: "x", Snippet: DefaultUnavailable, Link: "https://search.test/?q=x"}
	if len(got) != 1 || got[0] != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	if obs.answers[0] != SourcePlaceholder {
		t.Fatalf("expected placeholder source, got %v", obs.answers)
	}
}

func TestAnswer_PlaceholderLinkWhenFallbackHasNone(t *testing.T) {
	primary := &stubResolver{out: resolve.NotFound(resolve.ErrNotFound)}
	fallback := &stubResolver{out: resolve.Failure(resolve.ErrParse)}
	p := New(primary, fallback, Options{Unavailable: "Bilgi alınamadı.", PlaceholderLink: "about:blank"})
	got := p.Answer(context.Background(), "x")
	if got[0].Link != "about:blank" || got[0].Snippet != "Bilgi alınamadı." {
		t.Fatalf("unexpected record: %+v", got[0])
	}
	got = New(primary, fallback, Options{}).Answer(context.Background(), "x")
	if got[0].Link != DefaultPlaceholderLink {
		t.Fatalf("expected default placeholder link, got %q", got[0].Link)
	}
}

func TestAnswer_NilFallback(t *testing.T) {
	primary := &stubResolver{out: resolve.Ambiguous(resolve.ErrAmbiguous)}
	got := New(primary, nil, Options{}).Answer(context.Background(), "q")
	if len(got) != 1 || got[0].Snippet != DefaultUnavailable {
		t.Fatalf("unexpected: %+v", got)
	}
}
