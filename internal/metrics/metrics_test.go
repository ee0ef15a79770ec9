package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.ObserveTier("primary", "not_found", 15*time.Millisecond)
	m.ObserveTier("primary", "not_found", 5*time.Millisecond)
	m.ObserveTier("fallback", "success", time.Millisecond)
	m.ObserveAnswer("fallback")

	if got := testutil.ToFloat64(m.TierOutcomes.WithLabelValues("primary", "not_found")); got != 2 {
		t.Fatalf("expected 2 primary not_found, got %v", got)
	}
	if got := testutil.ToFloat64(m.Answers.WithLabelValues("fallback")); got != 1 {
		t.Fatalf("expected 1 fallback answer, got %v", got)
	}
	if n := testutil.CollectAndCount(m.TierDuration); n != 2 {
		t.Fatalf("expected 2 duration series, got %d", n)
	}
}
