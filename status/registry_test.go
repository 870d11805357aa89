package status

import (
	"sync"
	"testing"
)

func TestRegistryReturnsStablePointers(t *testing.T) {
	r := NewRegistry()
	a := r.Counter(MetricGoals)
	b := r.Counter(MetricGoals)
	if a != b {
		t.Fatal("Expected same counter pointer for same name")
	}
	a.Add(2)
	if b.Load() != 2 {
		t.Errorf("Expected 2, got %d", b.Load())
	}
	if r.Count() != 1 {
		t.Errorf("Expected 1 metric, got %d", r.Count())
	}
}

func TestRegistryConcurrentCounters(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				r.Counter(MetricTicks).Add(1)
			}
		}()
	}
	wg.Wait()
	if got := r.Counter(MetricTicks).Load(); got != 8000 {
		t.Errorf("Expected 8000, got %d", got)
	}
}

func TestSamplesOrdered(t *testing.T) {
	r := NewRegistry()
	r.Counter(MetricTicks).Store(3)
	r.Counter(MetricBounces).Store(1)
	r.Gauge(MetricBallSpeed).Set(4.256)
	r.Label(MetricPlayerMode).Set("intercept")

	got := r.Samples()
	want := []Sample{
		{MetricBounces, "1"},
		{MetricTicks, "3"},
		{MetricBallSpeed, "4.26"},
		{MetricPlayerMode, "intercept"},
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d samples, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Sample %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestLabelTruncates(t *testing.T) {
	var l Label
	if l.Get() != "" {
		t.Error("Expected empty zero label")
	}
	l.Set("abcdefghijklmnopqrstuvwxyz")
	if len(l.Get()) != MaxLabelLen {
		t.Errorf("Expected truncation to %d, got %q", MaxLabelLen, l.Get())
	}
}

func TestGaugeZeroValue(t *testing.T) {
	var g Gauge
	if g.Get() != 0 {
		t.Errorf("Expected 0, got %v", g.Get())
	}
	g.Set(-1.5)
	if g.Get() != -1.5 {
		t.Errorf("Expected -1.5, got %v", g.Get())
	}
}
