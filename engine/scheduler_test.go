package engine

import (
	"context"
	"errors"
	"testing"
	"time"
)

type countingStepper struct {
	frames []TickContext
	log    *[]string
}

func (c *countingStepper) Tick(ctx TickContext) int {
	c.frames = append(c.frames, ctx)
	if c.log != nil {
		*c.log = append(*c.log, "tick")
	}
	return len(c.frames)
}

func TestSchedulerStopsAtMaxTicks(t *testing.T) {
	stepper := &countingStepper{}
	var rendered []int
	sink := SinkFunc[int](func(n int) error {
		rendered = append(rendered, n)
		return nil
	})

	clock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock.AutoStep = 16 * time.Millisecond

	s := NewScheduler[int](stepper, sink, 0, WithMaxTicks[int](5), WithClock[int](clock))
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Expected nil error at tick limit, got %v", err)
	}

	if s.Frames() != 5 {
		t.Errorf("Expected 5 frames, got %d", s.Frames())
	}
	if len(rendered) != 5 || rendered[4] != 5 {
		t.Errorf("Expected render after every tick, got %v", rendered)
	}
	for i, f := range stepper.frames {
		if f.Frame != uint64(i+1) {
			t.Errorf("Frame %d: expected counter %d, got %d", i, i+1, f.Frame)
		}
		if i > 0 && f.Now.Sub(stepper.frames[i-1].Now) != 16*time.Millisecond {
			t.Errorf("Frame %d: expected 16ms clock step", i)
		}
	}
}

func TestSchedulerInboxRunsBeforeTick(t *testing.T) {
	var order []string
	stepper := &countingStepper{log: &order}
	s := NewScheduler[int](stepper, nil, 0)

	s.Inbox <- func() { order = append(order, "input") }
	s.Step()

	if len(order) != 2 || order[0] != "input" || order[1] != "tick" {
		t.Errorf("Expected [input tick], got %v", order)
	}
}

func TestSchedulerCancellation(t *testing.T) {
	stepper := &countingStepper{}
	s := NewScheduler[int](stepper, nil, time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := s.Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected deadline exceeded, got %v", err)
	}
	if s.Frames() == 0 {
		t.Error("Expected at least one frame before cancellation")
	}
}

func TestSchedulerSinkErrorDoesNotStop(t *testing.T) {
	stepper := &countingStepper{}
	sink := SinkFunc[int](func(int) error { return errors.New("screen gone") })
	s := NewScheduler[int](stepper, sink, 0, WithMaxTicks[int](3))

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Expected nil, got %v", err)
	}
	if s.Frames() != 3 {
		t.Errorf("Expected 3 frames despite sink errors, got %d", s.Frames())
	}
}

func TestSinksFanOut(t *testing.T) {
	var got []int
	record := SinkFunc[int](func(v int) error { got = append(got, v); return nil })
	fail := SinkFunc[int](func(int) error { return errors.New("first") })
	failLater := SinkFunc[int](func(int) error { return errors.New("second") })

	err := Sinks[int]{fail, record, failLater, record}.Render(7)
	if err == nil || err.Error() != "first" {
		t.Errorf("Expected first error, got %v", err)
	}
	if len(got) != 2 || got[0] != 7 || got[1] != 7 {
		t.Errorf("Expected every sink to run, got %v", got)
	}
}
