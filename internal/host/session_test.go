package host

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/flouhou/internal/canvas"
	"github.com/vovakirdan/flouhou/internal/core"
)

func TestSessionPressReleaseBetweenTicks(t *testing.T) {
	s := NewSession(Options{})
	s.Handle(Press(core.ButtonShoot))
	s.Handle(Release(core.ButtonShoot))
	s.Handle(Tick())

	if got := s.state.Pews.Len(); got != 1 {
		t.Fatalf("pews = %d, want 1", got)
	}
	if s.input.Current().Shoot {
		t.Error("shoot should be released after the tick")
	}
}

func TestSessionIgnoresUnknownButton(t *testing.T) {
	s := NewSession(Options{})
	if s.Handle(Event{Kind: EventInput, Button: core.Button(99), Pressed: true}) {
		t.Fatal("unknown button should not quit")
	}
	if s.input.Current() != (core.Snapshot{}) {
		t.Errorf("unknown button changed input: %+v", s.input.Current())
	}
}

func TestSessionQuit(t *testing.T) {
	var results []RunResult
	s := NewSession(Options{
		Player:   "ada",
		OnRunEnd: func(r RunResult) { results = append(results, r) },
	})

	events := []Event{
		Press(core.ButtonBack), Tick(), // pause
		Release(core.ButtonBack), Tick(),
		Tick(),
		Press(core.ButtonBack), Tick(), // quit
	}
	quit := false
	for _, evt := range events {
		quit = s.Handle(evt)
	}
	if !quit {
		t.Fatal("expected quit")
	}
	if !s.Handle(Tick()) {
		t.Error("events after quit should keep reporting quit")
	}
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	r := results[0]
	if r.Reason != EndQuit || r.Player != "ada" || r.Ticks != 1 {
		t.Errorf("result = %+v", r)
	}
	if !s.Status().Quit {
		t.Error("Status().Quit should be set")
	}
}

func TestSessionDeathEndsRun(t *testing.T) {
	var results []RunResult
	s := NewSession(Options{OnRunEnd: func(r RunResult) { results = append(results, r) }})
	first := s.Status().RunID

	s.mu.Lock()
	s.state.Player.LivesLeft = 0
	s.state.Enemy.HitsTaken = 5
	s.mu.Unlock()

	for range 64 {
		s.Handle(Tick())
	}

	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	if results[0].Reason != EndDeath || results[0].Hits != 5 || results[0].RunID != first {
		t.Errorf("result = %+v", results[0])
	}
	st := s.Status()
	if st.RunID == first {
		t.Error("a new run should start after death")
	}
	if st.Lives != 3 || st.Hits != 0 {
		t.Errorf("status after reset = %+v", st)
	}
	if s.Runs() != 2 {
		t.Errorf("Runs() = %d, want 2", s.Runs())
	}
}

func TestSessionRunStopsOnClose(t *testing.T) {
	s := NewSession(Options{})
	ch := make(chan Event, 3)
	ch <- Tick()
	ch <- Tick()
	ch <- Tick()
	close(ch)

	if err := s.Run(context.Background(), ch); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := s.Status().Ticks; got != 3 {
		t.Errorf("Ticks = %d, want 3", got)
	}
}

func TestSessionRunCancelled(t *testing.T) {
	s := NewSession(Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Run(ctx, make(chan Event))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestSessionFrame(t *testing.T) {
	s := NewSession(Options{})
	rec := canvas.NewRecorder()
	s.Frame(rec)
	if rec.Len() == 0 {
		t.Fatal("initial frame should be recorded")
	}

	b := canvas.NewBitmap()
	s.Frame(b)
	if b.Count() == 0 {
		t.Error("frame replay should ink pixels")
	}
}

func TestSessionConcurrentTicksAndFrames(t *testing.T) {
	s := NewSession(Options{})
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for range 200 {
			s.Handle(Tick())
		}
	}()
	go func() {
		defer wg.Done()
		for range 200 {
			s.Frame(canvas.NewRecorder())
			_ = s.Summary()
		}
	}()
	wg.Wait()
	if got := s.Status().Ticks; got != 200 {
		t.Errorf("Ticks = %d, want 200", got)
	}
}

func TestSessionRunTimestamps(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	calls := 0
	var got RunResult
	s := NewSession(Options{
		Now: func() time.Time {
			calls++
			return base.Add(time.Duration(calls) * time.Second)
		},
		OnRunEnd: func(r RunResult) { got = r },
	})
	s.Handle(Press(core.ButtonBack))
	s.Handle(Tick())
	s.Handle(Release(core.ButtonBack))
	s.Handle(Tick())
	s.Handle(Tick())
	s.Handle(Press(core.ButtonBack))
	s.Handle(Tick())

	if !got.EndedAt.After(got.StartedAt) {
		t.Errorf("EndedAt %v should be after StartedAt %v", got.EndedAt, got.StartedAt)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	a, b := NewSession(Options{}), NewSession(Options{})
	r.Register(a)
	r.Register(b)
	if r.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", r.Count())
	}
	if got, ok := r.Get(a.ID()); !ok || got != a {
		t.Error("Get() should return the registered session")
	}
	r.Unregister(a.ID())
	if _, ok := r.Get(a.ID()); ok {
		t.Error("session still registered")
	}
	if r.Count() != 1 {
		t.Errorf("Count() = %d, want 1", r.Count())
	}

	if n := r.CloseAll(); n != 1 {
		t.Errorf("CloseAll() = %d, want 1", n)
	}
	if r.Count() != 0 {
		t.Errorf("Count() after CloseAll = %d, want 0", r.Count())
	}
	if !b.Status().Quit {
		t.Error("CloseAll should close registered sessions")
	}
	if a.Status().Quit {
		t.Error("unregistered session should stay open")
	}
}

func TestSessionClose(t *testing.T) {
	var results []RunResult
	s := NewSession(Options{OnRunEnd: func(r RunResult) { results = append(results, r) }})
	s.Handle(Tick())
	s.Handle(Tick())
	s.Close()
	s.Close()

	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	if results[0].Reason != EndQuit || results[0].Ticks != 2 {
		t.Errorf("result = %+v", results[0])
	}
	if !s.Handle(Tick()) {
		t.Error("closed session should report quit")
	}
}

func TestSessionCallbackMayQuerySession(t *testing.T) {
	tests := []struct {
		name string
		end  func(s *Session)
	}{
		{"close", func(s *Session) {
			s.Handle(Tick())
			s.Close()
		}},
		{"death", func(s *Session) {
			s.mu.Lock()
			s.state.Player.LivesLeft = 0
			s.mu.Unlock()
			for range 64 {
				s.Handle(Tick())
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s *Session
			var statuses []Status
			s = NewSession(Options{OnRunEnd: func(RunResult) {
				statuses = append(statuses, s.Status())
				_ = s.Summary()
				s.Frame(canvas.NewRecorder())
			}})

			done := make(chan struct{})
			go func() {
				defer close(done)
				tt.end(s)
			}()
			select {
			case <-done:
			case <-time.After(time.Second):
				t.Fatal("run end callback blocked on the session")
			}
			if len(statuses) == 0 {
				t.Fatal("callback not called")
			}
		})
	}
}
