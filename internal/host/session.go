package host

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/flouhou/internal/canvas"
	"github.com/vovakirdan/flouhou/internal/core"
	"github.com/vovakirdan/flouhou/internal/flouhou"
)

// EndReason describes why a run ended.
type EndReason string

const (
	EndDeath EndReason = "death" // Out of lives; the game restarted
	EndQuit  EndReason = "quit"  // The player quit from the pause screen
)

// RunResult summarizes one run, from a fresh state to death or quit.
type RunResult struct {
	RunID     uuid.UUID
	Player    string
	Hits      int
	Ticks     uint32
	Reason    EndReason
	StartedAt time.Time
	EndedAt   time.Time
}

// Status is a snapshot of the values shown next to the playfield.
type Status struct {
	RunID   uuid.UUID
	Lives   int
	Hits    int
	Ticks   uint32
	Paused  bool
	Dropped int
	Quit    bool
}

// Options configures a Session.
type Options struct {
	Player   string          // Name attached to run results
	Logger   *log.Logger     // Defaults to a discarding logger
	OnRunEnd func(RunResult) // Called after the session lock is released
	Now      func() time.Time
}

// Session owns one game and applies events to it in order.
// All methods are safe for concurrent use; the game itself is only touched
// while the session lock is held.
type Session struct {
	mu       sync.Mutex
	id       uuid.UUID
	state    *flouhou.State
	input    core.EdgeTracker
	frame    *canvas.Recorder
	player   string
	logger   *log.Logger
	onRunEnd func(RunResult)
	now      func() time.Time
	ended    []RunResult // Results waiting for onRunEnd

	runID    uuid.UUID
	runStart time.Time
	dropped  int // Drops already logged for the current state
	runs     int
	quit     bool
}

// NewSession creates a session with a fresh game and renders its first frame.
func NewSession(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	s := &Session{
		id:       uuid.New(),
		state:    flouhou.New(),
		frame:    canvas.NewRecorder(),
		player:   opts.Player,
		logger:   logger,
		onRunEnd: opts.OnRunEnd,
		now:      now,
	}
	s.startRun()
	flouhou.Render(s.state, s.frame)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Handle applies one event and reports whether the game asked to quit.
// Events arriving after quit are ignored.
func (s *Session) Handle(evt Event) bool {
	s.mu.Lock()
	quit := s.handle(evt)
	ended := s.takeEnded()
	s.mu.Unlock()

	s.notify(ended)
	return quit
}

// handle applies evt. Caller must hold s.mu.
func (s *Session) handle(evt Event) bool {
	if s.quit {
		return true
	}

	switch evt.Kind {
	case EventInput:
		if !evt.Button.Valid() {
			return false
		}
		if evt.Pressed {
			s.input.Press(evt.Button)
		} else {
			s.input.Release(evt.Button)
		}
	case EventTick:
		s.tick()
	}
	return s.quit
}

// tick runs one simulation step and records the resulting frame.
// Caller must hold s.mu.
func (s *Session) tick() {
	wasDying := !s.state.Player.Alive()
	hits := s.state.Enemy.HitsTaken
	ticks := s.state.Ticks

	s.state.Tick(s.input.Current(), s.input.Previous())
	s.input.Advance()

	// Lives only come back through a full reset
	if wasDying && s.state.Player.Alive() {
		s.dropped = 0
		s.endRun(hits, ticks, EndDeath)
		s.startRun()
	}

	if d := s.state.Dropped(); d > s.dropped {
		s.logger.Warn("projectile dropped, list full",
			"run", s.runID,
			"dropped", d-s.dropped,
			"pews", s.state.Pews.Len(),
			"enemy_pews", s.state.EnemyPews.Len(),
		)
		s.dropped = d
	}

	if s.state.ShouldQuit {
		s.quit = true
		s.endRun(s.state.Enemy.HitsTaken, s.state.Ticks, EndQuit)
	}

	s.frame.Reset()
	flouhou.Render(s.state, s.frame)
}

func (s *Session) startRun() {
	s.runID = uuid.New()
	s.runStart = s.now()
	s.runs++
	s.logger.Debug("run started", "session", s.id, "run", s.runID, "player", s.player)
}

func (s *Session) endRun(hits int, ticks uint32, reason EndReason) {
	result := RunResult{
		RunID:     s.runID,
		Player:    s.player,
		Hits:      hits,
		Ticks:     ticks,
		Reason:    reason,
		StartedAt: s.runStart,
		EndedAt:   s.now(),
	}
	s.logger.Info("run ended",
		"run", result.RunID,
		"player", result.Player,
		"hits", result.Hits,
		"ticks", result.Ticks,
		"reason", result.Reason,
	)
	s.ended = append(s.ended, result)
}

// takeEnded returns and clears the results of runs ended under the current
// lock. Caller must hold s.mu.
func (s *Session) takeEnded() []RunResult {
	ended := s.ended
	s.ended = nil
	return ended
}

// notify reports ended runs. It must be called without s.mu held so the
// callback may use the session.
func (s *Session) notify(ended []RunResult) {
	if s.onRunEnd == nil {
		return
	}
	for _, r := range ended {
		s.onRunEnd(r)
	}
}

// Run consumes events until the game quits, the channel is closed or ctx is
// cancelled. Only cancellation is reported as an error.
func (s *Session) Run(ctx context.Context, events <-chan Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case evt, ok := <-events:
			if !ok {
				return nil
			}
			if s.Handle(evt) {
				return nil
			}
		}
	}
}

// Close ends the current run as a quit unless the game already quit.
// Later events are ignored.
func (s *Session) Close() {
	s.mu.Lock()
	if !s.quit {
		s.quit = true
		s.endRun(s.state.Enemy.HitsTaken, s.state.Ticks, EndQuit)
	}
	ended := s.takeEnded()
	s.mu.Unlock()

	s.notify(ended)
}

// Frame replays the most recent frame onto dst.
func (s *Session) Frame(dst canvas.Canvas) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frame.Replay(dst)
}

// Status returns the values shown next to the playfield.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{
		RunID:   s.runID,
		Lives:   s.state.Player.LivesLeft,
		Hits:    s.state.Enemy.HitsTaken,
		Ticks:   s.state.Ticks,
		Paused:  s.state.Paused,
		Dropped: s.state.Dropped(),
		Quit:    s.quit,
	}
}

// Summary returns a one-line description of the game state.
func (s *Session) Summary() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Summary()
}

// Runs returns how many runs have been started, including the current one.
func (s *Session) Runs() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runs
}
