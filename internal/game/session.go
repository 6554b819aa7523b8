package game

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"safepath/internal/motion"
)

// Phase is the top-level state of a self-defense session.
type Phase string

const (
	PhaseSetup     Phase = "setup"
	PhaseCountdown Phase = "countdown"
	PhasePlaying   Phase = "playing"
	PhaseResults   Phase = "results"
)

// InputMode selects which adapter feeds the session.
type InputMode string

const (
	ModeTap    InputMode = "tap"
	ModeCamera InputMode = "camera"
)

// Cue names a fire-and-forget presentation effect (sound/haptic/particle).
// The server forwards cues to the client; the engine never waits on them.
type Cue string

const (
	CueCountdown     Cue = "countdown"
	CueGo            Cue = "go"
	CueCorrect       Cue = "correct"
	CueCombo         Cue = "combo"
	CueMiss          Cue = "miss"
	CueLevelComplete Cue = "level-complete"
	CueLevelFail     Cue = "level-fail"
)

const (
	countdownStart = 3
	// interRoundPause is the fixed breather between a round resolving and
	// the next prompt appearing.
	interRoundPause = 500 * time.Millisecond

	pointsPerHit   = 10
	pointsPerCombo = 5

	confidencePass = 5
	confidenceFail = -2
)

// RoundResult records one presented move and its resolution. Appended to
// the session log once per round, never mutated afterwards.
type RoundResult struct {
	Move         DefenseMove
	Reacted      bool
	ReactionTime time.Duration
	Correct      bool
}

// Summary is the results-phase report for a finished session.
type Summary struct {
	LevelID         int
	CorrectCount    int
	TotalRounds     int
	ScorePercent    int
	Passed          bool
	AvgReactionMS   int // over correct rounds only
	MaxCombo        int
	PointsEarned    int
	ConfidenceDelta int
	Rounds          []RoundResult
}

// Completion is the event handed to the progress aggregator when an
// exercise finishes.
type Completion struct {
	ScenarioID  string
	Score       int
	MaxScore    int
	Choices     []string
	CompletedAt time.Time
}

// ProgressSink is the mutation surface of the player-progress store as
// seen by the engines. Implementations must be idempotent with respect
// to already-recorded completions.
type ProgressSink interface {
	AddPoints(n int)
	AdjustConfidence(delta int)
	CompleteScenario(c Completion)
}

// NopProgress discards all progress events.
type NopProgress struct{}

func (NopProgress) AddPoints(int)               {}
func (NopProgress) AdjustConfidence(int)        {}
func (NopProgress) CompleteScenario(Completion) {}

// Events receives session transitions as they happen. Callbacks fire
// with the session lock held; implementations must not call back into
// the session.
type Events interface {
	// OnCountdown fires once per countdown tick; n==0 means "go".
	OnCountdown(n int, cue Cue)
	// OnRoundStart fires when a move is presented.
	OnRoundStart(round int, move DefenseMove, budget time.Duration)
	// OnRoundResolved fires when a round resolves by reaction or timeout.
	OnRoundResolved(round int, res RoundResult, combo int, cue Cue)
	// OnResults fires exactly once when the session reaches results.
	OnResults(sum Summary, cue Cue)
}

// NopEvents is a default implementation that does nothing.
type NopEvents struct{}

func (NopEvents) OnCountdown(int, Cue)                      {}
func (NopEvents) OnRoundStart(int, DefenseMove, time.Duration) {}
func (NopEvents) OnRoundResolved(int, RoundResult, int, Cue)   {}
func (NopEvents) OnResults(Summary, Cue)                       {}

var (
	// ErrBadPhase is returned when an operation is invalid for the
	// session's current phase.
	ErrBadPhase = errors.New("game: operation invalid in current phase")
	// ErrNoCamera is returned when camera frames arrive without camera mode.
	ErrNoCamera = errors.New("game: camera input not active")
)

// Session drives one self-defense play session through
// setup → countdown → playing → results. One goroutine of user input
// plus timer callbacks; every transition happens under mu, and a round
// epoch counter guarantees a round resolves exactly once even when a
// late signal and the deadline race.
type Session struct {
	mu sync.Mutex

	level GameLevel
	moves []DefenseMove

	phase     Phase
	mode      InputMode
	countdown int
	round     int
	current   *DefenseMove
	combo     int
	maxCombo  int
	results   []RoundResult

	// epoch increments whenever the pending round (or the whole session)
	// is torn down; stale timer callbacks check it and bail.
	epoch int64

	roundStart time.Time
	camera     *motion.Classifier

	deadlineTimer  *time.Timer
	pauseTimer     *time.Timer
	countdownTimer *time.Timer

	reported bool

	rng           *rand.Rand
	clock         func() time.Time
	countdownTick time.Duration
	pause         time.Duration
	events        Events
	progress      ProgressSink
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithRand injects a deterministic move-selection source.
func WithRand(rng *rand.Rand) SessionOption {
	return func(s *Session) { s.rng = rng }
}

// WithClock injects a time source for reaction measurement.
func WithClock(clock func() time.Time) SessionOption {
	return func(s *Session) { s.clock = clock }
}

// WithTimings overrides the countdown tick and inter-round pause.
// Used by tests to run the machine at full speed.
func WithTimings(countdownTick, pause time.Duration) SessionOption {
	return func(s *Session) {
		if countdownTick > 0 {
			s.countdownTick = countdownTick
		}
		if pause >= 0 {
			s.pause = pause
		}
	}
}

// WithEvents attaches a transition listener.
func WithEvents(ev Events) SessionOption {
	return func(s *Session) {
		if ev != nil {
			s.events = ev
		}
	}
}

// NewSession builds a session for one level. The eligible move set must
// be non-empty (guaranteed by Content validation).
func NewSession(level GameLevel, moves []DefenseMove, sink ProgressSink, opts ...SessionOption) (*Session, error) {
	if len(moves) == 0 {
		return nil, fmt.Errorf("%w: level %d", ErrEmptyMoveSet, level.ID)
	}
	if sink == nil {
		sink = NopProgress{}
	}
	s := &Session{
		level:         level,
		moves:         moves,
		phase:         PhaseSetup,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
		clock:         time.Now,
		countdownTick: time.Second,
		pause:         interRoundPause,
		events:        NopEvents{},
		progress:      sink,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Level returns the level being played.
func (s *Session) Level() GameLevel { return s.level }

// Start begins a run: resets per-session state, seeds the countdown and
// arms the countdown ticker. Valid from setup only; finished sessions
// must Reset first.
func (s *Session) Start(mode InputMode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseSetup {
		return fmt.Errorf("%w: start from %s", ErrBadPhase, s.phase)
	}
	s.mode = mode
	s.round = 0
	s.results = nil
	s.combo = 0
	s.maxCombo = 0
	s.reported = false
	s.countdown = countdownStart
	s.phase = PhaseCountdown
	s.events.OnCountdown(s.countdown, CueCountdown)
	s.armCountdownLocked()
	return nil
}

func (s *Session) armCountdownLocked() {
	epoch := s.epoch
	s.countdownTimer = time.AfterFunc(s.countdownTick, func() {
		s.countdownStep(epoch)
	})
}

func (s *Session) countdownStep(epoch int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch != s.epoch || s.phase != PhaseCountdown {
		return
	}
	s.countdown--
	if s.countdown > 0 {
		s.events.OnCountdown(s.countdown, CueCountdown)
		s.armCountdownLocked()
		return
	}
	s.events.OnCountdown(0, CueGo)
	s.phase = PhasePlaying
	s.armPauseLocked()
}

// armPauseLocked schedules the next round prompt after the fixed pause.
func (s *Session) armPauseLocked() {
	epoch := s.epoch
	s.pauseTimer = time.AfterFunc(s.pause, func() {
		s.beginRound(epoch)
	})
}

func (s *Session) beginRound(epoch int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch != s.epoch || s.phase != PhasePlaying || s.current != nil {
		return
	}
	if s.round >= s.level.TotalRounds {
		s.finishLocked()
		return
	}
	// Uniform selection with replacement; repeats allowed.
	move := s.moves[s.rng.Intn(len(s.moves))]
	s.current = &move
	s.roundStart = s.clock()

	budget := time.Duration(s.level.TimePerMoveMS) * time.Millisecond
	deadlineEpoch := s.epoch
	s.deadlineTimer = time.AfterFunc(budget, func() {
		s.deadline(deadlineEpoch)
	})
	s.events.OnRoundStart(s.round, move, budget)
}

// HandleSignal applies a directional input signal to the pending round.
// Signals outside the awaiting-move sub-state, and mismatched directions,
// are silently discarded; only a correct signal or the deadline resolves
// a round.
func (s *Session) HandleSignal(dir motion.Direction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhasePlaying || s.current == nil || dir == motion.DirNone {
		return
	}
	if dir != s.current.Direction {
		return
	}
	move := *s.current
	rt := s.clock().Sub(s.roundStart)
	s.resolveLocked(RoundResult{Move: move, Reacted: true, ReactionTime: rt, Correct: true})
}

func (s *Session) deadline(epoch int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// A late deadline after the round already resolved is the expected
	// benign race; the epoch check discards it.
	if epoch != s.epoch || s.phase != PhasePlaying || s.current == nil {
		return
	}
	move := *s.current
	budget := time.Duration(s.level.TimePerMoveMS) * time.Millisecond
	s.resolveLocked(RoundResult{Move: move, Reacted: false, ReactionTime: budget, Correct: false})
}

// resolveLocked closes the pending round exactly once: tears down the
// deadline timer atomically with the state transition, updates the
// combo counters and schedules the next round or the results phase.
func (s *Session) resolveLocked(res RoundResult) {
	if s.deadlineTimer != nil {
		s.deadlineTimer.Stop()
		s.deadlineTimer = nil
	}
	s.epoch++
	s.current = nil

	cue := CueMiss
	if res.Correct {
		s.combo++
		if s.combo > s.maxCombo {
			s.maxCombo = s.combo
		}
		cue = CueCorrect
		if s.combo >= 3 {
			cue = CueCombo
		}
	} else {
		s.combo = 0
	}
	s.results = append(s.results, res)
	round := s.round
	s.round++
	s.events.OnRoundResolved(round, res, s.combo, cue)
	s.armPauseLocked()
}

// finishLocked computes the summary, reports progress exactly once and
// enters the terminal results phase.
func (s *Session) finishLocked() {
	s.phase = PhaseResults
	sum := s.summaryLocked()

	cue := CueLevelFail
	if sum.Passed {
		cue = CueLevelComplete
	}
	if !s.reported {
		s.reported = true
		s.progress.AddPoints(sum.PointsEarned)
		s.progress.AdjustConfidence(sum.ConfidenceDelta)
		if sum.Passed {
			choices := make([]string, 0, len(s.results))
			for _, r := range s.results {
				outcome := "miss"
				if r.Correct {
					outcome = "hit"
				}
				choices = append(choices, fmt.Sprintf("%s: %s", r.Move.Name, outcome))
			}
			s.progress.CompleteScenario(Completion{
				ScenarioID:  fmt.Sprintf("selfdefense-%d", s.level.ID),
				Score:       sum.CorrectCount,
				MaxScore:    sum.TotalRounds,
				Choices:     choices,
				CompletedAt: s.clock(),
			})
		}
	}
	s.events.OnResults(sum, cue)
}

func (s *Session) summaryLocked() Summary {
	correct := 0
	var rtTotal time.Duration
	for _, r := range s.results {
		if r.Correct {
			correct++
			rtTotal += r.ReactionTime
		}
	}
	total := s.level.TotalRounds
	percent := 0
	if total > 0 {
		percent = int(float64(correct)/float64(total)*100 + 0.5)
	}
	avg := 0
	if correct > 0 {
		avg = int(rtTotal.Milliseconds()) / correct
	}
	passed := percent >= s.level.MinScoreToPass
	delta := confidenceFail
	if passed {
		delta = confidencePass
	}
	rounds := append([]RoundResult(nil), s.results...)
	return Summary{
		LevelID:         s.level.ID,
		CorrectCount:    correct,
		TotalRounds:     total,
		ScorePercent:    percent,
		Passed:          passed,
		AvgReactionMS:   avg,
		MaxCombo:        s.maxCombo,
		PointsEarned:    correct*pointsPerHit + s.maxCombo*pointsPerCombo,
		ConfidenceDelta: delta,
		Rounds:          rounds,
	}
}

// Summary returns the results for a finished session.
func (s *Session) Summary() (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseResults {
		return Summary{}, fmt.Errorf("%w: summary in %s", ErrBadPhase, s.phase)
	}
	return s.summaryLocked(), nil
}

// Combo returns the current and max combo counters.
func (s *Session) Combo() (combo, maxCombo int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.combo, s.maxCombo
}

// Results returns a copy of the round log so far.
func (s *Session) Results() []RoundResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RoundResult(nil), s.results...)
}

// Reset cancels all pending timers and returns the session to setup.
// Reference data is untouched; a new run starts identical to a fresh
// session.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teardownLocked()
	s.phase = PhaseSetup
	s.round = 0
	s.results = nil
	s.combo = 0
	s.maxCombo = 0
	s.current = nil
	s.countdown = 0
	s.reported = false
}

// Close cancels all pending timers and releases the camera classifier.
// Called when the owning connection goes away.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teardownLocked()
	s.camera = nil
}

func (s *Session) teardownLocked() {
	s.epoch++
	if s.deadlineTimer != nil {
		s.deadlineTimer.Stop()
		s.deadlineTimer = nil
	}
	if s.pauseTimer != nil {
		s.pauseTimer.Stop()
		s.pauseTimer = nil
	}
	if s.countdownTimer != nil {
		s.countdownTimer.Stop()
		s.countdownTimer = nil
	}
}
