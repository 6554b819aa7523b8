// Package progress implements the player progress aggregator: points,
// level, confidence, badges, completions and read knowledge modules,
// persisted as a single record. Badge awards are idempotent and checked
// after every mutation that can trigger them.
package progress

import (
	"log"
	"sync"
	"time"

	"safepath/internal/game"
)

const (
	startingConfidence = 30
	pointsPerLevel     = 100
	championPoints     = 500
	confidentThreshold = 70
	protectorCount     = 3
	seekerCount        = 3
)

// Badge is an earned achievement.
type Badge struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	EarnedAt    time.Time `json:"earnedAt"`
}

// ScenarioResult is one recorded completion of a scenario, role-play,
// defense level or puzzle.
type ScenarioResult struct {
	ScenarioID  string    `json:"scenarioId"`
	Score       int       `json:"score"`
	MaxScore    int       `json:"maxScore"`
	Choices     []string  `json:"choices,omitempty"`
	CompletedAt time.Time `json:"completedAt"`
}

// Record is the full persisted player state.
type Record struct {
	PlayerName           string           `json:"playerName"`
	AvatarEmoji          string           `json:"avatarEmoji"`
	Level                int              `json:"level"`
	TotalPoints          int              `json:"totalPoints"`
	ConfidenceScore      int              `json:"confidenceScore"`
	ScenarioResults      []ScenarioResult `json:"scenarioResults"`
	Badges               []Badge          `json:"badges"`
	CompletedScenarios   []string         `json:"completedScenarios"`
	KnowledgeModulesRead []string         `json:"knowledgeModulesRead"`
}

// BadgeCatalog lists every earnable badge with a zero EarnedAt.
func BadgeCatalog() []Badge {
	return []Badge{
		{ID: "first-step", Name: "First Step", Description: "Complete your first scenario", Icon: "🌱"},
		{ID: "aware", Name: "Situationally Aware", Description: "Score 80%+ on a scenario", Icon: "👁️"},
		{ID: "knowledge-seeker", Name: "Knowledge Seeker", Description: "Read 3 safety modules", Icon: "📚"},
		{ID: "confident", Name: "Growing Confidence", Description: "Reach confidence score of 70", Icon: "💪"},
		{ID: "protector", Name: "Self-Protector", Description: "Complete 3 scenarios", Icon: "🛡️"},
		{ID: "champion", Name: "Safety Champion", Description: "Earn 500 total points", Icon: "🏆"},
	}
}

// Persister loads and saves the progress record. ok is false when no
// record has been stored yet.
type Persister interface {
	Load() (rec Record, ok bool, err error)
	Save(rec Record) error
}

// Store is the concurrency-safe progress aggregator. It implements
// game.ProgressSink so the game engines and evaluators can report into
// it directly.
type Store struct {
	mu    sync.Mutex
	rec   Record
	p     Persister
	clock func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock injects a time source for badge timestamps.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) { s.clock = clock }
}

// NewStore loads the persisted record, or starts a fresh one when none
// exists.
func NewStore(p Persister, opts ...Option) (*Store, error) {
	s := &Store{p: p, clock: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	rec, ok, err := p.Load()
	if err != nil {
		return nil, err
	}
	if ok {
		s.rec = rec
	} else {
		s.rec = freshRecord()
	}
	return s, nil
}

func freshRecord() Record {
	return Record{
		AvatarEmoji:     "👩",
		Level:           1,
		ConfidenceScore: startingConfidence,
	}
}

// Snapshot returns a deep copy of the current record.
func (s *Store) Snapshot() Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLocked()
}

func (s *Store) copyLocked() Record {
	rec := s.rec
	rec.ScenarioResults = append([]ScenarioResult(nil), s.rec.ScenarioResults...)
	rec.Badges = append([]Badge(nil), s.rec.Badges...)
	rec.CompletedScenarios = append([]string(nil), s.rec.CompletedScenarios...)
	rec.KnowledgeModulesRead = append([]string(nil), s.rec.KnowledgeModulesRead...)
	return rec
}

// SetPlayerName updates the display name.
func (s *Store) SetPlayerName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec.PlayerName = name
	s.persistLocked()
}

// SetAvatarEmoji updates the avatar.
func (s *Store) SetAvatarEmoji(emoji string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec.AvatarEmoji = emoji
	s.persistLocked()
}

// AddPoints adds earned points and rederives the level. Crossing the
// champion threshold awards that badge.
func (s *Store) AddPoints(points int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec.TotalPoints += points
	s.rec.Level = s.rec.TotalPoints/pointsPerLevel + 1
	if s.rec.TotalPoints >= championPoints {
		s.earnBadgeLocked("champion")
	}
	s.persistLocked()
}

// AdjustConfidence shifts the confidence score, clamped to [0,100].
// Reaching the growing-confidence threshold awards that badge.
func (s *Store) AdjustConfidence(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.rec.ConfidenceScore + delta
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	s.rec.ConfidenceScore = v
	if v >= confidentThreshold {
		s.earnBadgeLocked("confident")
	}
	s.persistLocked()
}

// CompleteScenario records a completion. Every result is appended to
// the history; the completed-ID set deduplicates, so replaying a
// scenario never double-counts toward count badges.
func (s *Store) CompleteScenario(c game.Completion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec.ScenarioResults = append(s.rec.ScenarioResults, ScenarioResult{
		ScenarioID:  c.ScenarioID,
		Score:       c.Score,
		MaxScore:    c.MaxScore,
		Choices:     append([]string(nil), c.Choices...),
		CompletedAt: c.CompletedAt,
	})
	if !contains(s.rec.CompletedScenarios, c.ScenarioID) {
		s.rec.CompletedScenarios = append(s.rec.CompletedScenarios, c.ScenarioID)
	}

	if len(s.rec.CompletedScenarios) >= 1 {
		s.earnBadgeLocked("first-step")
	}
	if len(s.rec.CompletedScenarios) >= protectorCount {
		s.earnBadgeLocked("protector")
	}
	if c.MaxScore > 0 && float64(c.Score)/float64(c.MaxScore) >= 0.8 {
		s.earnBadgeLocked("aware")
	}
	s.persistLocked()
}

// EarnBadge awards a badge from the catalog by ID. Already-earned and
// unknown IDs are no-ops.
func (s *Store) EarnBadge(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.earnBadgeLocked(id) {
		s.persistLocked()
	}
}

func (s *Store) earnBadgeLocked(id string) bool {
	for _, b := range s.rec.Badges {
		if b.ID == id {
			return false
		}
	}
	for _, b := range BadgeCatalog() {
		if b.ID == id {
			b.EarnedAt = s.clock()
			s.rec.Badges = append(s.rec.Badges, b)
			return true
		}
	}
	return false
}

// MarkKnowledgeRead records a read knowledge module. Reading the third
// module awards the knowledge-seeker badge. Re-reads are no-ops.
func (s *Store) MarkKnowledgeRead(moduleID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if contains(s.rec.KnowledgeModulesRead, moduleID) {
		return
	}
	s.rec.KnowledgeModulesRead = append(s.rec.KnowledgeModulesRead, moduleID)
	if len(s.rec.KnowledgeModulesRead) >= seekerCount {
		s.earnBadgeLocked("knowledge-seeker")
	}
	s.persistLocked()
}

// Reset clears all progress back to a fresh record, keeping the player
// name and avatar.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	name, emoji := s.rec.PlayerName, s.rec.AvatarEmoji
	s.rec = freshRecord()
	s.rec.PlayerName = name
	if emoji != "" {
		s.rec.AvatarEmoji = emoji
	}
	s.persistLocked()
}

func (s *Store) persistLocked() {
	if err := s.p.Save(s.copyLocked()); err != nil {
		log.Printf("progress: save failed: %v", err)
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
