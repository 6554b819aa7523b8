package progress

import (
	"testing"
	"time"

	"safepath/internal/game"
)

func newTestStore(t *testing.T) (*Store, *MemoryPersister) {
	t.Helper()
	p := NewMemoryPersister()
	s, err := NewStore(p, WithClock(func() time.Time {
		return time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	}))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s, p
}

func hasBadge(rec Record, id string) bool {
	for _, b := range rec.Badges {
		if b.ID == id {
			return true
		}
	}
	return false
}

func completion(id string, score, max int) game.Completion {
	return game.Completion{ScenarioID: id, Score: score, MaxScore: max, CompletedAt: time.Now()}
}

func TestFreshRecordDefaults(t *testing.T) {
	s, _ := newTestStore(t)
	rec := s.Snapshot()
	if rec.Level != 1 {
		t.Errorf("level: got %d, want 1", rec.Level)
	}
	if rec.ConfidenceScore != startingConfidence {
		t.Errorf("confidence: got %d, want %d", rec.ConfidenceScore, startingConfidence)
	}
	if rec.AvatarEmoji == "" {
		t.Error("avatar emoji unset")
	}
	if rec.TotalPoints != 0 || len(rec.Badges) != 0 {
		t.Errorf("fresh record carries progress: %+v", rec)
	}
}

func TestAddPointsDerivesLevel(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddPoints(99)
	if got := s.Snapshot().Level; got != 1 {
		t.Errorf("level at 99 points: got %d, want 1", got)
	}
	s.AddPoints(1)
	if got := s.Snapshot().Level; got != 2 {
		t.Errorf("level at 100 points: got %d, want 2", got)
	}
	s.AddPoints(350)
	rec := s.Snapshot()
	if rec.Level != 5 {
		t.Errorf("level at 450 points: got %d, want 5", rec.Level)
	}
	if hasBadge(rec, "champion") {
		t.Error("champion awarded below the points threshold")
	}
	s.AddPoints(50)
	if !hasBadge(s.Snapshot(), "champion") {
		t.Error("champion not awarded at 500 points")
	}
}

func TestAdjustConfidenceClampsAndAwards(t *testing.T) {
	s, _ := newTestStore(t)
	s.AdjustConfidence(-50)
	if got := s.Snapshot().ConfidenceScore; got != 0 {
		t.Errorf("confidence clamped low: got %d, want 0", got)
	}
	s.AdjustConfidence(200)
	rec := s.Snapshot()
	if rec.ConfidenceScore != 100 {
		t.Errorf("confidence clamped high: got %d, want 100", rec.ConfidenceScore)
	}
	if !hasBadge(rec, "confident") {
		t.Error("confident badge not awarded at threshold")
	}

	s2, _ := newTestStore(t)
	s2.AdjustConfidence(confidentThreshold - startingConfidence - 1)
	if hasBadge(s2.Snapshot(), "confident") {
		t.Error("confident awarded below threshold")
	}
	s2.AdjustConfidence(1)
	if !hasBadge(s2.Snapshot(), "confident") {
		t.Error("confident not awarded exactly at threshold")
	}
}

func TestCompleteScenarioBadges(t *testing.T) {
	s, _ := newTestStore(t)

	s.CompleteScenario(completion("late-night-cab", 10, 30))
	rec := s.Snapshot()
	if !hasBadge(rec, "first-step") {
		t.Error("first-step not awarded on first completion")
	}
	if hasBadge(rec, "aware") {
		t.Error("aware awarded below 80%")
	}

	// Replays append to the history but never re-count toward badges.
	s.CompleteScenario(completion("late-night-cab", 25, 30))
	s.CompleteScenario(completion("late-night-cab", 28, 30))
	rec = s.Snapshot()
	if len(rec.ScenarioResults) != 3 {
		t.Errorf("results history: got %d entries, want 3", len(rec.ScenarioResults))
	}
	if len(rec.CompletedScenarios) != 1 {
		t.Errorf("completed set: got %d entries, want 1", len(rec.CompletedScenarios))
	}
	if hasBadge(rec, "protector") {
		t.Error("protector awarded from replays of one scenario")
	}
	if !hasBadge(rec, "aware") {
		t.Error("aware not awarded at 80%+")
	}

	s.CompleteScenario(completion("street-harassment", 20, 30))
	if hasBadge(s.Snapshot(), "protector") {
		t.Error("protector awarded at two distinct scenarios")
	}
	s.CompleteScenario(completion("puzzle-safety-tools-matching", 60, 60))
	if !hasBadge(s.Snapshot(), "protector") {
		t.Error("protector not awarded at three distinct scenarios")
	}
}

func TestBadgeIdempotence(t *testing.T) {
	s, _ := newTestStore(t)
	s.EarnBadge("first-step")
	s.EarnBadge("first-step")
	s.EarnBadge("unknown-badge")
	rec := s.Snapshot()
	if len(rec.Badges) != 1 {
		t.Fatalf("badges: got %d, want 1", len(rec.Badges))
	}
	if rec.Badges[0].EarnedAt.IsZero() {
		t.Error("earned badge carries zero timestamp")
	}
}

func TestMarkKnowledgeRead(t *testing.T) {
	s, _ := newTestStore(t)
	s.MarkKnowledgeRead("laws")
	s.MarkKnowledgeRead("laws")
	s.MarkKnowledgeRead("helplines")
	rec := s.Snapshot()
	if len(rec.KnowledgeModulesRead) != 2 {
		t.Errorf("modules read: got %d, want 2", len(rec.KnowledgeModulesRead))
	}
	if hasBadge(rec, "knowledge-seeker") {
		t.Error("knowledge-seeker awarded below three modules")
	}
	s.MarkKnowledgeRead("self-defense-basics")
	if !hasBadge(s.Snapshot(), "knowledge-seeker") {
		t.Error("knowledge-seeker not awarded at three modules")
	}
}

func TestResetKeepsIdentity(t *testing.T) {
	s, _ := newTestStore(t)
	s.SetPlayerName("Priya")
	s.SetAvatarEmoji("🦸‍♀️")
	s.AddPoints(250)
	s.CompleteScenario(completion("late-night-cab", 30, 30))

	s.Reset()
	rec := s.Snapshot()
	if rec.PlayerName != "Priya" || rec.AvatarEmoji != "🦸‍♀️" {
		t.Errorf("identity lost on reset: %q %q", rec.PlayerName, rec.AvatarEmoji)
	}
	if rec.TotalPoints != 0 || rec.Level != 1 || len(rec.Badges) != 0 || len(rec.ScenarioResults) != 0 {
		t.Errorf("reset left progress behind: %+v", rec)
	}
	if rec.ConfidenceScore != startingConfidence {
		t.Errorf("confidence after reset: got %d, want %d", rec.ConfidenceScore, startingConfidence)
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	p := NewMemoryPersister()
	s, err := NewStore(p)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	s.SetPlayerName("Anita")
	s.AddPoints(120)
	s.CompleteScenario(completion("street-harassment", 25, 30))
	s.MarkKnowledgeRead("laws")

	reloaded, err := NewStore(p)
	if err != nil {
		t.Fatalf("NewStore reload: %v", err)
	}
	rec := reloaded.Snapshot()
	if rec.PlayerName != "Anita" {
		t.Errorf("player name: got %q, want Anita", rec.PlayerName)
	}
	if rec.TotalPoints != 120 {
		t.Errorf("points: got %d, want 120", rec.TotalPoints)
	}
	if len(rec.ScenarioResults) != 1 || len(rec.KnowledgeModulesRead) != 1 {
		t.Errorf("history lost on reload: %+v", rec)
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	s, _ := newTestStore(t)
	s.CompleteScenario(completion("late-night-cab", 10, 30))
	rec := s.Snapshot()
	rec.ScenarioResults[0].ScenarioID = "tampered"
	rec.CompletedScenarios[0] = "tampered"
	if got := s.Snapshot().ScenarioResults[0].ScenarioID; got != "late-night-cab" {
		t.Errorf("snapshot aliases store state: %q", got)
	}
}
