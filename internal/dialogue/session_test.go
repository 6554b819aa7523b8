package dialogue

import (
	"errors"
	"testing"
	"time"

	"safepath/internal/game"
)

type sinkRecorder struct {
	points      int
	confidence  int
	completions []game.Completion
}

func (r *sinkRecorder) AddPoints(n int)            { r.points += n }
func (r *sinkRecorder) AdjustConfidence(delta int) { r.confidence += delta }

func (r *sinkRecorder) CompleteScenario(c game.Completion) {
	r.completions = append(r.completions, c)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestScenarioTraversal(t *testing.T) {
	sink := &sinkRecorder{}
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	s := NewSession(testScenario(), sink, WithClock(fixedClock(now)))

	if got := s.Current().ID; got != "start" {
		t.Fatalf("start node: got %s", got)
	}
	if got := s.RiskHistory(); len(got) != 1 || got[0] != 40 {
		t.Fatalf("initial risk history: got %v, want [40]", got)
	}

	adv, err := s.Choose("ignore")
	if err != nil {
		t.Fatalf("Choose(ignore): %v", err)
	}
	if adv.ScoreDelta != 2 || adv.Terminal {
		t.Fatalf("advance: got delta=%d terminal=%v", adv.ScoreDelta, adv.Terminal)
	}
	if !s.AwaitingContinue() {
		t.Fatal("expected feedback display after Choose")
	}
	node, err := s.Continue()
	if err != nil {
		t.Fatalf("Continue: %v", err)
	}
	if node.ID != "mid" {
		t.Fatalf("advanced to %s, want mid", node.ID)
	}
	if got := s.RiskHistory(); len(got) != 2 || got[1] != 70 {
		t.Fatalf("risk history after mid: got %v, want [40 70]", got)
	}

	if _, err := s.Choose("shop"); err != nil {
		t.Fatalf("Choose(shop): %v", err)
	}
	node, err = s.Continue()
	if err != nil {
		t.Fatalf("Continue: %v", err)
	}
	if !node.IsEnding || !s.Ended() {
		t.Fatal("expected traversal to end at end-safe")
	}

	out, err := s.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if out.FinalScore != 12 || out.MaxScore != 20 {
		t.Errorf("outcome score: got %d/%d, want 12/20", out.FinalScore, out.MaxScore)
	}
	if out.EndingType != EndingSafe {
		t.Errorf("ending type: got %s, want %s", out.EndingType, EndingSafe)
	}
	if len(out.Trail) != 2 || out.Trail[0] != "ignore" || out.Trail[1] != "shop" {
		t.Errorf("trail: got %v", out.Trail)
	}
	if !out.FinishedAt.Equal(now) {
		t.Errorf("finished at: got %v, want %v", out.FinishedAt, now)
	}

	if sink.points != 12 {
		t.Errorf("sink points: got %d, want 12", sink.points)
	}
	if sink.confidence != 1 {
		t.Errorf("sink confidence: got %d, want 1", sink.confidence)
	}
	if len(sink.completions) != 1 {
		t.Fatalf("completions: got %d, want 1", len(sink.completions))
	}
	if got := sink.completions[0].ScenarioID; got != "test-walk" {
		t.Errorf("scenario completion ID: got %q, want test-walk", got)
	}
}

func TestRolePlayAccumulatesEI(t *testing.T) {
	sink := &sinkRecorder{}
	s := NewSession(testRolePlay(), sink)

	if _, err := s.Choose("listen"); err != nil {
		t.Fatalf("Choose(listen): %v", err)
	}
	if _, err := s.Continue(); err != nil {
		t.Fatalf("Continue: %v", err)
	}
	ei := s.EI()
	if ei.Empathy != 8 || ei.Awareness != 4 || ei.Composure != 4 || ei.Assertiveness != 0 {
		t.Fatalf("EI vector: got %+v", ei)
	}
	if ei.Total() != 16 {
		t.Errorf("EI total: got %d, want 16", ei.Total())
	}
	// Confidence moves by the rounded empathy/composure midpoint: (8+4)/2.
	if sink.confidence != 6 {
		t.Errorf("sink confidence: got %d, want 6", sink.confidence)
	}

	out, err := s.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if out.EndingType != EndingSupportive {
		t.Errorf("ending type: got %s", out.EndingType)
	}
	if got := sink.completions[0].ScenarioID; got != "roleplay-test-friend" {
		t.Errorf("role-play completion ID: got %q, want roleplay-test-friend", got)
	}
}

func TestRolePlayConfidenceRoundsHalfUp(t *testing.T) {
	sink := &sinkRecorder{}
	s := NewSession(testRolePlay(), sink)

	// dismiss carries empathy -4, composure +2: midpoint -1.
	if _, err := s.Choose("dismiss"); err != nil {
		t.Fatalf("Choose(dismiss): %v", err)
	}
	if sink.confidence != -1 {
		t.Errorf("sink confidence: got %d, want -1", sink.confidence)
	}
}

func TestRoundHalfTowardPositiveInfinity(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{0.5, 1},
		{1.5, 2},
		{6, 6},
		{-0.5, 0},
		{-1, -1},
		{-1.5, -1},
		{-2.5, -2},
	}
	for _, tc := range tests {
		if got := roundHalf(tc.in); got != tc.want {
			t.Errorf("roundHalf(%v): got %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestRolePlayNegativeHalfMidpointLeavesConfidence(t *testing.T) {
	g := testRolePlay()
	// empathy -3, composure +2: midpoint -0.5 rounds to zero.
	g.Nodes["start"].Choices[1].EI = EIVector{Empathy: -3, Composure: 2}
	sink := &sinkRecorder{}
	s := NewSession(g, sink)
	if _, err := s.Choose("dismiss"); err != nil {
		t.Fatalf("Choose(dismiss): %v", err)
	}
	if sink.confidence != 0 {
		t.Errorf("sink confidence: got %d, want 0", sink.confidence)
	}
}

func TestChooseErrors(t *testing.T) {
	s := NewSession(testScenario(), nil)

	if _, err := s.Choose("nope"); !errors.Is(err, ErrChoiceNotFound) {
		t.Fatalf("unknown choice: got %v, want ErrChoiceNotFound", err)
	}
	if _, err := s.Choose("cross"); err != nil {
		t.Fatalf("Choose(cross): %v", err)
	}
	if _, err := s.Choose("cross"); err == nil {
		t.Fatal("expected Choose to fail while feedback is pending")
	}
	if _, err := s.Continue(); err != nil {
		t.Fatalf("Continue: %v", err)
	}
	if _, err := s.Continue(); err == nil {
		t.Fatal("expected Continue to fail without a pending choice")
	}
	if _, err := s.Choose("cross"); !errors.Is(err, ErrChoiceNotFound) {
		t.Fatalf("choose after ending: got %v, want ErrChoiceNotFound", err)
	}
}

func TestFinishBeforeEnding(t *testing.T) {
	s := NewSession(testScenario(), nil)
	if _, err := s.Finish(); err == nil {
		t.Fatal("expected Finish to fail before reaching an ending")
	}
}

func TestFinishReportsOnce(t *testing.T) {
	sink := &sinkRecorder{}
	s := NewSession(testScenario(), sink)
	if _, err := s.Choose("cross"); err != nil {
		t.Fatalf("Choose: %v", err)
	}
	if _, err := s.Continue(); err != nil {
		t.Fatalf("Continue: %v", err)
	}
	if _, err := s.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if _, err := s.Finish(); err != nil {
		t.Fatalf("second Finish: %v", err)
	}
	if len(sink.completions) != 1 {
		t.Fatalf("completions: got %d, want exactly 1", len(sink.completions))
	}
}

func TestResetRestoresFreshTraversal(t *testing.T) {
	s := NewSession(testScenario(), nil)
	if _, err := s.Choose("ignore"); err != nil {
		t.Fatalf("Choose: %v", err)
	}
	if _, err := s.Continue(); err != nil {
		t.Fatalf("Continue: %v", err)
	}

	s.Reset()
	if got := s.Current().ID; got != "start" {
		t.Errorf("node after reset: got %s, want start", got)
	}
	if s.Score() != 0 {
		t.Errorf("score after reset: got %d, want 0", s.Score())
	}
	if got := s.Trail(); len(got) != 0 {
		t.Errorf("trail after reset: got %v", got)
	}
	if got := s.RiskHistory(); len(got) != 1 || got[0] != 40 {
		t.Errorf("risk history after reset: got %v, want [40]", got)
	}
	if s.AwaitingContinue() || s.Ended() {
		t.Error("reset left traversal state behind")
	}
}
