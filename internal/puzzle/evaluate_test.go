package puzzle

import (
	"errors"
	"testing"
	"time"

	"safepath/internal/game"
)

func testMatching() *Puzzle {
	return &Puzzle{
		ID:       "pairs",
		Title:    "Pairs",
		Type:     TypeMatching,
		MaxScore: 60,
		MatchPairs: []MatchPair{
			{ID: "m1", Item: "A", Match: "alpha"},
			{ID: "m2", Item: "B", Match: "beta"},
			{ID: "m3", Item: "C", Match: "gamma"},
			{ID: "m4", Item: "D", Match: "delta"},
			{ID: "m5", Item: "E", Match: "epsilon"},
			{ID: "m6", Item: "F", Match: "zeta"},
		},
	}
}

func testRedFlags() *Puzzle {
	flags := make([]RedFlag, 8)
	for i := range flags {
		flags[i] = RedFlag{
			ID:          string(rune('a' + i)),
			Text:        "statement",
			IsRedFlag:   i%2 == 0,
			Explanation: "because",
		}
	}
	return &Puzzle{
		ID:       "flags",
		Title:    "Flags",
		Type:     TypeRedFlag,
		MaxScore: 80,
		RedFlags: flags,
	}
}

func TestEvaluateMatchingProratesScore(t *testing.T) {
	p := testMatching()
	// Four of six correct; m5 wrong, m6 missing.
	res, err := EvaluateMatching(p, map[string]string{
		"m1": "alpha",
		"m2": "beta",
		"m3": "gamma",
		"m4": "delta",
		"m5": "zeta",
	})
	if err != nil {
		t.Fatalf("EvaluateMatching: %v", err)
	}
	if res.Correct != 4 || res.Total != 6 {
		t.Fatalf("got %d/%d correct, want 4/6", res.Correct, res.Total)
	}
	if res.Score != 40 {
		t.Errorf("score: got %d, want 40", res.Score)
	}
	if res.Percent != 67 {
		t.Errorf("percent: got %d, want 67", res.Percent)
	}
	if res.ConfidenceDelta != confidenceMid {
		t.Errorf("confidence delta: got %d, want %d", res.ConfidenceDelta, confidenceMid)
	}
	if len(res.Items) != 6 {
		t.Fatalf("items: got %d, want 6", len(res.Items))
	}
	for _, it := range res.Items {
		wantCorrect := it.ID != "m5" && it.ID != "m6"
		if it.Correct != wantCorrect {
			t.Errorf("item %s: correct=%v, want %v", it.ID, it.Correct, wantCorrect)
		}
		if it.Expected == "" {
			t.Errorf("item %s: expected match missing", it.ID)
		}
	}
}

func TestEvaluateRedFlagsBands(t *testing.T) {
	p := testRedFlags()

	labels := make(map[string]bool, len(p.RedFlags))
	for _, rf := range p.RedFlags {
		labels[rf.ID] = rf.IsRedFlag
	}

	// All eight correct.
	res, err := EvaluateRedFlags(p, labels)
	if err != nil {
		t.Fatalf("EvaluateRedFlags: %v", err)
	}
	if res.Score != 80 || res.Percent != 100 || res.ConfidenceDelta != confidenceHigh {
		t.Fatalf("perfect run: got score=%d percent=%d delta=%d", res.Score, res.Percent, res.ConfidenceDelta)
	}

	// Seven of eight: 88% stays in the high band.
	labels[p.RedFlags[0].ID] = !p.RedFlags[0].IsRedFlag
	res, err = EvaluateRedFlags(p, labels)
	if err != nil {
		t.Fatalf("EvaluateRedFlags: %v", err)
	}
	if res.Score != 70 || res.Percent != 88 || res.ConfidenceDelta != confidenceHigh {
		t.Fatalf("7/8 run: got score=%d percent=%d delta=%d", res.Score, res.Percent, res.ConfidenceDelta)
	}

	// Unlabelled items grade wrong: three answers, all correct, 38%.
	res, err = EvaluateRedFlags(p, map[string]bool{
		p.RedFlags[0].ID: p.RedFlags[0].IsRedFlag,
		p.RedFlags[1].ID: p.RedFlags[1].IsRedFlag,
		p.RedFlags[2].ID: p.RedFlags[2].IsRedFlag,
	})
	if err != nil {
		t.Fatalf("EvaluateRedFlags: %v", err)
	}
	if res.Correct != 3 || res.Percent != 38 || res.ConfidenceDelta != confidenceLow {
		t.Fatalf("partial run: got correct=%d percent=%d delta=%d", res.Correct, res.Percent, res.ConfidenceDelta)
	}
}

func TestEvaluateWrongType(t *testing.T) {
	if _, err := EvaluateMatching(testRedFlags(), nil); !errors.Is(err, ErrWrongType) {
		t.Fatalf("matching on red-flag puzzle: got %v, want ErrWrongType", err)
	}
	if _, err := EvaluateRedFlags(testMatching(), nil); !errors.Is(err, ErrWrongType) {
		t.Fatalf("red-flags on matching puzzle: got %v, want ErrWrongType", err)
	}
}

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

func TestResultReport(t *testing.T) {
	res, err := EvaluateMatching(testMatching(), map[string]string{
		"m1": "alpha", "m2": "beta", "m3": "gamma",
		"m4": "delta", "m5": "epsilon", "m6": "zeta",
	})
	if err != nil {
		t.Fatalf("EvaluateMatching: %v", err)
	}

	sink := &sinkRecorder{}
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	res.Report(sink, now)

	if sink.points != 60 {
		t.Errorf("sink points: got %d, want 60", sink.points)
	}
	if sink.confidence != confidenceHigh {
		t.Errorf("sink confidence: got %d, want %d", sink.confidence, confidenceHigh)
	}
	if len(sink.completions) != 1 {
		t.Fatalf("completions: got %d, want 1", len(sink.completions))
	}
	c := sink.completions[0]
	if c.ScenarioID != "puzzle-pairs" {
		t.Errorf("completion ID: got %q, want puzzle-pairs", c.ScenarioID)
	}
	if c.Score != 60 || c.MaxScore != 60 {
		t.Errorf("completion score: got %d/%d, want 60/60", c.Score, c.MaxScore)
	}
	if !c.CompletedAt.Equal(now) {
		t.Errorf("completed at: got %v, want %v", c.CompletedAt, now)
	}
}

func TestDefaultCatalog(t *testing.T) {
	c, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog: %v", err)
	}
	if got := len(c.All()); got != 4 {
		t.Fatalf("catalog size: got %d, want 4", got)
	}
	p, err := c.Puzzle("safety-tools-matching")
	if err != nil {
		t.Fatalf("Puzzle(safety-tools-matching): %v", err)
	}
	if p.Type != TypeMatching || p.ItemCount() != 6 {
		t.Errorf("safety-tools-matching: type=%s items=%d", p.Type, p.ItemCount())
	}
	if _, err := c.Puzzle("nope"); !errors.Is(err, ErrPuzzleNotFound) {
		t.Fatalf("Puzzle(nope): got %v, want ErrPuzzleNotFound", err)
	}
}

func TestNewCatalogRejectsBrokenPuzzles(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Puzzle)
	}{
		{"missing id", func(p *Puzzle) { p.ID = "" }},
		{"both item sets", func(p *Puzzle) { p.RedFlags = testRedFlags().RedFlags }},
		{"no item set", func(p *Puzzle) { p.MatchPairs = nil }},
		{"unknown type", func(p *Puzzle) { p.Type = "quiz" }},
		{"duplicate pair id", func(p *Puzzle) { p.MatchPairs[1].ID = "m1" }},
		{"zero max score", func(p *Puzzle) { p.MaxScore = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := testMatching()
			tc.mutate(p)
			if _, err := NewCatalog([]*Puzzle{p}); !errors.Is(err, ErrInvalidPuzzle) {
				t.Fatalf("NewCatalog: got %v, want ErrInvalidPuzzle", err)
			}
		})
	}
}

func TestNewCatalogRejectsDuplicateIDs(t *testing.T) {
	if _, err := NewCatalog([]*Puzzle{testMatching(), testMatching()}); !errors.Is(err, ErrInvalidPuzzle) {
		t.Fatalf("NewCatalog: got %v, want ErrInvalidPuzzle", err)
	}
}
