package puzzle

import (
	"math"
	"time"

	"safepath/internal/game"
)

// Confidence deltas by score band.
const (
	confidenceHigh = 8  // 80% and above
	confidenceMid  = 3  // 50% and above
	confidenceLow  = -2 // below 50%
)

// ItemResult is the graded outcome of one submission item.
type ItemResult struct {
	ID          string `json:"id"`
	Correct     bool   `json:"correct"`
	Expected    string `json:"expected,omitempty"`
	Explanation string `json:"explanation,omitempty"`
}

// Result is the graded outcome of one puzzle submission. Score is the
// max score prorated by the correct fraction, rounded half up.
type Result struct {
	PuzzleID        string       `json:"puzzleId"`
	Correct         int          `json:"correct"`
	Total           int          `json:"total"`
	Score           int          `json:"score"`
	MaxScore        int          `json:"maxScore"`
	Percent         int          `json:"percent"`
	ConfidenceDelta int          `json:"confidenceDelta"`
	Items           []ItemResult `json:"items"`
}

// EvaluateMatching grades a matching submission: assignments maps pair
// ID to the match text the player picked. Missing or unknown pair IDs
// grade as wrong; extra keys are ignored.
func EvaluateMatching(p *Puzzle, assignments map[string]string) (Result, error) {
	if p.Type != TypeMatching {
		return Result{}, ErrWrongType
	}
	res := Result{PuzzleID: p.ID, Total: len(p.MatchPairs), MaxScore: p.MaxScore}
	for _, mp := range p.MatchPairs {
		got, ok := assignments[mp.ID]
		correct := ok && got == mp.Match
		if correct {
			res.Correct++
		}
		res.Items = append(res.Items, ItemResult{ID: mp.ID, Correct: correct, Expected: mp.Match})
	}
	finalize(&res)
	return res, nil
}

// EvaluateRedFlags grades a red-flag submission: labels maps flag ID to
// the player's is-red-flag verdict. Unlabelled items grade as wrong.
func EvaluateRedFlags(p *Puzzle, labels map[string]bool) (Result, error) {
	if p.Type != TypeRedFlag {
		return Result{}, ErrWrongType
	}
	res := Result{PuzzleID: p.ID, Total: len(p.RedFlags), MaxScore: p.MaxScore}
	for _, rf := range p.RedFlags {
		got, ok := labels[rf.ID]
		correct := ok && got == rf.IsRedFlag
		if correct {
			res.Correct++
		}
		res.Items = append(res.Items, ItemResult{ID: rf.ID, Correct: correct, Explanation: rf.Explanation})
	}
	finalize(&res)
	return res, nil
}

func finalize(res *Result) {
	if res.Total > 0 {
		frac := float64(res.Correct) / float64(res.Total)
		res.Score = int(math.Round(frac * float64(res.MaxScore)))
		res.Percent = int(math.Round(frac * 100))
	}
	switch {
	case res.Percent >= 80:
		res.ConfidenceDelta = confidenceHigh
	case res.Percent >= 50:
		res.ConfidenceDelta = confidenceMid
	default:
		res.ConfidenceDelta = confidenceLow
	}
}

// Report applies the result's progress side effects: earned points, the
// banded confidence adjustment, and a puzzle completion record. Callers
// invoke it once per submission.
func (r Result) Report(sink game.ProgressSink, now time.Time) {
	sink.AddPoints(r.Score)
	sink.AdjustConfidence(r.ConfidenceDelta)
	sink.CompleteScenario(game.Completion{
		ScenarioID:  "puzzle-" + r.PuzzleID,
		Score:       r.Score,
		MaxScore:    r.MaxScore,
		CompletedAt: now,
	})
}
