package dialogue

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"safepath/internal/game"
)

// Session is one traversal of a dialogue graph. It alternates between
// node display and feedback display per choice, accumulating score and
// the graph's derived metric, and reports completion to the progress
// aggregator exactly once.
type Session struct {
	ID    string
	graph *Graph

	nodeID      string
	score       int
	trail       []string
	riskHistory []int
	ei          EIVector
	pending     *Choice // chosen edge awaiting Continue (feedback display)
	ended       bool
	finished    bool

	sink  game.ProgressSink
	clock func() time.Time
}

// Advance is the outcome of choosing one edge: the score and metric
// deltas plus the feedback text to display before continuing.
type Advance struct {
	Choice     Choice
	ScoreDelta int
	Feedback   string
	NextNodeID string
	Terminal   bool
}

// Outcome is the completion report handed to the progress aggregator.
type Outcome struct {
	SessionID  string
	GraphID    string
	FinalScore int
	MaxScore   int
	Trail      []string
	EndingType EndingType
	EI         EIVector
	FinishedAt time.Time
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithClock injects a time source for completion timestamps.
func WithClock(clock func() time.Time) SessionOption {
	return func(s *Session) { s.clock = clock }
}

// NewSession starts a traversal at the graph's declared start node.
func NewSession(g *Graph, sink game.ProgressSink, opts ...SessionOption) *Session {
	if sink == nil {
		sink = game.NopProgress{}
	}
	s := &Session{
		ID:     uuid.NewString(),
		graph:  g,
		nodeID: g.StartNodeID,
		sink:   sink,
		clock:  time.Now,
	}
	if start, ok := g.Nodes[g.StartNodeID]; ok && g.Kind == KindScenario {
		s.riskHistory = append(s.riskHistory, start.RiskIndicator)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Graph returns the graph being traversed.
func (s *Session) Graph() *Graph { return s.graph }

// Current returns the node being displayed.
func (s *Session) Current() *Node {
	return s.graph.Nodes[s.nodeID]
}

// Score returns the accumulated score.
func (s *Session) Score() int { return s.score }

// Trail returns a copy of the chosen edge IDs in order.
func (s *Session) Trail() []string {
	return append([]string(nil), s.trail...)
}

// RiskHistory returns the risk indicators of visited nodes (scenarios).
func (s *Session) RiskHistory() []int {
	return append([]int(nil), s.riskHistory...)
}

// EI returns the accumulated emotional-intelligence vector (role-plays).
func (s *Session) EI() EIVector { return s.ei }

// AwaitingContinue reports whether a chosen edge's feedback is being
// displayed.
func (s *Session) AwaitingContinue() bool { return s.pending != nil }

// Ended reports whether the traversal reached a terminal node.
func (s *Session) Ended() bool { return s.ended }

// Choose applies one of the current node's choices: accumulates score,
// applies per-choice progress side effects, and enters feedback display.
// A choice ID not present on the current node is a content-integrity
// error, surfaced as "content not found" by the caller.
func (s *Session) Choose(choiceID string) (*Advance, error) {
	if s.ended {
		return nil, fmt.Errorf("%w: session ended", ErrChoiceNotFound)
	}
	if s.pending != nil {
		return nil, fmt.Errorf("dialogue: choose while feedback pending")
	}
	node := s.Current()
	if node == nil {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, s.nodeID)
	}

	var choice *Choice
	for i := range node.Choices {
		if node.Choices[i].ID == choiceID {
			choice = &node.Choices[i]
			break
		}
	}
	if choice == nil {
		return nil, fmt.Errorf("%w: %q on node %s", ErrChoiceNotFound, choiceID, node.ID)
	}

	s.score += choice.Points
	s.trail = append(s.trail, choice.ID)
	s.pending = choice

	s.sink.AddPoints(choice.Points)
	switch s.graph.Kind {
	case KindScenario:
		s.sink.AdjustConfidence(choice.ConfidenceDelta)
	case KindRolePlay:
		s.ei = s.ei.Add(choice.EI)
		// Confidence follows the empathy/composure midpoint.
		s.sink.AdjustConfidence(roundHalf(float64(choice.EI.Empathy+choice.EI.Composure) / 2))
	}

	return &Advance{
		Choice:     *choice,
		ScoreDelta: choice.Points,
		Feedback:   choice.Feedback,
		NextNodeID: choice.NextNodeID,
		Terminal:   choice.NextNodeID == "",
	}, nil
}

// Continue leaves feedback display and advances to the chosen
// destination node. A choice with no destination ends the traversal in
// place (defensive fallback; seeded content only omits destinations on
// terminal branches).
func (s *Session) Continue() (*Node, error) {
	if s.pending == nil {
		return nil, fmt.Errorf("dialogue: continue without pending choice")
	}
	choice := s.pending
	s.pending = nil

	if choice.NextNodeID == "" {
		s.ended = true
		return s.Current(), nil
	}
	next, ok := s.graph.Nodes[choice.NextNodeID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, choice.NextNodeID)
	}
	s.nodeID = next.ID
	if s.graph.Kind == KindScenario {
		// Risk is replaced by each visited node, not summed.
		s.riskHistory = append(s.riskHistory, next.RiskIndicator)
	}
	if next.IsEnding {
		s.ended = true
	}
	return next, nil
}

// Finish packages the completion and reports it to the progress
// aggregator. Only valid once the traversal has ended, and only the
// first call reports; viewing an ending without finishing records
// nothing.
func (s *Session) Finish() (*Outcome, error) {
	if !s.ended {
		return nil, fmt.Errorf("dialogue: finish before reaching an ending")
	}
	node := s.Current()
	out := &Outcome{
		SessionID:  s.ID,
		GraphID:    s.graph.ID,
		FinalScore: s.score,
		MaxScore:   s.graph.MaxScore,
		Trail:      s.Trail(),
		EndingType: node.EndingType,
		EI:         s.ei,
		FinishedAt: s.clock(),
	}
	if !s.finished {
		s.finished = true
		s.sink.CompleteScenario(game.Completion{
			ScenarioID:  s.completionID(),
			Score:       s.score,
			MaxScore:    s.graph.MaxScore,
			Choices:     s.Trail(),
			CompletedAt: out.FinishedAt,
		})
	}
	return out, nil
}

func (s *Session) completionID() string {
	if s.graph.Kind == KindRolePlay {
		return "roleplay-" + s.graph.ID
	}
	return s.graph.ID
}

// Reset restores a fresh traversal of the same graph: start node,
// zeroed score, metric and trail. The graph itself is never mutated.
func (s *Session) Reset() {
	s.nodeID = s.graph.StartNodeID
	s.score = 0
	s.trail = nil
	s.riskHistory = nil
	s.ei = EIVector{}
	s.pending = nil
	s.ended = false
	s.finished = false
	if start, ok := s.graph.Nodes[s.graph.StartNodeID]; ok && s.graph.Kind == KindScenario {
		s.riskHistory = append(s.riskHistory, start.RiskIndicator)
	}
}

// roundHalf rounds half toward positive infinity, so a -0.5 midpoint
// leaves confidence untouched rather than docking it.
func roundHalf(v float64) int {
	return int(math.Floor(v + 0.5))
}
