// Package dialogue implements the branching narrative engine shared by
// safety scenarios (risk-tracking) and role-plays (emotional-intelligence
// tracking): a validated directed graph of narrative nodes and scored
// player choices, traversed to one of a small set of typed endings.
//
// Graphs are reference data, validated at boot time; traversal state
// lives in Session and never mutates the graph.
package dialogue

import (
	"errors"
	"fmt"
)

// Kind selects the derived-metric semantics for a graph.
type Kind string

const (
	// KindScenario tracks a 0-100 risk indicator replaced by each node.
	KindScenario Kind = "scenario"
	// KindRolePlay sums a 4-dimensional emotional-intelligence vector.
	KindRolePlay Kind = "roleplay"
)

// EndingType classifies a terminal node. Scenarios end empowered, safe
// or risky; role-plays end empowered, supportive or missed-opportunity.
type EndingType string

const (
	EndingEmpowered  EndingType = "empowered"
	EndingSafe       EndingType = "safe"
	EndingRisky      EndingType = "risky"
	EndingSupportive EndingType = "supportive"
	EndingMissed     EndingType = "missed-opportunity"
)

// EIVector is the accumulated emotional-intelligence score of a
// role-play trail. Per-choice deltas are bounded to [-10,10]; totals are
// unbounded in intermediate state.
type EIVector struct {
	Empathy       int `json:"empathy"`
	Assertiveness int `json:"assertiveness"`
	Awareness     int `json:"awareness"`
	Composure     int `json:"composure"`
}

// Add returns the per-dimension sum of two vectors.
func (v EIVector) Add(d EIVector) EIVector {
	return EIVector{
		Empathy:       v.Empathy + d.Empathy,
		Assertiveness: v.Assertiveness + d.Assertiveness,
		Awareness:     v.Awareness + d.Awareness,
		Composure:     v.Composure + d.Composure,
	}
}

// Total sums all four dimensions.
func (v EIVector) Total() int {
	return v.Empathy + v.Assertiveness + v.Awareness + v.Composure
}

// Choice is an edge in the graph: one player response with its score,
// feedback and derived-metric deltas. NextNodeID is empty only on
// terminal branches.
type Choice struct {
	ID         string
	Text       string
	Points     int
	Feedback   string // NPC reaction / situational feedback shown before continuing
	NPCEmotion string // role-play only: grateful, neutral, uncomfortable, upset, relieved, supportive
	NextNodeID string

	// Scenario metric.
	RiskLevel       string // low, medium, high
	ConfidenceDelta int

	// Role-play metric.
	EI EIVector
}

// Node is one narrative beat. A node is either terminal (no choices,
// carries an ending classification) or non-terminal (>=1 choice, no
// ending), never both.
type Node struct {
	ID        string
	Narrative string
	Situation string // context line shown under the narrative

	// Role-play presentation.
	Speaker      string // "npc" or "narrator"
	SpeakerName  string
	SpeakerEmoji string

	// Scenario metric: situational danger in [0,100].
	RiskIndicator int

	Choices []Choice

	IsEnding     bool
	EndingType   EndingType
	Reflection   string // ending summary shown on the terminal node
	LawReference string
}

// Graph is one complete scenario or role-play.
type Graph struct {
	ID          string
	Title       string
	Description string
	Category    string
	Icon        string
	Difficulty  string
	Kind        Kind
	StartNodeID string
	MaxScore    int
	MaxEI       int // role-play only: maximum achievable EI total
	Setting     string
	NPCName     string
	NPCEmoji    string
	Nodes       map[string]*Node
}

var (
	// ErrGraphNotFound is returned when a graph ID does not exist.
	ErrGraphNotFound = errors.New("dialogue: graph not found")
	// ErrNodeNotFound is returned when a node reference does not resolve.
	ErrNodeNotFound = errors.New("dialogue: node not found")
	// ErrChoiceNotFound is returned when a chosen choice is not present on
	// the current node. A content/integration error, never a user state.
	ErrChoiceNotFound = errors.New("dialogue: choice not found on current node")
	// ErrInvalidNode is returned at validation time for a node that is
	// both (or neither) terminal and branching.
	ErrInvalidNode = errors.New("dialogue: node must be terminal xor branching")
	// ErrUnreachableNode is returned when a node cannot be reached from
	// the declared start node.
	ErrUnreachableNode = errors.New("dialogue: node unreachable from start")
	// ErrEIDeltaRange is returned for EI deltas outside [-10,10].
	ErrEIDeltaRange = errors.New("dialogue: EI delta outside [-10,10]")
	// ErrRiskRange is returned for risk indicators outside [0,100].
	ErrRiskRange = errors.New("dialogue: risk indicator outside [0,100]")
)

// Validate checks the structural invariants of a graph: the start node
// exists, every node is terminal xor branching, every destination
// resolves, every node is reachable from the start, and metric values
// are in range.
func (g *Graph) Validate() error {
	start, ok := g.Nodes[g.StartNodeID]
	if !ok {
		return fmt.Errorf("%w: graph %s start node %q", ErrNodeNotFound, g.ID, g.StartNodeID)
	}
	_ = start

	for id, node := range g.Nodes {
		if node.ID != id {
			return fmt.Errorf("dialogue: graph %s node keyed %q carries id %q", g.ID, id, node.ID)
		}
		terminal := node.IsEnding
		branching := len(node.Choices) > 0
		if terminal == branching {
			return fmt.Errorf("%w: graph %s node %s", ErrInvalidNode, g.ID, id)
		}
		if terminal && node.EndingType == "" {
			return fmt.Errorf("%w: graph %s node %s missing ending type", ErrInvalidNode, g.ID, id)
		}
		if g.Kind == KindScenario && (node.RiskIndicator < 0 || node.RiskIndicator > 100) {
			return fmt.Errorf("%w: graph %s node %s has %d", ErrRiskRange, g.ID, id, node.RiskIndicator)
		}
		for _, c := range node.Choices {
			if c.NextNodeID != "" {
				if _, ok := g.Nodes[c.NextNodeID]; !ok {
					return fmt.Errorf("%w: graph %s choice %s/%s -> %q", ErrNodeNotFound, g.ID, id, c.ID, c.NextNodeID)
				}
			}
			if g.Kind == KindRolePlay {
				for _, d := range []int{c.EI.Empathy, c.EI.Assertiveness, c.EI.Awareness, c.EI.Composure} {
					if d < -10 || d > 10 {
						return fmt.Errorf("%w: graph %s choice %s/%s", ErrEIDeltaRange, g.ID, id, c.ID)
					}
				}
			}
		}
	}

	// Reachability from the start node via BFS.
	seen := map[string]bool{g.StartNodeID: true}
	queue := []string{g.StartNodeID}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, c := range g.Nodes[curr].Choices {
			if c.NextNodeID == "" || seen[c.NextNodeID] {
				continue
			}
			seen[c.NextNodeID] = true
			queue = append(queue, c.NextNodeID)
		}
	}
	for id := range g.Nodes {
		if !seen[id] {
			return fmt.Errorf("%w: graph %s node %s", ErrUnreachableNode, g.ID, id)
		}
	}
	return nil
}

// Node returns a node by ID.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.Nodes[id]
	return n, ok
}

// Library indexes validated graphs by ID.
type Library struct {
	graphs map[string]*Graph
	order  []string
}

// NewLibrary validates and indexes the given graphs. Any invalid graph
// fails the whole load; content integrity is a boot-time concern.
func NewLibrary(graphs []*Graph) (*Library, error) {
	lib := &Library{graphs: make(map[string]*Graph, len(graphs))}
	for _, g := range graphs {
		if err := g.Validate(); err != nil {
			return nil, err
		}
		if _, dup := lib.graphs[g.ID]; dup {
			return nil, fmt.Errorf("dialogue: duplicate graph id %q", g.ID)
		}
		lib.graphs[g.ID] = g
		lib.order = append(lib.order, g.ID)
	}
	return lib, nil
}

// DefaultLibrary loads the seeded scenario and role-play graphs.
func DefaultLibrary() (*Library, error) {
	graphs := append(SeedScenarios(), SeedRolePlays()...)
	return NewLibrary(graphs)
}

// Graph returns a graph by ID.
func (l *Library) Graph(id string) (*Graph, error) {
	g, ok := l.graphs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrGraphNotFound, id)
	}
	return g, nil
}

// ByKind lists graphs of one kind in seed order.
func (l *Library) ByKind(kind Kind) []*Graph {
	var out []*Graph
	for _, id := range l.order {
		if g := l.graphs[id]; g.Kind == kind {
			out = append(out, g)
		}
	}
	return out
}
