// Package puzzle implements the knowledge puzzle evaluators: matching
// puzzles pair situations with the correct action or legal protection,
// red-flag puzzles label statements as warning signs or safe practices.
// Evaluation is a pure function of puzzle definition and submission;
// progress side effects are applied once per completion.
package puzzle

import (
	"errors"
	"fmt"
)

// Type discriminates the two puzzle kinds.
type Type string

const (
	TypeMatching Type = "matching"
	TypeRedFlag  Type = "red-flag"
)

// MatchPair is one item in a matching puzzle and its correct match.
type MatchPair struct {
	ID    string `json:"id"`
	Item  string `json:"item"`
	Match string `json:"match"`
}

// RedFlag is one statement in a red-flag puzzle with its correct label
// and the explanation shown after submission.
type RedFlag struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	IsRedFlag   bool   `json:"isRedFlag"`
	Explanation string `json:"explanation"`
}

// Puzzle is one puzzle definition. Exactly one of MatchPairs or
// RedFlags is populated, depending on Type.
type Puzzle struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Icon         string      `json:"icon"`
	Type         Type        `json:"type"`
	Difficulty   string      `json:"difficulty"`
	MaxScore     int         `json:"maxScore"`
	TimeLimitSec int         `json:"timeLimit,omitempty"`
	MatchPairs   []MatchPair `json:"matchPairs,omitempty"`
	RedFlags     []RedFlag   `json:"redFlags,omitempty"`
}

var (
	// ErrPuzzleNotFound is returned for an unknown puzzle ID.
	ErrPuzzleNotFound = errors.New("puzzle: not found")
	// ErrWrongType is returned when a submission does not match the
	// puzzle's type.
	ErrWrongType = errors.New("puzzle: submission type mismatch")
	// ErrInvalidPuzzle is returned at load time for a malformed definition.
	ErrInvalidPuzzle = errors.New("puzzle: invalid definition")
)

// Validate checks that the puzzle carries items of its declared type
// with unique IDs and a positive max score.
func (p *Puzzle) Validate() error {
	if p.ID == "" || p.MaxScore <= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidPuzzle, p.ID)
	}
	switch p.Type {
	case TypeMatching:
		if len(p.MatchPairs) == 0 || len(p.RedFlags) != 0 {
			return fmt.Errorf("%w: %s item sets", ErrInvalidPuzzle, p.ID)
		}
		seen := make(map[string]bool, len(p.MatchPairs))
		for _, mp := range p.MatchPairs {
			if mp.ID == "" || seen[mp.ID] {
				return fmt.Errorf("%w: %s pair %q", ErrInvalidPuzzle, p.ID, mp.ID)
			}
			seen[mp.ID] = true
		}
	case TypeRedFlag:
		if len(p.RedFlags) == 0 || len(p.MatchPairs) != 0 {
			return fmt.Errorf("%w: %s item sets", ErrInvalidPuzzle, p.ID)
		}
		seen := make(map[string]bool, len(p.RedFlags))
		for _, rf := range p.RedFlags {
			if rf.ID == "" || seen[rf.ID] {
				return fmt.Errorf("%w: %s flag %q", ErrInvalidPuzzle, p.ID, rf.ID)
			}
			seen[rf.ID] = true
		}
	default:
		return fmt.Errorf("%w: %s type %q", ErrInvalidPuzzle, p.ID, p.Type)
	}
	return nil
}

// ItemCount returns the number of gradeable items.
func (p *Puzzle) ItemCount() int {
	if p.Type == TypeMatching {
		return len(p.MatchPairs)
	}
	return len(p.RedFlags)
}

// Catalog indexes validated puzzles by ID in seed order.
type Catalog struct {
	puzzles map[string]*Puzzle
	order   []string
}

// NewCatalog validates and indexes the given puzzles.
func NewCatalog(puzzles []*Puzzle) (*Catalog, error) {
	c := &Catalog{puzzles: make(map[string]*Puzzle, len(puzzles))}
	for _, p := range puzzles {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.puzzles[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidPuzzle, p.ID)
		}
		c.puzzles[p.ID] = p
		c.order = append(c.order, p.ID)
	}
	return c, nil
}

// DefaultCatalog loads the seeded puzzles.
func DefaultCatalog() (*Catalog, error) {
	return NewCatalog(SeedPuzzles())
}

// Puzzle returns a puzzle by ID.
func (c *Catalog) Puzzle(id string) (*Puzzle, error) {
	p, ok := c.puzzles[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPuzzleNotFound, id)
	}
	return p, nil
}

// All lists puzzles in seed order.
func (c *Catalog) All() []*Puzzle {
	out := make([]*Puzzle, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.puzzles[id])
	}
	return out
}
