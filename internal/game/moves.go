// Package game implements the self-defense reaction game: immutable move
// and level reference data, the round scheduler state machine, and the
// tap/camera input adapters feeding it.
package game

import (
	"errors"
	"fmt"

	"safepath/internal/motion"
)

// TapZone is one of the five mutually exclusive tap targets.
type TapZone string

const (
	ZoneTop    TapZone = "top"
	ZoneBottom TapZone = "bottom"
	ZoneLeft   TapZone = "left"
	ZoneRight  TapZone = "right"
	ZoneCenter TapZone = "center"
)

// ZoneDirection maps a tap zone to the directional signal it produces.
func ZoneDirection(z TapZone) (motion.Direction, bool) {
	switch z {
	case ZoneTop:
		return motion.DirUp, true
	case ZoneBottom:
		return motion.DirDown, true
	case ZoneLeft:
		return motion.DirLeft, true
	case ZoneRight:
		return motion.DirRight, true
	case ZoneCenter:
		return motion.DirCenter, true
	}
	return motion.DirNone, false
}

// MoveCategory groups moves by difficulty.
type MoveCategory string

const (
	CategoryBasic        MoveCategory = "basic"
	CategoryIntermediate MoveCategory = "intermediate"
	CategoryAdvanced     MoveCategory = "advanced"
)

// DefenseMove is immutable reference data for one self-defense move.
type DefenseMove struct {
	ID           string
	Name         string
	Icon         string
	Instruction  string
	CameraAction string // what the camera detects
	Direction    motion.Direction
	TapZone      TapZone
	UnlockLevel  int
	Points       int
	Category     MoveCategory
}

// GameLevel is immutable reference data for one playable level.
// Levels gate on completion of the previous level; levels 1-2 are
// always unlocked.
type GameLevel struct {
	ID             int
	Name           string
	Description    string
	Icon           string
	MoveIDs        []string
	TotalRounds    int
	TimePerMoveMS  int // per-move reaction budget in milliseconds
	MinScoreToPass int // minimum score percentage
	ComboChains    bool
	MaxCombo       int
}

var (
	// ErrLevelNotFound is returned when a level ID does not exist.
	ErrLevelNotFound = errors.New("game: level not found")
	// ErrMoveNotFound is returned when a level references a missing move.
	ErrMoveNotFound = errors.New("game: move not found")
	// ErrEmptyMoveSet is returned when a level has no eligible moves.
	ErrEmptyMoveSet = errors.New("game: level has empty move set")
	// ErrBadPassThreshold is returned for pass thresholds outside [0,100].
	ErrBadPassThreshold = errors.New("game: pass threshold outside [0,100]")
)

// SeedDefenseMoves defines the ten self-defense moves.
func SeedDefenseMoves() []DefenseMove {
	return []DefenseMove{
		{
			ID:           "block",
			Name:         "Block",
			Icon:         "🛡️",
			Instruction:  "Raise your hands to block!",
			CameraAction: "Raise both hands above shoulders",
			Direction:    motion.DirUp,
			TapZone:      ZoneTop,
			UnlockLevel:  1,
			Points:       10,
			Category:     CategoryBasic,
		},
		{
			ID:           "dodge-left",
			Name:         "Dodge Left",
			Icon:         "⬅️",
			Instruction:  "Lean left to dodge!",
			CameraAction: "Lean your body to the left",
			Direction:    motion.DirLeft,
			TapZone:      ZoneLeft,
			UnlockLevel:  1,
			Points:       10,
			Category:     CategoryBasic,
		},
		{
			ID:           "dodge-right",
			Name:         "Dodge Right",
			Icon:         "➡️",
			Instruction:  "Lean right to dodge!",
			CameraAction: "Lean your body to the right",
			Direction:    motion.DirRight,
			TapZone:      ZoneRight,
			UnlockLevel:  1,
			Points:       10,
			Category:     CategoryBasic,
		},
		{
			ID:           "step-back",
			Name:         "Step Back",
			Icon:         "🦶",
			Instruction:  "Step back to create distance!",
			CameraAction: "Move backward away from camera",
			Direction:    motion.DirDown,
			TapZone:      ZoneBottom,
			UnlockLevel:  2,
			Points:       15,
			Category:     CategoryBasic,
		},
		{
			ID:           "strike",
			Name:         "Palm Strike",
			Icon:         "✋",
			Instruction:  "Push forward with your palm!",
			CameraAction: "Push hand toward camera quickly",
			Direction:    motion.DirCenter,
			TapZone:      ZoneCenter,
			UnlockLevel:  3,
			Points:       20,
			Category:     CategoryIntermediate,
		},
		{
			ID:           "push-away",
			Name:         "Push Away",
			Icon:         "🤚",
			Instruction:  "Push out with both hands!",
			CameraAction: "Extend both arms forward",
			Direction:    motion.DirUp,
			TapZone:      ZoneTop,
			UnlockLevel:  3,
			Points:       20,
			Category:     CategoryIntermediate,
		},
		{
			ID:           "power-stance",
			Name:         "Power Stance",
			Icon:         "🧍‍♀️",
			Instruction:  "Ground yourself in a power stance!",
			CameraAction: "Widen your stance, lower center",
			Direction:    motion.DirDown,
			TapZone:      ZoneBottom,
			UnlockLevel:  4,
			Points:       20,
			Category:     CategoryIntermediate,
		},
		{
			ID:           "escape-left",
			Name:         "Escape Left",
			Icon:         "🏃‍♀️",
			Instruction:  "Quick escape to the left!",
			CameraAction: "Move sharply to the left",
			Direction:    motion.DirLeft,
			TapZone:      ZoneLeft,
			UnlockLevel:  5,
			Points:       25,
			Category:     CategoryAdvanced,
		},
		{
			ID:           "escape-right",
			Name:         "Escape Right",
			Icon:         "🏃‍♀️",
			Instruction:  "Quick escape to the right!",
			CameraAction: "Move sharply to the right",
			Direction:    motion.DirRight,
			TapZone:      ZoneRight,
			UnlockLevel:  5,
			Points:       25,
			Category:     CategoryAdvanced,
		},
		{
			ID:           "shout",
			Name:         "Voice Projection",
			Icon:         "📢",
			Instruction:  "SHOUT to project your voice!",
			CameraAction: "Open mouth wide and project voice",
			Direction:    motion.DirCenter,
			TapZone:      ZoneCenter,
			UnlockLevel:  6,
			Points:       30,
			Category:     CategoryAdvanced,
		},
	}
}

// SeedGameLevels defines the seven levels of the reaction game.
func SeedGameLevels() []GameLevel {
	return []GameLevel{
		{
			ID:             1,
			Name:           "Awareness Awakening",
			Description:    "Learn the basics: blocking and dodging. Take your time — awareness starts here.",
			Icon:           "🌸",
			MoveIDs:        []string{"block", "dodge-left", "dodge-right"},
			TotalRounds:    8,
			TimePerMoveMS:  3000,
			MinScoreToPass: 50,
			ComboChains:    false,
			MaxCombo:       1,
		},
		{
			ID:             2,
			Name:           "Quick Reflexes",
			Description:    "Add stepping back to your toolkit. Speed increases — stay sharp!",
			Icon:           "⚡",
			MoveIDs:        []string{"block", "dodge-left", "dodge-right", "step-back"},
			TotalRounds:    10,
			TimePerMoveMS:  2500,
			MinScoreToPass: 60,
			ComboChains:    false,
			MaxCombo:       1,
		},
		{
			ID:             3,
			Name:           "Stand Your Ground",
			Description:    "Learn to strike and push back. Sometimes defense means standing firm.",
			Icon:           "💪",
			MoveIDs:        []string{"block", "dodge-left", "dodge-right", "step-back", "strike", "push-away"},
			TotalRounds:    12,
			TimePerMoveMS:  2200,
			MinScoreToPass: 65,
			ComboChains:    false,
			MaxCombo:       1,
		},
		{
			ID:             4,
			Name:           "Fight or Flight",
			Description:    "Master the power stance and decide: stand your ground or escape.",
			Icon:           "🔥",
			MoveIDs:        []string{"block", "dodge-left", "dodge-right", "strike", "push-away", "power-stance"},
			TotalRounds:    14,
			TimePerMoveMS:  2000,
			MinScoreToPass: 70,
			ComboChains:    true,
			MaxCombo:       2,
		},
		{
			ID:             5,
			Name:           "Escape Artist",
			Description:    "Practice escape maneuvers. Know when to run — it's the smartest defense.",
			Icon:           "🦋",
			MoveIDs:        []string{"dodge-left", "dodge-right", "step-back", "escape-left", "escape-right", "strike"},
			TotalRounds:    14,
			TimePerMoveMS:  1800,
			MinScoreToPass: 70,
			ComboChains:    true,
			MaxCombo:       2,
		},
		{
			ID:             6,
			Name:           "Voice of Power",
			Description:    "Your voice is your weapon. Learn to project confidence and command attention.",
			Icon:           "📢",
			MoveIDs:        []string{"block", "strike", "push-away", "shout", "power-stance", "escape-left", "escape-right"},
			TotalRounds:    16,
			TimePerMoveMS:  1600,
			MinScoreToPass: 75,
			ComboChains:    true,
			MaxCombo:       3,
		},
		{
			ID:             7,
			Name:           "Confidence Master",
			Description:    "The ultimate challenge. All moves, fastest speed. Show your full potential!",
			Icon:           "👑",
			MoveIDs:        []string{"block", "dodge-left", "dodge-right", "step-back", "strike", "push-away", "power-stance", "escape-left", "escape-right", "shout"},
			TotalRounds:    20,
			TimePerMoveMS:  1400,
			MinScoreToPass: 80,
			ComboChains:    true,
			MaxCombo:       3,
		},
	}
}

// Content indexes the move and level reference data for lookups.
// It is built once at boot and never mutated afterwards.
type Content struct {
	Moves  []DefenseMove
	Levels []GameLevel

	movesByID map[string]DefenseMove
}

// NewContent indexes and validates the given reference data. Every level
// must reference at least one existing move and carry a sane pass
// threshold; a broken level is a boot-time error, never a session error.
func NewContent(moves []DefenseMove, levels []GameLevel) (*Content, error) {
	c := &Content{
		Moves:     moves,
		Levels:    levels,
		movesByID: make(map[string]DefenseMove, len(moves)),
	}
	for _, m := range moves {
		c.movesByID[m.ID] = m
	}
	for _, lvl := range levels {
		if len(lvl.MoveIDs) == 0 {
			return nil, fmt.Errorf("%w: level %d", ErrEmptyMoveSet, lvl.ID)
		}
		if lvl.MinScoreToPass < 0 || lvl.MinScoreToPass > 100 {
			return nil, fmt.Errorf("%w: level %d has %d", ErrBadPassThreshold, lvl.ID, lvl.MinScoreToPass)
		}
		for _, id := range lvl.MoveIDs {
			if _, ok := c.movesByID[id]; !ok {
				return nil, fmt.Errorf("%w: level %d references %q", ErrMoveNotFound, lvl.ID, id)
			}
		}
	}
	return c, nil
}

// DefaultContent builds the seeded move and level set.
func DefaultContent() (*Content, error) {
	return NewContent(SeedDefenseMoves(), SeedGameLevels())
}

// Level returns a level by ID.
func (c *Content) Level(id int) (GameLevel, error) {
	for _, lvl := range c.Levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return GameLevel{}, fmt.Errorf("%w: %d", ErrLevelNotFound, id)
}

// Move returns a move by ID.
func (c *Content) Move(id string) (DefenseMove, bool) {
	m, ok := c.movesByID[id]
	return m, ok
}

// MovesForLevel resolves a level's eligible move set in declaration order.
func (c *Content) MovesForLevel(id int) ([]DefenseMove, error) {
	lvl, err := c.Level(id)
	if err != nil {
		return nil, err
	}
	out := make([]DefenseMove, 0, len(lvl.MoveIDs))
	for _, mid := range lvl.MoveIDs {
		m, ok := c.movesByID[mid]
		if !ok {
			return nil, fmt.Errorf("%w: level %d references %q", ErrMoveNotFound, id, mid)
		}
		out = append(out, m)
	}
	return out, nil
}
