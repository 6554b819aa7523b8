package game

import (
	"errors"
	"testing"

	"safepath/internal/motion"
)

func TestDefaultContentValid(t *testing.T) {
	c, err := DefaultContent()
	if err != nil {
		t.Fatalf("DefaultContent: %v", err)
	}
	if len(c.Moves) != 10 {
		t.Fatalf("expected 10 moves, got %d", len(c.Moves))
	}
	if len(c.Levels) != 7 {
		t.Fatalf("expected 7 levels, got %d", len(c.Levels))
	}
	for _, lvl := range c.Levels {
		moves, err := c.MovesForLevel(lvl.ID)
		if err != nil {
			t.Fatalf("MovesForLevel(%d): %v", lvl.ID, err)
		}
		if len(moves) != len(lvl.MoveIDs) {
			t.Errorf("level %d: got %d moves, want %d", lvl.ID, len(moves), len(lvl.MoveIDs))
		}
		for i, m := range moves {
			if m.ID != lvl.MoveIDs[i] {
				t.Errorf("level %d move %d: got %q, want %q", lvl.ID, i, m.ID, lvl.MoveIDs[i])
			}
		}
	}
}

func TestContentLevelNotFound(t *testing.T) {
	c, err := DefaultContent()
	if err != nil {
		t.Fatalf("DefaultContent: %v", err)
	}
	if _, err := c.Level(99); !errors.Is(err, ErrLevelNotFound) {
		t.Fatalf("Level(99): got %v, want ErrLevelNotFound", err)
	}
	if _, err := c.MovesForLevel(99); !errors.Is(err, ErrLevelNotFound) {
		t.Fatalf("MovesForLevel(99): got %v, want ErrLevelNotFound", err)
	}
	if _, ok := c.Move("nope"); ok {
		t.Fatal("Move(nope): expected not found")
	}
}

func TestNewContentRejectsBrokenLevels(t *testing.T) {
	moves := []DefenseMove{{ID: "block", Direction: motion.DirUp, TapZone: ZoneTop}}

	tests := []struct {
		name  string
		level GameLevel
		want  error
	}{
		{
			name:  "missing move reference",
			level: GameLevel{ID: 1, MoveIDs: []string{"block", "missing"}, MinScoreToPass: 50},
			want:  ErrMoveNotFound,
		},
		{
			name:  "empty move set",
			level: GameLevel{ID: 1, MinScoreToPass: 50},
			want:  ErrEmptyMoveSet,
		},
		{
			name:  "pass threshold above 100",
			level: GameLevel{ID: 1, MoveIDs: []string{"block"}, MinScoreToPass: 150},
			want:  ErrBadPassThreshold,
		},
		{
			name:  "negative pass threshold",
			level: GameLevel{ID: 1, MoveIDs: []string{"block"}, MinScoreToPass: -1},
			want:  ErrBadPassThreshold,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewContent(moves, []GameLevel{tc.level}); !errors.Is(err, tc.want) {
				t.Fatalf("NewContent: got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestZoneDirection(t *testing.T) {
	tests := []struct {
		zone TapZone
		dir  motion.Direction
	}{
		{ZoneTop, motion.DirUp},
		{ZoneBottom, motion.DirDown},
		{ZoneLeft, motion.DirLeft},
		{ZoneRight, motion.DirRight},
		{ZoneCenter, motion.DirCenter},
	}
	for _, tc := range tests {
		dir, ok := ZoneDirection(tc.zone)
		if !ok || dir != tc.dir {
			t.Errorf("ZoneDirection(%s): got %v %v, want %v true", tc.zone, dir, ok, tc.dir)
		}
	}
	if _, ok := ZoneDirection("diagonal"); ok {
		t.Fatal("ZoneDirection(diagonal): expected not ok")
	}
}
