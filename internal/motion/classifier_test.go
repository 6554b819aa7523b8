package motion

import (
	"errors"
	"testing"
)

func blankFrame(p Params) []byte {
	return make([]byte, p.Width*p.Height*4)
}

// paint fills a pixel rect with the same value on all three color
// channels. The alpha channel is left alone; the classifier ignores it.
func paint(p Params, buf []byte, x0, y0, x1, y1 int, v byte) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			i := (y*p.Width + x) * 4
			buf[i], buf[i+1], buf[i+2] = v, v, v
		}
	}
}

func TestDiffIdenticalFramesYieldsNone(t *testing.T) {
	p := DefaultParams()
	prev := blankFrame(p)
	curr := blankFrame(p)
	paint(p, prev, 0, 0, p.Width, p.Height, 120)
	paint(p, curr, 0, 0, p.Width, p.Height, 120)

	dir, err := Diff(p, prev, curr)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if dir != DirNone {
		t.Fatalf("identical frames: got %s, want %s", dir, DirNone)
	}
}

func TestDiffDirectionalRegions(t *testing.T) {
	p := DefaultParams()
	cases := []struct {
		name           string
		x0, y0, x1, y1 int
		want           Direction
	}{
		// The feed is mirrored: screen-left motion reads as right.
		{"screen left is right", 0, 100, 64, 140, DirRight},
		{"screen right is left", 240, 100, 304, 140, DirLeft},
		{"top", 120, 0, 200, 50, DirUp},
		{"bottom", 120, 200, 200, 239, DirDown},
		{"center", 120, 100, 200, 140, DirCenter},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prev := blankFrame(p)
			curr := blankFrame(p)
			paint(p, curr, tc.x0, tc.y0, tc.x1, tc.y1, 200)

			dir, err := Diff(p, prev, curr)
			if err != nil {
				t.Fatalf("Diff: %v", err)
			}
			if dir != tc.want {
				t.Errorf("got %s, want %s", dir, tc.want)
			}
		})
	}
}

func TestDiffTieResolvesCenter(t *testing.T) {
	p := DefaultParams()
	prev := blankFrame(p)
	curr := blankFrame(p)
	// Same geometry top and bottom: equal accumulators.
	paint(p, curr, 120, 0, 200, 40, 200)
	paint(p, curr, 120, 200, 200, 240, 200)

	dir, err := Diff(p, prev, curr)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if dir != DirCenter {
		t.Fatalf("tied regions: got %s, want %s", dir, DirCenter)
	}
}

func TestDiffBelowEnergyThresholdYieldsNone(t *testing.T) {
	p := DefaultParams()
	prev := blankFrame(p)
	curr := blankFrame(p)
	// A few pixels of real motion, nowhere near a deliberate gesture.
	paint(p, curr, 120, 100, 128, 104, 200)

	dir, err := Diff(p, prev, curr)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if dir != DirNone {
		t.Fatalf("sub-threshold motion: got %s, want %s", dir, DirNone)
	}
}

func TestDiffBelowPixelThresholdYieldsNone(t *testing.T) {
	p := DefaultParams()
	prev := blankFrame(p)
	curr := blankFrame(p)
	// 10 per channel sums to exactly the pixel threshold, which does not
	// count as motion.
	paint(p, curr, 0, 0, p.Width, p.Height, 10)

	dir, err := Diff(p, prev, curr)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if dir != DirNone {
		t.Fatalf("sensor noise: got %s, want %s", dir, DirNone)
	}
}

func TestDiffFrameSizeMismatch(t *testing.T) {
	p := DefaultParams()
	_, err := Diff(p, blankFrame(p), make([]byte, 16))
	if !errors.Is(err, ErrFrameSize) {
		t.Fatalf("got %v, want ErrFrameSize", err)
	}
}

func TestClassifierFirstFramePrimes(t *testing.T) {
	c := NewClassifier(DefaultParams())
	p := c.Params()

	moving := blankFrame(p)
	paint(p, moving, 120, 0, 200, 50, 200)

	dir, err := c.Feed(moving)
	if err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if dir != DirNone {
		t.Fatalf("priming frame: got %s, want %s", dir, DirNone)
	}

	dir, err = c.Feed(blankFrame(p))
	if err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if dir != DirUp {
		t.Fatalf("second frame: got %s, want %s", dir, DirUp)
	}
}

func TestClassifierReset(t *testing.T) {
	c := NewClassifier(DefaultParams())
	p := c.Params()
	if _, err := c.Feed(blankFrame(p)); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	c.Reset()

	moving := blankFrame(p)
	paint(p, moving, 120, 0, 200, 50, 200)
	dir, err := c.Feed(moving)
	if err != nil {
		t.Fatalf("Feed after reset: %v", err)
	}
	if dir != DirNone {
		t.Fatalf("frame after reset should prime: got %s, want %s", dir, DirNone)
	}
}

func TestSanitizeParamsFillsDefaults(t *testing.T) {
	p := SanitizeParams(Params{Width: -1, EnergyThreshold: 0})
	d := DefaultParams()
	if p != d {
		t.Fatalf("got %+v, want defaults %+v", p, d)
	}
}
