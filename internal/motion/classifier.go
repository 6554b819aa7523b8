// Package motion turns consecutive camera frames into a discrete
// directional signal by frame differencing over five screen regions.
//
// Classification is pure with respect to (params, prev_frame, curr_frame).
// The caller owns frame capture cadence; frames are RGBA byte buffers as
// produced by a canvas readback.
package motion

import (
	"errors"
	"fmt"
)

// Direction is the discrete signal produced by the classifier.
type Direction string

const (
	DirNone   Direction = "none"
	DirLeft   Direction = "left"
	DirRight  Direction = "right"
	DirUp     Direction = "up"
	DirDown   Direction = "down"
	DirCenter Direction = "center"
)

// ErrFrameSize is returned when a frame buffer does not match the
// configured dimensions.
var ErrFrameSize = errors.New("motion: frame size mismatch")

// Params defines the tunable parameters for motion classification.
// None of the numeric constants are load-bearing contracts; they come
// from the tuning config and can be overridden per connection.
type Params struct {
	Width           int     // Frame width in pixels (e.g., 320)
	Height          int     // Frame height in pixels (e.g., 240)
	Stride          int     // Sample every Nth pixel (e.g., 4)
	PixelThreshold  float64 // Per-pixel summed channel diff that counts as motion (e.g., 30)
	EnergyThreshold float64 // Minimum region accumulator for a deliberate gesture (e.g., 15000)
}

// DefaultParams returns the observed tuning from the reference capture
// pipeline: 320x240 frames, every 4th pixel sampled.
func DefaultParams() Params {
	return Params{
		Width:           320,
		Height:          240,
		Stride:          4,
		PixelThreshold:  30,
		EnergyThreshold: 15000,
	}
}

// SanitizeParams clamps and normalizes params to safe values.
func SanitizeParams(p Params) Params {
	d := DefaultParams()
	if p.Width <= 0 {
		p.Width = d.Width
	}
	if p.Height <= 0 {
		p.Height = d.Height
	}
	if p.Stride <= 0 {
		p.Stride = d.Stride
	}
	if p.PixelThreshold <= 0 {
		p.PixelThreshold = d.PixelThreshold
	}
	if p.EnergyThreshold <= 0 {
		p.EnergyThreshold = d.EnergyThreshold
	}
	return p
}

// frameLen is the expected RGBA buffer length for the configured size.
func (p Params) frameLen() int {
	return p.Width * p.Height * 4
}

// regionEnergy accumulates motion energy per screen region.
type regionEnergy struct {
	left, right, top, bottom, center float64
}

// Diff classifies the motion between two frames. It returns DirNone when
// no region's accumulated energy clears the energy threshold, so two
// identical frames always yield DirNone.
//
// The camera feed is mirrored for the user, so screen-left motion is
// reported as DirRight and vice versa. A tie on the maximum accumulator
// resolves to DirCenter.
func Diff(p Params, prev, curr []byte) (Direction, error) {
	want := p.frameLen()
	if len(prev) != want || len(curr) != want {
		return DirNone, fmt.Errorf("%w: want %d bytes, got prev=%d curr=%d", ErrFrameSize, want, len(prev), len(curr))
	}

	var reg regionEnergy
	w := float64(p.Width)
	h := float64(p.Height)
	step := p.Stride * 4

	for i := 0; i+2 < want; i += step {
		diff := absDiff(curr[i], prev[i]) + absDiff(curr[i+1], prev[i+1]) + absDiff(curr[i+2], prev[i+2])
		if diff <= p.PixelThreshold {
			continue
		}
		pixel := i / 4
		x := float64(pixel % p.Width)
		y := float64(pixel / p.Width)

		// Mirrored feed: screen-left is the user's right.
		if x < w*0.33 {
			reg.right += diff
		} else if x > w*0.66 {
			reg.left += diff
		}
		if y < h*0.4 {
			reg.top += diff
		} else if y > h*0.6 {
			reg.bottom += diff
		}
		if x > w*0.25 && x < w*0.75 && y > h*0.25 && y < h*0.75 {
			reg.center += diff
		}
	}

	return reg.classify(p.EnergyThreshold), nil
}

func (r regionEnergy) classify(energyThreshold float64) Direction {
	max := r.left
	if r.right > max {
		max = r.right
	}
	if r.top > max {
		max = r.top
	}
	if r.bottom > max {
		max = r.bottom
	}
	if r.center > max {
		max = r.center
	}
	if max < energyThreshold {
		return DirNone
	}

	leaders := 0
	var dir Direction
	for _, c := range []struct {
		v float64
		d Direction
	}{
		{r.top, DirUp},
		{r.bottom, DirDown},
		{r.left, DirLeft},
		{r.right, DirRight},
		{r.center, DirCenter},
	} {
		if c.v == max {
			leaders++
			if dir == "" {
				dir = c.d
			}
		}
	}
	if leaders > 1 {
		return DirCenter
	}
	return dir
}

func absDiff(a, b byte) float64 {
	if a > b {
		return float64(a - b)
	}
	return float64(b - a)
}

// Classifier keeps the previous frame between calls. It is owned by one
// play session at a time and must be dropped when the camera is released.
type Classifier struct {
	params Params
	prev   []byte
}

func NewClassifier(p Params) *Classifier {
	return &Classifier{params: SanitizeParams(p)}
}

// Params returns the effective (sanitized) parameters.
func (c *Classifier) Params() Params {
	return c.params
}

// Feed classifies the motion between the previous frame and this one.
// The first frame primes the classifier and reports no signal.
func (c *Classifier) Feed(frame []byte) (Direction, error) {
	if len(frame) != c.params.frameLen() {
		return DirNone, fmt.Errorf("%w: want %d bytes, got %d", ErrFrameSize, c.params.frameLen(), len(frame))
	}
	if c.prev == nil {
		c.prev = append([]byte(nil), frame...)
		return DirNone, nil
	}
	dir, err := Diff(c.params, c.prev, frame)
	copy(c.prev, frame)
	return dir, err
}

// Reset drops the retained frame so the next Feed primes again.
func (c *Classifier) Reset() {
	c.prev = nil
}
