package game

import (
	"fmt"

	"safepath/internal/motion"
)

// Input adapters: two interchangeable sources feed HandleSignal: a
// discrete tap on one of five zones, and the continuous motion
// classifier signal. The session only listens while a move is pending,
// so late or spurious signals between rounds are discarded.

// HandleTap maps a tapped zone to its direction and applies it to the
// pending round. Unknown zones are ignored.
func (s *Session) HandleTap(zone TapZone) {
	dir, ok := ZoneDirection(zone)
	if !ok {
		return
	}
	s.HandleSignal(dir)
}

// AttachCamera switches the session to camera input with the given
// classifier parameters. The classifier is exclusively owned by this
// session until DetachCamera or Close. Acquisition is explicit: frames
// are rejected unless camera mode was selected.
func (s *Session) AttachCamera(params motion.Params) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = ModeCamera
	s.camera = motion.NewClassifier(params)
}

// DetachCamera releases the classifier and falls back to tap input.
// Called on mode switch or when the client reports camera failure;
// the player keeps playing either way.
func (s *Session) DetachCamera() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = ModeTap
	s.camera = nil
}

// HandleFrame feeds one camera frame through the motion classifier and
// applies any resulting signal. Frames are ignored entirely when no
// move is pending so idle motion between rounds cannot score.
func (s *Session) HandleFrame(frame []byte) error {
	s.mu.Lock()
	classifier := s.camera
	pending := s.phase == PhasePlaying && s.current != nil
	s.mu.Unlock()

	if classifier == nil {
		return ErrNoCamera
	}
	if !pending {
		return nil
	}
	dir, err := classifier.Feed(frame)
	if err != nil {
		return fmt.Errorf("classify frame: %w", err)
	}
	if dir == motion.DirNone {
		return nil
	}
	s.HandleSignal(dir)
	return nil
}

// Mode returns the active input mode.
func (s *Session) Mode() InputMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}
