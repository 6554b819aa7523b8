package server

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"safepath/internal/dialogue"
	"safepath/internal/game"
	"safepath/internal/motion"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// playRoom is the per-connection session holder: at most one
// self-defense session and one dialogue session at a time. All writes
// to the socket go through send, which serializes them.
type playRoom struct {
	app *App

	writeMu sync.Mutex
	conn    *websocket.Conn

	mu      sync.Mutex
	defense *game.Session
	dlg     *dialogue.Session
	motion  motion.Params
}

func (room *playRoom) send(msgType string, payload any) {
	room.writeMu.Lock()
	defer room.writeMu.Unlock()
	msg := map[string]any{"type": msgType, "payload": payload}
	if err := room.conn.WriteJSON(msg); err != nil {
		log.Printf("ws write %s: %v", msgType, err)
	}
}

func (room *playRoom) sendError(msg string) {
	room.send("error", errorBody{Error: msg})
}

// sessionEvents forwards engine transitions to the client. Callbacks
// fire with the session lock held, so they only marshal and write.
type sessionEvents struct {
	room *playRoom
}

func (e sessionEvents) OnCountdown(n int, cue game.Cue) {
	e.room.send("defense_countdown", map[string]any{"value": n, "cue": cue})
}

func (e sessionEvents) OnRoundStart(round int, move game.DefenseMove, budget time.Duration) {
	e.room.send("defense_round", map[string]any{
		"round":       round,
		"move":        toMoveDTO(move),
		"timeLimitMs": budget.Milliseconds(),
	})
}

func (e sessionEvents) OnRoundResolved(round int, res game.RoundResult, combo int, cue game.Cue) {
	e.room.send("defense_round_result", map[string]any{
		"round":      round,
		"moveId":     res.Move.ID,
		"reacted":    res.Reacted,
		"reactionMs": res.ReactionTime.Milliseconds(),
		"correct":    res.Correct,
		"combo":      combo,
		"cue":        cue,
	})
}

func (e sessionEvents) OnResults(sum game.Summary, cue game.Cue) {
	e.room.send("defense_results", map[string]any{
		"summary": toSummaryDTO(sum),
		"cue":     cue,
	})
}

func parseIntOverride(values url.Values, key string) (*int, bool) {
	raw := values.Get(key)
	if raw == "" {
		return nil, false
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return nil, false
	}
	return &val, true
}

func parseFloatOverride(values url.Values, key string) (*float64, bool) {
	raw := values.Get(key)
	if raw == "" {
		return nil, false
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, false
	}
	return &val, true
}

func parseMotionOverrides(values url.Values) (MotionParamOverrides, bool) {
	var overrides MotionParamOverrides
	var found bool

	if v, ok := parseIntOverride(values, "motionWidth"); ok {
		overrides.Width = v
		found = true
	}
	if v, ok := parseIntOverride(values, "motionHeight"); ok {
		overrides.Height = v
		found = true
	}
	if v, ok := parseIntOverride(values, "motionStride"); ok {
		overrides.Stride = v
		found = true
	}
	if v, ok := parseFloatOverride(values, "motionPixel"); ok {
		overrides.PixelThreshold = v
		found = true
	}
	if v, ok := parseFloatOverride(values, "motionEnergy"); ok {
		overrides.EnergyThreshold = v
		found = true
	}
	return overrides, found
}

func serveWS(app *App, w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params := app.motion
	if overrides, ok := parseMotionOverrides(query); ok {
		params = applyMotionOverrides(params, overrides)
		log.Printf("ws motion overrides: %dx%d stride %d pixel %.0f energy %.0f",
			params.Width, params.Height, params.Stride, params.PixelThreshold, params.EnergyThreshold)
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}
	room := &playRoom{app: app, conn: conn, motion: params}
	defer room.close()

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if msgType != websocket.TextMessage {
			log.Printf("unsupported websocket message type %d", msgType)
			continue
		}
		var inbound inboundMessage
		if err := json.Unmarshal(data, &inbound); err != nil {
			log.Printf("invalid JSON message: %v", err)
			continue
		}
		room.dispatch(inbound)
	}
}

func (room *playRoom) close() {
	room.mu.Lock()
	defer room.mu.Unlock()
	if room.defense != nil {
		room.defense.Close()
		room.defense = nil
	}
	room.dlg = nil
	room.conn.Close()
}

func (room *playRoom) dispatch(inbound inboundMessage) {
	switch inbound.Type {
	case "defense_start":
		room.handleDefenseStart(inbound.Payload)
	case "defense_tap":
		room.handleDefenseTap(inbound.Payload)
	case "defense_frame":
		room.handleDefenseFrame(inbound.Payload)
	case "defense_reset":
		room.handleDefenseReset()
	case "dialogue_start":
		room.handleDialogueStart(inbound.Payload)
	case "dialogue_choose":
		room.handleDialogueChoose(inbound.Payload)
	case "dialogue_continue":
		room.handleDialogueContinue()
	case "dialogue_finish":
		room.handleDialogueFinish()
	case "dialogue_reset":
		room.handleDialogueReset()
	default:
		log.Printf("unknown message type: %s", inbound.Type)
	}
}

/* --------------------------- self-defense -------------------------- */

func (room *playRoom) handleDefenseStart(payload json.RawMessage) {
	var req struct {
		LevelID int    `json:"levelId"`
		Mode    string `json:"mode"`
	}
	if err := json.Unmarshal(payload, &req); err != nil {
		room.sendError("invalid defense_start payload")
		return
	}
	level, err := room.app.content.Level(req.LevelID)
	if err != nil {
		room.sendError("content not found")
		return
	}
	moves, err := room.app.content.MovesForLevel(req.LevelID)
	if err != nil {
		room.sendError("content not found")
		return
	}

	room.mu.Lock()
	defer room.mu.Unlock()
	if room.defense != nil {
		room.defense.Close()
	}
	sess, err := game.NewSession(level, moves, room.app.store, game.WithEvents(sessionEvents{room}))
	if err != nil {
		room.sendError("could not start session")
		return
	}
	mode := game.ModeTap
	if req.Mode == string(game.ModeCamera) {
		mode = game.ModeCamera
		sess.AttachCamera(room.motion)
	}
	if err := sess.Start(mode); err != nil {
		room.sendError("could not start session")
		return
	}
	room.defense = sess
}

func (room *playRoom) handleDefenseTap(payload json.RawMessage) {
	var req struct {
		Zone string `json:"zone"`
	}
	if err := json.Unmarshal(payload, &req); err != nil {
		room.sendError("invalid defense_tap payload")
		return
	}
	room.mu.Lock()
	sess := room.defense
	room.mu.Unlock()
	if sess == nil {
		return
	}
	sess.HandleTap(game.TapZone(req.Zone))
}

func (room *playRoom) handleDefenseFrame(payload json.RawMessage) {
	var req struct {
		Frame string `json:"frame"` // base64 RGBA
	}
	if err := json.Unmarshal(payload, &req); err != nil {
		room.sendError("invalid defense_frame payload")
		return
	}
	room.mu.Lock()
	sess := room.defense
	room.mu.Unlock()
	if sess == nil {
		return
	}
	frame, err := base64.StdEncoding.DecodeString(req.Frame)
	if err != nil {
		room.sendError("invalid frame encoding")
		return
	}
	if err := sess.HandleFrame(frame); err != nil {
		if errors.Is(err, motion.ErrFrameSize) {
			room.sendError("unexpected frame size")
			return
		}
		if errors.Is(err, game.ErrNoCamera) {
			room.sendError("camera mode not active")
			return
		}
		log.Printf("frame: %v", err)
	}
}

func (room *playRoom) handleDefenseReset() {
	room.mu.Lock()
	defer room.mu.Unlock()
	if room.defense == nil {
		return
	}
	room.defense.Reset()
	room.send("defense_reset_ok", map[string]any{"phase": game.PhaseSetup})
}

/* ----------------------------- dialogue ---------------------------- */

func (room *playRoom) handleDialogueStart(payload json.RawMessage) {
	var req struct {
		GraphID string `json:"graphId"`
	}
	if err := json.Unmarshal(payload, &req); err != nil {
		room.sendError("invalid dialogue_start payload")
		return
	}
	g, err := room.app.library.Graph(req.GraphID)
	if err != nil {
		room.sendError("content not found")
		return
	}
	room.mu.Lock()
	defer room.mu.Unlock()
	room.dlg = dialogue.NewSession(g, room.app.store)
	room.send("dialogue_node", map[string]any{
		"sessionId": room.dlg.ID,
		"graph":     toGraphSummaryDTO(g),
		"node":      toNodeDTO(room.dlg.Current()),
		"score":     room.dlg.Score(),
	})
}

func (room *playRoom) handleDialogueChoose(payload json.RawMessage) {
	var req struct {
		ChoiceID string `json:"choiceId"`
	}
	if err := json.Unmarshal(payload, &req); err != nil {
		room.sendError("invalid dialogue_choose payload")
		return
	}
	room.mu.Lock()
	defer room.mu.Unlock()
	if room.dlg == nil {
		room.sendError("no active dialogue")
		return
	}
	adv, err := room.dlg.Choose(req.ChoiceID)
	if err != nil {
		if errors.Is(err, dialogue.ErrChoiceNotFound) {
			room.sendError("content not found")
			return
		}
		room.sendError("choice rejected")
		return
	}
	room.send("dialogue_feedback", map[string]any{
		"choiceId":   adv.Choice.ID,
		"feedback":   adv.Feedback,
		"npcEmotion": adv.Choice.NPCEmotion,
		"scoreDelta": adv.ScoreDelta,
		"score":      room.dlg.Score(),
		"ei":         room.dlg.EI(),
		"terminal":   adv.Terminal,
	})
}

func (room *playRoom) handleDialogueContinue() {
	room.mu.Lock()
	defer room.mu.Unlock()
	if room.dlg == nil {
		room.sendError("no active dialogue")
		return
	}
	node, err := room.dlg.Continue()
	if err != nil {
		room.sendError("cannot continue")
		return
	}
	room.send("dialogue_node", map[string]any{
		"node":        toNodeDTO(node),
		"score":       room.dlg.Score(),
		"riskHistory": room.dlg.RiskHistory(),
		"ei":          room.dlg.EI(),
		"ended":       room.dlg.Ended(),
	})
}

func (room *playRoom) handleDialogueFinish() {
	room.mu.Lock()
	defer room.mu.Unlock()
	if room.dlg == nil {
		room.sendError("no active dialogue")
		return
	}
	out, err := room.dlg.Finish()
	if err != nil {
		room.sendError("dialogue not at an ending")
		return
	}
	room.send("dialogue_outcome", map[string]any{
		"sessionId":  out.SessionID,
		"graphId":    out.GraphID,
		"finalScore": out.FinalScore,
		"maxScore":   out.MaxScore,
		"trail":      out.Trail,
		"endingType": out.EndingType,
		"ei":         out.EI,
	})
}

func (room *playRoom) handleDialogueReset() {
	room.mu.Lock()
	defer room.mu.Unlock()
	if room.dlg == nil {
		room.sendError("no active dialogue")
		return
	}
	room.dlg.Reset()
	room.send("dialogue_node", map[string]any{
		"node":  toNodeDTO(room.dlg.Current()),
		"score": room.dlg.Score(),
	})
}
