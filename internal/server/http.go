package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"safepath/internal/dialogue"
	"safepath/internal/knowledge"
	"safepath/internal/puzzle"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

type errorBody struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

func requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	return true
}

func startServer(app *App, addr string) {
	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	http.HandleFunc("/api/content", app.handleContent)
	http.HandleFunc("/api/progress", app.handleProgress)
	http.HandleFunc("/api/progress/knowledge-read", app.handleKnowledgeRead)
	http.HandleFunc("/api/progress/profile", app.handleProfile)
	http.HandleFunc("/api/progress/reset", app.handleProgressReset)
	http.HandleFunc("/api/puzzle/submit", app.handlePuzzleSubmit)
	http.HandleFunc("/api/coach", app.handleCoach)
	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWS(app, w, r)
	})
	log.Fatal(http.ListenAndServe(addr, nil))
}

// handleContent serves the full static content pack: defense moves and
// levels, scenario and role-play listings, answer-stripped puzzles and
// the knowledge base.
func (app *App) handleContent(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	var moves []moveDTO
	for _, m := range app.content.Moves {
		moves = append(moves, toMoveDTO(m))
	}
	var levels []levelDTO
	for _, l := range app.content.Levels {
		levels = append(levels, toLevelDTO(l))
	}
	var scenarios, roleplays []graphSummaryDTO
	for _, g := range app.library.ByKind(dialogue.KindScenario) {
		scenarios = append(scenarios, toGraphSummaryDTO(g))
	}
	for _, g := range app.library.ByKind(dialogue.KindRolePlay) {
		roleplays = append(roleplays, toGraphSummaryDTO(g))
	}
	var puzzles []puzzleDTO
	for _, p := range app.puzzles.All() {
		puzzles = append(puzzles, toPuzzleDTO(p))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"moves":     moves,
		"levels":    levels,
		"scenarios": scenarios,
		"roleplays": roleplays,
		"puzzles":   puzzles,
		"knowledge": map[string]any{
			"contacts": knowledge.Contacts(),
			"laws":     knowledge.Laws(),
			"modules":  knowledge.Modules(),
		},
	})
}

func (app *App) handleProgress(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, app.store.Snapshot())
}

func (app *App) handleKnowledgeRead(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req struct {
		ModuleID string `json:"moduleId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if _, err := knowledge.ModuleByID(req.ModuleID); err != nil {
		writeError(w, http.StatusNotFound, "content not found")
		return
	}
	app.store.MarkKnowledgeRead(req.ModuleID)
	writeJSON(w, http.StatusOK, app.store.Snapshot())
}

func (app *App) handleProfile(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req struct {
		PlayerName  *string `json:"playerName"`
		AvatarEmoji *string `json:"avatarEmoji"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.PlayerName != nil {
		app.store.SetPlayerName(*req.PlayerName)
	}
	if req.AvatarEmoji != nil {
		app.store.SetAvatarEmoji(*req.AvatarEmoji)
	}
	writeJSON(w, http.StatusOK, app.store.Snapshot())
}

func (app *App) handleProgressReset(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	app.store.Reset()
	writeJSON(w, http.StatusOK, app.store.Snapshot())
}

// handlePuzzleSubmit grades a submission and applies its progress
// effects once.
func (app *App) handlePuzzleSubmit(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req struct {
		PuzzleID    string            `json:"puzzleId"`
		Assignments map[string]string `json:"assignments"`
		Labels      map[string]bool   `json:"labels"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p, err := app.puzzles.Puzzle(req.PuzzleID)
	if err != nil {
		writeError(w, http.StatusNotFound, "content not found")
		return
	}
	var res puzzle.Result
	switch p.Type {
	case puzzle.TypeMatching:
		res, err = puzzle.EvaluateMatching(p, req.Assignments)
	case puzzle.TypeRedFlag:
		res, err = puzzle.EvaluateRedFlags(p, req.Labels)
	}
	if err != nil {
		if errors.Is(err, puzzle.ErrWrongType) {
			writeError(w, http.StatusBadRequest, "submission does not match puzzle type")
			return
		}
		writeError(w, http.StatusInternalServerError, "evaluation failed")
		return
	}
	res.Report(app.store, time.Now())
	writeJSON(w, http.StatusOK, res)
}
