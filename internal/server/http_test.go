package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"safepath/internal/dialogue"
	"safepath/internal/game"
	"safepath/internal/motion"
	"safepath/internal/progress"
	"safepath/internal/puzzle"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	content, err := game.DefaultContent()
	if err != nil {
		t.Fatalf("DefaultContent: %v", err)
	}
	library, err := dialogue.DefaultLibrary()
	if err != nil {
		t.Fatalf("DefaultLibrary: %v", err)
	}
	puzzles, err := puzzle.DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog: %v", err)
	}
	store, err := progress.NewStore(progress.NewMemoryPersister())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return &App{
		content: content,
		library: library,
		puzzles: puzzles,
		store:   store,
		motion:  motion.DefaultParams(),
		coach:   newCoach("", "gpt-4o-mini"),
	}
}

func TestHandleContent(t *testing.T) {
	app := newTestApp(t)
	rec := httptest.NewRecorder()
	app.handleContent(rec, httptest.NewRequest(http.MethodGet, "/api/content", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	var body struct {
		Moves     []json.RawMessage `json:"moves"`
		Levels    []json.RawMessage `json:"levels"`
		Scenarios []json.RawMessage `json:"scenarios"`
		Roleplays []json.RawMessage `json:"roleplays"`
		Puzzles   []json.RawMessage `json:"puzzles"`
		Knowledge struct {
			Contacts []json.RawMessage `json:"contacts"`
			Laws     []json.RawMessage `json:"laws"`
			Modules  []json.RawMessage `json:"modules"`
		} `json:"knowledge"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Moves) != 10 || len(body.Levels) != 7 {
		t.Errorf("defense content: got %d moves %d levels", len(body.Moves), len(body.Levels))
	}
	if len(body.Scenarios) != 2 || len(body.Roleplays) != 3 {
		t.Errorf("dialogue content: got %d scenarios %d roleplays", len(body.Scenarios), len(body.Roleplays))
	}
	if len(body.Puzzles) != 4 {
		t.Errorf("puzzles: got %d, want 4", len(body.Puzzles))
	}
	if len(body.Knowledge.Contacts) == 0 || len(body.Knowledge.Laws) == 0 || len(body.Knowledge.Modules) == 0 {
		t.Error("knowledge base missing from content pack")
	}
}

func TestHandleContentMethodNotAllowed(t *testing.T) {
	app := newTestApp(t)
	rec := httptest.NewRecorder()
	app.handleContent(rec, httptest.NewRequest(http.MethodPost, "/api/content", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status: got %d, want 405", rec.Code)
	}
}

func TestHandleProgressLifecycle(t *testing.T) {
	app := newTestApp(t)

	rec := httptest.NewRecorder()
	app.handleProfile(rec, httptest.NewRequest(http.MethodPost, "/api/progress/profile",
		strings.NewReader(`{"playerName":"Priya","avatarEmoji":"🌟"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("profile status: got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	app.handleProgress(rec, httptest.NewRequest(http.MethodGet, "/api/progress", nil))
	var snap progress.Record
	if err := json.NewDecoder(rec.Body).Decode(&snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if snap.PlayerName != "Priya" || snap.AvatarEmoji != "🌟" {
		t.Errorf("profile not applied: %q %q", snap.PlayerName, snap.AvatarEmoji)
	}

	rec = httptest.NewRecorder()
	app.handleProgressReset(rec, httptest.NewRequest(http.MethodPost, "/api/progress/reset", nil))
	if err := json.NewDecoder(rec.Body).Decode(&snap); err != nil {
		t.Fatalf("decode reset snapshot: %v", err)
	}
	if snap.PlayerName != "Priya" {
		t.Errorf("reset dropped player name: %q", snap.PlayerName)
	}
	if snap.TotalPoints != 0 || snap.Level != 1 {
		t.Errorf("reset left progress: %+v", snap)
	}
}

func TestHandleKnowledgeRead(t *testing.T) {
	app := newTestApp(t)

	rec := httptest.NewRecorder()
	app.handleKnowledgeRead(rec, httptest.NewRequest(http.MethodPost, "/api/progress/knowledge-read",
		strings.NewReader(`{"moduleId":"nope"}`)))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown module: got %d, want 404", rec.Code)
	}
	var errBody errorBody
	if err := json.NewDecoder(rec.Body).Decode(&errBody); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if errBody.Error != "content not found" {
		t.Errorf("error message: got %q, want %q", errBody.Error, "content not found")
	}
}

func TestHandlePuzzleSubmit(t *testing.T) {
	app := newTestApp(t)

	rec := httptest.NewRecorder()
	app.handlePuzzleSubmit(rec, httptest.NewRequest(http.MethodPost, "/api/puzzle/submit",
		strings.NewReader(`{"puzzleId":"safety-tools-matching","assignments":{"m1":"Call 112 & enter a crowded place"}}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	var res puzzle.Result
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if res.Correct != 1 || res.Total != 6 {
		t.Errorf("grading: got %d/%d, want 1/6", res.Correct, res.Total)
	}

	snap := app.store.Snapshot()
	if snap.TotalPoints != res.Score {
		t.Errorf("points not reported: store=%d result=%d", snap.TotalPoints, res.Score)
	}
	if len(snap.CompletedScenarios) != 1 || snap.CompletedScenarios[0] != "puzzle-safety-tools-matching" {
		t.Errorf("completion not recorded: %v", snap.CompletedScenarios)
	}
}

func TestHandlePuzzleSubmitErrors(t *testing.T) {
	app := newTestApp(t)

	rec := httptest.NewRecorder()
	app.handlePuzzleSubmit(rec, httptest.NewRequest(http.MethodPost, "/api/puzzle/submit",
		strings.NewReader(`{"puzzleId":"nope"}`)))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown puzzle: got %d, want 404", rec.Code)
	}

	rec = httptest.NewRecorder()
	app.handlePuzzleSubmit(rec, httptest.NewRequest(http.MethodPost, "/api/puzzle/submit",
		strings.NewReader(`not json`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad body: got %d, want 400", rec.Code)
	}
}

func TestHandleCoachUnconfigured(t *testing.T) {
	app := newTestApp(t)
	rec := httptest.NewRecorder()
	app.handleCoach(rec, httptest.NewRequest(http.MethodPost, "/api/coach",
		strings.NewReader(`{"messages":[{"role":"user","content":"hi"}]}`)))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status: got %d, want 503", rec.Code)
	}
}
