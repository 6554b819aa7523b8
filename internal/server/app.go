package server

import (
	"log"

	"safepath/internal/dialogue"
	"safepath/internal/game"
	"safepath/internal/motion"
	"safepath/internal/progress"
	"safepath/internal/puzzle"
)

// AppConfig carries the parsed environment plus command-line overrides.
type AppConfig struct {
	Env             Env
	MotionOverrides MotionParamOverrides
}

// App holds the wired application state shared by the HTTP and
// websocket handlers.
type App struct {
	content *game.Content
	library *dialogue.Library
	puzzles *puzzle.Catalog
	store   *progress.Store
	motion  motion.Params
	coach   *coach
}

func resolveMotionParams(cfg AppConfig) motion.Params {
	params := motion.DefaultParams()
	loaded, err := loadMotionParamsFromFile(cfg.Env.TuningPath, params)
	if err != nil {
		log.Printf("tuning config: %v (using defaults)", err)
	} else {
		params = loaded
	}
	params = applyMotionOverrides(params, cfg.MotionOverrides)
	return motion.SanitizeParams(params)
}

// StartApp wires content, progress persistence and the coach, then
// serves until the listener fails.
func StartApp(cfg AppConfig) {
	content, err := game.DefaultContent()
	if err != nil {
		log.Fatalf("failed to load defense content: %v", err)
	}
	library, err := dialogue.DefaultLibrary()
	if err != nil {
		log.Fatalf("failed to load dialogue library: %v", err)
	}
	puzzles, err := puzzle.DefaultCatalog()
	if err != nil {
		log.Fatalf("failed to load puzzles: %v", err)
	}

	var persister progress.Persister
	if cfg.Env.DatabasePath == "" {
		persister = progress.NewMemoryPersister()
		log.Printf("progress: no database path, using in-memory store")
	} else {
		sp, err := progress.OpenSQLite(cfg.Env.DatabasePath)
		if err != nil {
			log.Fatalf("failed to open progress database: %v", err)
		}
		persister = sp
	}
	store, err := progress.NewStore(persister)
	if err != nil {
		log.Fatalf("failed to load progress: %v", err)
	}

	params := resolveMotionParams(cfg)

	app := &App{
		content: content,
		library: library,
		puzzles: puzzles,
		store:   store,
		motion:  params,
		coach:   newCoach(cfg.Env.OpenAIKey, cfg.Env.CoachModel),
	}

	log.Printf("starting web server on %s (frame %dx%d, pixel threshold %.0f, energy threshold %.0f)",
		cfg.Env.Addr, params.Width, params.Height, params.PixelThreshold, params.EnergyThreshold)
	startServer(app, cfg.Env.Addr)
}
