package server

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"safepath/internal/motion"
)

// Env is the environment-variable configuration.
type Env struct {
	Addr         string `env:"SAFEPATH_ADDR" envDefault:":8080"`
	DatabasePath string `env:"SAFEPATH_DB" envDefault:"safepath.db"`
	TuningPath   string `env:"SAFEPATH_TUNING" envDefault:"configs/tuning.json"`
	OpenAIKey    string `env:"OPENAI_API_KEY"`
	CoachModel   string `env:"SAFEPATH_COACH_MODEL" envDefault:"gpt-4o-mini"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

type motionConfig struct {
	Width           *int     `json:"width"`
	Height          *int     `json:"height"`
	Stride          *int     `json:"stride"`
	PixelThreshold  *float64 `json:"pixelThreshold"`
	EnergyThreshold *float64 `json:"energyThreshold"`
}

type tuningConfig struct {
	Motion *motionConfig `json:"motion"`
}

// MotionParamOverrides represents optional command-line overrides for
// tuning motion detection parameters.
type MotionParamOverrides struct {
	Width           *int
	Height          *int
	Stride          *int
	PixelThreshold  *float64
	EnergyThreshold *float64
}

func (o MotionParamOverrides) apply(base motion.Params) motion.Params {
	if o.Width != nil {
		base.Width = *o.Width
	}
	if o.Height != nil {
		base.Height = *o.Height
	}
	if o.Stride != nil {
		base.Stride = *o.Stride
	}
	if o.PixelThreshold != nil {
		base.PixelThreshold = *o.PixelThreshold
	}
	if o.EnergyThreshold != nil {
		base.EnergyThreshold = *o.EnergyThreshold
	}
	return motion.SanitizeParams(base)
}

func mergeMotionConfig(base motion.Params, cfg *motionConfig) motion.Params {
	if cfg == nil {
		return base
	}
	if cfg.Width != nil {
		base.Width = *cfg.Width
	}
	if cfg.Height != nil {
		base.Height = *cfg.Height
	}
	if cfg.Stride != nil {
		base.Stride = *cfg.Stride
	}
	if cfg.PixelThreshold != nil {
		base.PixelThreshold = *cfg.PixelThreshold
	}
	if cfg.EnergyThreshold != nil {
		base.EnergyThreshold = *cfg.EnergyThreshold
	}
	return motion.SanitizeParams(base)
}

func loadMotionParamsFromFile(path string, base motion.Params) (motion.Params, error) {
	if path == "" {
		return motion.SanitizeParams(base), nil
	}
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return motion.SanitizeParams(base), nil
		}
		return motion.SanitizeParams(base), fmt.Errorf("read tuning config %q: %w", cleanPath, err)
	}
	var cfg tuningConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return motion.SanitizeParams(base), fmt.Errorf("parse tuning config %q: %w", cleanPath, err)
	}
	return mergeMotionConfig(base, cfg.Motion), nil
}

func applyMotionOverrides(base motion.Params, overrides MotionParamOverrides) motion.Params {
	return overrides.apply(base)
}
