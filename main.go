package main

import (
	"flag"
	"log"
	"math"

	"github.com/joho/godotenv"

	"safepath/internal/server"
)

func main() {
	_ = godotenv.Load()

	env, err := server.ParseEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	addr := flag.String("addr", env.Addr, "address to listen on (e.g., 127.0.0.1:8080)")
	dbPath := flag.String("db", env.DatabasePath, "path to progress SQLite database (empty for in-memory)")
	tuningPath := flag.String("tuning-config", env.TuningPath, "path to motion tuning JSON")
	motionWidth := flag.Int("motion-width", -1, "override camera frame width")
	motionHeight := flag.Int("motion-height", -1, "override camera frame height")
	motionStride := flag.Int("motion-stride", -1, "override pixel sampling stride")
	motionPixel := flag.Float64("motion-pixel", math.NaN(), "override per-pixel difference threshold")
	motionEnergy := flag.Float64("motion-energy", math.NaN(), "override region energy threshold")
	flag.Parse()

	env.Addr = *addr
	env.DatabasePath = *dbPath
	env.TuningPath = *tuningPath

	var overrides server.MotionParamOverrides

	if *motionWidth >= 0 {
		val := *motionWidth
		overrides.Width = &val
	}
	if *motionHeight >= 0 {
		val := *motionHeight
		overrides.Height = &val
	}
	if *motionStride >= 0 {
		val := *motionStride
		overrides.Stride = &val
	}
	if !math.IsNaN(*motionPixel) {
		val := *motionPixel
		overrides.PixelThreshold = &val
	}
	if !math.IsNaN(*motionEnergy) {
		val := *motionEnergy
		overrides.EnergyThreshold = &val
	}

	server.StartApp(server.AppConfig{Env: env, MotionOverrides: overrides})
}
