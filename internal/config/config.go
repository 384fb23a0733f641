package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"curve/internal/game"
)

// DefaultEnvFile is read when no file is named; it may be absent.
const DefaultEnvFile = ".env"

// Config is everything the launcher needs to start a match.
type Config struct {
	Settings game.Settings
	Audio    bool
	Debug    bool
}

// Load builds the configuration from defaults, then the env file, then the
// process environment. Later sources win.
func Load(envFile string) (Config, error) {
	file, err := readEnvFile(envFile)
	if err != nil {
		return Config{}, err
	}
	e := env{file: file}

	s := game.DefaultSettings()
	cfg := Config{
		Settings: game.Settings{
			Width:       e.getInt("CURVE_WIDTH", s.Width),
			Height:      e.getInt("CURVE_HEIGHT", s.Height),
			Velocity:    e.getFloat("CURVE_VELOCITY", s.Velocity),
			TurnFactor:  e.getFloat("CURVE_TURN_FACTOR", s.TurnFactor),
			Radius:      e.getInt("CURVE_RADIUS", s.Radius),
			BufferDelay: e.getUint("CURVE_BUFFER_DELAY", s.BufferDelay),
			GapEvery:    e.getInt("CURVE_GAP_EVERY", s.GapEvery),
			GapLength:   e.getInt("CURVE_GAP_LENGTH", s.GapLength),
			FrameRate:   e.getInt("CURVE_FPS", s.FrameRate),
			RoundPause:  e.getDuration("CURVE_ROUND_PAUSE", s.RoundPause),
			Seed:        e.getUint("CURVE_SEED", s.Seed),
		},
		Audio: e.getBool("CURVE_AUDIO", true),
		Debug: e.getBool("CURVE_DEBUG", false),
	}
	if e.err != nil {
		return Config{}, e.err
	}
	if err := cfg.Settings.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readEnvFile(name string) (map[string]string, error) {
	explicit := name != ""
	if !explicit {
		name = DefaultEnvFile
	}
	vals, err := godotenv.Read(name)
	if err == nil {
		return vals, nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return nil, fmt.Errorf("%w: env file %s: %v", game.ErrInvalidSettings, name, err)
}

// env resolves keys against the process environment and the env file,
// keeping the first parse error.
type env struct {
	file map[string]string
	err  error
}

func (e *env) getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	if v := e.file[key]; v != "" {
		return v
	}
	return def
}

func (e *env) fail(key, v string, err error) {
	if e.err == nil {
		e.err = fmt.Errorf("%w: %s=%q: %v", game.ErrInvalidSettings, key, v, err)
	}
}

func (e *env) getInt(key string, def int) int {
	v := e.getEnv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.fail(key, v, err)
		return def
	}
	return n
}

func (e *env) getUint(key string, def uint64) uint64 {
	v := e.getEnv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		e.fail(key, v, err)
		return def
	}
	return n
}

func (e *env) getFloat(key string, def float64) float64 {
	v := e.getEnv(key, "")
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		e.fail(key, v, err)
		return def
	}
	return f
}

func (e *env) getBool(key string, def bool) bool {
	v := e.getEnv(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		e.fail(key, v, err)
		return def
	}
	return b
}

func (e *env) getDuration(key string, def time.Duration) time.Duration {
	v := e.getEnv(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.fail(key, v, err)
		return def
	}
	return d
}
