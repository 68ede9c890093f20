package lview

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Environment keys read by LoadRunConfig.
const (
	EnvTitle         = "LVIEW_TITLE"
	EnvWidth         = "LVIEW_WIDTH"
	EnvHeight        = "LVIEW_HEIGHT"
	EnvTPS           = "LVIEW_TPS"
	EnvResizable     = "LVIEW_RESIZABLE"
	EnvShowFPS       = "LVIEW_SHOW_FPS"
	EnvDebug         = "LVIEW_DEBUG"
	EnvLogLevel      = "LVIEW_LOG_LEVEL"
	EnvScreenshotDir = "LVIEW_SCREENSHOT_DIR"
)

// RunConfig configures the window and engine created by Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	TPS       int // logic ticks per second
	Resizable bool
	ShowFPS   bool

	Debug         bool
	// LogLevel is applied to the package logger. The zero value
	// (logrus.PanicLevel) leaves the logger's level unchanged.
	LogLevel      logrus.Level
	ScreenshotDir string
}

// DefaultRunConfig returns an 800x600 window ticking at 60 TPS.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:         "LView",
		Width:         800,
		Height:        600,
		TPS:           60,
		LogLevel:      logrus.WarnLevel,
		ScreenshotDir: defaultScreenshotDir,
	}
}

// Validate reports the first invalid field.
func (c RunConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("lview: invalid window size %dx%d", c.Width, c.Height)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("lview: invalid TPS %d", c.TPS)
	}
	return nil
}

// LoadRunConfig starts from DefaultRunConfig and overrides fields from the
// given .env files (".env" when none are named) and the process environment.
// Missing files are skipped; later files override earlier ones. Process
// environment takes precedence over file values, matching godotenv.Load.
func LoadRunConfig(files ...string) (RunConfig, error) {
	fileEnv, err := readEnvFiles(files)
	if err != nil {
		return RunConfig{}, err
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	}

	cfg := DefaultRunConfig()
	if v, ok := lookup(EnvTitle); ok {
		cfg.Title = v
	}
	if v, ok := lookup(EnvScreenshotDir); ok && v != "" {
		cfg.ScreenshotDir = v
	}
	ints := []struct {
		key string
		dst *int
	}{
		{EnvWidth, &cfg.Width},
		{EnvHeight, &cfg.Height},
		{EnvTPS, &cfg.TPS},
	}
	for _, f := range ints {
		v, ok := lookup(f.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return RunConfig{}, fmt.Errorf("lview: parse %s: %w", f.key, err)
		}
		*f.dst = n
	}
	bools := []struct {
		key string
		dst *bool
	}{
		{EnvResizable, &cfg.Resizable},
		{EnvShowFPS, &cfg.ShowFPS},
		{EnvDebug, &cfg.Debug},
	}
	for _, f := range bools {
		v, ok := lookup(f.key)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return RunConfig{}, fmt.Errorf("lview: parse %s: %w", f.key, err)
		}
		*f.dst = b
	}
	if v, ok := lookup(EnvLogLevel); ok {
		lvl, err := logrus.ParseLevel(v)
		if err != nil {
			return RunConfig{}, fmt.Errorf("lview: parse %s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = lvl
	}
	if err := cfg.Validate(); err != nil {
		return RunConfig{}, err
	}
	return cfg, nil
}

// readEnvFiles merges the named .env files in order, skipping any that do
// not exist.
func readEnvFiles(files []string) (map[string]string, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	merged := make(map[string]string)
	for _, f := range files {
		env, err := godotenv.Read(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("lview: read env %s: %w", f, err)
		}
		for k, v := range env {
			merged[k] = v
		}
	}
	return merged, nil
}
