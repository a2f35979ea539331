package config

import (
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/ha1tch/nestdraw/internal/logger"
	"github.com/ha1tch/nestdraw/internal/nest"
)

const (
	envWidth    = "NESTDRAW_WIDTH"
	envHeight   = "NESTDRAW_HEIGHT"
	envFPS      = "NESTDRAW_FPS"
	envDepth    = "NESTDRAW_DEPTH"
	envCeiling  = "NESTDRAW_CEILING"
	envNest     = "NESTDRAW_NEST"
	envScale    = "NESTDRAW_SCALE"
	envLogLevel = "NESTDRAW_LOG_LEVEL"
)

type Config struct {
	Width    int
	Height   int
	FPS      int
	Depth    int
	Ceiling  int
	Nest     string
	Scale    float32
	LogLevel logger.Level
}

func Default() Config {
	return Config{
		Width:    1280,
		Height:   800,
		FPS:      60,
		Depth:    1,
		Ceiling:  nest.DefaultCeiling,
		Nest:     "spiral",
		Scale:    nest.DefaultScale,
		LogLevel: logger.LevelInfo,
	}
}

// Load reads an optional dotenv file and the process environment. The
// environment wins over the file; a missing file is not an error.
func Load(envFile string) (Config, error) {
	fileVars := map[string]string{}
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileVars = vars
		case errors.Is(err, fs.ErrNotExist):
		default:
			return Config{}, errors.Wrapf(err, "reading %s", envFile)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}
	return parse(lookup)
}

func parse(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	ints := []struct {
		key string
		dst *int
	}{
		{envWidth, &cfg.Width},
		{envHeight, &cfg.Height},
		{envFPS, &cfg.FPS},
		{envDepth, &cfg.Depth},
		{envCeiling, &cfg.Ceiling},
	}
	for _, f := range ints {
		v, ok := lookup(f.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, errors.Wrapf(err, "parsing %s", f.key)
		}
		*f.dst = n
	}

	if v, ok := lookup(envNest); ok && v != "" {
		cfg.Nest = v
	}
	if v, ok := lookup(envScale); ok && v != "" {
		s, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return Config{}, errors.Wrapf(err, "parsing %s", envScale)
		}
		cfg.Scale = float32(s)
	}
	if v, ok := lookup(envLogLevel); ok {
		lvl, err := logger.ParseLevel(v)
		if err != nil {
			return Config{}, errors.Wrapf(err, "parsing %s", envLogLevel)
		}
		cfg.LogLevel = lvl
	}

	return cfg, cfg.Validate()
}

// Validate rejects values the renderer or the window cannot use.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	case c.FPS <= 0:
		return errors.Errorf("fps %d must be positive", c.FPS)
	case c.Depth < 0:
		return errors.Errorf("depth %d must not be negative", c.Depth)
	case c.Ceiling <= 0:
		return errors.Errorf("ceiling %d must be positive", c.Ceiling)
	case c.Scale <= 0 || c.Scale >= 1:
		return errors.Errorf("scale %v must be in (0,1)", c.Scale)
	}
	if _, err := nest.TransformByName(c.Nest); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// RendererOptions builds the renderer settings this config describes.
func (c Config) RendererOptions() (nest.Options, error) {
	transform, err := nest.TransformByName(c.Nest)
	if err != nil {
		return nest.Options{}, errors.WithStack(err)
	}
	opts := nest.DefaultOptions()
	opts.Ceiling = c.Ceiling
	opts.Scale = c.Scale
	opts.Transform = transform
	return opts, nil
}
