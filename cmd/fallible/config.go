package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dapr/kit/logger"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/ib-77/fallible/pkg/fallible"
	"github.com/ib-77/fallible/pkg/fallible/sinks"
)

type LogConfig struct {
	Backend string `yaml:"backend"`
	JSON    bool   `yaml:"json"`
}

// Config is the YAML file layout. Flags override file values.
type Config struct {
	Workers int       `yaml:"workers"`
	Base    int       `yaml:"base"`
	Log     LogConfig `yaml:"log"`
}

func defaultConfig() Config {
	return Config{
		Workers: 1,
		Base:    10,
		Log:     LogConfig{Backend: "slog"},
	}
}

// loadConfig returns the defaults when path is empty.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.Base != 0 && (c.Base < 2 || c.Base > 36) {
		return fmt.Errorf("base must be 0 or between 2 and 36, got %d", c.Base)
	}
	switch c.Log.Backend {
	case "slog", "logrus", "kit":
	default:
		return fmt.Errorf("unknown log backend %q", c.Log.Backend)
	}
	return nil
}

// Sink builds the diagnostic sink for the configured backend. slog and logrus
// write to w; the kit logger always writes to stdout.
func (c Config) Sink(w io.Writer) fallible.Sink {
	switch c.Log.Backend {
	case "logrus":
		l := logrus.New()
		l.SetOutput(w)
		if c.Log.JSON {
			l.SetFormatter(&logrus.JSONFormatter{})
		}
		return sinks.Logrus(l)
	case "kit":
		l := logger.NewLogger("fallible")
		l.EnableJSONOutput(c.Log.JSON)
		return sinks.Kit(l)
	default:
		if c.Log.JSON {
			return fallible.NewSlogSink(slog.New(slog.NewJSONHandler(w, nil)))
		}
		return fallible.NewSlogSink(slog.New(slog.NewTextHandler(w, nil)))
	}
}
