package logger

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/runlab/runlog/core"
)

// Config declares a whole logging tree in one document: the base
// directory, the run name, and the loggers with their handlers.
//
//	base_dir = "data/logs"
//	run_name = "run42"
//
//	[[logger]]
//	name = "svc"
//
//	  [[logger.handler]]
//	  name = "console"
//	  type = "console"
//	  level = "warning"
//
//	  [[logger.handler]]
//	  name = "main"
//	  type = "file"
//	  level = "debug"
//	  format = "json"
type Config struct {
	BaseDir string         `toml:"base_dir"`
	RunName string         `toml:"run_name"`
	Loggers []LoggerConfig `toml:"logger"`
}

// LoggerConfig declares one named logger and its handlers.
type LoggerConfig struct {
	Name     string          `toml:"name"`
	Handlers []HandlerConfig `toml:"handler"`
}

// HandlerConfig declares one handler attachment.
type HandlerConfig struct {
	Name   string `toml:"name"`
	Type   string `toml:"type"`   // "console" or "file"
	Level  string `toml:"level"`  // default "info"
	Format string `toml:"format"` // "text" (default) or "json"
}

// LoadConfig reads and validates a TOML logging configuration.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	seen := make(map[string]struct{}, len(c.Loggers))
	for _, lc := range c.Loggers {
		if lc.Name == "" {
			return fmt.Errorf("config: logger with empty name")
		}
		if _, dup := seen[lc.Name]; dup {
			return fmt.Errorf("config: logger %q declared twice", lc.Name)
		}
		seen[lc.Name] = struct{}{}

		for _, hc := range lc.Handlers {
			if hc.Name == "" && hc.Type != "file" {
				return fmt.Errorf("config: logger %q: handler with empty name", lc.Name)
			}
			switch hc.Type {
			case "console", "file":
			default:
				return fmt.Errorf("config: logger %q: handler %q: unsupported type %q", lc.Name, hc.Name, hc.Type)
			}
			if hc.Level != "" {
				if _, ok := core.ParseLevel(hc.Level); !ok {
					return fmt.Errorf("config: logger %q: handler %q: unknown level %q", lc.Name, hc.Name, hc.Level)
				}
			}
			if _, err := parseFormat(hc.Format); err != nil {
				return fmt.Errorf("config: logger %q: handler %q: %w", lc.Name, hc.Name, err)
			}
		}
	}
	return nil
}

// NewRegistryFromConfig builds a registry with every declared logger
// and handler attached. On error the partially built registry is
// closed and nil is returned.
func NewRegistryFromConfig(cfg *Config) (*Registry, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	r := NewRegistry(RegistryConfig{BaseDir: cfg.BaseDir})
	if cfg.RunName != "" {
		r.SetRunName(cfg.RunName)
	}

	for _, lc := range cfg.Loggers {
		l := r.Logger(lc.Name)
		for _, hc := range lc.Handlers {
			level := core.InfoLevel
			if hc.Level != "" {
				level, _ = core.ParseLevel(hc.Level)
			}
			format, _ := parseFormat(hc.Format)

			var err error
			switch hc.Type {
			case "console":
				err = l.AddConsoleHandler(hc.Name, ConsoleOptions{Level: level, Format: format})
			case "file":
				err = l.AddFileHandler(hc.Name, FileOptions{Level: level, Format: format})
			}
			if err != nil {
				_ = r.Close()
				return nil, err
			}
		}
	}

	return r, nil
}
