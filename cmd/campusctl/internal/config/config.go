package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/campusworks/campus/cmd/campusctl/internal/client"
	"gopkg.in/yaml.v3"
)

type contextKey string

const configKey contextKey = "campusctl-config"

// DefaultServerURL is used when neither flag, environment, nor config file
// name a server.
const DefaultServerURL = "http://localhost:8000"

// FileConfig is the optional on-disk client configuration at
// ~/.campus/config.yaml.
type FileConfig struct {
	ServerURL string `yaml:"server_url"`
}

// GlobalConfig holds shared configuration for all campusctl commands.
// This is injected into the cobra command context by the root command's
// PersistentPreRun hook and consumed by all subcommands.
type GlobalConfig struct {
	ServerURL      string
	NonInteractive bool
	Provider       *client.Provider
}

// ResolveServerURL picks the server URL by precedence: explicit flag value,
// CAMPUS_SERVER environment variable, config file, built-in default.
func ResolveServerURL(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("CAMPUS_SERVER"); env != "" {
		return env
	}
	if fileCfg, err := LoadFile(); err == nil && fileCfg.ServerURL != "" {
		return fileCfg.ServerURL
	}
	return DefaultServerURL
}

// LoadFile reads ~/.campus/config.yaml. A missing file yields a zero config.
func LoadFile() (FileConfig, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to get user home directory: %w", err)
	}
	return loadFileFrom(filepath.Join(home, ".campus", "config.yaml"))
}

func loadFileFrom(path string) (FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to read config file: %w", err)
	}
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// InjectConfig adds config to the cobra command context.
// This should be called in the root command's PersistentPreRun.
func InjectConfig(ctx context.Context, cfg *GlobalConfig) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// FromContext retrieves config from the cobra command context.
// Returns (nil, false) if config is not present.
func FromContext(ctx context.Context) (*GlobalConfig, bool) {
	cfg, ok := ctx.Value(configKey).(*GlobalConfig)
	return cfg, ok
}

// MustFromContext retrieves config from context or panics.
// This should only be used in command RunE functions where we know
// the config has been injected by the root command.
func MustFromContext(ctx context.Context) *GlobalConfig {
	cfg, ok := FromContext(ctx)
	if !ok {
		panic("campusctl: config not found in context - this is a bug in campusctl")
	}
	return cfg
}
