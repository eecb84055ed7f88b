package main

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-html2haml/internal/config"
)

const envPrefix = "HTML2HAML_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // HTML2HAML_CONFIG: config file name or path
	OutputDir  string // HTML2HAML_OUTPUT_DIR: default output directory
	AssetPath  string // HTML2HAML_ASSET_PATH: custom skeletons/pages directory
	Manifest   string // HTML2HAML_MANIFEST: cache manifest reference
	Workers    int    // HTML2HAML_WORKERS: parallel workers
}

// knownEnvVars lists valid HTML2HAML_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"HTML2HAML_CONFIG":     true,
	"HTML2HAML_OUTPUT_DIR": true,
	"HTML2HAML_ASSET_PATH": true,
	"HTML2HAML_MANIFEST":   true,
	"HTML2HAML_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("HTML2HAML_CONFIG"),
		OutputDir:  os.Getenv("HTML2HAML_OUTPUT_DIR"),
		AssetPath:  os.Getenv("HTML2HAML_ASSET_PATH"),
		Manifest:   os.Getenv("HTML2HAML_MANIFEST"),
	}

	if workers := os.Getenv("HTML2HAML_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs a warning for each unrecognized HTML2HAML_* variable.
// Helps catch typos like HTML2HAML_OUTDIR instead of HTML2HAML_OUTPUT_DIR.
func warnUnknownEnvVars(logger *slog.Logger) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", logKeyVariable, name)
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.AssetPath != "" && cfg.Assets.BasePath == "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.Manifest != "" && cfg.Assets.Manifest == "" {
		cfg.Assets.Manifest = env.Manifest
	}
}
