package main

import (
	"io"
	"os"
	"time"

	"github.com/alnah/go-html2haml/internal/assets"
	"github.com/alnah/go-html2haml/internal/config"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, configuration, and asset loading.
type Environment struct {
	Now         func() time.Time
	Stdout      io.Writer
	Stderr      io.Writer
	AssetLoader assets.AssetLoader // Replaced by a resolver when assets.basePath is set
	Config      *config.Config     // Loaded once, shared across targets
}

// DefaultEnv returns production environment with embedded assets.
func DefaultEnv() *Environment {
	return &Environment{
		Now:         time.Now,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		AssetLoader: assets.NewEmbeddedLoader(),
		Config:      config.DefaultConfig(),
	}
}
