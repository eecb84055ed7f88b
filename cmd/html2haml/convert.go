package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	html2haml "github.com/alnah/go-html2haml"
	"github.com/alnah/go-html2haml/internal/assets"
	"github.com/alnah/go-html2haml/internal/config"
	"github.com/alnah/go-html2haml/internal/fileutil"
	"github.com/alnah/go-html2haml/internal/hints"
	"github.com/alnah/go-html2haml/internal/pipeline"
)

// Sentinel errors for CLI operations.
var (
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrAmbiguousTarget    = errors.New("--filename needs exactly one target")
	ErrTooManyArgs        = errors.New("too many arguments")
)

// defaultTarget is generated when neither the config nor the flags name a target.
var defaultTarget = config.TargetConfig{
	Filename: config.DefaultFilename,
	Filetype: html2haml.FiletypeHaml,
	Inject:   "true",
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment, logger *slog.Logger) error {
	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	configName, err := resolveConfigName(positionalArgs, flags)
	if err != nil {
		return err
	}

	envCfg := loadEnvConfig()
	if configName == "" {
		configName = envCfg.ConfigPath
	}

	// Load configuration
	cfg := cloneConfig(env.Config)
	if configName != "" {
		cfg, err = config.LoadConfig(configName)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		logger.Debug("loaded config", logKeyConfig, configName)
	}

	// Precedence: CLI flags > env vars > config file > defaults
	applyEnvConfig(envCfg, cfg)
	if err := mergeFlags(flags, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	docs, err := buildDocuments(cfg)
	if err != nil {
		return err
	}

	loader, err := resolveAssetLoader(cfg.Assets.BasePath, env.AssetLoader)
	if err != nil {
		return err
	}

	converter, err := html2haml.New()
	if err != nil {
		return err
	}

	outputDir := cfg.Output.DefaultDir
	if outputDir == "" {
		outputDir = "."
	}

	params := &conversionParams{
		hooks:     converter,
		renderer:  pipeline.NewRenderer(loader),
		injector:  &pipeline.TagInjection{},
		assets:    html2haml.Assets{Manifest: cfg.Assets.Manifest, CSS: cfg.Assets.CSS, JS: cfg.Assets.JS},
		outputDir: outputDir,
		basePath:  cfg.Assets.BasePath,
		now:       env.Now,
		logger:    logger,
	}

	workers := resolvePoolSize(flags.workers, envCfg.Workers)
	logger.Debug("starting conversion", logKeyTargets, len(docs), logKeyWorkers, workers, logKeyOutput, outputDir)

	results := convertBatch(ctx, docs, workers, params)

	if failed := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env); failed > 0 {
		return newBatchError(results)
	}

	return nil
}

// resolveConfigName returns the config named by --config or the single
// positional argument.
func resolveConfigName(positionalArgs []string, flags *convertFlags) (string, error) {
	if len(positionalArgs) > 1 {
		return "", fmt.Errorf("%w: %s", ErrTooManyArgs, strings.Join(positionalArgs[1:], " "))
	}
	if len(positionalArgs) == 1 {
		if flags.common.config != "" && flags.common.config != positionalArgs[0] {
			return "", fmt.Errorf("%w: config given as both %q and --config %q",
				ErrTooManyArgs, positionalArgs[0], flags.common.config)
		}
		return positionalArgs[0], nil
	}
	return flags.common.config, nil
}

// cloneConfig copies cfg so flag merging never mutates the shared environment.
func cloneConfig(cfg *config.Config) *config.Config {
	if cfg == nil {
		return config.DefaultConfig()
	}
	c := *cfg
	c.Assets.CSS = slices.Clone(cfg.Assets.CSS)
	c.Assets.JS = slices.Clone(cfg.Assets.JS)
	c.Targets = slices.Clone(cfg.Targets)
	return &c
}

// mergeFlags merges CLI flags into config. CLI values override config values.
// Target flags apply to every configured target; with no targets they
// override the default target.
func mergeFlags(flags *convertFlags, cfg *config.Config) error {
	if flags.output != "" {
		cfg.Output.DefaultDir = flags.output
	}

	// Asset flags
	if len(flags.assets.css) > 0 {
		cfg.Assets.CSS = slices.Clone(flags.assets.css)
	}
	if len(flags.assets.js) > 0 {
		cfg.Assets.JS = slices.Clone(flags.assets.js)
	}
	if flags.assets.manifest != "" {
		cfg.Assets.Manifest = flags.assets.manifest
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}

	// Target flags
	if len(cfg.Targets) == 0 {
		cfg.Targets = []config.TargetConfig{defaultTarget}
	}
	if !flags.target.isSet() {
		return nil
	}
	if flags.target.filename != "" && len(cfg.Targets) > 1 {
		return fmt.Errorf("%w: config has %d targets", ErrAmbiguousTarget, len(cfg.Targets))
	}

	for i := range cfg.Targets {
		t := &cfg.Targets[i]
		if flags.target.filename != "" {
			t.Filename = flags.target.filename
		}
		if flags.target.filetype != "" {
			t.Filetype = flags.target.filetype
		}
		if flags.target.inject != "" {
			t.Inject = config.InjectValue(strings.ToLower(strings.TrimSpace(flags.target.inject)))
		}
		if flags.target.template != "" {
			t.Template = flags.target.template
		}
		if flags.target.title != "" {
			t.Title = flags.target.title
		}
	}

	return nil
}

// buildDocuments turns validated targets into hook Documents.
func buildDocuments(cfg *config.Config) ([]html2haml.Document, error) {
	docs := make([]html2haml.Document, 0, len(cfg.Targets))
	for _, t := range cfg.Targets {
		mode, err := html2haml.ParseInjectMode(string(t.Inject))
		if err != nil {
			return nil, err
		}

		filename := t.Filename
		if filename == "" {
			filename = config.DefaultFilename
		}

		docs = append(docs, html2haml.Document{
			OutputName: filename,
			Target: html2haml.OutputTarget{
				Filename: filename,
				Filetype: strings.ToLower(t.Filetype),
				Inject:   mode,
				Template: t.Template,
				Title:    t.Title,
			},
		})
	}
	return docs, nil
}

// resolveAssetLoader returns the environment loader, or a resolver over
// basePath with embedded fallback when a custom asset path is set.
func resolveAssetLoader(basePath string, fallback assets.AssetLoader) (assets.AssetLoader, error) {
	if basePath == "" {
		if fallback == nil {
			return assets.NewEmbeddedLoader(), nil
		}
		return fallback, nil
	}

	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, fmt.Errorf("asset path: %w", err)
	}
	return resolver, nil
}

// hintFor returns an actionable hint for err, or "" when none applies.
func hintFor(err error, configName, basePath string) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(userConfigPaths(configName))
	case errors.Is(err, config.ErrInvalidInject), errors.Is(err, html2haml.ErrInvalidInjectMode):
		return hints.ForInjectMode()
	case errors.Is(err, pipeline.ErrUnsupportedTemplate):
		return hints.ForUnsupportedTemplate()
	case errors.Is(err, assets.ErrPageNotFound):
		return hints.ForAssetNotFound("page", basePath)
	case errors.Is(err, assets.ErrSkeletonNotFound):
		return hints.ForAssetNotFound("skeleton", basePath)
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	default:
		return ""
	}
}

// userConfigPaths lists the user-level config files searched for name.
func userConfigPaths(name string) []string {
	if name == "" || fileutil.IsFilePath(name) {
		return nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(dir, "go-html2haml", name+".yaml")}
}
