package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alnah/go-html2haml/internal/fileutil"
	"github.com/alnah/go-html2haml/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidInject   = errors.New("invalid inject value")
	ErrInvalidFiletype = errors.New("invalid filetype")
	ErrInvalidFilename = errors.New("invalid target filename")
	ErrDuplicateTarget = errors.New("duplicate target filename")
	ErrTooManyTargets  = errors.New("too many targets")
)

// Field length limits.
const (
	MaxPathLength     = 4096 // Template and directory paths
	MaxURLLength      = 2048 // Asset references
	MaxTitleLength    = 200  // Page title
	MaxFilenameLength = 255  // Common filesystem limit
	MaxAssetCount     = 100  // CSS or JS entries
	MaxTargets        = 100
)

// DefaultFilename is the target filename used when a target names none.
const DefaultFilename = "index.html"

// Config holds all configuration for template generation.
type Config struct {
	Output  OutputConfig   `yaml:"output"`
	Assets  AssetsConfig   `yaml:"assets"`
	Targets []TargetConfig `yaml:"targets"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Empty = current directory
}

// AssetsConfig defines the assets linked from every target and where
// custom skeletons and pages live.
type AssetsConfig struct {
	BasePath string   `yaml:"basePath"` // Empty = use embedded assets
	CSS      []string `yaml:"css"`
	JS       []string `yaml:"js"`
	Manifest string   `yaml:"manifest"`
}

// TargetConfig describes one generated file.
type TargetConfig struct {
	Filename string      `yaml:"filename"` // Empty = index.html
	Filetype string      `yaml:"filetype"` // "html" or "haml"
	Inject   InjectValue `yaml:"inject"`
	Template string      `yaml:"template"`
	Title    string      `yaml:"title"`
}

// InjectValue holds the inject option, which YAML may spell as a boolean
// (true/false) or a string (head/body). It is stored lower-cased.
type InjectValue string

// UnmarshalYAML accepts booleans and strings.
func (v *InjectValue) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}

	switch x := raw.(type) {
	case nil:
		*v = ""
	case bool:
		*v = InjectValue(strconv.FormatBool(x))
	case string:
		*v = InjectValue(strings.ToLower(strings.TrimSpace(x)))
	default:
		return fmt.Errorf("%w: %v", ErrInvalidInject, raw)
	}
	return nil
}

// Validate checks field lengths and values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := c.Assets.validate(); err != nil {
		return err
	}

	if len(c.Targets) > MaxTargets {
		return fmt.Errorf("%w: %d (max %d)", ErrTooManyTargets, len(c.Targets), MaxTargets)
	}

	seen := make(map[string]int, len(c.Targets))
	for i, target := range c.Targets {
		if err := target.validate(fmt.Sprintf("targets[%d]", i)); err != nil {
			return err
		}
		name := target.Filename
		if name == "" {
			name = DefaultFilename
		}
		if j, ok := seen[name]; ok {
			return fmt.Errorf("%w: targets[%d] and targets[%d] both write %q", ErrDuplicateTarget, j, i, name)
		}
		seen[name] = i
	}

	return nil
}

func (a *AssetsConfig) validate() error {
	if err := validateFieldLength("assets.basePath", a.BasePath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.manifest", a.Manifest, MaxURLLength); err != nil {
		return err
	}
	if err := validateList("assets.css", a.CSS); err != nil {
		return err
	}
	return validateList("assets.js", a.JS)
}

func (t *TargetConfig) validate(prefix string) error {
	if err := validateFieldLength(prefix+".filename", t.Filename, MaxFilenameLength); err != nil {
		return err
	}
	if t.Filename != "" {
		if err := fileutil.ValidateFileName(t.Filename); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidFilename, prefix, err)
		}
	}

	switch strings.ToLower(t.Filetype) {
	case "", "html", "haml":
		// valid
	default:
		return fmt.Errorf("%w: %s.filetype %q (must be html or haml)", ErrInvalidFiletype, prefix, t.Filetype)
	}

	switch t.Inject {
	case "", "true", "false", "head", "body":
		// valid
	default:
		return fmt.Errorf("%w: %s.inject %q (must be true, false, head, or body)", ErrInvalidInject, prefix, t.Inject)
	}

	if err := validateFieldLength(prefix+".template", t.Template, MaxPathLength); err != nil {
		return err
	}
	return validateFieldLength(prefix+".title", t.Title, MaxTitleLength)
}

func validateList(fieldName string, values []string) error {
	if len(values) > MaxAssetCount {
		return fmt.Errorf("%s: %d entries (max %d)", fieldName, len(values), MaxAssetCount)
	}
	for i, v := range values {
		if err := validateFieldLength(fmt.Sprintf("%s[%d]", fieldName, i), v, MaxURLLength); err != nil {
			return err
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration: no assets and no targets.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{DefaultDir: ""},
		Assets: AssetsConfig{BasePath: ""},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-html2haml/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-html2haml", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
