package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength     = 4096 // PATH_MAX on Linux
	MaxBasePathLength = 2048 // Browser URL limit
	MaxNameLength     = 100  // Template name
)

// MaxWorkers bounds build.workers.
const MaxWorkers = 64

// Engine names accepted by site.engine.
const (
	EngineBasic      = "basic"
	EngineCommonMark = "commonmark"
)

// appDirName is the directory under the user config dir searched for
// named configs.
const appDirName = "md2site"

// Config holds all configuration for a site build.
type Config struct {
	Content  DirConfig      `yaml:"content"`
	Static   DirConfig      `yaml:"static"`
	Output   DirConfig      `yaml:"output"`
	Template TemplateConfig `yaml:"template"`
	Site     SiteConfig     `yaml:"site"`
	Build    BuildConfig    `yaml:"build"`
}

// DirConfig names a directory.
type DirConfig struct {
	Dir string `yaml:"dir"`
}

// TemplateConfig selects the page template.
type TemplateConfig struct {
	Name string `yaml:"name"` // Template name without .html
	Dir  string `yaml:"dir"`  // Custom asset directory (empty = embedded only)
}

// SiteConfig defines how pages are rendered.
type SiteConfig struct {
	BasePath   string `yaml:"basePath"`   // URL prefix, "/" for a root site
	Engine     string `yaml:"engine"`     // "basic" or "commonmark"
	HeadingIDs bool   `yaml:"headingIDs"` // Add id attributes to headings
}

// BuildConfig defines build concurrency.
type BuildConfig struct {
	Workers int `yaml:"workers"` // 0 = auto from GOMAXPROCS
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for callers that
// build a Config by hand.
func (c *Config) Validate() error {
	paths := []struct {
		field string
		value string
	}{
		{"content.dir", c.Content.Dir},
		{"static.dir", c.Static.Dir},
		{"output.dir", c.Output.Dir},
		{"template.dir", c.Template.Dir},
	}
	for _, p := range paths {
		if err := validateFieldLength(p.field, p.value, MaxPathLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("template.name", c.Template.Name, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.basePath", c.Site.BasePath, MaxBasePathLength); err != nil {
		return err
	}

	if c.Site.BasePath != "" && !strings.HasPrefix(c.Site.BasePath, "/") {
		return fmt.Errorf("%w: site.basePath must start with \"/\", got %q", ErrInvalidValue, c.Site.BasePath)
	}

	if c.Site.Engine != "" {
		switch strings.ToLower(c.Site.Engine) {
		case EngineBasic, EngineCommonMark:
			// valid
		default:
			return fmt.Errorf("%w: site.engine %q (must be %s or %s)", ErrInvalidValue, c.Site.Engine, EngineBasic, EngineCommonMark)
		}
	}

	if c.Build.Workers < 0 || c.Build.Workers > MaxWorkers {
		return fmt.Errorf("%w: build.workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Build.Workers)
	}

	// The output directory is wiped on every build.
	if c.Output.Dir != "" && c.Content.Dir != "" && filepath.Clean(c.Output.Dir) == filepath.Clean(c.Content.Dir) {
		return fmt.Errorf("%w: output.dir must differ from content.dir", ErrInvalidValue)
	}

	return nil
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Content:  DirConfig{Dir: "content"},
		Static:   DirConfig{Dir: "static"},
		Output:   DirConfig{Dir: "public"},
		Template: TemplateConfig{Name: "default"},
		Site:     SiteConfig{BasePath: "/", Engine: EngineBasic},
		Build:    BuildConfig{Workers: 0},
	}
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yamlutil.Marshal(c)
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise it's treated as a config name and searched in standard
// locations. Keys missing from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/md2site/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, appDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
