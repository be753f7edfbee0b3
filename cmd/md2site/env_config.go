package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/alnah/go-md2site/internal/config"
)

// envPrefix marks the environment variables read by md2site.
const envPrefix = "MD2SITE_"

// dotEnvFile is loaded from the working directory before the
// environment is read. Variables already set in the process win.
const dotEnvFile = ".env"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MD2SITE_CONFIG: config file name or path
	ContentDir string // MD2SITE_CONTENT_DIR: content directory
	StaticDir  string // MD2SITE_STATIC_DIR: static files directory
	OutputDir  string // MD2SITE_OUTPUT_DIR: output directory
	BasePath   string // MD2SITE_BASE_PATH: URL prefix
	Engine     string // MD2SITE_ENGINE: basic or commonmark
	Workers    int    // MD2SITE_WORKERS: parallel workers
}

// knownEnvVars lists valid MD2SITE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2SITE_CONFIG":      true,
	"MD2SITE_CONTENT_DIR": true,
	"MD2SITE_STATIC_DIR":  true,
	"MD2SITE_OUTPUT_DIR":  true,
	"MD2SITE_BASE_PATH":   true,
	"MD2SITE_ENGINE":      true,
	"MD2SITE_WORKERS":     true,
}

// loadDotEnv loads path into the process environment. A missing file is
// not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// loadEnvConfig reads configuration from environment variables.
// An unparsable MD2SITE_WORKERS is an error rather than silently ignored.
func loadEnvConfig() (*envConfig, error) {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MD2SITE_CONFIG"),
		ContentDir: os.Getenv("MD2SITE_CONTENT_DIR"),
		StaticDir:  os.Getenv("MD2SITE_STATIC_DIR"),
		OutputDir:  os.Getenv("MD2SITE_OUTPUT_DIR"),
		BasePath:   os.Getenv("MD2SITE_BASE_PATH"),
		Engine:     os.Getenv("MD2SITE_ENGINE"),
	}

	if workers := os.Getenv("MD2SITE_WORKERS"); workers != "" {
		n, err := strconv.Atoi(workers)
		if err != nil {
			return nil, fmt.Errorf("%w: MD2SITE_WORKERS=%q is not a number", config.ErrInvalidValue, workers)
		}
		cfg.Workers = n
	}

	return cfg, nil
}

// warnUnknownEnvVars logs warnings for unrecognized MD2SITE_* variables.
// Helps catch typos like MD2SITE_OUTPUT instead of MD2SITE_OUTPUT_DIR.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Set variables override the file so that:
// CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.ContentDir != "" {
		cfg.Content.Dir = env.ContentDir
	}
	if env.StaticDir != "" {
		cfg.Static.Dir = env.StaticDir
	}
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.BasePath != "" {
		cfg.Site.BasePath = env.BasePath
	}
	if env.Engine != "" {
		cfg.Site.Engine = env.Engine
	}
	if env.Workers != 0 {
		cfg.Build.Workers = env.Workers
	}
}
