package main

// Notes:
// - Tests use t.Setenv() which prevents t.Parallel() at parent level.
// - loadDotEnv writes into the process environment; the variables it sets
//   are removed in t.Cleanup.

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-md2site/internal/config"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Run("all variables", func(t *testing.T) {
		t.Setenv("MD2SITE_CONFIG", "site")
		t.Setenv("MD2SITE_CONTENT_DIR", "/content")
		t.Setenv("MD2SITE_STATIC_DIR", "/static")
		t.Setenv("MD2SITE_OUTPUT_DIR", "/public")
		t.Setenv("MD2SITE_BASE_PATH", "/blog/")
		t.Setenv("MD2SITE_ENGINE", "commonmark")
		t.Setenv("MD2SITE_WORKERS", "4")

		cfg, err := loadEnvConfig()
		if err != nil {
			t.Fatalf("loadEnvConfig() error: %v", err)
		}

		want := envConfig{
			ConfigPath: "site",
			ContentDir: "/content",
			StaticDir:  "/static",
			OutputDir:  "/public",
			BasePath:   "/blog/",
			Engine:     "commonmark",
			Workers:    4,
		}
		if *cfg != want {
			t.Errorf("loadEnvConfig() = %+v, want %+v", *cfg, want)
		}
	})

	t.Run("invalid workers", func(t *testing.T) {
		t.Setenv("MD2SITE_WORKERS", "many")

		_, err := loadEnvConfig()
		if !errors.Is(err, config.ErrInvalidValue) {
			t.Fatalf("loadEnvConfig() error = %v, want ErrInvalidValue", err)
		}
	})

	t.Run("unset variables stay empty", func(t *testing.T) {
		t.Setenv("MD2SITE_ENGINE", "")

		cfg, err := loadEnvConfig()
		if err != nil {
			t.Fatalf("loadEnvConfig() error: %v", err)
		}
		if cfg.Engine != "" {
			t.Errorf("Engine = %q, want empty", cfg.Engine)
		}
	})
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Setenv("MD2SITE_OUTPUT", "/public")
	t.Setenv("MD2SITE_OUTPUT_DIR", "/public")

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf)

	out := buf.String()
	if !strings.Contains(out, "MD2SITE_OUTPUT ") {
		t.Errorf("expected warning for MD2SITE_OUTPUT, got %q", out)
	}
	if strings.Contains(out, "MD2SITE_OUTPUT_DIR") {
		t.Errorf("known variable should not warn, got %q", out)
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Env over file
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("set values override config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Site.Engine = config.EngineCommonMark
		applyEnvConfig(&envConfig{
			ContentDir: "docs",
			StaticDir:  "assets",
			OutputDir:  "site",
			BasePath:   "/blog/",
			Engine:     config.EngineBasic,
			Workers:    3,
		}, cfg)

		if cfg.Content.Dir != "docs" || cfg.Static.Dir != "assets" || cfg.Output.Dir != "site" {
			t.Errorf("dirs = %q %q %q, want docs assets site", cfg.Content.Dir, cfg.Static.Dir, cfg.Output.Dir)
		}
		if cfg.Site.BasePath != "/blog/" {
			t.Errorf("BasePath = %q, want /blog/", cfg.Site.BasePath)
		}
		if cfg.Site.Engine != config.EngineBasic {
			t.Errorf("Engine = %q, want %q", cfg.Site.Engine, config.EngineBasic)
		}
		if cfg.Build.Workers != 3 {
			t.Errorf("Workers = %d, want 3", cfg.Build.Workers)
		}
	})

	t.Run("empty env keeps config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Output.Dir = "dist"
		applyEnvConfig(&envConfig{}, cfg)

		want := config.DefaultConfig()
		want.Output.Dir = "dist"
		if *cfg != *want {
			t.Errorf("config changed: %+v, want %+v", *cfg, *want)
		}
	})
}

// ---------------------------------------------------------------------------
// TestLoadDotEnv - .env file loading
// ---------------------------------------------------------------------------

func TestLoadDotEnv(t *testing.T) {
	const key = "MD2SITE_DOTENV_TEST_VALUE"

	t.Run("missing file is ignored", func(t *testing.T) {
		if err := loadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
			t.Errorf("loadDotEnv() error: %v", err)
		}
	})

	t.Run("file values are loaded", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		if err := os.WriteFile(path, []byte(key+"=from-file\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { _ = os.Unsetenv(key) })

		if err := loadDotEnv(path); err != nil {
			t.Fatalf("loadDotEnv() error: %v", err)
		}
		if got := os.Getenv(key); got != "from-file" {
			t.Errorf("%s = %q, want from-file", key, got)
		}
	})

	t.Run("process environment wins", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		if err := os.WriteFile(path, []byte(key+"=from-file\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		t.Setenv(key, "from-env")

		if err := loadDotEnv(path); err != nil {
			t.Fatalf("loadDotEnv() error: %v", err)
		}
		if got := os.Getenv(key); got != "from-env" {
			t.Errorf("%s = %q, want from-env", key, got)
		}
	})
}
