package main

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-md2site/internal/logger"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer
	Logger *logger.Logger
}

// DefaultEnv returns the production environment. Logs go to stderr so
// stdout stays clean for render and title output.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: logger.New(os.Stderr),
	}
}

// applyLogLevel maps --quiet and --verbose onto the logger level.
// Quiet wins when both are set.
func applyLogLevel(env *Environment, f commonFlags) {
	switch {
	case f.quiet:
		env.Logger.SetLevel(log.ErrorLevel)
	case f.verbose:
		env.Logger.SetLevel(log.DebugLevel)
	}
}
