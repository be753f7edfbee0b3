// Package logger wraps charm/log with the events a site build reports.
package logger

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging.
type Logger struct {
	*log.Logger
}

// New creates an info-level logger writing to w.
func New(w io.Writer) *Logger {
	return NewWithLevel(w, log.InfoLevel)
}

// NewWithLevel creates a logger with a specific level.
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           level,
		Prefix:          "md2site",
	})
	return &Logger{Logger: l}
}

// Discard returns a logger that discards all output.
func Discard() *Logger {
	return New(io.Discard)
}

// ConfigLoaded logs where the configuration came from.
func (l *Logger) ConfigLoaded(source string) {
	l.Debug("config loaded", "source", source)
}

// BuildStarted logs the start of a site build.
func (l *Logger) BuildStarted(contentDir, outputDir string, workers int) {
	l.Info("build started",
		"content", contentDir,
		"output", outputDir,
		"workers", workers)
}

// StaticCopied logs the static directory copy.
func (l *Logger) StaticCopied(dir string, files int) {
	l.Info("static copied",
		"dir", dir,
		"files", files)
}

// StaticSkipped logs a missing static directory.
func (l *Logger) StaticSkipped(dir string) {
	l.Debug("static skipped", "dir", dir, "reason", "not found")
}

// PageRendered logs a successfully written page.
func (l *Logger) PageRendered(source, dest, title string) {
	l.Debug("page rendered",
		"source", source,
		"dest", dest,
		"title", title)
}

// PageFailed logs a page that could not be built.
func (l *Logger) PageFailed(source string, err error) {
	l.Error("page failed",
		"source", source,
		"error", err)
}

// BuildCompleted logs the build summary.
func (l *Logger) BuildCompleted(pages, failed int, duration time.Duration) {
	fields := []any{
		"pages", pages,
		"failed", failed,
		"duration", duration.Round(time.Millisecond),
	}
	if failed > 0 {
		l.Warn("build completed with errors", fields...)
		return
	}
	l.Info("build completed", fields...)
}
