package application

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/eugenenazirov/minigrep/internal/config"
	"github.com/eugenenazirov/minigrep/internal/document"
	"github.com/eugenenazirov/minigrep/internal/search"
)

// App encapsulates one search invocation and its dependencies.
type App struct {
	cfg    config.Config
	filter search.Filter
	logger *zap.Logger
	out    io.Writer
	load   func(path string) (*document.Document, error)
}

// Option configures App behaviour.
type Option func(*App)

// WithOutput overrides where matching lines are written, primarily for tests.
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		a.out = w
	}
}

// WithLoader overrides how the document is read, primarily for tests.
func WithLoader(load func(path string) (*document.Document, error)) Option {
	return func(a *App) {
		a.load = load
	}
}

// New initializes the application from the provided configuration.
func New(cfg config.Config, logger *zap.Logger, opts ...Option) *App {
	if logger == nil {
		logger = zap.NewNop()
	}

	a := &App{
		cfg:    cfg,
		filter: search.New(cfg.IgnoreCase),
		logger: logger,
		out:    os.Stdout,
		load:   document.Load,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run reads the configured file, filters its lines and writes every match on its own line.
// Nothing is written when the file cannot be read.
func (a *App) Run() error {
	doc, err := a.load(a.cfg.FilePath)
	if err != nil {
		return err
	}

	lines := doc.Lines()
	a.logger.Debug("document loaded",
		zap.String("path", doc.Path),
		zap.Int("bytes", len(doc.Content)),
		zap.Int("lines", len(lines)),
	)

	matches := a.filter.Filter(a.cfg.Query, lines)
	a.logger.Debug("search complete",
		zap.Int("matches", len(matches)),
		zap.Bool("ignore_case", a.cfg.IgnoreCase),
	)

	w := bufio.NewWriter(a.out)
	for _, line := range matches {
		if _, err := w.WriteString(line); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}
