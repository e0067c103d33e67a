package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/optgen/internal/compile"
	"github.com/specialistvlad/optgen/internal/ctxlog"
	"github.com/specialistvlad/optgen/internal/diffcheck"
	"github.com/specialistvlad/optgen/internal/emit"
	"github.com/specialistvlad/optgen/internal/hclcatalog"
)

// App encapsulates the application's dependencies and configuration.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	ctx    context.Context
}

// NewApp is the constructor for the main application. Generated output goes
// to outW unless the configuration names an output file; logs go to logW.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		ctx:    ctxlog.WithLogger(context.Background(), logger),
	}
}

// Generate compiles the catalog and writes the selected artifacts.
func (a *App) Generate() error {
	out, err := a.render()
	if err != nil {
		return err
	}
	return a.write(out)
}

// Check regenerates the output and compares it with the committed file. A
// mismatch is reported as a *diffcheck.DriftError.
func (a *App) Check() error {
	want, err := os.ReadFile(a.config.AgainstPath)
	if err != nil {
		return fmt.Errorf("failed to read committed output: %w", err)
	}
	got, err := a.render()
	if err != nil {
		return err
	}

	if err := diffcheck.Compare(want, got, a.config.AgainstPath, "regenerated"); err != nil {
		return err
	}
	a.logger.Info("Generated output is up to date.", "file", a.config.AgainstPath)
	return nil
}

// Format rewrites the catalog as canonical HCL. The catalog is compiled
// first so that a defective catalog is never rewritten.
func (a *App) Format() error {
	res, err := a.compile()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := hclcatalog.Write(&buf, res.Catalog); err != nil {
		return fmt.Errorf("failed to render catalog: %w", err)
	}
	return a.write(buf.Bytes())
}

func (a *App) compile() (*compile.Result, error) {
	cat, err := a.load()
	if err != nil {
		return nil, err
	}
	return compile.Compile(a.ctx, cat)
}

func (a *App) render() ([]byte, error) {
	res, err := a.compile()
	if err != nil {
		return nil, err
	}

	artifacts, err := emit.ParseArtifacts(a.config.Artifacts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	e := emit.New(res, emit.Options{Artifacts: artifacts, Contexts: a.config.Contexts})
	if err := e.Emit(&buf); err != nil {
		return nil, err
	}
	a.logger.Debug("Output rendered.", "bytes", buf.Len(), "options", len(res.Emitted()))
	return buf.Bytes(), nil
}

func (a *App) write(out []byte) error {
	if a.config.OutputPath == "" {
		_, err := a.outW.Write(out)
		return err
	}
	if err := os.WriteFile(a.config.OutputPath, out, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	a.logger.Info("Output written.", "file", a.config.OutputPath, "bytes", len(out))
	return nil
}
