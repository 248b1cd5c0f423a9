package site

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/cnopslabs/potsite/internal/projection"
	"github.com/spf13/afero"
)

// IOError is returned when the template cannot be read or the page cannot be written
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Builder reads the template and writes the rendered page
type Builder struct {
	Fs           afero.Fs
	TemplatePath string
	OutputPath   string
	Now          func() time.Time
	Logger       *slog.Logger
}

// Result describes a generated page
type Result struct {
	OutputPath string
	Values     map[string]string
}

// Build renders the projection into the template and overwrites the output file
func (b *Builder) Build(p projection.Projection) (Result, error) {
	fs := b.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	now := b.Now
	if now == nil {
		now = time.Now
	}
	logger := b.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	logger.Debug("Reading template", "path", b.TemplatePath)
	template, err := afero.ReadFile(fs, b.TemplatePath)
	if err != nil {
		return Result{}, &IOError{Op: "read template", Path: b.TemplatePath, Err: err}
	}

	values := Values(p, now())
	output := Render(string(template), values)

	logger.Debug("Writing page", "path", b.OutputPath, "bytes", len(output))
	err = afero.WriteFile(fs, b.OutputPath, []byte(output), os.FileMode(0644))
	if err != nil {
		return Result{}, &IOError{Op: "write output", Path: b.OutputPath, Err: err}
	}

	return Result{OutputPath: b.OutputPath, Values: values}, nil
}
