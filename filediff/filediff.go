package filediff

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/sokinpui/filediffadvanced/cli"
	"github.com/sokinpui/filediffadvanced/internal/scan"
	"github.com/sokinpui/filediffadvanced/model"
)

// Exit statuses of the command.
const (
	ExitIdentical = 0
	ExitDiffer    = 1
	ExitTrouble   = 2
)

// ProgressUpdate is a callback function to report progress in bytes.
type ProgressUpdate func(done, total int64)

// App runs one comparison described by a parsed command line.
type App struct {
	cfg              *cli.Config
	progressCallback ProgressUpdate
}

// DetailedError enhances a standard error with a stack trace.
type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string {
	return e.Err.Error()
}

func (e *DetailedError) Unwrap() error {
	return e.Err
}

// New creates a new App instance.
func New(cfg *cli.Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("missing configuration")
	}
	return &App{cfg: cfg}, nil
}

// Options returns the normalized comparison options.
func (a *App) Options() model.DiffOptions {
	return a.cfg.Options()
}

// SetProgressCallback sets a function to be called for progress updates.
func (a *App) SetProgressCallback(cb ProgressUpdate) {
	a.progressCallback = cb
}

// Execute compares the two configured files.
func (a *App) Execute(ctx context.Context) (r model.DiffReport, err error) {
	// Centralized panic recovery.
	defer func() {
		if rec := recover(); rec != nil {
			err = &DetailedError{
				Err:   fmt.Errorf("internal panic: %v", rec),
				Stack: debug.Stack(),
			}
		}
	}()

	return compareFiles(ctx, a.cfg.File1, a.cfg.File2, a.Options(), scan.ProgressFunc(a.progressCallback))
}

// ExitCode maps the outcome of Execute to the process status. Cancellation
// is not mapped here; it belongs to the interrupt policy.
func ExitCode(r model.DiffReport, err error) int {
	switch {
	case err != nil:
		return ExitTrouble
	case r.Identical:
		return ExitIdentical
	default:
		return ExitDiffer
	}
}
