package main

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/sokinpui/filediffadvanced/cli"
	"github.com/sokinpui/filediffadvanced/filediff"
	"github.com/sokinpui/filediffadvanced/internal/interrupt"
	"github.com/sokinpui/filediffadvanced/internal/output"
	"github.com/sokinpui/filediffadvanced/internal/report"
	"github.com/sokinpui/filediffadvanced/internal/tui"
	"github.com/sokinpui/filediffadvanced/internal/ui"
	"github.com/sokinpui/filediffadvanced/model"
)

// stderrIsTerminal is replaced in tests.
var stderrIsTerminal = func() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func main() {
	policy := interrupt.New(os.Stderr)
	ctx, stop := policy.Watch(context.Background())

	code := run(ctx, filepath.Base(os.Args[0]), os.Args[1:], os.Stdout)
	if errors.Is(context.Cause(ctx), interrupt.ErrInterrupted) {
		policy.Terminate()
	}
	stop()
	os.Exit(code)
}

func run(ctx context.Context, prog string, args []string, stdout io.Writer) int {
	cfg, err := cli.ParseArgs(prog, args)
	if err != nil {
		var ue *cli.UsageError
		if errors.As(err, &ue) {
			ui.Error("%s", ue.Reason)
			if ue.ShowUsage {
				ui.Plain(cli.Usage(prog))
			}
		} else {
			ui.Error("Error: %v", err)
		}
		return filediff.ExitTrouble
	}
	if cfg.Help {
		ui.Plain(cli.Usage(prog))
		return 0
	}

	app, err := filediff.New(cfg)
	if err != nil {
		ui.Error("Failed to initialize application: %v", err)
		return filediff.ExitTrouble
	}

	var r model.DiffReport
	switch {
	case cfg.Progress && stderrIsTerminal():
		r, err = tui.Run(ctx, app, os.Stderr)
	default:
		if cfg.Progress {
			ui.Info("--progress ignored: stderr is not a terminal")
		}
		r, err = app.Execute(ctx)
	}
	if err != nil {
		if errors.Is(err, filediff.ErrCancelled) {
			// The interrupt policy reports this one.
			return interrupt.ExitCode
		}
		ui.Error("%v", err)
		var de *filediff.DetailedError
		if errors.As(err, &de) {
			ui.Faint("\n--- Stack Trace ---\n%s", de.Stack)
		}
		return filediff.ExitTrouble
	}

	if ctx.Err() != nil {
		return interrupt.ExitCode
	}

	sink := output.New(stdout, cfg.Copy)
	if err := sink.Write(report.Render(r, app.Options())); err != nil {
		var ce *output.ClipboardError
		if !errors.As(err, &ce) {
			ui.Error("%v", err)
			return filediff.ExitTrouble
		}
		ui.Warning("%v", err)
	}
	return filediff.ExitCode(r, nil)
}
