package interrupt

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"sync"

	"github.com/sokinpui/filediffadvanced/internal/simplelogger"
)

// ExitCode is the process status after an interrupt.
const ExitCode = 130

// Message is written to stderr before exiting on an interrupt.
const Message = "\nfilediffadvanced: interrupted by SIGINT\n"

// ErrInterrupted is the cancellation cause set on the watched context.
var ErrInterrupted = errors.New("interrupted by SIGINT")

// Policy turns SIGINT into cancellation. The first signal cancels the
// context returned by Watch; a second one terminates the process at once.
type Policy struct {
	stderr io.Writer
	exit   func(int)

	signals chan os.Signal
	once    sync.Once
}

// New returns a Policy that reports to stderr and exits through os.Exit.
func New(stderr io.Writer) *Policy {
	return &Policy{
		stderr:  stderr,
		exit:    os.Exit,
		signals: make(chan os.Signal, 2),
	}
}

// Watch starts listening for SIGINT until stop is called.
func (p *Policy) Watch(parent context.Context) (ctx context.Context, stop func()) {
	ctx, cancel := context.WithCancelCause(parent)
	done := make(chan struct{})
	signal.Notify(p.signals, os.Interrupt)

	go func() {
		interrupted := false
		for {
			select {
			case <-p.signals:
				if interrupted {
					simplelogger.Log("interrupt: second signal, exiting")
					p.Terminate()
					return
				}
				interrupted = true
				simplelogger.Log("interrupt: cancelling comparison")
				cancel(ErrInterrupted)
			case <-done:
				return
			}
		}
	}()

	var stopOnce sync.Once
	return ctx, func() {
		stopOnce.Do(func() {
			signal.Stop(p.signals)
			close(done)
			cancel(nil)
		})
	}
}

// Terminate writes Message and exits with ExitCode. Only the first call has
// any effect.
func (p *Policy) Terminate() {
	p.once.Do(func() {
		_, _ = io.WriteString(p.stderr, Message)
		p.exit(ExitCode)
	})
}
