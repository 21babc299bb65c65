package output

import (
	"errors"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnsupported means no clipboard utility was found.
var ErrClipboardUnsupported = errors.New("no clipboard utility available")

// Sink delivers a rendered report to stdout and, when asked, the clipboard.
type Sink struct {
	out  io.Writer
	copy bool

	clipboardUnsupported bool
	writeClipboard       func(string) error
}

// New creates a Sink writing to out.
func New(out io.Writer, copyToClipboard bool) *Sink {
	return &Sink{
		out:                  out,
		copy:                 copyToClipboard,
		clipboardUnsupported: clipboard.Unsupported,
		writeClipboard:       clipboard.WriteAll,
	}
}

// Write emits text. The clipboard is only tried after the text has been
// written, so a *ClipboardError never means the report was lost.
func (s *Sink) Write(text string) error {
	if _, err := io.WriteString(s.out, text); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if !s.copy || text == "" {
		return nil
	}
	if s.clipboardUnsupported {
		return &ClipboardError{Err: ErrClipboardUnsupported}
	}
	if err := s.writeClipboard(text); err != nil {
		return &ClipboardError{Err: err}
	}
	return nil
}

// ClipboardError wraps a failure to copy the report.
type ClipboardError struct {
	Err error
}

func (e *ClipboardError) Error() string {
	return "failed to copy report to clipboard: " + e.Err.Error()
}

func (e *ClipboardError) Unwrap() error {
	return e.Err
}
