// Package scan compares two byte views in a single pass.
//
// Memory use is bounded by the number of recorded entries, never by the size
// of the inputs: bytes are read straight from the views and only the first
// MaxReport mismatches are kept.
package scan

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sokinpui/filediffadvanced/model"
)

// chunkSize is how many overlapping bytes are scanned between cancellation
// checks and progress reports.
const chunkSize = 1 << 20

// ErrCancelled is returned when the context ends before the scan completes.
var ErrCancelled = errors.New("comparison cancelled")

// View is anything that exposes a read-only byte sequence.
type View interface {
	Bytes() []byte
}

// ProgressFunc receives the number of overlapping bytes scanned so far and
// the overlap length.
type ProgressFunc func(done, total int64)

// now is replaced in tests.
var now = time.Now

// Compare scans v1 and v2 and builds a report. It fails only when ctx is
// cancelled, in which case no report is returned.
func Compare(ctx context.Context, v1, v2 View, opts model.DiffOptions, progress ProgressFunc) (model.DiffReport, error) {
	opts = opts.Normalize()
	b1, b2 := v1.Bytes(), v2.Bytes()
	size1, size2 := int64(len(b1)), int64(len(b2))
	minSize, maxSize := min(size1, size2), max(size1, size2)

	s := scanner{
		maxReport: opts.MaxReport,
		entries:   make([]model.DiffEntry, 0, min(int64(opts.MaxReport), minSize)),
		line:      1,
		col:       1,
	}

	start := now()
	for off := int64(0); off < minSize; off += chunkSize {
		if err := ctx.Err(); err != nil {
			return model.DiffReport{}, fmt.Errorf("%w at offset %d: %w", ErrCancelled, off, context.Cause(ctx))
		}
		end := min(off+chunkSize, minSize)
		s.chunk(b1[off:end], b2[off:end], off)
		if progress != nil {
			progress(end, minSize)
		}
	}
	// Also covers an empty overlap and a cancel during the last chunk.
	if err := ctx.Err(); err != nil {
		return model.DiffReport{}, fmt.Errorf("%w at offset %d: %w", ErrCancelled, minSize, context.Cause(ctx))
	}
	s.diffBytes += maxSize - minSize
	elapsed := now().Sub(start)
	if elapsed < 0 {
		elapsed = 0
	}

	return model.DiffReport{
		Size1:         size1,
		Size2:         size2,
		BytesCompared: maxSize,
		DiffBytes:     s.diffBytes,
		Identical:     s.diffBytes == 0,
		Entries:       s.entries,
		Elapsed:       elapsed,
	}, nil
}

type scanner struct {
	maxReport int
	entries   []model.DiffEntry
	diffBytes int64

	// position in file1
	line int
	col  int
}

// chunk compares a and b, which start at base and have equal length.
func (s *scanner) chunk(a, b []byte, base int64) {
	if bytes.Equal(a, b) {
		s.advance(a)
		return
	}
	for i, c := range a {
		if c != b[i] {
			s.diffBytes++
			if len(s.entries) < s.maxReport {
				s.entries = append(s.entries, model.DiffEntry{
					Offset: base + int64(i),
					Byte1:  c,
					Byte2:  b[i],
					Line:   s.line,
					Col:    s.col,
				})
			}
		}
		if c == '\n' {
			s.line++
			s.col = 1
		} else {
			s.col++
		}
	}
}

// advance moves the line/col trackers over p exactly as the byte loop would.
func (s *scanner) advance(p []byte) {
	n := bytes.Count(p, []byte{'\n'})
	if n == 0 {
		s.col += len(p)
		return
	}
	s.line += n
	s.col = len(p) - bytes.LastIndexByte(p, '\n')
}
