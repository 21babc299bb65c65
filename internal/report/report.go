package report

import (
	"fmt"
	"strings"

	"github.com/sokinpui/filediffadvanced/model"
)

// Render formats a comparison result. Brief output is a single verdict line;
// otherwise the summary block is followed by the recorded positions.
func Render(r model.DiffReport, opts model.DiffOptions) string {
	opts = opts.Normalize()
	var b strings.Builder

	if opts.Brief {
		if r.Identical {
			b.WriteString("Files are identical.\n")
		} else {
			b.WriteString("Files differ.\n")
		}
		return b.String()
	}

	if opts.Summary {
		writeSummary(&b, r)
	}
	if !r.Identical && len(r.Entries) > 0 {
		writeEntries(&b, r.Entries, opts.Text)
	}
	return b.String()
}

func writeSummary(b *strings.Builder, r model.DiffReport) {
	fmt.Fprintf(b, "file1: %s (%d bytes)\n", r.Path1, r.Size1)
	fmt.Fprintf(b, "file2: %s (%d bytes)\n", r.Path2, r.Size2)
	if r.Identical {
		b.WriteString("Result: files are identical.\n")
	} else {
		fmt.Fprintf(b, "Differing bytes: %d (%.2f%% of larger file)\n", r.DiffBytes, r.Percent())
	}

	fmt.Fprintf(b, "Comparison time: %.3f ms\n", r.ElapsedSeconds()*1000)
	fmt.Fprintf(b, "Bytes compared:  %d (%.3f MB)\n", r.BytesCompared, r.MegaBytes())
	fmt.Fprintf(b, "Throughput:       %.3f MB/s\n", r.Throughput())
	b.WriteString("\n")
}

func writeEntries(b *strings.Builder, entries []model.DiffEntry, text bool) {
	fmt.Fprintf(b, "First %d differing positions:\n", len(entries))
	for _, e := range entries {
		if text {
			fmt.Fprintf(b, "  offset %d, line %d, col %d: 0x%02X ('%c') != 0x%02X ('%c')\n",
				e.Offset, e.Line, e.Col, e.Byte1, printable(e.Byte1), e.Byte2, printable(e.Byte2))
		} else {
			fmt.Fprintf(b, "  %d: 0x%02X != 0x%02X\n", e.Offset, e.Byte1, e.Byte2)
		}
	}
}

// printable maps bytes outside the ASCII printable range to '.'.
func printable(c byte) byte {
	if c >= 0x20 && c <= 0x7e {
		return c
	}
	return '.'
}
