package model

import "time"

// DefaultMaxReport is the number of differing positions recorded when no
// limit is given.
const DefaultMaxReport = 10

// DiffOptions controls what a comparison records and how it is rendered.
// Brief and Summary are independent; Text only changes how entries render.
type DiffOptions struct {
	Brief     bool
	Summary   bool
	Text      bool
	MaxReport int
}

// Normalize returns a copy with the defaults applied: Summary is turned on
// when neither Brief nor Summary was selected, and a non-positive MaxReport
// becomes DefaultMaxReport.
func (o DiffOptions) Normalize() DiffOptions {
	if !o.Brief && !o.Summary {
		o.Summary = true
	}
	if o.MaxReport <= 0 {
		o.MaxReport = DefaultMaxReport
	}
	return o
}

// DiffEntry is one recorded byte mismatch. Line and Col are 1-based and
// always computed from file1.
type DiffEntry struct {
	Offset int64
	Byte1  byte
	Byte2  byte
	Line   int
	Col    int
}

// DiffReport is the complete result of one comparison.
type DiffReport struct {
	Path1 string
	Path2 string
	Size1 int64
	Size2 int64

	BytesCompared int64 // max(Size1, Size2)
	DiffBytes     int64 // overlapping mismatches plus tail bytes
	Identical     bool
	Entries       []DiffEntry
	Elapsed       time.Duration
}

// ElapsedSeconds returns the scan duration in seconds.
func (r DiffReport) ElapsedSeconds() float64 {
	return r.Elapsed.Seconds()
}

// Percent is the share of differing bytes relative to the larger file.
func (r DiffReport) Percent() float64 {
	if r.BytesCompared <= 0 {
		return 0
	}
	return 100 * float64(r.DiffBytes) / float64(r.BytesCompared)
}

// MegaBytes returns BytesCompared in MiB.
func (r DiffReport) MegaBytes() float64 {
	return float64(r.BytesCompared) / (1024 * 1024)
}

// Throughput returns MiB compared per second, or 0 for an instantaneous scan.
func (r DiffReport) Throughput() float64 {
	secs := r.ElapsedSeconds()
	if secs <= 0 {
		return 0
	}
	return r.MegaBytes() / secs
}
