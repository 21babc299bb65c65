package filediff

import (
	"context"
	"fmt"

	"github.com/sokinpui/filediffadvanced/internal/fs"
	"github.com/sokinpui/filediffadvanced/internal/scan"
	"github.com/sokinpui/filediffadvanced/internal/simplelogger"
	"github.com/sokinpui/filediffadvanced/model"
)

// ErrCancelled is returned when ctx ends while the files are being compared.
var ErrCancelled = scan.ErrCancelled

// Compare maps both files, compares them byte by byte and releases both
// mappings before returning, whatever the outcome.
func Compare(ctx context.Context, path1, path2 string, opts model.DiffOptions) (model.DiffReport, error) {
	return compareFiles(ctx, path1, path2, opts, nil)
}

func compareFiles(ctx context.Context, path1, path2 string, opts model.DiffOptions, progress scan.ProgressFunc) (model.DiffReport, error) {
	v1, err := fs.Open(path1)
	if err != nil {
		return model.DiffReport{}, fmt.Errorf("file1: %w", err)
	}
	defer release(v1)

	v2, err := fs.Open(path2)
	if err != nil {
		return model.DiffReport{}, fmt.Errorf("file2: %w", err)
	}
	defer release(v2)

	simplelogger.Log("compare: %s (%d bytes) vs %s (%d bytes), max report %d", path1, v1.Size, path2, v2.Size, opts.MaxReport)

	r, err := scan.Compare(ctx, v1, v2, opts, progress)
	if err != nil {
		simplelogger.Log("compare: %v", err)
		return model.DiffReport{}, err
	}
	r.Path1, r.Path2 = path1, path2

	simplelogger.Log("compare: %d differing bytes, %d entries, %s", r.DiffBytes, len(r.Entries), r.Elapsed)
	return r, nil
}

func release(v *fs.View) {
	if err := v.Release(); err != nil {
		simplelogger.Log("release %s: %v", v.Path, err)
	}
}
