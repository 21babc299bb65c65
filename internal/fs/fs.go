package fs

import (
	"errors"
	"fmt"
	"math"
	"os"
)

// Op names the step of Open that failed.
type Op string

const (
	OpOpen Op = "open"
	OpStat Op = "stat"
	OpMap  Op = "mmap"
)

// Sentinels for errors.Is; every *Error matches exactly one of them.
var (
	ErrOpenFailed = errors.New("open failed")
	ErrStatFailed = errors.New("stat failed")
	ErrMapFailed  = errors.New("map failed")
)

var (
	errIsDir    = errors.New("is a directory")
	errTooLarge = errors.New("file too large to map")
)

// Error reports a failure to build a View.
type Error struct {
	Op   Op
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the failed Op.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrOpenFailed:
		return e.Op == OpOpen
	case ErrStatFailed:
		return e.Op == OpStat
	case ErrMapFailed:
		return e.Op == OpMap
	}
	return false
}

// View is a read-only view of a whole file. It owns the descriptor and, for a
// non-empty file, the mapping. Bytes stays valid until Release.
type View struct {
	Path string
	Size int64

	file *os.File
	data []byte
}

// Open maps path read-only. An empty file yields a valid View with no
// mapping. On any error nothing stays open.
func Open(path string) (*View, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Op: OpOpen, Path: path, Err: cause(err)}
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, &Error{Op: OpStat, Path: path, Err: cause(err)}
	}
	if info.IsDir() {
		f.Close()
		return nil, &Error{Op: OpStat, Path: path, Err: errIsDir}
	}

	v := &View{Path: path, Size: info.Size(), file: f}
	if v.Size == 0 {
		return v, nil
	}
	if v.Size > math.MaxInt {
		f.Close()
		return nil, &Error{Op: OpMap, Path: path, Err: errTooLarge}
	}

	data, err := mapFile(f, int(v.Size))
	if err != nil {
		f.Close()
		return nil, &Error{Op: OpMap, Path: path, Err: err}
	}
	v.data = data
	return v, nil
}

// Bytes returns the file contents, or nil for an empty or released view.
// The slice must not be written to.
func (v *View) Bytes() []byte {
	return v.data
}

// Mapped reports whether the view currently holds a mapping.
func (v *View) Mapped() bool {
	return v.data != nil
}

// Release unmaps the file and closes the descriptor. It is safe to call more
// than once and on a nil View.
func (v *View) Release() error {
	if v == nil {
		return nil
	}

	var err error
	if v.data != nil {
		if uerr := unmapFile(v.data); uerr != nil {
			err = &Error{Op: OpMap, Path: v.Path, Err: uerr}
		}
		v.data = nil
	}
	if v.file != nil {
		if cerr := v.file.Close(); cerr != nil && err == nil {
			err = cerr
		}
		v.file = nil
	}
	return err
}

// cause strips the *os.PathError so Error does not repeat op and path.
func cause(err error) error {
	var pe *os.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
