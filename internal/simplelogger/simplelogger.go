package simplelogger

import (
	"bytes"
	"fmt"
	"os"
	"sync"
	"time"
)

// EnvVar names the file debug output is appended to.
const EnvVar = "FILEDIFF_LOG_FILE"

var mu sync.Mutex

// Log appends one timestamped printf-style line to the file named by
// FILEDIFF_LOG_FILE. It never writes to stdout or stderr, so report output
// stays byte-exact.
//
// If FILEDIFF_LOG_FILE is unset or can't be opened as a file, Log is a no-op.
func Log(format string, args ...any) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return
	}

	mu.Lock()
	defer mu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	var b bytes.Buffer
	b.WriteString(time.Now().Format(time.RFC3339Nano))
	b.WriteByte(' ')
	_, _ = fmt.Fprintf(&b, format, args...)
	if b.Bytes()[b.Len()-1] != '\n' {
		_ = b.WriteByte('\n')
	}
	_, _ = f.Write(b.Bytes())
}
