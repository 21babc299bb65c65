package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	mu  sync.Mutex
	out io.Writer = os.Stderr

	errorStyle   lipgloss.Style
	warningStyle lipgloss.Style
	infoStyle    lipgloss.Style
	faintStyle   lipgloss.Style
)

func init() {
	SetOutput(os.Stderr)
}

// SetOutput redirects diagnostics. Colors are used only when w is a terminal.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	r := lipgloss.NewRenderer(w)
	out = w
	errorStyle = r.NewStyle().Foreground(lipgloss.Color("197"))
	warningStyle = r.NewStyle().Foreground(lipgloss.Color("214"))
	infoStyle = r.NewStyle().Foreground(lipgloss.Color("39"))
	faintStyle = r.NewStyle().Faint(true)
}

func Error(format string, a ...interface{}) {
	write(&errorStyle, format, a...)
}

func Warning(format string, a ...interface{}) {
	write(&warningStyle, format, a...)
}

func Info(format string, a ...interface{}) {
	write(&infoStyle, format, a...)
}

// Faint is used for secondary detail such as stack traces.
func Faint(format string, a ...interface{}) {
	write(&faintStyle, format, a...)
}

// Plain writes unstyled text, e.g. the usage message.
func Plain(text string) {
	mu.Lock()
	defer mu.Unlock()
	io.WriteString(out, text)
}

func write(style *lipgloss.Style, format string, a ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	msg := fmt.Sprintf(format, a...)
	// Surrounding blank lines stay outside the styled span.
	body := strings.Trim(msg, "\n")
	if body == "" {
		io.WriteString(out, msg+"\n")
		return
	}
	start := strings.Index(msg, body)
	io.WriteString(out, msg[:start])
	io.WriteString(out, style.Render(body))
	io.WriteString(out, msg[start+len(body):]+"\n")
}
