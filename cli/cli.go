package cli

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spf13/pflag"

	"github.com/sokinpui/filediffadvanced/model"
)

// Config holds all the command-line flag values.
type Config struct {
	Brief     bool
	Summary   bool
	Text      bool
	MaxReport int
	Progress  bool
	Copy      bool
	Help      bool

	File1 string
	File2 string
}

// Options returns the comparison options selected by the flags.
func (c *Config) Options() model.DiffOptions {
	return model.DiffOptions{
		Brief:     c.Brief,
		Summary:   c.Summary,
		Text:      c.Text,
		MaxReport: c.MaxReport,
	}.Normalize()
}

// UsageError is a bad command line. ShowUsage asks the caller to print the
// usage text after the reason.
type UsageError struct {
	Reason    string
	ShowUsage bool
}

func (e *UsageError) Error() string {
	return e.Reason
}

// Usage returns the help text for prog.
func Usage(prog string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Usage: %s [OPTIONS] file1 file2\n", prog)
	b.WriteString("Compare two files using mmap() and show binary differences.\n\n")
	b.WriteString("Options:\n")
	b.WriteString("  -b, --brief        Only report whether files differ (no details)\n")
	b.WriteString("  -s, --summary      Print summary statistics (default)\n")
	b.WriteString("  -t, --text         Show textual info (line/column and characters) for differences\n")
	b.WriteString("  -o, --offset N     Show at most N differing positions (default 10)\n")
	b.WriteString("  -p, --progress     Show a progress bar while comparing (terminal only)\n")
	b.WriteString("  -c, --copy         Copy the report to the clipboard\n")
	b.WriteString("  -h, --help         Show this help message\n")
	return b.String()
}

// ParseArgs parses args (without the program name). No file is touched here;
// every usage problem is reported before the comparison starts.
func ParseArgs(prog string, args []string) (*Config, error) {
	cfg := &Config{}
	var offset string

	flags := pflag.NewFlagSet(prog, pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.Usage = func() {}

	flags.BoolVarP(&cfg.Brief, "brief", "b", false, "Only report whether files differ (no details)")
	flags.BoolVarP(&cfg.Summary, "summary", "s", false, "Print summary statistics (default)")
	flags.BoolVarP(&cfg.Text, "text", "t", false, "Show textual info (line/column and characters) for differences")
	flags.StringVarP(&offset, "offset", "o", "", "Show at most N differing positions (default 10)")
	flags.BoolVarP(&cfg.Progress, "progress", "p", false, "Show a progress bar while comparing (terminal only)")
	flags.BoolVarP(&cfg.Copy, "copy", "c", false, "Copy the report to the clipboard")
	flags.BoolVarP(&cfg.Help, "help", "h", false, "Show this help message")

	if err := flags.Parse(args); err != nil {
		return nil, &UsageError{Reason: fmt.Sprintf("%s: %v", prog, err), ShowUsage: true}
	}
	if cfg.Help {
		return cfg, nil
	}

	cfg.MaxReport = model.DefaultMaxReport
	if flags.Changed("offset") {
		n := parseLeadingInt(offset)
		if n <= 0 {
			return nil, &UsageError{Reason: fmt.Sprintf("Invalid value for --offset: %s", offset)}
		}
		cfg.MaxReport = n
	}

	if !cfg.Brief && !cfg.Summary {
		cfg.Summary = true
	}

	files := flags.Args()
	if len(files) != 2 {
		return nil, &UsageError{Reason: "Error: exactly two file names are required.\n", ShowUsage: true}
	}
	cfg.File1, cfg.File2 = files[0], files[1]

	return cfg, nil
}

// parseLeadingInt reads an optionally signed decimal prefix of s, ignoring
// leading whitespace and anything after the digits. It returns 0 when there
// are no digits and saturates instead of overflowing.
func parseLeadingInt(s string) int {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	n := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		d := int(s[i] - '0')
		if n > (math.MaxInt-d)/10 {
			n = math.MaxInt
			break
		}
		n = n*10 + d
	}
	if neg {
		return -n
	}
	return n
}
