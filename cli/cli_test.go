package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokinpui/filediffadvanced/model"
)

func TestParseArgs_Defaults(t *testing.T) {
	cfg, err := ParseArgs("fd", []string{"a", "b"})
	require.NoError(t, err)

	assert.Equal(t, "a", cfg.File1)
	assert.Equal(t, "b", cfg.File2)
	assert.True(t, cfg.Summary)
	assert.False(t, cfg.Brief)
	assert.Equal(t, model.DiffOptions{Summary: true, MaxReport: 10}, cfg.Options())
}

func TestParseArgs_AllFlagsInterspersed(t *testing.T) {
	cfg, err := ParseArgs("fd", []string{"a", "-bt", "--offset", "3", "b", "--summary", "-p", "--copy"})
	require.NoError(t, err)

	assert.True(t, cfg.Brief)
	assert.True(t, cfg.Summary)
	assert.True(t, cfg.Text)
	assert.True(t, cfg.Progress)
	assert.True(t, cfg.Copy)
	assert.Equal(t, 3, cfg.MaxReport)
	assert.Equal(t, [2]string{"a", "b"}, [2]string{cfg.File1, cfg.File2})
}

func TestParseArgs_BriefAloneDoesNotEnableSummary(t *testing.T) {
	cfg, err := ParseArgs("fd", []string{"-b", "a", "b"})
	require.NoError(t, err)
	assert.True(t, cfg.Brief)
	assert.False(t, cfg.Summary)
}

func TestParseArgs_Offset(t *testing.T) {
	tests := []struct {
		value string
		want  int
		ok    bool
	}{
		{"1", 1, true},
		{"25", 25, true},
		{"7abc", 7, true},
		{" 4", 4, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"x", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			cfg, err := ParseArgs("fd", []string{"--offset=" + tt.value, "a", "b"})
			if !tt.ok {
				var ue *UsageError
				require.True(t, errors.As(err, &ue), "err=%v", err)
				assert.Equal(t, "Invalid value for --offset: "+tt.value, ue.Reason)
				assert.False(t, ue.ShowUsage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.MaxReport)
		})
	}
}

func TestParseArgs_ShortOffsetAttached(t *testing.T) {
	cfg, err := ParseArgs("fd", []string{"-o5", "a", "b"})
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.MaxReport)
}

func TestParseArgs_WrongFileCount(t *testing.T) {
	for _, args := range [][]string{nil, {"a"}, {"a", "b", "c"}} {
		_, err := ParseArgs("fd", args)
		var ue *UsageError
		require.True(t, errors.As(err, &ue))
		assert.Equal(t, "Error: exactly two file names are required.\n", ue.Reason)
		assert.True(t, ue.ShowUsage)
	}
}

func TestParseArgs_EmptyNamesAreFiles(t *testing.T) {
	cfg, err := ParseArgs("fd", []string{"", "b"})
	require.NoError(t, err)
	assert.Equal(t, "", cfg.File1)
	assert.Equal(t, "b", cfg.File2)
}

func TestParseArgs_UnknownFlag(t *testing.T) {
	_, err := ParseArgs("fd", []string{"--bogus", "a", "b"})
	var ue *UsageError
	require.True(t, errors.As(err, &ue))
	assert.Contains(t, ue.Reason, "bogus")
	assert.True(t, ue.ShowUsage)
}

func TestParseArgs_HelpSkipsValidation(t *testing.T) {
	cfg, err := ParseArgs("fd", []string{"-h"})
	require.NoError(t, err)
	assert.True(t, cfg.Help)

	cfg, err = ParseArgs("fd", []string{"--offset", "0", "--help"})
	require.NoError(t, err)
	assert.True(t, cfg.Help)
}

func TestUsage(t *testing.T) {
	u := Usage("filediffadvanced")
	assert.Contains(t, u, "Usage: filediffadvanced [OPTIONS] file1 file2\n")
	assert.Contains(t, u, "  -o, --offset N     Show at most N differing positions (default 10)\n")
}

func TestParseLeadingInt(t *testing.T) {
	assert.Equal(t, 12, parseLeadingInt("12"))
	assert.Equal(t, -12, parseLeadingInt("-12z"))
	assert.Equal(t, 9, parseLeadingInt("+9"))
	assert.Equal(t, 0, parseLeadingInt("abc"))
	assert.Greater(t, parseLeadingInt("99999999999999999999999999"), 0)
}
