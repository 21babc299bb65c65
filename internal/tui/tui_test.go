package tui

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokinpui/filediffadvanced/cli"
	"github.com/sokinpui/filediffadvanced/filediff"
	"github.com/sokinpui/filediffadvanced/model"
)

func newApp(t *testing.T, content1, content2 string) *filediff.App {
	t.Helper()
	dir := t.TempDir()
	p1 := filepath.Join(dir, "a")
	p2 := filepath.Join(dir, "b")
	require.NoError(t, os.WriteFile(p1, []byte(content1), 0o644))
	require.NoError(t, os.WriteFile(p2, []byte(content2), 0o644))
	app, err := filediff.New(&cli.Config{File1: p1, File2: p2})
	require.NoError(t, err)
	return app
}

func TestUpdate_ProgressThenResult(t *testing.T) {
	m := New(context.Background(), nil)
	assert.Contains(t, m.View(), "Mapping files...")

	next, cmd := m.Update(progressMsg{done: 1, total: 4})
	m = next.(Model)
	assert.Nil(t, cmd)
	assert.Equal(t, stateScanning, m.state)
	assert.InDelta(t, 0.25, m.percent, 1e-9)
	assert.Contains(t, m.View(), "Comparing")
	assert.Contains(t, m.View(), "25%")

	want := model.DiffReport{DiffBytes: 3}
	next, cmd = m.Update(resultMsg{report: want})
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())

	got, err := m.Result()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUpdate_Error(t *testing.T) {
	m := New(context.Background(), nil)
	boom := errors.New("boom")

	next, cmd := m.Update(errorMsg{boom})
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.Empty(t, m.View())

	_, err := m.Result()
	assert.ErrorIs(t, err, boom)
}

func TestRun_ReturnsReport(t *testing.T) {
	app := newApp(t, "abc\ndef", "abc\nxef")
	var out bytes.Buffer

	r, err := Run(context.Background(), app, &out)
	require.NoError(t, err)
	assert.Equal(t, int64(1), r.DiffBytes)
	require.Len(t, r.Entries, 1)
	assert.Equal(t, int64(4), r.Entries[0].Offset)
	assert.False(t, strings.Contains(out.String(), "Differing bytes"))
}

func TestRun_PropagatesCancellation(t *testing.T) {
	app := newApp(t, "abc", "abd")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, app, &bytes.Buffer{})
	assert.ErrorIs(t, err, filediff.ErrCancelled)
}
