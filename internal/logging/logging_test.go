package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todo-remind/internal/config"
)

func TestNewWithoutFileDiscards(t *testing.T) {
	l, c, err := New(config.Default().Log)
	require.NoError(t, err)
	require.NotNil(t, l)
	l.Info("nobody hears this")
	assert.NoError(t, c.Close())
}

func TestNewRejectsBadLevel(t *testing.T) {
	cfg := config.Default().Log
	cfg.Level = "loud"
	_, _, err := New(cfg)
	assert.Error(t, err)
}

func TestNewWritesToFile(t *testing.T) {
	cfg := config.Default().Log
	cfg.File = filepath.Join(t.TempDir(), "nested", "todo.log")
	l, c, err := New(cfg)
	require.NoError(t, err)
	l.Info("entry added", "id", "abc")
	l.Debug("hidden at info level")
	require.NoError(t, c.Close())

	b, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	assert.Contains(t, string(b), "entry added")
	assert.Contains(t, string(b), "id=abc")
	assert.NotContains(t, string(b), "hidden")
}

func TestNewWithWriterLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, log.WarnLevel)
	l.Info("quiet")
	l.Warn("loud", "k", 1)
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "msg=loud")
}
