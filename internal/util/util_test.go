package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestQuoteCmd(t *testing.T) {
	assert.Equal(t, "less -S -R", QuoteCmd([]string{"less", "-S", "-R"}))
	assert.Equal(t, "convert 'my table.toml' out.db", QuoteCmd([]string{"convert", "my table.toml", "out.db"}))
	assert.Equal(t, "echo '<secret sauce>'", QuoteCmd([]string{"echo", "a\nb"}))
}

func TestQuoteCmdLeavesInputAlone(t *testing.T) {
	cmd := []string{"echo", "a\nb"}
	QuoteCmd(cmd)
	assert.Equal(t, "a\nb", cmd[1])
}

func TestTryWriteAtomic(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "out.toml")

	require.NoError(t, TryWriteAtomic(filename, []byte("first")))
	require.NoError(t, TryWriteAtomic(filename, []byte("second")))

	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "second", string(content))
}

func TestTryWriteAtomicMissingDirectory(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "missing", "out.toml")
	assert.Error(t, TryWriteAtomic(filename, []byte("x")))
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "present")
	require.NoError(t, os.WriteFile(filename, nil, 0666))

	assert.True(t, FileExists(filename))
	assert.False(t, FileExists(filepath.Join(dir, "absent")))
}

func TestLoggerDefaultsToNop(t *testing.T) {
	SetupLogging(false)
	assert.NotNil(t, Logger())
	assert.False(t, Logger().Desugar().Core().Enabled(zap.DebugLevel))

	SetupLogging(true)
	assert.True(t, Logger().Desugar().Core().Enabled(zap.DebugLevel))
	SetupLogging(false)
}
