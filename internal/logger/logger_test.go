package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestInit_Level(t *testing.T) {
	defer InitStderrLog()

	require.NoError(t, Init(LogFlags{LogLevel: strPtr("debug")}))
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())

	err := Init(LogFlags{LogLevel: strPtr("loud")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestInit_Color(t *testing.T) {
	defer InitStderrLog()

	require.NoError(t, Init(LogFlags{LogColor: strPtr("never")}))
	formatter, ok := Log.Formatter.(*logrus.TextFormatter)
	require.True(t, ok)
	assert.True(t, formatter.DisableColors)

	require.NoError(t, Init(LogFlags{LogColor: strPtr("ALWAYS")}))
	assert.True(t, Log.Formatter.(*logrus.TextFormatter).ForceColors)

	require.Error(t, Init(LogFlags{LogColor: strPtr("sometimes")}))
}

func TestInit_LogFileGetsTrace(t *testing.T) {
	defer InitStderrLog()

	path := filepath.Join(t.TempDir(), "texcomp.log")
	require.NoError(t, Init(LogFlags{LogFile: strPtr(path), LogLevel: strPtr("error")}))

	Log.Tracef("trace line %d", 1)
	Log.Errorf("error line %d", 2)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "trace line 1")
	assert.Contains(t, string(data), "error line 2")
	assert.Equal(t, 2, strings.Count(string(data), "\n"))
}

func TestInitStderrLog_DropsHooks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "texcomp.log")
	require.NoError(t, Init(LogFlags{LogFile: strPtr(path)}))
	require.NoError(t, Init(LogFlags{LogFile: strPtr(path)}))
	Log.Info("once")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "once"))

	InitStderrLog()
	for _, hooks := range Log.Hooks {
		assert.Empty(t, hooks)
	}
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
}

func TestInitBestEffort_FallsBack(t *testing.T) {
	defer InitStderrLog()

	InitBestEffort(&LogFlags{LogLevel: strPtr("nope")})
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())

	InitBestEffort(nil)
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
}

func TestLevelsAndColors(t *testing.T) {
	assert.Equal(t, []string{"panic", "fatal", "error", "warning", "info", "debug", "trace"}, Levels())
	assert.Equal(t, []string{"always", "auto", "never"}, Colors())
}
