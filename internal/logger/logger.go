// Package logger holds the process-wide logrus logger shared by the library
// and the command line tools.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	LevelsFlag        = "log-level"
	LevelsPlaceholder = "(panic|fatal|error|warn|info|debug|trace)"
	LevelsHelp        = "The minimum log level."

	FileFlag     = "log-file"
	FileFlagHelp = "Path to an extra log file. It receives every entry down to trace."

	ColorFlag         = "log-color"
	ColorsPlaceholder = "(always|auto|never)"
	ColorFlagHelp     = "Color setting for log terminal output."

	defaultLevel = logrus.InfoLevel
	colorAlways  = "always"
	colorAuto    = "auto"
	colorNever   = "never"
)

// Log is the logger used across the module. Library code only logs at debug
// and trace level.
var Log = newLogger()

// LogFlags are the optional logger settings collected by a command line.
// A nil or empty field keeps the default.
type LogFlags struct {
	LogColor *string
	LogFile  *string
	LogLevel *string
}

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(defaultLevel)
	l.SetFormatter(&logrus.TextFormatter{})
	return l
}

// Levels returns the accepted level names, most severe first.
func Levels() []string {
	levels := make([]string, 0, len(logrus.AllLevels))
	for _, l := range logrus.AllLevels {
		levels = append(levels, l.String())
	}
	return levels
}

// Colors returns the accepted color modes.
func Colors() []string {
	return []string{colorAlways, colorAuto, colorNever}
}

// InitStderrLog resets Log to write info and above to stderr and drops every
// hook.
func InitStderrLog() {
	Log.ReplaceHooks(make(logrus.LevelHooks))
	Log.SetOutput(os.Stderr)
	Log.SetLevel(defaultLevel)
	Log.SetFormatter(&logrus.TextFormatter{})
}

// SetStderrLogLevel parses and applies level.
func SetStderrLogLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	Log.SetLevel(lvl)
	return nil
}

// Init configures Log from flags.
func Init(flags LogFlags) error {
	InitStderrLog()

	if color := deref(flags.LogColor); color != "" {
		if err := setColor(color); err != nil {
			return err
		}
	}

	if level := deref(flags.LogLevel); level != "" {
		if err := SetStderrLogLevel(level); err != nil {
			return err
		}
	}

	if path := deref(flags.LogFile); path != "" {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		// The hook sees every entry; the logger level must not filter them.
		stderrLevel := Log.GetLevel()
		Log.SetLevel(logrus.TraceLevel)
		Log.SetOutput(io.Discard)
		Log.AddHook(newWriterHook(os.Stderr, Log.Formatter, levelsUpTo(stderrLevel)))
		Log.AddHook(newWriterHook(file, &logrus.TextFormatter{DisableColors: true, FullTimestamp: true}, logrus.AllLevels))
	}
	return nil
}

// InitBestEffort calls Init and falls back to the stderr defaults on failure.
func InitBestEffort(flags *LogFlags) {
	if flags == nil {
		InitStderrLog()
		return
	}
	if err := Init(*flags); err != nil {
		InitStderrLog()
		Log.Warnf("failed to initialize logger: %v", err)
	}
}

func setColor(color string) error {
	formatter := &logrus.TextFormatter{}
	switch strings.ToLower(color) {
	case colorAlways:
		formatter.ForceColors = true
	case colorNever:
		formatter.DisableColors = true
	case colorAuto:
	default:
		return fmt.Errorf("invalid log color %q (want %s)", color, strings.Join(Colors(), "|"))
	}
	Log.SetFormatter(formatter)
	return nil
}

func levelsUpTo(max logrus.Level) []logrus.Level {
	var levels []logrus.Level
	for _, l := range logrus.AllLevels {
		if l <= max {
			levels = append(levels, l)
		}
	}
	return levels
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
