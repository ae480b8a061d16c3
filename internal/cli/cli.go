// Package cli holds the kong setup shared by texcompgo and texcompbench.
package cli

import (
	"os"
	"slices"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ispc-texcomp/go-texcomp/container"
	"github.com/ispc-texcomp/go-texcomp/internal/backend"
	"github.com/ispc-texcomp/go-texcomp/internal/logger"
	"github.com/ispc-texcomp/go-texcomp/texcomp"
)

// LogFlags are the logging flags every command embeds.
type LogFlags struct {
	LogLevel string `name:"log-level" placeholder:"LEVEL" help:"${loglevelhelp}" enum:"${loglevels}" default:""`
	LogFile  string `name:"log-file" placeholder:"PATH" help:"${logfilehelp}"`
	LogColor string `name:"log-color" placeholder:"(always|auto|never)" help:"${logcolorhelp}" enum:"${logcolors}" default:""`
	Verbose  bool   `name:"verbose" short:"v" help:"Log every compression at debug level. Ignored when --log-level is set."`
}

// LoggerFlags converts the flags for logger.Init.
func (f *LogFlags) LoggerFlags() *logger.LogFlags {
	level := f.LogLevel
	if level == "" && f.Verbose {
		level = "debug"
	}
	return &logger.LogFlags{
		LogColor: &f.LogColor,
		LogFile:  &f.LogFile,
		LogLevel: &level,
	}
}

// Vars returns the interpolation variables used by the command structs.
// Every enum also accepts the empty string so flags can default to unset.
func Vars() kong.Vars {
	formats := make([]string, 0, len(texcomp.Formats()))
	for _, f := range texcomp.Formats() {
		formats = append(formats, strings.ToLower(f.String()))
	}
	levels := append(logger.Levels(), "warn")
	slices.Sort(levels)

	return kong.Vars{
		"formats":      enum(formats),
		"containers":   enum(container.Kinds()),
		"impls":        enum(backend.Impls()),
		"loglevels":    enum(levels),
		"logcolors":    enum(logger.Colors()),
		"loglevelhelp": logger.LevelsHelp,
		"logfilehelp":  logger.FileFlagHelp,
		"logcolorhelp": logger.ColorFlagHelp,
	}
}

func enum(values []string) string {
	return strings.Join(values, ",") + ","
}

// New builds the parser for cmd.
func New(cmd any, name, description string) (*kong.Kong, error) {
	return kong.New(cmd,
		Vars(),
		kong.Name(name),
		kong.Description(description),
		kong.HelpOptions{
			Compact:   true,
			FlagsLast: true,
		},
		kong.UsageOnError())
}

// Parse parses the process arguments into cmd and initializes the logger
// from flags. Parse errors exit the process.
func Parse(cmd any, name, description string, flags *LogFlags) *kong.Context {
	parser, err := New(cmd, name, description)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	logger.InitBestEffort(flags.LoggerFlags())
	return ctx
}
