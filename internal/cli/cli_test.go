package cli_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ispc-texcomp/go-texcomp/internal/cli"
)

type testCmd struct {
	Format string `name:"format" enum:"${formats}" default:""`
	Impl   string `name:"impl" enum:"${impls}" default:"go"`
	cli.LogFlags
}

func parse(t *testing.T, args ...string) (*testCmd, error) {
	t.Helper()
	cmd := &testCmd{}
	parser, err := cli.New(cmd, "texcomptest", "")
	require.NoError(t, err)
	_, err = parser.Parse(args)
	return cmd, err
}

func TestVars(t *testing.T) {
	vars := cli.Vars()
	assert.Equal(t, "bc1,bc3,bc4,bc5,bc6h,bc7,etc1,astc,", vars["formats"])
	assert.Equal(t, "go,native,", vars["impls"])
	assert.True(t, strings.Contains(vars["loglevels"], "warn,"))
	assert.True(t, strings.Contains(vars["loglevels"], "warning,"))
}

func TestParse_Defaults(t *testing.T) {
	cmd, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, "", cmd.Format)
	assert.Equal(t, "go", cmd.Impl)

	flags := cmd.LoggerFlags()
	assert.Equal(t, "", *flags.LogLevel)
	assert.Equal(t, "", *flags.LogFile)
}

func TestParse_LogFlags(t *testing.T) {
	cmd, err := parse(t, "--format=bc6h", "--log-level=warn", "--log-color=never", "-v")
	require.NoError(t, err)
	assert.Equal(t, "bc6h", cmd.Format)
	assert.Equal(t, "warn", *cmd.LoggerFlags().LogLevel)
	assert.Equal(t, "never", *cmd.LoggerFlags().LogColor)

	_, err = parse(t, "--log-level=loud")
	require.Error(t, err)
	_, err = parse(t, "--format=dxt9")
	require.Error(t, err)
}

func TestVerbose(t *testing.T) {
	cmd, err := parse(t, "--verbose")
	require.NoError(t, err)
	assert.Equal(t, "debug", *cmd.LoggerFlags().LogLevel)
}
