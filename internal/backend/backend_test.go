package backend_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ispc-texcomp/go-texcomp/internal/backend"
	"github.com/ispc-texcomp/go-texcomp/texcomp"
	"github.com/ispc-texcomp/go-texcomp/texcomp/native"
)

func TestNewCompressor(t *testing.T) {
	for _, impl := range []string{"", "go", " Pure-Go "} {
		c, err := backend.NewCompressor(impl)
		require.NoError(t, err, impl)
		require.Equal(t, "go", c.Encoder().Name())
	}

	c, err := backend.NewCompressor("native")
	if native.Enabled() {
		require.NoError(t, err)
		require.Equal(t, "ispc", c.Encoder().Name())
	} else {
		require.Error(t, err)
		require.Equal(t, texcomp.ErrUnavailable, texcomp.ErrorCodeOf(err))
	}

	_, err = backend.NewCompressor("gpu")
	require.Error(t, err)
}
