package config_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ispc-texcomp/go-texcomp/config"
	"github.com/ispc-texcomp/go-texcomp/container"
	"github.com/ispc-texcomp/go-texcomp/texcomp"
)

func TestParse_BC7WithFields(t *testing.T) {
	c, err := config.Parse([]byte(`
format: bc7
profile: fast
fields:
  refineIterations: [2, 2, 2, 1, 2, 2, 2, 0]
  channels: 3
zstd: true
`))
	require.NoError(t, err)

	s, err := c.Settings()
	require.NoError(t, err)
	bc7, ok := s.(*texcomp.BC7EncSettings)
	require.True(t, ok)
	assert.Equal(t, [8]int32{2, 2, 2, 1, 2, 2, 2, 0}, bc7.RefineIterations)
	assert.Equal(t, int32(3), bc7.Channels)
	assert.Equal(t, texcomp.GetProfileFast().ModeSelection, bc7.ModeSelection)

	k, err := c.ContainerKind()
	require.NoError(t, err)
	assert.Equal(t, container.KindDDS, k)
	assert.True(t, c.GetPadToBlocks())
	assert.True(t, c.Zstd)
}

func TestParse_ASTCDefaults(t *testing.T) {
	c, err := config.Parse([]byte(`
format: astc
profile: alpha_fast
fields:
  block_width: 6
  block_height: 5
padToBlocks: false
impl: go
`))
	require.NoError(t, err)

	s, err := c.Settings()
	require.NoError(t, err)
	astc := s.(*texcomp.ASTCEncSettings)
	assert.Equal(t, int32(6), astc.BlockWidth)
	assert.Equal(t, int32(5), astc.BlockHeight)

	k, err := c.ContainerKind()
	require.NoError(t, err)
	assert.Equal(t, container.KindASTC, k)
	assert.False(t, c.GetPadToBlocks())
}

func TestParse_Invalid(t *testing.T) {
	for _, tc := range []struct {
		name string
		yaml string
		want string
	}{
		{"unknown key", "format: bc1\ncolour: red\n", "colour"},
		{"missing format", "profile: fast\n", "invalid 'format' field"},
		{"bad format", "format: bc2\n", "invalid 'format' field"},
		{"bad profile", "format: bc7\nprofile: turbo\n", "invalid 'profile' field"},
		{"settings on bc1", "format: bc1\nfields:\n  channels: 3\n", "invalid 'fields' field"},
		{"bad arity", "format: bc7\nfields:\n  refineIterations: [1, 2]\n", "list of 8 integers"},
		{"bad container", "format: etc1\ncontainer: dds\n", "invalid 'container' field"},
		{"unknown container", "format: bc1\ncontainer: ktx\n", "invalid 'container' field"},
		{"bad impl", "format: bc1\nimpl: gpu\n", "invalid 'impl' field"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: etc1\nprofile: slow\n"), 0o644))

	c, err := config.Load(path)
	require.NoError(t, err)
	k, err := c.ContainerKind()
	require.NoError(t, err)
	assert.Equal(t, container.KindPKM, k)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestSchemaJSON(t *testing.T) {
	data, err := config.SchemaJSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, string(data), `"padToBlocks"`)
	assert.Contains(t, string(data), `"bc6h"`)
	assert.Contains(t, string(data), `"required"`)
}
