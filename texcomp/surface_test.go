package texcomp_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ispc-texcomp/go-texcomp/texcomp"
)

func TestNewSurface_DerivesStride(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {4, 4}, {7, 3}, {64, 32}} {
		w, h := size[0], size[1]
		s, err := texcomp.NewSurface(make([]byte, w*h*4), w, h, 0)
		require.NoError(t, err, "%dx%d", w, h)
		require.Equal(t, int32(w*4), s.Stride, "%dx%d", w, h)
		require.Equal(t, texcomp.Borrowed, s.Ownership())
	}
}

func TestNewSurface_StrideBoundary(t *testing.T) {
	buf := make([]byte, 64)

	// stride*height == len is rejected.
	_, err := texcomp.NewSurface(buf, 4, 4, 16)
	require.True(t, texcomp.IsInvalidArgument(err), "err = %v", err)
	require.Contains(t, err.Error(), "The stride value is too big!")

	_, err = texcomp.NewSurface(buf, 4, 4, 32)
	require.True(t, texcomp.IsInvalidArgument(err), "err = %v", err)

	s, err := texcomp.NewSurface(make([]byte, 65), 4, 4, 16)
	require.NoError(t, err)
	require.Equal(t, int32(16), s.Stride)
}

func TestNewSurface_Invalid(t *testing.T) {
	cases := []struct {
		name         string
		buf          []byte
		w, h, stride int
	}{
		{"nil buffer", nil, 4, 4, 0},
		{"empty buffer", []byte{}, 4, 4, 0},
		{"zero width", make([]byte, 64), 0, 4, 0},
		{"negative height", make([]byte, 64), 4, -1, 0},
		{"negative stride", make([]byte, 64), 4, 4, -16},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := texcomp.NewSurface(c.buf, c.w, c.h, c.stride)
			if !texcomp.IsInvalidArgument(err) {
				t.Fatalf("NewSurface: got %v, want invalid argument", err)
			}
		})
	}
}

func TestNewSurface_TruncatedStride(t *testing.T) {
	// 3 rows of 10 bytes: stride derives as 10, short of 4 RGBA pixels. The
	// compression call catches it.
	s, err := texcomp.NewSurface(make([]byte, 30), 4, 3, 0)
	require.NoError(t, err)
	require.Equal(t, int32(10), s.Stride)

	_, err = texcomp.CompressBlocksBC1(s)
	require.True(t, texcomp.IsInvalidArgument(err), "err = %v", err)
}

func TestSurface_SetBytesCopies(t *testing.T) {
	orig := make([]byte, 64)
	s, err := texcomp.NewSurface(orig, 4, 4, 0)
	require.NoError(t, err)

	repl := make([]byte, 64)
	repl[0] = 7
	s.SetBytes(repl)
	repl[0] = 9

	require.Equal(t, texcomp.Owned, s.Ownership())
	require.Equal(t, byte(7), s.Bytes()[0])
	require.Equal(t, byte(0), orig[0])
}

func TestSurface_BytesIsBorrowed(t *testing.T) {
	buf := make([]byte, 16)
	s, err := texcomp.NewSurface(buf, 2, 2, 0)
	require.NoError(t, err)
	buf[3] = 42
	require.Equal(t, byte(42), s.Bytes()[3])
}

func TestSurface_String(t *testing.T) {
	s, err := texcomp.NewSurface(make([]byte, 8*2*4), 8, 2, 0)
	require.NoError(t, err)
	require.Equal(t, "<RGBA_Surface (w:8, h:2, s:32)>", s.String())
	require.True(t, strings.HasPrefix(s.Ownership().String(), "borrowed"))
}

func TestAllocSurface(t *testing.T) {
	s, err := texcomp.AllocSurface(5, 3, 8)
	require.NoError(t, err)
	require.Equal(t, int32(40), s.Stride)
	require.Len(t, s.Bytes(), 120)
	require.Equal(t, texcomp.Owned, s.Ownership())

	_, err = texcomp.AllocSurface(5, 3, 3)
	require.True(t, texcomp.IsInvalidArgument(err))
}
