//go:build ispc_native && cgo

package native_test

import (
	"testing"

	"github.com/ispc-texcomp/go-texcomp/texcomp"
	"github.com/ispc-texcomp/go-texcomp/texcomp/native"
)

func newCompressor(t *testing.T) *texcomp.Compressor {
	t.Helper()
	if !native.Enabled() {
		t.Fatalf("native.Enabled() = false; want true")
	}
	enc, err := native.NewEncoder()
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}
	if enc.Name() != "ispc" {
		t.Fatalf("Name() = %q; want ispc", enc.Name())
	}
	return texcomp.NewCompressor(enc)
}

func solid(t *testing.T, w, h int, c [4]byte) *texcomp.Surface {
	t.Helper()
	buf := make([]byte, w*h*4)
	for i := 0; i < len(buf); i += 4 {
		copy(buf[i:], c[:])
	}
	s, err := texcomp.NewSurface(buf, w, h, 0)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	return s
}

func TestNative_BC1SolidRedRoundTrip(t *testing.T) {
	c := newCompressor(t)
	out, err := c.CompressBlocksBC1(solid(t, 8, 8, [4]byte{255, 0, 0, 255}))
	if err != nil {
		t.Fatalf("CompressBlocksBC1: %v", err)
	}
	img, err := texcomp.DecodeBC1(out, 8, 8)
	if err != nil {
		t.Fatalf("DecodeBC1: %v", err)
	}
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] < 248 || img.Pix[i+1] > 4 || img.Pix[i+2] > 4 {
			t.Fatalf("pixel %d = %v; want red", i/4, img.Pix[i:i+4])
		}
	}
}

func TestNative_OutputSizes(t *testing.T) {
	c := newCompressor(t)
	src := solid(t, 16, 16, [4]byte{10, 20, 30, 40})
	f16, err := texcomp.AllocSurface(16, 16, 8)
	if err != nil {
		t.Fatalf("AllocSurface: %v", err)
	}

	for _, tc := range []struct {
		name string
		run  func() ([]byte, error)
		want int
	}{
		{"BC1", func() ([]byte, error) { return c.CompressBlocksBC1(src) }, 128},
		{"BC3", func() ([]byte, error) { return c.CompressBlocksBC3(src) }, 256},
		{"BC4", func() ([]byte, error) { return c.CompressBlocksBC4(src) }, 128},
		{"BC5", func() ([]byte, error) { return c.CompressBlocksBC5(src) }, 256},
		{"BC6H", func() ([]byte, error) { return c.CompressBlocksBC6H(f16, texcomp.GetProfileBC6HVeryFast()) }, 256},
		{"BC7", func() ([]byte, error) { return c.CompressBlocksBC7(src, texcomp.GetProfileAlphaVeryFast()) }, 256},
		{"ETC1", func() ([]byte, error) { return c.CompressBlocksETC1(src, texcomp.GetProfileETCSlow()) }, 256},
		{"ASTC", func() ([]byte, error) { return c.CompressBlocksASTC(src, texcomp.GetProfileASTCAlphaFast(4, 4)) }, 256},
	} {
		t.Run(tc.name, func(t *testing.T) {
			out, err := tc.run()
			if err != nil {
				t.Fatalf("compress: %v", err)
			}
			if len(out) != tc.want {
				t.Fatalf("len = %d; want %d", len(out), tc.want)
			}
		})
	}
}

func TestNative_ReplicateBorders(t *testing.T) {
	c := newCompressor(t)
	src := solid(t, 3, 3, [4]byte{1, 2, 3, 4})
	dst, err := texcomp.AllocSurface(4, 4, 4)
	if err != nil {
		t.Fatalf("AllocSurface: %v", err)
	}
	if err := c.ReplicateBorders(dst, src, 0, 0, 32); err != nil {
		t.Fatalf("ReplicateBorders: %v", err)
	}
	b := dst.Bytes()
	for i := 0; i < len(b); i += 4 {
		if b[i] != 1 || b[i+3] != 4 {
			t.Fatalf("pixel %d = %v; want [1 2 3 4]", i/4, b[i:i+4])
		}
	}
}
