package texcomp_test

import (
	"encoding/binary"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/x448/float16"

	"github.com/ispc-texcomp/go-texcomp/texcomp"
)

func TestSurfaceFromImage_BorrowsNRGBA(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	img.SetNRGBA(1, 2, color.NRGBA{R: 10, G: 20, B: 30, A: 40})

	s, err := texcomp.SurfaceFromImage(img)
	require.NoError(t, err)
	require.Equal(t, texcomp.Borrowed, s.Ownership())
	require.Equal(t, int32(32), s.Stride)

	img.Pix[0] = 99
	require.Equal(t, byte(99), s.Bytes()[0])
	require.Equal(t, []byte{10, 20, 30, 40}, pixelAt(s, 1, 2))
}

func TestSurfaceFromImage_BorrowsSubImageAtOrigin(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{R: 40, G: 80, B: 120, A: 255}), image.Point{}, draw.Src)
	sub := img.SubImage(image.Rect(0, 0, 4, 4)).(*image.RGBA)

	s, err := texcomp.SurfaceFromImage(sub)
	require.NoError(t, err)
	require.Equal(t, texcomp.Borrowed, s.Ownership())
	require.Equal(t, int32(4), s.Width)
	require.Equal(t, int32(32), s.Stride)

	out, err := texcomp.CompressBlocksBC1(s)
	require.NoError(t, err)
	require.Len(t, out, 8)
}

func TestSurfaceFromImage_UnpremultipliesTranslucentRGBA(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{R: 40, G: 80, B: 120, A: 255}), image.Point{}, draw.Src)
	img.SetRGBA(1, 2, color.RGBA{R: 50, G: 0, B: 64, A: 128})

	s, err := texcomp.SurfaceFromImage(img)
	require.NoError(t, err)
	require.Equal(t, texcomp.Owned, s.Ownership())

	px := pixelAt(s, 1, 2)
	require.InDelta(t, 99, int(px[0]), 1)
	require.Equal(t, byte(0), px[1])
	require.InDelta(t, 127, int(px[2]), 1)
	require.Equal(t, byte(128), px[3])
	require.Equal(t, []byte{40, 80, 120, 255}, pixelAt(s, 0, 0))

	img.Pix[0] = 7
	require.Equal(t, byte(40), s.Bytes()[0])
}

func TestSurfaceFromImage_ConvertsOtherImages(t *testing.T) {
	gray := image.NewGray(image.Rect(2, 2, 6, 6))
	gray.SetGray(3, 4, color.Gray{Y: 200})

	s, err := texcomp.SurfaceFromImage(gray)
	require.NoError(t, err)
	require.Equal(t, texcomp.Owned, s.Ownership())
	require.Equal(t, int32(4), s.Width)
	require.Equal(t, []byte{200, 200, 200, 255}, pixelAt(s, 1, 2))

	_, err = texcomp.SurfaceFromImage(nil)
	require.True(t, texcomp.IsInvalidArgument(err))
	_, err = texcomp.SurfaceFromImage(image.NewRGBA(image.Rectangle{}))
	require.True(t, texcomp.IsInvalidArgument(err))
}

func TestSurfaceFromImageF16(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 0, B: 51, A: 255})

	s, err := texcomp.SurfaceFromImageF16(img)
	require.NoError(t, err)
	require.Equal(t, int32(32), s.Stride)

	px := s.Bytes()[:8]
	half := func(i int) float32 {
		return float16.Frombits(binary.LittleEndian.Uint16(px[2*i:])).Float32()
	}
	require.InDelta(t, 1.0, half(0), 1e-3)
	require.InDelta(t, 0.0, half(1), 1e-3)
	require.InDelta(t, 0.2, half(2), 1e-3)
	require.InDelta(t, 1.0, half(3), 1e-3)

	out, err := texcomp.CompressBlocksBC6H(s, texcomp.GetProfileBC6HVeryFast())
	require.NoError(t, err)
	require.Len(t, out, 16)
}
