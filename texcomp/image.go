package texcomp

import (
	"encoding/binary"
	"image"
	"image/color"

	"github.com/x448/float16"
	"golang.org/x/image/draw"
)

// SurfaceFromImage returns a straight-alpha RGBA8 surface for img.
// *image.NRGBA pixels, and *image.RGBA pixels of an opaque image, are borrowed
// without copying when the image starts at the origin of its buffer. Anything
// else, translucent premultiplied RGBA included, is converted into an owned
// buffer.
func SurfaceFromImage(img image.Image) (*Surface, error) {
	if img == nil {
		return nil, errNoSource()
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, invalidArgument("image %v is empty", b)
	}

	switch m := img.(type) {
	case *image.NRGBA:
		if s, ok := borrowPix(m.Pix, m.Stride, m.Rect, m.PixOffset(b.Min.X, b.Min.Y)); ok {
			return s, nil
		}
	case *image.RGBA:
		if !m.Opaque() {
			break
		}
		if s, ok := borrowPix(m.Pix, m.Stride, m.Rect, m.PixOffset(b.Min.X, b.Min.Y)); ok {
			return s, nil
		}
	}

	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	s, err := NewSurface(dst.Pix, b.Dx(), b.Dy(), 0)
	if err != nil {
		return nil, err
	}
	s.own = Owned
	return s, nil
}

// borrowPix wraps pix when the image's first pixel is the first byte of pix.
func borrowPix(pix []byte, stride int, r image.Rectangle, first int) (*Surface, bool) {
	w, h := r.Dx(), r.Dy()
	if first != 0 || len(pix) < stride*h {
		return nil, false
	}
	// A zero stride is derived from the length; an explicit one must leave
	// the buffer longer than stride*height.
	if len(pix) == stride*h {
		stride = 0
	}
	s, err := NewSurface(pix, w, h, stride)
	if err != nil || s.validate(4) != nil {
		return nil, false
	}
	return s, true
}

// SurfaceFromImageF16 converts img into an owned RGBA16F surface for BC6H.
// Channels are stored as linear values in [0, 1]; straight (non-premultiplied)
// alpha is used.
func SurfaceFromImageF16(img image.Image) (*Surface, error) {
	if img == nil {
		return nil, errNoSource()
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, invalidArgument("image %v is empty", b)
	}

	s, err := AllocSurface(b.Dx(), b.Dy(), 8)
	if err != nil {
		return nil, err
	}
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := color.NRGBA64Model.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA64)
			px := s.pixel(x, y, 8)
			for ch, v := range [4]uint16{c.R, c.G, c.B, c.A} {
				h := float16.Fromfloat32(float32(v) / 0xFFFF)
				binary.LittleEndian.PutUint16(px[2*ch:], h.Bits())
			}
		}
	}
	return s, nil
}
