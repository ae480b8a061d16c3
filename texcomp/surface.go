package texcomp

import (
	"bytes"
	"fmt"
	"math"
)

// Ownership records whether a Surface wraps a caller buffer or its own.
type Ownership uint8

const (
	// Borrowed surfaces reference a caller-supplied buffer without copying it.
	// The caller keeps the buffer alive and must not write to it while a
	// compression call that reads the surface is running.
	Borrowed Ownership = iota
	// Owned surfaces hold a buffer allocated or copied by this package.
	Owned
)

func (o Ownership) String() string {
	switch o {
	case Borrowed:
		return "borrowed"
	case Owned:
		return "owned"
	default:
		return fmt.Sprintf("Ownership(%d)", uint8(o))
	}
}

// Surface describes a 2D pixel buffer: Height rows of Width pixels, the start
// of each row Stride bytes after the previous one. It mirrors ispc_texcomp's
// rgba_surface.
//
// Width, Height and Stride may be changed after construction; every
// compression call checks them against the buffer again.
type Surface struct {
	Width  int32
	Height int32
	Stride int32

	buf []byte
	own Ownership
}

// NewSurface wraps buf without copying it.
//
// A zero stride is derived as len(buf)/height (truncating). A non-zero stride
// must satisfy stride*height < len(buf).
func NewSurface(buf []byte, width, height, stride int) (*Surface, error) {
	if len(buf) == 0 {
		return nil, invalidArgument("The src attribute value must be set!")
	}
	if width <= 0 || height <= 0 {
		return nil, invalidArgument("surface dimensions must be positive, got %dx%d", width, height)
	}
	if stride < 0 {
		return nil, invalidArgument("stride must not be negative, got %d", stride)
	}

	if stride == 0 {
		stride = len(buf) / height
	} else if stride*height >= len(buf) {
		return nil, invalidArgument("The stride value is too big! It has to be the size of a single row in bytes (e.g. for RGBA -> 4 * width)")
	}

	if width > math.MaxInt32 || height > math.MaxInt32 || stride > math.MaxInt32 {
		return nil, invalidArgument("surface %dx%d (stride %d) exceeds int32", width, height, stride)
	}

	return &Surface{
		Width:  int32(width),
		Height: int32(height),
		Stride: int32(stride),
		buf:    buf,
		own:    Borrowed,
	}, nil
}

// AllocSurface returns an owned, zeroed surface with tightly packed rows of
// bytesPerPixel-byte pixels.
func AllocSurface(width, height, bytesPerPixel int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, invalidArgument("surface dimensions must be positive, got %dx%d", width, height)
	}
	if bytesPerPixel != 4 && bytesPerPixel != 8 {
		return nil, invalidArgument("bytes per pixel must be 4 or 8, got %d", bytesPerPixel)
	}
	stride := width * bytesPerPixel
	if stride > math.MaxInt32 || height > math.MaxInt32 || stride*height/height != stride {
		return nil, invalidArgument("surface %dx%d exceeds int32", width, height)
	}
	return &Surface{
		Width:  int32(width),
		Height: int32(height),
		Stride: int32(stride),
		buf:    make([]byte, stride*height),
		own:    Owned,
	}, nil
}

// Bytes returns the raw pixel buffer. For a borrowed surface this is the
// caller's slice.
func (s *Surface) Bytes() []byte { return s.buf }

// SetBytes replaces the pixel buffer with a copy of b. The surface owns the
// copy; b is never referenced afterwards.
func (s *Surface) SetBytes(b []byte) {
	s.buf = bytes.Clone(b)
	s.own = Owned
}

// Ownership reports whether the buffer is borrowed from the caller or owned.
func (s *Surface) Ownership() Ownership { return s.own }

func (s *Surface) String() string {
	return fmt.Sprintf("<RGBA_Surface (w:%d, h:%d, s:%d)>", s.Width, s.Height, s.Stride)
}

// validate checks that every row of bytesPerPixel-byte pixels lies inside
// the buffer.
func (s *Surface) validate(bytesPerPixel int) error {
	if s.Width <= 0 || s.Height <= 0 {
		return invalidArgument("surface dimensions must be positive, got %dx%d", s.Width, s.Height)
	}
	row := int(s.Width) * bytesPerPixel
	if int(s.Stride) < row {
		return invalidArgument("stride %d is smaller than a row of %d pixels (%d bytes)", s.Stride, s.Width, row)
	}
	need := int(s.Stride)*(int(s.Height)-1) + row
	if len(s.buf) < need {
		return invalidArgument("surface buffer holds %d bytes, %s needs %d", len(s.buf), s, need)
	}
	return nil
}

// span returns the bytes from the first pixel to the last one. The surface
// must be valid.
func (s *Surface) span(bytesPerPixel int) []byte {
	return s.buf[:int(s.Stride)*(int(s.Height)-1)+int(s.Width)*bytesPerPixel]
}

// pixel returns the bytesPerPixel bytes of the pixel at (x, y).
func (s *Surface) pixel(x, y, bytesPerPixel int) []byte {
	off := y*int(s.Stride) + x*bytesPerPixel
	return s.buf[off : off+bytesPerPixel]
}
