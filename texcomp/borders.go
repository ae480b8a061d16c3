package texcomp

import "unsafe"

// ReplicateBorders fills dst with the dst-sized window of src whose top-left
// corner is (x, y). Reads past the right or bottom edge of src repeat its last
// column or row. bitsPerPixel is 32 (RGBA8) or 64 (RGBA16F) and applies to
// both surfaces.
//
// dst may alias src when its buffer starts at src pixel (x, y) and shares
// src's stride; pixels already in place are then left untouched. Any other
// overlap between the two surfaces is rejected.
func (c *Compressor) ReplicateBorders(dst, src *Surface, x, y, bitsPerPixel int) error {
	if src == nil || dst == nil {
		return errNoSource()
	}
	if bitsPerPixel != 32 && bitsPerPixel != 64 {
		return invalidArgument("bits per pixel must be 32 or 64, got %d", bitsPerPixel)
	}
	bpp := bitsPerPixel / 8
	if err := src.validate(bpp); err != nil {
		return err
	}
	if err := dst.validate(bpp); err != nil {
		return err
	}
	if x < 0 || y < 0 || x >= int(src.Width) || y >= int(src.Height) {
		return invalidArgument("origin (%d, %d) is outside %s", x, y, src)
	}
	if aliases(dst, src, x, y, bpp) {
		if dst.Stride != src.Stride {
			return invalidArgument("dst aliases src with a different stride (%d != %d)", dst.Stride, src.Stride)
		}
	} else if overlaps(dst.span(bpp), src.span(bpp)) {
		return invalidArgument("dst overlaps src but does not start at pixel (%d, %d)", x, y)
	}

	c.enc.ReplicateBorders(dst, src, x, y, bitsPerPixel)
	return nil
}

// PadToBlocks returns src when its size is a multiple of the block size, and
// otherwise an owned copy grown to the next multiple with replicated borders.
func (c *Compressor) PadToBlocks(src *Surface, blockWidth, blockHeight, bytesPerPixel int) (*Surface, error) {
	if src == nil {
		return nil, errNoSource()
	}
	if blockWidth <= 0 || blockHeight <= 0 {
		return nil, invalidArgument("block size must be positive, got %dx%d", blockWidth, blockHeight)
	}
	w, h := int(src.Width), int(src.Height)
	pw := (w + blockWidth - 1) / blockWidth * blockWidth
	ph := (h + blockHeight - 1) / blockHeight * blockHeight
	if pw == w && ph == h {
		return src, nil
	}

	dst, err := AllocSurface(pw, ph, bytesPerPixel)
	if err != nil {
		return nil, err
	}
	if err := c.ReplicateBorders(dst, src, 0, 0, bytesPerPixel*8); err != nil {
		return nil, err
	}
	return dst, nil
}

// PadToBlocks pads src with the default Compressor.
func PadToBlocks(src *Surface, blockWidth, blockHeight, bytesPerPixel int) (*Surface, error) {
	return defaultCompressor.PadToBlocks(src, blockWidth, blockHeight, bytesPerPixel)
}

// aliases reports whether dst's buffer begins at src pixel (x, y).
func aliases(dst, src *Surface, x, y, bpp int) bool {
	off := y*int(src.Stride) + x*bpp
	if len(dst.buf) == 0 || off >= len(src.buf) {
		return false
	}
	return &dst.buf[0] == &src.buf[off]
}

// overlaps reports whether a and b share any byte.
func overlaps(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	pa := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	pb := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return pa < pb+uintptr(len(b)) && pb < pa+uintptr(len(a))
}
