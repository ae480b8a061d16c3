package texcomp

// portableEncoder is the pure-Go backend. It writes valid blocks for every
// format using a single mode per format; it does not try to match the
// quality or the exact output of ispc_texcomp.
type portableEncoder struct{}

// Portable returns the pure-Go Encoder.
func Portable() Encoder { return portableEncoder{} }

func (portableEncoder) Name() string { return "go" }

// forEachBlock calls fn for every whole bw x bh block of src in raster order.
// i is the block's index in the output.
func forEachBlock(src *Surface, bw, bh int, fn func(bx, by, i int)) {
	blocksX := int(src.Width) / bw
	blocksY := int(src.Height) / bh
	for by := 0; by < blocksY; by++ {
		for bx := 0; bx < blocksX; bx++ {
			fn(bx*bw, by*bh, by*blocksX+bx)
		}
	}
}

// rgbaBlock holds the 16 RGBA8 pixels of a 4x4 block in row-major order.
type rgbaBlock [16][4]uint8

func (b *rgbaBlock) load(src *Surface, x0, y0 int) {
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			copy(b[y*4+x][:], src.pixel(x0+x, y0+y, 4))
		}
	}
}

func (portableEncoder) ReplicateBorders(dst, src *Surface, x, y, bitsPerPixel int) {
	bpp := bitsPerPixel / 8
	inPlace := aliases(dst, src, x, y, bpp)
	sw, sh := int(src.Width), int(src.Height)

	for dy := 0; dy < int(dst.Height); dy++ {
		sy := min(y+dy, sh-1)
		for dx := 0; dx < int(dst.Width); dx++ {
			if inPlace && x+dx < sw && y+dy < sh {
				continue
			}
			sx := min(x+dx, sw-1)
			copy(dst.pixel(dx, dy, bpp), src.pixel(sx, sy, bpp))
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
