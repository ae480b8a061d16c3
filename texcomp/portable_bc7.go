package texcomp

import "math"

// bc7Weights4 are the BC7 interpolation weights for 4-bit indices.
var bc7Weights4 = [16]int{0, 4, 9, 13, 17, 21, 26, 30, 34, 38, 43, 47, 51, 55, 60, 64}

const bc7Mode6 = 6

// bc7Mode6Block is a mode 6 block before packing: two RGBA endpoints of
// seven bits per channel, one p-bit per endpoint and 16 four-bit indices.
type bc7Mode6Block struct {
	q   [2][4]uint8
	p   [2]uint8
	idx [16]uint8
}

func (b *bc7Mode6Block) endpoint(e int) [4]int {
	var c [4]int
	for ch := 0; ch < 4; ch++ {
		c[ch] = int(b.q[e][ch])<<1 | int(b.p[e])
	}
	return c
}

func bc7Interpolate(e0, e1, w int) int {
	return ((64-w)*e0 + w*e1 + 32) >> 6
}

// assignIndices picks the nearest palette entry for every pixel and returns
// the total squared error.
func (b *bc7Mode6Block) assignIndices(pts []vec4) float64 {
	e0, e1 := b.endpoint(0), b.endpoint(1)
	var palette [16]vec4
	for i, w := range bc7Weights4 {
		for ch := 0; ch < 4; ch++ {
			palette[i][ch] = float64(bc7Interpolate(e0[ch], e1[ch], w))
		}
	}

	var total float64
	for i, p := range pts {
		best, bestDist := 0, math.MaxFloat64
		for j := range palette {
			if d := distSq(p, palette[j]); d < bestDist {
				best, bestDist = j, d
			}
		}
		b.idx[i] = uint8(best)
		total += bestDist
	}
	return total
}

// quantizeEndpoint picks the p-bit and 7-bit channels closest to v. Opaque
// endpoints keep p = 1 so that alpha expands to exactly 255.
func quantizeEndpoint(v vec4, opaque bool) ([4]uint8, uint8) {
	var best [4]uint8
	bestP, bestErr := uint8(0), math.MaxFloat64
	for p := 0; p < 2; p++ {
		if opaque && p == 0 {
			continue
		}
		var q [4]uint8
		var err float64
		for ch := 0; ch < 4; ch++ {
			n := clampInt(int(math.Round((v[ch]-float64(p))/2)), 0, 127)
			q[ch] = uint8(n)
			d := float64(n<<1|p) - v[ch]
			err += d * d
		}
		if err < bestErr {
			best, bestP, bestErr = q, uint8(p), err
		}
	}
	return best, bestP
}

func (b *bc7Mode6Block) setEndpoints(e0, e1 vec4, opaque bool) {
	b.q[0], b.p[0] = quantizeEndpoint(e0, opaque)
	b.q[1], b.p[1] = quantizeEndpoint(e1, opaque)
}

// encodeBC7Mode6 fits a mode 6 block to blk. With channels == 3 the block is
// treated as opaque. refine is the number of least-squares endpoint passes.
func encodeBC7Mode6(blk *rgbaBlock, channels, refine int) bc7Mode6Block {
	opaque := channels == 3
	var pts [16]vec4
	for i, p := range blk {
		a := p[3]
		if opaque {
			a = 255
		}
		pts[i] = vec4{float64(p[0]), float64(p[1]), float64(p[2]), float64(a)}
	}

	var b bc7Mode6Block
	lo, hi := lineFit(pts[:], 4)
	b.setEndpoints(lo, hi, opaque)
	bestErr := b.assignIndices(pts[:])

	for pass := 0; pass < refine && bestErr > 0; pass++ {
		var t [16]float64
		for i, idx := range b.idx {
			t[i] = float64(bc7Weights4[idx]) / 64
		}
		e0, e1, ok := leastSquaresEndpoints(pts[:], t[:])
		if !ok {
			break
		}
		cand := b
		cand.setEndpoints(e0, e1, opaque)
		err := cand.assignIndices(pts[:])
		if err >= bestErr {
			break
		}
		b, bestErr = cand, err
	}

	// The anchor index (pixel 0) is stored without its top bit.
	if b.idx[0] >= 8 {
		b.q[0], b.q[1] = b.q[1], b.q[0]
		b.p[0], b.p[1] = b.p[1], b.p[0]
		for i := range b.idx {
			b.idx[i] = 15 - b.idx[i]
		}
	}
	return b
}

func (b *bc7Mode6Block) pack(out []byte) {
	var w blockWriter
	w.write(1<<bc7Mode6, bc7Mode6+1)
	for ch := 0; ch < 4; ch++ {
		w.write(uint64(b.q[0][ch]), 7)
		w.write(uint64(b.q[1][ch]), 7)
	}
	w.write(uint64(b.p[0]), 1)
	w.write(uint64(b.p[1]), 1)
	w.write(uint64(b.idx[0]), 3)
	for i := 1; i < 16; i++ {
		w.write(uint64(b.idx[i]), 4)
	}
	w.flush(out)
}

func (portableEncoder) CompressBlocksBC7(src *Surface, dst []byte, settings *BC7EncSettings) {
	channels := int(settings.Channels)
	refine := int(settings.RefineIterations[bc7Mode6])

	var blk rgbaBlock
	forEachBlock(src, 4, 4, func(x, y, i int) {
		blk.load(src, x, y)
		b := encodeBC7Mode6(&blk, channels, refine)
		b.pack(dst[i*16 : i*16+16])
	})
}
