package texcomp

import (
	"encoding/binary"
	"math"

	"github.com/x448/float16"
)

const (
	// bc6hMode11 is the five-bit mode field of BC6H mode 11: one region,
	// 10-bit endpoints stored directly.
	bc6hMode11 = 0x03

	maxUnsignedHalf = 0x7BFF
)

// halfToUnquantized maps non-negative half bits onto the 16-bit domain BC6H
// interpolates in. It is the inverse of bc6hFinishUnsigned.
func halfToUnquantized(h uint16) int {
	f := float16.Frombits(h)
	if f.IsNaN() || f.Signbit() {
		return 0
	}
	if h > maxUnsignedHalf {
		h = maxUnsignedHalf
	}
	return (int(h)*64 + 30) / 31
}

// bc6hUnquantize expands a 10-bit unsigned endpoint.
func bc6hUnquantize(q int) int {
	switch q {
	case 0:
		return 0
	case 1023:
		return 0xFFFF
	default:
		return ((q << 16) + 0x8000) >> 10
	}
}

// bc6hFinishUnsigned turns an interpolated value back into half bits.
func bc6hFinishUnsigned(v int) uint16 {
	return uint16((v * 31) >> 6)
}

// bc6hQuantize returns the 10-bit endpoint whose expansion is closest to u.
func bc6hQuantize(u float64) int {
	guess := clampInt(int(math.Round((u-32)/64)), 0, 1023)
	best, bestErr := guess, math.MaxFloat64
	for q := max(guess-1, 0); q <= min(guess+1, 1023); q++ {
		if d := math.Abs(float64(bc6hUnquantize(q)) - u); d < bestErr {
			best, bestErr = q, d
		}
	}
	return best
}

type bc6hMode11Block struct {
	q   [2][3]int
	idx [16]uint8
}

func (b *bc6hMode11Block) setEndpoints(e0, e1 vec4) {
	for ch := 0; ch < 3; ch++ {
		b.q[0][ch] = bc6hQuantize(e0[ch])
		b.q[1][ch] = bc6hQuantize(e1[ch])
	}
}

func (b *bc6hMode11Block) assignIndices(pts []vec4) float64 {
	var palette [16]vec4
	for i, w := range bc7Weights4 {
		for ch := 0; ch < 3; ch++ {
			e0 := bc6hUnquantize(b.q[0][ch])
			e1 := bc6hUnquantize(b.q[1][ch])
			palette[i][ch] = float64(bc7Interpolate(e0, e1, w))
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

// encodeBC6HMode11 fits a mode 11 block to 16 RGB points in the unquantized
// domain. refine is the number of least-squares endpoint passes.
func encodeBC6HMode11(pts []vec4, refine int) bc6hMode11Block {
	var b bc6hMode11Block
	lo, hi := lineFit(pts, 3)
	b.setEndpoints(lo, hi)
	bestErr := b.assignIndices(pts)

	for pass := 0; pass < refine && bestErr > 0; pass++ {
		var t [16]float64
		for i, idx := range b.idx {
			t[i] = float64(bc7Weights4[idx]) / 64
		}
		e0, e1, ok := leastSquaresEndpoints(pts, t[:])
		if !ok {
			break
		}
		cand := b
		cand.setEndpoints(e0, e1)
		err := cand.assignIndices(pts)
		if err >= bestErr {
			break
		}
		b, bestErr = cand, err
	}

	if b.idx[0] >= 8 {
		b.q[0], b.q[1] = b.q[1], b.q[0]
		for i := range b.idx {
			b.idx[i] = 15 - b.idx[i]
		}
	}
	return b
}

func (b *bc6hMode11Block) pack(out []byte) {
	var w blockWriter
	w.write(bc6hMode11, 5)
	for e := 0; e < 2; e++ {
		for ch := 0; ch < 3; ch++ {
			w.write(uint64(b.q[e][ch]), 10)
		}
	}
	w.write(uint64(b.idx[0]), 3)
	for i := 1; i < 16; i++ {
		w.write(uint64(b.idx[i]), 4)
	}
	w.flush(out)
}

func (portableEncoder) CompressBlocksBC6H(src *Surface, dst []byte, settings *BC6HEncSettings) {
	refine := int(settings.RefineIterations1p)

	var pts [16]vec4
	forEachBlock(src, 4, 4, func(x0, y0, i int) {
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				px := src.pixel(x0+x, y0+y, 8)
				for ch := 0; ch < 3; ch++ {
					h := binary.LittleEndian.Uint16(px[2*ch:])
					pts[y*4+x][ch] = float64(halfToUnquantized(h))
				}
			}
		}
		b := encodeBC6HMode11(pts[:], refine)
		b.pack(dst[i*16 : i*16+16])
	})
}
