package texcomp

import (
	"encoding/binary"
	"math"
)

func (portableEncoder) CompressBlocksBC1(src *Surface, dst []byte) {
	var blk rgbaBlock
	forEachBlock(src, 4, 4, func(x, y, i int) {
		blk.load(src, x, y)
		encodeBC1Color(&blk, dst[i*8:i*8+8])
	})
}

func (portableEncoder) CompressBlocksBC3(src *Surface, dst []byte) {
	var blk rgbaBlock
	forEachBlock(src, 4, 4, func(x, y, i int) {
		blk.load(src, x, y)
		out := dst[i*16 : i*16+16]
		encodeBC4Channel(&blk, 3, out[0:8])
		encodeBC1Color(&blk, out[8:16])
	})
}

func (portableEncoder) CompressBlocksBC4(src *Surface, dst []byte) {
	var blk rgbaBlock
	forEachBlock(src, 4, 4, func(x, y, i int) {
		blk.load(src, x, y)
		encodeBC4Channel(&blk, 0, dst[i*8:i*8+8])
	})
}

func (portableEncoder) CompressBlocksBC5(src *Surface, dst []byte) {
	var blk rgbaBlock
	forEachBlock(src, 4, 4, func(x, y, i int) {
		blk.load(src, x, y)
		out := dst[i*16 : i*16+16]
		encodeBC4Channel(&blk, 0, out[0:8])
		encodeBC4Channel(&blk, 1, out[8:16])
	})
}

// encodeBC1Color writes the 8-byte BC1 colour block for blk. Endpoints come
// from the principal axis of the block's colours; the block always uses the
// four-colour palette (c0 > c1), or a single colour when both endpoints
// quantise to the same value.
func encodeBC1Color(blk *rgbaBlock, out []byte) {
	var pts [16]vec4
	for i, p := range blk {
		pts[i] = vec4{float64(p[0]), float64(p[1]), float64(p[2])}
	}
	lo, hi := lineFit(pts[:], 3)

	c0 := rgbTo565f(hi[0], hi[1], hi[2])
	c1 := rgbTo565f(lo[0], lo[1], lo[2])
	if c0 < c1 {
		c0, c1 = c1, c0
	}

	var packed uint32
	if c0 != c1 {
		palette := bc1Palette(c0, c1)
		for i, p := range blk {
			best, bestDist := 0, math.MaxInt
			for j := range palette {
				dr := int(p[0]) - int(palette[j][0])
				dg := int(p[1]) - int(palette[j][1])
				db := int(p[2]) - int(palette[j][2])
				if d := dr*dr + dg*dg + db*db; d < bestDist {
					best, bestDist = j, d
				}
			}
			packed |= uint32(best) << (2 * uint(i))
		}
	}

	binary.LittleEndian.PutUint16(out[0:], c0)
	binary.LittleEndian.PutUint16(out[2:], c1)
	binary.LittleEndian.PutUint32(out[4:], packed)
}

// bc1Palette returns the four-colour palette of c0 > c1.
func bc1Palette(c0, c1 uint16) [4][3]uint8 {
	var palette [4][3]uint8
	palette[0] = decode565(c0)
	palette[1] = decode565(c1)
	for i := 0; i < 3; i++ {
		a, b := uint16(palette[0][i]), uint16(palette[1][i])
		palette[2][i] = uint8((2*a + b + 1) / 3)
		palette[3][i] = uint8((a + 2*b + 1) / 3)
	}
	return palette
}

// rgbTo565f rounds and clamps float RGB in [0, 255] to R5G6B5.
func rgbTo565f(r, g, b float64) uint16 {
	q := func(v float64, bits uint) uint32 {
		maxv := float64(uint32(1)<<bits - 1)
		return uint32(math.Round(math.Max(0, math.Min(255, v)) * maxv / 255))
	}
	return uint16(q(r, 5)<<11 | q(g, 6)<<5 | q(b, 5))
}

// decode565 expands R5G6B5 with bit replication.
func decode565(v uint16) [3]uint8 {
	r := uint8(v>>11) & 0x1F
	g := uint8(v>>5) & 0x3F
	b := uint8(v) & 0x1F
	return [3]uint8{r<<3 | r>>2, g<<2 | g>>4, b<<3 | b>>2}
}

// encodeBC4Channel writes the 8-byte BC4 block of channel ch of blk using the
// eight-value ramp between the channel's maximum (a0) and minimum (a1).
func encodeBC4Channel(blk *rgbaBlock, ch int, out []byte) {
	a0, a1 := uint8(0), uint8(255)
	for _, p := range blk {
		a0 = max(a0, p[ch])
		a1 = min(a1, p[ch])
	}

	var indices uint64
	if a0 != a1 {
		palette := bc4Palette(a0, a1)
		for i, p := range blk {
			best, bestDist := 0, math.MaxInt
			for j, v := range palette {
				d := int(p[ch]) - int(v)
				if d*d < bestDist {
					best, bestDist = j, d*d
				}
			}
			indices |= uint64(best) << (3 * uint(i))
		}
	}

	out[0], out[1] = a0, a1
	for k := 0; k < 6; k++ {
		out[2+k] = uint8(indices >> (8 * uint(k)))
	}
}

// bc4Palette returns the eight-value ramp for a0 > a1.
func bc4Palette(a0, a1 uint8) [8]uint8 {
	var palette [8]uint8
	palette[0], palette[1] = a0, a1
	for i := 1; i <= 6; i++ {
		num := (7-i)*int(a0) + i*int(a1)
		palette[1+i] = uint8((num + 3) / 7)
	}
	return palette
}
