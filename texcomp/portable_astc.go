package texcomp

import "encoding/binary"

const astcBlockBytes = 16

// astcConstPrefix starts a 2D void-extent block holding UNORM16 colour, with
// the extent coordinates all ones ("covers nothing in particular").
var astcConstPrefix = [8]byte{0xFC, 0xFD, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}

// encodeASTCConstRGBA8 writes a constant-colour block for an RGBA8 value,
// widening each channel to UNORM16 by replication (v*257).
func encodeASTCConstRGBA8(out []byte, c [4]uint8) {
	copy(out[:8], astcConstPrefix[:])
	for ch := 0; ch < 4; ch++ {
		binary.LittleEndian.PutUint16(out[8+2*ch:], uint16(c[ch])*257)
	}
}

// decodeASTCConstRGBA8 reads back a block written by encodeASTCConstRGBA8.
func decodeASTCConstRGBA8(block []byte) ([4]uint8, bool) {
	var c [4]uint8
	if len(block) < astcBlockBytes || [8]byte(block[:8]) != astcConstPrefix {
		return c, false
	}
	for ch := 0; ch < 4; ch++ {
		v := binary.LittleEndian.Uint16(block[8+2*ch:])
		c[ch] = uint8((uint32(v) + 128) / 257)
	}
	return c, true
}

// CompressBlocksASTC writes one void-extent block per footprint holding the
// rounded average of its pixels. With Channels == 3 the alpha is opaque.
func (portableEncoder) CompressBlocksASTC(src *Surface, dst []byte, settings *ASTCEncSettings) {
	bw, bh := int(settings.BlockWidth), int(settings.BlockHeight)
	n := bw * bh

	forEachBlock(src, bw, bh, func(x0, y0, i int) {
		var sum [4]int
		for y := 0; y < bh; y++ {
			for x := 0; x < bw; x++ {
				px := src.pixel(x0+x, y0+y, 4)
				for ch := 0; ch < 4; ch++ {
					sum[ch] += int(px[ch])
				}
			}
		}
		var avg [4]uint8
		for ch := 0; ch < 4; ch++ {
			avg[ch] = uint8((sum[ch] + n/2) / n)
		}
		if settings.Channels == 3 {
			avg[3] = 255
		}
		encodeASTCConstRGBA8(dst[i*astcBlockBytes:(i+1)*astcBlockBytes], avg)
	})
}
