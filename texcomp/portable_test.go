package texcomp

import (
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func randomRGBA(t *testing.T, w, h int, seed int64) *Surface {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	buf := make([]byte, w*h*4)
	r.Read(buf)
	s, err := NewSurface(buf, w, h, 0)
	require.NoError(t, err)
	return s
}

// smoothRGBA returns a surface whose 4x4 blocks are well approximated by a
// single colour line.
func smoothRGBA(t *testing.T, w, h int) *Surface {
	t.Helper()
	buf := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			v := (x + y) * 255 / (w + h - 2)
			buf[i+0] = uint8(v)
			buf[i+1] = uint8(255 - v)
			buf[i+2] = uint8(v / 2)
			buf[i+3] = uint8(128 + v/2)
		}
	}
	s, err := NewSurface(buf, w, h, 0)
	require.NoError(t, err)
	return s
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func decodeBC4Block(block []byte) [16]uint8 {
	var out [16]uint8
	a0, a1 := block[0], block[1]
	var palette [8]uint8
	if a0 > a1 {
		palette = bc4Palette(a0, a1)
	} else {
		palette[0], palette[1] = a0, a1
		for i := 1; i <= 4; i++ {
			palette[1+i] = uint8(((5-i)*int(a0) + i*int(a1) + 2) / 5)
		}
		palette[6], palette[7] = 0, 255
	}
	var bits uint64
	for k := 0; k < 6; k++ {
		bits |= uint64(block[2+k]) << (8 * uint(k))
	}
	for i := range out {
		out[i] = palette[(bits>>(3*uint(i)))&7]
	}
	return out
}

func decodeBC7Mode6(t *testing.T, block []byte) [16][4]uint8 {
	t.Helper()
	r := newBlockReader(block)
	require.Equal(t, uint64(1<<6), r.read(7), "mode bits")
	var q [2][4]int
	for ch := 0; ch < 4; ch++ {
		q[0][ch] = int(r.read(7))
		q[1][ch] = int(r.read(7))
	}
	p0, p1 := int(r.read(1)), int(r.read(1))
	var out [16][4]uint8
	for i := 0; i < 16; i++ {
		n := uint(4)
		if i == 0 {
			n = 3
		}
		w := bc7Weights4[r.read(n)]
		for ch := 0; ch < 4; ch++ {
			e0 := q[0][ch]<<1 | p0
			e1 := q[1][ch]<<1 | p1
			out[i][ch] = uint8(bc7Interpolate(e0, e1, w))
		}
	}
	return out
}

func decodeBC6HMode11(t *testing.T, block []byte) [16][3]uint16 {
	t.Helper()
	r := newBlockReader(block)
	require.Equal(t, uint64(bc6hMode11), r.read(5), "mode bits")
	var q [2][3]int
	for e := 0; e < 2; e++ {
		for ch := 0; ch < 3; ch++ {
			q[e][ch] = int(r.read(10))
		}
	}
	var out [16][3]uint16
	for i := 0; i < 16; i++ {
		n := uint(4)
		if i == 0 {
			n = 3
		}
		w := bc7Weights4[r.read(n)]
		for ch := 0; ch < 3; ch++ {
			v := bc7Interpolate(bc6hUnquantize(q[0][ch]), bc6hUnquantize(q[1][ch]), w)
			out[i][ch] = bc6hFinishUnsigned(v)
		}
	}
	return out
}

func decodeETC1Individual(t *testing.T, block []byte) [16][3]uint8 {
	t.Helper()
	w := binary.BigEndian.Uint64(block)
	require.Zero(t, w>>33&1, "diff bit")
	flip := w>>32&1 == 1
	var base [2][3]int
	for ch := 0; ch < 3; ch++ {
		shift := uint(60 - 8*ch)
		base[0][ch] = expand4(int(w >> shift & 0xF))
		base[1][ch] = expand4(int(w >> (shift - 4) & 0xF))
	}
	tables := [2]int{int(w >> 37 & 7), int(w >> 34 & 7)}

	var out [16][3]uint8
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			j := uint(x*4 + y)
			mi := int(w>>(16+j)&1)<<1 | int(w>>j&1)
			sb := 0
			if etc1InSecond(x, y, flip) {
				sb = 1
			}
			m := etc1Modifier(tables[sb], mi)
			for ch := 0; ch < 3; ch++ {
				out[y*4+x][ch] = uint8(clampInt(base[sb][ch]+m, 0, 255))
			}
		}
	}
	return out
}

func TestPortableBC1_RoundTripDXT(t *testing.T) {
	src := smoothRGBA(t, 16, 16)
	dst := make([]byte, PayloadSize(FormatBC1, 16, 16, 4, 4))
	Portable().CompressBlocksBC1(src, dst)

	img, err := DecodeBC1(dst, 16, 16)
	require.NoError(t, err)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			want := src.pixel(x, y, 4)
			got := img.Pix[img.PixOffset(x, y):]
			for ch := 0; ch < 3; ch++ {
				if d := absDiff(got[ch], want[ch]); d > 24 {
					t.Fatalf("pixel (%d,%d) ch %d: got %d want %d", x, y, ch, got[ch], want[ch])
				}
			}
			require.Equal(t, uint8(255), got[3], "BC1 stays in four-colour mode")
		}
	}
}

func TestPortableBC1_SolidColourUsesSingleEndpoint(t *testing.T) {
	var blk rgbaBlock
	for i := range blk {
		blk[i] = [4]uint8{255, 0, 0, 255}
	}
	var out [8]byte
	encodeBC1Color(&blk, out[:])
	require.Equal(t, uint16(0xF800), binary.LittleEndian.Uint16(out[0:]))
	require.Equal(t, uint16(0xF800), binary.LittleEndian.Uint16(out[2:]))
	require.Zero(t, binary.LittleEndian.Uint32(out[4:]))
}

func TestPortableBC3_RoundTripDXT(t *testing.T) {
	src := smoothRGBA(t, 16, 16)
	dst := make([]byte, PayloadSize(FormatBC3, 16, 16, 4, 4))
	Portable().CompressBlocksBC3(src, dst)

	img, err := DecodeBC3(dst, 16, 16)
	require.NoError(t, err)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			want := src.pixel(x, y, 4)
			got := img.Pix[img.PixOffset(x, y):]
			for ch := 0; ch < 4; ch++ {
				if d := absDiff(got[ch], want[ch]); d > 24 {
					t.Fatalf("pixel (%d,%d) ch %d: got %d want %d", x, y, ch, got[ch], want[ch])
				}
			}
		}
	}
}

func TestPortableBC4BC5_Error(t *testing.T) {
	src := randomRGBA(t, 8, 8, 1)
	bc4 := make([]byte, PayloadSize(FormatBC4, 8, 8, 4, 4))
	bc5 := make([]byte, PayloadSize(FormatBC5, 8, 8, 4, 4))
	Portable().CompressBlocksBC4(src, bc4)
	Portable().CompressBlocksBC5(src, bc5)

	forEachBlock(src, 4, 4, func(x0, y0, i int) {
		r := decodeBC4Block(bc4[i*8:])
		r5 := decodeBC4Block(bc5[i*16:])
		g5 := decodeBC4Block(bc5[i*16+8:])
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				px := src.pixel(x0+x, y0+y, 4)
				k := y*4 + x
				// Half a ramp step of the widest possible range.
				require.LessOrEqual(t, absDiff(r[k], px[0]), 19)
				require.Equal(t, r[k], r5[k])
				require.LessOrEqual(t, absDiff(g5[k], px[1]), 19)
			}
		}
	})
}

func TestPortableBC4_FlatBlock(t *testing.T) {
	var blk rgbaBlock
	for i := range blk {
		blk[i] = [4]uint8{77, 0, 0, 0}
	}
	var out [8]byte
	encodeBC4Channel(&blk, 0, out[:])
	require.Equal(t, [8]byte{77, 77}, out)
}

func TestPortableBC7_Mode6(t *testing.T) {
	src := smoothRGBA(t, 8, 8)
	for _, settings := range []*BC7EncSettings{{Channels: 4}, GetProfileAlphaSlow()} {
		dst := make([]byte, PayloadSize(FormatBC7, 8, 8, 4, 4))
		Portable().CompressBlocksBC7(src, dst, settings)

		forEachBlock(src, 4, 4, func(x0, y0, i int) {
			got := decodeBC7Mode6(t, dst[i*16:i*16+16])
			for y := 0; y < 4; y++ {
				for x := 0; x < 4; x++ {
					want := src.pixel(x0+x, y0+y, 4)
					for ch := 0; ch < 4; ch++ {
						if d := absDiff(got[y*4+x][ch], want[ch]); d > 8 {
							t.Fatalf("block %d pixel %d ch %d: got %d want %d", i, y*4+x, ch, got[y*4+x][ch], want[ch])
						}
					}
				}
			}
		})
	}
}

func TestPortableBC7_OpaqueChannels(t *testing.T) {
	src := smoothRGBA(t, 4, 4)
	dst := make([]byte, 16)
	Portable().CompressBlocksBC7(src, dst, GetProfileBasic())
	for _, px := range decodeBC7Mode6(t, dst) {
		require.Equal(t, uint8(255), px[3])
	}
}

func TestPortableBC7_SolidRed(t *testing.T) {
	var blk rgbaBlock
	for i := range blk {
		blk[i] = [4]uint8{255, 0, 0, 255}
	}
	// Mode 6 shares one p-bit across the channels of an endpoint, so the
	// colour is reproduced to within one step.
	for _, channels := range []int{3, 4} {
		b := encodeBC7Mode6(&blk, channels, 0)
		var out [16]byte
		b.pack(out[:])
		for _, px := range decodeBC7Mode6(t, out[:]) {
			for ch, want := range blk[0] {
				require.LessOrEqual(t, absDiff(px[ch], want), 1, "channels %d ch %d", channels, ch)
			}
			if channels == 3 {
				require.Equal(t, uint8(255), px[3])
			}
		}
	}
}

func TestPortableBC7_RefinementNeverWorse(t *testing.T) {
	src := randomRGBA(t, 4, 4, 7)
	var blk rgbaBlock
	blk.load(src, 0, 0)

	blockErr := func(b bc7Mode6Block) int {
		var out [16]byte
		b.pack(out[:])
		total := 0
		for i, px := range decodeBC7Mode6(t, out[:]) {
			for ch := 0; ch < 4; ch++ {
				d := absDiff(px[ch], blk[i][ch])
				total += d * d
			}
		}
		return total
	}
	require.LessOrEqual(t, blockErr(encodeBC7Mode6(&blk, 4, 4)), blockErr(encodeBC7Mode6(&blk, 4, 0)))
}

func TestPortableBC6H_Mode11(t *testing.T) {
	const w, h = 8, 4
	s, err := AllocSurface(w, h, 8)
	require.NoError(t, err)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := s.pixel(x, y, 8)
			// Each channel stays inside one binade, where half bits are
			// linear in the value.
			v := float32(x+y) / 16
			for ch, f := range []float32{1 + v, 2 + 2*v, 0.5 + v/4, 1} {
				binary.LittleEndian.PutUint16(px[2*ch:], float16.Fromfloat32(f).Bits())
			}
		}
	}

	dst := make([]byte, PayloadSize(FormatBC6H, w, h, 4, 4))
	Portable().CompressBlocksBC6H(s, dst, GetProfileBC6HBasic())

	forEachBlock(s, 4, 4, func(x0, y0, i int) {
		got := decodeBC6HMode11(t, dst[i*16:i*16+16])
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				px := s.pixel(x0+x, y0+y, 8)
				for ch := 0; ch < 3; ch++ {
					want := float16.Frombits(binary.LittleEndian.Uint16(px[2*ch:])).Float32()
					gotF := float16.Frombits(got[y*4+x][ch]).Float32()
					require.InDelta(t, want, gotF, float64(0.05+0.05*want), "block %d pixel %d ch %d", i, y*4+x, ch)
				}
			}
		}
	})
}

func TestPortableBC6H_ClampsUnsignedRange(t *testing.T) {
	require.Equal(t, 0, halfToUnquantized(float16.Fromfloat32(-2).Bits()))
	require.Equal(t, 0, halfToUnquantized(float16.NaN().Bits()))
	require.Equal(t, halfToUnquantized(0x7BFF), halfToUnquantized(float16.Inf(1).Bits()))
	for _, h := range []uint16{0, 1, 0x3C00, 0x5000, 0x7BFF} {
		require.Equal(t, h, bc6hFinishUnsigned(halfToUnquantized(h)), "half %#04x", h)
	}
	require.Equal(t, 0, bc6hUnquantize(0))
	require.Equal(t, 0xFFFF, bc6hUnquantize(1023))
}

// lumaRGBA returns a surface whose channels rise together, the kind of
// variation ETC1's shared intensity modifier can follow.
func lumaRGBA(t *testing.T, w, h int) *Surface {
	t.Helper()
	buf := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			v := (x + y) * 255 / (w + h - 2)
			buf[i+0] = uint8(v)
			buf[i+1] = uint8(16 + v*7/8)
			buf[i+2] = uint8(64 + v/2)
			buf[i+3] = 255
		}
	}
	s, err := NewSurface(buf, w, h, 0)
	require.NoError(t, err)
	return s
}

func TestPortableETC1_Individual(t *testing.T) {
	src := lumaRGBA(t, 8, 8)
	for _, settings := range []*ETCEncSettings{{}, GetProfileETCSlow()} {
		dst := make([]byte, PayloadSize(FormatETC1, 8, 8, 4, 4))
		Portable().CompressBlocksETC1(src, dst, settings)

		forEachBlock(src, 4, 4, func(x0, y0, i int) {
			got := decodeETC1Individual(t, dst[i*8:i*8+8])
			for y := 0; y < 4; y++ {
				for x := 0; x < 4; x++ {
					want := src.pixel(x0+x, y0+y, 4)
					for ch := 0; ch < 3; ch++ {
						if d := absDiff(got[y*4+x][ch], want[ch]); d > 40 {
							t.Fatalf("block %d pixel (%d,%d) ch %d: got %d want %d", i, x, y, ch, got[y*4+x][ch], want[ch])
						}
					}
				}
			}
		})
	}
}

func TestPortableETC1_FlipSearch(t *testing.T) {
	// Top half black, bottom half white: only the vertical split fits.
	var blk rgbaBlock
	for i := 8; i < 16; i++ {
		blk[i] = [4]uint8{255, 255, 255, 255}
	}
	noFlip := encodeETC1Individual(&blk, false)
	require.Zero(t, noFlip>>32&1)

	flipped := encodeETC1Individual(&blk, true)
	require.Equal(t, uint64(1), flipped>>32&1)

	var out [8]byte
	binary.BigEndian.PutUint64(out[:], flipped)
	for i, px := range decodeETC1Individual(t, out[:]) {
		want := blk[i][0]
		require.LessOrEqual(t, absDiff(px[0], want), 8, "pixel %d", i)
	}
}

func TestPortableASTC_ConstBlocks(t *testing.T) {
	src := randomRGBA(t, 12, 10, 3)
	settings := GetProfileASTCAlphaFast(6, 5)
	dst := make([]byte, PayloadSize(FormatASTC, 12, 10, 6, 5))
	require.Len(t, dst, 4*16)
	Portable().CompressBlocksASTC(src, dst, settings)

	forEachBlock(src, 6, 5, func(x0, y0, i int) {
		var sum [4]int
		for y := 0; y < 5; y++ {
			for x := 0; x < 6; x++ {
				for ch, v := range src.pixel(x0+x, y0+y, 4) {
					sum[ch] += int(v)
				}
			}
		}
		c, ok := decodeASTCConstRGBA8(dst[i*16 : i*16+16])
		require.True(t, ok)
		for ch := 0; ch < 4; ch++ {
			require.Equal(t, uint8((sum[ch]+15)/30), c[ch])
		}
	})

	img, err := DecodeASTCConst(dst, 12, 10, 6, 5)
	require.NoError(t, err)
	require.Equal(t, 12, img.Bounds().Dx())

	opaque := GetProfileASTCFast(6, 5)
	Portable().CompressBlocksASTC(src, dst, opaque)
	c, _ := decodeASTCConstRGBA8(dst[:16])
	require.Equal(t, uint8(255), c[3])
}

func TestBlockWriter_CrossesWordBoundary(t *testing.T) {
	var w blockWriter
	w.write(0x3F, 60)
	w.write(0xABC, 12)
	w.write(1, 56)
	var out [16]byte
	w.flush(out[:])

	r := newBlockReader(out[:])
	require.Equal(t, uint64(0x3F), r.read(60))
	require.Equal(t, uint64(0xABC), r.read(12))
	require.Equal(t, uint64(1), r.read(56))
}
