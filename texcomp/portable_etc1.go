package texcomp

import (
	"encoding/binary"
	"math"
)

// etc1Modifiers are the (a, b) magnitudes of the eight ETC1 intensity
// tables. A pixel index selects +a, +b, -a or -b.
var etc1Modifiers = [8][2]int{
	{2, 8}, {5, 17}, {9, 29}, {13, 42},
	{18, 60}, {24, 80}, {33, 106}, {47, 183},
}

// etc1Weights are the luma weights used to score candidate colours.
var etc1Weights = [3]int{299, 587, 114}

func etc1Modifier(table, mi int) int {
	m := etc1Modifiers[table]
	switch mi {
	case 0:
		return m[0]
	case 1:
		return m[1]
	case 2:
		return -m[0]
	default:
		return -m[1]
	}
}

// etc1InSecond reports whether (x, y) belongs to the second sub-block.
func etc1InSecond(x, y int, flip bool) bool {
	if flip {
		return y >= 2
	}
	return x >= 2
}

type etc1SubBlock struct {
	base  [3]int
	table int
	mi    [16]uint8
	err   int
}

func expand4(c int) int { return c<<4 | c }

// fitETC1SubBlock picks the 4-bit base colour and intensity table for the
// pixels of one half of blk.
func fitETC1SubBlock(blk *rgbaBlock, second, flip bool) etc1SubBlock {
	var sum [3]int
	n := 0
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if etc1InSecond(x, y, flip) != second {
				continue
			}
			for ch := 0; ch < 3; ch++ {
				sum[ch] += int(blk[y*4+x][ch])
			}
			n++
		}
	}

	var best etc1SubBlock
	best.err = math.MaxInt
	for ch := 0; ch < 3; ch++ {
		best.base[ch] = clampInt((sum[ch]*15+n*255/2)/(n*255), 0, 15)
	}

	for table := range etc1Modifiers {
		cand := etc1SubBlock{base: best.base, table: table}
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				if etc1InSecond(x, y, flip) != second {
					continue
				}
				p := blk[y*4+x]
				bestMI, bestD := 0, math.MaxInt
				for mi := 0; mi < 4; mi++ {
					m := etc1Modifier(table, mi)
					d := 0
					for ch := 0; ch < 3; ch++ {
						v := clampInt(expand4(cand.base[ch])+m, 0, 255)
						diff := int(p[ch]) - v
						d += etc1Weights[ch] * diff * diff
					}
					if d < bestD {
						bestMI, bestD = mi, d
					}
				}
				cand.mi[y*4+x] = uint8(bestMI)
				cand.err += bestD
			}
		}
		if cand.err < best.err {
			best = cand
		}
	}
	return best
}

// encodeETC1Individual returns the big-endian word of an individual-mode ETC1
// block. Both split orientations are tried when searchFlip is set.
func encodeETC1Individual(blk *rgbaBlock, searchFlip bool) uint64 {
	flips := []bool{false}
	if searchFlip {
		flips = append(flips, true)
	}

	var word uint64
	bestErr := math.MaxInt
	for _, flip := range flips {
		s0 := fitETC1SubBlock(blk, false, flip)
		s1 := fitETC1SubBlock(blk, true, flip)
		if s0.err+s1.err >= bestErr {
			continue
		}
		bestErr = s0.err + s1.err
		word = packETC1Individual(&s0, &s1, flip)
	}
	return word
}

func packETC1Individual(s0, s1 *etc1SubBlock, flip bool) uint64 {
	var w uint64
	w |= uint64(s0.base[0]) << 60
	w |= uint64(s1.base[0]) << 56
	w |= uint64(s0.base[1]) << 52
	w |= uint64(s1.base[1]) << 48
	w |= uint64(s0.base[2]) << 44
	w |= uint64(s1.base[2]) << 40
	w |= uint64(s0.table) << 37
	w |= uint64(s1.table) << 34
	// Bit 33 (diff) stays clear for individual mode.
	if flip {
		w |= 1 << 32
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			mi := s0.mi[y*4+x]
			if etc1InSecond(x, y, flip) {
				mi = s1.mi[y*4+x]
			}
			j := uint(x*4 + y)
			w |= uint64(mi>>1) << (16 + j)
			w |= uint64(mi&1) << j
		}
	}
	return w
}

func (portableEncoder) CompressBlocksETC1(src *Surface, dst []byte, settings *ETCEncSettings) {
	searchFlip := settings.FastSkipTreshold > 0

	var blk rgbaBlock
	forEachBlock(src, 4, 4, func(x, y, i int) {
		blk.load(src, x, y)
		binary.BigEndian.PutUint64(dst[i*8:], encodeETC1Individual(&blk, searchFlip))
	})
}
