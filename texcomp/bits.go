package texcomp

import "encoding/binary"

// blockWriter packs fields LSB-first into a 128-bit block, the bit order of
// BC6H and BC7.
type blockWriter struct {
	lo, hi uint64
	pos    uint
}

func (w *blockWriter) write(v uint64, n uint) {
	v &= 1<<n - 1
	switch {
	case w.pos >= 64:
		w.hi |= v << (w.pos - 64)
	case w.pos+n <= 64:
		w.lo |= v << w.pos
	default:
		w.lo |= v << w.pos
		w.hi |= v >> (64 - w.pos)
	}
	w.pos += n
}

func (w *blockWriter) flush(dst []byte) {
	binary.LittleEndian.PutUint64(dst[0:8], w.lo)
	binary.LittleEndian.PutUint64(dst[8:16], w.hi)
}

// blockReader is the inverse of blockWriter.
type blockReader struct {
	lo, hi uint64
	pos    uint
}

func newBlockReader(block []byte) *blockReader {
	return &blockReader{
		lo: binary.LittleEndian.Uint64(block[0:8]),
		hi: binary.LittleEndian.Uint64(block[8:16]),
	}
}

func (r *blockReader) read(n uint) uint64 {
	var v uint64
	switch {
	case r.pos >= 64:
		v = r.hi >> (r.pos - 64)
	case r.pos+n <= 64:
		v = r.lo >> r.pos
	default:
		v = r.lo>>r.pos | r.hi<<(64-r.pos)
	}
	r.pos += n
	return v & (1<<n - 1)
}
