//go:build ispc_native && cgo

// Package ispc holds the raw cgo calls into libispc_texcomp.
package ispc

/*
#cgo linux LDFLAGS: -lstdc++ -lm
#cgo darwin LDFLAGS: -lc++

#include "bridge.h"
*/
import "C"

import "unsafe"

// Surface is an rgba_surface whose pixels live in Go memory.
type Surface struct {
	Pix    []byte
	Width  int
	Height int
	Stride int
}

type BC7Settings struct {
	ModeSelection           [4]bool
	RefineIterations        [8]int32
	SkipMode2               bool
	FastSkipTresholdMode1   int32
	FastSkipTresholdMode3   int32
	FastSkipTresholdMode7   int32
	Mode45Channel0          int32
	RefineIterationsChannel int32
	Channels                int32
}

type BC6HSettings struct {
	SlowMode           bool
	FastMode           bool
	RefineIterations1p int32
	RefineIterations2p int32
	FastSkipTreshold   int32
}

type ASTCSettings struct {
	BlockWidth       int32
	BlockHeight      int32
	Channels         int32
	FastSkipTreshold int32
	RefineIterations int32
}

func ptr(b []byte) *C.uint8_t {
	if len(b) == 0 {
		return nil
	}
	return (*C.uint8_t)(unsafe.Pointer(&b[0]))
}

func dims(s Surface) (C.int, C.int, C.int) {
	return C.int(s.Width), C.int(s.Height), C.int(s.Stride)
}

func CompressBlocksBC1(src Surface, dst []byte) {
	w, h, stride := dims(src)
	C.texcomp_bc1(ptr(src.Pix), w, h, stride, ptr(dst))
}

func CompressBlocksBC3(src Surface, dst []byte) {
	w, h, stride := dims(src)
	C.texcomp_bc3(ptr(src.Pix), w, h, stride, ptr(dst))
}

func CompressBlocksBC4(src Surface, dst []byte) {
	w, h, stride := dims(src)
	C.texcomp_bc4(ptr(src.Pix), w, h, stride, ptr(dst))
}

func CompressBlocksBC5(src Surface, dst []byte) {
	w, h, stride := dims(src)
	C.texcomp_bc5(ptr(src.Pix), w, h, stride, ptr(dst))
}

func CompressBlocksBC6H(src Surface, dst []byte, s BC6HSettings) {
	cs := C.bc6h_enc_settings{
		slow_mode:           C.bool(s.SlowMode),
		fast_mode:           C.bool(s.FastMode),
		refineIterations_1p: C.int(s.RefineIterations1p),
		refineIterations_2p: C.int(s.RefineIterations2p),
		fastSkipTreshold:    C.int(s.FastSkipTreshold),
	}
	w, h, stride := dims(src)
	C.texcomp_bc6h(ptr(src.Pix), w, h, stride, ptr(dst), &cs)
}

func CompressBlocksBC7(src Surface, dst []byte, s BC7Settings) {
	var cs C.bc7_enc_settings
	for i, v := range s.ModeSelection {
		cs.mode_selection[i] = C.bool(v)
	}
	for i, v := range s.RefineIterations {
		cs.refineIterations[i] = C.int(v)
	}
	cs.skip_mode2 = C.bool(s.SkipMode2)
	cs.fastSkipTreshold_mode1 = C.int(s.FastSkipTresholdMode1)
	cs.fastSkipTreshold_mode3 = C.int(s.FastSkipTresholdMode3)
	cs.fastSkipTreshold_mode7 = C.int(s.FastSkipTresholdMode7)
	cs.mode45_channel0 = C.int(s.Mode45Channel0)
	cs.refineIterations_channel = C.int(s.RefineIterationsChannel)
	cs.channels = C.int(s.Channels)

	w, h, stride := dims(src)
	C.texcomp_bc7(ptr(src.Pix), w, h, stride, ptr(dst), &cs)
}

func CompressBlocksETC1(src Surface, dst []byte, fastSkipTreshold int32) {
	cs := C.etc_enc_settings{fastSkipTreshold: C.int(fastSkipTreshold)}
	w, h, stride := dims(src)
	C.texcomp_etc1(ptr(src.Pix), w, h, stride, ptr(dst), &cs)
}

func CompressBlocksASTC(src Surface, dst []byte, s ASTCSettings) {
	cs := C.astc_enc_settings{
		block_width:      C.int(s.BlockWidth),
		block_height:     C.int(s.BlockHeight),
		channels:         C.int(s.Channels),
		fastSkipTreshold: C.int(s.FastSkipTreshold),
		refineIterations: C.int(s.RefineIterations),
	}
	w, h, stride := dims(src)
	C.texcomp_astc(ptr(src.Pix), w, h, stride, ptr(dst), &cs)
}

func ReplicateBorders(dst, src Surface, x, y, bitsPerPixel int) {
	dw, dh, dstride := dims(dst)
	sw, sh, sstride := dims(src)
	C.texcomp_replicate_borders(
		ptr(dst.Pix), dw, dh, dstride,
		ptr(src.Pix), sw, sh, sstride,
		C.int(x), C.int(y), C.int(bitsPerPixel),
	)
}
