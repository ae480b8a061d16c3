//go:build ispc_native && cgo

package native

import (
	"github.com/ispc-texcomp/go-texcomp/texcomp"
	"github.com/ispc-texcomp/go-texcomp/texcomp/native/internal/ispc"
)

func Enabled() bool { return true }

// NewEncoder returns the ispc_texcomp encoder. It holds no state and is safe
// for concurrent use.
func NewEncoder() (texcomp.Encoder, error) { return ispcEncoder{}, nil }

type ispcEncoder struct{}

func (ispcEncoder) Name() string { return "ispc" }

func surface(s *texcomp.Surface) ispc.Surface {
	return ispc.Surface{
		Pix:    s.Bytes(),
		Width:  int(s.Width),
		Height: int(s.Height),
		Stride: int(s.Stride),
	}
}

func (ispcEncoder) CompressBlocksBC1(src *texcomp.Surface, dst []byte) {
	ispc.CompressBlocksBC1(surface(src), dst)
}

func (ispcEncoder) CompressBlocksBC3(src *texcomp.Surface, dst []byte) {
	ispc.CompressBlocksBC3(surface(src), dst)
}

func (ispcEncoder) CompressBlocksBC4(src *texcomp.Surface, dst []byte) {
	ispc.CompressBlocksBC4(surface(src), dst)
}

func (ispcEncoder) CompressBlocksBC5(src *texcomp.Surface, dst []byte) {
	ispc.CompressBlocksBC5(surface(src), dst)
}

func (ispcEncoder) CompressBlocksBC6H(src *texcomp.Surface, dst []byte, s *texcomp.BC6HEncSettings) {
	ispc.CompressBlocksBC6H(surface(src), dst, ispc.BC6HSettings{
		SlowMode:           s.SlowMode,
		FastMode:           s.FastMode,
		RefineIterations1p: s.RefineIterations1p,
		RefineIterations2p: s.RefineIterations2p,
		FastSkipTreshold:   s.FastSkipTreshold,
	})
}

func (ispcEncoder) CompressBlocksBC7(src *texcomp.Surface, dst []byte, s *texcomp.BC7EncSettings) {
	ispc.CompressBlocksBC7(surface(src), dst, ispc.BC7Settings{
		ModeSelection:           s.ModeSelection,
		RefineIterations:        s.RefineIterations,
		SkipMode2:               s.SkipMode2,
		FastSkipTresholdMode1:   s.FastSkipTresholdMode1,
		FastSkipTresholdMode3:   s.FastSkipTresholdMode3,
		FastSkipTresholdMode7:   s.FastSkipTresholdMode7,
		Mode45Channel0:          s.Mode45Channel0,
		RefineIterationsChannel: s.RefineIterationsChannel,
		Channels:                s.Channels,
	})
}

func (ispcEncoder) CompressBlocksETC1(src *texcomp.Surface, dst []byte, s *texcomp.ETCEncSettings) {
	ispc.CompressBlocksETC1(surface(src), dst, s.FastSkipTreshold)
}

func (ispcEncoder) CompressBlocksASTC(src *texcomp.Surface, dst []byte, s *texcomp.ASTCEncSettings) {
	ispc.CompressBlocksASTC(surface(src), dst, ispc.ASTCSettings{
		BlockWidth:       s.BlockWidth,
		BlockHeight:      s.BlockHeight,
		Channels:         s.Channels,
		FastSkipTreshold: s.FastSkipTreshold,
		RefineIterations: s.RefineIterations,
	})
}

func (ispcEncoder) ReplicateBorders(dst, src *texcomp.Surface, x, y, bitsPerPixel int) {
	ispc.ReplicateBorders(surface(dst), surface(src), x, y, bitsPerPixel)
}
