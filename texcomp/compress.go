package texcomp

import (
	"github.com/sirupsen/logrus"

	"github.com/ispc-texcomp/go-texcomp/internal/logger"
)

const (
	minASTCBlock = 4
	maxASTCBlock = 8
)

func (c *Compressor) CompressBlocksBC1(src *Surface) ([]byte, error) {
	return c.compress(FormatBC1, src, nil, 4, 4, func(dst []byte) { c.enc.CompressBlocksBC1(src, dst) })
}

func (c *Compressor) CompressBlocksBC3(src *Surface) ([]byte, error) {
	return c.compress(FormatBC3, src, nil, 4, 4, func(dst []byte) { c.enc.CompressBlocksBC3(src, dst) })
}

func (c *Compressor) CompressBlocksBC4(src *Surface) ([]byte, error) {
	return c.compress(FormatBC4, src, nil, 4, 4, func(dst []byte) { c.enc.CompressBlocksBC4(src, dst) })
}

func (c *Compressor) CompressBlocksBC5(src *Surface) ([]byte, error) {
	return c.compress(FormatBC5, src, nil, 4, 4, func(dst []byte) { c.enc.CompressBlocksBC5(src, dst) })
}

func (c *Compressor) CompressBlocksBC6H(src *Surface, settings *BC6HEncSettings) ([]byte, error) {
	if src == nil {
		return nil, errNoSource()
	}
	if settings == nil {
		return nil, errSettingsType("BC6HEncSettings")
	}
	return c.compress(FormatBC6H, src, settings, 4, 4, func(dst []byte) { c.enc.CompressBlocksBC6H(src, dst, settings) })
}

func (c *Compressor) CompressBlocksBC7(src *Surface, settings *BC7EncSettings) ([]byte, error) {
	if src == nil {
		return nil, errNoSource()
	}
	if settings == nil {
		return nil, errSettingsType("BC7EncSettings")
	}
	return c.compress(FormatBC7, src, settings, 4, 4, func(dst []byte) { c.enc.CompressBlocksBC7(src, dst, settings) })
}

func (c *Compressor) CompressBlocksETC1(src *Surface, settings *ETCEncSettings) ([]byte, error) {
	if src == nil {
		return nil, errNoSource()
	}
	if settings == nil {
		return nil, errSettingsType("ETCEncSettings")
	}
	return c.compress(FormatETC1, src, settings, 4, 4, func(dst []byte) { c.enc.CompressBlocksETC1(src, dst, settings) })
}

func (c *Compressor) CompressBlocksASTC(src *Surface, settings *ASTCEncSettings) ([]byte, error) {
	if src == nil {
		return nil, errNoSource()
	}
	if settings == nil {
		return nil, errSettingsType("ASTCEncSettings")
	}
	if err := checkASTCBlock(settings); err != nil {
		return nil, err
	}
	bw, bh := int(settings.BlockWidth), int(settings.BlockHeight)
	return c.compress(FormatASTC, src, settings, bw, bh, func(dst []byte) { c.enc.CompressBlocksASTC(src, dst, settings) })
}

// CompressBlocks compresses src as f. settings must be the record matching f
// (a pointer or a value) and nil for BC1, BC3, BC4 and BC5.
func (c *Compressor) CompressBlocks(f Format, src *Surface, settings any) ([]byte, error) {
	switch f {
	case FormatBC1, FormatBC3, FormatBC4, FormatBC5:
		if settings != nil {
			return nil, invalidArgument("%s takes no settings, got %T", f, settings)
		}
	}

	switch f {
	case FormatBC1:
		return c.CompressBlocksBC1(src)
	case FormatBC3:
		return c.CompressBlocksBC3(src)
	case FormatBC4:
		return c.CompressBlocksBC4(src)
	case FormatBC5:
		return c.CompressBlocksBC5(src)
	case FormatBC6H:
		s, _ := settingsPtr[BC6HEncSettings](settings)
		return c.CompressBlocksBC6H(src, s)
	case FormatBC7:
		s, _ := settingsPtr[BC7EncSettings](settings)
		return c.CompressBlocksBC7(src, s)
	case FormatETC1:
		s, _ := settingsPtr[ETCEncSettings](settings)
		return c.CompressBlocksETC1(src, s)
	case FormatASTC:
		s, _ := settingsPtr[ASTCEncSettings](settings)
		return c.CompressBlocksASTC(src, s)
	default:
		return nil, invalidArgument("unknown format %v", f)
	}
}

func settingsPtr[S any](v any) (*S, bool) {
	switch s := v.(type) {
	case *S:
		return s, s != nil
	case S:
		return &s, true
	default:
		return nil, false
	}
}

// compress sizes and allocates the output, then runs the encoder over the
// whole blocks of src. The buffer is sized by the format's ratio; any tail
// past the encoded payload stays zero.
func (c *Compressor) compress(f Format, src *Surface, settings any, blockWidth, blockHeight int, run func(dst []byte)) ([]byte, error) {
	if src == nil {
		return nil, errNoSource()
	}
	if err := src.validate(f.BytesPerPixel()); err != nil {
		return nil, err
	}

	w, h := int(src.Width), int(src.Height)
	size := OutputSize(f, w, h)
	payload := PayloadSize(f, w, h, blockWidth, blockHeight)

	log := logger.Log.WithFields(logrus.Fields{
		"format":  f.String(),
		"encoder": c.enc.Name(),
		"width":   w,
		"height":  h,
		"stride":  int(src.Stride),
	})
	if settings != nil {
		log = log.WithField("settings", settings)
	}
	log.Debugf("compressing %s", src)

	dst := make([]byte, size)
	if payload > 0 {
		run(dst)
	}

	log.WithFields(logrus.Fields{"bytes": len(dst), "payload": payload}).Debugf("compressed %s", f)
	return dst, nil
}

func checkASTCBlock(s *ASTCEncSettings) error {
	if s.BlockWidth < minASTCBlock || s.BlockWidth > maxASTCBlock ||
		s.BlockHeight < minASTCBlock || s.BlockHeight > maxASTCBlock {
		return invalidArgument("ASTC block %dx%d is outside %dx%d..%dx%d",
			s.BlockWidth, s.BlockHeight, minASTCBlock, minASTCBlock, maxASTCBlock, maxASTCBlock)
	}
	return nil
}

func errNoSource() error {
	return invalidArgument("src must be a RGBASurface")
}

func errSettingsType(name string) error {
	return invalidArgument("settings must be a %s", name)
}
