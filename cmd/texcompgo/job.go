package main

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/ispc-texcomp/go-texcomp/config"
	"github.com/ispc-texcomp/go-texcomp/container"
	"github.com/ispc-texcomp/go-texcomp/internal/logger"
	"github.com/ispc-texcomp/go-texcomp/texcomp"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// job is a validated config bound to a compressor.
type job struct {
	format   texcomp.Format
	settings any
	kind     container.Kind
	pad      bool
	zstd     bool
	comp     *texcomp.Compressor
}

func newJob(cfg *config.Config, comp *texcomp.Compressor) (*job, error) {
	if err := cfg.IsValid(); err != nil {
		return nil, err
	}
	f, err := cfg.TextureFormat()
	if err != nil {
		return nil, err
	}
	settings, err := cfg.Settings()
	if err != nil {
		return nil, err
	}
	kind, err := cfg.ContainerKind()
	if err != nil {
		return nil, err
	}
	return &job{
		format:   f,
		settings: settings,
		kind:     kind,
		pad:      cfg.GetPadToBlocks(),
		zstd:     cfg.Zstd,
		comp:     comp,
	}, nil
}

func (j *job) blockSize() (int, int) {
	if s, ok := j.settings.(*texcomp.ASTCEncSettings); ok {
		return int(s.BlockWidth), int(s.BlockHeight)
	}
	return 4, 4
}

// compressImage encodes img. Padded images keep their size in the texture
// header; unpadded ones are cropped to whole blocks.
func (j *job) compressImage(img image.Image) (*container.Texture, error) {
	var (
		src *texcomp.Surface
		err error
	)
	if j.format == texcomp.FormatBC6H {
		src, err = texcomp.SurfaceFromImageF16(img)
	} else {
		src, err = texcomp.SurfaceFromImage(img)
	}
	if err != nil {
		return nil, err
	}

	bw, bh := j.blockSize()
	width, height := int(src.Width), int(src.Height)
	if j.pad {
		src, err = j.comp.PadToBlocks(src, bw, bh, j.format.BytesPerPixel())
		if err != nil {
			return nil, err
		}
	} else {
		width, height = width/bw*bw, height/bh*bh
		if width == 0 || height == 0 {
			return nil, fmt.Errorf("image %dx%d is smaller than a %dx%d block", src.Width, src.Height, bw, bh)
		}
	}

	data, err := j.comp.CompressBlocks(j.format, src, j.settings)
	if err != nil {
		return nil, err
	}
	tex := &container.Texture{
		Format: j.format,
		Width:  width,
		Height: height,
		Data:   data,
	}
	if j.format == texcomp.FormatASTC {
		tex.BlockWidth, tex.BlockHeight = bw, bh
	}
	return tex, nil
}

// encode writes tex in the job's container.
func (j *job) encode(tex *container.Texture) ([]byte, error) {
	var buf bytes.Buffer
	if err := container.Write(&buf, j.kind, tex); err != nil {
		return nil, err
	}
	if j.zstd {
		return container.EncodeZstd(buf.Bytes()), nil
	}
	return buf.Bytes(), nil
}

// outputPath names the file written for in.
func (j *job) outputPath(in, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
	name := base + j.kind.Extension()
	if j.zstd {
		name += ".zst"
	}
	return filepath.Join(outDir, name)
}

// run compresses the image at in into outDir.
func (j *job) run(ctx context.Context, in, outDir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Open(in)
	if err != nil {
		return err
	}
	img, kind, err := image.Decode(f)
	_ = f.Close()
	if err != nil {
		return fmt.Errorf("failed to decode %s:\n%w", in, err)
	}
	logger.Log.Debugf("decoded %s (%s, %v)", in, kind, img.Bounds())

	tex, err := j.compressImage(img)
	if err != nil {
		return fmt.Errorf("failed to compress %s:\n%w", in, err)
	}
	data, err := j.encode(tex)
	if err != nil {
		return fmt.Errorf("failed to write %s:\n%w", in, err)
	}

	out := j.outputPath(in, outDir)
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return err
	}
	logger.Log.Infof("%s -> %s (%s %dx%d, %d bytes)", in, out, j.format, tex.Width, tex.Height, len(data))
	return nil
}
