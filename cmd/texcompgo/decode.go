package main

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/ispc-texcomp/go-texcomp/container"
	"github.com/ispc-texcomp/go-texcomp/internal/logger"
	"github.com/ispc-texcomp/go-texcomp/texcomp"
)

type DecodeCmd struct {
	Input  string `arg:"" name:"input" help:"Compressed texture (dds, astc or pkm, optionally zstd-wrapped)." type:"existingfile"`
	Output string `name:"output" short:"o" help:"PNG file to write." required:""`
}

func (c *DecodeCmd) Run() error {
	data, err := os.ReadFile(c.Input)
	if err != nil {
		return err
	}
	_, tex, err := container.Read(data)
	if err != nil {
		return fmt.Errorf("failed to read %s:\n%w", c.Input, err)
	}
	img, err := decodeTexture(tex)
	if err != nil {
		return fmt.Errorf("failed to decode %s:\n%w", c.Input, err)
	}

	out, err := os.Create(c.Output)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := png.Encode(out, img); err != nil {
		return err
	}
	logger.Log.Infof("%s -> %s (%s %dx%d)", c.Input, c.Output, tex.Format, tex.Width, tex.Height)
	return nil
}

// decodeTexture expands the formats this tool can preview. The block grid is
// decoded whole and cropped to the texture size.
func decodeTexture(tex *container.Texture) (image.Image, error) {
	payload, err := tex.Payload()
	if err != nil {
		return nil, err
	}
	gw, gh := (tex.Width+3)&^3, (tex.Height+3)&^3

	var img *image.RGBA
	switch tex.Format {
	case texcomp.FormatBC1:
		img, err = texcomp.DecodeBC1(payload, gw, gh)
	case texcomp.FormatBC3:
		img, err = texcomp.DecodeBC3(payload, gw, gh)
	case texcomp.FormatASTC:
		img, err = texcomp.DecodeASTCConst(payload, tex.Width, tex.Height, tex.BlockWidth, tex.BlockHeight)
	default:
		return nil, fmt.Errorf("no decoder for %s", tex.Format)
	}
	if err != nil {
		return nil, err
	}
	return img.SubImage(image.Rect(0, 0, tex.Width, tex.Height)), nil
}
