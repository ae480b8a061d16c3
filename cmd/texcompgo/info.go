package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ispc-texcomp/go-texcomp/container"
	"github.com/ispc-texcomp/go-texcomp/texcomp"
)

type InfoCmd struct {
	Inputs []string `arg:"" name:"input" help:"Compressed textures." type:"existingfile"`
}

func (c *InfoCmd) Run() error {
	for _, in := range c.Inputs {
		data, err := os.ReadFile(in)
		if err != nil {
			return err
		}
		if err := printInfo(os.Stdout, in, data); err != nil {
			return fmt.Errorf("failed to read %s:\n%w", in, err)
		}
	}
	return nil
}

func printInfo(w io.Writer, name string, data []byte) error {
	zstd := container.IsZstd(data)
	kind, tex, err := container.Read(data)
	if err != nil {
		return err
	}
	wrap := ""
	if zstd {
		wrap = "+zstd"
	}
	block := "4x4"
	if tex.Format == texcomp.FormatASTC {
		block = fmt.Sprintf("%dx%d", tex.BlockWidth, tex.BlockHeight)
	}
	_, err = fmt.Fprintf(w, "%s: %s%s %s %dx%d block=%s payload=%d\n",
		name, kind, wrap, tex.Format, tex.Width, tex.Height, block, tex.PayloadSize())
	return err
}
