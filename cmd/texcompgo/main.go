// Command texcompgo compresses images into GPU block formats.
package main

import (
	"github.com/ispc-texcomp/go-texcomp/internal/cli"
)

type TexcompCmd struct {
	Compress CompressCmd `cmd:"" help:"Compress images into block-compressed textures."`
	Decode   DecodeCmd   `cmd:"" help:"Decode a BC1, BC3 or constant-colour ASTC texture to PNG."`
	Info     InfoCmd     `cmd:"" help:"Print the header of a compressed texture."`
	Profiles ProfilesCmd `cmd:"" help:"List the settings profiles and fields of each format."`
	Schema   SchemaCmd   `cmd:"" help:"Write the JSON schema of the job config file."`
	cli.LogFlags
}

func main() {
	cmd := &TexcompCmd{}
	ctx := cli.Parse(cmd, "texcompgo", "Compress images into GPU block formats.", &cmd.LogFlags)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
