package texcomp

import (
	"fmt"
	"strings"
)

// Format identifies a block-compression format.
type Format uint8

const (
	FormatUnknown Format = iota
	// FormatBC1 is BC1 (DXT1): RGB, 8 bytes per 4x4 block.
	FormatBC1
	// FormatBC3 is BC3 (DXT5): RGBA, 16 bytes per 4x4 block.
	FormatBC3
	// FormatBC4 is BC4: single channel (R), 8 bytes per 4x4 block.
	FormatBC4
	// FormatBC5 is BC5: two channels (RG), 16 bytes per 4x4 block.
	FormatBC5
	// FormatBC6H is BC6H unsigned half float. Its input surface is RGBA16F.
	FormatBC6H
	// FormatBC7 is BC7: RGBA, 16 bytes per 4x4 block.
	FormatBC7
	// FormatETC1 is ETC1: RGB, 8 bytes per 4x4 block (big-endian words).
	FormatETC1
	// FormatASTC is 2D LDR ASTC with a 4x4..8x8 footprint, 16 bytes per block.
	FormatASTC
)

var formatNames = [...]string{
	FormatUnknown: "unknown",
	FormatBC1:     "BC1",
	FormatBC3:     "BC3",
	FormatBC4:     "BC4",
	FormatBC5:     "BC5",
	FormatBC6H:    "BC6H",
	FormatBC7:     "BC7",
	FormatETC1:    "ETC1",
	FormatASTC:    "ASTC",
}

// Formats lists every supported format in declaration order.
func Formats() []Format {
	return []Format{FormatBC1, FormatBC3, FormatBC4, FormatBC5, FormatBC6H, FormatBC7, FormatETC1, FormatASTC}
}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// ParseFormat parses a case-insensitive format name such as "bc7" or "ETC1".
func ParseFormat(s string) (Format, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for _, f := range Formats() {
		if f.String() == name {
			return f, nil
		}
	}
	switch name {
	case "DXT1":
		return FormatBC1, nil
	case "DXT5":
		return FormatBC3, nil
	case "ETC":
		return FormatETC1, nil
	}
	return FormatUnknown, invalidArgument("unknown format %q", s)
}

// Ratio is the divisor applied to width*height to size the output buffer.
func (f Format) Ratio() int {
	switch f {
	case FormatBC1, FormatBC4:
		return 2
	default:
		return 1
	}
}

// BytesPerPixel is the size of one input pixel: 8 for the RGBA16F input of
// BC6H, 4 (RGBA8) otherwise.
func (f Format) BytesPerPixel() int {
	if f == FormatBC6H {
		return 8
	}
	return 4
}

// BlockBytes is the size of one compressed block.
func (f Format) BlockBytes() int {
	switch f {
	case FormatBC1, FormatBC4, FormatETC1:
		return 8
	default:
		return 16
	}
}

// HasSettings reports whether the format's entry point takes a settings record.
func (f Format) HasSettings() bool {
	switch f {
	case FormatBC6H, FormatBC7, FormatETC1, FormatASTC:
		return true
	default:
		return false
	}
}

// OutputSize returns the number of bytes the dispatch allocates for a
// width x height surface: width*height, divided by Ratio when it is above 1.
func OutputSize(f Format, width, height int) int {
	size := width * height
	if r := f.Ratio(); r > 1 {
		size /= r
	}
	return size
}

// PayloadSize returns the number of bytes an encoder writes for a
// width x height surface with a blockWidth x blockHeight footprint. Only whole
// blocks are encoded. blockWidth and blockHeight are ignored for every format
// but ASTC, which always uses 4x4 when they are not positive.
func PayloadSize(f Format, width, height, blockWidth, blockHeight int) int {
	bw, bh := 4, 4
	if f == FormatASTC && blockWidth > 0 && blockHeight > 0 {
		bw, bh = blockWidth, blockHeight
	}
	return (width / bw) * (height / bh) * f.BlockBytes()
}
