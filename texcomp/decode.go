package texcomp

import (
	"fmt"
	"image"

	"github.com/mauserzjeh/dxt"
)

// DecodeBC1 expands BC1 blocks of a width x height texture into RGBA.
func DecodeBC1(data []byte, width, height int) (*image.RGBA, error) {
	return decodeDXT(FormatBC1, data, width, height, dxt.DecodeDXT1)
}

// DecodeBC3 expands BC3 blocks of a width x height texture into RGBA.
func DecodeBC3(data []byte, width, height int) (*image.RGBA, error) {
	return decodeDXT(FormatBC3, data, width, height, dxt.DecodeDXT5)
}

func decodeDXT(f Format, data []byte, width, height int, decode func([]byte, uint, uint) ([]byte, error)) (*image.RGBA, error) {
	if width <= 0 || height <= 0 || width%4 != 0 || height%4 != 0 {
		return nil, invalidArgument("%s preview needs a positive multiple of 4, got %dx%d", f, width, height)
	}
	if need := PayloadSize(f, width, height, 4, 4); len(data) < need {
		return nil, invalidArgument("%s data holds %d bytes, %dx%d needs %d", f, len(data), width, height, need)
	}

	pix, err := decode(data, uint(width), uint(height))
	if err != nil {
		return nil, fmt.Errorf("texcomp: decode %s: %w", f, err)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if len(pix) != len(img.Pix) {
		return nil, fmt.Errorf("texcomp: decode %s: got %d bytes, want %d", f, len(pix), len(img.Pix))
	}
	copy(img.Pix, pix)
	return img, nil
}

// DecodeASTCConst expands ASTC void-extent blocks with UNORM16 colour, the
// blocks written by the portable encoder. Any other block mode is rejected.
func DecodeASTCConst(data []byte, width, height, blockWidth, blockHeight int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 || blockWidth <= 0 || blockHeight <= 0 {
		return nil, invalidArgument("invalid ASTC geometry %dx%d with %dx%d blocks", width, height, blockWidth, blockHeight)
	}
	blocksX := (width + blockWidth - 1) / blockWidth
	blocksY := (height + blockHeight - 1) / blockHeight
	if need := blocksX * blocksY * astcBlockBytes; len(data) < need {
		return nil, invalidArgument("ASTC data holds %d bytes, %dx%d needs %d", len(data), width, height, need)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for by := 0; by < blocksY; by++ {
		for bx := 0; bx < blocksX; bx++ {
			off := (by*blocksX + bx) * astcBlockBytes
			c, ok := decodeASTCConstRGBA8(data[off : off+astcBlockBytes])
			if !ok {
				return nil, invalidArgument("ASTC block %d is not a constant-colour block", by*blocksX+bx)
			}
			for y := by * blockHeight; y < min((by+1)*blockHeight, height); y++ {
				for x := bx * blockWidth; x < min((bx+1)*blockWidth, width); x++ {
					copy(img.Pix[img.PixOffset(x, y):], c[:])
				}
			}
		}
	}
	return img, nil
}
