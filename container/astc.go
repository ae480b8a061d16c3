package container

import (
	"errors"
	"fmt"
	"io"

	"github.com/ispc-texcomp/go-texcomp/texcomp"
)

var astcMagic = [4]byte{0x13, 0xAB, 0xA1, 0x5C}

// ASTCHeaderSize is the size in bytes of an .astc file header.
const ASTCHeaderSize = 16

// ASTCHeader is the 16-byte header of an .astc file.
type ASTCHeader struct {
	BlockX uint8
	BlockY uint8
	BlockZ uint8

	SizeX uint32
	SizeY uint32
	SizeZ uint32
}

func (h ASTCHeader) String() string {
	return fmt.Sprintf("ASTC %dx%dx%d blocks, %dx%dx%d texels",
		h.BlockX, h.BlockY, h.BlockZ,
		h.SizeX, h.SizeY, h.SizeZ)
}

func (h ASTCHeader) validate() error {
	if h.BlockX == 0 || h.BlockY == 0 || h.BlockZ == 0 {
		return errors.New("container: invalid astc header: zero block dimension")
	}
	if h.SizeX == 0 || h.SizeY == 0 || h.SizeZ == 0 {
		return errors.New("container: invalid astc header: zero image dimension")
	}
	if h.SizeX > 0xFFFFFF || h.SizeY > 0xFFFFFF || h.SizeZ > 0xFFFFFF {
		return errors.New("container: invalid astc header: dimension exceeds 24 bits")
	}
	return nil
}

// BlockCount returns the number of 16-byte blocks covering the image.
func (h ASTCHeader) BlockCount() (int, error) {
	if err := h.validate(); err != nil {
		return 0, err
	}
	blocksX := int((h.SizeX + uint32(h.BlockX) - 1) / uint32(h.BlockX))
	blocksY := int((h.SizeY + uint32(h.BlockY) - 1) / uint32(h.BlockY))
	blocksZ := int((h.SizeZ + uint32(h.BlockZ) - 1) / uint32(h.BlockZ))
	total := blocksX * blocksY * blocksZ
	if total/blocksX/blocksY != blocksZ {
		return 0, errors.New("container: invalid astc header: block count overflow")
	}
	return total, nil
}

// ParseASTCHeader parses the 16-byte .astc header.
func ParseASTCHeader(data []byte) (ASTCHeader, error) {
	if len(data) < ASTCHeaderSize {
		return ASTCHeader{}, errUnexpectedEOF("astc header", ASTCHeaderSize, len(data))
	}
	if [4]byte(data[:4]) != astcMagic {
		return ASTCHeader{}, errors.New("container: invalid astc magic")
	}

	h := ASTCHeader{
		BlockX: data[4],
		BlockY: data[5],
		BlockZ: data[6],
		SizeX:  decodeU24LE(data[7:10]),
		SizeY:  decodeU24LE(data[10:13]),
		SizeZ:  decodeU24LE(data[13:16]),
	}
	if err := h.validate(); err != nil {
		return ASTCHeader{}, err
	}
	return h, nil
}

// MarshalASTCHeader returns the 16-byte encoding of h.
func MarshalASTCHeader(h ASTCHeader) ([ASTCHeaderSize]byte, error) {
	if err := h.validate(); err != nil {
		return [ASTCHeaderSize]byte{}, err
	}

	var out [ASTCHeaderSize]byte
	copy(out[0:4], astcMagic[:])
	out[4] = h.BlockX
	out[5] = h.BlockY
	out[6] = h.BlockZ
	encodeU24LE(out[7:10], h.SizeX)
	encodeU24LE(out[10:13], h.SizeY)
	encodeU24LE(out[13:16], h.SizeZ)
	return out, nil
}

// WriteASTC writes t as a 2D .astc file.
func WriteASTC(w io.Writer, t *Texture) error {
	if t.Format != texcomp.FormatASTC {
		return fmt.Errorf("%w: %s in astc", ErrUnsupportedFormat, t.Format)
	}
	if t.BlockWidth <= 0 || t.BlockHeight <= 0 || t.BlockWidth > 0xFF || t.BlockHeight > 0xFF {
		return fmt.Errorf("container: invalid astc block %dx%d", t.BlockWidth, t.BlockHeight)
	}
	payload, err := t.Payload()
	if err != nil {
		return err
	}
	hdr, err := MarshalASTCHeader(ASTCHeader{
		BlockX: uint8(t.BlockWidth),
		BlockY: uint8(t.BlockHeight),
		BlockZ: 1,
		SizeX:  uint32(t.Width),
		SizeY:  uint32(t.Height),
		SizeZ:  1,
	})
	if err != nil {
		return err
	}
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	_, err = w.Write(payload)
	return err
}

// ReadASTC parses a 2D .astc file. Data aliases data.
func ReadASTC(data []byte) (*Texture, error) {
	h, err := ParseASTCHeader(data)
	if err != nil {
		return nil, err
	}
	if h.BlockZ != 1 || h.SizeZ != 1 {
		return nil, fmt.Errorf("%w: 3D %s", ErrUnsupportedFormat, h)
	}
	total, err := h.BlockCount()
	if err != nil {
		return nil, err
	}
	need := ASTCHeaderSize + total*16
	if len(data) < need {
		return nil, errUnexpectedEOF("astc file", need, len(data))
	}
	return &Texture{
		Format:      texcomp.FormatASTC,
		Width:       int(h.SizeX),
		Height:      int(h.SizeY),
		BlockWidth:  int(h.BlockX),
		BlockHeight: int(h.BlockY),
		Data:        data[ASTCHeaderSize:need],
	}, nil
}

func decodeU24LE(b []byte) uint32 {
	_ = b[2]
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
}

func encodeU24LE(dst []byte, v uint32) {
	_ = dst[2]
	dst[0] = byte(v)
	dst[1] = byte(v >> 8)
	dst[2] = byte(v >> 16)
}

func errUnexpectedEOF(what string, want, got int) error {
	return fmt.Errorf("container: %s: unexpected EOF: want %d bytes, got %d", what, want, got)
}
