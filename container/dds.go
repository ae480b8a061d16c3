package container

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ispc-texcomp/go-texcomp/texcomp"
)

const (
	ddsMagic      = "DDS "
	ddsHeaderSize = 124
	ddsPfSize     = 32
	dx10Size      = 20

	// DDSD flags
	ddsdCaps        = 0x1
	ddsdHeight      = 0x2
	ddsdWidth       = 0x4
	ddsdPixelFormat = 0x1000
	ddsdLinearSize  = 0x80000

	ddpfFourCC = 0x4

	ddsCapsTexture = 0x1000

	d3d10ResourceDimensionTexture2D = 3
)

// DXGI formats written in the DX10 extension header.
const (
	DXGIFormatBC6HUF16 = 95
	DXGIFormatBC7UNorm = 98
)

var ErrNotDDS = errors.New("container: not a DDS file")

// ddsFormat is the pixel format a texcomp format is stored with: a FourCC, or
// "DX10" plus a DXGI format.
type ddsFormat struct {
	fourCC string
	dxgi   uint32
}

var ddsFormats = map[texcomp.Format]ddsFormat{
	texcomp.FormatBC1:  {fourCC: "DXT1"},
	texcomp.FormatBC3:  {fourCC: "DXT5"},
	texcomp.FormatBC4:  {fourCC: "ATI1"},
	texcomp.FormatBC5:  {fourCC: "ATI2"},
	texcomp.FormatBC6H: {fourCC: "DX10", dxgi: DXGIFormatBC6HUF16},
	texcomp.FormatBC7:  {fourCC: "DX10", dxgi: DXGIFormatBC7UNorm},
}

func ddsFormatOf(f texcomp.Format) (ddsFormat, bool) {
	d, ok := ddsFormats[f]
	return d, ok
}

// DDSHeader is the part of a DDS header this package reads back.
type DDSHeader struct {
	Width      int
	Height     int
	LinearSize int
	MipCount   int
	FourCC     string
	// DXGIFormat is set only when FourCC is "DX10".
	DXGIFormat uint32
}

// Format maps the header's pixel format back to a texcomp format.
func (h DDSHeader) Format() (texcomp.Format, error) {
	for f, d := range ddsFormats {
		if d.fourCC == h.FourCC && d.dxgi == h.DXGIFormat {
			return f, nil
		}
	}
	switch h.FourCC {
	case "BC4U":
		return texcomp.FormatBC4, nil
	case "BC5U":
		return texcomp.FormatBC5, nil
	}
	return texcomp.FormatUnknown, fmt.Errorf("%w: FourCC %q DXGI %d", ErrUnsupportedFormat, h.FourCC, h.DXGIFormat)
}

// WriteDDS writes t as a single-mip DDS file. BC6H and BC7 use the DX10
// extension header.
func WriteDDS(w io.Writer, t *Texture) error {
	d, ok := ddsFormatOf(t.Format)
	if !ok {
		return fmt.Errorf("%w: %s in dds", ErrUnsupportedFormat, t.Format)
	}
	payload, err := t.Payload()
	if err != nil {
		return err
	}

	var header [4 + ddsHeaderSize + dx10Size]byte
	copy(header[:4], ddsMagic)
	h := header[4:]
	put := func(off int, v uint32) {
		binary.LittleEndian.PutUint32(h[off:], v)
	}

	put(0, ddsHeaderSize)                                                // dwSize
	put(4, ddsdCaps|ddsdHeight|ddsdWidth|ddsdPixelFormat|ddsdLinearSize) // dwFlags
	put(8, uint32(t.Height))                                             // dwHeight
	put(12, uint32(t.Width))                                             // dwWidth
	put(16, uint32(len(payload)))                                        // dwPitchOrLinearSize
	put(24, 1)                                                           // dwMipMapCount

	// PixelFormat section (offset 72)
	put(72, ddsPfSize)
	put(76, ddpfFourCC)
	copy(h[80:84], d.fourCC)

	// Caps (offset 104)
	put(104, ddsCapsTexture)

	n := 4 + ddsHeaderSize
	if d.fourCC == "DX10" {
		put(124, d.dxgi)
		put(128, d3d10ResourceDimensionTexture2D)
		put(132, 0) // miscFlag
		put(136, 1) // arraySize
		put(140, 0) // miscFlags2
		n += dx10Size
	}

	if _, err := w.Write(header[:n]); err != nil {
		return err
	}
	_, err = w.Write(payload)
	return err
}

// ReadDDSHeader reads the magic, the header and, when present, the DX10
// extension.
func ReadDDSHeader(r io.Reader) (DDSHeader, error) {
	var buf [4 + ddsHeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return DDSHeader{}, fmt.Errorf("container: dds header: %w", err)
	}
	if string(buf[:4]) != ddsMagic {
		return DDSHeader{}, ErrNotDDS
	}
	h := buf[4:]
	get := func(off int) uint32 { return binary.LittleEndian.Uint32(h[off:]) }

	if get(0) != ddsHeaderSize || get(72) != ddsPfSize {
		return DDSHeader{}, ErrNotDDS
	}
	hdr := DDSHeader{
		Height:     int(get(8)),
		Width:      int(get(12)),
		LinearSize: int(get(16)),
		MipCount:   max(int(get(24)), 1),
	}
	if get(76)&ddpfFourCC == 0 {
		return hdr, fmt.Errorf("%w: uncompressed pixel format", ErrUnsupportedFormat)
	}
	hdr.FourCC = string(h[80:84])

	if hdr.FourCC == "DX10" {
		var ext [dx10Size]byte
		if _, err := io.ReadFull(r, ext[:]); err != nil {
			return DDSHeader{}, fmt.Errorf("container: dds dx10 header: %w", err)
		}
		hdr.DXGIFormat = binary.LittleEndian.Uint32(ext[0:])
	}
	return hdr, nil
}

// ReadDDS reads a DDS file and returns its top mip level.
func ReadDDS(r io.Reader) (*Texture, error) {
	hdr, err := ReadDDSHeader(r)
	if err != nil {
		return nil, err
	}
	f, err := hdr.Format()
	if err != nil {
		return nil, err
	}
	t := &Texture{Format: f, Width: hdr.Width, Height: hdr.Height}
	if t.Width <= 0 || t.Height <= 0 {
		return nil, fmt.Errorf("container: dds: invalid size %dx%d", t.Width, t.Height)
	}
	t.Data = make([]byte, t.PayloadSize())
	if _, err := io.ReadFull(r, t.Data); err != nil {
		return nil, fmt.Errorf("container: dds payload: %w", err)
	}
	return t, nil
}
