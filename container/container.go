// Package container writes compressed block payloads into the file formats
// that carry them (DDS, .astc, PKM) and reads them back.
package container

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ispc-texcomp/go-texcomp/texcomp"
)

var (
	ErrUnsupportedFormat = errors.New("container: format not supported by container")
	ErrShortPayload      = errors.New("container: payload shorter than the block grid")
	ErrUnknownContainer  = errors.New("container: unrecognised file")
)

// Kind selects a container.
type Kind uint8

const (
	// KindRaw writes the block payload with no header.
	KindRaw Kind = iota
	KindDDS
	KindASTC
	KindPKM
)

var kindNames = [...]string{
	KindRaw:  "raw",
	KindDDS:  "dds",
	KindASTC: "astc",
	KindPKM:  "pkm",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Kinds lists the container names accepted by ParseKind.
func Kinds() []string { return kindNames[:] }

// ParseKind parses a container name. The empty string is KindRaw.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return KindRaw, nil
	}
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return KindRaw, fmt.Errorf("container: unknown container %q", s)
}

// DefaultKind is the natural container for f: PKM for ETC1, .astc for ASTC
// and DDS for the BCn formats.
func DefaultKind(f texcomp.Format) Kind {
	switch f {
	case texcomp.FormatETC1:
		return KindPKM
	case texcomp.FormatASTC:
		return KindASTC
	default:
		return KindDDS
	}
}

// Extension returns the file extension for k, including the dot.
func (k Kind) Extension() string {
	switch k {
	case KindDDS:
		return ".dds"
	case KindASTC:
		return ".astc"
	case KindPKM:
		return ".pkm"
	default:
		return ".bin"
	}
}

// Supports reports whether k can carry f.
func (k Kind) Supports(f texcomp.Format) bool {
	switch k {
	case KindRaw:
		return f != texcomp.FormatUnknown
	case KindDDS:
		_, ok := ddsFormatOf(f)
		return ok
	case KindASTC:
		return f == texcomp.FormatASTC
	case KindPKM:
		return f == texcomp.FormatETC1
	default:
		return false
	}
}

// Texture is a compressed 2D image. Width and Height are the image size; Data
// holds one block per footprint of the grid covering it, rounded up.
type Texture struct {
	Format      texcomp.Format
	Width       int
	Height      int
	BlockWidth  int
	BlockHeight int
	Data        []byte
}

// blockSize returns the footprint, 4x4 for everything but ASTC.
func (t *Texture) blockSize() (int, int) {
	if t.Format == texcomp.FormatASTC && t.BlockWidth > 0 && t.BlockHeight > 0 {
		return t.BlockWidth, t.BlockHeight
	}
	return 4, 4
}

// PayloadSize returns the number of block bytes covering the image.
func (t *Texture) PayloadSize() int {
	bw, bh := t.blockSize()
	bx := (t.Width + bw - 1) / bw
	by := (t.Height + bh - 1) / bh
	return bx * by * t.Format.BlockBytes()
}

// Payload returns the blocks covering the image, dropping any tail Data
// carries past them.
func (t *Texture) Payload() ([]byte, error) {
	if t.Width <= 0 || t.Height <= 0 {
		return nil, fmt.Errorf("container: invalid size %dx%d", t.Width, t.Height)
	}
	need := t.PayloadSize()
	if len(t.Data) < need {
		return nil, fmt.Errorf("%w: %s %dx%d needs %d bytes, got %d", ErrShortPayload, t.Format, t.Width, t.Height, need, len(t.Data))
	}
	return t.Data[:need], nil
}

// Write writes t to w in container k.
func Write(w io.Writer, k Kind, t *Texture) error {
	if !k.Supports(t.Format) {
		return fmt.Errorf("%w: %s in %s", ErrUnsupportedFormat, t.Format, k)
	}
	switch k {
	case KindDDS:
		return WriteDDS(w, t)
	case KindASTC:
		return WriteASTC(w, t)
	case KindPKM:
		return WritePKM(w, t)
	default:
		payload, err := t.Payload()
		if err != nil {
			return err
		}
		_, err = w.Write(payload)
		return err
	}
}

// Read parses a DDS, .astc or PKM file, optionally wrapped in a zstd frame.
func Read(data []byte) (Kind, *Texture, error) {
	if IsZstd(data) {
		plain, err := DecodeZstd(data)
		if err != nil {
			return KindRaw, nil, err
		}
		data = plain
	}

	switch {
	case bytes.HasPrefix(data, []byte(ddsMagic)):
		t, err := ReadDDS(bytes.NewReader(data))
		return KindDDS, t, err
	case bytes.HasPrefix(data, astcMagic[:]):
		t, err := ReadASTC(data)
		return KindASTC, t, err
	case bytes.HasPrefix(data, []byte(pkmMagic)):
		t, err := ReadPKM(bytes.NewReader(data))
		return KindPKM, t, err
	default:
		return KindRaw, nil, ErrUnknownContainer
	}
}
