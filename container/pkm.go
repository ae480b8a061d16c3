package container

import (
	"errors"
	"fmt"
	"io"

	"github.com/ispc-texcomp/go-texcomp/texcomp"
)

const pkmMagic = "PKM "

// pkmFormatETC1 is the PKM data type of ETC1 RGB (version "10").
const pkmFormatETC1 = 0x00

var (
	ErrNotAPKMFile     = errors.New("container: not a PKM file")
	ErrImageIsTooLarge = errors.New("container: image is too large for PKM")
)

// WritePKM writes t as a PKM 1.0 file. Only ETC1 is supported.
func WritePKM(w io.Writer, t *Texture) error {
	if t.Format != texcomp.FormatETC1 {
		return fmt.Errorf("%w: %s in pkm", ErrUnsupportedFormat, t.Format)
	}
	if t.Width > 65532 || t.Height > 65532 {
		return ErrImageIsTooLarge
	}
	payload, err := t.Payload()
	if err != nil {
		return err
	}

	buf := [16]byte{}
	copy(buf[:4], pkmMagic)
	buf[0x04] = '1'
	buf[0x05] = '0'
	buf[0x06] = 0x00
	buf[0x07] = pkmFormatETC1

	roundedUpW := (t.Width + 3) &^ 3
	roundedUpH := (t.Height + 3) &^ 3
	buf[0x08] = uint8(roundedUpW >> 8)
	buf[0x09] = uint8(roundedUpW >> 0)
	buf[0x0A] = uint8(roundedUpH >> 8)
	buf[0x0B] = uint8(roundedUpH >> 0)
	buf[0x0C] = uint8(t.Width >> 8)
	buf[0x0D] = uint8(t.Width >> 0)
	buf[0x0E] = uint8(t.Height >> 8)
	buf[0x0F] = uint8(t.Height >> 0)
	if _, err := w.Write(buf[:]); err != nil {
		return err
	}
	_, err = w.Write(payload)
	return err
}

// ReadPKM reads an ETC1 PKM 1.0 file.
func ReadPKM(r io.Reader) (*Texture, error) {
	buf := [16]byte{}
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, fmt.Errorf("container: pkm header: %w", err)
	}
	if string(buf[:4]) != pkmMagic || buf[4] != '1' || buf[5] != '0' {
		return nil, ErrNotAPKMFile
	}
	if f := uint16(buf[6])<<8 | uint16(buf[7]); f != pkmFormatETC1 {
		return nil, fmt.Errorf("%w: PKM data type %d", ErrUnsupportedFormat, f)
	}

	roundedUpWidth := int(buf[8])<<8 | int(buf[9])
	roundedUpHeight := int(buf[10])<<8 | int(buf[11])
	width := int(buf[12])<<8 | int(buf[13])
	height := int(buf[14])<<8 | int(buf[15])
	if width == 0 || height == 0 ||
		((width+3)&^3) != roundedUpWidth ||
		((height+3)&^3) != roundedUpHeight {
		return nil, ErrNotAPKMFile
	}

	t := &Texture{Format: texcomp.FormatETC1, Width: width, Height: height}
	t.Data = make([]byte, t.PayloadSize())
	if _, err := io.ReadFull(r, t.Data); err != nil {
		return nil, fmt.Errorf("container: pkm payload: %w", err)
	}
	return t, nil
}
