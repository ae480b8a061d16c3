// Package backend selects the encoder a command line tool runs.
package backend

import (
	"fmt"
	"strings"

	"github.com/ispc-texcomp/go-texcomp/texcomp"
	"github.com/ispc-texcomp/go-texcomp/texcomp/native"
)

// Impls lists the accepted implementation names.
func Impls() []string { return []string{"go", "native"} }

// NewCompressor returns a Compressor over the named implementation: "go"
// (or empty) for the portable encoder, "native" for ispc_texcomp.
func NewCompressor(impl string) (*texcomp.Compressor, error) {
	switch strings.ToLower(strings.TrimSpace(impl)) {
	case "", "go", "pure", "purego", "pure-go":
		return texcomp.NewCompressor(texcomp.Portable()), nil
	case "native", "cgo", "ispc":
		enc, err := native.NewEncoder()
		if err != nil {
			return nil, fmt.Errorf("native implementation is not available in this build: %w", err)
		}
		return texcomp.NewCompressor(enc), nil
	default:
		return nil, fmt.Errorf("invalid impl %q (want go|native)", impl)
	}
}
