//go:build !ispc_native

package native

import "github.com/ispc-texcomp/go-texcomp/texcomp"

var errDisabled = texcomp.NewError(texcomp.ErrUnavailable, "texcomp/native: disabled (build with -tags ispc_native and CGO_ENABLED=1)")

// Enabled reports whether the CGO native implementation is available in this build.
func Enabled() bool { return false }

// NewEncoder returns the ispc_texcomp encoder.
func NewEncoder() (texcomp.Encoder, error) { return nil, errDisabled }
