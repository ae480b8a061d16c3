//go:build ispc_native && !cgo

package native

import "github.com/ispc-texcomp/go-texcomp/texcomp"

var errNoCGO = texcomp.NewError(texcomp.ErrUnavailable, "texcomp/native: ispc_native set but CGO is disabled (set CGO_ENABLED=1)")

func Enabled() bool { return false }

func NewEncoder() (texcomp.Encoder, error) { return nil, errNoCGO }
