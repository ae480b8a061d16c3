// Package native provides an optional CGO-backed texcomp.Encoder over the
// upstream ispc_texcomp library.
//
// By default this package builds in "disabled" mode (pure Go, no CGO) and
// NewEncoder returns an error. To enable it, build with:
//
//	-tags ispc_native
//
// with CGO enabled and libispc_texcomp on the linker path (CGO_LDFLAGS=-L...).
//
// Optional build tags:
//   - `ispc_static`: link libispc_texcomp.a instead of the shared library.
package native
