//go:build ispc_native && cgo && ispc_static

package ispc

/*
#cgo LDFLAGS: -l:libispc_texcomp.a
*/
import "C"
