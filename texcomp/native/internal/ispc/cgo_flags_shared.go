//go:build ispc_native && cgo && !ispc_static

package ispc

/*
#cgo LDFLAGS: -lispc_texcomp
*/
import "C"
