// Command texcompbench times block compression of a synthetic image.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/ispc-texcomp/go-texcomp/internal/backend"
	"github.com/ispc-texcomp/go-texcomp/internal/cli"
	"github.com/ispc-texcomp/go-texcomp/texcomp"
)

type BenchCmd struct {
	Format         string `name:"format" short:"f" help:"Block format." enum:"${formats}" default:"bc7"`
	Profile        string `name:"profile" short:"p" help:"Settings profile of the format."`
	Block          string `name:"block" help:"ASTC block footprint." default:"4x4"`
	Width          int    `name:"width" short:"W" help:"Image width." default:"1024"`
	Height         int    `name:"height" short:"H" help:"Image height." default:"1024"`
	Iters          int    `name:"iters" short:"n" help:"Iterations." default:"10"`
	Impl           string `name:"impl" help:"Encoder implementation." enum:"${impls}" default:"go"`
	Checksum       bool   `name:"checksum" help:"Hash every output (FNV-1a)." default:"true" negatable:""`
	CPUProfile     string `name:"cpuprofile" help:"Optional CPU profile output path."`
	MemProfile     string `name:"memprofile" help:"Optional memory profile output path."`
	MemProfileRate int    `name:"memprofilerate" help:"Optional runtime.MemProfileRate override (0 = default)."`
	Out            string `name:"out" help:"Write the last output to this file."`
	cli.LogFlags
}

func main() {
	cmd := &BenchCmd{}
	ctx := cli.Parse(cmd, "texcompbench", "Time block compression of a synthetic image.", &cmd.LogFlags)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

func (c *BenchCmd) Run() error {
	if c.Iters <= 0 {
		return fmt.Errorf("iters must be > 0")
	}
	f, err := texcomp.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	comp, err := backend.NewCompressor(c.Impl)
	if err != nil {
		return err
	}
	settings, err := benchSettings(f, c.Profile, c.Block)
	if err != nil {
		return err
	}
	src, err := benchSurface(f, c.Width, c.Height)
	if err != nil {
		return err
	}

	if c.MemProfileRate > 0 {
		runtime.MemProfileRate = c.MemProfileRate
	}
	if c.CPUProfile != "" {
		pf, err := os.Create(c.CPUProfile)
		if err != nil {
			return err
		}
		if err := pprof.StartCPUProfile(pf); err != nil {
			_ = pf.Close()
			return err
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = pf.Close()
		}()
	}

	r, err := runBench(comp, f, src, settings, c.Iters, c.Checksum)
	if err != nil {
		return err
	}

	if c.MemProfile != "" {
		mf, err := os.Create(c.MemProfile)
		if err != nil {
			return err
		}
		defer mf.Close()
		if err := pprof.WriteHeapProfile(mf); err != nil {
			return err
		}
	}
	if c.Out != "" {
		if err := os.WriteFile(c.Out, r.last, 0o644); err != nil {
			return err
		}
	}

	return r.print(os.Stdout, comp.Encoder().Name(), f, c.Profile, c.Width, c.Height)
}

// benchSettings builds the settings record, taking the ASTC footprint from
// block.
func benchSettings(f texcomp.Format, profile, block string) (any, error) {
	var fields texcomp.Fields
	if f == texcomp.FormatASTC {
		var bx, by int
		if _, err := fmt.Sscanf(block, "%dx%d", &bx, &by); err != nil {
			return nil, fmt.Errorf("invalid --block %q (want like 4x4)", block)
		}
		fields = texcomp.Fields{"block_width": bx, "block_height": by}
		if profile == "" {
			profile = "alpha_fast"
		}
	}
	return texcomp.NewSettings(f, fields, profile)
}

// benchSurface returns an owned width x height surface filled with a
// deterministic pattern in the format's input layout.
func benchSurface(f texcomp.Format, width, height int) (*texcomp.Surface, error) {
	s, err := texcomp.AllocSurface(width, height, f.BytesPerPixel())
	if err != nil {
		return nil, err
	}
	fillPattern(s.Bytes(), width, height, f.BytesPerPixel())
	return s, nil
}

func fillPattern(pix []byte, width, height, bytesPerPixel int) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			off := (y*width + x) * bytesPerPixel
			r := uint32(x*3 + y*5)
			g := uint32(x*11 + y*13)
			b := uint32(x ^ y)
			a := 255 - uint32((x*5+y*7)&0xFF)
			if bytesPerPixel == 4 {
				pix[off+0] = uint8(r)
				pix[off+1] = uint8(g)
				pix[off+2] = uint8(b)
				pix[off+3] = uint8(a)
				continue
			}
			// RGBA16F: halves in [0, 1) built from the 8-bit pattern.
			for ch, v := range [4]uint32{r, g, b, a} {
				h := uint16(0x3800 + (v&0xFF)<<2)
				pix[off+2*ch] = byte(h)
				pix[off+2*ch+1] = byte(h >> 8)
			}
		}
	}
}

type benchResult struct {
	iters    int
	total    time.Duration
	mean     float64
	stddev   float64
	checksum uint64
	summed   bool
	last     []byte
}

func runBench(comp *texcomp.Compressor, f texcomp.Format, src *texcomp.Surface, settings any, iters int, checksum bool) (*benchResult, error) {
	r := &benchResult{iters: iters, summed: checksum}
	samples := make([]float64, iters)
	for i := 0; i < iters; i++ {
		start := time.Now()
		out, err := comp.CompressBlocks(f, src, settings)
		if err != nil {
			return nil, err
		}
		d := time.Since(start)
		r.total += d
		samples[i] = d.Seconds() * 1e3
		if checksum {
			r.checksum = fnv1a64(r.checksum, out)
		}
		r.last = out
	}
	if len(samples) < 2 {
		r.mean = stat.Mean(samples, nil)
	} else {
		r.mean, r.stddev = stat.MeanStdDev(samples, nil)
	}
	return r, nil
}

func (r *benchResult) print(w io.Writer, impl string, f texcomp.Format, profile string, width, height int) error {
	texels := float64(width*height) * float64(r.iters)
	mpixPerS := texels / r.total.Seconds() / 1e6

	checksumStr := fmtChecksum(r.checksum)
	if !r.summed {
		checksumStr = "none"
	}
	if profile == "" {
		profile = "-"
	}
	_, err := fmt.Fprintf(w, "RESULT impl=%s format=%s profile=%s size=%dx%d iters=%d seconds=%.6f ms/iter=%.3f±%.3f mpix/s=%.3f checksum=%s\n",
		impl,
		f,
		profile,
		width, height,
		r.iters,
		r.total.Seconds(),
		r.mean, r.stddev,
		mpixPerS,
		checksumStr,
	)
	return err
}

func fnv1a64(seed uint64, data []byte) uint64 {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)
	h := seed
	if h == 0 {
		h = offset64
	}
	for _, b := range data {
		h ^= uint64(b)
		h *= prime64
	}
	return h
}

func fmtChecksum(v uint64) string {
	var b [8]byte
	for i := 0; i < 8; i++ {
		b[7-i] = byte(v >> uint(i*8))
	}
	return hex.EncodeToString(b[:])
}
