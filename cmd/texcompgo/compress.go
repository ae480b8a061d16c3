package main

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/ispc-texcomp/go-texcomp/config"
	"github.com/ispc-texcomp/go-texcomp/internal/backend"
	"github.com/ispc-texcomp/go-texcomp/internal/logger"
	"github.com/ispc-texcomp/go-texcomp/texcomp"
)

type CompressCmd struct {
	Inputs     []string          `arg:"" name:"input" help:"Images to compress." type:"existingfile"`
	OutputDir  string            `name:"output-dir" short:"o" help:"Directory the textures are written to." required:"" type:"existingdir"`
	ConfigFile string            `name:"config" help:"Path of a YAML job config. Flags override its values." type:"existingfile"`
	Format     string            `name:"format" short:"f" help:"Block format." enum:"${formats}" default:""`
	Profile    string            `name:"profile" short:"p" help:"Settings profile of the format."`
	Field      map[string]string `name:"field" help:"Settings field override as NAME=VALUE (YAML value, e.g. refineIterations=[2,2,2,1,2,2,2,0])."`
	Container  string            `name:"container" help:"Output container." enum:"${containers}" default:""`
	NoPad      bool              `name:"no-pad" help:"Crop to whole blocks instead of replicating borders."`
	Zstd       bool              `name:"zstd" help:"Wrap the output in a zstd frame."`
	Impl       string            `name:"impl" help:"Encoder implementation." enum:"${impls}" default:""`
	Jobs       int               `name:"jobs" short:"j" help:"Images compressed in parallel." default:"4"`
}

func (c *CompressCmd) Run() error {
	cfg, err := c.buildConfig()
	if err != nil {
		return err
	}
	comp, err := backend.NewCompressor(string(cfg.Impl))
	if err != nil {
		return err
	}
	j, err := newJob(cfg, comp)
	if err != nil {
		return err
	}

	logger.Log.Infof("compressing %d image(s) as %s with %s", len(c.Inputs), j.format, comp.Encoder().Name())
	return compressAll(context.Background(), j, c.Inputs, c.OutputDir, c.Jobs)
}

// buildConfig loads the config file, if any, and applies the flags over it.
func (c *CompressCmd) buildConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if c.ConfigFile != "" {
		var err error
		cfg, err = config.UnmarshalFile(c.ConfigFile)
		if err != nil {
			return nil, err
		}
	}

	if c.Format != "" {
		cfg.Format = c.Format
	}
	if c.Profile != "" {
		cfg.Profile = c.Profile
	}
	if len(c.Field) > 0 {
		if cfg.Fields == nil {
			cfg.Fields = texcomp.Fields{}
		}
		for name, raw := range c.Field {
			var v any
			if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
				return nil, fmt.Errorf("invalid --field %s=%s:\n%w", name, raw, err)
			}
			cfg.Fields[name] = v
		}
	}
	if c.Container != "" {
		cfg.Container = c.Container
	}
	if c.NoPad {
		pad := false
		cfg.PadToBlocks = &pad
	}
	if c.Zstd {
		cfg.Zstd = true
	}
	if c.Impl != "" {
		cfg.Impl = config.Impl(c.Impl)
	}

	if err := cfg.IsValid(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// compressAll runs j over inputs with at most jobs images in flight. The
// first failure cancels the images not yet started.
func compressAll(ctx context.Context, j *job, inputs []string, outDir string, jobs int) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobs, 1))
	for _, in := range inputs {
		g.Go(func() error { return j.run(gctx, in, outDir) })
	}
	return g.Wait()
}
