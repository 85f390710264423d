package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	"go.uber.org/zap"

	"mendimap-tools/mmtools/boundary"
	"mendimap-tools/mmtools/config"
	"mendimap-tools/mmtools/dataset"
	"mendimap-tools/mmtools/geoutil"
	"mendimap-tools/mmtools/mapbuild"
	"mendimap-tools/mmtools/terminal"
)

type buildCmd struct {
	output  string
	fit     bool
	verbose bool
}

// FitPadding is the margin in decimal degrees around the outermost markers
// when fitting the viewport.
const FitPadding = 0.05

func (*buildCmd) Name() string     { return "build" }
func (*buildCmd) Synopsis() string { return "Build the interactive mountain map HTML document." }
func (*buildCmd) Usage() string {
	return `build [-output <path>] [-fit] [-verbose]
	Render the dataset and province boundaries to a single HTML map.
  `
}

func (c *buildCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "output", "", "output file (defaults to the configured path)")
	f.BoolVar(&c.fit, "fit", false, "fit the viewport to the rendered markers")
	f.BoolVar(&c.verbose, "verbose", false, "log per-row diagnostics")
}

func (c *buildCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg := args[0].(*config.Config)

	logger := zap.NewNop()
	if c.verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			terminal.Error(err, "Failed to create logger")
			return 1
		}
		logger = l
		defer logger.Sync()
	}

	out := cfg.OutputPath
	if c.output != "" {
		out = c.output
	}

	// load boundary documents
	o := terminal.NewOperation("Loading boundaries from '%s'", cfg.ProvincesPath)
	provinces, err := boundary.Load(cfg.ProvincesPath)
	if err != nil {
		o.Error(err, "Failed to load province boundaries")
		return 1
	}
	world, err := boundary.Load(cfg.WorldPath)
	if err != nil {
		o.Error(err, "Failed to load world boundaries")
		return 1
	}
	o.Success("Boundaries loaded")

	// load dataset
	o = terminal.NewOperation("Loading dataset from '%s'", cfg.DatasetPath)
	ds, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		o.Error(err, "Failed to load dataset")
		return 1
	}
	o.Success("Dataset loaded (%d rows)", ds.Len())

	// assemble the document
	o = terminal.NewOperation("Assembling map")
	builder := mapbuild.New(logger)
	m, err := builder.Build(provinces, world, ds)
	if err != nil {
		o.Error(err, "Failed to assemble map")
		return 1
	}
	if c.fit {
		if b, ok := geoutil.FromPoints(builder.MarkerPoints(ds)); ok {
			b = b.Extend(FitPadding)
			m.FitBounds(b.MinLat, b.MinLng, b.MaxLat, b.MaxLng)
		}
	}
	o.Success("Map assembled")

	// serialize fully before touching the output path, so a render failure
	// leaves nothing half-written
	o = terminal.NewOperation("Writing map to '%s'", out)
	var buf bytes.Buffer
	if err := m.Render(&buf); err != nil {
		o.Error(err, "Failed to render map")
		return 1
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			o.Error(err, "Failed to create output directory")
			return 1
		}
	}
	if err := os.WriteFile(out, buf.Bytes(), 0644); err != nil {
		o.Error(err, "Failed to write output file")
		return 1
	}
	o.Success("Map written to '%s'", out)

	return 0
}
