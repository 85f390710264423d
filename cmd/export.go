package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/tkrajina/gpxgo/gpx"

	"mendimap-tools/mmtools/config"
	"mendimap-tools/mmtools/dataset"
	"mendimap-tools/mmtools/terminal"
	"mendimap-tools/mmtools/waypoint"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "Export mountains with coordinates as GPX waypoints." }
func (*exportCmd) Usage() string {
	return `export [-output <path>]
	Write the dataset as a GPX waypoint file for GPS devices.
  `
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "output", "mountains.gpx", "output gpx file")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg := args[0].(*config.Config)

	o := terminal.NewOperation("Loading dataset from '%s'", cfg.DatasetPath)
	ds, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		o.Error(err, "Failed to load dataset")
		return 1
	}
	o.Success("Loaded %d rows", ds.Len())

	o = terminal.NewOperation("Exporting waypoints to '%s'", c.output)
	g := waypoint.FromDataset(ds)
	xmlBytes, err := g.ToXml(gpx.ToXmlParams{Version: waypoint.GpxVersion, Indent: true})
	if err != nil {
		o.Error(err, "Failed to serialize GPX")
		return 1
	}
	if err := os.WriteFile(c.output, xmlBytes, 0644); err != nil {
		o.Error(err, "Failed to write '%s'", c.output)
		return 1
	}
	o.Success("Exported %d waypoints to '%s'", len(g.Waypoints), c.output)

	return 0
}
