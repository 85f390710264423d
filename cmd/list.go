package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/google/subcommands"

	"mendimap-tools/mmtools/config"
	"mendimap-tools/mmtools/dataset"
	"mendimap-tools/mmtools/terminal"
)

type listCmd struct {
	format      string
	outputFile  string
	climbedOnly bool
}

const (
	jsonF = "json"
	textF = "text"
	csvF  = "csv"
)

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "List mountains from the dataset." }
func (*listCmd) Usage() string {
	return `list [-format] [-output] [-climbed]
	List dataset rows.
  `
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "text", "format to display rows (json, text, csv)")
	f.StringVar(&c.outputFile, "output", "", "output file")
	f.BoolVar(&c.climbedOnly, "climbed", false, "only list climbed mountains")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg := args[0].(*config.Config)

	// validate parameters
	switch c.format {
	case jsonF, textF, csvF:
	default:
		terminal.Error(nil, "Invalid format '%s'", c.format)
		return 1
	}

	// load the dataset
	o := terminal.NewOperation("Loading dataset from '%s'", cfg.DatasetPath)
	ds, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		o.Error(err, "Failed to load dataset")
		return 1
	}
	o.Success("Loaded %d rows", ds.Len())

	rows := ds.Rows()
	if c.climbedOnly {
		filtered := make([]dataset.Row, 0, len(rows))
		for _, r := range rows {
			if r.Climbed() {
				filtered = append(filtered, r)
			}
		}
		rows = filtered
	}

	// get a file writer if needed
	var w io.Writer = os.Stdout
	var op *terminal.Operation
	if c.outputFile != "" {
		f, err := os.Create(c.outputFile)
		if err != nil {
			terminal.Error(err, "Could not open file '%s'", c.outputFile)
			return 1
		}
		defer f.Close()
		w = f

		op = terminal.NewOperation("Exporting list to '%s' in %s format", c.outputFile, c.format)
	}

	// print result
	switch c.format {
	case textF:
		for _, r := range rows {
			status := "not climbed"
			if r.Climbed() {
				status = "climbed"
			}
			if lat, lon, ok := r.Coords(); ok {
				fmt.Fprintf(w, "%s (%s) - %s - %.4f, %.4f\n", r.Name(), r.Province(), status, lat, lon)
			} else {
				fmt.Fprintf(w, "%s (%s) - %s - no coordinates\n", r.Name(), r.Province(), status)
			}
		}
	case jsonF:
		elts := make([]map[string]interface{}, len(rows))
		for i, r := range rows {
			jsonMap := map[string]interface{}{}
			jsonMap["name"] = r.Name()
			jsonMap["province"] = r.Province()
			jsonMap["climbed"] = r.Climbed()
			jsonMap["challenge"] = r.Challenge()
			jsonMap["url"] = r.URL()
			if lat, lon, ok := r.Coords(); ok {
				jsonMap["lat"] = lat
				jsonMap["lon"] = lon
			}
			elts[i] = jsonMap
		}
		jsonStr, _ := json.MarshalIndent(elts, "", "  ")
		fmt.Fprint(w, string(jsonStr))
	case csvF:
		csvW := csv.NewWriter(w)
		csvW.Write([]string{"name", "province", "lat", "lon", "climbed", "url", "challenge"})
		for _, r := range rows {
			csvW.Write([]string{
				r.Name(), r.Province(), r.Field("lat"), r.Field("lon"),
				strconv.FormatBool(r.Climbed()), r.URL(), strconv.FormatBool(r.Challenge()),
			})
		}
		csvW.Flush()
	}

	if op != nil {
		op.Success("List exported to %s", c.outputFile)
	}

	return 0
}
