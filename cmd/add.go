package main

import (
	"bufio"
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"mendimap-tools/mmtools/config"
	"mendimap-tools/mmtools/terminal"
)

type addCmd struct{}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "Append mountain rows to the dataset." }
func (*addCmd) Usage() string {
	return `add
	Prompt for mountain fields and append rows to the dataset file.
	Enter 'exit' as the name to stop.
  `
}

func (*addCmd) SetFlags(_ *flag.FlagSet) {}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg := args[0].(*config.Config)

	file, err := os.OpenFile(cfg.DatasetPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		terminal.Error(err, "Could not open dataset '%s'", cfg.DatasetPath)
		return 1
	}
	defer file.Close()

	in := bufio.NewScanner(os.Stdin)
	w := csv.NewWriter(file)

	for {
		fmt.Println("=== New mountain entry ===")

		name := prompt(in, "name")
		if strings.EqualFold(name, "exit") {
			break
		}
		province := prompt(in, "province")

		// lat and lon come in one comma separated answer, like the file rows
		var lat, lon string
		if latlon := strings.SplitN(prompt(in, "lat,lon"), ",", 2); len(latlon) == 2 {
			lat = strings.TrimSpace(latlon[0])
			lon = strings.TrimSpace(latlon[1])
		}

		climbed := prompt(in, "climbed")
		climbedDate := prompt(in, "climbed_date")
		url := prompt(in, "url")
		challenge := prompt(in, "challenge")

		record := []string{name, province, lat, lon, climbed, climbedDate, url, challenge}
		w.Write(record)
		w.Flush()
		if err := w.Error(); err != nil {
			terminal.Error(err, "Failed to append row")
			return 1
		}
		terminal.Info("Added: %s", strings.Join(record, ","))
	}

	return 0
}

func prompt(in *bufio.Scanner, field string) string {
	fmt.Printf("%s: ", field)
	in.Scan()
	return strings.TrimSpace(in.Text())
}
