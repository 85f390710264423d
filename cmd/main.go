package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"mendimap-tools/mmtools/config"
	"mendimap-tools/mmtools/terminal"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&buildCmd{}, "")
	subcommands.Register(&addCmd{}, "")
	subcommands.Register(&listCmd{}, "")
	subcommands.Register(&exportCmd{}, "")

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		terminal.Error(err, "Failed to load config")
		os.Exit(1)
	}

	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx, cfg)))
}
