package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"github.com/vitalvas/pathtrie/routetable"
)

// Version is set during build using ldflags
var Version = "dev"

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "pathtrie",
		Version: Version,
		Usage:   "Match paths against a trie of route patterns",
		Commands: []*cli.Command{
			matchCommand(),
			routesCommand(),
			serveCommand(),
			{
				Name:  "version",
				Usage: "Print the version information",
				Action: func(_ context.Context, cmd *cli.Command) error {
					fmt.Fprintf(cmd.Root().Writer, "pathtrie version %s\n", cmd.Root().Version)
					return nil
				},
			},
		},
	}
}

func routesFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "routes",
		Aliases: []string{"r"},
		Usage:   "Route table file (.yaml, .yml or .toml). Defaults to the built-in demo table.",
		Sources: cli.EnvVars("PATHTRIE_ROUTES"),
	}
}

// loadTable reads the table named by the --routes flag, or the demo table.
func loadTable(cmd *cli.Command) (*routetable.Table, error) {
	table := routetable.Demo()

	if path := cmd.String("routes"); path != "" {
		var err error
		table, err = routetable.Load(path)
		if err != nil {
			return nil, err
		}
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}

	return table, nil
}
