package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"github.com/vitalvas/pathtrie/routetable"
	"github.com/vitalvas/pathtrie/trie"
)

func routesCommand() *cli.Command {
	return &cli.Command{
		Name:  "routes",
		Usage: "List the registered routes in match-tree order",
		Flags: []cli.Flag{
			routesFlag(),
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format: text, yaml or toml",
				Value: "text",
			},
		},
		Action: routesAction,
	}
}

func routesAction(_ context.Context, cmd *cli.Command) error {
	table, err := loadTable(cmd)
	if err != nil {
		return err
	}

	router, err := table.Build()
	if err != nil {
		return err
	}
	defer router.Destroy()

	sorted := &routetable.Table{MaxCaptures: table.MaxCaptures}
	err = router.Walk(func(p trie.Pattern, value any) error {
		route := value.(routetable.Route)
		sorted.Routes = append(sorted.Routes, routetable.Route{
			Pattern: p.Template(),
			Value:   route.Value,
		})
		return nil
	})
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	if format := cmd.String("format"); format != "text" {
		f, err := routetable.ParseFormat(format)
		if err != nil {
			return err
		}
		return routetable.Encode(out, sorted, f)
	}

	for _, route := range sorted.Routes {
		fmt.Fprintf(out, "%s\t%s\n", route.Pattern, route.Value)
	}

	return nil
}
