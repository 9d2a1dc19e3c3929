package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"
	"github.com/vitalvas/pathtrie/routetable"
	"github.com/vitalvas/pathtrie/trie"
)

func matchCommand() *cli.Command {
	return &cli.Command{
		Name:      "match",
		Usage:     "Match paths and print the route and captures of each",
		ArgsUsage: "PATH...",
		Flags: []cli.Flag{
			routesFlag(),
			&cli.IntFlag{
				Name:  "max-captures",
				Usage: "Capture capacity of the result buffer (0 uses the table setting)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print one JSON object per path",
			},
		},
		Action: matchAction,
	}
}

type captureOutput struct {
	Index int    `json:"index"`
	Slug  string `json:"slug,omitempty"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

type matchOutput struct {
	Path     string          `json:"path"`
	Found    bool            `json:"found"`
	Pattern  string          `json:"pattern,omitempty"`
	Value    string          `json:"value,omitempty"`
	Captures []captureOutput `json:"captures,omitempty"`
}

func matchAction(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() == 0 {
		return fmt.Errorf("at least one path is required")
	}

	table, err := loadTable(cmd)
	if err != nil {
		return err
	}

	router, err := table.Build()
	if err != nil {
		return err
	}
	defer router.Destroy()

	capacity := table.Captures()
	if n := cmd.Int("max-captures"); n > 0 {
		capacity = int(n)
	}

	res := trie.NewMatchResult(capacity)
	defer res.Release()

	out := cmd.Root().Writer
	enc := json.NewEncoder(out)

	for _, path := range cmd.Args().Slice() {
		result := matchPath(router, res, path)
		if cmd.Bool("json") {
			if err := enc.Encode(result); err != nil {
				return err
			}
			continue
		}
		writeMatchText(out, result)
	}

	return nil
}

func matchPath(router *trie.Router, res *trie.MatchResult, path string) matchOutput {
	result := matchOutput{Path: path}
	if !router.Match(path, res) {
		return result
	}

	route := res.Value().(routetable.Route)
	result.Found = true
	result.Pattern = route.Pattern
	result.Value = route.Value

	for i := 0; i < res.Count(); i++ {
		start, end := res.Span(i)
		result.Captures = append(result.Captures, captureOutput{
			Index: i,
			Slug:  res.SlugName(i),
			Start: start,
			End:   end,
			Text:  path[start:end],
		})
	}

	return result
}

func writeMatchText(w io.Writer, m matchOutput) {
	if !m.Found {
		fmt.Fprintf(w, "match for URL %s: NOT FOUND\n", m.Path)
		return
	}

	fmt.Fprintf(w, "match for URL %s: %s\n", m.Path, m.Value)
	for _, c := range m.Captures {
		slug := c.Slug
		if slug == "" {
			slug = "no slug"
		}
		fmt.Fprintf(w, "\tcapture %d (%s): %s\n", c.Index, slug, c.Text)
	}
}
