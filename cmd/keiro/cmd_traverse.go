package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/keiro-dev/keiro/core"
	"github.com/keiro-dev/keiro/traverse"
)

var walkFlags struct {
	file     string
	start    string
	target   string
	directed bool
}

var dfsCmd = &cobra.Command{
	Use:   "dfs",
	Short: "Depth-first traversal, optionally stopping at a target",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runWalk(cmd, traverse.DFS)
	},
}

var bfsCmd = &cobra.Command{
	Use:   "bfs",
	Short: "Breadth-first traversal, optionally stopping at a target",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runWalk(cmd, traverse.BFS)
	},
}

func init() {
	for _, c := range []*cobra.Command{dfsCmd, bfsCmd} {
		f := c.Flags()
		f.StringVarP(&walkFlags.file, "file", "f", "", "Graph fixture (.json/.yaml) (required)")
		f.StringVar(&walkFlags.start, "start", "", "Start node ID (required)")
		f.StringVar(&walkFlags.target, "target", "", "Stop once this node is discovered")
		f.BoolVar(&walkFlags.directed, "directed", false, "Honor edge direction")

		_ = c.MarkFlagRequired("file")
		_ = c.MarkFlagRequired("start")
	}
}

type walker func(g *core.Graph, startID string, opts ...traverse.Option) (*traverse.Result, error)

func runWalk(cmd *cobra.Command, walk walker) error {
	g, err := loadGraph(walkFlags.file)
	if err != nil {
		return err
	}

	opts := []traverse.Option{}
	if walkFlags.directed {
		opts = append(opts, traverse.WithDirected())
	}
	if walkFlags.target != "" {
		opts = append(opts, traverse.WithTarget(walkFlags.target))
	}

	res, err := walk(g, walkFlags.start, opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, step := range res.Steps {
		fmt.Fprintf(out, "%s -> %s\n", step[0], step[1])
	}
	if walkFlags.target != "" {
		if !res.Reached {
			fmt.Fprintf(out, "%s is not reachable from %s\n", walkFlags.target, walkFlags.start)

			return nil
		}
		path, _ := res.PathTo(walkFlags.target)
		fmt.Fprintf(out, "path: %s\n", strings.Join(path, " -> "))
	}

	return nil
}
