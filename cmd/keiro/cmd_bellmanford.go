package main

import (
	"github.com/spf13/cobra"

	"github.com/keiro-dev/keiro/shortest"
)

var bellmanFordFlags struct {
	file     string
	source   string
	target   string
	directed bool
}

var bellmanFordCmd = &cobra.Command{
	Use:   "bellman-ford",
	Short: "Shortest paths from a source node (negative weights allowed)",
	RunE:  runBellmanFord,
}

func init() {
	f := bellmanFordCmd.Flags()
	f.StringVarP(&bellmanFordFlags.file, "file", "f", "", "Graph fixture (.json/.yaml) (required)")
	f.StringVar(&bellmanFordFlags.source, "source", "", "Source node ID (required)")
	f.StringVar(&bellmanFordFlags.target, "target", "", "Target node ID (required)")
	f.BoolVar(&bellmanFordFlags.directed, "directed", false, "Honor edge direction")

	_ = bellmanFordCmd.MarkFlagRequired("file")
	_ = bellmanFordCmd.MarkFlagRequired("source")
	_ = bellmanFordCmd.MarkFlagRequired("target")
}

func runBellmanFord(cmd *cobra.Command, _ []string) error {
	g, err := loadGraph(bellmanFordFlags.file)
	if err != nil {
		return err
	}

	var opts []shortest.Option
	if bellmanFordFlags.directed {
		opts = append(opts, shortest.WithDirected())
	}
	res, err := shortest.BellmanFord(g, bellmanFordFlags.source, opts...)
	if err != nil {
		return err
	}

	return printShortest(cmd.OutOrStdout(), res, bellmanFordFlags.target)
}
