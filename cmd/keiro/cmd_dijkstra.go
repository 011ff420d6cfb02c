package main

import (
	"github.com/spf13/cobra"

	"github.com/keiro-dev/keiro/shortest"
)

var dijkstraFlags struct {
	file     string
	source   string
	target   string
	directed bool
}

var dijkstraCmd = &cobra.Command{
	Use:   "dijkstra",
	Short: "Shortest paths from a source node (non-negative weights)",
	RunE:  runDijkstra,
}

func init() {
	f := dijkstraCmd.Flags()
	f.StringVarP(&dijkstraFlags.file, "file", "f", "", "Graph fixture (.json/.yaml) (required)")
	f.StringVar(&dijkstraFlags.source, "source", "", "Source node ID (required)")
	f.StringVar(&dijkstraFlags.target, "target", "", "Target node ID (required)")
	f.BoolVar(&dijkstraFlags.directed, "directed", false, "Honor edge direction")

	_ = dijkstraCmd.MarkFlagRequired("file")
	_ = dijkstraCmd.MarkFlagRequired("source")
	_ = dijkstraCmd.MarkFlagRequired("target")
}

func runDijkstra(cmd *cobra.Command, _ []string) error {
	g, err := loadGraph(dijkstraFlags.file)
	if err != nil {
		return err
	}

	var opts []shortest.Option
	if dijkstraFlags.directed {
		opts = append(opts, shortest.WithDirected())
	}
	res, err := shortest.Dijkstra(g, dijkstraFlags.source, opts...)
	if err != nil {
		return err
	}

	return printShortest(cmd.OutOrStdout(), res, dijkstraFlags.target)
}
