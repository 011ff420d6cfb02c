package main

import (
	"github.com/spf13/cobra"

	"github.com/keiro-dev/keiro/shortest"
)

var astarFlags struct {
	file      string
	source    string
	target    string
	directed  bool
	euclidean bool
}

var astarCmd = &cobra.Command{
	Use:   "astar",
	Short: "Goal-directed shortest path with an optional distance heuristic",
	RunE:  runAStar,
}

func init() {
	f := astarCmd.Flags()
	f.StringVarP(&astarFlags.file, "file", "f", "", "Graph fixture (.json/.yaml) (required)")
	f.StringVar(&astarFlags.source, "source", "", "Source node ID (required)")
	f.StringVar(&astarFlags.target, "target", "", "Target node ID (required)")
	f.BoolVar(&astarFlags.directed, "directed", false, "Honor edge direction")
	f.BoolVar(&astarFlags.euclidean, "euclidean", false, "Estimate remaining cost from node positions")

	_ = astarCmd.MarkFlagRequired("file")
	_ = astarCmd.MarkFlagRequired("source")
	_ = astarCmd.MarkFlagRequired("target")
}

func runAStar(cmd *cobra.Command, _ []string) error {
	g, err := loadGraph(astarFlags.file)
	if err != nil {
		return err
	}

	var opts []shortest.Option
	if astarFlags.directed {
		opts = append(opts, shortest.WithDirected())
	}
	if astarFlags.euclidean {
		opts = append(opts, shortest.WithHeuristic(shortest.ScaledEuclidean))
	}
	res, err := shortest.AStar(g, astarFlags.source, astarFlags.target, opts...)
	if err != nil {
		return err
	}

	return printShortest(cmd.OutOrStdout(), res, astarFlags.target)
}
