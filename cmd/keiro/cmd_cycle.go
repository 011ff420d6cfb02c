package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keiro-dev/keiro/traverse"
)

var cycleFlags struct {
	file     string
	start    string
	directed bool
}

var cycleCmd = &cobra.Command{
	Use:   "cycle",
	Short: "Report whether the graph contains a cycle",
	RunE:  runCycle,
}

func init() {
	f := cycleCmd.Flags()
	f.StringVarP(&cycleFlags.file, "file", "f", "", "Graph fixture (.json/.yaml) (required)")
	f.StringVar(&cycleFlags.start, "start", "", "Probe a single component from this node only")
	f.BoolVar(&cycleFlags.directed, "directed", false, "Honor edge direction")

	_ = cycleCmd.MarkFlagRequired("file")
}

func runCycle(cmd *cobra.Command, _ []string) error {
	g, err := loadGraph(cycleFlags.file)
	if err != nil {
		return err
	}

	var opts []traverse.Option
	if cycleFlags.directed {
		opts = append(opts, traverse.WithDirected())
	}

	var cyclic bool
	if cycleFlags.start != "" {
		cyclic, err = traverse.DetectCycleFrom(g, cycleFlags.start, opts...)
	} else {
		cyclic, err = traverse.DetectCycle(g, opts...)
	}
	if err != nil {
		return err
	}

	if cyclic {
		fmt.Fprintln(cmd.OutOrStdout(), "cycle detected")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "no cycle")
	}

	return nil
}
