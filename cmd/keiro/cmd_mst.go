package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keiro-dev/keiro/mst"
)

var mstFlags struct {
	file   string
	method string
	source string
}

var mstCmd = &cobra.Command{
	Use:   "mst",
	Short: "Build a minimum spanning tree (Kruskal or Prim)",
	RunE:  runMST,
}

func init() {
	f := mstCmd.Flags()
	f.StringVarP(&mstFlags.file, "file", "f", "", "Graph fixture (.json/.yaml) (required)")
	f.StringVar(&mstFlags.method, "method", "kruskal", "Construction method: kruskal or prim")
	f.StringVar(&mstFlags.source, "source", "", "Root node for prim (defaults to the first node)")

	_ = mstCmd.MarkFlagRequired("file")
}

func runMST(cmd *cobra.Command, _ []string) error {
	g, err := loadGraph(mstFlags.file)
	if err != nil {
		return err
	}

	var method mst.Method
	switch mstFlags.method {
	case "kruskal":
		method = mst.MethodKruskal
	case "prim":
		method = mst.MethodPrim
	default:
		return fmt.Errorf("unknown method %q (want kruskal or prim)", mstFlags.method)
	}

	var opts []mst.Option
	if mstFlags.source != "" {
		opts = append(opts, mst.WithSource(mstFlags.source))
	}
	res, err := mst.Compute(g, method, opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, e := range res.Edges {
		fmt.Fprintf(out, "%s: %s -- %s (%d)\n", e.ID, e.Source, e.Target, e.Weight)
	}
	fmt.Fprintf(out, "edges: %d, total weight: %d\n", len(res.Edges), res.TotalWeight)

	return nil
}
