package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/keiro-dev/keiro/core"
	"github.com/keiro-dev/keiro/cyjson"
	"github.com/keiro-dev/keiro/shortest"
)

func loadGraph(path string) (*core.Graph, error) {
	g, err := cyjson.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load graph: %w", err)
	}

	return g, nil
}

// printShortest renders a shortest-path result for one target: the
// distance and every tied-optimal path.
func printShortest(out io.Writer, res *shortest.Result, targetID string) error {
	if !res.Reached(targetID) {
		fmt.Fprintf(out, "%s is not reachable from %s\n", targetID, res.Source)

		return nil
	}

	paths, err := res.PathsTo(targetID)
	if err != nil {
		return fmt.Errorf("reconstruct paths: %w", err)
	}

	fmt.Fprintf(out, "distance: %d\n", res.Distance(targetID))
	for _, p := range paths {
		fmt.Fprintf(out, "path: %s\n", strings.Join(p, " -> "))
	}

	return nil
}
