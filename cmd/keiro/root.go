package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "keiro",
	Short: "Classical graph algorithms over cytoscape.js element files",
	Long: "Keiro runs shortest-path, traversal, spanning-tree and max-flow\n" +
		"algorithms over graphs described as cytoscape.js element lists\n" +
		"(JSON or YAML).",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(dijkstraCmd)
	rootCmd.AddCommand(astarCmd)
	rootCmd.AddCommand(bellmanFordCmd)
	rootCmd.AddCommand(dfsCmd)
	rootCmd.AddCommand(bfsCmd)
	rootCmd.AddCommand(cycleCmd)
	rootCmd.AddCommand(mstCmd)
	rootCmd.AddCommand(maxflowCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
