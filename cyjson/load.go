package cyjson

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/keiro-dev/keiro/core"
)

// Load reads a fixture file and builds the graph it describes. The
// decoder follows the extension: .json, .yaml or .yml; anything else is
// ErrUnknownFormat.
func Load(path string, opts ...Option) (*core.Graph, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cyjson: read fixture: %w", err)
	}

	var elements []Element
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(raw, &elements)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &elements)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("cyjson: decode %s: %w", filepath.Base(path), err)
	}

	return Build(elements, opts...)
}

// Unmarshal decodes a JSON element list and builds the graph.
func Unmarshal(raw []byte, opts ...Option) (*core.Graph, error) {
	var elements []Element
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil, fmt.Errorf("cyjson: decode elements: %w", err)
	}

	return Build(elements, opts...)
}

// Build assembles a graph from an element list. Nodes are added first so
// that edges can be validated against them regardless of element order;
// within each kind, list order is preserved. An edge naming a missing
// endpoint fails with core.ErrInvalidEdge, wrapped with the edge's ID.
func Build(elements []Element, opts ...Option) (*core.Graph, error) {
	o := buildOptions(opts)

	kept := make([]Element, 0, len(elements))
	for _, ele := range elements {
		if ele.Data.ID == "" {
			if !o.GenerateIDs {
				continue
			}
			ele.Data.ID = newID()
		}
		kept = append(kept, ele)
	}

	g := core.NewGraph()
	for _, ele := range kept {
		if ele.isEdge() {
			continue
		}
		var nodeOpts []core.NodeOption
		if ele.Position != nil {
			nodeOpts = append(nodeOpts, core.WithPosition(ele.Position.X, ele.Position.Y))
		}
		if err := g.AddNode(ele.Data.ID, nodeOpts...); err != nil {
			return nil, fmt.Errorf("cyjson: node %q: %w", ele.Data.ID, err)
		}
	}
	for _, ele := range kept {
		if !ele.isEdge() {
			continue
		}
		if err := g.AddEdge(ele.Data.ID, ele.Data.Source, ele.Data.Target, ele.weight()); err != nil {
			return nil, fmt.Errorf("cyjson: edge %q: %w", ele.Data.ID, err)
		}
	}

	return g, nil
}
