// Package cyjson reads and writes graphs in the cytoscape.js element
// format: a flat list of elements, each either a node or an edge, with the
// payload under a "data" key and an optional "position" for nodes.
//
// Fixtures can be JSON or YAML; Load picks the decoder from the file
// extension. An element with an explicit "group" tag is classified by it,
// otherwise the presence of both "source" and "target" marks an edge.
// Edge weights default to 1 when absent; elements without an ID are
// dropped unless WithGeneratedIDs assigns them one.
package cyjson
