// Package flow computes maximum flow with the Ford-Fulkerson method.
//
// The engine never mutates the input graph. It first materializes a
// residual network: every original edge (u,v,w) becomes a forward edge
// with capacity w and flow 0, plus a paired reverse edge (v,u) whose
// capacity mirrors the flow already pushed forward, so crossing it cancels
// that flow. The pair members reference each other by ID so an update to
// one side keeps the other consistent.
//
// Augmentation then repeats a directed DFS over the residual network,
// restricted to edges with remaining capacity, pushes the bottleneck
// amount along the found path, and stops when the target becomes
// unreachable. Any source→target path will do; reachability is all that
// matters, not path quality.
package flow
