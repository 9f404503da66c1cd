// Package builder constructs classic graph topologies for experiments
// and test fixtures: cycles, paths, stars, complete graphs, and grids.
//
// Every constructor is deterministic: node IDs follow a fixed scheme
// ("N0".."N<n-1>", or "<row>_<col>" for grids) and edges are emitted in
// ascending index order, so the listed neighbor order — and therefore any
// traversal over the result — is reproducible.
//
// WriteCSV serializes any core.Graph back into the adjacency-list CSV
// format the csvgraph loader reads, which is how the CLI's generate
// command produces sample input files.
//
// Errors:
//
//   - ErrTooFewNodes if a constructor is asked for a degenerate size.
package builder
