// Package csvgraph loads a core.Graph from a CSV adjacency list.
//
// Format
//
//	One row per node, variable length:
//
//	    node_id,neighbor1_id,neighbor2_id,...
//
//	Node IDs are opaque strings; surrounding whitespace is trimmed. Blank
//	neighbor cells and fully blank rows are skipped. A leading UTF-8 byte
//	order mark is stripped, since spreadsheet exports routinely carry one.
//
// Listed order of neighbors is preserved in the resulting graph, which is
// what makes traversal results over the file reproducible.
//
// Errors
//
//   - ErrEmptyGraph if the input contains no data rows.
//   - Wrapped *csv.ParseError / I/O errors for malformed or unreadable input.
package csvgraph
