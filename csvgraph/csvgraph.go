package csvgraph

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/no-hao/GraphTraversalCLI/core"
)

// ErrEmptyGraph is returned when the input contains no data rows.
var ErrEmptyGraph = errors.New("csvgraph: no data rows")

// utf8BOM is the byte order mark some editors and spreadsheet exports
// prepend to CSV files.
const utf8BOM = "\xef\xbb\xbf"

// Option configures loading behavior via functional arguments.
type Option func(*options)

type options struct {
	header    bool
	comma     rune
	graphOpts []core.GraphOption
}

func defaultOptions() options {
	return options{
		header: false,
		comma:  ',',
	}
}

// WithHeader skips the first row of the file. Some adjacency exports
// carry a column header line.
func WithHeader() Option {
	return func(o *options) { o.header = true }
}

// WithComma sets the field separator (default ',').
func WithComma(r rune) Option {
	return func(o *options) {
		if r != 0 {
			o.comma = r
		}
	}
}

// WithGraphOptions forwards options to the underlying core.NewGraph call,
// e.g. core.WithMirroredEdges for an undirected reading of the file.
func WithGraphOptions(opts ...core.GraphOption) Option {
	return func(o *options) { o.graphOpts = append(o.graphOpts, opts...) }
}

// Load reads the CSV adjacency list at path into a core.Graph.
// The file handle is closed before returning.
func Load(path string, opts ...Option) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csvgraph: open %q: %w", path, err)
	}
	defer f.Close()

	g, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("csvgraph: parse %q: %w", path, err)
	}

	return g, nil
}

// Parse reads a CSV adjacency list from r into a core.Graph.
// Rows may have any number of neighbor columns; blank cells are skipped.
func Parse(r io.Reader, opts ...Option) (*core.Graph, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	reader := csv.NewReader(stripBOM(r))
	reader.Comma = o.comma
	reader.FieldsPerRecord = -1 // variable-length rows
	reader.TrimLeadingSpace = true

	g := core.NewGraph(o.graphOpts...)

	first := true
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csvgraph: read: %w", err)
		}
		if first && o.header {
			first = false
			continue
		}
		first = false

		node := strings.TrimSpace(row[0])
		if node == "" {
			// fully blank row, or a row with no usable key
			continue
		}
		if aerr := g.AddNode(node); aerr != nil {
			return nil, fmt.Errorf("csvgraph: node %q: %w", node, aerr)
		}
		for _, cell := range row[1:] {
			nbr := strings.TrimSpace(cell)
			if nbr == "" {
				continue
			}
			if aerr := g.AddEdge(node, nbr); aerr != nil {
				return nil, fmt.Errorf("csvgraph: edge %q→%q: %w", node, nbr, aerr)
			}
		}
	}

	if g.NodeCount() == 0 {
		return nil, ErrEmptyGraph
	}

	return g, nil
}

// stripBOM removes a leading UTF-8 byte order mark, if present.
func stripBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	lead, err := br.Peek(len(utf8BOM))
	if err == nil && string(lead) == utf8BOM {
		_, _ = br.Discard(len(utf8BOM))
	}

	return br
}
