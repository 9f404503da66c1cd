package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/no-hao/GraphTraversalCLI/bfs"
	"github.com/no-hao/GraphTraversalCLI/config"
	"github.com/no-hao/GraphTraversalCLI/core"
	"github.com/no-hao/GraphTraversalCLI/csvgraph"
	"github.com/no-hao/GraphTraversalCLI/dfs"
	"github.com/no-hao/GraphTraversalCLI/prompt"
	"github.com/no-hao/GraphTraversalCLI/ux"
	"github.com/no-hao/GraphTraversalCLI/viz"
)

// Algorithm headings, matching the tool's historical output.
const (
	bfsHeading = "Breadth-first traversal"
	dfsHeading = "Depth-first search"
)

// session carries the configuration and streams for one invocation, so
// the whole flow is testable with in-memory buffers.
type session struct {
	cfg  config.Config
	in   io.Reader
	out  io.Writer
	errw io.Writer
}

// runOptions is the resolved set of per-run switches, whether they came
// from prompts or flags.
type runOptions struct {
	print     bool
	debugBFS  bool
	debugDFS  bool
	vizPrefix string // empty disables DOT export
}

// scriptedArgs are the non-interactive inputs.
type scriptedArgs struct {
	file      string
	from      string
	to        string
	print     bool
	debugBFS  bool
	debugDFS  bool
	visualize string
}

// loaderOptions maps config onto csvgraph options.
func (s *session) loaderOptions() []csvgraph.Option {
	var opts []csvgraph.Option
	if s.cfg.Header {
		opts = append(opts, csvgraph.WithHeader())
	}
	if s.cfg.Mirrored {
		opts = append(opts, csvgraph.WithGraphOptions(core.WithMirroredEdges()))
	}

	return opts
}

// runInteractive is the prompt-driven flow: ask for a file until one
// loads, ask for nodes until both exist, collect the output switches,
// then run both traversals. 'exit' anywhere ends the run cleanly.
func (s *session) runInteractive() error {
	p := prompt.New(s.in, s.out)

	for {
		fileAns, err := p.CSVPath("Please enter the file name and extension (or type 'exit' to quit): ")
		if err != nil {
			return err
		}
		if fileAns.Aborted {
			ux.Infof(s.out, "Exiting...")
			return nil
		}

		g, err := csvgraph.Load(fileAns.Value, s.loaderOptions()...)
		if err != nil {
			ux.Errorf(s.out, "Error loading graph: %v. Please check the file name and try again.", err)
			continue
		}

		from, to, aborted, err := s.promptNodes(p, g)
		if err != nil {
			return err
		}
		if aborted {
			ux.Infof(s.out, "Exiting...")
			return nil
		}

		opts, aborted, err := s.promptOptions(p, fileAns.Value)
		if err != nil {
			return err
		}
		if aborted {
			ux.Infof(s.out, "Exiting...")
			return nil
		}

		return s.execute(g, from, to, opts)
	}
}

// promptNodes asks for start and end IDs until both exist in the graph.
// Unknown nodes are reported before any traversal is attempted.
func (s *session) promptNodes(p *prompt.Prompter, g *core.Graph) (from, to string, aborted bool, err error) {
	for {
		fromAns, perr := p.String("Start node (or type 'exit' to quit): ")
		if perr != nil || fromAns.Aborted {
			return "", "", fromAns.Aborted, perr
		}
		toAns, perr := p.String("End node (or type 'exit' to quit): ")
		if perr != nil || toAns.Aborted {
			return "", "", toAns.Aborted, perr
		}

		if !g.HasNode(fromAns.Value) || !g.HasNode(toAns.Value) {
			ux.Errorf(s.out, "Invalid input: node ID not present in the graph. Please try again.")
			continue
		}

		return fromAns.Value, toAns.Value, false, nil
	}
}

// promptOptions collects the print/debug/visualize switches.
func (s *session) promptOptions(p *prompt.Prompter, csvPath string) (runOptions, bool, error) {
	var opts runOptions

	printAns, err := p.String("Enter p to print the graph, or press Enter to continue: ")
	if err != nil || printAns.Aborted {
		return opts, printAns.Aborted, err
	}
	opts.print = printAns.Is("p")

	debugAns, err := p.String("Enter d to enable debug mode (verbose output), b to debug BFS, f to debug DFS, or press Enter to continue: ")
	if err != nil || debugAns.Aborted {
		return opts, debugAns.Aborted, err
	}
	opts.debugBFS = debugAns.Is("d") || debugAns.Is("b")
	opts.debugDFS = debugAns.Is("d") || debugAns.Is("f")

	vizAns, err := p.String("Enter v to visualize the graph and the path found, or press Enter to continue: ")
	if err != nil || vizAns.Aborted {
		return opts, vizAns.Aborted, err
	}
	if vizAns.Is("v") {
		opts.vizPrefix = strings.TrimSuffix(csvPath, ".csv")
	}

	return opts, false, nil
}

// runScripted is the flag-driven flow: one traversal pair, no prompts.
// Unknown nodes and load failures are hard errors here, since there is
// nobody to re-ask.
func (s *session) runScripted(args scriptedArgs) error {
	logger := slog.New(slog.NewTextHandler(s.errw, nil))

	if args.from == "" || args.to == "" {
		return fmt.Errorf("--from and --to are required with --file")
	}

	g, err := csvgraph.Load(args.file, s.loaderOptions()...)
	if err != nil {
		return err
	}
	logger.Info("graph loaded", "file", args.file, "nodes", g.NodeCount(), "edges", g.EdgeCount())

	if !g.HasNode(args.from) {
		return fmt.Errorf("start node %q not present in the graph", args.from)
	}
	if !g.HasNode(args.to) {
		return fmt.Errorf("end node %q not present in the graph", args.to)
	}

	return s.execute(g, args.from, args.to, runOptions{
		print:     args.print,
		debugBFS:  args.debugBFS,
		debugDFS:  args.debugDFS,
		vizPrefix: args.visualize,
	})
}

// execute runs BFS then DFS over g and renders both outcomes.
func (s *session) execute(g *core.Graph, from, to string, opts runOptions) error {
	if opts.print {
		if err := ux.PrintAdjacency(s.out, g); err != nil {
			return err
		}
	}

	if err := s.runBFS(g, from, to, opts); err != nil {
		return err
	}

	return s.runDFS(g, from, to, opts)
}

// traversalContext applies the configured timeout, if any.
func (s *session) traversalContext() (context.Context, context.CancelFunc) {
	if s.cfg.Timeout > 0 {
		return context.WithTimeout(context.Background(), s.cfg.Timeout)
	}

	return context.Background(), func() {}
}

func (s *session) runBFS(g *core.Graph, from, to string, opts runOptions) error {
	ctx, cancel := s.traversalContext()
	defer cancel()

	bopts := []bfs.Option{
		bfs.WithContext(ctx),
		bfs.WithGoal(to),
		bfs.WithMaxDepth(s.cfg.MaxDepth),
		bfs.WithMaxFrontier(s.cfg.MaxFrontier),
	}
	if opts.debugBFS {
		bopts = append(bopts, bfs.WithOnDequeue(func(id string, depth, frontier int) {
			ux.Infof(s.errw, "bfs: expand %s depth=%d frontier=%d", id, depth, frontier)
		}))
	}

	res, err := bfs.BFS(g, from, bopts...)
	if err != nil {
		return fmt.Errorf("breadth-first search: %w", err)
	}
	if !res.FoundGoal {
		ux.PrintNoPath(s.out, "breadth-first traversal")
		return nil
	}

	path, err := res.PathTo(to)
	if err != nil {
		return fmt.Errorf("breadth-first search: %w", err)
	}
	ux.PrintPath(s.out, bfsHeading, path)

	return s.exportDOT(g, path, opts.vizPrefix, "bfs")
}

func (s *session) runDFS(g *core.Graph, from, to string, opts runOptions) error {
	ctx, cancel := s.traversalContext()
	defer cancel()

	dopts := []dfs.Option{
		dfs.WithContext(ctx),
		dfs.WithGoal(to),
		dfs.WithMaxDepth(s.cfg.MaxDepth),
		dfs.WithMaxStack(s.cfg.MaxStack),
	}
	if opts.debugDFS {
		dopts = append(dopts,
			dfs.WithOnVisit(func(id string, depth, stack int) error {
				ux.Infof(s.errw, "dfs: visit %s depth=%d stack=%d", id, depth, stack)
				return nil
			}),
			dfs.WithOnBacktrack(func(id string, depth int) {
				ux.Infof(s.errw, "dfs: backtrack %s depth=%d", id, depth)
			}),
		)
	}

	res, err := dfs.DFS(g, from, dopts...)
	if err != nil {
		return fmt.Errorf("depth-first search: %w", err)
	}
	if !res.FoundGoal {
		ux.PrintNoPath(s.out, "depth-first search")
		return nil
	}

	path, err := res.PathTo(to)
	if err != nil {
		return fmt.Errorf("depth-first search: %w", err)
	}
	ux.PrintPath(s.out, dfsHeading, path)

	return s.exportDOT(g, path, opts.vizPrefix, "dfs")
}

// exportDOT writes <prefix>_<algo>.dot when visualization is enabled.
func (s *session) exportDOT(g *core.Graph, path []string, prefix, algo string) error {
	if prefix == "" {
		return nil
	}

	name := fmt.Sprintf("%s_%s.dot", prefix, algo)
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("visualize: %w", err)
	}
	defer f.Close()

	if err = viz.WriteDOT(f, g, path); err != nil {
		return fmt.Errorf("visualize: %w", err)
	}
	ux.Successf(s.out, "Wrote %s (render with: dot -Tpng %s -o %s.png)", name, name, strings.TrimSuffix(name, ".dot"))

	return nil
}
