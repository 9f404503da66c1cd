package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/no-hao/GraphTraversalCLI/config"
)

// defaultConfigPath is checked when --config is not given.
const defaultConfigPath = ".graphtraversal.yaml"

var (
	cfgFile string

	// traversal flags (non-interactive mode)
	flagFile      string
	flagFrom      string
	flagTo        string
	flagPrint     bool
	flagDebug     bool
	flagDebugBFS  bool
	flagDebugDFS  bool
	flagVisualize string
	flagMirrored  bool
	flagHeader    bool
)

var rootCmd = &cobra.Command{
	Use:   "graphtraversal",
	Short: "Find paths in a CSV adjacency-list graph with BFS and DFS",
	Long: `graphtraversal loads a graph from a CSV adjacency list
(node,neighbor1,neighbor2,...) and finds a path between two nodes using
breadth-first and depth-first search.

With no flags it runs an interactive prompt sequence; typing 'exit' at
any prompt quits. With --file/--from/--to it runs a single scripted
traversal, suitable for pipelines and tests.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		s := &session{
			cfg:  cfg,
			in:   os.Stdin,
			out:  os.Stdout,
			errw: os.Stderr,
		}
		if flagFile != "" {
			return s.runScripted(scriptedArgs{
				file:      flagFile,
				from:      flagFrom,
				to:        flagTo,
				print:     flagPrint,
				debugBFS:  flagDebug || flagDebugBFS,
				debugDFS:  flagDebug || flagDebugDFS,
				visualize: flagVisualize,
			})
		}

		return s.runInteractive()
	},
}

// resolveConfig layers the optional YAML file over defaults, then lets
// explicit flags win over both.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	path := cfgFile
	if path == "" {
		path = defaultConfigPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("mirrored") {
		cfg.Mirrored = flagMirrored
	}
	if cmd.Flags().Changed("header") {
		cfg.Header = flagHeader
	}
	if err = cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default "+defaultConfigPath+")")
	rootCmd.PersistentFlags().BoolVar(&flagMirrored, "mirrored", false,
		"load CSV rows as undirected edges")
	rootCmd.PersistentFlags().BoolVar(&flagHeader, "header", false,
		"skip the first CSV row")

	rootCmd.Flags().StringVar(&flagFile, "file", "", "CSV adjacency-list file (enables scripted mode)")
	rootCmd.Flags().StringVar(&flagFrom, "from", "", "start node ID")
	rootCmd.Flags().StringVar(&flagTo, "to", "", "end node ID")
	rootCmd.Flags().BoolVar(&flagPrint, "print", false, "print the adjacency list")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "trace both traversals")
	rootCmd.Flags().BoolVar(&flagDebugBFS, "debug-bfs", false, "trace the BFS traversal only")
	rootCmd.Flags().BoolVar(&flagDebugDFS, "debug-dfs", false, "trace the DFS traversal only")
	rootCmd.Flags().StringVar(&flagVisualize, "visualize", "",
		"write <prefix>_bfs.dot and <prefix>_dfs.dot Graphviz files")

	rootCmd.AddCommand(generateCmd)
}
