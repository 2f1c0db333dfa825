// Command iching casts I Ching readings and analyses transformations
// between hexagrams.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/martinmr/iching/config"
	"github.com/martinmr/iching/ops"
)

var (
	// Global flags
	configPath string
	catalogue  string
	verbose    bool

	// Reading flags
	method     string
	randomness string
	question   string
	seed       uint64

	// Analysis flags
	allPaths   bool
	samples    int
	sampleSeed uint64
	graphFrom  int

	cfg    config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "iching",
	Short: "Cast I Ching readings and analyse hexagram transformations",
	Long: `iching casts a reading with yarrow stalks or coins when run without a
subcommand, drawing randomness from random.org or a local generator.

The analyze subcommands search the graph of structural transformations
between the 64 hexagrams: shortest paths, one-step neighbourhoods, and the
cost of walking a whole sequence such as the King Wen order.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("catalogue") {
			cfg.Search.Catalogue = catalogue
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		logger, err = newLogger(cfg.Logging, verbose, cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger.Debug("configuration loaded",
			zap.String("config", configPath),
			zap.String("catalogue", cfg.Search.Catalogue))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runReading,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyse transformations between hexagrams",
}

var shortestDistanceCmd = &cobra.Command{
	Use:   "shortest-distance <start> <end>",
	Short: "Print the shortest transformation paths between two hexagrams",
	Long: `Prints every shortest path from <start> to <end>. Unless --all is
given, only the paths changing the fewest lines in total are shown.

Example:
  iching analyze shortest-distance 1 64 --catalogue extended`,
	Args: cobra.ExactArgs(2),
	RunE: runShortestDistance,
}

var hexagramCmd = &cobra.Command{
	Use:   "hexagram <n>",
	Short: "Print the trigrams and one-step neighbourhood of a hexagram",
	Args:  cobra.ExactArgs(1),
	RunE:  runHexagram,
}

var kingWenCmd = &cobra.Command{
	Use:   "king-wen",
	Short: "Analyse the King Wen sequence",
	Args:  cobra.NoArgs,
	RunE:  runKingWen,
}

var sequenceCmd = &cobra.Command{
	Use:   "sequence <expr>",
	Short: "Analyse an arbitrary hexagram sequence",
	Long: `Analyses a sequence given as comma separated numbers and ranges.
The keyword "all" stands for 1-64.

Examples:
  iching analyze sequence 1,2,3
  iching analyze sequence 64-1
  iching analyze sequence "1-8, 16, 32"`,
	Args: cobra.ExactArgs(1),
	RunE: runSequence,
}

var compareKingWenCmd = &cobra.Command{
	Use:   "compare-king-wen",
	Short: "Compare the King Wen sequence with random shuffles",
	Long: `Compares the King Wen sequence with a random shuffle of the 64
hexagrams. With --samples N greater than one, the shuffle needing the
fewest operations among N is used.`,
	Args: cobra.NoArgs,
	RunE: runCompareKingWen,
}

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Print size, diameter and eccentricities of the transformation graph",
	Long: `Prints the size, distance histogram and eccentricities of the
transformation graph, then the breadth-first levels around --from with one
path to a farthest hexagram.`,
	Args:  cobra.NoArgs,
	RunE:  runGraph,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&catalogue, "catalogue", ops.Canonical.String(), "Operation catalogue: canonical or extended")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.Flags().StringVar(&method, "method", "", "Casting method: yarrow or coins")
	rootCmd.Flags().StringVar(&randomness, "randomness", "", "Randomness source: random or pseudo")
	rootCmd.Flags().StringVarP(&question, "question", "q", "", "Question to record with the reading")
	rootCmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for pseudo randomness (default: current time)")

	shortestDistanceCmd.Flags().BoolVar(&allPaths, "all", false, "Show every shortest path, not only those changing the fewest lines")

	compareKingWenCmd.Flags().IntVarP(&samples, "samples", "n", 0, "Number of random shuffles to draw (default from config)")
	compareKingWenCmd.Flags().Uint64Var(&sampleSeed, "seed", 0, "Seed for the shuffles (default: config, else current time)")

	graphCmd.Flags().IntVar(&graphFrom, "from", 1, "Hexagram to print breadth-first levels from")

	analyzeCmd.AddCommand(shortestDistanceCmd, hexagramCmd, kingWenCmd, sequenceCmd, compareKingWenCmd, graphCmd)
	rootCmd.AddCommand(analyzeCmd)
}

// newLogger builds a production-configured zap logger writing to w.
func newLogger(lc config.LoggingConfig, verbose bool, w io.Writer) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)

	enc := zapcore.NewJSONEncoder(zc.EncoderConfig)
	if lc.Format == "console" {
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(zc.EncoderConfig)
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), zc.Level)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
