package main

import (
	"fmt"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/martinmr/iching/graph"
	"github.com/martinmr/iching/reading"
	"github.com/martinmr/iching/report"
	"github.com/martinmr/iching/search"
	"github.com/martinmr/iching/sequence"
)

// now is the clock behind unseeded runs.
var now = time.Now

func runReading(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("method") {
		cfg.Reading.Method = method
	}
	if cmd.Flags().Changed("randomness") {
		cfg.Reading.Randomness = randomness
	}
	m, err := cfg.Method()
	if err != nil {
		return err
	}
	mode, err := cfg.Randomness()
	if err != nil {
		return err
	}
	s := seed
	if !cmd.Flags().Changed("seed") {
		s = uint64(now().UnixNano())
	}

	src, err := reading.NewSource(mode, s,
		reading.WithHTTPClient(&http.Client{Timeout: cfg.Reading.Timeout}),
		reading.WithBaseURL(cfg.Reading.RandomOrgURL),
		reading.WithRateLimit(cfg.Reading.RequestsPerSecond, cfg.Reading.Burst),
		reading.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	logger.Debug("casting reading", zap.Stringer("method", m), zap.Stringer("randomness", mode))

	r, err := reading.Generate(cmd.Context(), m, src, question)
	if err != nil {
		return fmt.Errorf("cast reading: %w", err)
	}
	p := report.New(cmd.OutOrStdout())
	p.Reading(r)
	return p.Err()
}

func runShortestDistance(cmd *cobra.Command, args []string) error {
	start, err := parseHexagramArg("start", args[0])
	if err != nil {
		return err
	}
	end, err := parseHexagramArg("end", args[1])
	if err != nil {
		return err
	}
	cat, err := cfg.Catalogue()
	if err != nil {
		return err
	}

	paths, err := search.FindShortestPaths(start, end,
		search.WithCatalogue(cat),
		search.WithAll(allPaths || cfg.Search.All),
		search.WithContext(cmd.Context()),
	)
	if err != nil {
		return err
	}
	p := report.New(cmd.OutOrStdout())
	p.SearchResult(start, end, paths)
	return p.Err()
}

func runHexagram(cmd *cobra.Command, args []string) error {
	n, err := parseHexagramArg("hexagram", args[0])
	if err != nil {
		return err
	}
	cat, err := cfg.Catalogue()
	if err != nil {
		return err
	}
	a, err := graph.Analyze(n, cat)
	if err != nil {
		return err
	}
	p := report.New(cmd.OutOrStdout())
	p.HexagramAnalysis(a)
	return p.Err()
}

func runKingWen(cmd *cobra.Command, args []string) error {
	return analyzeAndPrint(cmd, sequence.KingWen())
}

func runSequence(cmd *cobra.Command, args []string) error {
	seq, err := sequence.ParseSequence(args[0])
	if err != nil {
		return err
	}
	return analyzeAndPrint(cmd, seq)
}

func analyzeAndPrint(cmd *cobra.Command, seq []int) error {
	opts, err := sequenceOptions()
	if err != nil {
		return err
	}
	a, err := sequence.AnalyzeContext(cmd.Context(), seq, opts...)
	if err != nil {
		return err
	}
	p := report.New(cmd.OutOrStdout())
	p.Analysis(a)
	return p.Err()
}

func runCompareKingWen(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("samples") {
		cfg.Sequence.Samples = samples
	}
	if cfg.Sequence.Samples < 1 {
		return fmt.Errorf("%w: got %d", sequence.ErrBadSampleCount, cfg.Sequence.Samples)
	}
	opts, err := sequenceOptions()
	if err != nil {
		return err
	}
	opts = append(opts, shuffleOption(cmd.Flags().Changed("seed")))
	ctx := cmd.Context()

	kw, err := sequence.AnalyzeContext(ctx, sequence.KingWen(), opts...)
	if err != nil {
		return err
	}
	rnd, err := sequence.FindMinRandom(ctx, cfg.Sequence.Samples, opts...)
	if err != nil {
		return err
	}
	logger.Debug("king wen compared",
		zap.Int("samples", cfg.Sequence.Samples),
		zap.Int("king_wen_ops", kw.TotalOps),
		zap.Int("random_ops", rnd.TotalOps))

	p := report.New(cmd.OutOrStdout())
	p.Comparison(sequence.Compare(kw, rnd))
	return p.Err()
}

func runGraph(cmd *cobra.Command, args []string) error {
	cat, err := cfg.Catalogue()
	if err != nil {
		return err
	}
	g, err := graph.Build(cat)
	if err != nil {
		return err
	}
	levels, err := g.Levels(graphFrom, graph.WithContext(cmd.Context()))
	if err != nil {
		return err
	}
	p := report.New(cmd.OutOrStdout())
	p.GraphSummary(g, g.DistanceMatrix())
	p.Levels(g, levels)
	return p.Err()
}

func sequenceOptions() ([]sequence.Option, error) {
	cat, err := cfg.Catalogue()
	if err != nil {
		return nil, err
	}
	opts := []sequence.Option{
		sequence.WithCatalogue(cat),
		sequence.WithLogger(logger),
	}
	if cfg.Sequence.Workers > 0 {
		opts = append(opts, sequence.WithWorkers(cfg.Sequence.Workers))
	}
	return opts, nil
}

// shuffleOption seeds the random permutations from --seed, then from the
// config, and otherwise from the clock.
func shuffleOption(seedFlag bool) sequence.Option {
	switch {
	case seedFlag:
		return sequence.WithSeed(sampleSeed)
	case cfg.Sequence.Seed != 0:
		return sequence.WithSeed(cfg.Sequence.Seed)
	}
	t := uint64(now().UnixNano())
	logger.Debug("shuffle seed drawn from clock", zap.Uint64("clock", t))
	return sequence.WithRand(rand.New(rand.NewPCG(t, t^0x9e3779b97f4a7c15)))
}

func parseHexagramArg(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a hexagram number", name, s)
	}
	return n, nil
}
