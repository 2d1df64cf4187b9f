// Command cclabel is the CLI front-end for the connected-components
// labeling engine: it reads an edge-list file, configures parallelism,
// and prints the core's wall-clock duration (and, with --seeds, the
// resulting seed map) to stdout. None of the algorithm lives here —
// cmd/cclabel only drives the ccl package through its public API, the
// same entry point any other caller would use.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/ccgraph/ccl"
	"github.com/katalvlaran/ccgraph/forest"
	"github.com/katalvlaran/ccgraph/internal/edgelist"
	"github.com/katalvlaran/ccgraph/seed"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// Exit codes. Allocation/resource failure (would be code 3) is not
// separately modeled: the Go runtime already aborts the process on its
// own on out-of-memory, so there is no recoverable path to assign a
// distinct code to.
const (
	exitInputError    = 1
	exitInconsistency = 2
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}

// roundCapFlag is a pflag.Value rather than a plain IntVar because the
// round cap must be non-negative: unlike a generic int flag, it rejects a
// negative value at parse time instead of passing it to ccl.WithRoundCap,
// which would silently treat it like 0 (the automatic cap).
type roundCapFlag int

func (f *roundCapFlag) String() string { return strconv.Itoa(int(*f)) }

func (f *roundCapFlag) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("round-cap: %w", err)
	}
	if n < 0 {
		return fmt.Errorf("round-cap: must be >= 0, got %d", n)
	}
	*f = roundCapFlag(n)
	return nil
}

func (f *roundCapFlag) Type() string { return "int" }

func exitCodeFor(err error) int {
	var corruptForest *seed.ErrCorruptForest
	if errors.Is(err, ccl.ErrRoundCapExceeded) ||
		errors.Is(err, forest.ErrMultipleParents) ||
		errors.As(err, &corruptForest) {
		return exitInconsistency
	}
	return exitInputError
}

func newRootCmd() *cobra.Command {
	var (
		filePath   string
		numThreads int
		printSeeds bool
		roundCap   roundCapFlag
	)

	cmd := &cobra.Command{
		Use:           "cclabel",
		Short:         "Compute connected-component labels for an undirected graph",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), filePath, numThreads, printSeeds, int(roundCap))
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "input edge list (required)")
	cmd.Flags().IntVarP(&numThreads, "num-threads", "n", 0, "worker thread count; 0 means runtime-chosen")
	cmd.Flags().BoolVar(&printSeeds, "seeds", false, "also print the full vertex→seed mapping")
	cmd.Flags().Var(&roundCap, "round-cap", "override the driver loop's safety cap; 0 means auto")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

var _ pflag.Value = (*roundCapFlag)(nil)

func run(ctx context.Context, filePath string, numThreads int, printSeeds bool, roundCap int) error {
	f, err := os.Open(filePath)
	if err != nil {
		log.Error().Err(err).Str("file", filePath).Msg("could not open input file")
		return err
	}
	defer f.Close()

	edges, err := edgelist.Parse(f)
	if err != nil {
		log.Error().Err(err).Msg("could not parse edge list")
		return err
	}

	start := time.Now()
	seeds, stats, err := ccl.Run(ctx, edges, ccl.WithWorkers(numThreads), ccl.WithRoundCap(roundCap))
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Msg("connected-components computation failed")
		return err
	}

	log.Info().
		Int("rounds", stats.Rounds).
		Int("forest_size", stats.ForestSize).
		Int("vertices", len(seeds)).
		Dur("elapsed", elapsed).
		Msg("computation finished")

	fmt.Println(elapsed.Milliseconds())

	if printSeeds {
		printSeedMap(seeds)
	}
	return nil
}

func printSeedMap(seeds map[uint32]uint32) {
	ids := make([]uint32, 0, len(seeds))
	for v := range seeds {
		ids = append(ids, v)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, v := range ids {
		fmt.Printf("%d %d\n", v, seeds[v])
	}
}
