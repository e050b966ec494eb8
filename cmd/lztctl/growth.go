package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/joshuapare/lzt/internal/growbuf"
	"github.com/joshuapare/lzt/internal/logger"
	"github.com/joshuapare/lzt/internal/rawmem"
	"github.com/joshuapare/lzt/internal/rusage"
)

var (
	growthN      int
	growthKind   string
	growthBudget int
)

func init() {
	cmd := newGrowthCmd()
	cmd.Flags().IntVar(&growthN, "n", 1<<16, "Number of elements to append")
	cmd.Flags().StringVar(&growthKind, "kind", "vector", "Buffer layout: vector or string")
	cmd.Flags().IntVar(&growthBudget, "budget", 0, "Allocation budget in slots (0 = unlimited)")
	rootCmd.AddCommand(cmd)
}

func newGrowthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "growth",
		Short: "Measure buffer growth while appending",
		Long: `The growth command appends elements one at a time to a growable buffer
and reports how often it reallocated, how many element moves that cost and
the final capacity. The string layout keeps one terminator slot.

Example:
  lztctl growth --n 100000
  lztctl growth --kind string --n 4096 --json
  lztctl growth --n 1000 --budget 1500`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrowth(cmd.OutOrStdout(), growthKind, growthN, growthBudget)
		},
	}
	return cmd
}

// GrowthReport is the outcome of one growth run.
type GrowthReport struct {
	Kind        string `json:"kind"`
	Requested   int    `json:"requested"`
	Len         int    `json:"len"`
	Cap         int    `json:"cap"`
	Reallocs    int    `json:"reallocs"`
	Moves       int    `json:"moves"`
	Allocs      int    `json:"allocs"`
	Slots       int    `json:"slots"`
	LiveBlocks  int    `json:"live_blocks_after_release"`
	PeakRSS     int64  `json:"peak_rss,omitempty"`
	StoppedWith string `json:"stopped_with,omitempty"`
}

func runGrowth(w io.Writer, kind string, n, budget int) error {
	if n < 0 {
		return fmt.Errorf("--n must not be negative, got %d", n)
	}
	var rep GrowthReport
	switch kind {
	case "vector":
		rep = measureGrowth(0, n, budget, 0)
	case "string":
		rep = measureGrowth[byte](1, n, budget, 'x')
	default:
		return fmt.Errorf("unknown kind %q (want vector or string)", kind)
	}
	rep.Kind = kind

	rss, err := rusage.PeakRSS()
	switch {
	case err == nil:
		rep.PeakRSS = rss
	case errors.Is(err, rusage.ErrUnsupported):
		logger.Debug("peak rss unavailable")
	default:
		logger.Warn("peak rss", "err", err)
	}

	if jsonOut {
		return printJSON(w, rep)
	}
	printGrowth(w, rep)
	return nil
}

// measureGrowth appends n copies of v to a buffer with tail reserved slots.
// A positive budget caps the slots the allocator may hand out at once.
func measureGrowth[T any](tail, n, budget int, v T) GrowthReport {
	counting := rawmem.NewCounting[T](nil)
	var alloc rawmem.Allocator[T] = counting
	if budget > 0 {
		alloc = rawmem.NewBudget[T](counting, budget)
	}
	b := growbuf.New[T](tail, alloc)

	rep := GrowthReport{Requested: n}
	for range n {
		before := b.Reallocs()
		if err := b.PushBack(v); err != nil {
			rep.StoppedWith = err.Error()
			logger.Warn("append stopped", "len", b.Len(), "err", err)
			break
		}
		if b.Reallocs() != before {
			logger.Debug("reallocated", "len", b.Len(), "cap", b.Cap())
		}
	}
	rep.Len = b.Len()
	rep.Cap = b.Cap()
	rep.Reallocs = b.Reallocs()
	rep.Moves = b.Moves()

	b.Release()
	rep.Allocs = counting.Allocs()
	rep.Slots = counting.Slots()
	rep.LiveBlocks = counting.Live()
	return rep
}

func printGrowth(w io.Writer, rep GrowthReport) {
	fmt.Fprintf(w, "kind:        %s\n", rep.Kind)
	fmt.Fprintf(w, "appended:    %d of %d\n", rep.Len, rep.Requested)
	fmt.Fprintf(w, "capacity:    %d\n", rep.Cap)
	fmt.Fprintf(w, "reallocs:    %d\n", rep.Reallocs)
	if rep.Len > 0 {
		fmt.Fprintf(w, "moves:       %d (%.2f per element)\n", rep.Moves, float64(rep.Moves)/float64(rep.Len))
	} else {
		fmt.Fprintf(w, "moves:       %d\n", rep.Moves)
	}
	fmt.Fprintf(w, "allocations: %d (%d slots)\n", rep.Allocs, rep.Slots)
	if rep.PeakRSS > 0 {
		fmt.Fprintf(w, "peak rss:    %.1f MiB\n", float64(rep.PeakRSS)/(1<<20))
	}
	if rep.StoppedWith != "" {
		fmt.Fprintf(w, "stopped:     %s\n", rep.StoppedWith)
	}
}
