package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/joshuapare/lzt/internal/logger"
	"github.com/joshuapare/lzt/internal/replay"
)

var replayJobs int

func init() {
	cmd := newReplayCmd()
	cmd.Flags().IntVarP(&replayJobs, "jobs", "j", 0, "Scripts to run at once (0 = all)")
	rootCmd.AddCommand(cmd)
}

func newReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <script.yaml>...",
		Short: "Replay operation scripts against the containers",
		Long: `The replay command runs YAML operation scripts. Each script names a
container kind (vector, string or list) and a list of operations. Scripts
run concurrently on their own containers; results print in argument order.

Example:
  lztctl replay ops.yaml
  lztctl replay a.yaml b.yaml --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd.Context(), cmd.OutOrStdout(), args, replayJobs)
		},
	}
	return cmd
}

func runReplay(ctx context.Context, w io.Writer, paths []string, jobs int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	scripts := make([]*replay.Script, len(paths))
	for i, path := range paths {
		s, err := replay.Load(path)
		if err != nil {
			return err
		}
		scripts[i] = s
	}

	results := make([]*replay.Result, len(scripts))
	g, gctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, s := range scripts {
		g.Go(func() error {
			logger.Debug("replay", "script", s.Name, "kind", s.Kind, "ops", len(s.Ops))
			res, err := replay.Run(gctx, s)
			if err != nil {
				logger.Error("replay failed", "script", s.Name, "err", err)
				return err
			}
			logger.Info("replayed", "script", s.Name, "len", res.Len)
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(w, results)
	}
	for _, res := range results {
		printResult(w, res)
	}
	return nil
}

func printResult(w io.Writer, res *replay.Result) {
	fmt.Fprintf(w, "== %s (%s) ==\n", res.Name, res.Kind)
	fmt.Fprintf(w, "ops: %d  len: %d", res.Ops, res.Len)
	if res.Kind != replay.KindList {
		fmt.Fprintf(w, "  cap: %d", res.Cap)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "contents: %s\n", res.Contents)
	if len(res.Finds) > 0 {
		finds := make([]string, len(res.Finds))
		for i, f := range res.Finds {
			if f == replay.NotFound {
				finds[i] = "npos"
			} else {
				finds[i] = fmt.Sprint(f)
			}
		}
		fmt.Fprintf(w, "finds: %s\n", strings.Join(finds, " "))
	}
}
