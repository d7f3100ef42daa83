package main

import (
	"context"
	"fmt"
	"io"
	"iter"

	"github.com/spf13/cobra"

	"github.com/ib-77/fallible/pkg/fallible"
	"github.com/ib-77/fallible/pkg/fallible/flow"
	"github.com/ib-77/fallible/pkg/fallible/streams"
)

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Print the lines that parse, then list the rejected lines",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSplit(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func runSplit(ctx context.Context, cfg Config, in io.Reader, out, errOut io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ctx = fallible.WithWorkers(fallible.WithSink(ctx, cfg.Sink(errOut)), cfg.Workers)
	parse := parser(cfg.Base)
	src := newSource(in)

	var rejects iter.Seq[string]
	if cfg.Workers > 1 {
		values, rejected := flow.SplitErrors(ctx, src.lineChan(ctx), parse).Unpack()
		for v := range values {
			if _, err := fmt.Fprintln(out, v); err != nil {
				return err
			}
		}
		rejects = rejected.All()
	} else {
		values, rejected := streams.SplitErrors(ctx, src.lines(), parse).Unpack()
		for v := range values {
			if _, err := fmt.Fprintln(out, v); err != nil {
				return err
			}
		}
		rejects = rejected
	}

	if err := src.Err(); err != nil {
		return err
	}

	for line := range rejects {
		if _, err := fmt.Fprintf(errOut, "rejected: %q\n", line); err != nil {
			return err
		}
	}
	return nil
}
