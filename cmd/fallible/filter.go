package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ib-77/fallible/pkg/fallible"
	"github.com/ib-77/fallible/pkg/fallible/flow"
	"github.com/ib-77/fallible/pkg/fallible/streams"
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Print the lines that parse, drop the rest",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFilter(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func runFilter(ctx context.Context, cfg Config, in io.Reader, out, errOut io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ctx = fallible.WithWorkers(fallible.WithSink(ctx, cfg.Sink(errOut)), cfg.Workers)
	parse := parser(cfg.Base)
	src := newSource(in)

	if cfg.Workers > 1 {
		for v := range flow.RemoveErrors(ctx, src.lineChan(ctx), parse) {
			if _, err := fmt.Fprintln(out, v); err != nil {
				return err
			}
		}
		return src.Err()
	}

	for v := range streams.RemoveErrors(ctx, src.lines(), parse) {
		if _, err := fmt.Fprintln(out, v); err != nil {
			return err
		}
	}
	return src.Err()
}
