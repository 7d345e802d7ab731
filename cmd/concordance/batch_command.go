package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"concordance/internal/batch"
	"concordance/internal/history"
	"concordance/internal/logging"
)

func newBatchCommand(ctx *commandContext) *cobra.Command {
	var outDir string
	var workers int

	cmd := &cobra.Command{
		Use:   "batch --out-dir DIR FILE...",
		Short: "Generate concordances for several files in parallel",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if workers <= 0 {
				workers = cfg.Batch.Workers
			}

			opts := batch.Options{
				Inputs:    args,
				OutDir:    strings.TrimSpace(outDir),
				Workers:   workers,
				Tokenizer: cfg.Tokenizer.Name,
				Registry:  ctx.registry,
				Logger:    ctx.loggerFor(cmd),
			}

			var store *history.Store
			if cfg.History.Enabled {
				store, err = history.Open(cfg)
				if err != nil {
					ctx.loggerFor(cmd).Warn("history unavailable", logging.Args(logging.Error(err))...)
				} else {
					defer store.Close()
					opts.Recorder = store
				}
			}

			results, err := batch.Run(cmd.Context(), opts)
			if results != nil {
				renderBatchResults(cmd, results)
			}
			if err != nil {
				return err
			}
			if failed := batch.Failed(results); failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out-dir", "", "Directory that receives <name>.concordance.txt reports")
	cmd.Flags().IntVar(&workers, "workers", 0, "Files processed in parallel (default from config)")
	_ = cmd.MarkFlagRequired("out-dir")
	return cmd
}

func renderBatchResults(cmd *cobra.Command, results []batch.Result) {
	rows := make([][]string, 0, len(results))
	for _, res := range results {
		status := "ok"
		if res.Err != nil {
			status = "failed"
			fmt.Fprintln(cmd.ErrOrStderr(), res.Err)
		}
		rows = append(rows, []string{
			res.Input,
			res.Output,
			strconv.Itoa(res.Stats.DistinctWords),
			status,
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(cmd.OutOrStdout(),
		[]string{"Input", "Output", "Words", "Status"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
	))
}
