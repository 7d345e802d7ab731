package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"concordance/internal/concordance"
	"concordance/internal/history"
	"concordance/internal/logging"
	"concordance/internal/textio"
)

type generateOptions struct {
	inputFile  string
	outputFile string
	stdout     bool
}

func (o generateOptions) target() string {
	if o.stdout {
		return history.OutputStdout
	}
	return o.outputFile
}

func runGenerate(cmd *cobra.Command, ctx *commandContext, opts generateOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	if strings.TrimSpace(opts.inputFile) == "" {
		return errors.New("an input file is required")
	}
	if !opts.stdout && strings.TrimSpace(opts.outputFile) == "" {
		return errors.New("an output file is required unless --stdout is set")
	}

	runID := uuid.NewString()
	logger := logging.NewComponentLogger(ctx.loggerFor(cmd), "generate").With(
		logging.String(logging.FieldRunID, runID),
		logging.String(logging.FieldInput, opts.inputFile),
	)
	started := time.Now()

	text, err := textio.ReadText(opts.inputFile)
	if err != nil {
		logFailure(logger, "read input failed", err)
		return err
	}

	tok, err := ctx.registry.New(cfg.Tokenizer.Name)
	if err != nil {
		return fmt.Errorf("build tokenizer: %w", err)
	}
	gen := concordance.New(tok, concordance.WithLogger(logger))
	if err := gen.Generate(text); err != nil {
		logFailure(logger, "generate failed", err)
		return err
	}
	lines, err := gen.Lines()
	if err != nil {
		return err
	}

	if opts.stdout {
		err = textio.PrintLines(cmd.OutOrStdout(), lines)
	} else {
		err = textio.WriteLines(lines, opts.outputFile)
	}
	if err != nil {
		logFailure(logger, "write report failed", err)
		return err
	}

	stats := gen.Stats()
	logger.Info("concordance generated", logging.Args(
		logging.String(logging.FieldOutput, opts.target()),
		logging.Int("words", stats.Words),
		logging.Int("distinct_words", stats.DistinctWords),
		logging.Duration("duration", time.Since(started)),
	)...)

	if cfg.History.Enabled {
		recordRun(cmd.Context(), ctx, logger, history.Run{
			ID:        runID,
			InputPath: opts.inputFile,
			Output:    opts.target(),
			Tokenizer: cfg.Tokenizer.Name,
			Stats:     stats,
			Lines:     lines,
		})
	}
	return nil
}

// recordRun stores a completed run. History is best effort: failures are
// logged and never change the exit status.
func recordRun(ctx context.Context, cc *commandContext, logger *slog.Logger, run history.Run) {
	if ctx == nil {
		ctx = context.Background()
	}
	err := cc.withStore(func(store *history.Store) error {
		_, err := store.Record(ctx, run)
		return err
	})
	if err != nil {
		logger.Warn("history record failed", logging.Args(logging.Error(err))...)
	}
}

func logFailure(logger *slog.Logger, msg string, err error) {
	attrs := []logging.Attr{logging.Error(err)}
	var ioErr *textio.Error
	if errors.As(err, &ioErr) {
		attrs = append(attrs, logging.String(logging.FieldErrorKind, ioErr.ErrorKind()))
	}
	logger.Debug(msg, logging.Args(attrs...)...)
}
