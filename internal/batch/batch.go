package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"concordance/internal/concordance"
	"concordance/internal/history"
	"concordance/internal/logging"
	"concordance/internal/textio"
	"concordance/internal/tokenize"
)

// OutputSuffix is appended to each input's base name to form its report file.
const OutputSuffix = ".concordance.txt"

// Recorder persists completed runs.
type Recorder interface {
	Record(ctx context.Context, run history.Run) (*history.Run, error)
}

// Options configures a batch run.
type Options struct {
	Inputs    []string
	OutDir    string
	Workers   int
	Tokenizer string
	Registry  *tokenize.Registry
	Recorder  Recorder
	Logger    *slog.Logger
}

// Result describes the outcome for one input file.
type Result struct {
	RunID    string
	Input    string
	Output   string
	Stats    concordance.Stats
	Duration time.Duration
	Err      error
}

// Failed counts results carrying an error.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

// OutputPath returns the report location for input inside outDir.
func OutputPath(outDir, input string) string {
	return filepath.Join(outDir, filepath.Base(input)+OutputSuffix)
}

// Run generates one report per input and returns results in input order.
// The returned error covers invalid options and context cancellation only.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if err := opts.normalize(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	logger := logging.NewComponentLogger(opts.Logger, "batch")
	logger.Info("batch started", logging.Args(
		logging.Int("files", len(opts.Inputs)),
		logging.Int("workers", opts.Workers),
		logging.String("tokenizer", opts.Tokenizer),
	)...)

	results := make([]Result, len(opts.Inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i, input := range opts.Inputs {
		if gctx.Err() != nil {
			results[i] = Result{Input: input, Output: OutputPath(opts.OutDir, input), Err: gctx.Err()}
			continue
		}
		g.Go(func() error {
			results[i] = process(gctx, opts, logger, input)
			return nil
		})
	}
	_ = g.Wait()

	logger.Info("batch finished", logging.Args(
		logging.Int("files", len(results)),
		logging.Int("failed", Failed(results)),
	)...)

	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}

func (o *Options) normalize() error {
	if len(o.Inputs) == 0 {
		return errors.New("batch: at least one input file is required")
	}
	if strings.TrimSpace(o.OutDir) == "" {
		return errors.New("batch: output directory is required")
	}
	if o.Workers <= 0 {
		o.Workers = 1
	}
	if o.Registry == nil {
		o.Registry = tokenize.NewRegistry()
	}
	if o.Tokenizer == "" {
		o.Tokenizer = tokenize.DefaultName
	}
	if !o.Registry.Has(o.Tokenizer) {
		return fmt.Errorf("batch: unknown tokenizer %q", o.Tokenizer)
	}

	owners := make(map[string]string, len(o.Inputs))
	for _, input := range o.Inputs {
		out := OutputPath(o.OutDir, input)
		if prev, ok := owners[out]; ok {
			return fmt.Errorf("batch: inputs %s and %s both map to %s", prev, input, out)
		}
		owners[out] = input
	}
	return nil
}

func process(ctx context.Context, opts Options, logger *slog.Logger, input string) Result {
	result := Result{
		RunID:  uuid.NewString(),
		Input:  input,
		Output: OutputPath(opts.OutDir, input),
	}
	if err := ctx.Err(); err != nil {
		result.Err = err
		return result
	}

	started := time.Now()
	logger = logger.With(logging.String(logging.FieldRunID, result.RunID), logging.String(logging.FieldInput, input))

	lines, stats, err := generate(opts, logger, input, result.Output)
	result.Duration = time.Since(started)
	result.Stats = stats
	if err != nil {
		result.Err = err
		logger.Warn("batch file failed", logging.Args(logging.Error(err))...)
		return result
	}
	logger.Debug("batch file written", logging.Args(
		logging.String(logging.FieldOutput, result.Output),
		logging.Int("distinct_words", stats.DistinctWords),
		logging.Duration("duration", result.Duration),
	)...)

	if opts.Recorder != nil {
		_, recErr := opts.Recorder.Record(ctx, history.Run{
			ID:        result.RunID,
			InputPath: input,
			Output:    result.Output,
			Tokenizer: opts.Tokenizer,
			Stats:     stats,
			Lines:     lines,
		})
		if recErr != nil {
			logger.Warn("history record failed", logging.Args(logging.Error(recErr))...)
		}
	}
	return result
}

func generate(opts Options, logger *slog.Logger, input, output string) ([]string, concordance.Stats, error) {
	text, err := textio.ReadText(input)
	if err != nil {
		return nil, concordance.Stats{}, err
	}
	tok, err := opts.Registry.New(opts.Tokenizer)
	if err != nil {
		return nil, concordance.Stats{}, fmt.Errorf("build tokenizer: %w", err)
	}
	gen := concordance.New(tok, concordance.WithLogger(logger))
	if err := gen.Generate(text); err != nil {
		return nil, concordance.Stats{}, err
	}
	lines, err := gen.Lines()
	if err != nil {
		return nil, concordance.Stats{}, err
	}
	if err := textio.WriteLines(lines, output); err != nil {
		return nil, gen.Stats(), err
	}
	return lines, gen.Stats(), nil
}
