package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var tokenizerFlag string
	var opts generateOptions

	ctx := newCommandContext(&configFlag, &logLevelFlag, &tokenizerFlag)

	rootCmd := &cobra.Command{
		Use:   "concordance",
		Short: "Generate a concordance for a text file",
		Long: "Reads an English text file and lists every distinct word, alphabetically,\n" +
			"with how often it occurs and the sentence numbers it appears in.",
		Example:       "  concordance -i book.txt -o book.concordance.txt\n  concordance -i book.txt -s",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			if _, err := ctx.ensureConfig(); err != nil {
				return err
			}
			_, err := ctx.ensureLogger(cmd.ErrOrStderr())
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, ctx, opts)
		},
	}

	persistent := rootCmd.PersistentFlags()
	persistent.StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	persistent.StringVar(&logLevelFlag, "log-level", "", "Log level override (debug, info, warn, error)")
	persistent.StringVar(&tokenizerFlag, "tokenizer", "", "Tokenizer override (punkt, rules)")

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.inputFile, "inputFile", "i", "", "Text file to read")
	flags.StringVarP(&opts.outputFile, "outputFile", "o", "", "File that receives the concordance")
	flags.BoolVarP(&opts.stdout, "stdout", "s", false, "Print the concordance to stdout")
	_ = rootCmd.MarkFlagRequired("inputFile")
	rootCmd.MarkFlagsMutuallyExclusive("outputFile", "stdout")
	rootCmd.MarkFlagsOneRequired("outputFile", "stdout")

	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newBatchCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand(ctx))

	return rootCmd
}
