package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"concordance/internal/config"
	"concordance/internal/history"
	"concordance/internal/logging"
	"concordance/internal/tokenize"
)

type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	tokenizerFlag *string

	registry *tokenize.Registry

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, logLevelFlag, tokenizerFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logLevelFlag:  logLevelFlag,
		tokenizerFlag: tokenizerFlag,
		registry:      tokenize.NewRegistry(),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := c.applyOverrides(cfg); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// applyOverrides layers command-line flags over the loaded configuration.
func (c *commandContext) applyOverrides(cfg *config.Config) error {
	if c.logLevelFlag != nil {
		if level := strings.ToLower(strings.TrimSpace(*c.logLevelFlag)); level != "" {
			cfg.Logging.Level = level
		}
	}
	if c.tokenizerFlag != nil {
		if name := strings.ToLower(strings.TrimSpace(*c.tokenizerFlag)); name != "" {
			cfg.Tokenizer.Name = name
		}
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	return nil
}

// ensureLogger builds the process logger on first use. Logs go to the
// command's stderr so reports printed on stdout stay clean.
func (c *commandContext) ensureLogger(stderr io.Writer) (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg, stderr)
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) loggerFor(cmd *cobra.Command) *slog.Logger {
	logger, err := c.ensureLogger(cmd.ErrOrStderr())
	if err != nil || logger == nil {
		return logging.NewNop()
	}
	return logger
}

func (c *commandContext) withStore(fn func(*history.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := history.Open(cfg)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()
	return fn(store)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
