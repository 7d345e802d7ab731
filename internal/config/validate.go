package config

import (
	"errors"
	"fmt"
	"strings"

	"concordance/internal/tokenize"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTokenizer(); err != nil {
		return err
	}
	if err := c.validateHistory(); err != nil {
		return err
	}
	if err := c.validateBatch(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateTokenizer() error {
	registry := tokenize.NewRegistry()
	if !registry.Has(c.Tokenizer.Name) {
		return fmt.Errorf("tokenizer.name: unsupported value %q (expected one of %s)",
			c.Tokenizer.Name, strings.Join(registry.Names(), ", "))
	}
	return nil
}

func (c *Config) validateHistory() error {
	if c.History.Keep < 0 {
		return errors.New("history.keep must be zero or positive")
	}
	return nil
}

func (c *Config) validateBatch() error {
	if c.Batch.Workers <= 0 {
		return errors.New("batch.workers must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
