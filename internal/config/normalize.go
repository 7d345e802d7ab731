package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeTokenizer()
	return c.normalizeLogging()
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv("CONCORDANCE_DATA_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.DataDir = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	var err error
	if c.Paths.DataDir, err = expandPath(strings.TrimSpace(c.Paths.DataDir)); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeTokenizer() {
	if value, ok := os.LookupEnv("CONCORDANCE_TOKENIZER"); ok && strings.TrimSpace(value) != "" {
		c.Tokenizer.Name = value
	}
	c.Tokenizer.Name = strings.ToLower(strings.TrimSpace(c.Tokenizer.Name))
	if c.Tokenizer.Name == "" {
		c.Tokenizer.Name = Default().Tokenizer.Name
	}
}

func (c *Config) normalizeLogging() error {
	if value, ok := os.LookupEnv("CONCORDANCE_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if file := strings.TrimSpace(c.Logging.File); file != "" {
		expanded, err := expandPath(file)
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	}
	return nil
}
