package testsupport

import (
	"path/filepath"
	"testing"

	"concordance/internal/config"
	"concordance/internal/tokenize"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with a unique temp data directory per
// test. The rules tokenizer is selected so tests do not depend on the Punkt
// model's sentence boundaries.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Tokenizer.Name = tokenize.NameRules

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithHistoryKeep sets the retention limit applied after each recorded run.
func WithHistoryKeep(keep int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.History.Keep = keep
	}
}

// WithHistoryDisabled turns off run recording.
func WithHistoryDisabled() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.History.Enabled = false
	}
}

// WithTokenizer overrides the tokenizer name.
func WithTokenizer(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Tokenizer.Name = name
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
