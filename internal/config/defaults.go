package config

import "concordance/internal/tokenize"

const (
	defaultConfigPath   = "~/.config/concordance/config.toml"
	projectConfigName   = "concordance.toml"
	defaultDataDir      = "~/.local/share/concordance"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	defaultHistoryKeep  = 200
	defaultBatchWorkers = 4
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
		},
		Tokenizer: Tokenizer{
			Name: tokenize.DefaultName,
		},
		History: History{
			Enabled: true,
			Keep:    defaultHistoryKeep,
		},
		Batch: Batch{
			Workers: defaultBatchWorkers,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
