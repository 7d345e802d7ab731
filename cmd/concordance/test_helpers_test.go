package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"concordance/internal/config"
	"concordance/internal/testsupport"
)

const simpleReport = "a. a        {2:1,2}\n" +
	"b. is       {1:1}\n" +
	"c. sentence {1:2}\n" +
	"d. simple   {1:1}\n" +
	"e. test     {2:1,2}\n" +
	"f. this     {1:1}\n" +
	"g. two      {1:2}\n"

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	for _, key := range []string{"CONCORDANCE_DATA_DIR", "CONCORDANCE_TOKENIZER", "CONCORDANCE_LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	cfg := testsupport.NewConfig(t, opts...)
	base := testsupport.BaseDir(cfg)
	t.Setenv("HOME", filepath.Join(base, "home"))

	configPath := filepath.Join(base, "concordance.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{cfg: cfg, configPath: configPath, baseDir: base}
}

func (e *cliTestEnv) input(t *testing.T, name, content string) string {
	t.Helper()
	return testsupport.WriteFile(t, filepath.Join(e.baseDir, "in", name), content)
}

func runCLI(t *testing.T, env *cliTestEnv, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(
		"[paths]\ndata_dir = %q\n\n[tokenizer]\nname = %q\n\n[history]\nenabled = %t\nkeep = %d\n\n[logging]\nlevel = \"warn\"\n",
		cfg.Paths.DataDir,
		cfg.Tokenizer.Name,
		cfg.History.Enabled,
		cfg.History.Keep,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
