package main

import (
	"path/filepath"
	"testing"

	"concordance/internal/testsupport"
)

func TestBatchCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	first := env.input(t, "simple.txt", testsupport.SimpleText)
	second := env.input(t, "dog.txt", "The dog. The dog barks.")
	outDir := filepath.Join(env.baseDir, "reports")

	stdout, _, err := runCLI(t, env, "batch", "--out-dir", outDir, "--workers", "2", first, second)
	if err != nil {
		t.Fatalf("batch: %v", err)
	}
	requireContains(t, stdout, "simple.txt.concordance.txt")
	requireContains(t, stdout, "ok")

	if got := testsupport.ReadFile(t, filepath.Join(outDir, "simple.txt.concordance.txt")); got != simpleReport {
		t.Fatalf("report = %q", got)
	}

	history, _, err := runCLI(t, env, "history", "list")
	if err != nil {
		t.Fatalf("history list: %v", err)
	}
	requireContains(t, history, "dog.txt.concordance.txt")
}

func TestBatchCommandReportsFailures(t *testing.T) {
	env := setupCLITestEnv(t)
	good := env.input(t, "simple.txt", testsupport.SimpleText)
	missing := filepath.Join(env.baseDir, "missing.txt")

	stdout, stderr, err := runCLI(t, env, "batch", "--out-dir", filepath.Join(env.baseDir, "out"), good, missing)
	if err == nil {
		t.Fatal("expected batch to fail")
	}
	requireContains(t, err.Error(), "1 of 2 files failed")
	requireContains(t, stdout, "failed")
	requireContains(t, stderr, "does not exist")
}

func TestBatchCommandRequiresOutDir(t *testing.T) {
	env := setupCLITestEnv(t)
	input := env.input(t, "simple.txt", testsupport.SimpleText)
	if _, _, err := runCLI(t, env, "batch", input); err == nil {
		t.Fatal("expected error without --out-dir")
	}
}
