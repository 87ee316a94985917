package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func parse(t *testing.T, args ...string) (Config, error) {
	t.Helper()
	// keep a config file in the working directory from leaking into tests
	chdirForTest(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	flags := pflag.NewFlagSet("fhcleanup", pflag.ContinueOnError)
	v := viper.New()
	if err := BindFlags(flags, v); err != nil {
		t.Fatalf("bind flags: %v", err)
	}
	if err := flags.Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return Load(v, flags.Args())
}

func TestDefaults(t *testing.T) {
	cfg, err := parse(t)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Root != "." {
		t.Fatalf("expected root '.', got %q", cfg.Root)
	}
	if cfg.HoldingDir != DefaultHoldingDir {
		t.Fatalf("unexpected holding dir %q", cfg.HoldingDir)
	}
	if cfg.Workers != runtime.NumCPU()*4 {
		t.Fatalf("unexpected default workers %d", cfg.Workers)
	}
	if cfg.Recursive || cfg.Purge || cfg.KeepNames || cfg.Verbosity != 0 {
		t.Fatalf("unexpected flags %+v", cfg)
	}
}

func TestShortFlags(t *testing.T) {
	cfg, err := parse(t, "-r", "-p", "-n", "-vv", "-t", "3", "-f", "trash", "photos")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Recursive || !cfg.Purge || !cfg.KeepNames {
		t.Fatalf("expected bool flags set, got %+v", cfg)
	}
	if cfg.Verbosity != 2 {
		t.Fatalf("expected verbosity 2, got %d", cfg.Verbosity)
	}
	if cfg.Workers != 3 {
		t.Fatalf("expected 3 workers, got %d", cfg.Workers)
	}
	if cfg.HoldingDir != "trash/" {
		t.Fatalf("expected trailing separator, got %q", cfg.HoldingDir)
	}
	if cfg.Root != "photos" {
		t.Fatalf("expected root photos, got %q", cfg.Root)
	}
}

func TestRejectsNonPositiveWorkers(t *testing.T) {
	if _, err := parse(t, "--max-threads", "0"); err == nil {
		t.Fatalf("expected error for zero workers")
	}
}

func TestRejectsMultipleRoots(t *testing.T) {
	if _, err := parse(t, "a", "b"); err == nil {
		t.Fatalf("expected error for two roots")
	}
}

func TestEnvironmentFallback(t *testing.T) {
	t.Setenv("FHCLEANUP_PURGE", "true")
	t.Setenv("FHCLEANUP_INCL_SUBDIR", "1")

	cfg, err := parse(t)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Purge || !cfg.Recursive {
		t.Fatalf("expected env to enable purge and recursion, got %+v", cfg)
	}
}

func TestExplicitConfigFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(file, []byte("keep-names: true\nmax-threads: 2\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := parse(t, "--config", file)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.KeepNames || cfg.Workers != 2 {
		t.Fatalf("expected config file values, got %+v", cfg)
	}
}

// chdirForTest changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) for older toolchains.
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(oldwd, dir)
	}
	t.Setenv("PWD", dir)
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			panic("testing: CleanupChdir: " + err.Error())
		}
	})
}
