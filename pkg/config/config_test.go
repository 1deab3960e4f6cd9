package config

import (
	"os"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// t.Setenv registers the restore; the variables must be absent, not empty.
	t.Setenv("PORT", "")
	t.Setenv("ROOT", "")
	os.Unsetenv("PORT")
	os.Unsetenv("ROOT")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 10000 {
		t.Errorf("default port = %d, want 10000", cfg.Server.Port)
	}
	if cfg.Server.Root != "." {
		t.Errorf("default root = %q, want .", cfg.Server.Root)
	}
}

func TestLoadPortFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
}

func TestLoadRejectsNonIntegerPort(t *testing.T) {
	t.Setenv("PORT", "notanumber")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for PORT=notanumber, got nil")
	} else if !strings.Contains(err.Error(), "invalid PORT") {
		t.Fatalf("expected error naming PORT, got: %v", err)
	}
}

func TestLoadRejectsEmptyPort(t *testing.T) {
	t.Setenv("PORT", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for a set-but-empty PORT, got nil")
	} else if !strings.Contains(err.Error(), "invalid PORT") {
		t.Fatalf("expected error naming PORT, got: %v", err)
	}
}

func TestLoadRejectsOutOfRangePort(t *testing.T) {
	t.Setenv("PORT", "70000")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for out-of-range port, got nil")
	}
}

func TestLoadRejectsMissingRoot(t *testing.T) {
	t.Setenv("ROOT", "/no/such/directory")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing ROOT, got nil")
	} else if !strings.Contains(err.Error(), "invalid ROOT") {
		t.Fatalf("expected error naming ROOT, got: %v", err)
	}
}

func TestLoadRootFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ROOT", dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Root != dir {
		t.Errorf("root = %q, want %q", cfg.Server.Root, dir)
	}
}
