package cmd

import (
	"path/filepath"
	"testing"

	logger "github.com/atelier-dev/atelier/internal/logging"
	"github.com/atelier-dev/atelier/internal/store"
)

func TestSetTypedValue(t *testing.T) {
	st := store.New(filepath.Join(t.TempDir(), "config.json"), logger.Logger{})

	if err := setTypedValue(st, "theme", "dark", "string"); err != nil {
		t.Fatalf("string: %v", err)
	}
	if err := setTypedValue(st, "autosave", "true", "bool"); err != nil {
		t.Fatalf("bool: %v", err)
	}
	if err := setTypedValue(st, "recent.limit", "20", "int"); err != nil {
		t.Fatalf("int: %v", err)
	}
	if err := setTypedValue(st, "ui.scale", "1.25", "float"); err != nil {
		t.Fatalf("float: %v", err)
	}
	if err := setTypedValue(st, "pinned", "/a, /b", "list"); err != nil {
		t.Fatalf("list: %v", err)
	}

	if got := store.Get(st, "theme", ""); got != "dark" {
		t.Errorf("theme = %q", got)
	}
	if got := store.Get(st, "autosave", false); !got {
		t.Error("autosave not true")
	}
	if got := store.Get(st, "recent.limit", int64(0)); got != 20 {
		t.Errorf("recent.limit = %d", got)
	}
	if got := store.Get(st, "ui.scale", 0.0); got != 1.25 {
		t.Errorf("ui.scale = %v", got)
	}
	pinned := store.Get(st, "pinned", []string(nil))
	if len(pinned) != 2 || pinned[0] != "/a" || pinned[1] != "/b" {
		t.Errorf("pinned = %v", pinned)
	}
}

func TestSetTypedValueRejectsBadInput(t *testing.T) {
	st := store.New(filepath.Join(t.TempDir(), "config.json"), logger.Logger{})

	if err := setTypedValue(st, "k", "maybe", "bool"); err == nil {
		t.Error("Expected error for bad bool")
	}
	if err := setTypedValue(st, "k", "1.5", "int"); err == nil {
		t.Error("Expected error for bad int")
	}
	if err := setTypedValue(st, "k", "x", "widget"); err == nil {
		t.Error("Expected error for unknown type")
	}
	if st.Len() != 0 {
		t.Errorf("Failed parses should not store anything, got %d keys", st.Len())
	}
}

func TestConfigSetCommandPersists(t *testing.T) {
	t.Setenv("ATELIER_CONFIG_DIR", t.TempDir())
	t.Setenv("NO_COLOR", "1")
	ResetConfigState()
	defer ResetConfigState()

	cmd := GetConfigCmd()
	cmd.SetArgs([]string{"set", "theme", "dark"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config set failed: %v", err)
	}

	st, err := openSettingsStore(logger.Logger{})
	if err != nil {
		t.Fatalf("Failed to reopen settings: %v", err)
	}
	if got := store.Get(st, "theme", ""); got != "dark" {
		t.Errorf("Expected persisted theme %q, got %q", "dark", got)
	}
}
