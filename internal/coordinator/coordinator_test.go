package coordinator

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	atelierrors "github.com/atelier-dev/atelier/internal/errors"
	logger "github.com/atelier-dev/atelier/internal/logging"
	"github.com/atelier-dev/atelier/internal/store"
	"github.com/atelier-dev/atelier/internal/vault"
)

func newTestCoordinator(t *testing.T) *Coordinator {
	t.Helper()
	dir := t.TempDir()
	settings := store.New(filepath.Join(dir, "config.json"), logger.Logger{})
	c, err := New(settings, filepath.Join(dir, "vaults_config.json"), logger.Logger{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return c
}

func TestNewRequiresSettingsAndPath(t *testing.T) {
	settings := store.New(filepath.Join(t.TempDir(), "config.json"), logger.Logger{})

	if _, err := New(nil, "/tmp/vaults.json", logger.Logger{}); err == nil {
		t.Error("Expected error for nil settings store")
	}
	if _, err := New(settings, "", logger.Logger{}); err == nil {
		t.Error("Expected error for empty registry path")
	}
}

func TestInitializeIdempotent(t *testing.T) {
	c := newTestCoordinator(t)

	if c.Phase() != EssentialReady {
		t.Fatalf("Expected phase %v after New, got %v", EssentialReady, c.Phase())
	}

	c.Initialize()
	c.Initialize()

	if c.Phase() != FullyInitialized {
		t.Errorf("Expected phase %v, got %v", FullyInitialized, c.Phase())
	}
	if c.Registry().Len() != 1 {
		t.Errorf("Expected exactly one vault after repeated Initialize, got %d", c.Registry().Len())
	}
	if _, err := os.Stat(c.Registry().Path()); err != nil {
		t.Errorf("Expected registry to be persisted: %v", err)
	}
}

func TestSwitchWorkspaceRecordsSelection(t *testing.T) {
	c := newTestCoordinator(t)
	c.Initialize()

	work, err := c.Registry().CreateVault("work")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := work.CreateWorkspace("main", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := work.CreateWorkspace("side", ""); err != nil {
		t.Fatal(err)
	}

	if err := c.SwitchWorkspace("side"); err != nil {
		t.Fatalf("SwitchWorkspace failed: %v", err)
	}

	if work.CurrentWorkspace != "side" {
		t.Errorf("Expected vault selection %q, got %q", "side", work.CurrentWorkspace)
	}
	if c.Registry().CurrentVaultName() != "work" {
		t.Errorf("Expected owning vault to become current, got %q", c.Registry().CurrentVaultName())
	}
	if got := store.Get(c.Settings(), LastWorkspaceKey, ""); got != "side" {
		t.Errorf("Expected %q recorded in settings, got %q", "side", got)
	}
}

func TestSwitchWorkspaceUnknown(t *testing.T) {
	c := newTestCoordinator(t)
	c.Initialize()

	err := c.SwitchWorkspace("ghost")
	if !errors.Is(err, atelierrors.ErrWorkspaceNotFound) {
		t.Fatalf("Expected ErrWorkspaceNotFound, got %v", err)
	}
	if c.Settings().Has(LastWorkspaceKey) {
		t.Error("Failed switch should not record a selection")
	}
}

func TestSwitchWorkspaceRollbackOnSaveFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}

	settings := store.New(filepath.Join(dir, "config.json"), logger.Logger{})
	// A registry path under a regular file makes every save fail.
	c, err := New(settings, filepath.Join(blocker, "vaults_config.json"), logger.Logger{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	v := c.Registry().EnsureDefaultVault()
	if _, err := v.CreateWorkspace("main", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := v.CreateWorkspace("side", ""); err != nil {
		t.Fatal(err)
	}
	store.Set(settings, LastWorkspaceKey, "main")

	if err := c.SwitchWorkspace("side"); err == nil {
		t.Fatal("Expected SwitchWorkspace to fail when the registry cannot be saved")
	}

	if v.CurrentWorkspace != "main" {
		t.Errorf("Expected vault selection rolled back to %q, got %q", "main", v.CurrentWorkspace)
	}
	if c.Registry().CurrentVaultName() != vault.DefaultVaultName {
		t.Errorf("Expected registry selection rolled back, got %q", c.Registry().CurrentVaultName())
	}
	if got := store.Get(settings, LastWorkspaceKey, ""); got != "main" {
		t.Errorf("Expected settings rolled back to %q, got %q", "main", got)
	}
}

func TestSwitchWorkspaceRollbackRestoresEmptySelection(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}

	settings := store.New(filepath.Join(dir, "config.json"), logger.Logger{})
	c, err := New(settings, filepath.Join(blocker, "vaults_config.json"), logger.Logger{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// Removing the only selected vault with no default present leaves the
	// registry with an empty selection.
	if _, err := c.Registry().CreateVault("scratch"); err != nil {
		t.Fatal(err)
	}
	work, err := c.Registry().CreateVault("work")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := work.CreateWorkspace("main", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := work.CreateWorkspace("side", ""); err != nil {
		t.Fatal(err)
	}
	if err := c.Registry().RemoveVault("scratch"); err != nil {
		t.Fatal(err)
	}
	if c.Registry().CurrentVaultName() != "" {
		t.Fatalf("Expected empty selection before switch, got %q", c.Registry().CurrentVaultName())
	}

	if err := c.SwitchWorkspace("side"); err == nil {
		t.Fatal("Expected SwitchWorkspace to fail when the registry cannot be saved")
	}

	if c.Registry().CurrentVaultName() != "" {
		t.Errorf("Expected empty selection rolled back, got %q", c.Registry().CurrentVaultName())
	}
	if work.CurrentWorkspace != "main" {
		t.Errorf("Expected vault selection rolled back to %q, got %q", "main", work.CurrentWorkspace)
	}
	if settings.Has(LastWorkspaceKey) {
		t.Error("Failed switch should not record a selection")
	}
}

func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w
	defer func() { os.Stderr = old }()

	fn()

	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestLateInitWarnsWithoutSurface(t *testing.T) {
	c := newTestCoordinator(t)
	c.Initialize()

	out := captureStderr(t, c.LateInit)
	if !strings.Contains(out, "surface") {
		t.Errorf("Expected a warning about the missing surface, got %q", out)
	}

	// Runs once: repeated calls stay silent.
	out = captureStderr(t, c.LateInit)
	if out != "" {
		t.Errorf("Expected second LateInit to be silent, got %q", out)
	}
}

func TestLateInitQuietWithSurface(t *testing.T) {
	c := newTestCoordinator(t)
	c.Initialize()
	c.RegisterSurface("main-window")

	out := captureStderr(t, c.LateInit)
	if out != "" {
		t.Errorf("Expected no warning once a surface is registered, got %q", out)
	}
}

func TestCreateWorkspaceNoCurrentVault(t *testing.T) {
	c := newTestCoordinator(t)
	// Skip Initialize so the registry is empty.

	_, err := c.CreateWorkspace("main", "")
	if !errors.Is(err, atelierrors.ErrNoCurrentVault) {
		t.Fatalf("Expected ErrNoCurrentVault, got %v", err)
	}
}

func TestOpenProjectNoCurrentWorkspace(t *testing.T) {
	c := newTestCoordinator(t)
	c.Initialize()

	err := c.OpenProject(t.TempDir())
	if !errors.Is(err, atelierrors.ErrNoCurrentWorkspace) {
		t.Fatalf("Expected ErrNoCurrentWorkspace, got %v", err)
	}
}

func TestFullSession(t *testing.T) {
	c := newTestCoordinator(t)
	c.Initialize()

	if _, err := c.CreateWorkspace("main", ""); err != nil {
		t.Fatalf("CreateWorkspace failed: %v", err)
	}
	if err := c.SwitchWorkspace("main"); err != nil {
		t.Fatalf("SwitchWorkspace failed: %v", err)
	}

	projectDir := t.TempDir()
	if err := c.OpenProject(projectDir); err != nil {
		t.Fatalf("OpenProject failed: %v", err)
	}

	ws, err := c.CurrentWorkspace()
	if err != nil {
		t.Fatalf("CurrentWorkspace failed: %v", err)
	}
	if ws.CurrentProject != projectDir {
		t.Errorf("Expected current project %q, got %q", projectDir, ws.CurrentProject)
	}

	// The session survives a reload from disk.
	reloaded := vault.NewRegistry(c.Registry().Path(), logger.Logger{})
	reloaded.Load()
	v, ok := reloaded.CurrentVault()
	if !ok {
		t.Fatal("Expected a current vault after reload")
	}
	lws, ok := v.GetCurrentWorkspace()
	if !ok {
		t.Fatal("Expected a current workspace after reload")
	}
	if lws.CurrentProject != projectDir {
		t.Errorf("Expected reloaded current project %q, got %q", projectDir, lws.CurrentProject)
	}
}

func TestRestoreSession(t *testing.T) {
	c := newTestCoordinator(t)
	c.Initialize()
	if _, err := c.CreateWorkspace("main", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := c.CreateWorkspace("side", ""); err != nil {
		t.Fatal(err)
	}
	store.Set(c.Settings(), LastWorkspaceKey, "side")

	c.RestoreSession()

	ws, err := c.CurrentWorkspace()
	if err != nil {
		t.Fatalf("CurrentWorkspace failed: %v", err)
	}
	if ws.Name != "side" {
		t.Errorf("Expected restored workspace %q, got %q", "side", ws.Name)
	}
}

func TestRestoreSessionIgnoresStaleSelection(t *testing.T) {
	c := newTestCoordinator(t)
	c.Initialize()
	store.Set(c.Settings(), LastWorkspaceKey, "long-gone")

	c.RestoreSession()

	if _, err := c.CurrentWorkspace(); !errors.Is(err, atelierrors.ErrNoCurrentWorkspace) {
		t.Errorf("Expected no current workspace after stale restore, got %v", err)
	}
}

func TestCleanupFlushesBothStores(t *testing.T) {
	c := newTestCoordinator(t)
	c.Initialize()
	store.Set(c.Settings(), "theme", "dark")

	if err := c.Cleanup(); err != nil {
		t.Fatalf("Cleanup failed: %v", err)
	}

	settings := store.New(c.Settings().Path(), logger.Logger{})
	settings.Load()
	if got := store.Get(settings, "theme", ""); got != "dark" {
		t.Errorf("Expected settings flushed, got theme=%q", got)
	}
	if _, err := os.Stat(c.Registry().Path()); err != nil {
		t.Errorf("Expected registry flushed: %v", err)
	}
}
