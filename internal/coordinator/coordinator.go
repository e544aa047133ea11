package coordinator

import (
	"errors"
	"fmt"

	atelierrors "github.com/atelier-dev/atelier/internal/errors"
	logger "github.com/atelier-dev/atelier/internal/logging"
	"github.com/atelier-dev/atelier/internal/store"
	"github.com/atelier-dev/atelier/internal/vault"
)

// LastWorkspaceKey is the settings key recording the most recently
// selected workspace, used for session restore.
const LastWorkspaceKey = "last_workspace"

// Phase tracks the coordinator's startup progress.
type Phase int

const (
	// Uninitialized is the zero phase; a constructed coordinator is
	// never observed in it.
	Uninitialized Phase = iota

	// EssentialReady means the vault registry is constructed and loaded.
	EssentialReady

	// FullyInitialized means secondary managers have been bootstrapped
	// and the default vault is guaranteed to exist.
	FullyInitialized
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case EssentialReady:
		return "essential-ready"
	case FullyInitialized:
		return "fully-initialized"
	default:
		return "uninitialized"
	}
}

// Coordinator wires the application settings store and the vault
// registry together and exposes workspace operations to the host
// application. Startup is two-phase: New performs the essential phase
// (the only one whose failure should abort the host), Initialize
// performs the non-fatal manager phase.
type Coordinator struct {
	settings *store.Store
	registry *vault.Registry
	phase    Phase
	surface  string
	lateInit bool
	log      logger.Logger
}

// New runs the essential startup phase: it constructs the vault registry
// from its persisted document and hands back a usable coordinator. A
// corrupt or missing registry document degrades to an empty registry;
// only a missing settings store or registry path is an error, since
// without them no state layer can exist at all.
func New(settings *store.Store, vaultsPath string, log logger.Logger) (*Coordinator, error) {
	if settings == nil {
		return nil, fmt.Errorf("settings store is required")
	}
	if vaultsPath == "" {
		return nil, fmt.Errorf("vault registry path is required")
	}

	registry := vault.NewRegistry(vaultsPath, log)
	registry.Load()

	return &Coordinator{
		settings: settings,
		registry: registry,
		phase:    EssentialReady,
		log:      log,
	}, nil
}

// Phase returns the coordinator's current startup phase.
func (c *Coordinator) Phase() Phase {
	return c.phase
}

// Settings returns the application settings store.
func (c *Coordinator) Settings() *store.Store {
	return c.settings
}

// Registry returns the vault registry.
func (c *Coordinator) Registry() *vault.Registry {
	return c.registry
}

// Initialize runs the manager phase: it guarantees the default vault
// exists and persists the repaired registry. Idempotent; calls after the
// first are no-ops. Failures here are logged and absorbed so the host
// can continue with degraded persistence rather than aborting.
func (c *Coordinator) Initialize() {
	if c.phase >= FullyInitialized {
		c.log.Debugf("Initialize called again, ignoring")
		return
	}

	c.registry.EnsureDefaultVault()
	if err := c.registry.Save(); err != nil {
		c.log.Warnf("Failed to persist vault registry during initialization: %v", err)
	}

	c.phase = FullyInitialized
}

// RegisterSurface records that a host UI surface exists. LateInit warns
// when invoked without one.
func (c *Coordinator) RegisterSurface(name string) {
	c.surface = name
}

// LateInit runs once a UI surface should exist. It warns, but does not
// fail, when no surface has been registered; components needing a
// display attach here.
func (c *Coordinator) LateInit() {
	if c.lateInit {
		return
	}
	if c.surface == "" {
		c.log.Warnf("LateInit invoked before a host surface was registered")
	}
	c.lateInit = true
}

// SwitchWorkspace selects the named workspace: the owning vault becomes
// current in the registry, the workspace becomes current in its vault,
// and the selection is recorded in application settings for session
// restore. The three updates and the registry save are applied
// atomically; if persisting fails, all of them are rolled back.
func (c *Coordinator) SwitchWorkspace(name string) error {
	owner, ok := c.registry.VaultByWorkspace(name)
	if !ok {
		return fmt.Errorf("%w: %s", atelierrors.ErrWorkspaceNotFound, name)
	}

	prevWorkspace := owner.CurrentWorkspace
	prevVault := c.registry.CurrentVaultName()
	prevLast := store.Get(c.settings, LastWorkspaceKey, "")
	hadLast := c.settings.Has(LastWorkspaceKey)

	if err := owner.SetCurrentWorkspace(name); err != nil {
		return err
	}
	if err := c.registry.SetCurrentVault(owner.Name); err != nil {
		owner.CurrentWorkspace = prevWorkspace
		return err
	}
	store.Set(c.settings, LastWorkspaceKey, name)

	if err := c.registry.Save(); err != nil {
		owner.CurrentWorkspace = prevWorkspace
		if prevVault == "" {
			c.registry.ClearCurrentVault()
		} else if restoreErr := c.registry.SetCurrentVault(prevVault); restoreErr != nil {
			c.log.Warnf("Failed to restore vault selection after save failure: %v", restoreErr)
		}
		if hadLast {
			store.Set(c.settings, LastWorkspaceKey, prevLast)
		} else {
			c.settings.Remove(LastWorkspaceKey)
		}
		return fmt.Errorf("failed to persist workspace switch: %w", err)
	}

	return nil
}

// CreateWorkspace creates a workspace in the current vault and persists
// the registry. Fails softly when no vault is current.
func (c *Coordinator) CreateWorkspace(name, path string) (*vault.Workspace, error) {
	current, ok := c.registry.CurrentVault()
	if !ok {
		return nil, atelierrors.ErrNoCurrentVault
	}

	ws, err := current.CreateWorkspace(name, path)
	if err != nil {
		return nil, err
	}

	if err := c.registry.Save(); err != nil {
		return nil, fmt.Errorf("failed to persist workspace creation: %w", err)
	}
	return ws, nil
}

// OpenProject opens a project directory in the current workspace and
// persists the registry. Fails softly when no vault or workspace is
// current.
func (c *Coordinator) OpenProject(path string) error {
	ws, err := c.CurrentWorkspace()
	if err != nil {
		return err
	}

	if err := ws.OpenProject(path); err != nil {
		return err
	}

	if err := c.registry.Save(); err != nil {
		return fmt.Errorf("failed to persist opened project: %w", err)
	}
	return nil
}

// CurrentWorkspace returns the current vault's current workspace.
func (c *Coordinator) CurrentWorkspace() (*vault.Workspace, error) {
	current, ok := c.registry.CurrentVault()
	if !ok {
		return nil, atelierrors.ErrNoCurrentVault
	}
	ws, ok := current.GetCurrentWorkspace()
	if !ok {
		return nil, atelierrors.ErrNoCurrentWorkspace
	}
	return ws, nil
}

// RestoreSession re-selects the workspace recorded in settings under
// LastWorkspaceKey. Best-effort: a missing key or a workspace that no
// longer exists is logged and ignored.
func (c *Coordinator) RestoreSession() {
	name := store.Get(c.settings, LastWorkspaceKey, "")
	if name == "" {
		return
	}
	if err := c.SwitchWorkspace(name); err != nil {
		c.log.Debugf("Could not restore workspace %q: %v", name, err)
	}
}

// Cleanup flushes state in reverse acquisition order: application
// settings first, then the vault registry, so a crash mid-shutdown
// loses the least-recently-changed state last. Both flushes are
// attempted even when the first fails.
func (c *Coordinator) Cleanup() error {
	var errs []error
	if err := c.settings.Save(); err != nil {
		errs = append(errs, fmt.Errorf("failed to save settings: %w", err))
	}
	if err := c.registry.Save(); err != nil {
		errs = append(errs, fmt.Errorf("failed to save vault registry: %w", err))
	}
	return errors.Join(errs...)
}
