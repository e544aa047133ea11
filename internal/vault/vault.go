package vault

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	atelierrors "github.com/atelier-dev/atelier/internal/errors"
)

// DefaultVaultName is the name of the vault the registry guarantees to
// exist after initialization.
const DefaultVaultName = "default"

// Vault is a named container of workspaces with one optionally selected
// as current. Vaults own their workspaces exclusively; workspaces are
// only reached through their vault.
type Vault struct {
	ID         string                `json:"id"`
	Name       string                `json:"name"`
	Workspaces map[string]*Workspace `json:"workspaces"`

	// CurrentWorkspace, when non-empty, keys an existing entry in Workspaces.
	CurrentWorkspace string `json:"current_workspace,omitempty"`
}

// NewVault creates an empty vault with a fresh ID.
func NewVault(name string) *Vault {
	return &Vault{
		ID:         uuid.New().String(),
		Name:       name,
		Workspaces: make(map[string]*Workspace),
	}
}

// CreateWorkspace constructs a workspace and inserts it into the vault.
// Workspace names are unique within a vault; creating a workspace whose
// name is already taken is rejected rather than overwriting or renaming.
// The first workspace created in a vault becomes its current workspace.
func (v *Vault) CreateWorkspace(name, path string) (*Workspace, error) {
	if _, exists := v.Workspaces[name]; exists {
		return nil, fmt.Errorf("%w: %s", atelierrors.ErrWorkspaceExists, name)
	}

	ws := NewWorkspace(name, path)
	v.Workspaces[name] = ws
	if v.CurrentWorkspace == "" {
		v.CurrentWorkspace = name
	}
	return ws, nil
}

// Workspace returns the named workspace, if present.
func (v *Vault) Workspace(name string) (*Workspace, bool) {
	ws, ok := v.Workspaces[name]
	return ws, ok
}

// SetCurrentWorkspace selects the named workspace. Selecting an unknown
// workspace fails and leaves the selection unchanged.
func (v *Vault) SetCurrentWorkspace(name string) error {
	if _, ok := v.Workspaces[name]; !ok {
		return fmt.Errorf("%w: %s", atelierrors.ErrWorkspaceNotFound, name)
	}
	v.CurrentWorkspace = name
	return nil
}

// GetCurrentWorkspace returns the selected workspace. There is no current
// workspace when the selection is empty or names a workspace that has
// since been removed; neither case is an error.
func (v *Vault) GetCurrentWorkspace() (*Workspace, bool) {
	if v.CurrentWorkspace == "" {
		return nil, false
	}
	ws, ok := v.Workspaces[v.CurrentWorkspace]
	return ws, ok
}

// RemoveWorkspace deletes the named workspace. Removing the current
// workspace clears the selection.
func (v *Vault) RemoveWorkspace(name string) error {
	if _, ok := v.Workspaces[name]; !ok {
		return fmt.Errorf("%w: %s", atelierrors.ErrWorkspaceNotFound, name)
	}
	delete(v.Workspaces, name)
	if v.CurrentWorkspace == name {
		v.CurrentWorkspace = ""
	}
	return nil
}

// WorkspaceNames returns the vault's workspace names, sorted.
func (v *Vault) WorkspaceNames() []string {
	names := make([]string, 0, len(v.Workspaces))
	for name := range v.Workspaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
