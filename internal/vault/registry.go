package vault

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/google/uuid"
	"github.com/tidwall/jsonc"

	atelierrors "github.com/atelier-dev/atelier/internal/errors"
	"github.com/atelier-dev/atelier/internal/fsops"
	logger "github.com/atelier-dev/atelier/internal/logging"
)

// registryDocument is the on-disk shape of the vault registry.
type registryDocument struct {
	Vaults       map[string]*Vault `json:"vaults"`
	CurrentVault string            `json:"current_vault,omitempty"`
}

// Registry owns the set of all vaults and the current-vault selection,
// persisted as a JSON document. Load absorbs corruption by falling back
// to an empty registry (EnsureDefaultVault then repairs it); Save
// propagates failure.
type Registry struct {
	path    string
	vaults  map[string]*Vault
	current string
	log     logger.Logger
}

// NewRegistry creates an empty registry backed by the given file path.
func NewRegistry(path string, log logger.Logger) *Registry {
	return &Registry{
		path:   path,
		vaults: make(map[string]*Vault),
		log:    log,
	}
}

// Path returns the backing file path.
func (r *Registry) Path() string {
	return r.path
}

// Load reads the persisted registry if present. A missing file leaves the
// registry empty; a corrupt file is logged and treated as empty, since
// EnsureDefaultVault restores a usable state afterwards. Loaded documents
// are normalized: missing IDs are assigned and dangling selection
// pointers cleared.
func (r *Registry) Load() {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.log.Warnf("Failed to read vault registry %s: %v", r.path, err)
		}
		return
	}

	var doc registryDocument
	if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
		r.log.Warnf("Vault registry %s is malformed, starting empty: %v", r.path, err)
		return
	}

	if doc.Vaults == nil {
		doc.Vaults = make(map[string]*Vault)
	}
	for name, v := range doc.Vaults {
		if v == nil {
			delete(doc.Vaults, name)
			continue
		}
		normalizeVault(name, v)
	}
	if doc.CurrentVault != "" {
		if _, ok := doc.Vaults[doc.CurrentVault]; !ok {
			r.log.Warnf("Current vault %q does not exist, clearing selection", doc.CurrentVault)
			doc.CurrentVault = ""
		}
	}

	r.vaults = doc.Vaults
	r.current = doc.CurrentVault
}

// normalizeVault repairs a vault loaded from disk so the in-memory
// invariants hold regardless of what the document contained.
func normalizeVault(name string, v *Vault) {
	v.Name = name
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	if v.Workspaces == nil {
		v.Workspaces = make(map[string]*Workspace)
	}
	for wsName, ws := range v.Workspaces {
		if ws == nil {
			delete(v.Workspaces, wsName)
			continue
		}
		ws.Name = wsName
		if ws.ID == "" {
			ws.ID = uuid.New().String()
		}
		if ws.OpenProjects == nil {
			ws.OpenProjects = []string{}
		}
		if ws.CurrentProject != "" && !ws.IsOpen(ws.CurrentProject) {
			ws.CurrentProject = ""
		}
	}
	if v.CurrentWorkspace != "" {
		if _, ok := v.Workspaces[v.CurrentWorkspace]; !ok {
			v.CurrentWorkspace = ""
		}
	}
}

// Save writes the registry to its backing file atomically, creating
// parent directories as needed. Failure is returned to the caller.
func (r *Registry) Save() error {
	doc := registryDocument{
		Vaults:       r.vaults,
		CurrentVault: r.current,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal vault registry: %w", err)
	}
	data = append(data, '\n')

	if err := fsops.AtomicWrite(r.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write vault registry: %w", err)
	}
	return nil
}

// EnsureDefaultVault guarantees a vault named "default" exists and that
// some vault is current. Idempotent: calling it on an already-populated
// registry changes nothing.
func (r *Registry) EnsureDefaultVault() *Vault {
	v, ok := r.vaults[DefaultVaultName]
	if !ok {
		v = NewVault(DefaultVaultName)
		r.vaults[DefaultVaultName] = v
	}
	if r.current == "" {
		r.current = DefaultVaultName
	}
	return v
}

// CreateVault constructs an empty vault and inserts it into the registry.
// Vault names are unique; creating a duplicate is rejected.
func (r *Registry) CreateVault(name string) (*Vault, error) {
	if _, exists := r.vaults[name]; exists {
		return nil, fmt.Errorf("%w: %s", atelierrors.ErrVaultExists, name)
	}

	v := NewVault(name)
	r.vaults[name] = v
	if r.current == "" {
		r.current = name
	}
	return v, nil
}

// Vault returns the named vault, if present.
func (r *Registry) Vault(name string) (*Vault, bool) {
	v, ok := r.vaults[name]
	return v, ok
}

// SetCurrentVault selects the named vault. Selecting an unknown vault
// fails and leaves the selection unchanged.
func (r *Registry) SetCurrentVault(name string) error {
	if _, ok := r.vaults[name]; !ok {
		return fmt.Errorf("%w: %s", atelierrors.ErrVaultNotFound, name)
	}
	r.current = name
	return nil
}

// ClearCurrentVault drops the current-vault selection, leaving the
// registry with no vault current. Callers restoring a previously empty
// selection use this; SetCurrentVault cannot express it.
func (r *Registry) ClearCurrentVault() {
	r.current = ""
}

// CurrentVault returns the selected vault, if any.
func (r *Registry) CurrentVault() (*Vault, bool) {
	if r.current == "" {
		return nil, false
	}
	v, ok := r.vaults[r.current]
	return v, ok
}

// CurrentVaultName returns the name of the selected vault, or empty.
func (r *Registry) CurrentVaultName() string {
	return r.current
}

// VaultByWorkspace finds the vault owning a workspace with the given
// name. Vaults are scanned in name order so the result is deterministic
// when several vaults hold same-named workspaces.
func (r *Registry) VaultByWorkspace(workspaceName string) (*Vault, bool) {
	for _, name := range r.VaultNames() {
		v := r.vaults[name]
		if _, ok := v.Workspaces[workspaceName]; ok {
			return v, true
		}
	}
	return nil, false
}

// RemoveVault deletes the named vault. Removing the current vault moves
// the selection to the default vault when one exists, otherwise clears it.
func (r *Registry) RemoveVault(name string) error {
	if _, ok := r.vaults[name]; !ok {
		return fmt.Errorf("%w: %s", atelierrors.ErrVaultNotFound, name)
	}
	delete(r.vaults, name)
	if r.current == name {
		r.current = ""
		if _, ok := r.vaults[DefaultVaultName]; ok {
			r.current = DefaultVaultName
		}
	}
	return nil
}

// VaultNames returns all vault names, sorted.
func (r *Registry) VaultNames() []string {
	names := make([]string, 0, len(r.vaults))
	for name := range r.vaults {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of vaults in the registry.
func (r *Registry) Len() int {
	return len(r.vaults)
}
