package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	atelierrors "github.com/atelier-dev/atelier/internal/errors"
)

// Workspace is a named grouping of opened project directories with one
// marked current. Workspaces are created and owned by a Vault.
type Workspace struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Path string `json:"path,omitempty"`

	// OpenProjects is ordered by first open; a project appears at most once.
	OpenProjects []string `json:"open_projects"`

	// CurrentProject, when non-empty, is always an element of OpenProjects.
	CurrentProject string `json:"current_project,omitempty"`
}

// NewWorkspace creates a workspace with a fresh ID and no open projects.
func NewWorkspace(name, path string) *Workspace {
	return &Workspace{
		ID:           uuid.New().String(),
		Name:         name,
		Path:         path,
		OpenProjects: []string{},
	}
}

// OpenProject validates that path exists and is a directory, then records
// it as open and makes it the current project. A project that is already
// open is not duplicated, only re-selected. On failure the workspace is
// left untouched.
func (w *Workspace) OpenProject(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", atelierrors.ErrProjectNotFound, path)
		}
		return fmt.Errorf("failed to inspect project path %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", atelierrors.ErrProjectNotDirectory, path)
	}

	if !w.IsOpen(path) {
		w.OpenProjects = append(w.OpenProjects, path)
	}
	w.CurrentProject = path
	return nil
}

// IsOpen reports whether path is already recorded as an open project.
func (w *Workspace) IsOpen(path string) bool {
	for _, p := range w.OpenProjects {
		if p == path {
			return true
		}
	}
	return false
}

// ProjectName derives a display name from a project path: the last path
// segment, ignoring trailing separators.
func ProjectName(path string) string {
	trimmed := strings.TrimRight(path, string(filepath.Separator))
	if trimmed == "" {
		return path
	}
	return filepath.Base(trimmed)
}
