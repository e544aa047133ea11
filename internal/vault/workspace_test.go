package vault

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	atelierrors "github.com/atelier-dev/atelier/internal/errors"
)

func TestOpenProject(t *testing.T) {
	projectDir := t.TempDir()
	ws := NewWorkspace("main", "")

	if err := ws.OpenProject(projectDir); err != nil {
		t.Fatalf("OpenProject failed: %v", err)
	}

	if len(ws.OpenProjects) != 1 || ws.OpenProjects[0] != projectDir {
		t.Errorf("Unexpected OpenProjects: %v", ws.OpenProjects)
	}
	if ws.CurrentProject != projectDir {
		t.Errorf("Expected CurrentProject %q, got %q", projectDir, ws.CurrentProject)
	}
}

func TestOpenProjectMissingPath(t *testing.T) {
	ws := NewWorkspace("main", "")
	missing := filepath.Join(t.TempDir(), "does", "not", "exist")

	err := ws.OpenProject(missing)
	if !errors.Is(err, atelierrors.ErrProjectNotFound) {
		t.Fatalf("Expected ErrProjectNotFound, got %v", err)
	}

	if len(ws.OpenProjects) != 0 {
		t.Errorf("Failed open should leave OpenProjects unchanged: %v", ws.OpenProjects)
	}
	if ws.CurrentProject != "" {
		t.Errorf("Failed open should leave CurrentProject unchanged: %q", ws.CurrentProject)
	}
}

func TestOpenProjectNotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(file, []byte("data"), 0600); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	ws := NewWorkspace("main", "")
	err := ws.OpenProject(file)
	if !errors.Is(err, atelierrors.ErrProjectNotDirectory) {
		t.Fatalf("Expected ErrProjectNotDirectory, got %v", err)
	}

	if len(ws.OpenProjects) != 0 || ws.CurrentProject != "" {
		t.Error("Failed open should leave workspace untouched")
	}
}

func TestOpenProjectNoDuplicates(t *testing.T) {
	projectDir := t.TempDir()
	otherDir := t.TempDir()
	ws := NewWorkspace("main", "")

	if err := ws.OpenProject(projectDir); err != nil {
		t.Fatalf("First open failed: %v", err)
	}
	if err := ws.OpenProject(otherDir); err != nil {
		t.Fatalf("Second open failed: %v", err)
	}
	if err := ws.OpenProject(projectDir); err != nil {
		t.Fatalf("Re-open failed: %v", err)
	}

	if len(ws.OpenProjects) != 2 {
		t.Errorf("Expected 2 open projects, got %v", ws.OpenProjects)
	}
	// Re-opening selects the project without reordering.
	if ws.OpenProjects[0] != projectDir || ws.OpenProjects[1] != otherDir {
		t.Errorf("Unexpected project order: %v", ws.OpenProjects)
	}
	if ws.CurrentProject != projectDir {
		t.Errorf("Expected re-opened project to be current, got %q", ws.CurrentProject)
	}
}

func TestNewWorkspaceAssignsID(t *testing.T) {
	ws := NewWorkspace("main", "/home/u/proj")

	if ws.ID == "" {
		t.Error("Expected workspace to get an ID")
	}
	if ws.OpenProjects == nil {
		t.Error("Expected OpenProjects to be initialized")
	}
	if NewWorkspace("other", "").ID == ws.ID {
		t.Error("Expected distinct workspace IDs")
	}
}

func TestProjectName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/home/u/proj", "proj"},
		{"/home/u/proj/", "proj"},
		{"proj", "proj"},
		{"/", "/"},
	}

	for _, tt := range tests {
		if got := ProjectName(tt.path); got != tt.want {
			t.Errorf("ProjectName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
