package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatal(err)
	}
	if s.Leaves != LeavesFancy {
		t.Fatalf("default leaves = %v, want fancy", s.Leaves)
	}
	if s.MeshWorkers < 1 {
		t.Fatalf("default workers = %d", s.MeshWorkers)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yml")
	content := "leaves: simple\nopaque_liquids: true\nmesh_workers: 3\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Leaves != LeavesSimple || !s.OpaqueLiquids || s.MeshWorkers != 3 {
		t.Fatalf("loaded %+v", s)
	}
}

func TestLoadRejectsUnknownLeavesMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yml")
	if err := os.WriteFile(path, []byte("leaves: shiny\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown leaves mode")
	}
}
