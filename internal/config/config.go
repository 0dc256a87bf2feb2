// Package config holds the client render settings. Settings are read once
// at startup, optionally from a YAML file, and passed by value to the
// subsystems that need them.
package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// LeavesMode selects how AllFacesOpt nodes (leaves) are rendered.
type LeavesMode int

const (
	LeavesOpaque LeavesMode = iota // plain cubes
	LeavesSimple                   // glass-like, special tile set
	LeavesFancy                    // all faces drawn
)

func (m LeavesMode) String() string {
	switch m {
	case LeavesOpaque:
		return "opaque"
	case LeavesSimple:
		return "simple"
	case LeavesFancy:
		return "fancy"
	}
	return fmt.Sprintf("LeavesMode(%d)", int(m))
}

// UnmarshalYAML accepts the mode by name.
func (m *LeavesMode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch s {
	case "opaque":
		*m = LeavesOpaque
	case "simple":
		*m = LeavesSimple
	case "fancy":
		*m = LeavesFancy
	default:
		return fmt.Errorf("unknown leaves mode %q", s)
	}
	return nil
}

// Settings is the full render configuration.
type Settings struct {
	Leaves        LeavesMode `yaml:"leaves"`
	OpaqueLiquids bool       `yaml:"opaque_liquids"`
	MeshWorkers   int        `yaml:"mesh_workers"`
	// RenderDistance is the demo chunk streaming radius, in mapblocks.
	RenderDistance int `yaml:"render_distance"`
	// FPSLimit caps the frame rate. Zero or negative disables the cap.
	FPSLimit int `yaml:"fps_limit"`
}

// Default returns the settings used when no config file is present.
func Default() Settings {
	workers := runtime.NumCPU() - 1
	if workers < 2 {
		workers = 2
	}
	return Settings{
		Leaves:         LeavesFancy,
		OpaqueLiquids:  false,
		MeshWorkers:    workers,
		RenderDistance: 4,
		FPSLimit:       120,
	}
}

// Load reads settings from a YAML file, falling back to defaults for
// missing keys. A missing file is not an error.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse %s: %w", path, err)
	}
	if s.MeshWorkers < 1 {
		s.MeshWorkers = 1
	}
	if s.RenderDistance < 1 {
		s.RenderDistance = 1
	}
	return s, nil
}
