package analyzer

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestFileName is the manifest file looked for in an analyzer
// runtime directory.
const ManifestFileName = "manifest.yaml"

// Manifest describes an analyzer runtime: which module file to load and
// what it can do.
type Manifest struct {
	Name         string     `yaml:"name"`
	Version      string     `yaml:"version"`
	Language     string     `yaml:"language"`
	Wasm         WasmModule `yaml:"wasm"`
	Capabilities []string   `yaml:"capabilities"`
	Author       string     `yaml:"author"`
	License      string     `yaml:"license"`

	dir string
}

// WasmModule names the module file relative to the manifest directory.
type WasmModule struct {
	File string `yaml:"file"`
}

// ParseManifest reads and validates manifest.yaml from dir.
func ParseManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ManifestError{Path: path, Message: "manifest not found", Err: err}
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, &ManifestError{Path: path, Message: "failed to parse", Err: err}
	}
	m.dir = dir

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks manifest fields.
func (m *Manifest) Validate() error {
	path := filepath.Join(m.dir, ManifestFileName)

	if m.Name == "" {
		return &ManifestError{Path: path, Message: "name is required"}
	}
	if m.Version == "" {
		return &ManifestError{Path: path, Message: "version is required"}
	}
	if m.Wasm.File == "" {
		return &ManifestError{Path: path, Message: "wasm.file is required"}
	}
	if len(m.Capabilities) == 0 {
		return &ManifestError{Path: path, Message: "at least one capability is required"}
	}

	validCaps := map[string]bool{
		CapabilityValidation:       true,
		CapabilitySchemaValidation: true,
		CapabilityCompletion:       true,
		CapabilityClassification:   true,
	}
	for _, c := range m.Capabilities {
		if !validCaps[c] {
			return &ManifestError{
				Path: path,
				Message: fmt.Sprintf("unknown capability: %s (must be one of: %s, %s, %s, %s)",
					c, CapabilityValidation, CapabilitySchemaValidation,
					CapabilityCompletion, CapabilityClassification),
			}
		}
	}

	if _, err := os.Stat(m.ModulePath()); err != nil {
		return &ManifestError{Path: path, Message: fmt.Sprintf("wasm file '%s' not found", m.Wasm.File), Err: err}
	}
	return nil
}

// Supports reports whether the manifest declares the capability.
func (m *Manifest) Supports(capability string) bool {
	for _, c := range m.Capabilities {
		if c == capability {
			return true
		}
	}
	return false
}

// ModulePath returns the absolute path to the module file.
func (m *Manifest) ModulePath() string {
	return filepath.Join(m.dir, m.Wasm.File)
}

// ReadModule reads the module bytes.
func (m *Manifest) ReadModule() ([]byte, error) {
	return os.ReadFile(m.ModulePath())
}
