/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package manifest

import (
	"fmt"
	"os"

	"github.com/go-openapi/strfmt"
	"gopkg.in/yaml.v3"

	"github.com/suparena/typefactory/errors"
)

// Metadata records where a manifest came from.
type Metadata struct {
	GeneratedAt string `yaml:"generatedAt,omitempty"`
	Source      string `yaml:"source,omitempty"`
}

// GeneratedTime parses the generatedAt field as an RFC3339 date-time.
// A manifest without the field yields the zero DateTime and no error.
func (m Metadata) GeneratedTime() (strfmt.DateTime, error) {
	if m.GeneratedAt == "" {
		return strfmt.DateTime{}, nil
	}
	return strfmt.ParseDateTime(m.GeneratedAt)
}

// Interface lists the type identifiers expected under one factory interface.
type Interface struct {
	Name  string   `yaml:"name"`
	Types []string `yaml:"types"`
}

// Manifest is a declarative table of the type registrations a correctly
// linked binary is expected to perform at startup.
type Manifest struct {
	Metadata   Metadata    `yaml:"metadata"`
	Interfaces []Interface `yaml:"interfaces"`
}

// Parse decodes a YAML manifest.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("manifest: failed to parse: %w", err)
	}
	return &m, nil
}

// Load reads and parses a YAML manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// InterfaceNames returns the interface names in declaration order.
func (m *Manifest) InterfaceNames() []string {
	names := make([]string, 0, len(m.Interfaces))
	for _, iface := range m.Interfaces {
		names = append(names, iface.Name)
	}
	return names
}

// Types returns the type identifiers listed for the named interface, or nil
// if the manifest has no entry for it.
func (m *Manifest) Types(name string) []string {
	for _, iface := range m.Interfaces {
		if iface.Name == name {
			return iface.Types
		}
	}
	return nil
}

// Validate checks the manifest structure: interface names must be non-empty
// and unique, and type identifiers non-empty and unique within their
// interface block. Violations are reported as ValidationErrors.
func (m *Manifest) Validate() error {
	if _, err := m.Metadata.GeneratedTime(); err != nil {
		return errors.NewValidationError("metadata.generatedAt", fmt.Sprintf("not an RFC3339 date-time: %v", err))
	}

	seen := make(map[string]bool, len(m.Interfaces))

	for i, iface := range m.Interfaces {
		if iface.Name == "" {
			return errors.NewValidationError("interfaces", fmt.Sprintf("interface #%d has no name", i))
		}
		if seen[iface.Name] {
			return errors.NewValidationError("interfaces", fmt.Sprintf("interface %q declared twice", iface.Name))
		}
		seen[iface.Name] = true

		seenTypes := make(map[string]bool, len(iface.Types))
		for _, id := range iface.Types {
			if id == "" {
				return errors.NewValidationError(iface.Name, "empty type identifier")
			}
			if seenTypes[id] {
				return errors.NewValidationError(iface.Name, fmt.Sprintf("type %q listed twice", id))
			}
			seenTypes[id] = true
		}
	}
	return nil
}
