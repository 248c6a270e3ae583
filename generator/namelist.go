package generator

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"
)

// NameList is a parsed name list document. The YAML form is a mapping
// with an optional package name and a sequence of raw names:
//
//	package: status
//	names:
//	  - pending review
//	  - in progress
//	  - done
type NameList struct {
	// Package is the Go package name for generated code (optional)
	Package string `yaml:"package"`
	// Names are the raw names to generate constants from
	Names []string `yaml:"names"`
}

// ParseNameList parses a name list document from YAML bytes.
// yaml.Unmarshal handles both YAML and JSON input.
func ParseNameList(data []byte) (*NameList, error) {
	var list NameList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("generator: failed to parse name list: %w", err)
	}
	return &list, nil
}

// LoadNameList reads and parses a name list document from a file path.
func LoadNameList(path string) (*NameList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("generator: failed to read name list: %w", err)
	}
	return ParseNameList(data)
}
