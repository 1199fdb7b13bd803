// Package config loads raw questionnaire documents from disk. It returns
// generic maps so the validator can inspect the document shape before the
// builder decodes it into typed structures.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a questionnaire document (YAML or JSON, selected by file
// extension) into a generic map. It performs no structural validation.
func LoadFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read questionnaire config: %w", err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes raw document bytes. ext decides the format; anything other
// than ".json" is treated as YAML (which also accepts JSON input).
func Parse(data []byte, ext string) (map[string]any, error) {
	var doc map[string]any

	if strings.ToLower(ext) == ".json" {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse questionnaire JSON: %w", err)
		}
		return doc, nil
	}

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse questionnaire YAML: %w", err)
	}
	return doc, nil
}
