// Package adapters contains the filesystem-facing collaborators of the
// questionnaire engine. The engine itself never performs I/O.
package adapters

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/quire/pkg/domain"
)

// ResponseStore persists response snapshots as JSON files in a configured
// directory, one file per questionnaire id.
type ResponseStore struct {
	BasePath string
}

// NewResponseStore creates a store rooted at basePath.
// If basePath is empty, it defaults to ".quire/responses".
func NewResponseStore(basePath string) *ResponseStore {
	if basePath == "" {
		basePath = filepath.Join(".quire", "responses")
	}
	return &ResponseStore{BasePath: basePath}
}

// Save persists the snapshot for the given questionnaire id.
func (s *ResponseStore) Save(questionnaireID string, responses domain.Responses) error {
	if questionnaireID == "" {
		return fmt.Errorf("questionnaireID cannot be empty")
	}

	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure responses directory: %w", err)
	}

	data, err := json.MarshalIndent(responses, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal responses: %w", err)
	}

	if err := os.WriteFile(s.path(questionnaireID), data, 0644); err != nil {
		return fmt.Errorf("failed to write responses file: %w", err)
	}
	return nil
}

// Load retrieves the snapshot for the given questionnaire id.
// Returns domain.ErrResponsesNotFound when no snapshot exists.
func (s *ResponseStore) Load(questionnaireID string) (domain.Responses, error) {
	if questionnaireID == "" {
		return nil, fmt.Errorf("questionnaireID cannot be empty")
	}

	data, err := os.ReadFile(s.path(questionnaireID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrResponsesNotFound
		}
		return nil, fmt.Errorf("failed to read responses file: %w", err)
	}

	var responses domain.Responses
	if err := json.Unmarshal(data, &responses); err != nil {
		return nil, fmt.Errorf("failed to unmarshal responses: %w", err)
	}
	return responses, nil
}

// Delete removes the snapshot for the given questionnaire id, if present.
func (s *ResponseStore) Delete(questionnaireID string) error {
	if questionnaireID == "" {
		return fmt.Errorf("questionnaireID cannot be empty")
	}

	err := os.Remove(s.path(questionnaireID))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete responses file: %w", err)
	}
	return nil
}

// List returns the questionnaire ids with saved snapshots.
func (s *ResponseStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".json" {
			name := entry.Name()
			ids = append(ids, name[:len(name)-len(".json")])
		}
	}
	return ids, nil
}

func (s *ResponseStore) path(questionnaireID string) string {
	return filepath.Join(s.BasePath, questionnaireID+".json")
}
