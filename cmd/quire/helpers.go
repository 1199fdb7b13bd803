package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/quire/internal/logging"
	"github.com/aretw0/quire/pkg/domain"
	"github.com/spf13/cobra"
)

func createLogger(cmd *cobra.Command) *slog.Logger {
	debug, _ := cmd.Flags().GetBool("debug")
	return logging.New(logging.Level(debug))
}

func colorEnabled(cmd *cobra.Command) bool {
	noColor, _ := cmd.Flags().GetBool("no-color")
	return !noColor
}

// loadResponsesFile reads a flat {question id -> answer} JSON snapshot.
func loadResponsesFile(path string) (domain.Responses, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read responses file: %w", err)
	}
	var responses domain.Responses
	if err := json.Unmarshal(data, &responses); err != nil {
		return nil, fmt.Errorf("failed to parse responses file: %w", err)
	}
	return responses, nil
}
