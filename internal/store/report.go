package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wallycup/stats-engine/internal/models"
)

// WriteReport writes the consolidated report document, creating parent
// directories as needed. The file is written atomically via a rename so
// readers never observe a partial document.
func WriteReport(path string, report *models.Report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating report dir: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("renaming report: %w", err)
	}
	return nil
}

// ReadReport loads a previously written report document.
func ReadReport(path string) (*models.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var report models.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("decoding report: %w", err)
	}
	return &report, nil
}
