package reports

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store persists analysis reports as JSON files on the local filesystem.
type Store struct {
	baseDir string
}

// New creates a report store rooted at baseDir.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Save marshals payload to indented JSON and writes it under the store's
// base directory as <name>_analysis_report_<id>.json. It returns the
// relative file path.
func (s *Store) Save(ctx context.Context, name string, payload any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	clean := filepath.Clean(name)
	if clean != name || strings.ContainsAny(name, `/\`) || name == "" {
		return "", fmt.Errorf("invalid report name")
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}

	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir: %w", err)
	}

	fileName := fmt.Sprintf("%s_analysis_report_%s.json", name, uuid.NewString())
	fullPath := filepath.Join(s.baseDir, fileName)
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return fileName, nil
}
