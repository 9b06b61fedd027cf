package classifier

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
)

// Save writes the fitted model to a gob artifact, creating parent
// directories as needed.
func (m *Model) Save(path string) error {
	if m == nil || m.Vectorizer == nil {
		return ErrNotTrained
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create model directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create model file %s: %w", path, err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(m); err != nil {
		return fmt.Errorf("failed to encode model to %s: %w", path, err)
	}
	return nil
}

// Load reads a previously saved model artifact. A missing file wraps
// ErrNotTrained so callers can distinguish "train first" from corruption.
func Load(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no model artifact at %s: %w", path, ErrNotTrained)
		}
		return nil, fmt.Errorf("failed to open model file %s: %w", path, err)
	}
	defer f.Close()

	var m Model
	if err := gob.NewDecoder(f).Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode model file %s: %w", path, err)
	}
	if m.Vectorizer == nil || len(m.Classes) == 0 {
		return nil, fmt.Errorf("model file %s is incomplete: %w", path, ErrNotTrained)
	}
	return &m, nil
}
