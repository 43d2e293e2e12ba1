package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/techstore/assistant/internal/domain"
)

// LoadJSON reads product records from a JSON array file. A missing file is
// not an error: the assistant runs with an empty catalog.
func LoadJSON(path string) ([]domain.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Warn("catalog file not found, starting with empty catalog", "path", path)
			return nil, nil
		}
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return products, nil
}

// WriteJSON writes product records as an indented JSON array, the format
// LoadJSON reads back.
func WriteJSON(path string, products []domain.Product) error {
	data, err := json.MarshalIndent(products, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}
