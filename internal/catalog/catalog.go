// Package catalog provides the list of models offered for fine-tuning when
// the front-end serves its own demo backend, and the fallback model options
// of the training form.
package catalog

import (
	"fmt"
	"strings"

	"studio/internal/common/fsutil"
	"studio/pkg/types"
)

// file is the on-disk layout; it matches the GET /api/models response.
type file struct {
	Models []types.Model `json:"models" yaml:"models" toml:"models"`
}

// Default returns the built-in catalog of 4-bit base models.
func Default() []types.Model {
	return []types.Model{
		{ID: "unsloth/llama-3-8b-bnb-4bit", Name: "Llama 3 8B (4-bit)", Size: "4.5 GB", Description: "Fast 4-bit quantized Llama 3"},
		{ID: "unsloth/mistral-7b-bnb-4bit", Name: "Mistral 7B (4-bit)", Size: "3.8 GB", Description: "Efficient Mistral model"},
		{ID: "unsloth/gemma-7b-bnb-4bit", Name: "Gemma 7B (4-bit)", Size: "4.2 GB", Description: "Google's Gemma model"},
	}
}

// Load reads a catalog file (.yaml/.yml, .json or .toml). Entries keep file
// order; an entry without a name is named after its id.
func Load(path string) ([]types.Model, error) {
	var f file
	if err := fsutil.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	seen := make(map[string]struct{}, len(f.Models))
	out := make([]types.Model, 0, len(f.Models))
	for i, m := range f.Models {
		m.ID = strings.TrimSpace(m.ID)
		if m.ID == "" {
			return nil, fmt.Errorf("load catalog: entry %d has no id", i)
		}
		if _, dup := seen[m.ID]; dup {
			return nil, fmt.Errorf("load catalog: duplicate id %q", m.ID)
		}
		seen[m.ID] = struct{}{}
		if m.Name == "" {
			m.Name = m.ID
		}
		out = append(out, m)
	}
	return out, nil
}

// LoadOrDefault returns Load(path), or Default() when path is empty.
func LoadOrDefault(path string) ([]types.Model, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
