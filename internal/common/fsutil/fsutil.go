package fsutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ExpandHome expands a leading '~' to the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
}

// PathExists checks if the given path exists.
func PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !errors.Is(err, os.ErrNotExist)
}

// DecodeFile reads path (with '~' expanded) into v, choosing the decoder by
// extension. Supports: .yaml/.yml, .json, .toml
func DecodeFile(path string, v any) error {
	if path == "" {
		return fmt.Errorf("empty path")
	}
	p, err := ExpandHome(path)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return err
	}
	switch ext := strings.ToLower(filepath.Ext(p)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, v)
	case ".json":
		err = json.Unmarshal(b, v)
	case ".toml":
		err = toml.Unmarshal(b, v)
	default:
		return fmt.Errorf("unsupported file extension: %s", ext)
	}
	if err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(p), err)
	}
	return nil
}
