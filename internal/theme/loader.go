package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// load reads and unmarshals a JSON file from the embedded filesystem.
func load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// decodeFile reads a user theme file. Files ending in .toml are parsed as
// TOML, anything else as JSON.
func decodeFile(path string) (Theme, error) {
	var th Theme

	content, err := os.ReadFile(path)
	if err != nil {
		return th, fmt.Errorf("reading theme file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(content, &th)
	default:
		err = json.Unmarshal(content, &th)
	}
	if err != nil {
		return th, fmt.Errorf("parsing theme file %s: %w", path, err)
	}

	return th, nil
}
