package vulnerabilitydatabase

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type entry struct {
	name     string
	versions []string
}

// compromised releases of the chalk/debug family
var builtIn = []entry{
	{"backslash", []string{"0.2.1"}},
	{"chalk-template", []string{"1.1.1"}},
	{"supports-hyperlinks", []string{"4.1.1"}},
	{"has-ansi", []string{"6.0.1"}},
	{"simple-swizzle", []string{"0.2.3"}},
	{"color-string", []string{"2.1.1"}},
	{"error-ex", []string{"1.3.3"}},
	{"color-name", []string{"2.0.1"}},
	{"is-arrayish", []string{"0.3.3"}},
	{"slice-ansi", []string{"7.1.1"}},
	{"color-convert", []string{"3.1.1"}},
	{"wrap-ansi", []string{"9.0.1"}},
	{"ansi-regex", []string{"6.2.1"}},
	{"supports-color", []string{"10.2.1"}},
	{"strip-ansi", []string{"7.1.1"}},
	{"chalk", []string{"5.6.1"}},
	{"debug", []string{"4.4.2"}},
	{"ansi-styles", []string{"6.2.2"}},
}

// Default returns the built-in table.
func Default() *Table {
	table := empty()
	for _, e := range builtIn {
		table.add(e.name, e.versions)
	}

	return table
}

// ReadFile reads an override table shaped as {"<package>": ["<version>", ...]}.
// Files ending in .yaml or .yml are decoded as YAML, anything else as JSON.
func ReadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading vulnerabilities file %s: %w", path, err)
	}

	entries := make(map[string][]string)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("error unmarshalling yaml vulnerabilities file %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("error unmarshalling json vulnerabilities file %s: %w", path, err)
		}
	}

	return New(entries), nil
}

// Load returns the built-in table merged with the override at overridePath, if
// one is given. When the override cannot be used the built-in table is still
// returned together with the error, so callers can report it and carry on.
func Load(overridePath string) (*Table, error) {
	table := Default()
	if overridePath == "" {
		return table, nil
	}

	override, err := ReadFile(overridePath)
	if err != nil {
		return table, err
	}

	return Merge(table, override), nil
}
