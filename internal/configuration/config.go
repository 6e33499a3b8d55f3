package configuration

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const FilePath = "configuration/configuration.yaml"

const (
	TextFormat  = "text"
	TableFormat = "table"
)

type Config struct {
	ScannerSettings ScannerSettings `yaml:"scanner_settings"`
	OutputSettings  OutputSettings  `yaml:"output_settings"`
}

type ScannerSettings struct {
	ManifestFile     string   `yaml:"manifest_file"`
	LockFiles        []string `yaml:"lock_files"`
	InstallDirectory string   `yaml:"install_directory"`
}

type OutputSettings struct {
	Format          string `yaml:"format"`
	ExportDirectory string `yaml:"export_directory"`
}

func Default() *Config {
	return &Config{
		ScannerSettings: ScannerSettings{
			ManifestFile:     "package.json",
			LockFiles:        []string{"yarn.lock", "package-lock.json"},
			InstallDirectory: "node_modules",
		},
		OutputSettings: OutputSettings{
			Format:          TextFormat,
			ExportDirectory: "./export",
		},
	}
}

// Load reads the configuration at path. A missing file is not an error, the
// defaults are used instead. Settings left out of the file keep their default.
func Load(path string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	var fromFile Config
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return nil, fmt.Errorf("error unmarshalling configuration: %w", err)
	}

	config.apply(fromFile)
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) apply(other Config) {
	if other.ScannerSettings.ManifestFile != "" {
		c.ScannerSettings.ManifestFile = other.ScannerSettings.ManifestFile
	}
	if other.ScannerSettings.LockFiles != nil {
		c.ScannerSettings.LockFiles = other.ScannerSettings.LockFiles
	}
	if other.ScannerSettings.InstallDirectory != "" {
		c.ScannerSettings.InstallDirectory = other.ScannerSettings.InstallDirectory
	}
	if other.OutputSettings.Format != "" {
		c.OutputSettings.Format = other.OutputSettings.Format
	}
	if other.OutputSettings.ExportDirectory != "" {
		c.OutputSettings.ExportDirectory = other.OutputSettings.ExportDirectory
	}
}

func (c *Config) Validate() error {
	if err := ValidateFormat(c.OutputSettings.Format); err != nil {
		return err
	}

	for _, lockFile := range c.ScannerSettings.LockFiles {
		if lockFile == "" {
			return fmt.Errorf("configuration error: lock_files cannot contain an empty name")
		}
	}

	return nil
}

func ValidateFormat(format string) error {
	switch format {
	case TextFormat, TableFormat:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q, expected %q or %q", format, TextFormat, TableFormat)
	}
}
