package manifestreaderservice

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	scannermodels "github.com/RobsonDevCode/pkgscan/internal/scanner/models"
	vulnerabilitydatabase "github.com/RobsonDevCode/pkgscan/internal/vulnerabilityDatabase"
)

type ManifestReaderService interface {
	Read(dir string, table *vulnerabilitydatabase.Table) scannermodels.SourceResult
}

type ManifestReader struct {
	manifestFile string
}

// Manifest is the part of a package.json the scanner cares about. Values are
// kept loosely typed so one odd entry doesn't fail the whole manifest.
type Manifest struct {
	Dependencies    map[string]interface{} `json:"dependencies"`
	DevDependencies map[string]interface{} `json:"devDependencies"`
}

func NewManifestReader(manifestFile string) *ManifestReader {
	return &ManifestReader{
		manifestFile: manifestFile,
	}
}

func (r *ManifestReader) Read(dir string, table *vulnerabilitydatabase.Table) scannermodels.SourceResult {
	path := filepath.Join(dir, r.manifestFile)

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return scannermodels.NotFoundResult()
		}
		return scannermodels.FailedResult(fmt.Errorf("error reading %s: %w", path, err))
	}

	var manifest Manifest
	if err := json.Unmarshal(content, &manifest); err != nil {
		return scannermodels.FailedResult(fmt.Errorf("error reading %s: %w", path, err))
	}

	source := scannermodels.ManifestSource(r.manifestFile)
	var findings []scannermodels.Finding
	for _, section := range []map[string]interface{}{manifest.Dependencies, manifest.DevDependencies} {
		for _, pkg := range table.Packages() {
			version, ok := section[pkg].(string)
			if !ok || version == "" {
				continue
			}

			findings = append(findings, scannermodels.Finding{
				Source:     source,
				Package:    pkg,
				Version:    version,
				Vulnerable: table.IsVulnerable(pkg, version),
			})
		}
	}

	return scannermodels.FoundResult(findings)
}
