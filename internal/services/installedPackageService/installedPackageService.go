package installedpackageservice

import (
	"encoding/json"
	"os"
	"path/filepath"

	scannermodels "github.com/RobsonDevCode/pkgscan/internal/scanner/models"
	vulnerabilitydatabase "github.com/RobsonDevCode/pkgscan/internal/vulnerabilityDatabase"
)

type InstalledPackageService interface {
	Inspect(dir string, table *vulnerabilitydatabase.Table) scannermodels.SourceResult
	InstalledVersion(dir string, pkg string) (string, bool)
}

type InstalledPackageInspector struct {
	installDirectory string
	manifestFile     string
}

type installedManifest struct {
	Version string `json:"version"`
}

func NewInstalledPackageInspector(installDirectory string, manifestFile string) *InstalledPackageInspector {
	return &InstalledPackageInspector{
		installDirectory: installDirectory,
		manifestFile:     manifestFile,
	}
}

// Inspect reports the installed version of every table package found under the
// install directory. Most packages are not installed in any given project, so
// anything missing or unreadable is skipped without an error.
func (i *InstalledPackageInspector) Inspect(dir string, table *vulnerabilitydatabase.Table) scannermodels.SourceResult {
	installPath := filepath.Join(dir, i.installDirectory)
	if _, err := os.Stat(installPath); err != nil {
		return scannermodels.NotFoundResult()
	}

	source := scannermodels.InstalledPackageSource(i.installDirectory)
	var findings []scannermodels.Finding
	for _, pkg := range table.Packages() {
		version, ok := i.InstalledVersion(dir, pkg)
		if !ok {
			continue
		}

		findings = append(findings, scannermodels.Finding{
			Source:     source,
			Package:    pkg,
			Version:    version,
			Vulnerable: table.IsVulnerable(pkg, version),
		})
	}

	return scannermodels.FoundResult(findings)
}

// InstalledVersion returns the version declared by the installed copy of pkg.
func (i *InstalledPackageInspector) InstalledVersion(dir string, pkg string) (string, bool) {
	content, err := os.ReadFile(filepath.Join(dir, i.installDirectory, pkg, i.manifestFile))
	if err != nil {
		return "", false
	}

	var manifest installedManifest
	if err := json.Unmarshal(content, &manifest); err != nil {
		return "", false
	}

	if manifest.Version == "" {
		return "", false
	}

	return manifest.Version, true
}
