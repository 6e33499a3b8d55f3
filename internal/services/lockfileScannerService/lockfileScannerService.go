package lockfilescannerservice

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	cache "github.com/RobsonDevCode/pkgscan/internal/caching"
	scannermodels "github.com/RobsonDevCode/pkgscan/internal/scanner/models"
	vulnerabilitydatabase "github.com/RobsonDevCode/pkgscan/internal/vulnerabilityDatabase"
)

type LockfileScannerService interface {
	Scan(lockPath string, table *vulnerabilitydatabase.Table) scannermodels.SourceResult
	ScanDirectory(dir string, table *vulnerabilitydatabase.Table) []scannermodels.SourceResult
}

type LockfileScanner struct {
	lockFiles []string
	patterns  *cache.Cache[*regexp.Regexp]
}

func NewLockfileScanner(lockFiles []string) *LockfileScanner {
	return &LockfileScanner{
		lockFiles: lockFiles,
		patterns:  &cache.Cache[*regexp.Regexp]{},
	}
}

// ScanDirectory scans every configured lock file in dir, in configuration
// order. Lock files that are not present are still returned as NotFound.
func (s *LockfileScanner) ScanDirectory(dir string, table *vulnerabilitydatabase.Table) []scannermodels.SourceResult {
	results := make([]scannermodels.SourceResult, 0, len(s.lockFiles))
	for _, lockFile := range s.lockFiles {
		results = append(results, s.Scan(filepath.Join(dir, lockFile), table))
	}

	return results
}

func (s *LockfileScanner) Scan(lockPath string, table *vulnerabilitydatabase.Table) scannermodels.SourceResult {
	content, err := os.ReadFile(lockPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return scannermodels.NotFoundResult()
		}
		return scannermodels.FailedResult(fmt.Errorf("error reading lock file %s: %w", lockPath, err))
	}

	source := scannermodels.LockFileSource(filepath.Base(lockPath))
	packages, versions, err := s.ExtractVersions(string(content), table)
	if err != nil {
		return scannermodels.FailedResult(fmt.Errorf("error scanning lock file %s: %w", lockPath, err))
	}

	findings := make([]scannermodels.Finding, 0, len(packages))
	for _, pkg := range packages {
		findings = append(findings, scannermodels.Finding{
			Source:     source,
			Package:    pkg,
			Version:    versions[pkg],
			Vulnerable: table.IsVulnerable(pkg, versions[pkg]),
		})
	}

	return scannermodels.FoundResult(findings)
}

// ExtractVersions looks for blocks shaped like
//
//	"chalk@^5.6.0": { ... "version": "5.6.1" ... }
//
// for every package in the table. When a package resolves more than once the
// last block in the file wins. The returned names are in table order.
func (s *LockfileScanner) ExtractVersions(content string, table *vulnerabilitydatabase.Table) ([]string, map[string]string, error) {
	var packages []string
	versions := make(map[string]string)

	for _, pkg := range table.Packages() {
		pattern, err := s.patterns.GetOrCreate(pkg, func() (*regexp.Regexp, error) {
			return regexp.Compile(`"` + regexp.QuoteMeta(pkg) + `@[^"]+":\s*\{[^}]*"version": "([^"]+)"`)
		})
		if err != nil {
			return nil, nil, fmt.Errorf("error compiling pattern for %s: %w", pkg, err)
		}

		matches := pattern.FindAllStringSubmatch(content, -1)
		if len(matches) == 0 {
			continue
		}

		packages = append(packages, pkg)
		versions[pkg] = matches[len(matches)-1][1]
	}

	return packages, versions, nil
}
