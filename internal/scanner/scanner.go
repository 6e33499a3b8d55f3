package scannerService

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/RobsonDevCode/pkgscan/internal/cmdLineWriters/diagnostics"
	scannermodels "github.com/RobsonDevCode/pkgscan/internal/scanner/models"
	installedpackageservice "github.com/RobsonDevCode/pkgscan/internal/services/installedPackageService"
	lockfilescannerservice "github.com/RobsonDevCode/pkgscan/internal/services/lockfileScannerService"
	manifestreaderservice "github.com/RobsonDevCode/pkgscan/internal/services/manifestReaderService"
	vulnerabilitydatabase "github.com/RobsonDevCode/pkgscan/internal/vulnerabilityDatabase"
)

var ErrTargetNotFound = errors.New("scan target not found")

type ScannerService interface {
	ResolveTargets(targetPath string) ([]scannermodels.Target, error)
	ListSubdirectories(parent string) ([]scannermodels.Target, error)
	ScanDirectory(target scannermodels.Target, table *vulnerabilitydatabase.Table) scannermodels.ScanReport
	ScanTargets(ctx context.Context, targets []scannermodels.Target, table *vulnerabilitydatabase.Table,
		onReport func(scannermodels.ScanReport)) ([]scannermodels.ScanReport, error)
}

type Scanner struct {
	manifestReader    manifestreaderservice.ManifestReaderService
	lockfileScanner   lockfilescannerservice.LockfileScannerService
	installedPackages installedpackageservice.InstalledPackageService
	diagnostics       *diagnostics.Printer
}

func NewScanner(manifestReader manifestreaderservice.ManifestReaderService,
	lockfileScanner lockfilescannerservice.LockfileScannerService,
	installedPackages installedpackageservice.InstalledPackageService,
	diagnostics *diagnostics.Printer) *Scanner {
	return &Scanner{
		manifestReader:    manifestReader,
		lockfileScanner:   lockfileScanner,
		installedPackages: installedPackages,
		diagnostics:       diagnostics,
	}
}

// ResolveTargets turns the command line target into the directories to scan.
// Without a path every immediate subdirectory of the working directory is a
// target. A file path scans the directory that holds it.
func (s *Scanner) ResolveTargets(targetPath string) ([]scannermodels.Target, error) {
	if targetPath == "" {
		workingDir, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("error getting working directory: %w", err)
		}

		return s.ListSubdirectories(workingDir)
	}

	absPath, err := filepath.Abs(targetPath)
	if err != nil {
		return nil, fmt.Errorf("error resolving target %s: %w", targetPath, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTargetNotFound, absPath)
		}
		return nil, fmt.Errorf("error reading target %s: %w", absPath, err)
	}

	dir := absPath
	if !info.IsDir() {
		dir = filepath.Dir(absPath)
	}

	return []scannermodels.Target{{Name: filepath.Base(dir), Directory: dir}}, nil
}

// ListSubdirectories returns the immediate subdirectories of parent sorted by
// name. Symlinks are followed, entries that can't be stat'ed are reported and
// left out.
func (s *Scanner) ListSubdirectories(parent string) ([]scannermodels.Target, error) {
	entries, err := os.ReadDir(parent)
	if err != nil {
		return nil, fmt.Errorf("error listing %s: %w", parent, err)
	}

	var targets []scannermodels.Target
	for _, entry := range entries {
		path := filepath.Join(parent, entry.Name())

		info, err := os.Stat(path)
		if err != nil {
			s.diagnostics.Warnf("skipping %s: %s", path, err)
			continue
		}

		if !info.IsDir() {
			continue
		}

		targets = append(targets, scannermodels.Target{Name: entry.Name(), Directory: path})
	}

	return targets, nil
}

// ScanDirectory collects the findings of one directory: the manifest first,
// then each lock file, then the installed packages. A source that fails to
// parse is reported and skipped, the other sources still run.
func (s *Scanner) ScanDirectory(target scannermodels.Target, table *vulnerabilitydatabase.Table) scannermodels.ScanReport {
	report := scannermodels.ScanReport{
		Name:      target.Name,
		Directory: target.Directory,
	}

	results := []scannermodels.SourceResult{s.manifestReader.Read(target.Directory, table)}
	results = append(results, s.lockfileScanner.ScanDirectory(target.Directory, table)...)
	results = append(results, s.installedPackages.Inspect(target.Directory, table))

	for _, result := range results {
		switch result.Status {
		case scannermodels.ParseFailed:
			s.diagnostics.Error(result.Err)
		case scannermodels.Found:
			report.Findings = append(report.Findings, result.Findings...)
		}
	}

	return report
}

// ScanTargets scans the targets one after the other and hands each report to
// onReport as soon as it is ready.
func (s *Scanner) ScanTargets(ctx context.Context, targets []scannermodels.Target, table *vulnerabilitydatabase.Table,
	onReport func(scannermodels.ScanReport)) ([]scannermodels.ScanReport, error) {
	reports := make([]scannermodels.ScanReport, 0, len(targets))

	for _, target := range targets {
		select {
		case <-ctx.Done():
			return reports, fmt.Errorf("scan has been cancelled, %w", ctx.Err())

		default:
			report := s.ScanDirectory(target, table)
			if onReport != nil {
				onReport(report)
			}
			reports = append(reports, report)
		}
	}

	return reports, nil
}
