package scannerselectionservice

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/RobsonDevCode/pkgscan/internal/cmdLineWriters/diagnostics"
	reportwriter "github.com/RobsonDevCode/pkgscan/internal/cmdLineWriters/reportWriter"
	scannerService "github.com/RobsonDevCode/pkgscan/internal/scanner"
	scannermodels "github.com/RobsonDevCode/pkgscan/internal/scanner/models"
	excelexportservice "github.com/RobsonDevCode/pkgscan/internal/services/excelExportService"
	vulnerabilitydatabase "github.com/RobsonDevCode/pkgscan/internal/vulnerabilityDatabase"
	"github.com/fatih/color"
)

type ScannerSelectionService interface {
	Scan(ctx context.Context, options ScanOptions) ([]scannermodels.ScanReport, error)
}

type ScanOptions struct {
	TargetPath          string
	VulnerabilitiesPath string
	Format              string
	Interactive         bool
	Export              bool
}

type ScanSelection struct {
	scanner     scannerService.ScannerService
	writers     map[string]reportwriter.ReportWriterService
	exporter    excelexportservice.ExcelExportService
	prompter    DirectoryPrompter
	diagnostics *diagnostics.Printer
	out         io.Writer
}

func NewScanSelection(scanner scannerService.ScannerService,
	writers map[string]reportwriter.ReportWriterService,
	exporter excelexportservice.ExcelExportService,
	prompter DirectoryPrompter,
	diagnostics *diagnostics.Printer,
	out io.Writer) *ScanSelection {
	return &ScanSelection{
		scanner:     scanner,
		writers:     writers,
		exporter:    exporter,
		prompter:    prompter,
		diagnostics: diagnostics,
		out:         out,
	}
}

// Scan builds the vulnerability table for this run, scans every resolved
// target and prints each report as soon as it is ready.
func (s *ScanSelection) Scan(ctx context.Context, options ScanOptions) ([]scannermodels.ScanReport, error) {
	writer, ok := s.writers[options.Format]
	if !ok {
		return nil, fmt.Errorf("unsupported output format %q", options.Format)
	}

	table, err := vulnerabilitydatabase.Load(options.VulnerabilitiesPath)
	if err != nil {
		s.diagnostics.Error(err)
		s.diagnostics.Warnf("continuing with the built-in vulnerability list")
	}

	targets, err := s.scanner.ResolveTargets(options.TargetPath)
	if err != nil {
		return nil, err
	}

	if options.Interactive && options.TargetPath == "" {
		targets, err = s.selectTargets(targets)
		if err != nil {
			return nil, err
		}
	}

	reports, err := s.scanner.ScanTargets(ctx, targets, table, writer.Write)
	if err != nil {
		return reports, err
	}

	if options.Export {
		path, err := s.exporter.ExportFindings(reports)
		if err != nil {
			return reports, err
		}
		fmt.Fprintf(s.out, "%s\n", color.GreenString("Your file has been saved to: %s", path))
	}

	return reports, nil
}

func (s *ScanSelection) selectTargets(targets []scannermodels.Target) ([]scannermodels.Target, error) {
	if len(targets) <= 1 {
		return targets, nil
	}

	names := make([]string, 0, len(targets))
	for _, target := range targets {
		names = append(names, target.Name)
	}

	selected, err := s.prompter.SelectDirectories(names)
	if err != nil {
		return nil, err
	}

	var result []scannermodels.Target
	for _, target := range targets {
		if slices.Contains(selected, target.Name) {
			result = append(result, target)
		}
	}

	return result, nil
}
