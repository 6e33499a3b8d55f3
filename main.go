package main

import (
	"io"

	"github.com/RobsonDevCode/pkgscan/cmd"
	"github.com/RobsonDevCode/pkgscan/internal/cmdLineWriters/diagnostics"
	reportwriter "github.com/RobsonDevCode/pkgscan/internal/cmdLineWriters/reportWriter"
	tablewriterservice "github.com/RobsonDevCode/pkgscan/internal/cmdLineWriters/tablewriter"
	"github.com/RobsonDevCode/pkgscan/internal/configuration"
	scanner "github.com/RobsonDevCode/pkgscan/internal/scanner"
	excelexportservice "github.com/RobsonDevCode/pkgscan/internal/services/excelExportService"
	installedpackageservice "github.com/RobsonDevCode/pkgscan/internal/services/installedPackageService"
	lockfilescannerservice "github.com/RobsonDevCode/pkgscan/internal/services/lockfileScannerService"
	manifestreaderservice "github.com/RobsonDevCode/pkgscan/internal/services/manifestReaderService"
	scannerselectionservice "github.com/RobsonDevCode/pkgscan/internal/services/scannerSelectionService"
)

func main() {
	cmd.SetScanSelectionFactory(newScanSelection)
	cmd.Execute()
}

func newScanSelection(config *configuration.Config, stdout io.Writer, stderr io.Writer) scannerselectionservice.ScannerSelectionService {
	settings := config.ScannerSettings
	diagnosticsPrinter := diagnostics.NewPrinter(stderr)

	manifestReader := manifestreaderservice.NewManifestReader(settings.ManifestFile)
	lockfileScanner := lockfilescannerservice.NewLockfileScanner(settings.LockFiles)
	installedPackages := installedpackageservice.NewInstalledPackageInspector(settings.InstallDirectory, settings.ManifestFile)
	packageScanner := scanner.NewScanner(manifestReader, lockfileScanner, installedPackages, diagnosticsPrinter)

	writers := map[string]reportwriter.ReportWriterService{
		configuration.TextFormat:  reportwriter.NewWriter(stdout),
		configuration.TableFormat: tablewriterservice.NewTableWriter(stdout),
	}
	exporter := excelexportservice.NewExcelExporter(config.OutputSettings.ExportDirectory)

	return scannerselectionservice.NewScanSelection(packageScanner, writers, exporter,
		scannerselectionservice.NewSurveyPrompter(), diagnosticsPrinter, stdout)
}
