package excelexportservice

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/RobsonDevCode/pkgscan/internal/extensions"
	scannermodels "github.com/RobsonDevCode/pkgscan/internal/scanner/models"
	"github.com/xuri/excelize/v2"
)

const FindingsSheetName = "Package Findings"

var ExcelFindingTableHeaders = []string{"Project", "Directory", "Source", "Package", "Version", "Vulnerable"}

type ExcelExportService interface {
	ExportFindings(reports []scannermodels.ScanReport) (string, error)
}

type ExcelExporter struct {
	saveFileTo string
	now        func() time.Time
}

func NewExcelExporter(saveFileTo string) *ExcelExporter {
	return &ExcelExporter{
		saveFileTo: saveFileTo,
		now:        time.Now,
	}
}

// ExportFindings writes every finding of the run to a new workbook and returns
// the path it was saved to.
func (e *ExcelExporter) ExportFindings(reports []scannermodels.ScanReport) (string, error) {
	if err := os.MkdirAll(e.saveFileTo, 0755); err != nil {
		return "", fmt.Errorf("error creating directory %s, %w", e.saveFileTo, err)
	}

	file := excelize.NewFile()
	defer file.Close()

	file.SetSheetName("Sheet1", FindingsSheetName)

	for i, header := range ExcelFindingTableHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		file.SetCellValue(FindingsSheetName, cell, header)
	}

	for i, finding := range extensions.FlattenFindings(reports) {
		row := i + 2 // excel is 1 index and skip headers

		vulnerable := "No"
		if finding.Vulnerable {
			vulnerable = "Yes"
		}

		rowData := []interface{}{
			finding.ProjectName,
			finding.Directory,
			finding.Source.Tag(),
			finding.Package,
			finding.Version,
			vulnerable,
		}

		if err := file.SetSheetRow(FindingsSheetName, fmt.Sprintf("A%d", row), &rowData); err != nil {
			return "", fmt.Errorf("error writing row %d: %w", row, err)
		}
	}

	fileName := fmt.Sprintf("package_findings_%s.xlsx", e.now().Format("2006-01-02T15-04-05"))
	fullPath := filepath.Join(e.saveFileTo, fileName)

	if err := file.SaveAs(fullPath); err != nil {
		return "", fmt.Errorf("failed to save excel to %s, %w", fullPath, err)
	}

	return fullPath, nil
}
