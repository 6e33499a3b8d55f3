package reportwriter

import (
	"fmt"
	"io"

	scannermodels "github.com/RobsonDevCode/pkgscan/internal/scanner/models"
	"github.com/fatih/color"
)

type ReportWriterService interface {
	Write(report scannermodels.ScanReport)
}

// Writer prints one plain text block per scanned directory, findings in the
// order they were produced.
type Writer struct {
	out io.Writer
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

func (w *Writer) Write(report scannermodels.ScanReport) {
	if !report.HasFindings() {
		fmt.Fprintln(w.out, NoFindingsNotice(report.Name))
		return
	}

	fmt.Fprintf(w.out, "--- %s ---\n", report.Name)
	for _, finding := range report.Findings {
		fmt.Fprintf(w.out, "[%s] %s@%s : %s\n", finding.Source.Tag(), finding.Package, finding.Version, Marker(finding.Vulnerable))
	}
	fmt.Fprintln(w.out)
}

func Marker(vulnerable bool) string {
	if vulnerable {
		return color.RedString("❌ VULNERABLE")
	}

	return color.GreenString("✅ SAFE")
}

func NoFindingsNotice(name string) string {
	return color.YellowString("⚠️ %s: No relevant packages found.", name)
}
