package tablewriterservice

import (
	"fmt"
	"io"

	reportwriter "github.com/RobsonDevCode/pkgscan/internal/cmdLineWriters/reportWriter"
	"github.com/RobsonDevCode/pkgscan/internal/extensions"
	scannermodels "github.com/RobsonDevCode/pkgscan/internal/scanner/models"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

var FindingTableHeaders = []string{"Source", "Package", "Version", "Status"}

const maxVersionLength = 40

// TableWriter renders a report as a table instead of plain lines. Findings
// keep their order, repeated source tags are merged into one cell.
type TableWriter struct {
	out io.Writer
}

func NewTableWriter(out io.Writer) *TableWriter {
	return &TableWriter{out: out}
}

func (w *TableWriter) Write(report scannermodels.ScanReport) {
	DisplayReport(w.out, report)
}

func DisplayReport(out io.Writer, report scannermodels.ScanReport) {
	if !report.HasFindings() {
		fmt.Fprintln(out, reportwriter.NoFindingsNotice(report.Name))
		return
	}

	fmt.Fprintf(out, "\n%s\n", color.CyanString("%s", report.Name))
	table := tablewriter.NewTable(out,
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Settings: tw.Settings{Separators: tw.Separators{BetweenRows: tw.On}},
		})),
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap:  tw.WrapNormal,
					MergeMode: tw.MergeHierarchical},
				Alignment:    tw.CellAlignment{Global: tw.AlignLeft},
				ColMaxWidths: tw.CellWidth{Global: 50},
			},
		}),
	)

	table.Header(FindingTableHeaders)
	for _, finding := range report.Findings {
		table.Append([]string{
			finding.Source.Tag(),
			finding.Package,
			extensions.TruncateString(finding.Version, maxVersionLength),
			status(finding.Vulnerable),
		})
	}

	table.Render()

	vulnerable := report.VulnerableCount()
	if vulnerable > 0 {
		fmt.Fprintf(out, "%s\n\n", color.RedString("Found %d vulnerable package versions", vulnerable))
	} else {
		fmt.Fprintf(out, "%s\n\n", color.GreenString("No vulnerable package versions"))
	}
}

func status(vulnerable bool) string {
	if vulnerable {
		return color.RedString("VULNERABLE")
	}

	return color.GreenString("SAFE")
}
