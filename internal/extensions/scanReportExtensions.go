package extensions

import scannermodels "github.com/RobsonDevCode/pkgscan/internal/scanner/models"

// ProjectFinding is a finding tagged with the project it was found in.
type ProjectFinding struct {
	ProjectName string
	Directory   string
	scannermodels.Finding
}

func FlattenFindings(reports []scannermodels.ScanReport) []ProjectFinding {
	var findings []ProjectFinding

	for _, report := range reports {
		for _, finding := range report.Findings {
			findings = append(findings, ProjectFinding{
				ProjectName: report.Name,
				Directory:   report.Directory,
				Finding:     finding,
			})
		}
	}

	return findings
}
