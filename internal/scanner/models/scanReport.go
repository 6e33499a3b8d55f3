package scannermodels

// Target is a single project directory to scan.
type Target struct {
	Name      string
	Directory string
}

type ScanReport struct {
	Name      string
	Directory string
	Findings  []Finding
}

func (r ScanReport) HasFindings() bool {
	return len(r.Findings) > 0
}

func (r ScanReport) VulnerableCount() int {
	count := 0
	for _, finding := range r.Findings {
		if finding.Vulnerable {
			count++
		}
	}

	return count
}
