package scannermodels

type ReadStatus int

const (
	Found ReadStatus = iota
	NotFound
	ParseFailed
)

func (s ReadStatus) String() string {
	switch s {
	case Found:
		return "found"
	case NotFound:
		return "not found"
	case ParseFailed:
		return "parse failed"
	default:
		return "unknown"
	}
}

// SourceResult is what reading one source produced. Err is only set when
// Status is ParseFailed, a missing file is not an error.
type SourceResult struct {
	Status   ReadStatus
	Findings []Finding
	Err      error
}

func NotFoundResult() SourceResult {
	return SourceResult{Status: NotFound}
}

func FailedResult(err error) SourceResult {
	return SourceResult{Status: ParseFailed, Err: err}
}

func FoundResult(findings []Finding) SourceResult {
	return SourceResult{Status: Found, Findings: findings}
}
