package scannermodels

type Finding struct {
	Source     Source
	Package    string
	Version    string
	Vulnerable bool
}
