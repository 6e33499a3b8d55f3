package scannermodels

type SourceKind int

const (
	ManifestFile SourceKind = iota
	LockFile
	InstalledPackage
)

// installed packages are reported under the directory they were read from
const installedPackageTag = "node_modules"

// Source says where a finding came from. Lock file sources carry the lock file
// name so each lock file gets its own tag.
type Source struct {
	Kind SourceKind
	Name string
}

func ManifestSource(manifestFile string) Source {
	return Source{Kind: ManifestFile, Name: manifestFile}
}

func LockFileSource(lockFile string) Source {
	return Source{Kind: LockFile, Name: lockFile}
}

func InstalledPackageSource(installDirectory string) Source {
	return Source{Kind: InstalledPackage, Name: installDirectory}
}

// Tag is the label printed in front of a finding, e.g. "package.json".
func (s Source) Tag() string {
	if s.Name != "" {
		return s.Name
	}

	switch s.Kind {
	case ManifestFile:
		return "package.json"
	case InstalledPackage:
		return installedPackageTag
	default:
		return "lockfile"
	}
}

func (s Source) String() string {
	return s.Tag()
}
