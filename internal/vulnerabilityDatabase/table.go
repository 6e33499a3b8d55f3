package vulnerabilitydatabase

import (
	"slices"
	"sort"
	"strings"
)

// Table maps a package name to the set of its known vulnerable versions.
// A Table is never modified after construction, Merge returns a new one.
type Table struct {
	order    []string
	versions map[string]map[string]struct{}
}

// New builds a table from a plain package -> versions mapping. Packages are
// ordered by name and blank versions are dropped, so a package with no usable
// versions is left out entirely.
func New(entries map[string][]string) *Table {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	table := empty()
	for _, name := range names {
		table.add(name, entries[name])
	}

	return table
}

func empty() *Table {
	return &Table{versions: make(map[string]map[string]struct{})}
}

func (t *Table) add(name string, versions []string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}

	for _, version := range versions {
		version = strings.TrimSpace(version)
		if version == "" {
			continue
		}

		set, exists := t.versions[name]
		if !exists {
			set = make(map[string]struct{})
			t.versions[name] = set
			t.order = append(t.order, name)
		}
		set[version] = struct{}{}
	}
}

// Merge unions every version set of addition into a copy of base. Entries only
// present in base are kept as they are. Packages new to base are appended after
// base's packages, in addition's order.
func Merge(base, addition *Table) *Table {
	merged := empty()
	for _, table := range []*Table{base, addition} {
		if table == nil {
			continue
		}
		for _, name := range table.order {
			merged.add(name, table.Versions(name))
		}
	}

	return merged
}

// IsVulnerable reports whether the normalized rawVersion is listed for pkg.
func (t *Table) IsVulnerable(pkg string, rawVersion string) bool {
	set, exists := t.versions[pkg]
	if !exists {
		return false
	}

	_, vulnerable := set[Normalize(rawVersion)]
	return vulnerable
}

func (t *Table) Contains(pkg string) bool {
	_, exists := t.versions[pkg]
	return exists
}

// Packages returns the package names in table order.
func (t *Table) Packages() []string {
	return slices.Clone(t.order)
}

// Versions returns the sorted vulnerable versions of pkg, nil when pkg is unknown.
func (t *Table) Versions(pkg string) []string {
	set, exists := t.versions[pkg]
	if !exists {
		return nil
	}

	versions := make([]string, 0, len(set))
	for version := range set {
		versions = append(versions, version)
	}
	sort.Strings(versions)

	return versions
}

func (t *Table) Len() int {
	return len(t.order)
}
