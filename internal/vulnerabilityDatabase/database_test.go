package vulnerabilitydatabase

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"bare version", "5.6.1", "5.6.1"},
		{"caret", "^5.6.1", "5.6.1"},
		{"tilde", "~4.4.2", "4.4.2"},
		{"comparison", ">=1.0.0", "1.0.0"},
		{"spaced comparison", ">= 1.0.0", "1.0.0"},
		{"no digits", "latest", "latest"},
		{"empty", "", ""},
		{"suffix kept", "^1.0.0-beta.1", "1.0.0-beta.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized := Normalize(tt.raw)
			assert.Equal(t, tt.expected, normalized)
			assert.Equal(t, normalized, Normalize(normalized), "normalize must be idempotent")
		})
	}
}

func TestDefault_IsVulnerable(t *testing.T) {
	table := Default()

	assert.Equal(t, 18, table.Len())
	assert.Equal(t, "backslash", table.Packages()[0])
	assert.Equal(t, "ansi-styles", table.Packages()[17])

	assert.True(t, table.IsVulnerable("chalk", "5.6.1"))
	assert.True(t, table.IsVulnerable("chalk", "^5.6.1"))
	assert.False(t, table.IsVulnerable("chalk", "5.6.0"))
	assert.False(t, table.IsVulnerable("debug", "^4.4.0"))
	assert.True(t, table.IsVulnerable("debug", "~4.4.2"))
	assert.False(t, table.IsVulnerable("left-pad", "5.6.1"))
	assert.False(t, table.IsVulnerable("chalk", "latest"))
}

func TestNew_DropsEmptyEntries(t *testing.T) {
	table := New(map[string][]string{
		"zeta":  {"1.0.0"},
		"alpha": {"2.0.0", " ", "2.0.0"},
		"empty": {},
		"blank": {""},
		"":      {"1.0.0"},
	})

	assert.Equal(t, []string{"alpha", "zeta"}, table.Packages())
	assert.Equal(t, []string{"2.0.0"}, table.Versions("alpha"))
	assert.False(t, table.Contains("empty"))
	assert.False(t, table.Contains("blank"))
	assert.Nil(t, table.Versions("empty"))
}

func TestMerge(t *testing.T) {
	t.Run("unions versions and appends new packages", func(t *testing.T) {
		merged := Merge(Default(), New(map[string][]string{
			"chalk":    {"5.6.2"},
			"my-pkg":   {"1.0.0"},
			"debug":    {"4.4.2"},
			"a-newpkg": {"0.0.1"},
		}))

		assert.Equal(t, []string{"5.6.1", "5.6.2"}, merged.Versions("chalk"))
		assert.Equal(t, []string{"4.4.2"}, merged.Versions("debug"))
		assert.Equal(t, 20, merged.Len())

		packages := merged.Packages()
		assert.Equal(t, []string{"a-newpkg", "my-pkg"}, packages[18:])
	})

	t.Run("empty override leaves base unchanged", func(t *testing.T) {
		base := Default()
		merged := Merge(base, New(nil))

		assert.Equal(t, base.Packages(), merged.Packages())
		for _, pkg := range base.Packages() {
			assert.Equal(t, base.Versions(pkg), merged.Versions(pkg))
		}
	})

	t.Run("union is order independent", func(t *testing.T) {
		a := New(map[string][]string{"pkg": {"1.0.0"}})
		b := New(map[string][]string{"pkg": {"2.0.0"}})

		assert.Equal(t, Merge(a, b).Versions("pkg"), Merge(b, a).Versions("pkg"))
	})

	t.Run("inputs are not modified", func(t *testing.T) {
		base := New(map[string][]string{"pkg": {"1.0.0"}})
		Merge(base, New(map[string][]string{"pkg": {"2.0.0"}, "other": {"3.0.0"}}))

		assert.Equal(t, []string{"1.0.0"}, base.Versions("pkg"))
		assert.False(t, base.Contains("other"))
	})
}

func writeFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("no override", func(t *testing.T) {
		table, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default().Packages(), table.Packages())
	})

	t.Run("json override", func(t *testing.T) {
		path := writeFile(t, "vulns.json", `{"chalk": ["5.6.2"], "lodash": ["4.17.20"]}`)

		table, err := Load(path)
		require.NoError(t, err)
		assert.True(t, table.IsVulnerable("chalk", "5.6.1"))
		assert.True(t, table.IsVulnerable("chalk", "^5.6.2"))
		assert.True(t, table.IsVulnerable("lodash", "4.17.20"))
	})

	t.Run("yaml override", func(t *testing.T) {
		path := writeFile(t, "vulns.yaml", "debug:\n  - 4.4.3\nleft-pad:\n  - 1.3.0\n")

		table, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"4.4.2", "4.4.3"}, table.Versions("debug"))
		assert.True(t, table.Contains("left-pad"))
	})

	t.Run("missing override falls back to built-in", func(t *testing.T) {
		table, err := Load(filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
		require.NotNil(t, table)
		assert.Equal(t, Default().Packages(), table.Packages())
	})

	t.Run("malformed override falls back to built-in", func(t *testing.T) {
		path := writeFile(t, "vulns.json", `{"chalk": "5.6.2"`)

		table, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), path)
		assert.Equal(t, []string{"5.6.1"}, table.Versions("chalk"))
	})
}
