package vulnerabilitydatabase

import "strings"

// Normalize drops range operators such as ^, ~ or >= in front of a version by
// returning everything from the first digit on. A version without any digit is
// returned untouched.
func Normalize(raw string) string {
	index := strings.IndexAny(raw, "0123456789")
	if index < 0 {
		return raw
	}

	return raw[index:]
}
