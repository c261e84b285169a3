// Package textutil provides small text-shaping helpers shared across the module.
package textutil

import "strings"

// Dedent removes the longest common leading-space prefix of the non-blank lines of s from every line. Blank and whitespace-only lines do not participate in
// computing the prefix. Tabs are not treated as spaces.
func Dedent(s string) string {
	lines := strings.Split(s, "\n")

	spacesToRemove := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		leading := len(line) - len(strings.TrimLeft(line, " "))
		if spacesToRemove < 0 || leading < spacesToRemove {
			spacesToRemove = leading
		}
	}
	if spacesToRemove <= 0 {
		return s
	}

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if len(line) < spacesToRemove {
			out = append(out, "")
			continue
		}
		out = append(out, line[spacesToRemove:])
	}
	return strings.Join(out, "\n")
}
