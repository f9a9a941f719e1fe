package content

import "strings"

// SplitLines breaks s on "\n", dropping a trailing "\r" from each line so
// CRLF files parse like LF ones. A final newline does not add an empty line.
func SplitLines(s string) []string {
	var lines []string
	for line := range strings.Lines(s) {
		line = strings.TrimSuffix(line, "\n")
		lines = append(lines, strings.TrimSuffix(line, "\r"))
	}
	return lines
}
