package parser

import (
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
)

// ParseLsblkPairs parses `lsblk -P` output. Each line holds KEY="value"
// tokens; the whole line is lower-cased and split shell-style so quoted
// values may contain spaces. Blank lines are skipped.
func ParseLsblkPairs(output string) ([]map[string]string, error) {
	var entries []map[string]string

	for _, line := range splitLines(output) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		tokens, err := shellquote.Split(strings.ToLower(line))
		if err != nil {
			return nil, &Error{Tool: "lsblk", Line: line, Reason: err.Error()}
		}

		entry := make(map[string]string, len(tokens))
		for _, tok := range tokens {
			key, value, ok := strings.Cut(tok, "=")
			if !ok || key == "" {
				return nil, &Error{Tool: "lsblk", Line: line, Reason: fmt.Sprintf("token %q is not key=value", tok)}
			}
			entry[key] = value
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func splitLines(output string) []string {
	return strings.Split(strings.ReplaceAll(output, "\r\n", "\n"), "\n")
}
