package sim

import (
	"strconv"
	"strings"
)

// DefaultDelimiter separates pages in a reference string.
const DefaultDelimiter = ","

// ParseReferenceString splits raw on delim and parses each trimmed token as a
// page number. A token contributes its leading integer (optional sign, then
// digits), so "3" and "3kb" both yield 3. Tokens with no leading integer are
// dropped and returned in the order they appeared.
// An empty delim means DefaultDelimiter.
func ParseReferenceString(raw, delim string) (refs []int, dropped []string) {
	if delim == "" {
		delim = DefaultDelimiter
	}
	refs = make([]int, 0)
	if strings.TrimSpace(raw) == "" {
		return refs, nil
	}
	for _, tok := range strings.Split(raw, delim) {
		tok = strings.TrimSpace(tok)
		n, ok := leadingInt(tok)
		if !ok {
			dropped = append(dropped, tok)
			continue
		}
		refs = append(refs, n)
	}
	return refs, dropped
}

// leadingInt parses the longest [+-]?[0-9]+ prefix of s.
func leadingInt(s string) (int, bool) {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// out of range for int
		return 0, false
	}
	return n, true
}

// FormatReferenceString renders refs as a ", "-separated string.
func FormatReferenceString(refs []int) string {
	parts := make([]string, len(refs))
	for i, r := range refs {
		parts[i] = strconv.Itoa(r)
	}
	return strings.Join(parts, ", ")
}
