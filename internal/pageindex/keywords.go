package pageindex

import "strings"

// HasQualifier reports whether keyword carries a parenthetical qualifier,
// as in "AAA (BBB)".
func HasQualifier(keyword string) bool {
	return strings.Contains(keyword, "(")
}

// StripQualifier returns the bare form of keyword: the text before the
// first "(", trimmed. "AAA (BBB)" becomes "AAA".
func StripQualifier(keyword string) string {
	before, _, _ := strings.Cut(keyword, "(")
	return strings.TrimSpace(before)
}

// cleanKeyword removes double quotes, which would break the TSV output.
func cleanKeyword(keyword string) string {
	return strings.ReplaceAll(keyword, `"`, "")
}
