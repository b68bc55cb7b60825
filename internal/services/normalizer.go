package services

import (
	"regexp"
	"strings"
)

var (
	nonAlphanumericPattern = regexp.MustCompile(`[^a-z0-9 ]+`)
	whitespacePattern      = regexp.MustCompile(`\s+`)
)

// nameSynonyms maps vendor spelling variants onto one canonical form. Applied
// as substring replacement after punctuation stripping, so "Crystal 60L" and
// "Caramel Malt - 60L" fold to comparable strings.
var nameSynonyms = []struct {
	from string
	to   string
}{
	{"crystal", "caramel"},
}

// NormalizeName canonicalizes an ingredient name before any similarity
// comparison: lowercase, drop everything but letters, digits and spaces,
// collapse runs of whitespace, trim, then fold synonyms.
func NormalizeName(name string) string {
	normalized := strings.ToLower(name)
	normalized = nonAlphanumericPattern.ReplaceAllString(normalized, " ")
	normalized = whitespacePattern.ReplaceAllString(normalized, " ")
	normalized = strings.TrimSpace(normalized)

	for _, synonym := range nameSynonyms {
		normalized = strings.ReplaceAll(normalized, synonym.from, synonym.to)
	}

	return normalized
}

// NormalizeTokens returns the normalized name split into its tokens.
func NormalizeTokens(name string) []string {
	normalized := NormalizeName(name)
	if normalized == "" {
		return nil
	}
	return strings.Fields(normalized)
}
