package services

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// LevenshteinSimilarity converts edit distance into a similarity in [0, 1]:
// 1 - distance/max(len). Two empty strings are identical (1); exactly one
// empty string shares nothing (0). Lengths are counted in runes.
func LevenshteinSimilarity(a, b string) float64 {
	lenA := utf8.RuneCountInString(a)
	lenB := utf8.RuneCountInString(b)

	if lenA == 0 && lenB == 0 {
		return 1.0
	}
	if lenA == 0 || lenB == 0 {
		return 0.0
	}

	distance := levenshtein.ComputeDistance(a, b)
	maxLen := lenA
	if lenB > maxLen {
		maxLen = lenB
	}

	return 1.0 - float64(distance)/float64(maxLen)
}

// TokenSetSimilarity is the Jaccard index over whitespace-separated token
// sets: |intersection| / |union|. An empty union yields 0. Word order and
// token repetition do not matter.
func TokenSetSimilarity(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)

	union := make(map[string]struct{}, len(setA)+len(setB))
	for token := range setA {
		union[token] = struct{}{}
	}
	for token := range setB {
		union[token] = struct{}{}
	}

	if len(union) == 0 {
		return 0.0
	}

	intersection := 0
	for token := range setA {
		if _, ok := setB[token]; ok {
			intersection++
		}
	}

	return float64(intersection) / float64(len(union))
}

// NameSimilarity scores two already-normalized names as the better of edit
// similarity and token-set similarity, so both near-typos ("Citra"/"Citr")
// and reorderings ("Pale Ale Malt"/"Malt Pale Ale") score high.
func NameSimilarity(a, b string) float64 {
	editScore := LevenshteinSimilarity(a, b)
	tokenScore := TokenSetSimilarity(a, b)

	if tokenScore > editScore {
		return tokenScore
	}
	return editScore
}

func tokenSet(s string) map[string]struct{} {
	tokens := strings.Fields(s)
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}
	return set
}
