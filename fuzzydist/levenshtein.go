// Package fuzzydist computes edit-distance based fuzzy string similarity:
// the classic Levenshtein distance between two whole strings, and a local
// variant that matches a query against any contiguous substring of a
// longer target.
//
// All comparisons operate on Unicode codepoints (runes), not bytes and not
// grapheme clusters, so a multi-codepoint emoji sequence counts as several
// edits. Every function is total: any pair of strings, including empty
// ones, yields a deterministic result.
package fuzzydist

// Levenshtein returns the minimum number of single-codepoint insertions,
// deletions or substitutions required to convert source into target.
//
// A distance of 0 means the strings are equal; the distance never exceeds
// the rune length of the longer string. The result is symmetric.
func Levenshtein(source, target string) int {
	src, tgt := []rune(source), []rune(target)
	// Either side empty means pure insertions or deletions. The check also
	// keeps the recurrence below away from zero-length rows.
	if len(src) == 0 {
		return len(tgt)
	}
	if len(tgt) == 0 {
		return len(src)
	}
	row := finalRow(src, tgt, false)
	return row[len(tgt)]
}

// LevenshteinIgnoreASCIICase is Levenshtein after lowercasing the ASCII
// letters A-Z on both sides. Non-ASCII codepoints are compared as-is; no
// locale or full-Unicode folding is applied.
func LevenshteinIgnoreASCIICase(source, target string) int {
	return Levenshtein(foldASCII(source), foldASCII(target))
}

// finalRow runs the two-row Wagner-Fischer recurrence and returns the last
// row of the conceptual matrix, A[len(src)][0..len(tgt)]. Both inputs must
// be non-empty.
//
// With local=false the first row is 0,1,…,len(tgt): turning the empty
// source prefix into a target prefix costs one insertion per rune. With
// local=true the first row is all zeros, so any prefix of the target can
// be skipped for free; that is what makes substring matching cheap. Entry
// 0 of row i is i in both modes, the source is never discarded for free.
func finalRow(src, tgt []rune, local bool) []int {
	prev := make([]int, len(tgt)+1)
	cur := make([]int, len(tgt)+1)
	if !local {
		for j := range prev {
			prev[j] = j
		}
	}

	for i, sr := range src {
		cur[0] = i + 1
		for j, tr := range tgt {
			deletion := prev[j+1] + 1
			insertion := cur[j] + 1
			substitution := prev[j]
			if sr != tr {
				substitution++
			}
			cur[j+1] = min(deletion, insertion, substitution)
		}
		prev, cur = cur, prev
	}
	return prev
}
