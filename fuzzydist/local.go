package fuzzydist

// LocalLevenshtein returns the minimum number of single-codepoint edits
// required to convert source into some contiguous substring of target.
//
// Any prefix and suffix of the target may be discarded at no cost, so a
// short query that appears inside a long target scores 0. The result is
// asymmetric and never exceeds the rune length of source, since deleting
// all of source always matches the empty substring.
func LocalLevenshtein(source, target string) int {
	src, tgt := []rune(source), []rune(target)
	if len(src) == 0 {
		// A zero-length substring exists at every position of target.
		return 0
	}
	if len(tgt) == 0 {
		// The only substring of "" is "", so the whole source is deleted.
		return len(src)
	}

	// Minimum over the final row lets the match end anywhere in target,
	// mirroring the free prefix skip from the all-zero first row.
	row := finalRow(src, tgt, true)
	best := row[0]
	for _, d := range row[1:] {
		if d < best {
			best = d
		}
	}
	return best
}

// LocalLevenshteinIgnoreASCIICase is LocalLevenshtein after lowercasing
// the ASCII letters A-Z on both sides.
func LocalLevenshteinIgnoreASCIICase(source, target string) int {
	return LocalLevenshtein(foldASCII(source), foldASCII(target))
}
