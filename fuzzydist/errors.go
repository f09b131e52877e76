package fuzzydist

import "errors"

var (
	// ErrCorpusFormat signals a corpus payload that is neither the JSON
	// {"entries": [...]} form nor non-empty plain text.
	ErrCorpusFormat = errors.New("fuzzydist: could not decode corpus payload")

	// ErrNoCorpus signals a ranking request with no entries to rank.
	ErrNoCorpus = errors.New("fuzzydist: no corpus entries")
)
