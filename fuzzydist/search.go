package fuzzydist

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/Alfex4936/fuzzydist/internal/model"
)

// Search ranks corpus entries against query and assembles a Report with
// query metadata and the top matches. limit <= 0 keeps every match within
// opts.MaxDistance.
//
// ctx controls cancellation of the corpus scan.
func Search(ctx context.Context, query string, c *Corpus, limit int, opts Options) (*model.Report, error) {
	if ctx == nil {
		return nil, errors.New("fuzzydist: ctx is nil")
	}

	opts.CacheSize = 0 // one-shot scan, nothing to reuse
	matches, err := NewMatcher(opts).Rank(ctx, query, c, limit)
	if err != nil {
		return nil, err
	}

	res := &model.Report{
		Query:     query,
		CharCount: utf8.RuneCountInString(query),
		// Grapheme count is reported for display purposes only; the
		// distances themselves are codepoint-based.
		GraphemeCount: uniseg.GraphemeClusterCount(query),
		EntryCount:    c.Len(),
		BestDistance:  -1,
		Matches:       matches,
	}
	if len(matches) > 0 {
		res.BestDistance = matches[0].Distance
	}
	return res, nil
}
