package fuzzydist_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alfex4936/fuzzydist/fuzzydist"
)

func TestSearch(t *testing.T) {
	corpus := fuzzydist.NewCorpus("kitten", "mitten", "witty")
	res, err := fuzzydist.Search(context.Background(), "sitting", corpus, 2, globalExact())
	require.NoError(t, err)

	assert.Equal(t, "sitting", res.Query)
	assert.Equal(t, 7, res.CharCount)
	assert.Equal(t, 7, res.GraphemeCount)
	assert.Equal(t, 3, res.EntryCount)
	assert.Equal(t, 3, res.BestDistance)
	require.Len(t, res.Matches, 2)
	assert.Equal(t, "kitten", res.Matches[0].Text)
}

func TestSearch_GraphemeMetadata(t *testing.T) {
	// The scientist emoji is one user-perceived character but three
	// codepoints; the report carries both counts, the distance follows
	// codepoints.
	corpus := fuzzydist.NewCorpus("🧑")
	res, err := fuzzydist.Search(context.Background(), "🧑‍🔬", corpus, 0, globalExact())
	require.NoError(t, err)

	assert.Equal(t, 3, res.CharCount)
	assert.Equal(t, 1, res.GraphemeCount)
	assert.Equal(t, 2, res.BestDistance)
}

func TestSearch_NothingWithinRange(t *testing.T) {
	opts := globalExact()
	opts.MaxDistance = 0

	corpus := fuzzydist.NewCorpus("kitten", "mitten")
	res, err := fuzzydist.Search(context.Background(), "sitting", corpus, 0, opts)
	require.NoError(t, err)

	assert.Equal(t, -1, res.BestDistance)
	assert.Empty(t, res.Matches)
}

func TestSearch_NilContext(t *testing.T) {
	_, err := fuzzydist.Search(nil, "query", fuzzydist.NewCorpus("kitten"), 0, globalExact()) //nolint:staticcheck // nil ctx is the case under test
	assert.Error(t, err)
}
