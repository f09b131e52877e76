package fuzzydist

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"github.com/Alfex4936/fuzzydist/internal/model"
)

// Options configures a Matcher.
type Options struct {
	// Local ranks by best-substring distance instead of whole-string
	// distance, so short queries match cheaply inside long entries.
	Local bool

	// IgnoreASCIICase folds the ASCII letters A-Z before comparing.
	IgnoreASCIICase bool

	// MaxDistance drops entries whose distance exceeds it.
	// Negative means unbounded.
	MaxDistance int

	// CacheSize is the number of cached query rankings. 0 disables caching.
	CacheSize int
}

// DefaultOptions returns the options used for typo-tolerant search:
// substring matching, ASCII case folding, no distance cap.
func DefaultOptions() Options {
	return Options{
		Local:           true,
		IgnoreASCIICase: true,
		MaxDistance:     -1,
		CacheSize:       256,
	}
}

// Matcher ranks corpus entries by edit distance to a query.
// It is safe for concurrent use. The cache assumes a stable corpus; call
// ClearCache after swapping corpora between Rank calls.
type Matcher struct {
	opts  Options
	cache *cache
}

// NewMatcher creates a Matcher with the given options.
func NewMatcher(opts Options) *Matcher {
	m := &Matcher{opts: opts}
	if opts.CacheSize > 0 {
		m.cache = newCache(opts.CacheSize)
	}
	return m
}

type scoredEntry struct {
	pos   int
	match model.Match
}

// Rank scores every corpus entry against query and returns up to limit
// matches ordered by ascending distance, ties broken by entry text and
// then corpus position. limit <= 0 returns every match within MaxDistance.
//
// Entries are scored in parallel, bounded by GOMAXPROCS; ctx cancellation
// is honored between chunks.
func (m *Matcher) Rank(ctx context.Context, query string, c *Corpus, limit int) ([]model.Match, error) {
	if c.Len() == 0 {
		return nil, ErrNoCorpus
	}
	if m.cache != nil {
		if cached := m.cache.get(query); cached != nil {
			return applyLimit(cached, limit), nil
		}
	}

	scored := make([]scoredEntry, len(c.Entries))

	workers := runtime.GOMAXPROCS(0)
	chunk := (len(c.Entries) + workers - 1) / workers
	if chunk < 64 {
		chunk = 64 // below this, goroutine overhead beats the parallelism
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for start := 0; start < len(c.Entries); start += chunk {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}
		end := min(start+chunk, len(c.Entries))

		wg.Add(1)
		sem <- struct{}{}
		go func(start, end int) {
			defer wg.Done()
			defer func() { <-sem }()
			for i := start; i < end; i++ {
				scored[i] = scoredEntry{
					pos:   i,
					match: model.Match{Text: c.Entries[i], Distance: m.distance(query, c.Entries[i])},
				}
			}
		}(start, end)
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.match.Distance != b.match.Distance {
			return a.match.Distance < b.match.Distance
		}
		if a.match.Text != b.match.Text {
			return a.match.Text < b.match.Text
		}
		return a.pos < b.pos
	})

	out := make([]model.Match, 0, len(scored))
	for _, s := range scored {
		if m.opts.MaxDistance >= 0 && s.match.Distance > m.opts.MaxDistance {
			break // sorted ascending, nothing closer follows
		}
		out = append(out, s.match)
	}

	if m.cache != nil {
		m.cache.set(query, out)
	}
	return applyLimit(out, limit), nil
}

// distance applies the configured variant to one query/entry pair.
func (m *Matcher) distance(query, entry string) int {
	switch {
	case m.opts.Local && m.opts.IgnoreASCIICase:
		return LocalLevenshteinIgnoreASCIICase(query, entry)
	case m.opts.Local:
		return LocalLevenshtein(query, entry)
	case m.opts.IgnoreASCIICase:
		return LevenshteinIgnoreASCIICase(query, entry)
	default:
		return Levenshtein(query, entry)
	}
}

// ClearCache drops all cached rankings; call it after replacing the corpus.
func (m *Matcher) ClearCache() {
	if m.cache != nil {
		m.cache.clear()
	}
}

func applyLimit(matches []model.Match, limit int) []model.Match {
	if limit <= 0 || limit >= len(matches) {
		return matches
	}
	return matches[:limit]
}
