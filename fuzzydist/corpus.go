package fuzzydist

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/Alfex4936/fuzzydist/internal/local"
	"github.com/Alfex4936/fuzzydist/internal/net"
	"github.com/Alfex4936/fuzzydist/internal/parse"
)

// Corpus is an ordered list of candidate strings to rank against a query.
type Corpus struct {
	Entries []string `json:"entries"`
}

// NewCorpus creates a Corpus from the given entries.
// Whitespace-only entries are dropped; the rest are kept verbatim.
func NewCorpus(entries ...string) *Corpus {
	kept := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e) != "" {
			kept = append(kept, e)
		}
	}
	return &Corpus{Entries: kept}
}

// Len returns the number of entries. A nil Corpus has length 0.
func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Entries)
}

// DecodeCorpus parses a corpus payload: either JSON of the form
// {"entries": ["...", ...]} or newline-separated plain text.
func DecodeCorpus(data []byte) (*Corpus, error) {
	entries, err := parse.Entries(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorpusFormat, err)
	}
	if len(entries) == 0 {
		return nil, ErrCorpusFormat
	}
	return &Corpus{Entries: entries}, nil
}

// LoadCorpus reads a corpus file in either format accepted by DecodeCorpus.
func LoadCorpus(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeCorpus(data)
}

// FetchCorpus downloads a corpus over HTTP. The response body may be in
// either format accepted by DecodeCorpus. ctx controls the request.
func FetchCorpus(ctx context.Context, url string) (*Corpus, error) {
	req, err := net.NewGET(ctx, url)
	if err != nil {
		return nil, err
	}

	resp, err := net.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fuzzydist: fetch corpus: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return DecodeCorpus(body)
}

// LoadSystemCorpus loads the machine's wordlist
// (/usr/share/dict/words and friends).
func LoadSystemCorpus() (*Corpus, error) {
	path, err := local.Find()
	if err != nil {
		return nil, err
	}
	data, err := local.Load(path)
	if err != nil {
		return nil, err
	}
	return DecodeCorpus(data)
}
