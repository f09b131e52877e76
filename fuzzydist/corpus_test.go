package fuzzydist_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alfex4936/fuzzydist/fuzzydist"
)

func TestNewCorpus_DropsBlankEntries(t *testing.T) {
	c := fuzzydist.NewCorpus("kitten", "", "  ", "mitten")
	assert.Equal(t, []string{"kitten", "mitten"}, c.Entries)
	assert.Equal(t, 2, c.Len())
}

func TestCorpusLen_NilCorpus(t *testing.T) {
	var c *fuzzydist.Corpus
	assert.Equal(t, 0, c.Len())
}

func TestDecodeCorpus(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    []string
		wantErr bool
	}{
		{"json entries", `{"entries": ["kitten", "mitten"]}`, []string{"kitten", "mitten"}, false},
		{"plain lines", "kitten\nmitten\n", []string{"kitten", "mitten"}, false},
		{"crlf lines", "kitten\r\nmitten\r\n", []string{"kitten", "mitten"}, false},
		{"blank lines skipped", "kitten\n\n   \nmitten", []string{"kitten", "mitten"}, false},
		{"empty payload", "", nil, true},
		{"json without entries", `{"words": ["kitten"]}`, nil, true},
		{"malformed json", `{"entries": [`, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := fuzzydist.DecodeCorpus([]byte(tt.payload))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, fuzzydist.ErrCorpusFormat), "want ErrCorpusFormat, got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Entries)
		})
	}
}

func TestLoadCorpus(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "corpus.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"entries": ["rust", "rusty"]}`), 0o644))

	c, err := fuzzydist.LoadCorpus(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"rust", "rusty"}, c.Entries)

	_, err = fuzzydist.LoadCorpus(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

func TestFetchCorpus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "kitten\nmitten\n")
	}))
	defer srv.Close()

	c, err := fuzzydist.FetchCorpus(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, []string{"kitten", "mitten"}, c.Entries)
}

func TestFetchCorpus_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := fuzzydist.FetchCorpus(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestLoadSystemCorpus(t *testing.T) {
	c, err := fuzzydist.LoadSystemCorpus()
	if err != nil {
		t.Skipf("no system wordlist on this machine: %v", err)
	}
	assert.Greater(t, c.Len(), 0)
}
