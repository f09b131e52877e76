// Command fuzzydist-cli computes edit distances and ranks corpora from the
// command line, printing pretty-printed JSON results.
//
// Usage:
//
//	fuzzydist-cli -s rust -t rusty
//	fuzzydist-cli -s long -t "A long sentence" -local
//	fuzzydist-cli -q sitting -f corpus.txt -n 5
//	printf 'kitten\nmitten\n' | fuzzydist-cli -q sitting
//	fuzzydist-cli -q levenshtein -system -max 2
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Alfex4936/fuzzydist/fuzzydist"
	"github.com/Alfex4936/fuzzydist/internal/model"
	"github.com/Alfex4936/fuzzydist/internal/util"
)

func main() {
	source  := flag.String("s", "", "source string (distance mode)")
	target  := flag.String("t", "", "target string (distance mode)")
	query   := flag.String("q", "", "query to rank against a corpus (search mode)")
	file    := flag.String("f", "", `corpus file: JSON {"entries":[...]} or one entry per line`)
	url     := flag.String("url", "", "corpus URL (search mode)")
	system  := flag.Bool("system", false, "use the system wordlist as corpus (search mode)")
	limit   := flag.Int("n", 10, "max matches to print, <=0 for all (search mode)")
	local   := flag.Bool("local", false, "best-substring distance instead of whole-string")
	fold    := flag.Bool("fold", false, "lowercase ASCII A-Z before comparing")
	maxDist := flag.Int("max", -1, "drop matches above this distance, -1 keeps all (search mode)")
	timeout := flag.Duration("timeout", 8*time.Second, "overall timeout")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	switch {
	case *query != "":
		runSearch(ctx, *query, *file, *url, *system, *limit, *local, *fold, *maxDist)
	case *source != "" || *target != "":
		runDistance(*source, *target, *local, *fold)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func runDistance(source, target string, local, fold bool) {
	var d int
	switch {
	case local && fold:
		d = fuzzydist.LocalLevenshteinIgnoreASCIICase(source, target)
	case local:
		d = fuzzydist.LocalLevenshtein(source, target)
	case fold:
		d = fuzzydist.LevenshteinIgnoreASCIICase(source, target)
	default:
		d = fuzzydist.Levenshtein(source, target)
	}

	res := model.DistanceResult{
		Source:     source,
		Target:     target,
		Distance:   d,
		Local:      local,
		IgnoreCase: fold,
	}
	out, _ := util.MarshalNoEscape(res, true)
	fmt.Println(string(out))
}

func runSearch(ctx context.Context, query, file, url string, system bool, limit int, local, fold bool, maxDist int) {
	var c *fuzzydist.Corpus
	var err error

	switch {
	case file != "":
		c, err = fuzzydist.LoadCorpus(file)
	case url != "":
		c, err = fuzzydist.FetchCorpus(ctx, url)
	case system:
		c, err = fuzzydist.LoadSystemCorpus()
	default:
		var data []byte
		data, err = io.ReadAll(os.Stdin)
		if err == nil {
			c, err = fuzzydist.DecodeCorpus(data)
		}
	}
	must(err)

	opts := fuzzydist.Options{
		Local:           local,
		IgnoreASCIICase: fold,
		MaxDistance:     maxDist,
	}
	res, err := fuzzydist.Search(ctx, query, c, limit, opts)
	must(err)

	out, _ := util.MarshalNoEscape(res, true)
	fmt.Println(string(out))
}

func must(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "fuzzydist-cli:", err)
		os.Exit(1)
	}
}
