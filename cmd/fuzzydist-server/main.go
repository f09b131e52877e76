// Command fuzzydist-server provides an HTTP REST API for edit distances
// and fuzzy corpus search.
//
// Usage:
//
//	fuzzydist-server -p 8080
//	fuzzydist-server -p 8080 -corpus /path/to/corpus.txt
//	fuzzydist-server -p 8080 -corpus https://example.com/corpus.json
//	fuzzydist-server -p 8080 -corpus system
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Alfex4936/fuzzydist/fuzzydist"
)

func main() {
	_ = godotenv.Load() // optional .env next to the binary

	port   := flag.String("p", envOr("PORT", "8080"), "port to listen on")
	corpus := flag.String("corpus", envOr("CORPUS", ""), `shared corpus: file path, http(s) URL, or "system"`)
	flag.Parse()

	if *corpus != "" {
		c, err := loadCorpus(*corpus)
		if err != nil {
			log.Fatalf("corpus init failed: %v", err)
		}
		fuzzydist.ServerCorpus = c
		log.Printf("   corpus  : %s (%d entries)\n", *corpus, c.Len())
	} else {
		log.Printf("   corpus  : none (requests must carry inline entries)\n")
	}

	http.HandleFunc("/v1/distance", fuzzydist.DistanceHandler)
	http.HandleFunc("/v1/search", fuzzydist.SearchHandler)
	http.HandleFunc("/health", fuzzydist.HealthHandler)
	http.HandleFunc("/openapi.json", fuzzydist.OpenAPIHandler)
	http.HandleFunc("/", fuzzydist.DocsHandler)

	addr := fmt.Sprintf(":%s", *port)
	log.Printf("🚀 fuzzydist server listening on http://localhost:%s\n", *port)
	log.Printf("   POST http://localhost:%s/v1/distance\n", *port)
	log.Printf("   POST http://localhost:%s/v1/search\n", *port)
	log.Printf("   GET  http://localhost:%s/health\n", *port)
	log.Printf("   GET  http://localhost:%s/       (Redoc UI)\n", *port)
	log.Fatal(http.ListenAndServe(addr, nil))
}

// loadCorpus resolves the -corpus flag: a literal "system", a URL, or a
// local file path.
func loadCorpus(src string) (*fuzzydist.Corpus, error) {
	switch {
	case src == "system":
		return fuzzydist.LoadSystemCorpus()
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return fuzzydist.FetchCorpus(ctx, src)
	default:
		return fuzzydist.LoadCorpus(src)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
