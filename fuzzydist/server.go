package fuzzydist

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Alfex4936/fuzzydist/internal/model"
	"github.com/Alfex4936/fuzzydist/internal/util"
)

// ServerCorpus is the shared corpus ranked by SearchHandler when a request
// carries no inline entries.
var ServerCorpus *Corpus

// DistanceRequest is the HTTP request body for /v1/distance.
type DistanceRequest struct {
	Source     string `json:"source"`                // query / pattern (required)
	Target     string `json:"target"`                // reference / haystack (required)
	Local      bool   `json:"local,omitempty"`       // best-substring distance
	IgnoreCase bool   `json:"ignore_case,omitempty"` // fold ASCII A-Z
}

// SearchRequest is the HTTP request body for /v1/search.
type SearchRequest struct {
	Query       string   `json:"query"`                  // search term (required)
	Entries     []string `json:"entries,omitempty"`      // inline corpus (optional)
	Limit       int      `json:"limit,omitempty"`        // max matches, default 10
	Local       *bool    `json:"local,omitempty"`        // default true
	IgnoreCase  *bool    `json:"ignore_case,omitempty"`  // default true
	MaxDistance *int     `json:"max_distance,omitempty"` // default unbounded
	Timeout     int      `json:"timeout,omitempty"`      // seconds, default 8
}

// DistanceHandler handles POST /v1/distance requests.
func DistanceHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req DistanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var d int
	switch {
	case req.Local && req.IgnoreCase:
		d = LocalLevenshteinIgnoreASCIICase(req.Source, req.Target)
	case req.Local:
		d = LocalLevenshtein(req.Source, req.Target)
	case req.IgnoreCase:
		d = LevenshteinIgnoreASCIICase(req.Source, req.Target)
	default:
		d = Levenshtein(req.Source, req.Target)
	}

	res := model.DistanceResult{
		Source:     req.Source,
		Target:     req.Target,
		Distance:   d,
		Local:      req.Local,
		IgnoreCase: req.IgnoreCase,
	}

	w.Header().Set("Content-Type", "application/json")
	out, _ := util.MarshalNoEscape(res, true)
	fmt.Fprint(w, string(out))
}

// SearchHandler handles POST /v1/search requests.
//
// The corpus is the request's inline entries followed by ServerCorpus;
// inline entries therefore win ties against server-side entries.
func SearchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	timeout := 8 * time.Second
	if req.Timeout > 0 {
		timeout = time.Duration(req.Timeout) * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	entries := make([]string, 0, len(req.Entries)+ServerCorpus.Len())
	entries = append(entries, req.Entries...)
	if ServerCorpus != nil {
		entries = append(entries, ServerCorpus.Entries...)
	}
	corpus := NewCorpus(entries...)
	if corpus.Len() == 0 {
		http.Error(w, "No corpus: provide entries or start the server with -corpus", http.StatusBadRequest)
		return
	}

	opts := DefaultOptions()
	if req.Local != nil {
		opts.Local = *req.Local
	}
	if req.IgnoreCase != nil {
		opts.IgnoreASCIICase = *req.IgnoreCase
	}
	if req.MaxDistance != nil {
		opts.MaxDistance = *req.MaxDistance
	}
	limit := req.Limit
	if limit == 0 {
		limit = 10
	}

	res, err := Search(ctx, req.Query, corpus, limit, opts)
	if err != nil {
		http.Error(w, fmt.Sprintf("Search failed: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	out, _ := util.MarshalNoEscape(res, true)
	fmt.Fprint(w, string(out))
}

// HealthHandler handles GET /health requests
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "fuzzydist",
	})
}

// OpenAPIHandler serves the OpenAPI 3.0 spec at GET /openapi.json
func OpenAPIHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, openAPISpec)
}

// DocsHandler serves the Redoc UI at GET /
func DocsHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, redocHTML)
}

const openAPISpec = `{
  "openapi": "3.0.3",
  "info": {
    "title": "fuzzydist API",
    "description": "Edit-distance based fuzzy string similarity: Levenshtein distance and best-substring (local) matching over Unicode codepoints.",
    "version": "1.0.0"
  },
  "paths": {
    "/v1/distance": {
      "post": {
        "summary": "Distance",
        "description": "Computes the edit distance between source and target. Set local for best-substring matching, ignore_case to fold ASCII letters.",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": { "$ref": "#/components/schemas/DistanceRequest" },
              "examples": {
                "global": { "value": { "source": "kitten", "target": "sitting" } },
                "local":  { "value": { "source": "long", "target": "A long sentence", "local": true } },
                "folded": { "value": { "source": "unrelated", "target": "SCREAMING", "ignore_case": true } }
              }
            }
          }
        },
        "responses": {
          "200": {
            "description": "Computed distance",
            "content": {
              "application/json": {
                "schema": { "$ref": "#/components/schemas/DistanceResult" },
                "example": { "source": "kitten", "target": "sitting", "distance": 3, "local": false, "ignoreCase": false }
              }
            }
          },
          "400": { "description": "Malformed JSON body" }
        }
      }
    },
    "/v1/search": {
      "post": {
        "summary": "Search",
        "description": "Ranks corpus entries by edit distance to the query. Inline entries are merged in front of the server corpus.",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": { "$ref": "#/components/schemas/SearchRequest" },
              "examples": {
                "inline": { "value": { "query": "sitting", "entries": ["kitten", "mitten", "witty"], "limit": 2 } },
                "server corpus": { "value": { "query": "levenshtien", "limit": 5, "max_distance": 3 } }
              }
            }
          }
        },
        "responses": {
          "200": {
            "description": "Ranked matches",
            "content": {
              "application/json": {
                "schema": { "$ref": "#/components/schemas/Report" },
                "example": {
                  "query": "sitting",
                  "charCount": 7,
                  "graphemeCount": 7,
                  "entryCount": 3,
                  "bestDistance": 3,
                  "matches": [
                    { "text": "kitten", "distance": 3 },
                    { "text": "mitten", "distance": 3 }
                  ]
                }
              }
            }
          },
          "400": { "description": "Malformed JSON body, or no corpus available" },
          "500": { "description": "Search failed (timeout or cancellation)" }
        }
      }
    },
    "/health": {
      "get": {
        "summary": "Health",
        "responses": {
          "200": {
            "description": "Service healthy",
            "content": {
              "application/json": {
                "example": { "status": "ok", "service": "fuzzydist" }
              }
            }
          }
        }
      }
    }
  },
  "components": {
    "schemas": {
      "DistanceRequest": {
        "type": "object",
        "required": ["source", "target"],
        "properties": {
          "source":      { "type": "string", "description": "Query / pattern string" },
          "target":      { "type": "string", "description": "Reference / haystack string" },
          "local":       { "type": "boolean", "description": "Match source against any substring of target" },
          "ignore_case": { "type": "boolean", "description": "Lowercase ASCII A-Z before comparing" }
        }
      },
      "DistanceResult": {
        "type": "object",
        "properties": {
          "source":     { "type": "string" },
          "target":     { "type": "string" },
          "distance":   { "type": "integer", "description": "Minimum number of single-codepoint edits" },
          "local":      { "type": "boolean" },
          "ignoreCase": { "type": "boolean" }
        }
      },
      "SearchRequest": {
        "type": "object",
        "required": ["query"],
        "properties": {
          "query":        { "type": "string", "description": "Search term" },
          "entries":      { "type": "array", "items": { "type": "string" }, "description": "Inline corpus entries" },
          "limit":        { "type": "integer", "description": "Max matches to return (default 10, negative = all)" },
          "local":        { "type": "boolean", "description": "Best-substring distance (default true)" },
          "ignore_case":  { "type": "boolean", "description": "Fold ASCII case (default true)" },
          "max_distance": { "type": "integer", "description": "Drop matches above this distance (default unbounded)" },
          "timeout":      { "type": "integer", "description": "Timeout in seconds (default 8)" }
        }
      },
      "Report": {
        "type": "object",
        "properties": {
          "query":         { "type": "string" },
          "charCount":     { "type": "integer", "description": "UTF-8 rune length of the query" },
          "graphemeCount": { "type": "integer", "description": "User-perceived characters in the query" },
          "entryCount":    { "type": "integer", "description": "Corpus entries scanned" },
          "bestDistance":  { "type": "integer", "description": "Distance of the closest match, -1 if none" },
          "matches":       { "type": "array", "items": { "$ref": "#/components/schemas/Match" } }
        }
      },
      "Match": {
        "type": "object",
        "properties": {
          "text":     { "type": "string",  "description": "Corpus entry" },
          "distance": { "type": "integer", "description": "Edit distance to the query" }
        }
      }
    }
  }
}`

const redocHTML = `<!DOCTYPE html>
<html>
<head>
  <title>fuzzydist API Docs</title>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <link href="https://fonts.googleapis.com/css?family=Montserrat:300,400,700|Roboto:300,400,700" rel="stylesheet">
  <style>body { margin: 0; padding: 0; }</style>
</head>
<body>
  <redoc spec-url="/openapi.json" expand-responses="200" hide-download-button></redoc>
  <script src="https://cdn.jsdelivr.net/npm/redoc@latest/bundles/redoc.standalone.js"></script>
</body>
</html>`
