package parse

import (
	"bytes"
	"encoding/json"
	"strings"
)

// entriesDoc is the JSON corpus form, {"entries": ["...", ...]}.
type entriesDoc struct {
	Entries []string `json:"entries"`
}

// Entries decodes a corpus payload. Payloads starting with '{' must be the
// JSON entries document; everything else is treated as newline-separated
// plain text. Whitespace-only entries are dropped, order is preserved.
// A nil slice with a nil error means the payload held nothing usable.
func Entries(b []byte) ([]string, error) {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '{' {
		var doc entriesDoc
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, err
		}
		return clean(doc.Entries), nil
	}
	return clean(Lines(b)), nil
}

// clean drops whitespace-only entries, keeping the rest verbatim.
func clean(entries []string) []string {
	out := entries[:0]
	for _, e := range entries {
		if strings.TrimSpace(e) != "" {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
