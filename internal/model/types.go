package model

// Match is one ranked corpus entry.
type Match struct {
	Text     string `json:"text"`
	Distance int    `json:"distance"`
}

// DistanceResult is the JSON body for a single distance computation.
type DistanceResult struct {
	Source     string `json:"source"`
	Target     string `json:"target"`
	Distance   int    `json:"distance"`
	Local      bool   `json:"local"`
	IgnoreCase bool   `json:"ignoreCase"`
}

// Report is JSON-serialisable as-is.
type Report struct {
	Query         string  `json:"query"`
	CharCount     int     `json:"charCount"`     // UTF-8 rune length of the query
	GraphemeCount int     `json:"graphemeCount"` // user-perceived characters in the query
	EntryCount    int     `json:"entryCount"`    // corpus entries scanned
	BestDistance  int     `json:"bestDistance"`  // distance of Matches[0]; -1 if none
	Matches       []Match `json:"matches"`       // nil if nothing within range
}
