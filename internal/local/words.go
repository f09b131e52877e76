// Package local loads the system wordlist as a ready-made corpus.
package local

import (
	"fmt"
	"os"
)

// Well-known wordlist locations, checked in order.
var wordlistPaths = []string{
	"/usr/share/dict/words",
	"/usr/dict/words",
	"/usr/share/dict/american-english",
	"/usr/share/dict/british-english",
}

// Find returns the first system wordlist present on this machine.
func Find() (string, error) {
	for _, p := range wordlistPaths {
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("local: no system wordlist found (is a dict package installed?)")
}

// Load reads the wordlist at path, one entry per line.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("local: read wordlist: %w", err)
	}
	return data, nil
}
