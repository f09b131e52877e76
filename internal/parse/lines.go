package parse

// Lines splits raw corpus bytes into one entry per line without decoding
// UTF-8 runes. Blank lines and trailing '\r' are dropped.
func Lines(b []byte) []string {
	// Capacity hint: assume an average entry of ~16 bytes plus newline.
	out := make([]string, 0, len(b)/17+1)

	start := 0
	for i := 0; i <= len(b); i++ {
		if i < len(b) && b[i] != '\n' {
			continue
		}
		end := i
		if end > start && b[end-1] == '\r' {
			end--
		}
		if end > start {
			out = append(out, string(b[start:end]))
		}
		start = i + 1
	}
	return out
}
