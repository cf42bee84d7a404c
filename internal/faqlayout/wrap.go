package faqlayout

import (
	"strings"
)

// wrap breaks text into lines which fit into width when rendered with font f.
// Paragraphs are kept. Words wider than width are broken between runes.
// Returns no lines for an empty text.
func wrap(text string, width float32, f Font, measure MeasureFunc) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	fits := func(s string) bool {
		return measure(s, f.Size, f.Style).Width <= width
	}
	var lines []string
	for paragraph := range strings.SplitSeq(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		var line string
		for _, w := range words {
			candidate := w
			if line != "" {
				candidate = line + " " + w
			}
			if fits(candidate) {
				line = candidate
				continue
			}
			if line != "" {
				lines = append(lines, line)
			}
			if fits(w) {
				line = w
				continue
			}
			chunks := breakWord(w, fits)
			lines = append(lines, chunks[:len(chunks)-1]...)
			line = chunks[len(chunks)-1]
		}
		lines = append(lines, line)
	}
	return lines
}

// breakWord breaks a word into chunks which fit.
// Every chunk has at least one rune, even if that rune alone does not fit.
func breakWord(word string, fits func(string) bool) []string {
	var chunks []string
	runes := []rune(word)
	for len(runes) > 0 {
		n := 1
		for n < len(runes) && fits(string(runes[:n+1])) {
			n++
		}
		chunks = append(chunks, string(runes[:n]))
		runes = runes[n:]
	}
	return chunks
}
