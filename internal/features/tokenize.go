// Package features builds the numeric feature representation the classifier
// consumes: TF-IDF blocks over skills and interests text, one-hot encoded
// education and a scaled age column.
package features

import "strings"

// SplitList splits a free-text list field ("python, data analysis; sql")
// into normalized tokens. Commas and semicolons both act as separators.
func SplitList(text string) []string {
	text = strings.ReplaceAll(text, ",", ";")
	parts := strings.Split(text, ";")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		token := strings.ToLower(strings.TrimSpace(part))
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// TokenSet returns SplitList output as a set for overlap computations.
func TokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, token := range SplitList(text) {
		set[token] = true
	}
	return set
}

// words lowercases the text and splits it on any non-alphanumeric rune.
func words(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		isDigit := r >= '0' && r <= '9'
		isLetter := r >= 'a' && r <= 'z'
		return !isDigit && !isLetter
	})
}

// terms produces the TF-IDF term stream for a document: unigrams plus
// adjacent bigrams, mirroring an ngram_range of (1, 2).
func terms(text string) []string {
	ws := words(text)
	out := make([]string, 0, len(ws)*2)
	out = append(out, ws...)
	for i := 0; i+1 < len(ws); i++ {
		out = append(out, ws[i]+" "+ws[i+1])
	}
	return out
}
