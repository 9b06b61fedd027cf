package features

import (
	"math"
	"sort"
)

const (
	// maxFeaturesPerBlock caps each TF-IDF vocabulary by document frequency.
	maxFeaturesPerBlock = 400
	// minDocFreq drops terms seen in fewer documents than this. Relaxed to 1
	// for small corpora, where requiring two occurrences would empty the
	// vocabulary.
	minDocFreq = 2
	// smallCorpusSize is the corpus size below which minDocFreq is relaxed.
	smallCorpusSize = 20
)

// TFIDFBlock is a fitted TF-IDF vocabulary over one text column.
// Fields are exported for gob encoding of the model artifact.
type TFIDFBlock struct {
	Vocab map[string]int // term -> column index
	IDF   []float64      // per-column inverse document frequency
}

// fitTFIDF builds a vocabulary and IDF weights from the document corpus.
// Term selection and ordering are fully deterministic: terms are ranked by
// document frequency, ties broken lexically.
func fitTFIDF(docs []string) *TFIDFBlock {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, term := range terms(doc) {
			if !seen[term] {
				seen[term] = true
				df[term]++
			}
		}
	}

	minDF := minDocFreq
	if len(docs) < smallCorpusSize {
		minDF = 1
	}

	candidates := make([]string, 0, len(df))
	for term, count := range df {
		if count >= minDF {
			candidates = append(candidates, term)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if df[candidates[i]] != df[candidates[j]] {
			return df[candidates[i]] > df[candidates[j]]
		}
		return candidates[i] < candidates[j]
	})
	if len(candidates) > maxFeaturesPerBlock {
		candidates = candidates[:maxFeaturesPerBlock]
	}
	// Column order is lexical so the layout does not depend on frequency ties.
	sort.Strings(candidates)

	block := &TFIDFBlock{
		Vocab: make(map[string]int, len(candidates)),
		IDF:   make([]float64, len(candidates)),
	}
	n := float64(len(docs))
	for i, term := range candidates {
		block.Vocab[term] = i
		// Smoothed IDF: ln((1+n)/(1+df)) + 1.
		block.IDF[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
	return block
}

// transform converts one document into its l2-normalized TF-IDF vector.
func (b *TFIDFBlock) transform(doc string) []float64 {
	vec := make([]float64, len(b.IDF))
	for _, term := range terms(doc) {
		if idx, ok := b.Vocab[term]; ok {
			vec[idx] += b.IDF[idx]
		}
	}
	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// dim returns the number of columns this block contributes.
func (b *TFIDFBlock) dim() int {
	return len(b.IDF)
}
