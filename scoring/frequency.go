package scoring

import (
	"errors"
	"math"
	"strings"
)

// ErrDegenerateVocabulary is returned when no character n-grams can be
// extracted from the corpus (all texts empty or whitespace). Frequency maps
// it to the floor score instead of propagating it.
var ErrDegenerateVocabulary = errors.New("scoring: no n-gram features in corpus")

// Frequency scores how strongly a new complaint duplicates recent history.
// Past texts must already be pre-filtered to the relevant time window by the
// caller; the scorer does not look at dates. An empty history or a
// vectorization failure both read as "no similar complaints found" and yield
// the floor score.
func (e *Engine) Frequency(text string, pastTexts []string) float64 {
	cfg, _ := e.snapshot()
	if len(pastTexts) == 0 {
		return cfg.FrequencyFloor
	}

	sims, err := e.Similarities(text, pastTexts)
	if err != nil {
		// Deliberate availability-over-correctness fallback: a degenerate
		// corpus is scored as unique rather than failing the pipeline.
		return cfg.FrequencyFloor
	}

	count := 0
	for _, sim := range sims {
		if sim > cfg.SimilarityThreshold {
			count++
		}
	}

	score := cfg.FrequencyCeiling
	for _, step := range cfg.FrequencySteps {
		if count <= step.MaxCount {
			score = step.Score
			break
		}
	}
	return score
}

// Similarities returns the cosine similarity between text and each of the
// others, using a character n-gram TF-IDF representation built jointly over
// the whole set. Character n-grams over word tokens keep short, misspelled
// complaint texts comparable where word-level vectors would be too sparse.
func (e *Engine) Similarities(text string, others []string) ([]float64, error) {
	cfg, _ := e.snapshot()

	docs := make([]map[string]float64, 0, len(others)+1)
	for _, other := range others {
		docs = append(docs, termFrequencies(other, cfg.NgramMin, cfg.NgramMax))
	}
	docs = append(docs, termFrequencies(text, cfg.NgramMin, cfg.NgramMax))

	df := make(map[string]int)
	for _, doc := range docs {
		for term := range doc {
			df[term]++
		}
	}
	if len(df) == 0 {
		return nil, ErrDegenerateVocabulary
	}

	// Smoothed IDF, then L2 normalization, so cosine reduces to a dot product.
	n := float64(len(docs))
	idf := make(map[string]float64, len(df))
	for term, count := range df {
		idf[term] = math.Log((1+n)/float64(1+count)) + 1
	}
	for _, doc := range docs {
		normalizeTFIDF(doc, idf)
	}

	query := docs[len(docs)-1]
	sims := make([]float64, len(others))
	for i, doc := range docs[:len(docs)-1] {
		sims[i] = dot(query, doc)
	}
	return sims, nil
}

// termFrequencies extracts word-boundary-padded character n-grams (sizes
// minN..maxN) from the lower-cased text and counts them. Words shorter than
// the window are counted once as a whole.
func termFrequencies(text string, minN, maxN int) map[string]float64 {
	tf := make(map[string]float64)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		padded := []rune(" " + word + " ")
		for n := minN; n <= maxN; n++ {
			if len(padded) <= n {
				tf[string(padded)]++
				break
			}
			for off := 0; off+n <= len(padded); off++ {
				tf[string(padded[off:off+n])]++
			}
		}
	}
	return tf
}

func normalizeTFIDF(doc map[string]float64, idf map[string]float64) {
	var sumSquares float64
	for term, count := range doc {
		w := count * idf[term]
		doc[term] = w
		sumSquares += w * w
	}
	if sumSquares == 0 {
		return
	}
	norm := math.Sqrt(sumSquares)
	for term := range doc {
		doc[term] /= norm
	}
}

func dot(a, b map[string]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for term, w := range a {
		sum += w * b[term]
	}
	return sum
}
