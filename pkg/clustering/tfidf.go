package clustering

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// minTermLength filters out short tokens that carry little topical signal.
const minTermLength = 4

var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "is": {},
	"are": {}, "was": {}, "were": {}, "this": {}, "that": {}, "these": {},
	"those": {}, "from": {}, "have": {}, "has": {}, "had": {}, "will": {},
	"would": {}, "could": {}, "should": {}, "about": {}, "into": {},
	"their": {}, "there": {}, "which": {}, "while": {}, "after": {},
	"before": {}, "been": {}, "being": {}, "more": {}, "most": {},
	"other": {}, "some": {}, "such": {}, "than": {}, "then": {}, "they": {},
	"when": {}, "where": {}, "your": {}, "what": {}, "also": {}, "just": {},
	"over": {}, "under": {}, "said": {}, "says": {}, "here": {}, "very": {},
}

func tokenizeTerms(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9')
	})

	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < minTermLength {
			continue
		}
		if _, stop := stopwords[f]; stop {
			continue
		}
		if _, err := strconv.Atoi(f); err == nil {
			continue
		}
		terms = append(terms, f)
	}
	return terms
}

// termWeight pairs a term with its TF-IDF weight within one document.
type termWeight struct {
	term   string
	weight float64
}

// tfidfSignatures computes, for every document, its terms ranked by TF-IDF
// weight over the whole sample. Ties are broken alphabetically so signatures
// are deterministic across runs.
func tfidfSignatures(texts []string, topN int) [][]string {
	docTerms := make([][]string, len(texts))
	docFreq := make(map[string]int)

	for i, text := range texts {
		docTerms[i] = tokenizeTerms(text)
		seen := make(map[string]struct{})
		for _, t := range docTerms[i] {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				docFreq[t]++
			}
		}
	}

	n := float64(len(texts))
	signatures := make([][]string, len(texts))

	for i, terms := range docTerms {
		tf := make(map[string]int)
		for _, t := range terms {
			tf[t]++
		}

		weights := make([]termWeight, 0, len(tf))
		for term, count := range tf {
			idf := math.Log(n/float64(docFreq[term])) + 1
			weights = append(weights, termWeight{term: term, weight: float64(count) * idf})
		}

		sort.Slice(weights, func(a, b int) bool {
			if weights[a].weight != weights[b].weight {
				return weights[a].weight > weights[b].weight
			}
			return weights[a].term < weights[b].term
		})

		limit := topN
		if limit > len(weights) {
			limit = len(weights)
		}
		sig := make([]string, limit)
		for j := 0; j < limit; j++ {
			sig[j] = weights[j].term
		}
		signatures[i] = sig
	}

	return signatures
}

// extractKeywords returns the most frequent meaningful terms of a single text.
// Used for the singleton fallback where TF-IDF over one document is meaningless.
func extractKeywords(text string, limit int) []string {
	freq := make(map[string]int)
	for _, t := range tokenizeTerms(text) {
		freq[t]++
	}

	terms := make([]termWeight, 0, len(freq))
	for term, count := range freq {
		terms = append(terms, termWeight{term: term, weight: float64(count)})
	}
	sort.Slice(terms, func(a, b int) bool {
		if terms[a].weight != terms[b].weight {
			return terms[a].weight > terms[b].weight
		}
		return terms[a].term < terms[b].term
	})

	if limit > len(terms) {
		limit = len(terms)
	}
	keywords := make([]string, limit)
	for i := 0; i < limit; i++ {
		keywords[i] = terms[i].term
	}
	return keywords
}
