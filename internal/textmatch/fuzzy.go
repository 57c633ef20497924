// Package textmatch provides approximate string matching for search
// fallbacks. The scoring itself is delegated to github.com/sahilm/fuzzy;
// callers only see which corpus entries matched.
package textmatch

import "github.com/sahilm/fuzzy"

// FuzzyMatcher ranks corpus entries against a query with a
// subsequence-based fuzzy algorithm.
type FuzzyMatcher struct {
	maxResults int
}

// NewFuzzyMatcher creates a matcher. maxResults caps how many matches are
// returned, best-ranked first; 0 means unlimited.
func NewFuzzyMatcher(maxResults int) *FuzzyMatcher {
	return &FuzzyMatcher{maxResults: maxResults}
}

// Match returns the corpus entries that approximately or partially match
// query, ordered by match quality.
func (m *FuzzyMatcher) Match(corpus []string, query string) []string {
	matches := fuzzy.Find(query, corpus)
	if m.maxResults > 0 && len(matches) > m.maxResults {
		matches = matches[:m.maxResults]
	}

	results := make([]string, len(matches))
	for i, match := range matches {
		results[i] = corpus[match.Index]
	}
	return results
}
