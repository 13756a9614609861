package listing

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	relevanceExact     = 0
	relevanceContains  = 1
	relevancePrefix    = 2
	relevanceFuzzyBase = 3
)

// Scorer ranks entry names against one query. It is not safe for concurrent use;
// every listing call builds its own.
type Scorer struct {
	query     string
	threshold int
	caser     cases.Caser
}

func NewScorer(query string) *Scorer {
	scorer := &Scorer{caser: cases.Lower(language.Und)}
	if query == "" {
		return scorer
	}
	scorer.query = scorer.caser.String(query)
	scorer.threshold = utf8.RuneCountInString(scorer.query)/2 + 2
	return scorer
}

// Score returns the relevance of name, lower is better. ok is false when name does
// not match the query at any tier. An empty query matches everything with relevance 0.
//
// The tiers are checked in order and the first hit wins, so a substring match
// always outranks a fuzzy one even when the edit distance is smaller.
func (s *Scorer) Score(name string) (relevance int, ok bool) {
	if s.query == "" {
		return relevanceExact, true
	}

	name = s.caser.String(name)

	switch {
	case name == s.query:
		return relevanceExact, true
	case strings.Contains(name, s.query):
		return relevanceContains, true
	case strings.HasPrefix(name, s.query):
		return relevancePrefix, true
	}

	distance := Distance(name, s.query)
	if distance > s.threshold {
		return 0, false
	}
	return relevanceFuzzyBase + distance, true
}

func Score(name, query string) (int, bool) {
	return NewScorer(query).Score(name)
}
