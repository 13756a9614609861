package listing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	testCases := []struct {
		name              string
		entryName         string
		query             string
		expectedRelevance int
		expectedMatch     bool
	}{
		{name: "EmptyQueryMatchesEverything", entryName: "anything.txt", query: "", expectedRelevance: 0, expectedMatch: true},
		{name: "ExactMatch", entryName: "report", query: "report", expectedRelevance: 0, expectedMatch: true},
		{name: "ExactMatchIgnoresCase", entryName: "Report", query: "rEPORT", expectedRelevance: 0, expectedMatch: true},
		{name: "ExactMatchUnicodeCase", entryName: "\u00c9COLE", query: "\u00e9cole", expectedRelevance: 0, expectedMatch: true},
		{name: "Substring", entryName: "my report.txt", query: "report", expectedRelevance: 1, expectedMatch: true},
		{name: "PrefixIsCaughtBySubstringTier", entryName: "Report.docx", query: "report", expectedRelevance: 1, expectedMatch: true},
		{name: "SubstringIgnoresCase", entryName: "Reports", query: "REPORT", expectedRelevance: 1, expectedMatch: true},
		{name: "FuzzyTransposition", entryName: "report", query: "reprot", expectedRelevance: 5, expectedMatch: true},
		{name: "FuzzyAtThreshold", entryName: "report.txt", query: "reprot", expectedRelevance: 8, expectedMatch: true},
		{name: "FuzzyShortQueryWithinFloor", entryName: "ab", query: "x", expectedRelevance: 5, expectedMatch: true},
		{name: "FuzzyShortQueryBeyondFloor", entryName: "abc", query: "x", expectedMatch: false},
		{name: "NoMatch", entryName: "xyz.txt", query: "report", expectedMatch: false},
		{name: "ThresholdCountsRunes", entryName: "abcdef", query: "日本語日本語", expectedMatch: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert := require.New(t)
			relevance, ok := Score(testCase.entryName, testCase.query)
			assert.Equal(testCase.expectedMatch, ok)
			if testCase.expectedMatch {
				assert.Equal(testCase.expectedRelevance, relevance)
			}
		})
	}
}

func TestSubstringOutranksCloserFuzzyMatch(t *testing.T) {
	assert := require.New(t)
	scorer := NewScorer("abc")

	// "abd" is one edit away, "xxxxxxxabcxxxxxxx" is fourteen, but containment wins.
	fuzzy, ok := scorer.Score("abd")
	assert.True(ok)
	assert.Equal(4, fuzzy)

	contained, ok := scorer.Score("xxxxxxxabcxxxxxxx")
	assert.True(ok)
	assert.Equal(1, contained)
	assert.Less(contained, fuzzy)
}

func TestScorerIsReusableAcrossNames(t *testing.T) {
	assert := require.New(t)
	scorer := NewScorer("Notes")

	for _, name := range []string{"NOTES", "notes", "Notes"} {
		relevance, ok := scorer.Score(name)
		assert.True(ok)
		assert.Equal(0, relevance, name)
	}
}
