package match

import (
	"sort"
	"strings"
)

// prefixScore is the score of a known name that starts with the input, such
// as "monthOfYear" for "month".
const prefixScore = 0.8

// minPrefixLen keeps one or two letter inputs from matching every name that
// starts with them.
const minPrefixLen = 3

// Candidate is a known name scored against the input.
type Candidate struct {
	Name  string
	Score float64 // 0..1, higher is better
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Rank scores every known name against input and sorts by score, best first.
func Rank(input string, known []string) CandidateList {
	norm := Normalize(input)
	candidates := make(CandidateList, 0, len(known))

	for _, name := range known {
		kn := Normalize(name)
		score := Similarity(norm, kn)

		if len(norm) >= minPrefixLen && strings.HasPrefix(kn, norm) {
			score = max(score, prefixScore)
		}

		candidates = append(candidates, Candidate{Name: name, Score: score})
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns at most n known names scoring at least threshold.
func Suggest(input string, known []string, threshold float64, n int) []string {
	var names []string

	for _, c := range Rank(input, known).AboveThreshold(threshold).Top(n) {
		names = append(names, c.Name)
	}

	return names
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less sorts by score descending, then by name for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// AboveThreshold returns candidates with score at or above the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}
