// Package match ranks known names against a misspelled one so that errors can
// offer "did you mean" suggestions.
//
// Key functions:
//   - Normalize: folds case and drops separators
//   - Levenshtein: computes edit distance between strings
//   - Rank: scores every known name against the input
//   - Suggest: returns the best few names above a threshold
package match
