package wordfreq

import (
	"strconv"
	"strings"
)

// Token is a lowercased run of ASCII letters and digits
type Token = string

// FrequencyMap maps each distinct token to its occurrence count
type FrequencyMap map[Token]int64

// Add increments the count of token by one
func (fm FrequencyMap) Add(token Token) {
	fm[token]++
}

// Distinct returns the number of distinct tokens
func (fm FrequencyMap) Distinct() int {
	return len(fm)
}

// Total returns the number of token occurrences
func (fm FrequencyMap) Total() int64 {
	var total int64
	for _, count := range fm {
		total += count
	}
	return total
}

// WordCount is a single entry of a ranking
type WordCount struct {
	Word  Token `json:"word"`
	Count int64 `json:"count"`
}

// Less reports whether a ranks before b: higher count first, then
// alphabetical order for equal counts.
func Less(a, b WordCount) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	return a.Word < b.Word
}

// String returns the entry as ("word", count)
func (wc WordCount) String() string {
	return "(" + strconv.Quote(wc.Word) + ", " + strconv.FormatInt(wc.Count, 10) + ")"
}

// Format renders a ranking as [("error", 3), ("disk", 2)]
func Format(ranking []WordCount) string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, wc := range ranking {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(wc.String())
	}
	sb.WriteString("]")
	return sb.String()
}
