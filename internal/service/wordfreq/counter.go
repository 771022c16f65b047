package wordfreq

import (
	model "wordrank/internal/model/wordfreq"
)

// CountWords builds the frequency map of all tokens in lines using the
// ASCII tokenizer.
func CountWords(lines []string) model.FrequencyMap {
	return CountWordsWith(NewASCIITokenizer(), lines)
}

// CountWordsWith builds the frequency map of all tokens produced by
// tokenizer over lines. Each line is tokenized on its own so a token never
// spans a line boundary.
func CountWordsWith(tokenizer Tokenizer, lines []string) model.FrequencyMap {
	counts := make(model.FrequencyMap)
	add := func(token string) {
		counts.Add(token)
	}
	for _, line := range lines {
		tokenizer.Tokenize(line, add)
	}
	return counts
}
