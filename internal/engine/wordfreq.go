package engine

import (
	"sort"
	"strings"

	"smartreview/internal/dataset"
)

// WordCount is one entry in the word-frequency table.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

var stopWords = buildStopWords()

func buildStopWords() map[string]bool {
	words := []string{
		"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
		"of", "with", "by", "from", "is", "was", "are", "were", "been", "be",
		"have", "has", "had", "do", "does", "did", "will", "would", "could",
		"should", "may", "might", "must", "can", "this", "that", "these",
		"those", "i", "you", "he", "she", "it", "we", "they", "them", "their",
		"what", "which", "who", "when", "where", "why", "how", "all", "each",
		"every", "both", "few", "more", "most", "other", "some", "such",
		"only", "own", "same", "so", "than", "too", "very", "just", "my",
		"your", "his", "her", "its", "our",
	}
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// WordFrequency extracts the topN most frequent meaningful words from the
// text column: longer than 3 characters, alphabetic, not a stop word. Ties
// break alphabetically so the table is deterministic. An absent column
// yields an empty table.
func WordFrequency(ds *dataset.Dataset, textColumn string, topN int) []WordCount {
	if ds == nil || ds.ColumnIndex(textColumn) < 0 || topN <= 0 {
		return nil
	}

	counts := make(map[string]int)
	for idx := 0; idx < ds.Len(); idx++ {
		for _, word := range strings.Fields(strings.ToLower(ds.Cell(idx, textColumn))) {
			word = strings.Trim(word, ".,!?\";:()[]{}'\"-")
			if len(word) <= 3 || stopWords[word] || !isAlpha(word) {
				continue
			}
			counts[word]++
		}
	}

	freq := make([]WordCount, 0, len(counts))
	for word, count := range counts {
		freq = append(freq, WordCount{Word: word, Count: count})
	}
	sort.Slice(freq, func(i, j int) bool {
		if freq[i].Count != freq[j].Count {
			return freq[i].Count > freq[j].Count
		}
		return freq[i].Word < freq[j].Word
	})

	if len(freq) > topN {
		freq = freq[:topN]
	}
	return freq
}

func isAlpha(word string) bool {
	for _, r := range word {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return len(word) > 0
}
