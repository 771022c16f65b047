package wordfreq

import (
	"container/heap"
	"sort"

	model "wordrank/internal/model/wordfreq"
)

// evictionHeap is a min-heap whose root is the entry to drop first when the
// heap grows past capacity: the lowest count, and for equal counts the
// alphabetically latest word.
type evictionHeap []model.WordCount

func (h evictionHeap) Len() int { return len(h) }
func (h evictionHeap) Less(i, j int) bool {
	if h[i].Count != h[j].Count {
		return h[i].Count < h[j].Count
	}
	return h[i].Word > h[j].Word
}
func (h evictionHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *evictionHeap) Push(x any)   { *h = append(*h, x.(model.WordCount)) }
func (h *evictionHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// SelectTopK returns the k entries of freq with the highest count, ties
// broken alphabetically, ordered by count descending then word ascending.
// The result is never nil and holds min(k, freq.Distinct()) entries.
func SelectTopK(freq model.FrequencyMap, k int) []model.WordCount {
	if k <= 0 || len(freq) == 0 {
		return []model.WordCount{}
	}

	capacity := k
	if len(freq) < capacity {
		capacity = len(freq)
	}
	h := make(evictionHeap, 0, capacity+1)
	for word, count := range freq {
		heap.Push(&h, model.WordCount{Word: word, Count: count})
		if h.Len() > k {
			heap.Pop(&h)
		}
	}

	ranking := []model.WordCount(h)
	sort.Slice(ranking, func(i, j int) bool {
		return model.Less(ranking[i], ranking[j])
	})
	return ranking
}

// TopKWords returns the k most frequent tokens across lines
func TopKWords(lines []string, k int) []model.WordCount {
	if k <= 0 || len(lines) == 0 {
		return []model.WordCount{}
	}
	return SelectTopK(CountWords(lines), k)
}
