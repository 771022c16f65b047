package wordfreq

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	model "wordrank/internal/model/wordfreq"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopKWords_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		k     int
		want  []model.WordCount
	}{
		{
			name: "log lines",
			lines: []string{
				"Error: Disk full",
				"Warning: Memory low",
				"error: network down",
				"Error: Disk full",
			},
			k:    2,
			want: []model.WordCount{{Word: "error", Count: 3}, {Word: "disk", Count: 2}},
		},
		{
			name:  "no lines",
			lines: []string{},
			k:     5,
			want:  []model.WordCount{},
		},
		{
			name:  "k zero",
			lines: []string{"a a a", "b b", "c"},
			k:     0,
			want:  []model.WordCount{},
		},
		{
			name:  "frequency before alphabet",
			lines: []string{"Tie tie TIE", "bat Bat"},
			k:     2,
			want:  []model.WordCount{{Word: "tie", Count: 3}, {Word: "bat", Count: 2}},
		},
		{
			name:  "alphanumeric tokens",
			lines: []string{"x1 X1 x2"},
			k:     2,
			want:  []model.WordCount{{Word: "x1", Count: 2}, {Word: "x2", Count: 1}},
		},
		{
			name:  "k larger than vocabulary",
			lines: []string{"b a", "c"},
			k:     10,
			want:  []model.WordCount{{Word: "a", Count: 1}, {Word: "b", Count: 1}, {Word: "c", Count: 1}},
		},
		{
			name:  "alphabetically earliest survive a tie at capacity",
			lines: []string{"delta charlie bravo alpha"},
			k:     2,
			want:  []model.WordCount{{Word: "alpha", Count: 1}, {Word: "bravo", Count: 1}},
		},
		{
			name:  "negative k",
			lines: []string{"a"},
			k:     -1,
			want:  []model.WordCount{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TopKWords(tt.lines, tt.k)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectTopK_EmptyMap(t *testing.T) {
	got := SelectTopK(model.FrequencyMap{}, 3)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

// fullSortTopK ranks every entry and truncates
func fullSortTopK(freq model.FrequencyMap, k int) []model.WordCount {
	all := make([]model.WordCount, 0, len(freq))
	for word, count := range freq {
		all = append(all, model.WordCount{Word: word, Count: count})
	}
	sort.Slice(all, func(i, j int) bool { return model.Less(all[i], all[j]) })
	if k < len(all) {
		all = all[:k]
	}
	return all
}

func randomLines(rng *rand.Rand) []string {
	const alphabet = "abcAB12 .,:-é"
	lines := make([]string, rng.Intn(20))
	for i := range lines {
		b := make([]byte, rng.Intn(40))
		for j := range b {
			b[j] = alphabet[rng.Intn(len(alphabet))]
		}
		lines[i] = string(b)
	}
	return lines
}

func TestTopKWords_MatchesFullSort(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		lines := randomLines(rng)
		k := rng.Intn(12)
		freq := CountWords(lines)

		got := TopKWords(lines, k)
		want := fullSortTopK(freq, k)
		require.Equal(t, want, got, "lines=%q k=%d", lines, k)
	}
}

func TestTopKWords_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 300; i++ {
		lines := randomLines(rng)
		k := rng.Intn(10)
		distinct := CountWords(lines).Distinct()
		got := TopKWords(lines, k)

		name := fmt.Sprintf("case %d", i)
		assert.Len(t, got, min(k, distinct), name)

		seen := make(map[string]bool)
		for j, wc := range got {
			assert.False(t, seen[wc.Word], "%s: duplicate %q", name, wc.Word)
			seen[wc.Word] = true

			assert.NotEmpty(t, wc.Word, name)
			for _, b := range []byte(wc.Word) {
				assert.True(t, ('a' <= b && b <= 'z') || ('0' <= b && b <= '9'),
					"%s: unexpected byte %q in %q", name, b, wc.Word)
			}

			if j > 0 {
				assert.True(t, model.Less(got[j-1], wc), "%s: %v before %v", name, got[j-1], wc)
			}
		}
	}
}

func TestTopKWords_PrefixStable(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 200; i++ {
		lines := randomLines(rng)
		larger := TopKWords(lines, 12)
		for k := 0; k <= 12; k++ {
			smaller := TopKWords(lines, k)
			require.Equal(t, larger[:len(smaller)], smaller, "lines=%q k=%d", lines, k)
		}
	}
}

func BenchmarkTopKWords(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	lines := make([]string, 10000)
	for i := range lines {
		lines[i] = fmt.Sprintf("request %d served by node%d in %dms", rng.Intn(5000), rng.Intn(32), rng.Intn(200))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		TopKWords(lines, 10)
	}
}
