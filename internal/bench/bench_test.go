package bench

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	autocomplete "github.com/sarthakjha889/go-autocomplete-tst"
)

func TestMeasure_InsertsThenSearchesEveryWord(t *testing.T) {
	ctrl := gomock.NewController(t)
	idx := autocomplete.NewMockPrefixIndex(ctrl)
	words := []string{"alpha", "beta", "gamma"}

	gomock.InOrder(
		idx.EXPECT().Insert("alpha"),
		idx.EXPECT().Insert("beta"),
		idx.EXPECT().Insert("gamma"),
		idx.EXPECT().Contains("alpha").Return(true),
		idx.EXPECT().Contains("beta").Return(true),
		idx.EXPECT().Contains("gamma").Return(false),
	)
	idx.EXPECT().MemoryEstimate().Return(uint64(4096))
	idx.EXPECT().NodeCount().Return(16)

	m := Measure(idx, words)
	assert.Equal(t, 3, m.Words)
	assert.Equal(t, uint64(4096), m.Memory)
	assert.Equal(t, 16, m.Nodes)
	assert.GreaterOrEqual(t, m.AvgInsert(), 0.0)
	assert.GreaterOrEqual(t, m.AvgSearch(), 0.0)
}

func TestMeasure_RealIndexes(t *testing.T) {
	words := []string{"cat", "car", "care", "dog", "cat"}
	trie := autocomplete.NewLetterTrie()
	tst := autocomplete.NewTernaryTree()

	c := Compare(words, trie, tst)
	assert.Equal(t, 5, c.Trie.Words)
	assert.Equal(t, trie.NodeCount(), c.Trie.Nodes)
	assert.Equal(t, tst.NodeCount(), c.TST.Nodes)
	assert.Equal(t, 8, c.TST.Nodes)
	assert.Equal(t, tst.MemoryEstimate(), c.TST.Memory)
	assert.True(t, trie.Contains("care"))
	assert.True(t, tst.Contains("care"))
}

func TestMetrics_Averages(t *testing.T) {
	m := Metrics{Words: 4, Insert: 8 * time.Microsecond, Search: 2 * time.Microsecond}
	assert.InDelta(t, 2.0, m.AvgInsert(), 1e-9)
	assert.InDelta(t, 0.5, m.AvgSearch(), 1e-9)
	assert.Equal(t, 0.0, Metrics{}.AvgInsert())
}

func TestWinnerAndRatio(t *testing.T) {
	assert.Equal(t, "Trie", winner(1, 2))
	assert.Equal(t, "TST", winner(3, 2))
	assert.Equal(t, "Tie", winner(2, 2))

	assert.Equal(t, "2.00x", ratio(1, 2))
	assert.Equal(t, "2.00x", ratio(4, 2))
	assert.Equal(t, "1.00x", ratio(0, 0))
	assert.Equal(t, "n/a", ratio(0, 3))
}

func TestComparison_Render(t *testing.T) {
	c := Comparison{
		Trie:         Metrics{Words: 10, Insert: 20 * time.Microsecond, Search: 10 * time.Microsecond, Memory: 8192, Nodes: 40},
		TST:          Metrics{Words: 10, Insert: 40 * time.Microsecond, Search: 5 * time.Microsecond, Memory: 2048, Nodes: 35},
		SystemMemory: 8 << 30,
	}
	var out bytes.Buffer
	c.Render(&out)
	s := out.String()

	require.NotEmpty(t, s)
	assert.Contains(t, s, "PERFORMANCE COMPARISON RESULTS")
	assert.Contains(t, s, "Number of words tested: 10")
	assert.Contains(t, s, "System memory: 8.00 GiB")
	assert.Contains(t, s, "Avg Insertion Time (μs)")
	assert.Contains(t, s, "2.0000")
	assert.Contains(t, s, "- Insertion: Trie is 2.00x faster")
	assert.Contains(t, s, "- Search: TST is 2.00x faster")
	assert.Contains(t, s, "- Memory: TST uses 4.00x less memory")
	assert.True(t, strings.Contains(s, "Winner"))
}

func TestTimed(t *testing.T) {
	d := Timed(func() { time.Sleep(2 * time.Millisecond) })
	assert.GreaterOrEqual(t, d, 2*time.Millisecond)
}
