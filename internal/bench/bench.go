// Package bench measures the cost of prefix indexes and renders side by side
// comparisons.
package bench

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/pbnjay/memory"

	autocomplete "github.com/sarthakjha889/go-autocomplete-tst"
)

// Metrics holds the measurements of one index over one word list.
type Metrics struct {
	Words  int
	Insert time.Duration // total over all words
	Search time.Duration // total over all words
	Memory uint64        // MemoryEstimate after inserting
	Nodes  int

	// HeapDelta is the growth of the live heap while inserting. It includes
	// allocator overhead the estimate ignores and can be negative when a
	// collection ran in between.
	HeapDelta int64
}

// AvgInsert returns the mean insertion time per word in microseconds.
func (m Metrics) AvgInsert() float64 {
	return perWord(m.Insert, m.Words)
}

// AvgSearch returns the mean search time per word in microseconds.
func (m Metrics) AvgSearch() float64 {
	return perWord(m.Search, m.Words)
}

func perWord(d time.Duration, words int) float64 {
	if words == 0 {
		return 0
	}
	return float64(d.Nanoseconds()) / 1e3 / float64(words)
}

// Comparison is the result of measuring a LetterTrie and a TernaryTree on the
// same words.
type Comparison struct {
	Trie, TST Metrics
	// SystemMemory is the total memory of the machine in bytes, 0 if unknown.
	SystemMemory uint64
}

// Timed runs fn and returns how long it took.
func Timed(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}

// Measure inserts every word into idx, then searches every word, and
// reports the timings and the resulting size of idx.
func Measure(idx autocomplete.PrefixIndex, words []string) Metrics {
	m := Metrics{Words: len(words)}

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	m.Insert = Timed(func() {
		for _, word := range words {
			idx.Insert(word)
		}
	})
	runtime.ReadMemStats(&after)
	m.HeapDelta = int64(after.HeapAlloc) - int64(before.HeapAlloc)

	m.Search = Timed(func() {
		for _, word := range words {
			idx.Contains(word)
		}
	})
	m.Memory = idx.MemoryEstimate()
	m.Nodes = idx.NodeCount()
	return m
}

// Compare measures trie and tst on words. Both indexes should be empty.
func Compare(words []string, trie, tst autocomplete.PrefixIndex) Comparison {
	return Comparison{
		Trie:         Measure(trie, words),
		TST:          Measure(tst, words),
		SystemMemory: memory.TotalMemory(),
	}
}

// KB converts bytes to kibibytes.
func KB(bytes uint64) float64 {
	return float64(bytes) / 1024
}

// winner names the side with the smaller value.
func winner(trie, tst float64) string {
	switch {
	case trie < tst:
		return "Trie"
	case tst < trie:
		return "TST"
	default:
		return "Tie"
	}
}

// ratio returns how many times larger the bigger value is than the smaller
// one, formatted for the summary.
func ratio(a, b float64) string {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	switch {
	case hi == 0:
		return "1.00x"
	case lo == 0:
		return "n/a"
	}
	return fmt.Sprintf("%.2fx", hi/lo)
}

// Render writes the comparison table and a summary to w.
func (c Comparison) Render(w io.Writer) {
	rule := strings.Repeat("=", 80)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "PERFORMANCE COMPARISON RESULTS")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Number of words tested: %d\n", c.Trie.Words)
	if c.SystemMemory > 0 {
		fmt.Fprintf(w, "System memory: %.2f GiB\n", float64(c.SystemMemory)/(1<<30))
	}
	fmt.Fprintln(w)

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Metric", "Trie", "TST", "Winner"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.Append([]string{
		"Avg Insertion Time (μs)",
		fmt.Sprintf("%.4f", c.Trie.AvgInsert()),
		fmt.Sprintf("%.4f", c.TST.AvgInsert()),
		winner(c.Trie.AvgInsert(), c.TST.AvgInsert()),
	})
	table.Append([]string{
		"Avg Search Time (μs)",
		fmt.Sprintf("%.4f", c.Trie.AvgSearch()),
		fmt.Sprintf("%.4f", c.TST.AvgSearch()),
		winner(c.Trie.AvgSearch(), c.TST.AvgSearch()),
	})
	table.Append([]string{
		"Memory Usage (KB)",
		fmt.Sprintf("%.2f", KB(c.Trie.Memory)),
		fmt.Sprintf("%.2f", KB(c.TST.Memory)),
		winner(float64(c.Trie.Memory), float64(c.TST.Memory)),
	})
	table.Append([]string{
		"Node Count",
		fmt.Sprintf("%d", c.Trie.Nodes),
		fmt.Sprintf("%d", c.TST.Nodes),
		winner(float64(c.Trie.Nodes), float64(c.TST.Nodes)),
	})
	table.Append([]string{
		"Heap Growth (KB)",
		fmt.Sprintf("%.2f", float64(c.Trie.HeapDelta)/1024),
		fmt.Sprintf("%.2f", float64(c.TST.HeapDelta)/1024),
		winner(float64(c.Trie.HeapDelta), float64(c.TST.HeapDelta)),
	})
	table.Render()

	fmt.Fprintln(w)
	fmt.Fprintln(w, "SUMMARY:")
	fmt.Fprintf(w, "- Insertion: %s is %s faster\n",
		winner(c.Trie.AvgInsert(), c.TST.AvgInsert()), ratio(c.Trie.AvgInsert(), c.TST.AvgInsert()))
	fmt.Fprintf(w, "- Search: %s is %s faster\n",
		winner(c.Trie.AvgSearch(), c.TST.AvgSearch()), ratio(c.Trie.AvgSearch(), c.TST.AvgSearch()))
	fmt.Fprintf(w, "- Memory: %s uses %s less memory\n",
		winner(float64(c.Trie.Memory), float64(c.TST.Memory)), ratio(float64(c.Trie.Memory), float64(c.TST.Memory)))
	fmt.Fprintln(w, rule)
}
