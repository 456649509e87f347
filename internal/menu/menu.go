// Package menu implements the interactive console for exercising and
// comparing the two prefix indexes.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	autocomplete "github.com/sarthakjha889/go-autocomplete-tst"
	"github.com/sarthakjha889/go-autocomplete-tst/internal/bench"
	"github.com/sarthakjha889/go-autocomplete-tst/internal/dataset"
)

// target is one of the two indexes the menu drives.
type target struct {
	name   string
	index  autocomplete.PrefixIndex
	loaded bool
}

// Menu reads choices from an input stream and writes results to an output
// stream. It is not safe for concurrent use.
type Menu struct {
	trie, tst *target
	data      *dataset.Dataset
	loader    *dataset.Loader
	in        *bufio.Scanner
	out       io.Writer
	limit     int

	newTrie, newTST func() autocomplete.PrefixIndex
}

// New creates a menu driving trie and tst over data. Typed words are
// normalised with loader before they reach the indexes.
func New(trie, tst autocomplete.PrefixIndex, data *dataset.Dataset, loader *dataset.Loader, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		trie:    &target{name: "Trie", index: trie},
		tst:     &target{name: "TST", index: tst},
		data:    data,
		loader:  loader,
		in:      bufio.NewScanner(in),
		out:     out,
		limit:   autocomplete.DefaultLimit,
		newTrie: func() autocomplete.PrefixIndex { return autocomplete.NewLetterTrie() },
		newTST:  func() autocomplete.PrefixIndex { return autocomplete.NewTernaryTree() },
	}
}

// WithLimit sets the number of suggestions shown by the autocomplete options.
func (m *Menu) WithLimit(limit int) *Menu {
	m.limit = limit
	return m
}

// WithFactories sets the constructors used to build fresh indexes for the
// performance comparisons.
func (m *Menu) WithFactories(newTrie, newTST func() autocomplete.PrefixIndex) *Menu {
	m.newTrie = newTrie
	m.newTST = newTST
	return m
}

func (m *Menu) display() {
	rule := strings.Repeat("=", 60)
	fmt.Fprintf(m.out, "\n%s\n", rule)
	fmt.Fprintln(m.out, "AUTO-COMPLETE: TRIE vs TST COMPARISON SYSTEM")
	fmt.Fprintln(m.out, rule)
	fmt.Fprintln(m.out, "1.  Load dataset into Trie")
	fmt.Fprintln(m.out, "2.  Load dataset into TST")
	fmt.Fprintln(m.out, "3.  Insert word into Trie")
	fmt.Fprintln(m.out, "4.  Insert word into TST")
	fmt.Fprintln(m.out, "5.  Search word in Trie")
	fmt.Fprintln(m.out, "6.  Search word in TST")
	fmt.Fprintln(m.out, "7.  Auto-complete using Trie")
	fmt.Fprintln(m.out, "8.  Auto-complete using TST")
	fmt.Fprintln(m.out, "9.  Compare performance (load sample)")
	fmt.Fprintln(m.out, "10. Compare performance (full dataset)")
	fmt.Fprintln(m.out, "11. Display memory usage")
	fmt.Fprintln(m.out, "0.  Exit")
	fmt.Fprintln(m.out, rule)
	fmt.Fprint(m.out, "Enter choice: ")
}

// readLine returns the next input line. ok is false once the input is exhausted.
func (m *Menu) readLine() (line string, ok bool) {
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) prompt(question string) (string, bool) {
	fmt.Fprint(m.out, question)
	return m.readLine()
}

// Run loops until the exit option is chosen or the input ends.
func (m *Menu) Run() error {
	for {
		m.display()
		line, ok := m.readLine()
		if !ok {
			fmt.Fprintln(m.out)
			return m.in.Err()
		}
		choice, err := strconv.Atoi(line)
		if err != nil {
			choice = -1
		}
		switch choice {
		case 1:
			m.load(m.trie)
		case 2:
			m.load(m.tst)
		case 3:
			m.insert(m.trie)
		case 4:
			m.insert(m.tst)
		case 5:
			m.search(m.trie)
		case 6:
			m.search(m.tst)
		case 7:
			m.autocomplete(m.trie)
		case 8:
			m.autocomplete(m.tst)
		case 9:
			m.compareSample()
		case 10:
			m.compareFull()
		case 11:
			m.displayMemoryUsage()
		case 0:
			fmt.Fprintln(m.out, "Exiting program. Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
		}
	}
}

func (m *Menu) load(t *target) {
	words := m.data.Words()
	d := bench.Timed(func() {
		for _, word := range words {
			t.index.Insert(word)
		}
	})
	t.loaded = true
	fmt.Fprintf(m.out, "Loaded %d words into %s in %d ms\n", len(words), t.name, d.Milliseconds())
}

func (m *Menu) insert(t *target) {
	raw, ok := m.prompt("Enter word to insert: ")
	if !ok {
		return
	}
	word := m.loader.Normalise(raw)
	if word == "" {
		fmt.Fprintln(m.out, "Nothing to insert.")
		return
	}
	d := bench.Timed(func() { t.index.Insert(word) })
	fmt.Fprintf(m.out, "Inserted '%s' into %s in %d μs\n", word, t.name, d.Microseconds())
}

func (m *Menu) search(t *target) {
	raw, ok := m.prompt("Enter word to search: ")
	if !ok {
		return
	}
	word := m.loader.Normalise(raw)
	var found bool
	d := bench.Timed(func() { found = t.index.Contains(word) })
	status := "NOT FOUND"
	if found {
		status = "FOUND"
	}
	fmt.Fprintf(m.out, "Word '%s' %s in %s (%d μs)\n", word, status, t.name, d.Microseconds())
}

func (m *Menu) autocomplete(t *target) {
	raw, ok := m.prompt("Enter prefix for auto-complete: ")
	if !ok {
		return
	}
	prefix := m.loader.Normalise(raw)
	var suggestions []string
	d := bench.Timed(func() { suggestions = t.index.Autocomplete(prefix, m.limit) })
	fmt.Fprintf(m.out, "Auto-complete suggestions for '%s' from %s:\n", prefix, t.name)
	for _, s := range suggestions {
		fmt.Fprintf(m.out, "  %s\n", s)
	}
	fmt.Fprintf(m.out, "Total: %d suggestions (%d μs)\n", len(suggestions), d.Microseconds())
}

func (m *Menu) compareSample() {
	raw, ok := m.prompt("Enter sample size (e.g., 1000, 10000): ")
	if !ok {
		return
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		fmt.Fprintf(m.out, "Invalid sample size '%s'.\n", raw)
		return
	}
	m.compare(m.data.Sample(n))
}

func (m *Menu) compareFull() {
	fmt.Fprintln(m.out, "Warning: This will test the full dataset and may take time.")
	answer, ok := m.prompt("Proceed? (y/n): ")
	if !ok || !strings.EqualFold(answer, "y") {
		fmt.Fprintln(m.out, "Comparison cancelled.")
		return
	}
	m.compare(m.data.Words())
}

func (m *Menu) compare(words []string) {
	fmt.Fprintf(m.out, "\nTesting with %d words...\n", len(words))
	c := bench.Compare(words, m.newTrie(), m.newTST())
	fmt.Fprintln(m.out)
	c.Render(m.out)
}

func (m *Menu) displayMemoryUsage() {
	rule := strings.Repeat("=", 50)
	fmt.Fprintf(m.out, "\n%s\n", rule)
	fmt.Fprintln(m.out, "MEMORY USAGE")
	fmt.Fprintln(m.out, rule)
	for _, t := range []*target{m.trie, m.tst} {
		label := fmt.Sprintf("%s:", t.name)
		if !t.loaded && t.index.IsEmpty() {
			fmt.Fprintf(m.out, "%-5s Not loaded\n", label)
			continue
		}
		fmt.Fprintf(m.out, "%-5s %.2f KB (%d nodes, %d words)\n",
			label, bench.KB(t.index.MemoryEstimate()), t.index.NodeCount(), t.index.WordCount())
	}
	fmt.Fprintln(m.out, rule)
}
