package autocomplete

import "sync"

//go:generate mockgen -source index.go -destination index_mocks.go -package autocomplete

// DefaultLimit is the number of suggestions returned by Suggest.
const DefaultLimit = 10

// PrefixIndex is the contract shared by LetterTrie and TernaryTree.
type PrefixIndex interface {
	// Insert adds words to the index. Empty words are ignored.
	Insert(words ...string)
	// Contains reports whether word was inserted as a complete word.
	Contains(word string) bool
	// Autocomplete returns up to limit stored words starting with prefix,
	// in ascending lexicographic order.
	Autocomplete(prefix string, limit int) []string
	// Suggest is Autocomplete with DefaultLimit.
	Suggest(prefix string) []string
	NodeCount() int
	WordCount() int
	IsEmpty() bool
	// MemoryEstimate approximates the bytes held by the nodes. It is meant
	// for comparative reporting only.
	MemoryEstimate() uint64
	// Reset releases every node and leaves the index empty.
	Reset()
}

var (
	_ PrefixIndex = (*LetterTrie)(nil)
	_ PrefixIndex = (*TernaryTree)(nil)
	_ PrefixIndex = (*lockedIndex)(nil)
)

// lockedIndex guards a PrefixIndex with a read/write mutex.
type lockedIndex struct {
	mu    sync.RWMutex
	index PrefixIndex
}

// Locked wraps index so it can be shared between goroutines. Insert and Reset
// take the write lock, every other method the read lock.
func Locked(index PrefixIndex) PrefixIndex {
	return &lockedIndex{index: index}
}

func (l *lockedIndex) Insert(words ...string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.index.Insert(words...)
}

func (l *lockedIndex) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.index.Reset()
}

func (l *lockedIndex) Contains(word string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.index.Contains(word)
}

func (l *lockedIndex) Autocomplete(prefix string, limit int) []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.index.Autocomplete(prefix, limit)
}

func (l *lockedIndex) Suggest(prefix string) []string {
	return l.Autocomplete(prefix, DefaultLimit)
}

func (l *lockedIndex) NodeCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.index.NodeCount()
}

func (l *lockedIndex) WordCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.index.WordCount()
}

func (l *lockedIndex) IsEmpty() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.index.IsEmpty()
}

func (l *lockedIndex) MemoryEstimate() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.index.MemoryEstimate()
}
