package autocomplete

import "unsafe"

const alphabetSize = 26

// LetterTrie is a data structure for storing common prefixes of lowercase
// ASCII words. Every node has one child slot per letter 'a' to 'z', so
// lookups are a single array index per character.
//
// A byte outside 'a' to 'z' ends an insertion silently: the nodes created up
// to that point stay in the trie but no word is marked. Contains and
// Autocomplete treat such bytes as a dead path.
type LetterTrie struct {
	root  *trieNode
	nodes int
}

// trieNode is a node in a LetterTrie. word is set when an inserted word ends here.
type trieNode struct {
	children [alphabetSize]*trieNode
	word     bool
}

// trieFrame is a pending node of the depth first walk in collectTrie.
// depth is the length of the word spelled at node, letter its last byte.
type trieFrame struct {
	node   *trieNode
	depth  int
	letter byte
}

// NewLetterTrie creates a new empty trie.
func NewLetterTrie() *LetterTrie {
	return new(LetterTrie)
}

func letterIndex(c byte) (int, bool) {
	if c < 'a' || c > 'z' {
		return 0, false
	}
	return int(c - 'a'), true
}

// Insert inserts words into the trie. Inserting a word twice is a no-op.
func (t *LetterTrie) Insert(words ...string) {
	for _, word := range words {
		t.insert(word)
	}
}

func (t *LetterTrie) insert(word string) {
	if len(word) == 0 {
		return
	}
	if t.root == nil {
		t.root = t.newNode()
	}
	current := t.root
	for i := 0; i < len(word); i++ {
		index, ok := letterIndex(word[i])
		if !ok {
			return
		}
		child := current.children[index]
		if child == nil {
			child = t.newNode()
			current.children[index] = child
		}
		current = child
	}
	current.word = true
}

func (t *LetterTrie) newNode() *trieNode {
	t.nodes++
	return new(trieNode)
}

// Contains reports whether word was inserted as a complete word.
func (t *LetterTrie) Contains(word string) bool {
	if len(word) == 0 {
		return false
	}
	node := t.find(word)
	return node != nil && node.word
}

// find follows prefix from the root and returns the node it ends on, or nil
// if the path does not exist.
func (t *LetterTrie) find(prefix string) *trieNode {
	current := t.root
	for i := 0; i < len(prefix) && current != nil; i++ {
		index, ok := letterIndex(prefix[i])
		if !ok {
			return nil
		}
		current = current.children[index]
	}
	return current
}

// Autocomplete returns up to limit words that have prefix as a prefix. The
// prefix itself comes first if it is a word, the rest follow in alphabetical
// order.
func (t *LetterTrie) Autocomplete(prefix string, limit int) []string {
	results := []string{}
	if t.root == nil || len(prefix) == 0 || limit <= 0 {
		return results
	}
	node := t.find(prefix)
	if node == nil {
		return results
	}
	return collectTrie(node, prefix, limit, results)
}

// Suggest is Autocomplete with DefaultLimit.
func (t *LetterTrie) Suggest(prefix string) []string {
	return t.Autocomplete(prefix, DefaultLimit)
}

// collectTrie walks the subtree under start in pre-order, children a to z,
// and appends every word found until limit is reached.
func collectTrie(start *trieNode, prefix string, limit int, results []string) []string {
	buf := []byte(prefix)
	stack := []trieFrame{{node: start, depth: len(prefix)}}
	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if frame.letter != 0 {
			buf = append(buf[:frame.depth-1], frame.letter)
		}
		if frame.node.word {
			results = append(results, string(buf))
			if len(results) >= limit {
				return results
			}
		}
		// pushed z to a so that a is popped first
		for i := alphabetSize - 1; i >= 0; i-- {
			if child := frame.node.children[i]; child != nil {
				stack = append(stack, trieFrame{node: child, depth: frame.depth + 1, letter: byte('a' + i)})
			}
		}
	}
	return results
}

// NodeCount returns the number of allocated nodes, root included.
func (t *LetterTrie) NodeCount() int {
	return t.nodes
}

// WordCount counts the complete words stored in the trie.
func (t *LetterTrie) WordCount() int {
	if t.root == nil {
		return 0
	}
	count := 0
	stack := []*trieNode{t.root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node.word {
			count++
		}
		for _, child := range node.children {
			if child != nil {
				stack = append(stack, child)
			}
		}
	}
	return count
}

// IsEmpty reports whether the trie holds no nodes.
func (t *LetterTrie) IsEmpty() bool {
	return t.root == nil
}

// MemoryEstimate returns NodeCount times the size of a node.
func (t *LetterTrie) MemoryEstimate() uint64 {
	return uint64(t.nodes) * uint64(unsafe.Sizeof(trieNode{}))
}

// Reset drops the whole node tree.
func (t *LetterTrie) Reset() {
	t.root = nil
	t.nodes = 0
}
