package autocomplete

import "unsafe"

// TernaryTree is a ternary search tree. Each node holds one byte and three
// links: less and greater lead to nodes holding smaller and larger bytes at
// the same position, equal continues with the next byte of the word.
//
// Unlike LetterTrie it accepts any byte, comparisons are plain byte order.
type TernaryTree struct {
	root  *tstNode
	nodes int
}

type tstNode struct {
	char                 byte
	word                 bool
	less, equal, greater *tstNode
}

// tstFrame is a pending step of the in-order walk in collectTST. A node is
// entered first, which schedules its less subtree, and visited afterwards.
type tstFrame struct {
	node    *tstNode
	depth   int
	visited bool
}

// NewTernaryTree creates a new empty ternary search tree.
func NewTernaryTree() *TernaryTree {
	return new(TernaryTree)
}

// Insert inserts words into the tree. Inserting a word twice is a no-op.
func (t *TernaryTree) Insert(words ...string) {
	for _, word := range words {
		t.insert(word)
	}
}

func (t *TernaryTree) insert(word string) {
	if len(word) == 0 {
		return
	}
	link := &t.root
	for i := 0; ; {
		node := *link
		c := word[i]
		if node == nil {
			node = &tstNode{char: c}
			t.nodes++
			*link = node
		}
		switch {
		case c < node.char:
			link = &node.less
		case c > node.char:
			link = &node.greater
		case i == len(word)-1:
			node.word = true
			return
		default:
			i++
			link = &node.equal
		}
	}
}

// find returns the node matching the last byte of key, or nil.
func (t *TernaryTree) find(key string) *tstNode {
	if len(key) == 0 {
		return nil
	}
	node := t.root
	for i := 0; node != nil; {
		c := key[i]
		switch {
		case c < node.char:
			node = node.less
		case c > node.char:
			node = node.greater
		case i == len(key)-1:
			return node
		default:
			i++
			node = node.equal
		}
	}
	return nil
}

// Contains reports whether word was inserted as a complete word.
func (t *TernaryTree) Contains(word string) bool {
	node := t.find(word)
	return node != nil && node.word
}

// Autocomplete returns up to limit words that have prefix as a prefix, in
// ascending byte order.
func (t *TernaryTree) Autocomplete(prefix string, limit int) []string {
	results := []string{}
	if t.root == nil || len(prefix) == 0 || limit <= 0 {
		return results
	}
	node := t.find(prefix)
	if node == nil {
		return results
	}
	if node.word {
		results = append(results, prefix)
		if len(results) >= limit {
			return results
		}
	}
	return collectTST(node.equal, prefix, limit, results)
}

// Suggest is Autocomplete with DefaultLimit.
func (t *TernaryTree) Suggest(prefix string) []string {
	return t.Autocomplete(prefix, DefaultLimit)
}

// collectTST walks the tree under start in order (less, node, equal, greater)
// and appends prefix plus the spelled suffix of every word found until limit
// is reached.
func collectTST(start *tstNode, prefix string, limit int, results []string) []string {
	if start == nil {
		return results
	}
	buf := []byte(prefix)
	stack := []tstFrame{{node: start, depth: len(prefix)}}
	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node := frame.node
		if !frame.visited {
			frame.visited = true
			stack = append(stack, frame)
			if node.less != nil {
				stack = append(stack, tstFrame{node: node.less, depth: frame.depth})
			}
			continue
		}
		buf = append(buf[:frame.depth], node.char)
		if node.word {
			results = append(results, string(buf))
			if len(results) >= limit {
				return results
			}
		}
		// equal is pushed last so its subtree is done before greater
		if node.greater != nil {
			stack = append(stack, tstFrame{node: node.greater, depth: frame.depth})
		}
		if node.equal != nil {
			stack = append(stack, tstFrame{node: node.equal, depth: frame.depth + 1})
		}
	}
	return results
}

// NodeCount returns the number of allocated nodes.
func (t *TernaryTree) NodeCount() int {
	return t.nodes
}

// WordCount counts the complete words stored in the tree.
func (t *TernaryTree) WordCount() int {
	if t.root == nil {
		return 0
	}
	count := 0
	stack := []*tstNode{t.root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node.word {
			count++
		}
		for _, child := range [...]*tstNode{node.less, node.equal, node.greater} {
			if child != nil {
				stack = append(stack, child)
			}
		}
	}
	return count
}

// IsEmpty reports whether the tree holds no nodes.
func (t *TernaryTree) IsEmpty() bool {
	return t.root == nil
}

// MemoryEstimate returns NodeCount times the size of a node.
func (t *TernaryTree) MemoryEstimate() uint64 {
	return uint64(t.nodes) * uint64(unsafe.Sizeof(tstNode{}))
}

// Reset drops the whole node tree.
func (t *TernaryTree) Reset() {
	t.root = nil
	t.nodes = 0
}
