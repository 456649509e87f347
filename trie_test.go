package autocomplete

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestLetterTrie(t *testing.T) {
	t.Run("root is allocated on first insert", func(t *testing.T) {
		tr := NewLetterTrie()
		tr.Insert("a")
		assert.Equal(t, 2, tr.NodeCount())
		tr.Insert("ab")
		assert.Equal(t, 3, tr.NodeCount())
	})

	t.Run("node count bounded by total length", func(t *testing.T) {
		tr := NewLetterTrie()
		words := []string{"interval", "internal", "internet", "into", "in", "zoo"}
		total := 0
		for _, w := range words {
			tr.Insert(w)
			total += len(w)
			assert.LessOrEqual(t, tr.NodeCount(), total+1)
		}
		// root, "inter", "val", "nal", "et", "o", "zoo"
		assert.Equal(t, 1+5+3+3+2+1+3, tr.NodeCount())
	})

	t.Run("non letter stops the walk", func(t *testing.T) {
		tr := NewLetterTrie()
		tr.Insert("ab1cd")
		assert.Equal(t, 3, tr.NodeCount())
		assert.False(t, tr.Contains("ab1cd"))
		assert.False(t, tr.Contains("ab"))
		assert.False(t, tr.Contains("abcd"))
		assert.Equal(t, 0, tr.WordCount())
		assert.Empty(t, tr.Suggest("a"))
		assert.False(t, tr.IsEmpty())

		tr.Insert("ab")
		assert.Equal(t, 3, tr.NodeCount())
		assert.Equal(t, []string{"ab"}, tr.Suggest("a"))
	})

	t.Run("leading non letter allocates only the root", func(t *testing.T) {
		tr := NewLetterTrie()
		tr.Insert("Hello")
		assert.Equal(t, 1, tr.NodeCount())
		assert.False(t, tr.Contains("Hello"))
		assert.False(t, tr.Contains("hello"))
	})

	t.Run("queries with non letters find nothing", func(t *testing.T) {
		tr := NewLetterTrie()
		tr.Insert("go", "gopher")
		assert.False(t, tr.Contains("Go"))
		assert.False(t, tr.Contains("go "))
		assert.Empty(t, tr.Autocomplete("g-", 10))
		assert.Empty(t, tr.Autocomplete("GO", 10))
	})

	t.Run("prefix word is emitted once and first", func(t *testing.T) {
		tr := NewLetterTrie()
		tr.Insert("carts", "cart", "car")
		assert.Equal(t, []string{"car", "cart", "carts"}, tr.Autocomplete("car", 10))
		assert.Equal(t, []string{"cart"}, tr.Autocomplete("cart", 1))
	})

	t.Run("memory estimate scales with nodes", func(t *testing.T) {
		tr := NewLetterTrie()
		tr.Insert("abc", "abd")
		assert.Equal(t, uint64(5)*uint64(unsafe.Sizeof(trieNode{})), tr.MemoryEstimate())
	})
}
