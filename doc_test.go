package autocomplete

import "fmt"

func Example() {
	t := NewTernaryTree()
	t.Insert("monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday")

	fmt.Println(t.Suggest("t"))
	fmt.Println(t.Suggest("s"))
	fmt.Println(t.Contains("sun"))

	// Output:
	// [thursday tuesday]
	// [saturday sunday]
	// false
}

func Example_letterTrie() {
	t := NewLetterTrie()
	t.Insert("cat", "car", "care", "dog")

	fmt.Println(t.Autocomplete("ca", 10))
	fmt.Println(t.Autocomplete("ca", 1))
	fmt.Println(t.Contains("ca"), t.Contains("car"))

	// Output:
	// [car care cat]
	// [car]
	// false true
}

func Example_comparison() {
	indexes := map[string]PrefixIndex{
		"trie": NewLetterTrie(),
		"tst":  NewTernaryTree(),
	}
	for _, name := range []string{"trie", "tst"} {
		idx := indexes[name]
		idx.Insert("go", "gopher", "golang", "gone")
		fmt.Println(name, idx.NodeCount(), idx.Suggest("go"))
	}

	// Output:
	// trie 13 [go golang gone gopher]
	// tst 12 [go golang gone gopher]
}
