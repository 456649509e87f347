/*
Package autocomplete provides two data structures for prefix autocompletion of
words: LetterTrie, a 26-way trie over the letters 'a' to 'z', and
TernaryTree, a ternary search tree over arbitrary bytes. Both implement
PrefixIndex so they can be fed identical input and compared side by side.

Neither structure normalises its input. Words are expected to be lower-cased
and trimmed by the caller, see internal/dataset for the loader that does so.
*/
package autocomplete
