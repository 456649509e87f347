// Package dataset loads newline separated word lists and normalises them for
// the prefix indexes.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// maxLineLength bounds a single line of the word list.
const maxLineLength = 1 << 20

// ErrEmptyDataset is returned when a word list holds no usable word.
var ErrEmptyDataset = errors.New("dataset contains no words")

// Loader reads word lists. By default whitespace is removed, diacritics are
// stripped and words are lower-cased.
type Loader struct {
	normalised, caseSensitive bool
}

// Dataset is an ordered list of normalised words. Duplicates are kept.
type Dataset struct {
	words []string
}

// NewLoader creates a loader with normalisation on and case sensitivity off.
func NewLoader() *Loader {
	l := new(Loader)
	l.WithNormalisation()
	l.CaseInsensitive()
	return l
}

// WithNormalisation sets the Loader to strip diacritics, so "Jürgen" is
// loaded as "jurgen".
func (l *Loader) WithNormalisation() *Loader {
	l.normalised = true
	return l
}

// WithoutNormalisation keeps diacritics.
func (l *Loader) WithoutNormalisation() *Loader {
	l.normalised = false
	return l
}

// CaseSensitive keeps the case of loaded words.
func (l *Loader) CaseSensitive() *Loader {
	l.caseSensitive = true
	return l
}

// CaseInsensitive lower-cases loaded words.
func (l *Loader) CaseInsensitive() *Loader {
	l.caseSensitive = false
	return l
}

// Normalise applies the loader settings to a single word. All whitespace is
// removed regardless of the settings.
func (l *Loader) Normalise(word string) string {
	word = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, word)
	if l.normalised {
		transformer := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
		if normal, _, err := transform.String(transformer, word); err == nil {
			word = normal
		}
	}
	if !l.caseSensitive {
		word = strings.ToLower(word)
	}
	return word
}

// Load reads the word list stored at path.
func (l *Loader) Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open dataset: %w", err)
	}
	defer f.Close()
	ds, err := l.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Read reads a word list, one word per line. Lines that are empty after
// normalisation are skipped.
func (l *Loader) Read(r io.Reader) (*Dataset, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	words := []string{}
	for scanner.Scan() {
		if word := l.Normalise(scanner.Text()); word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	if len(words) == 0 {
		return nil, ErrEmptyDataset
	}
	return &Dataset{words: words}, nil
}

// New wraps words that are already normalised.
func New(words []string) *Dataset {
	return &Dataset{words: words}
}

// Words returns all words in load order.
func (d *Dataset) Words() []string {
	return d.words
}

// Len returns the number of words.
func (d *Dataset) Len() int {
	return len(d.words)
}

// Sample returns the first n words, or all of them if n is negative or not
// smaller than Len.
func (d *Dataset) Sample(n int) []string {
	if n < 0 || n >= len(d.words) {
		return d.words
	}
	return d.words[:n]
}
