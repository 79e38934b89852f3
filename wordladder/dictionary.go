package wordladder

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Dictionary is a read-only set of valid lowercase words.
type Dictionary struct {
	words map[string]struct{}
}

// NewDictionary builds a dictionary from words. Words are trimmed and
// lowercased; blanks are ignored.
func NewDictionary(words ...string) *Dictionary {
	d := &Dictionary{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		d.add(w)
	}

	return d
}

// LoadDictionary reads one word per line from r.
// Blank lines and lines starting with '#' are skipped.
func LoadDictionary(r io.Reader) (*Dictionary, error) {
	d := NewDictionary()
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		d.add(line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("wordladder: read dictionary: %w", err)
	}

	return d, nil
}

// LoadDictionaryFile opens path and loads it with LoadDictionary.
func LoadDictionaryFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordladder: open dictionary: %w", err)
	}
	defer f.Close()

	return LoadDictionary(f)
}

func (d *Dictionary) add(w string) {
	w = strings.ToLower(strings.TrimSpace(w))
	if w != "" {
		d.words[w] = struct{}{}
	}
}

// Contains reports whether w is a valid word.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.words[w]
	return ok
}

// Len returns the number of words.
func (d *Dictionary) Len() int { return len(d.words) }

// Words returns all words sorted.
func (d *Dictionary) Words() []string {
	out := make([]string, 0, len(d.words))
	for w := range d.words {
		out = append(out, w)
	}
	sort.Strings(out)

	return out
}
