package wordladder

import (
	"strings"

	uf "github.com/spakin/disjoint"
)

// Reachable reports whether goal can be reached from start through one-letter
// substitutions over dictionary words. It groups every same-length word into
// connected components with a union-find, so a hopeless ladder can be
// rejected before any search runs.
func (d *Dictionary) Reachable(start, goal string) bool {
	start = strings.ToLower(strings.TrimSpace(start))
	goal = strings.ToLower(strings.TrimSpace(goal))
	if start == goal {
		return true
	}
	if len(start) != len(goal) || !d.Contains(goal) {
		return false
	}

	elems := make(map[string]*uf.Element)
	elems[start] = uf.NewElement()
	for w := range d.words {
		if len(w) == len(start) {
			if _, ok := elems[w]; !ok {
				elems[w] = uf.NewElement()
			}
		}
	}

	// Words sharing a wildcard pattern (one position blanked) are neighbors.
	buckets := make(map[string]*uf.Element)
	for w, el := range elems {
		buf := []byte(w)
		for i := range buf {
			orig := buf[i]
			buf[i] = '*'
			key := string(buf)
			buf[i] = orig
			if rep, ok := buckets[key]; ok {
				uf.Union(rep, el)
			} else {
				buckets[key] = el
			}
		}
	}

	return elems[start].Find() == elems[goal].Find()
}
