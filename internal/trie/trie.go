// Package trie implements a case-insensitive prefix index over a corpus of
// strings.
package trie

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var fold = cases.Lower(language.Und)

// node is a trie node. children is an ordered slice rather than a map so that
// PrefixSearch's DFS order is deterministic and first-insert-wins: ordering
// follows the insertion order of children.
type node struct {
	key      byte
	children []*node
	terminal bool
	word     string // original-case word, set only when terminal
}

func (n *node) child(b byte) *node {
	for _, c := range n.children {
		if c.key == b {
			return c
		}
	}
	return nil
}

// Trie is a case-insensitive prefix index. The zero value is not usable; use New.
type Trie struct {
	root *node
}

// New creates an empty trie.
func New() *Trie {
	return &Trie{root: &node{}}
}

// Insert adds a word to the trie in O(len(word)). Comparisons use the
// lowercased form; the original casing is stored at the terminal node.
func (t *Trie) Insert(word string) {
	lower := fold.String(word)
	cur := t.root
	for i := 0; i < len(lower); i++ {
		b := lower[i]
		next := cur.child(b)
		if next == nil {
			next = &node{key: b}
			cur.children = append(cur.children, next)
		}
		cur = next
	}
	if !cur.terminal {
		cur.terminal = true
		cur.word = word
	}
}

// PrefixSearch walks the trie by the lowercased prefix; if the path breaks it
// returns an empty slice. Otherwise it collects terminal words beneath that
// node in DFS order (first-insert-wins), stopping at limit. Returned words
// preserve their original casing.
func (t *Trie) PrefixSearch(prefix string, limit int) []string {
	if limit <= 0 {
		return nil
	}
	lower := fold.String(prefix)
	cur := t.root
	for i := 0; i < len(lower); i++ {
		next := cur.child(lower[i])
		if next == nil {
			return nil
		}
		cur = next
	}

	var out []string
	collect(cur, &out, limit)
	return out
}

func collect(n *node, out *[]string, limit int) {
	if len(*out) >= limit {
		return
	}
	if n.terminal {
		*out = append(*out, n.word)
		if len(*out) >= limit {
			return
		}
	}
	for _, c := range n.children {
		collect(c, out, limit)
		if len(*out) >= limit {
			return
		}
	}
}
