package prefixindex

import (
	"unicode/utf8"
)

type node struct {
	children map[string]*node
	final    bool // does the path from the root end a word?
}

func newNode() *node {
	return &node{children: make(map[string]*node)}
}

// Index is a prefix tree of words. It keeps a set of the complete words
// next to the tree so that duplicate checks do not need a walk.
type Index struct {
	root  *node
	words map[string]struct{}
}

// New creates an empty Index.
func New() *Index {
	return &Index{
		root:  newNode(),
		words: make(map[string]struct{}),
	}
}

// NewFrom creates an Index holding the given words.
func NewFrom(words ...string) *Index {
	idx := New()
	idx.AddAll(words)
	return idx
}

// nextChar splits the first character off s. An invalid UTF-8 byte is
// returned as a character of its own.
func nextChar(s string) (ch string, rest string) {
	_, size := utf8.DecodeRuneInString(s)
	return s[:size], s[size:]
}

// Insert adds a word to the index. The empty string is a valid word and
// marks the root. Inserting a word that is already present changes nothing.
func (idx *Index) Insert(word string) {
	current := idx.root
	for rest := word; len(rest) > 0; {
		var ch string
		ch, rest = nextChar(rest)

		child, ok := current.children[ch]
		if !ok {
			child = newNode()
			current.children[ch] = child
		}
		current = child
	}

	current.final = true
	idx.words[word] = struct{}{}
}

// Update inserts the word only if it is not already stored.
func (idx *Index) Update(word string) {
	if !idx.Contains(word) {
		idx.Insert(word)
	}
}

// AddAll updates the index with each of the words.
func (idx *Index) AddAll(words []string) {
	for _, word := range words {
		idx.Update(word)
	}
}

// Contains reports whether word was stored.
func (idx *Index) Contains(word string) bool {
	_, ok := idx.words[word]
	return ok
}

// Len returns the number of distinct words stored.
func (idx *Index) Len() int {
	return len(idx.words)
}

// Clear returns the index to its initial empty state.
func (idx *Index) Clear() {
	idx.root = newNode()
	idx.words = make(map[string]struct{})
}

// walk follows prefix from the root and returns the node it ends on, or nil
// when some character of the prefix has no edge.
func (idx *Index) walk(prefix string) *node {
	current := idx.root
	for rest := prefix; len(rest) > 0; {
		var ch string
		ch, rest = nextChar(rest)

		child, ok := current.children[ch]
		if !ok {
			return nil
		}
		current = child
	}
	return current
}

// HasPrefix reports whether some stored word starts with prefix.
func (idx *Index) HasPrefix(prefix string) bool {
	n := idx.walk(prefix)
	if n == nil {
		return false
	}
	// a bare root with no words is not a prefix of anything
	return n.final || len(n.children) > 0
}
