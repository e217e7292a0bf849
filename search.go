package prefixindex

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// EnumFn is called for every node visited during enumeration with the word
// spelled by the path to it and whether that word is stored. The word slice
// is reused between calls; copy it to keep it.
type EnumFn = func(word []byte, final bool) EnumerationResult

// EnumerationResult is returned by the enumeration function to indicate whether
// enumeration should continue below this depth or to stop altogether
type EnumerationResult = int

const (
	// Continue enumerating all words with this prefix
	Continue EnumerationResult = iota

	// Skip will skip all words with this prefix
	Skip

	// Stop will immediately stop enumerating words
	Stop
)

type frame struct {
	node  *node
	depth int    // length of the parent's word
	ch    string // label of the edge into node
}

// labels returns the characters of the node's outgoing edges in ascending order.
func (n *node) labels() []string {
	labels := maps.Keys(n.children)
	slices.Sort(labels)
	return labels
}

// Enumerate calls fn for the node reached by prefix and every node below
// it, parents before children and siblings in ascending order. Nothing is
// visited when prefix is not in the index.
func (idx *Index) Enumerate(prefix string, fn EnumFn) {
	start := idx.walk(prefix)
	if start == nil {
		return
	}

	// Children are pushed in reverse so the smallest label is popped first.
	// Everything popped between a parent and its child lies below the
	// parent, so buf[:depth] still spells the parent's word.
	var buf []byte
	stack := []frame{{node: start, depth: 0, ch: prefix}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		buf = append(buf[:top.depth], top.ch...)

		switch fn(buf, top.node.final) {
		case Stop:
			return
		case Skip:
			continue
		}

		labels := top.node.labels()
		for i := len(labels) - 1; i >= 0; i-- {
			stack = append(stack, frame{
				node:  top.node.children[labels[i]],
				depth: len(buf),
				ch:    labels[i],
			})
		}
	}
}

// Search returns every stored word that starts with prefix, in
// lexicographic order. It returns nil when there is none.
func (idx *Index) Search(prefix string) []string {
	var results []string
	idx.Enumerate(prefix, func(word []byte, final bool) EnumerationResult {
		if final {
			results = append(results, string(word))
		}
		return Continue
	})
	return results
}

// Display returns all stored words. It is the same as Search("").
func (idx *Index) Display() []string {
	return idx.Search("")
}

// NextLetters returns the characters that extend prefix by one position
// towards some stored word, in ascending order. Whether prefix is itself a
// word makes no difference.
func (idx *Index) NextLetters(prefix string) []string {
	n := idx.walk(prefix)
	if n == nil || len(n.children) == 0 {
		return nil
	}
	return n.labels()
}

// FindAllPrefixesOf returns all stored words that are a prefix of the input
// string, shortest first.
func (idx *Index) FindAllPrefixesOf(input string) []string {
	var results []string
	current := idx.root
	pos := 0

	for {
		if current.final {
			results = append(results, input[:pos])
		}
		if pos == len(input) {
			return results
		}

		ch, _ := nextChar(input[pos:])
		child, ok := current.children[ch]
		if !ok {
			return results
		}

		current = child
		pos += len(ch)
	}
}
