/*
Package prefixindex is an in-memory prefix tree (trie) for autocompletion.

An Index stores a dictionary of words and answers two questions about any
prefix: which stored words start with it, and which characters could come
next. Words may be added in any order and any number of times; a word is only
ever stored once.

In general, to use it you create an index with prefixindex.New() or
prefixindex.NewFrom(), then call Update() for every word the user submits.
Search() returns the words that complete a prefix, NextLetters() returns the
characters that extend it by one position, and Display() returns the whole
dictionary. Clear() forgets everything.

A character is one UTF-8 encoded code point. Bytes that are not valid UTF-8
are treated as single characters of their own, so a stored word always comes
back exactly as it was inserted. Results are ordered: siblings are visited
in ascending byte order, which for valid UTF-8 puts words in lexicographic
order with every word ahead of its extensions.

An Index does no locking. Callers that share one between goroutines must
serialize access themselves.
*/
package prefixindex
