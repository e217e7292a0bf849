package prefixindex

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/mmap"
)

// ReadWords reads one word per line from r. Whitespace around each word is
// dropped and blank lines are skipped.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	return words, nil
}

// LoadWords memory-maps a word list file and reads the words in it.
func LoadWords(filename string) ([]string, error) {
	r, err := mmap.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer r.Close()

	words, err := ReadWords(io.NewSectionReader(r, 0, int64(r.Len())))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return words, nil
}

// Write writes every stored word to w, one per line. Returns the number of
// bytes written
func (idx *Index) Write(w io.Writer) (int64, error) {
	var size int64
	for _, word := range idx.Display() {
		n, err := io.WriteString(w, word+"\n")
		size += int64(n)
		if err != nil {
			return size, err
		}
	}
	return size, nil
}
