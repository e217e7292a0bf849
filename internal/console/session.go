package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/milden6/prefixindex"
)

const helpText = `Commands:
  add WORD       add a word to the dictionary
  find [PREFIX]  list words and next letters for a prefix
  next [PREFIX]  list next letters for a prefix
  list           list every word
  clear          remove every word
  help           show this message
  exit           leave the shell
`

// Session renders dictionary results for a user. It owns the index for as
// long as the user interacts with it.
type Session struct {
	Index     *prefixindex.Index
	Out       io.Writer
	Separator string
	Logger    zerolog.Logger
}

// NewSession creates a session over idx writing to out.
func NewSession(idx *prefixindex.Index, out io.Writer, separator string, logger zerolog.Logger) *Session {
	return &Session{
		Index:     idx,
		Out:       out,
		Separator: separator,
		Logger:    logger,
	}
}

// Add stores word and shows the updated dictionary. Empty input is ignored.
func (s *Session) Add(word string) {
	if word == "" {
		return
	}

	known := s.Index.Contains(word)
	s.Index.Update(word)
	s.Logger.Debug().Str("word", word).Bool("known", known).Int("words", s.Index.Len()).Msg("Added word")

	fmt.Fprintf(s.Out, "Added '%s' to the dictionary.\n", word)
	s.List()
}

// List shows every stored word.
func (s *Session) List() {
	fmt.Fprintln(s.Out, strings.Join(s.Index.Display(), s.Separator))
}

// Find shows the letters that may follow prefix and the words that start
// with it. An unknown non-empty prefix is reported as such.
func (s *Session) Find(prefix string) {
	results := s.Index.Search(prefix)
	s.Next(prefix)

	s.Logger.Debug().Str("prefix", prefix).Int("results", len(results)).Msg("Searched prefix")

	if len(results) > 0 {
		fmt.Fprintln(s.Out, strings.Join(results, s.Separator))
	} else if prefix != "" {
		fmt.Fprintf(s.Out, "No words found starting with '%s'.\n", prefix)
	}
}

// Next shows the letters that may follow prefix, if there are any.
func (s *Session) Next(prefix string) {
	letters := s.Index.NextLetters(prefix)
	if len(letters) > 0 {
		fmt.Fprintf(s.Out, "Next possible letters: %s\n", strings.Join(letters, s.Separator))
	}
}

// Clear removes every word.
func (s *Session) Clear() {
	removed := s.Index.Len()
	s.Index.Clear()
	s.Logger.Debug().Int("removed", removed).Msg("Cleared dictionary")

	fmt.Fprintln(s.Out, "Dictionary cleared.")
}

// Run reads commands from r, one per line, until EOF, an exit command or
// cancellation of ctx. Cancellation is noticed while waiting for input.
func (s *Session) Run(ctx context.Context, r io.Reader) error {
	done := make(chan struct{})
	defer close(done)

	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		errc <- scanner.Err()
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if err := <-errc; err != nil {
					return fmt.Errorf("reading commands: %w", err)
				}
				return nil
			}
			if !s.Execute(line) {
				return nil
			}
		}
	}
}

// splitCommand splits a line at the first run of whitespace.
func splitCommand(line string) (command, arg string) {
	line = strings.TrimSpace(line)
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(line[i:])
}

// Execute runs a single command line. It returns false when the user asked
// to leave.
func (s *Session) Execute(line string) bool {
	command, arg := splitCommand(line)

	switch strings.ToLower(command) {
	case "":
	case "add":
		s.Add(arg)
	case "find":
		s.Find(arg)
	case "next":
		s.Next(arg)
	case "list":
		s.List()
	case "clear":
		s.Clear()
	case "help":
		fmt.Fprint(s.Out, helpText)
	case "exit", "quit":
		return false
	default:
		s.Logger.Debug().Str("command", command).Msg("Unknown command")
		fmt.Fprintf(s.Out, "Unknown command '%s', type 'help' for a list.\n", command)
	}
	return true
}
