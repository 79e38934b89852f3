// Package report renders search outcomes for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/katalvlaran/statespace/search"
)

// Summary is the printable form of one search.
type Summary struct {
	Problem    string
	Discipline string
	Found      bool
	Visited    int
	Tokens     []string
	// Separator joins Tokens; defaults to a single space.
	Separator string
}

// FromResult builds a Summary from a search result, printing each token of
// the final state with tokens.
func FromResult[S any](problem string, r search.Result[S], tokens func(S) []string) Summary {
	s := Summary{
		Problem:    problem,
		Discipline: r.Discipline.String(),
		Found:      r.Found,
		Visited:    r.Visited,
	}
	if r.Found && tokens != nil {
		s.Tokens = tokens(r.State)
	}

	return s
}

// Render writes s as aligned key/value lines. Colors follow color.NoColor.
func Render(w io.Writer, s Summary) error {
	sep := s.Separator
	if sep == "" {
		sep = " "
	}
	outcome := color.GreenString("found")
	if !s.Found {
		outcome = color.YellowString("exhausted")
	}

	lines := [][2]string{
		{"problem", s.Problem},
		{"strategy", s.Discipline},
		{"outcome", outcome},
		{"visited", color.HiCyanString("%d", s.Visited)},
	}
	if s.Found {
		lines = append(lines,
			[2]string{"length", fmt.Sprint(len(s.Tokens))},
			[2]string{"path", color.CyanString("%s", strings.Join(s.Tokens, sep))},
		)
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%-9s %s\n", l[0]+":", l[1]); err != nil {
			return err
		}
	}

	return nil
}
