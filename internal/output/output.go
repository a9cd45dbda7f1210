package output

import (
	"fmt"
	"io"

	"github.com/valpere/dltranslate/internal/translator"
)

// Mode selects how translations are printed.
type Mode int

const (
	// Human prints one "<text> (from <lang>)" line per translation.
	Human Mode = iota
	// Raw prints the translated texts back to back with no newline, for pipes.
	Raw
)

func (m Mode) String() string {
	switch m {
	case Human:
		return "human"
	case Raw:
		return "raw"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Render writes every translation in res to w in the order received.
func Render(w io.Writer, res *translator.TranslateResult, mode Mode) error {
	if res == nil {
		return nil
	}
	for _, t := range res.Translations {
		var err error
		if mode == Human {
			_, err = fmt.Fprintf(w, "%s (from %s)\n", t.Text, t.DetectedSourceLanguage)
		} else {
			_, err = io.WriteString(w, t.Text)
		}
		if err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
