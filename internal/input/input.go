// Package input turns command-line arguments and standard input into a
// translation request.
package input

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/valpere/dltranslate/internal/output"
	"github.com/valpere/dltranslate/internal/translator"
)

type Resolved struct {
	Request translator.TranslateRequest
	Mode    output.Mode
}

// UsageError reports missing positional arguments.
type UsageError struct {
	Usage string
}

func (e *UsageError) Error() string {
	return "Not enough argument, usage: " + e.Usage
}

// StdinReadError reports piped input that could not be read to the end.
type StdinReadError struct {
	Err error
}

func (e *StdinReadError) Error() string {
	return fmt.Sprintf("cannot read redirected input: %v", e.Err)
}

func (e *StdinReadError) Unwrap() error { return e.Err }

// Usage returns the usage line for the given mode.
func Usage(prog string, stdinIsTerminal bool) string {
	if stdinIsTerminal {
		return prog + " TEXT TARGET_LANG [SOURCE_LANG] [more/less (FORMALITY)]"
	}
	return prog + " TARGET_LANG [SOURCE_LANG] [more/less (FORMALITY)]"
}

// Resolve builds the request from positional args (program name excluded).
//
// With a terminal on stdin the text is the first argument and the output is
// annotated for humans. Otherwise the text is read from stdin in full and the
// output is raw. Stdin is not touched when arguments are missing. Arguments
// past formality are ignored.
func Resolve(prog string, args []string, stdinIsTerminal bool, stdin io.Reader) (*Resolved, error) {
	if stdinIsTerminal {
		if len(args) < 2 {
			return nil, &UsageError{Usage: Usage(prog, true)}
		}
		return &Resolved{
			Request: newRequest(args[0], args[1:]),
			Mode:    output.Human,
		}, nil
	}

	if len(args) < 1 {
		return nil, &UsageError{Usage: Usage(prog, false)}
	}

	text, err := readAll(stdin)
	if err != nil {
		return nil, &StdinReadError{Err: err}
	}

	return &Resolved{
		Request: newRequest(text, args),
		Mode:    output.Raw,
	}, nil
}

// newRequest maps TARGET_LANG [SOURCE_LANG] [FORMALITY] onto a request.
func newRequest(text string, langArgs []string) translator.TranslateRequest {
	req := translator.TranslateRequest{
		Text:       text,
		TargetLang: langArgs[0],
	}
	if len(langArgs) > 1 {
		source := langArgs[1]
		req.SourceLang = &source
	}
	if len(langArgs) > 2 {
		formality := langArgs[2]
		req.Formality = &formality
	}
	return req
}

// readAll reads r to the end and rejects input that is not valid UTF-8.
func readAll(r io.Reader) (string, error) {
	if r == nil {
		return "", nil
	}
	data, err := io.ReadAll(transform.NewReader(r, encoding.UTF8Validator))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
