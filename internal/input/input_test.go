package input

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/valpere/dltranslate/internal/output"
)

// failingReader fails the test when read, for cases that must not touch stdin.
type failingReader struct{ t *testing.T }

func (r failingReader) Read(p []byte) (int, error) {
	r.t.Error("stdin must not be read")
	return 0, io.EOF
}

type errReader struct{}

func (errReader) Read(p []byte) (int, error) { return 0, errors.New("broken pipe") }

func deref(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}

func TestResolve_Terminal(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		text      string
		target    string
		source    string
		formality string
	}{
		{"text and target", []string{"Hello world", "FR"}, "Hello world", "FR", "<nil>", "<nil>"},
		{"with source", []string{"Hello", "FR", "EN"}, "Hello", "FR", "EN", "<nil>"},
		{"with formality", []string{"Hello", "DE", "EN", "less"}, "Hello", "DE", "EN", "less"},
		{"extra args ignored", []string{"Hello", "DE", "EN", "less", "junk"}, "Hello", "DE", "EN", "less"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Resolve("dl-translate", tt.args, true, failingReader{t})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Mode != output.Human {
				t.Errorf("expected human mode, got %v", res.Mode)
			}
			req := res.Request
			if req.Text != tt.text || req.TargetLang != tt.target {
				t.Errorf("unexpected request %+v", req)
			}
			if deref(req.SourceLang) != tt.source {
				t.Errorf("expected source %q, got %q", tt.source, deref(req.SourceLang))
			}
			if deref(req.Formality) != tt.formality {
				t.Errorf("expected formality %q, got %q", tt.formality, deref(req.Formality))
			}
		})
	}
}

func TestResolve_Piped(t *testing.T) {
	res, err := Resolve("dl-translate", []string{"DE", "EN", "more"}, false, strings.NewReader("Good morning"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Mode != output.Raw {
		t.Errorf("expected raw mode, got %v", res.Mode)
	}
	req := res.Request
	if req.Text != "Good morning" || req.TargetLang != "DE" {
		t.Errorf("unexpected request %+v", req)
	}
	if deref(req.SourceLang) != "EN" || deref(req.Formality) != "more" {
		t.Errorf("unexpected optional fields: source=%q formality=%q", deref(req.SourceLang), deref(req.Formality))
	}
}

func TestResolve_PipedTargetOnly(t *testing.T) {
	res, err := Resolve("dl-translate", []string{"FR"}, false, strings.NewReader("line one\nline two\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Request.Text != "line one\nline two\n" {
		t.Errorf("stdin must be passed unmodified, got %q", res.Request.Text)
	}
	if res.Request.SourceLang != nil || res.Request.Formality != nil {
		t.Error("expected optional fields to be omitted")
	}
}

func TestResolve_PipedEmptyInput(t *testing.T) {
	res, err := Resolve("dl-translate", []string{"FR"}, false, strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Request.Text != "" {
		t.Errorf("expected empty text, got %q", res.Request.Text)
	}
}

func TestResolve_NotEnoughArguments(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		terminal bool
		usage    string
	}{
		{"terminal no args", nil, true, "dl-translate TEXT TARGET_LANG"},
		{"terminal text only", []string{"Hello"}, true, "dl-translate TEXT TARGET_LANG"},
		{"piped no args", nil, false, "dl-translate TARGET_LANG [SOURCE_LANG]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve("dl-translate", tt.args, tt.terminal, failingReader{t})

			var usageErr *UsageError
			if !errors.As(err, &usageErr) {
				t.Fatalf("expected *UsageError, got %v", err)
			}
			if !strings.HasPrefix(err.Error(), "Not enough argument, usage: ") {
				t.Errorf("unexpected message %q", err.Error())
			}
			if !strings.Contains(err.Error(), tt.usage) {
				t.Errorf("expected %q in %q", tt.usage, err.Error())
			}
		})
	}
}

func TestResolve_StdinErrors(t *testing.T) {
	tests := []struct {
		name  string
		stdin io.Reader
	}{
		{"read failure", errReader{}},
		{"invalid utf-8", strings.NewReader("caf\xe9")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve("dl-translate", []string{"FR"}, false, tt.stdin)

			var readErr *StdinReadError
			if !errors.As(err, &readErr) {
				t.Fatalf("expected *StdinReadError, got %v", err)
			}
		})
	}
}
