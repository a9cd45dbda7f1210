// Package app runs one translation: resolve input, load config, call the
// service and print the result. Each step stops the run on failure, so no
// network request is made for usage or config errors.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/valpere/dltranslate/internal/config"
	"github.com/valpere/dltranslate/internal/input"
	"github.com/valpere/dltranslate/internal/output"
	"github.com/valpere/dltranslate/internal/translator"
)

// Exit codes.
const (
	ExitOK        = 0
	ExitUsage     = 1
	ExitFailure   = 2
	ExitStdinRead = 3
)

// Env is everything a run reads from or writes to outside its arguments.
type Env struct {
	Prog            string
	Stdin           io.Reader
	Stdout          io.Writer
	Stderr          io.Writer
	StdinIsTerminal bool

	// ConfigPath overrides the default config file location when set.
	ConfigPath string
	HTTPClient *http.Client
	Verbose    bool
}

func (e Env) logf(format string, args ...any) {
	if e.Verbose && e.Stderr != nil {
		fmt.Fprintf(e.Stderr, format+"\n", args...)
	}
}

// Run translates according to args, the positional arguments after the
// program name.
func Run(ctx context.Context, env Env, args []string) error {
	resolved, err := input.Resolve(env.Prog, args, env.StdinIsTerminal, env.Stdin)
	if err != nil {
		return err
	}

	path := env.ConfigPath
	if path == "" {
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}
	env.logf("Using config file: %s", path)

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	svc := translator.NewDeepLService(cfg.AuthKey, cfg.Endpoint).WithClient(env.HTTPClient)
	env.logf("Translating %d bytes to %s via %s (%s output)",
		len(resolved.Request.Text), resolved.Request.TargetLang, svc.Endpoint(), resolved.Mode)

	result, err := svc.Translate(ctx, resolved.Request)
	if err != nil {
		return err
	}
	env.logf("Received %d translation(s)", len(result.Translations))

	return output.Render(env.Stdout, result, resolved.Mode)
}

// ExitCode maps an error returned by Run to the process exit status.
func ExitCode(err error) int {
	var usageErr *input.UsageError
	var stdinErr *input.StdinReadError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &usageErr):
		return ExitUsage
	case errors.As(err, &stdinErr):
		return ExitStdinRead
	default:
		return ExitFailure
	}
}

// Report writes the one-line message for err to w.
func Report(w io.Writer, err error) {
	var usageErr *input.UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprintln(w, usageErr.Error())
		return
	}
	fmt.Fprintf(w, "Error during translation: %v\n", err)
}
