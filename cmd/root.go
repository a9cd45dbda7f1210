/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/valpere/dltranslate/internal/app"
)

var version = "0.1.0"

var (
	configPath string
	verbose    bool

	// ran is set once cobra has parsed the flags and handed over to RunE.
	ran bool
)

var rootCmd = &cobra.Command{
	Use:   "dl-translate TEXT TARGET_LANG [SOURCE_LANG] [FORMALITY]",
	Short: "Translate text with DeepL",
	Long: `Translate text with the DeepL API and print the result.

Interactive:
  dl-translate TEXT TARGET_LANG [SOURCE_LANG] [more/less (FORMALITY)]

Piped (text read from standard input, raw output):
  dl-translate TARGET_LANG [SOURCE_LANG] [more/less (FORMALITY)] < file

The API key is read from dl-translate.toml in the user configuration
directory:
  auth_key = "your-deepl-key"

Use "--" before TEXT when it starts with a dash.`,
	Version:       version,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ran = true
		env := app.Env{
			Prog:            progName(cmd),
			Stdin:           cmd.InOrStdin(),
			Stdout:          cmd.OutOrStdout(),
			Stderr:          cmd.ErrOrStderr(),
			StdinIsTerminal: stdinIsTerminal(),
			ConfigPath:      configPath,
			Verbose:         verbose,
		}
		return app.Run(cmd.Context(), env, args)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file (default <user config dir>/dl-translate.toml)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print diagnostics to stderr")
}

var stdinIsTerminal = func() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// progName is the name the binary was invoked as, for usage lines.
func progName(cmd *cobra.Command) string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return cmd.Root().Name()
	}
	return filepath.Base(os.Args[0])
}

func Execute() {
	os.Exit(execute())
}

// execute runs the root command and returns the process exit code.
func execute() int {
	ran = false
	err := rootCmd.Execute()
	if err == nil {
		return app.ExitOK
	}
	if !ran {
		// Flag errors surface before RunE.
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return app.ExitUsage
	}
	app.Report(rootCmd.ErrOrStderr(), err)
	return app.ExitCode(err)
}
