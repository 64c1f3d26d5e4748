/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for shorthand.
package validate

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/shorthand/config"
	"bennypowers.dev/shorthand/cssname"
	"bennypowers.dev/shorthand/expand"
	"bennypowers.dev/shorthand/fs"
	"bennypowers.dev/shorthand/lint"
	"bennypowers.dev/shorthand/style"
)

// ErrValidationFailed is returned when any file fails to parse, or has lint
// issues in strict mode.
var ErrValidationFailed = errors.New("validation failed")

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate style documents",
	Long: `Check that style documents parse and lint their shorthand declarations.

Parse errors always fail. Lint issues are reported as warnings and only fail
with --strict.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Fail on lint warnings")
	Cmd.Flags().Bool("quiet", false, "Only output errors")
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	quiet, _ := cmd.Flags().GetBool("quiet")

	filesystem := fs.NewOSFileSystem()

	files := args
	if len(files) == 0 {
		cfg := &config.Config{Files: viper.GetStringSlice("files")}
		expanded, err := cfg.ExpandFiles(filesystem, ".")
		if err != nil {
			return fmt.Errorf("error expanding config files: %w", err)
		}
		files = expanded
	}

	if len(files) == 0 {
		return fmt.Errorf("no files specified and no files found in config")
	}

	return validateFiles(filesystem, cmd.OutOrStdout(), cmd.ErrOrStderr(), files, strict, quiet)
}

// countShorthands returns the number of declarations and how many of them
// are expandable shorthands.
func countShorthands(doc *style.Document) (declarations, shorthands int) {
	doc.Walk(func(_ []string, decl style.Declaration) {
		declarations++
		if expand.IsShorthand(cssname.ToCamel(decl.Property)) {
			shorthands++
		}
	})
	return
}

func validateFiles(filesystem fs.FileSystem, stdout, stderr io.Writer, files []string, strict, quiet bool) error {
	hasErrors := false

	for _, file := range files {
		if !quiet {
			fmt.Fprintf(stdout, "Validating %s...\n", file)
		}

		doc, err := style.ParseFile(filesystem, file)
		if err != nil {
			fmt.Fprintf(stderr, "Error parsing %s: %v\n", file, err)
			hasErrors = true
			continue
		}

		issues := lint.CheckDocument(doc)
		for _, issue := range issues {
			fmt.Fprintf(stderr, "Warning in %s: %s\n", file, issue)
		}
		if strict && len(issues) > 0 {
			hasErrors = true
		}

		if !quiet {
			declarations, shorthands := countShorthands(doc)
			fmt.Fprintf(stdout, "  %d declarations, %d shorthands, %d warnings\n", declarations, shorthands, len(issues))
		}
	}

	if hasErrors {
		return ErrValidationFailed
	}

	if !quiet {
		fmt.Fprintln(stdout, "All files valid.")
	}
	return nil
}
