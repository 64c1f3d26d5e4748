/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package lint provides the lint command for shorthand.
package lint

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bennypowers.dev/shorthand/cssname"
	"bennypowers.dev/shorthand/expand"
	lintlib "bennypowers.dev/shorthand/lint"
)

// ErrIssuesFound is returned when lint reports at least one issue,
// so that the process exits non-zero.
var ErrIssuesFound = errors.New("lint issues found")

var warning = color.New(color.FgYellow, color.Bold)

// Cmd is the lint cobra command.
var Cmd = &cobra.Command{
	Use:   "lint <property> <value>",
	Short: "Report suspicious values in a shorthand declaration",
	Long: `Expand a shorthand declaration and report values that were probably
mistakes, such as unparseable colors, unbalanced parentheses or repeated spaces.

Exits non-zero when any issue is found.`,
	Args: cobra.ExactArgs(2),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format: text, json")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	return lintTo(cmd.OutOrStdout(), args[0], args[1], format)
}

func lintTo(w io.Writer, property, value, format string) error {
	name := cssname.ToCamel(property)
	if !expand.IsShorthand(name) {
		return fmt.Errorf("%s: not an expandable shorthand", property)
	}

	issues := lintlib.Check(name, value)

	switch format {
	case "json":
		if issues == nil {
			issues = []lintlib.Issue{}
		}
		out, err := json.MarshalIndent(issues, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling JSON: %w", err)
		}
		fmt.Fprintln(w, string(out))
	case "text", "":
		for _, issue := range issues {
			fmt.Fprintf(w, "%s %s\n", warning.Sprint("warning:"), issue)
		}
	default:
		return fmt.Errorf("unknown format: %s (valid: text, json)", format)
	}

	if len(issues) > 0 {
		return fmt.Errorf("%w: %d", ErrIssuesFound, len(issues))
	}
	return nil
}
