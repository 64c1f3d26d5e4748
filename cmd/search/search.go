/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package search provides the search command for shorthand.
package search

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/shorthand/cmd/render"
	"bennypowers.dev/shorthand/cssname"
	"bennypowers.dev/shorthand/expand"
)

// Cmd is the search cobra command.
var Cmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Find shorthands by name or by the longhands they set",
	Long: `Search supported shorthands by name or by longhand name, in camelCase or
kebab-case. Use it to answer which shorthands can set a given longhand:

  shorthand search border-top-color --longhand`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("name", false, "Search shorthand names only")
	Cmd.Flags().Bool("longhand", false, "Search longhand names only")
	Cmd.Flags().Bool("regex", false, "Query is a regex")
	Cmd.Flags().String("format", "table", "Output format: table, json, names")
}

// Match is a shorthand whose name or longhands matched the query.
type Match struct {
	Property  string   `json:"property"`
	Longhands []string `json:"longhands"`
}

func run(cmd *cobra.Command, args []string) error {
	nameOnly, _ := cmd.Flags().GetBool("name")
	longhandOnly, _ := cmd.Flags().GetBool("longhand")
	useRegex, _ := cmd.Flags().GetBool("regex")
	format, _ := cmd.Flags().GetString("format")

	if nameOnly && longhandOnly {
		return fmt.Errorf("--name and --longhand are mutually exclusive")
	}

	var pattern *regexp.Regexp
	if useRegex {
		var err error
		pattern, err = regexp.Compile(args[0])
		if err != nil {
			return fmt.Errorf("invalid regex: %w", err)
		}
	}

	matches := search(args[0], pattern, !longhandOnly, !nameOnly)

	w := cmd.OutOrStdout()
	switch format {
	case "json":
		return outputJSON(w, matches)
	case "names":
		return outputNames(w, matches)
	default:
		return outputTable(w, matches)
	}
}

// search returns the shorthands matching query, sorted by name. When only
// longhands are searched, each match lists just the longhands that matched.
func search(query string, pattern *regexp.Regexp, names, longhands bool) []Match {
	var matches []Match
	for _, property := range expand.Properties() {
		all := expand.LonghandsOf(property)
		if names && matchName(property, query, pattern) {
			matches = append(matches, Match{Property: property, Longhands: all})
			continue
		}
		if !longhands {
			continue
		}
		var hits []string
		for _, l := range all {
			if matchName(l, query, pattern) {
				hits = append(hits, l)
			}
		}
		if len(hits) > 0 {
			matches = append(matches, Match{Property: property, Longhands: hits})
		}
	}
	return matches
}

// matchName matches a camelCase property name in either spelling.
func matchName(name, query string, pattern *regexp.Regexp) bool {
	return matchString(name, query, pattern) || matchString(cssname.ToKebab(name), query, pattern)
}

func matchString(s, query string, pattern *regexp.Regexp) bool {
	if pattern != nil {
		return pattern.MatchString(s)
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(query))
}

func outputTable(w io.Writer, matches []Match) error {
	rows := make([]render.Row, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, render.Row{Name: m.Property, Value: strings.Join(m.Longhands, ", ")})
	}
	return render.Table(w, rows)
}

func outputJSON(w io.Writer, matches []Match) error {
	if matches == nil {
		matches = []Match{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(matches)
}

func outputNames(w io.Writer, matches []Match) error {
	for _, m := range matches {
		if _, err := fmt.Fprintln(w, m.Property); err != nil {
			return err
		}
	}
	return nil
}
