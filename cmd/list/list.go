/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for shorthand.
package list

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/shorthand/cmd/render"
	"bennypowers.dev/shorthand/cssname"
	"bennypowers.dev/shorthand/expand"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List supported shorthand properties",
	Long:  `List every shorthand property shorthand can expand, with the longhands it produces.`,
	Args:  cobra.NoArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, json, markdown, names")
	Cmd.Flags().Bool("kebab", false, "Print property names in kebab-case")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	kebab, _ := cmd.Flags().GetBool("kebab")
	return listTo(cmd.OutOrStdout(), format, kebab)
}

// shorthands maps each supported shorthand to its longhands, sorted by shorthand.
func shorthands(kebab bool) *expand.LonghandLists {
	name := func(s string) string { return s }
	if kebab {
		name = cssname.ToKebab
	}

	out := &expand.LonghandLists{}
	for _, property := range expand.Properties() {
		longhands := expand.LonghandsOf(property)
		for i, l := range longhands {
			longhands[i] = name(l)
		}
		out.Set(name(property), longhands)
	}
	return out
}

func listTo(w io.Writer, format string, kebab bool) error {
	all := shorthands(kebab)

	if format == "json" {
		out, err := json.MarshalIndent(all, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	}

	rows := make([]render.Row, 0, all.Len())
	all.Each(func(property string, longhands []string) {
		rows = append(rows, render.Row{Name: property, Value: strings.Join(longhands, ", ")})
	})

	switch format {
	case "markdown", "md":
		return render.Markdown(w, rows)
	case "names":
		return render.Names(w, rows)
	case "table", "":
		return render.Table(w, rows)
	default:
		return fmt.Errorf("unknown format: %s (valid: table, json, markdown, names)", format)
	}
}
