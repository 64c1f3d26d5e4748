/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package expand provides the expand command for shorthand.
package expand

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/shorthand/cmd/render"
	"bennypowers.dev/shorthand/cssname"
	expandlib "bennypowers.dev/shorthand/expand"
	"bennypowers.dev/shorthand/internal/logger"
)

// ErrUnknownProperty is returned for properties that cannot be expanded.
var ErrUnknownProperty = errors.New("not an expandable shorthand")

// Cmd is the expand cobra command.
var Cmd = &cobra.Command{
	Use:   "expand <property> <value...>",
	Short: "Expand a shorthand value into longhands",
	Long: `Expand a single shorthand declaration into its longhand properties.

The property may be written in camelCase or kebab-case. Passing more than one
value expands each as one layer of a comma-separated list.

Examples:
  shorthand expand padding "1px 2px"
  shorthand expand border-radius "10px 5% / 20px" --format css
  shorthand expand gap 1px "2px 3px" --format json`,
	Args: cobra.MinimumNArgs(2),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, json, yaml, css")
	Cmd.Flags().Bool("kebab", false, "Print longhand names in kebab-case")
	_ = viper.BindPFlag("expand.kebab", Cmd.Flags().Lookup("kebab"))
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	kebab := viper.GetBool("expand.kebab")

	return expandTo(cmd.OutOrStdout(), args[0], args[1:], format, kebab)
}

// expandTo expands values of property and writes them to w in format.
func expandTo(w io.Writer, property string, values []string, format string, kebab bool) error {
	name := cssname.ToCamel(property)
	if !expandlib.IsShorthand(name) {
		return fmt.Errorf("%s: %w", property, ErrUnknownProperty)
	}

	if len(values) == 1 {
		longhands, _ := expandlib.Expand(name, values[0])
		logger.Debug("expanded %s: %q into %d longhands", name, values[0], longhands.Len())
		return write(w, format, renamed(longhands, kebab), render.LonghandRows(longhands, kebab))
	}

	items := make([]any, len(values))
	for i, v := range values {
		items[i] = v
	}
	lists, _, err := expandlib.ExpandList(name, items)
	if err != nil {
		return err
	}
	return write(w, format, renamed(lists, kebab), render.ListRows(lists, kebab))
}

func write(w io.Writer, format string, data any, rows []render.Row) error {
	switch format {
	case "json":
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case "yaml":
		out, err := yaml.Marshal(data)
		if err != nil {
			return fmt.Errorf("error marshaling YAML: %w", err)
		}
		_, err = w.Write(out)
		return err
	case "css":
		return render.CSS(w, rows)
	case "table", "":
		return render.Table(w, rows)
	default:
		return fmt.Errorf("unknown format: %s (valid: table, json, yaml, css)", format)
	}
}

// renamed returns m with kebab-case names when kebab is set.
func renamed[V any](m *expandlib.Map[V], kebab bool) *expandlib.Map[V] {
	if !kebab {
		return m
	}
	out := &expandlib.Map[V]{}
	m.Each(func(name string, value V) {
		out.Set(cssname.ToKebab(name), value)
	})
	return out
}
