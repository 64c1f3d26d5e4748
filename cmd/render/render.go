/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/shorthand/cssname"
	"bennypowers.dev/shorthand/expand"
)

// Row holds display values for a single longhand or shorthand.
type Row struct {
	Name    string // Property name, camelCase or kebab-case
	Value   string // Display value; list values are comma-joined
	IsColor bool   // Whether Value is a parseable color
}

var (
	nameColor  = color.New(color.FgCyan)
	valueColor = color.New(color.FgWhite, color.Bold)
)

// displayName returns name in kebab-case when kebab is set.
func displayName(name string, kebab bool) string {
	if kebab {
		return cssname.ToKebab(name)
	}
	return name
}

// isColorSlot reports whether value, held by the longhand name, parses as a color.
func isColorSlot(name, value string) bool {
	if !strings.HasSuffix(name, "Color") {
		return false
	}
	_, err := csscolorparser.Parse(value)
	return err == nil
}

// LonghandRows transforms an expansion into display rows in longhand order.
func LonghandRows(longhands *expand.Longhands, kebab bool) []Row {
	rows := make([]Row, 0, longhands.Len())
	longhands.Each(func(name, value string) {
		rows = append(rows, Row{
			Name:    displayName(name, kebab),
			Value:   value,
			IsColor: isColorSlot(name, value),
		})
	})
	return rows
}

// ListRows transforms a list expansion into display rows, joining each
// longhand's values with commas as they would appear in CSS.
func ListRows(lists *expand.LonghandLists, kebab bool) []Row {
	rows := make([]Row, 0, lists.Len())
	lists.Each(func(name string, values []string) {
		rows = append(rows, Row{
			Name:  displayName(name, kebab),
			Value: strings.Join(values, ", "),
		})
	})
	return rows
}

// ColumnWidths calculates the max width needed for each column.
func ColumnWidths(rows []Row) (name, val int) {
	name, val = 4, 5 // minimums for headers
	for _, r := range rows {
		name = max(name, len(r.Name))
		val = max(val, len(r.Value))
	}
	return
}

// ColorSwatch returns a 24-bit ANSI color block for the given color value.
// It returns "" when colored output is disabled or the value is not a color.
func ColorSwatch(value string) string {
	if color.NoColor {
		return ""
	}
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}

// Table renders rows as an aligned two-column table.
func Table(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	nameW, _ := ColumnWidths(rows)
	for _, r := range rows {
		swatch := ""
		if r.IsColor {
			swatch = ColorSwatch(r.Value)
		}
		// Pad before coloring so escape codes do not count toward the width.
		name := nameColor.Sprint(fmt.Sprintf("%-*s", nameW, r.Name))
		if _, err := fmt.Fprintf(w, "%s  %s%s\n", name, swatch, valueColor.Sprint(r.Value)); err != nil {
			return err
		}
	}
	return nil
}

// Markdown renders rows as a markdown table.
func Markdown(w io.Writer, rows []Row) error {
	nameW, valW := ColumnWidths(rows)
	fmt.Fprintf(w, "| %-*s | %-*s |\n", nameW, "Name", valW, "Value")
	fmt.Fprintf(w, "|-%s-|-%s-|\n", strings.Repeat("-", nameW), strings.Repeat("-", valW))
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "| %-*s | %-*s |\n", nameW, r.Name, valW, r.Value); err != nil {
			return err
		}
	}
	return nil
}

// CSS renders rows as declarations, one per line.
func CSS(w io.Writer, rows []Row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s: %s;\n", cssname.ToKebab(r.Name), r.Value); err != nil {
			return err
		}
	}
	return nil
}

// Names renders just the property names, one per line.
func Names(w io.Writer, rows []Row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, r.Name); err != nil {
			return err
		}
	}
	return nil
}
