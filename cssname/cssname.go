/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cssname converts CSS property names between kebab-case, as written
// in stylesheets, and camelCase, as used in inline style objects.
package cssname

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// IsCustomProperty reports whether name is a custom property (--foo).
// Custom property names are case-sensitive and never converted.
func IsCustomProperty(name string) bool {
	return strings.HasPrefix(name, "--")
}

// ToCamel converts a kebab-case property name to camelCase.
// e.g., "border-top-width" → "borderTopWidth", "-webkit-box-flex" → "WebkitBoxFlex".
// The -ms- vendor prefix stays lowercase: "-ms-flex" → "msFlex".
// Names without dashes are returned unchanged.
func ToCamel(name string) string {
	if IsCustomProperty(name) || !strings.Contains(name, "-") {
		return name
	}

	vendor := strings.HasPrefix(name, "-")
	parts := strings.Split(strings.TrimPrefix(name, "-"), "-")

	// Casers carry state; build one per call.
	title := cases.Title(language.Und)
	var sb strings.Builder
	for i, part := range parts {
		if part == "" {
			continue
		}
		if i == 0 && !(vendor && part != "ms") {
			sb.WriteString(strings.ToLower(part))
			continue
		}
		sb.WriteString(title.String(part))
	}
	return sb.String()
}

// ToKebab converts a camelCase property name to kebab-case.
// e.g., "borderTopWidth" → "border-top-width", "WebkitBoxFlex" → "-webkit-box-flex".
func ToKebab(name string) string {
	if IsCustomProperty(name) {
		return name
	}

	var sb strings.Builder
	if strings.HasPrefix(name, "ms") && len(name) > 2 && unicode.IsUpper(rune(name[2])) {
		sb.WriteByte('-')
	}
	for _, r := range name {
		if unicode.IsUpper(r) {
			sb.WriteByte('-')
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
