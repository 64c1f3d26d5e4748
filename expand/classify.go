/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package expand

import "regexp"

// Token category patterns. Classification is by pattern only; tokens are
// never parsed into numbers or colors.

// LengthPattern matches tokens ending in a CSS length unit, a percentage or auto.
var LengthPattern = regexp.MustCompile(`(?i)(em|ex|ch|rem|vw|vh|vmin|vmax|cm|mm|q|in|pt|pc|px|dpi|dpcm|dppx|%|auto)$`)

// CalcPattern matches calc() expressions.
var CalcPattern = regexp.MustCompile(`(?i)^calc\(`)

// VarPattern matches var() references.
var VarPattern = regexp.MustCompile(`(?i)^var\(`)

// BorderStylePattern matches border-style keywords.
var BorderStylePattern = regexp.MustCompile(`(?i)^(dashed|dotted|double|groove|hidden|inset|none|outset|ridge|solid)$`)

// BorderWidthPattern matches border-width keywords.
// "think" is matched as written; see DESIGN.md.
var BorderWidthPattern = regexp.MustCompile(`(?i)^(thick|medium|think)$`)

// PureNumberPattern matches unsigned integers.
var PureNumberPattern = regexp.MustCompile(`^\d+$`)

// IsLength reports whether tok ends with a length unit, "%" or "auto".
func IsLength(tok string) bool { return LengthPattern.MatchString(tok) }

// IsCalc reports whether tok is a calc() expression.
func IsCalc(tok string) bool { return CalcPattern.MatchString(tok) }

// IsVar reports whether tok is a var() reference.
func IsVar(tok string) bool { return VarPattern.MatchString(tok) }

// IsBorderStyle reports whether tok is a border-style keyword.
func IsBorderStyle(tok string) bool { return BorderStylePattern.MatchString(tok) }

// IsBorderWidth reports whether tok is a border-width keyword.
func IsBorderWidth(tok string) bool { return BorderWidthPattern.MatchString(tok) }

// IsPureNumber reports whether tok consists only of decimal digits.
func IsPureNumber(tok string) bool { return PureNumberPattern.MatchString(tok) }

// isWidth is the width bucket of the border classifier.
func isWidth(tok string) bool {
	return IsBorderWidth(tok) || IsLength(tok) || IsCalc(tok) || tok == "0"
}
