/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package expand

import "strings"

// BorderRadius expands border-radius into its four corners.
// Radii before a "/" token are horizontal, radii after it vertical; each
// group follows the 1-to-4 rule on its own. Groups after a second "/" are
// ignored. A corner without a vertical radius carries only the horizontal one.
func BorderRadius(value string) *Longhands {
	groups := splitOn(Tokenize(value), "/")

	horizontal := distribute(groups[0])
	var vertical [4]string
	if len(groups) > 1 {
		vertical = distribute(groups[1])
	}

	out := NewLonghands()
	for i, corner := range sides {
		out.Set(radiusNaming.Name(corner), joinPresent(horizontal[i], vertical[i]))
	}
	return out
}

// joinPresent joins the non-empty parts with a single space.
func joinPresent(parts ...string) string {
	present := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			present = append(present, p)
		}
	}
	return strings.Join(present, " ")
}
