/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package lint

import (
	"strings"

	"bennypowers.dev/shorthand/cssname"
	"bennypowers.dev/shorthand/expand"
	"bennypowers.dev/shorthand/style"
)

// CheckDocument lints every shorthand declaration in doc, including list
// items and declarations inside blocks. Issues inside a block are prefixed
// with the block names.
func CheckDocument(doc *style.Document) []Issue {
	var issues []Issue
	doc.Walk(func(path []string, decl style.Declaration) {
		property := cssname.ToCamel(decl.Property)
		if !expand.IsShorthand(property) {
			return
		}
		values := decl.Values
		if decl.Kind == style.Scalar {
			values = []string{decl.Value}
		}
		for _, v := range values {
			for _, issue := range Check(property, v) {
				if len(path) > 0 {
					issue.Property = strings.Join(path, " ") + " " + issue.Property
				}
				issues = append(issues, issue)
			}
		}
	})
	return issues
}
