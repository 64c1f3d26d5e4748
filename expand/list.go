/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package expand

import "fmt"

// ExpandList expands each value in turn and collects same-named longhands
// into parallel lists, in item order. It is meant for comma-separated
// multi-value declarations held as arrays.
//
// Items that produce no expansion contribute nothing. The boolean is false
// when no item produced a result.
func ExpandList(property string, values []any) (*LonghandLists, bool, error) {
	out := &LonghandLists{}
	for i, value := range values {
		longhands, ok, err := ExpandValue(property, value)
		if err != nil {
			return nil, false, fmt.Errorf("item %d: %w", i, err)
		}
		if !ok {
			continue
		}
		longhands.Each(func(name, val string) {
			list, _ := out.Get(name)
			out.Set(name, append(list, val))
		})
	}

	if out.Len() == 0 {
		return nil, false, nil
	}
	return out, true, nil
}
