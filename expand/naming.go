/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package expand

// Role is the logical slot a value fills within a shorthand.
type Role int

const (
	RoleTop Role = iota
	RoleRight
	RoleBottom
	RoleLeft
	RoleStyle
	RoleWidth
	RoleColor
)

// String returns the suffix used for the role in longhand names.
func (r Role) String() string {
	switch r {
	case RoleTop:
		return "Top"
	case RoleRight:
		return "Right"
	case RoleBottom:
		return "Bottom"
	case RoleLeft:
		return "Left"
	case RoleStyle:
		return "Style"
	case RoleWidth:
		return "Width"
	case RoleColor:
		return "Color"
	default:
		return "Unknown"
	}
}

// sides are the directional roles in distribution order.
var sides = [4]Role{RoleTop, RoleRight, RoleBottom, RoleLeft}

// Naming resolves a role to a concrete longhand property name.
// It lets one distribution algorithm serve several property families.
type Naming map[Role]string

// Name returns the longhand name for role.
func (n Naming) Name(role Role) string {
	return n[role]
}

// Roles returns the roles the naming covers, in canonical order.
func (n Naming) Roles() []Role {
	roles := make([]Role, 0, len(n))
	for r := RoleTop; r <= RoleColor; r++ {
		if _, ok := n[r]; ok {
			roles = append(roles, r)
		}
	}
	return roles
}

// circularNaming holds the four-sided families.
var circularNaming = map[string]Naming{
	"padding": {
		RoleTop:    "paddingTop",
		RoleRight:  "paddingRight",
		RoleBottom: "paddingBottom",
		RoleLeft:   "paddingLeft",
	},
	"margin": {
		RoleTop:    "marginTop",
		RoleRight:  "marginRight",
		RoleBottom: "marginBottom",
		RoleLeft:   "marginLeft",
	},
	"borderWidth": {
		RoleTop:    "borderTopWidth",
		RoleRight:  "borderRightWidth",
		RoleBottom: "borderBottomWidth",
		RoleLeft:   "borderLeftWidth",
	},
	"borderColor": {
		RoleTop:    "borderTopColor",
		RoleRight:  "borderRightColor",
		RoleBottom: "borderBottomColor",
		RoleLeft:   "borderLeftColor",
	},
	"borderStyle": {
		RoleTop:    "borderTopStyle",
		RoleRight:  "borderRightStyle",
		RoleBottom: "borderBottomStyle",
		RoleLeft:   "borderLeftStyle",
	},
}

// edgeNaming holds the single-edge border families and outline.
var edgeNaming = map[string]Naming{
	"borderLeft": {
		RoleStyle: "borderLeftStyle",
		RoleWidth: "borderLeftWidth",
		RoleColor: "borderLeftColor",
	},
	"borderTop": {
		RoleStyle: "borderTopStyle",
		RoleWidth: "borderTopWidth",
		RoleColor: "borderTopColor",
	},
	"borderRight": {
		RoleStyle: "borderRightStyle",
		RoleWidth: "borderRightWidth",
		RoleColor: "borderRightColor",
	},
	"borderBottom": {
		RoleStyle: "borderBottomStyle",
		RoleWidth: "borderBottomWidth",
		RoleColor: "borderBottomColor",
	},
	"outline": {
		RoleStyle: "outlineStyle",
		RoleWidth: "outlineWidth",
		RoleColor: "outlineColor",
	},
}

// borderNaming names the intermediate step of the bare border shorthand.
// Each produced name is itself a circular shorthand.
var borderNaming = Naming{
	RoleStyle: "borderStyle",
	RoleWidth: "borderWidth",
	RoleColor: "borderColor",
}

// radiusNaming maps directional roles to corners, clockwise from top-left.
var radiusNaming = Naming{
	RoleTop:    "borderTopLeftRadius",
	RoleRight:  "borderTopRightRadius",
	RoleBottom: "borderBottomRightRadius",
	RoleLeft:   "borderBottomLeftRadius",
}
