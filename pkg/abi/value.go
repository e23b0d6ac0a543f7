package abi

import (
	"encoding/hex"
	"strings"
)

// Value is the single data shape this package moves arguments through: a
// scalar Leaf carrying its canonical unpadded payload and its type name, or
// a Group of child Values standing for either a tuple's components or an
// array's elements. Which one a Group represents is never stored on the
// Value itself; it is determined by whichever type string it is paired
// with at the call site, exactly as a bare type/value list requires.
type Value struct {
	typeName string
	payload  []byte
	children []Value
	isGroup  bool
}

// Leaf builds a scalar Value. payload must already be the type's exact
// canonical byte form (see the New* constructors in scalar.go for safe
// ways to build one).
func Leaf(typeName string, payload []byte) Value {
	return Value{typeName: typeName, payload: payload}
}

// Group builds a tuple or array Value from its components, in order.
func Group(children []Value) Value {
	return Value{children: children, isGroup: true}
}

// IsGroup reports whether v is a tuple/array Value rather than a scalar.
func (v Value) IsGroup() bool { return v.isGroup }

// TypeName returns the scalar type name carried by a Leaf Value. It is
// meaningless for a Group.
func (v Value) TypeName() string { return v.typeName }

// Payload returns the canonical unpadded byte form carried by a Leaf
// Value. It is meaningless for a Group.
func (v Value) Payload() []byte { return v.payload }

// Children returns the components of a Group Value, in order. It is
// meaningless for a Leaf.
func (v Value) Children() []Value { return v.children }

// String renders v for diagnostics; it is not a wire format.
func (v Value) String() string {
	if !v.isGroup {
		return v.typeName + "(0x" + hex.EncodeToString(v.payload) + ")"
	}
	parts := make([]string, len(v.children))
	for i, c := range v.children {
		parts[i] = c.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
