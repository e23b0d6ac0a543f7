package abi

import "strconv"

// Builder accumulates a parallel type-string/Value list for Encode, so
// callers don't have to build and keep the two slices in lockstep by hand.
// The zero value is ready to use.
type Builder struct {
	types  []string
	values []Value
	err    error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends a scalar value paired with its type name.
func (b *Builder) Add(typeName string, v Value) *Builder {
	if b.err != nil {
		return b
	}
	if v.IsGroup() {
		b.err = &InvalidTypeAndValueError{Type: typeName, Detail: "Add expects a scalar value; use AddArray/AddTuple for a group"}
		return b
	}
	b.types = append(b.types, typeName)
	b.values = append(b.values, v)
	return b
}

// AddArray appends an array value of elemType. size is 0 for a
// dynamic-length array, or the fixed array length otherwise.
func (b *Builder) AddArray(elemType string, size int, children []Value) *Builder {
	if b.err != nil {
		return b
	}
	if size != 0 && size != len(children) {
		b.err = &InvalidTypeAndValueError{
			Type:   elemType + "[]",
			Detail: "array length does not match the number of values supplied",
		}
		return b
	}

	typeName := elemType + "["
	if size != 0 {
		typeName += strconv.Itoa(size)
	}
	typeName += "]"

	b.types = append(b.types, typeName)
	b.values = append(b.values, Group(children))
	return b
}

// AddTuple appends a tuple value built from componentTypes and children,
// in order.
func (b *Builder) AddTuple(componentTypes []string, children []Value) *Builder {
	if b.err != nil {
		return b
	}
	if len(componentTypes) != len(children) {
		b.err = &LengthsMismatchError{Expected: len(componentTypes), Got: len(children)}
		return b
	}

	typeName := "("
	for i, c := range componentTypes {
		if i > 0 {
			typeName += ","
		}
		typeName += c
	}
	typeName += ")"

	b.types = append(b.types, typeName)
	b.values = append(b.values, Group(children))
	return b
}

// Build returns the accumulated type strings and values, ready to pass to
// Encode, or the first error recorded by a prior Add/AddArray/AddTuple
// call. An empty Builder is not itself an error.
func (b *Builder) Build() ([]string, []Value, error) {
	if b.err != nil {
		return nil, nil, b.err
	}
	return b.types, b.values, nil
}

// MustBuild is like Build but panics on error; it is meant for tests and
// other call sites building a value list from compile-time-known literals.
func (b *Builder) MustBuild() ([]string, []Value) {
	types, values, err := b.Build()
	if err != nil {
		panic(err)
	}
	return types, values
}
