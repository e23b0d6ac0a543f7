package abi

import (
	"strings"
	"unicode/utf8"
)

// Decode reverses Encode: given the type list that produced it and the raw
// encoded bytes, it recovers the original Values.
func Decode(types []string, data []byte) ([]Value, error) {
	return decodeSequence(types, data)
}

// decodeSequence decodes a list of type/value pairs whose head begins at
// offset 0 of data. It is used both for Decode's top-level call and,
// recursively, for a tuple's own components.
func decodeSequence(types []string, data []byte) ([]Value, error) {
	values := make([]Value, 0, len(types))
	cursor := 0
	for _, t := range types {
		v, err := decodeComponent(t, data, cursor)
		if err != nil {
			return nil, err
		}
		values = append(values, v)

		width, err := headWidth(t)
		if err != nil {
			return nil, err
		}
		cursor += width
	}
	return values, nil
}

// decodeComponent decodes the component of type t whose head slot starts
// at data[cursor:]. A dynamic component's head slot holds a 32-byte offset
// into data's tail; a static component's bytes are read in place.
func decodeComponent(t string, data []byte, cursor int) (Value, error) {
	if cursor+slotSize > len(data) {
		return Value{}, &ShortBufferError{Needed: cursor + slotSize, Got: len(data)}
	}

	if typeIsDynamic(t) {
		offsetInt := decodeUint(data[cursor+24 : cursor+slotSize])
		if !offsetInt.IsInt64() {
			return Value{}, &InvalidTypeAndValueError{Type: t, Detail: "offset too large"}
		}
		offset := int(offsetInt.Int64())
		if offset < 0 || offset > len(data) {
			return Value{}, &ShortBufferError{Needed: offset, Got: len(data)}
		}
		return decodeAt(t, data[offset:])
	}

	return decodeAt(t, data[cursor:])
}

// decodeAt decodes a component of type t whose own encoding begins at
// offset 0 of buf (the local "region" this call is responsible for —
// either the top-level buffer, a tuple's slice of its parent, or the
// target of a dynamic offset).
func decodeAt(t string, buf []byte) (Value, error) {
	if isArr, size, err := IsArray(t); err != nil {
		return Value{}, err
	} else if isArr {
		elemType := t[:strings.LastIndex(t, "[")]
		children, err := decodeArrayBody(elemType, buf, size)
		if err != nil {
			return Value{}, err
		}
		return Group(children), nil
	}

	if isTup, components, err := IsTuple(t); err != nil {
		return Value{}, err
	} else if isTup {
		children, err := decodeSequence(components, buf)
		if err != nil {
			return Value{}, err
		}
		return Group(children), nil
	}

	return decodeScalar(t, buf)
}

// decodeArrayBody decodes size elements of elemType from buf (or, when
// size is 0, reads the element count from buf's first 32 bytes first). It
// reduces to decodeSequence over size copies of elemType, since array
// elements and tuple components share the same positional head/tail
// layout — this also gives an array of tuples the correct, exact
// per-element head width instead of assuming every element occupies
// a fixed 32 bytes.
func decodeArrayBody(elemType string, buf []byte, size int) ([]Value, error) {
	if size == 0 {
		if len(buf) < slotSize {
			return nil, &ShortBufferError{Needed: slotSize, Got: len(buf)}
		}
		count := decodeUint(buf[24:slotSize])
		if !count.IsInt64() {
			return nil, &InvalidTypeAndValueError{Type: elemType + "[]", Detail: "array length too large"}
		}
		size = int(count.Int64())
		buf = buf[slotSize:]
	}

	// Every element occupies at least one 32-byte head slot.
	if size > len(buf)/slotSize {
		return nil, &ShortBufferError{Needed: len(buf) - len(buf)%slotSize + slotSize, Got: len(buf)}
	}

	types := make([]string, size)
	for i := range types {
		types[i] = elemType
	}
	return decodeSequence(types, buf)
}

// decodeScalar decodes an elementary value from the start of buf: a
// length-prefixed blob for string/bytes, or a single 32-byte slot for
// everything else.
func decodeScalar(t string, buf []byte) (Value, error) {
	if t == "string" || t == "bytes" {
		if len(buf) < slotSize {
			return Value{}, &ShortBufferError{Needed: slotSize, Got: len(buf)}
		}
		length := decodeUint(buf[24:slotSize])
		if !length.IsInt64() {
			return Value{}, &InvalidTypeAndValueError{Type: t, Detail: "length too large"}
		}
		n := int(length.Int64())
		if n > len(buf)-slotSize {
			return Value{}, &ShortBufferError{Needed: slotSize + n, Got: len(buf)}
		}
		payload := append([]byte(nil), buf[slotSize:slotSize+n]...)
		if t == "string" && !utf8.Valid(payload) {
			return Value{}, &InvalidTypeAndValueError{Type: t, Detail: "invalid UTF-8"}
		}
		return Leaf(t, payload), nil
	}

	width, err := Width(t)
	if err != nil {
		return Value{}, err
	}
	if len(buf) < slotSize {
		return Value{}, &ShortBufferError{Needed: slotSize, Got: len(buf)}
	}
	slot := buf[:slotSize]

	// bytesN data sits left-aligned in its slot (right zero-padded); every
	// other elementary type is right-aligned (left zero-padded).
	if strings.HasPrefix(t, "bytes") {
		return Leaf(t, append([]byte(nil), slot[:width]...)), nil
	}
	return Leaf(t, append([]byte(nil), slot[slotSize-width:]...)), nil
}

// headWidth returns how many bytes a static type occupies in its
// enclosing head, or slotSize (one offset word) for a dynamic type.
// Recursing through tuple/array element types gives the exact consumed
// width even when a static tuple or fixed array contains a nested
// multi-slot static tuple/array, rather than assuming every component is
// exactly one 32-byte slot wide.
func headWidth(t string) (int, error) {
	if typeIsDynamic(t) {
		return slotSize, nil
	}

	if isArr, size, err := IsArray(t); err != nil {
		return 0, err
	} else if isArr {
		elemType := t[:strings.LastIndex(t, "[")]
		w, err := headWidth(elemType)
		if err != nil {
			return 0, err
		}
		return w * size, nil
	}

	if isTup, components, err := IsTuple(t); err != nil {
		return 0, err
	} else if isTup {
		total := 0
		for _, c := range components {
			w, err := headWidth(c)
			if err != nil {
				return 0, err
			}
			total += w
		}
		return total, nil
	}

	return slotSize, nil
}
