package abi

import (
	"strings"

	"github.com/holiman/uint256"
)

// dynTailRef records where a dynamic component's 32-byte offset word goes
// in the header, and where its encoded bytes start in the footer, so the
// offset can be back-patched once the footer's final layout is known.
type dynTailRef struct {
	headerOffset int
	footerOffset int
}

// Encode lays out types/values in the standard ABI head/tail form: every
// component gets a fixed-size head slot (a value in place, or a 32-byte
// offset into the tail for anything dynamic), followed by the tail
// containing the actual bytes of every dynamic component in order.
func Encode(types []string, values []Value) ([]byte, error) {
	return encodeSequence(types, values)
}

// encodeSequence implements Encode's layout; it is also used, recursively,
// to encode a tuple's own components once a tuple type has been unwrapped.
func encodeSequence(types []string, values []Value) ([]byte, error) {
	if len(types) != len(values) {
		return nil, &LengthsMismatchError{Expected: len(types), Got: len(values)}
	}

	var header, footer []byte
	var refs []dynTailRef

	for i, t := range types {
		encoded, err := encodeComponent(t, values[i])
		if err != nil {
			return nil, err
		}

		if typeIsDynamic(t) {
			refs = append(refs, dynTailRef{headerOffset: len(header), footerOffset: len(footer)})
			footer = append(footer, encoded...)
			header = append(header, make([]byte, slotSize)...)
		} else {
			header = append(header, encoded...)
		}
	}

	patchOffsets(header, footer, refs)
	return append(header, footer...), nil
}

// encodeArray lays out the elements of an array type the same way
// encodeSequence lays out a tuple's components, then prepends a length
// word when size is 0 (a dynamic-length array).
func encodeArray(elemType string, children []Value, size int) ([]byte, error) {
	if size != 0 && size != len(children) {
		return nil, &InvalidTypeAndValueError{
			Type:   elemType + "[]",
			Detail: "array length does not match the number of values supplied",
		}
	}

	elemDynamic := typeIsDynamic(elemType)

	var header, footer []byte
	var refs []dynTailRef

	for _, child := range children {
		encoded, err := encodeComponent(elemType, child)
		if err != nil {
			return nil, err
		}

		if elemDynamic {
			refs = append(refs, dynTailRef{headerOffset: len(header), footerOffset: len(footer)})
			footer = append(footer, encoded...)
			header = append(header, make([]byte, slotSize)...)
		} else {
			header = append(header, encoded...)
		}
	}

	patchOffsets(header, footer, refs)
	result := append(header, footer...)

	if size == 0 {
		lengthWord := uint256.NewInt(uint64(len(children))).Bytes32()
		result = append(append([]byte(nil), lengthWord[:]...), result...)
	}

	return result, nil
}

// patchOffsets back-fills each dynamic component's 32-byte head slot with
// its offset, measured from the start of header, into where its bytes end
// up once footer is appended after header.
func patchOffsets(header, footer []byte, refs []dynTailRef) {
	for _, ref := range refs {
		offset := uint256.NewInt(uint64(len(header) + ref.footerOffset))
		word := offset.Bytes32()
		copy(header[ref.headerOffset:ref.headerOffset+slotSize], word[:])
	}
}

// encodeComponent encodes a single type/value pair to its "natural" bytes:
// a padded 32-byte slot for a static scalar, a length-prefixed padded blob
// for a dynamic scalar, or the full nested head/tail (or in-place
// concatenation, for a static tuple/array) for a tuple or array.
func encodeComponent(t string, v Value) ([]byte, error) {
	if isArr, size, err := IsArray(t); err != nil {
		return nil, err
	} else if isArr {
		elemType := t[:strings.LastIndex(t, "[")]
		return encodeArray(elemType, v.Children(), size)
	}

	if isTup, components, err := IsTuple(t); err != nil {
		return nil, err
	} else if isTup {
		return encodeSequence(components, v.Children())
	}

	return encodeScalarSlot(t, v)
}

// encodeScalarSlot encodes an elementary value. Static values (ints, bool,
// address, bytesN) produce exactly one 32-byte slot; dynamic values
// (string, bytes) produce a length word followed by their data padded up
// to the next 32-byte boundary.
func encodeScalarSlot(t string, v Value) ([]byte, error) {
	if v.IsGroup() {
		return nil, &InvalidTypeAndValueError{Type: t, Detail: "expected a scalar value, got a tuple/array"}
	}
	if err := validateScalar(t, v.Payload()); err != nil {
		return nil, err
	}

	if t == "string" || t == "bytes" {
		data := v.Payload()
		length := uint256.NewInt(uint64(len(data))).Bytes32()
		out := make([]byte, 0, slotSize+ceilToSlot(len(data)))
		out = append(out, length[:]...)
		out = append(out, padRight(data, ceilToSlot(len(data)))...)
		return out, nil
	}

	// Canonical ABI aligns bytesN data to the left of its slot (right
	// zero-padded); every other elementary type is right-aligned (left
	// zero-padded).
	if strings.HasPrefix(t, "bytes") {
		return padRight(v.Payload(), slotSize), nil
	}
	return padLeft(v.Payload(), slotSize), nil
}

func ceilToSlot(n int) int {
	if n == 0 {
		return 0
	}
	return ((n + slotSize - 1) / slotSize) * slotSize
}
