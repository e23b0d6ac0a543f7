package abi

import "strings"

// EncodePacked implements Solidity's non-standard `abi.encodePacked`: types
// are concatenated back to back with no padding, no length prefixes on
// fixed-width types, and no offset indirection for dynamic types. It is
// equivalent to New().EncodePacked without the nesting-depth check, using a
// silent logger.
func EncodePacked(types []string, values []Value) ([]byte, error) {
	return encodePacked(types, values, noopLogger)
}

func encodePacked(types []string, values []Value, logger Logger) ([]byte, error) {
	if len(types) != len(values) {
		return nil, &LengthsMismatchError{Expected: len(types), Got: len(values)}
	}

	var out []byte
	for i, t := range types {
		encoded, err := encodePackedComponent(t, values[i], logger)
		if err != nil {
			return nil, err
		}
		out = append(out, encoded...)
	}
	return out, nil
}

func encodePackedComponent(t string, v Value, logger Logger) ([]byte, error) {
	if isArr, _, err := IsArray(t); err != nil {
		return nil, err
	} else if isArr {
		elemType := t[:strings.LastIndex(t, "[")]

		if typeIsDynamic(elemType) {
			// A packed array of dynamic-width elements (string, bytes, nested
			// dynamic arrays, or tuples/arrays containing one) has no recoverable
			// boundary between elements once concatenated: the caller is
			// responsible for knowing this is safe for their use (e.g. the
			// elements are then hashed, never decoded back).
			logger("abi: packed-encoding %q concatenates variable-width elements with no boundary markers", t)
		}

		var out []byte
		for _, child := range v.Children() {
			encoded, err := encodePackedComponent(elemType, child, logger)
			if err != nil {
				return nil, err
			}
			out = append(out, encoded...)
		}
		return out, nil
	}

	if isTup, components, err := IsTuple(t); err != nil {
		return nil, err
	} else if isTup {
		return encodePacked(components, v.Children(), logger)
	}

	return encodePackedScalar(t, v)
}

func encodePackedScalar(t string, v Value) ([]byte, error) {
	if v.IsGroup() {
		return nil, &InvalidTypeAndValueError{Type: t, Detail: "expected a scalar value, got a tuple/array"}
	}
	if err := validateScalar(t, v.Payload()); err != nil {
		return nil, err
	}
	return append([]byte(nil), v.Payload()...), nil
}
