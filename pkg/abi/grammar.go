package abi

import (
	"strconv"
	"strings"
)

// SplitParams splits a comma-separated parameter type list, respecting
// nested tuple parentheses so that commas inside a nested tuple do not
// split the outer list. If s is wrapped in outer parentheses, they are
// stripped first.
func SplitParams(s string) []string {
	var result []string

	startIdx, endIdx := 0, len(s)
	if len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')' {
		startIdx, endIdx = 1, len(s)-1
	}

	depth := 0
	start := 0
	for i := 0; i < endIdx-startIdx; i++ {
		switch s[startIdx+i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				part := strings.TrimSpace(s[start+startIdx : startIdx+i])
				if part != "" {
					result = append(result, part)
				}
				start = i + 1
			}
		}
	}

	last := strings.TrimSpace(s[start+startIdx : endIdx])
	if last != "" {
		result = append(result, last)
	}

	return result
}

// IsArray reports whether t names an array type, and if so its fixed size
// (0 for a dynamic-length array).
func IsArray(t string) (isArray bool, size int, err error) {
	open := strings.Count(t, "[")
	closeC := strings.Count(t, "]")
	if open != closeC {
		return false, 0, &InvalidArrayError{Type: t}
	}
	if open == 0 {
		return false, 0, nil
	}

	openIdx := strings.LastIndex(t, "[")
	closeIdx := strings.LastIndex(t, "]")
	closeParenIdx := strings.LastIndex(t, ")")

	// A trailing tuple, not a trailing array suffix: e.g. "foo(uint256[])"
	// is not itself an array type.
	if openIdx < closeParenIdx || closeIdx < closeParenIdx {
		return false, 0, nil
	}

	if closeIdx <= openIdx+1 {
		return true, 0, nil
	}

	n, convErr := strconv.Atoi(t[openIdx+1 : closeIdx])
	if convErr != nil || n < 0 {
		return false, 0, &InvalidArrayError{Type: t}
	}
	return true, n, nil
}

// IsTuple reports whether t names a tuple type, and if so its component
// type strings.
func IsTuple(t string) (isTuple bool, components []string, err error) {
	open := strings.Count(t, "(")
	closeC := strings.Count(t, ")")
	if open != closeC {
		return false, nil, &InvalidTupleError{Type: t}
	}
	if open == 0 {
		return false, nil, nil
	}

	openIdx := strings.Index(t, "(")
	closeIdx := strings.LastIndex(t, ")")
	return true, SplitParams(t[openIdx+1 : closeIdx]), nil
}

// GetParamTypes extracts the parenthesised parameter type list from a
// function signature such as "transfer(address,uint256)".
func GetParamTypes(signature string) ([]string, error) {
	open := strings.Count(signature, "(")
	closeC := strings.Count(signature, ")")
	if open != closeC || open == 0 {
		return nil, &InvalidFunctionSignatureError{Signature: signature}
	}

	openIdx := strings.Index(signature, "(")
	closeIdx := strings.LastIndex(signature, ")")
	if openIdx > closeIdx {
		return nil, &InvalidFunctionSignatureError{Signature: signature}
	}
	return SplitParams(signature[openIdx+1 : closeIdx]), nil
}

// IsDynamic reports whether a type (or a comma-separated list of types)
// contains a dynamic-length element, using the textual heuristic: a
// dynamic-length array suffix, or a "bytes"/"string" type name anywhere in
// the string. This matches ordinary usage against a single type string;
// callers that need to know whether one specific component is dynamic
// (as opposed to "does this list contain a dynamic type anywhere") should
// use typeIsDynamic instead.
func IsDynamic(t string) bool {
	return strings.Contains(t, "[]") || strings.Contains(t, "bytes") || strings.Contains(t, "string")
}

// typeIsDynamic determines, structurally, whether a single component type
// is dynamic: a dynamic-length array, a dynamic scalar (string/bytes), a
// fixed-size array whose element type is dynamic, or a tuple containing
// any dynamic component. Unlike IsDynamic it recurses into tuple/array
// element types rather than testing the raw string, so it gives the right
// answer for e.g. "(uint256,string)[3]" (dynamic, because its element
// tuple is dynamic) or "bytes32[4]" (not dynamic).
func typeIsDynamic(t string) bool {
	isArr, size, err := IsArray(t)
	if err == nil && isArr {
		if size == 0 {
			return true
		}
		return typeIsDynamic(t[:strings.LastIndex(t, "[")])
	}

	isTup, components, err := IsTuple(t)
	if err == nil && isTup {
		for _, c := range components {
			if typeIsDynamic(c) {
				return true
			}
		}
		return false
	}

	return t == "string" || t == "bytes"
}
