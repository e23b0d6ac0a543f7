package abi

import "golang.org/x/crypto/sha3"

// Selector computes the 4-byte function selector for a signature such as
// "transfer(address,uint256)": the first 4 bytes of the signature's
// keccak256 hash.
func Selector(signature string) [4]byte {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write([]byte(signature))
	sum := hasher.Sum(nil)

	var sel [4]byte
	copy(sel[:], sum[:4])
	return sel
}

// EncodeWithSelector encodes values against types and prepends selector,
// for callers that have already derived (or were given) the selector.
func EncodeWithSelector(selector [4]byte, types []string, values []Value) ([]byte, error) {
	body, err := Encode(types, values)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, 4+len(body))
	out = append(out, selector[:]...)
	out = append(out, body...)
	return out, nil
}

// EncodeWithSignature derives the selector from signature, extracts its
// parameter types, and encodes values, returning selector||body.
func EncodeWithSignature(signature string, values []Value) ([]byte, error) {
	types, err := GetParamTypes(signature)
	if err != nil {
		return nil, err
	}
	return EncodeWithSelector(Selector(signature), types, values)
}

// DecodeWithSignature verifies that data begins with the selector derived
// from signature, then decodes the remaining bytes against its parameter
// types.
func DecodeWithSignature(signature string, data []byte) ([]Value, error) {
	want := Selector(signature)
	if len(data) < 4 {
		return nil, &ShortBufferError{Needed: 4, Got: len(data)}
	}
	var got [4]byte
	copy(got[:], data[:4])
	if got != want {
		return nil, &InvalidSelectorError{Signature: signature, Want: want, Got: got}
	}

	types, err := GetParamTypes(signature)
	if err != nil {
		return nil, err
	}
	return Decode(types, data[4:])
}
