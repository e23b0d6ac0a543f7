package abi

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

const slotSize = 32

// Width returns the canonical unpadded byte width of an elementary type,
// or -1 for a dynamic-length scalar (string/bytes).
func Width(typeName string) (int, error) {
	switch typeName {
	case "address":
		return 20, nil
	case "bool":
		return 1, nil
	case "string", "bytes":
		return -1, nil
	}

	if n, ok := fixedWidthSuffix(typeName, "uint"); ok {
		return n, nil
	}
	if n, ok := fixedWidthSuffix(typeName, "int"); ok {
		return n, nil
	}
	if strings.HasPrefix(typeName, "bytes") {
		n, err := strconv.Atoi(typeName[len("bytes"):])
		if err == nil && n >= 1 && n <= 32 {
			return n, nil
		}
	}

	return 0, &UnsupportedTypeError{Type: typeName}
}

func fixedWidthSuffix(typeName, prefix string) (int, bool) {
	if !strings.HasPrefix(typeName, prefix) {
		return 0, false
	}
	bits, err := strconv.Atoi(typeName[len(prefix):])
	if err != nil || bits < 8 || bits > 256 || bits%8 != 0 {
		return 0, false
	}
	return bits / 8, true
}

func padLeft(b []byte, n int) []byte {
	if len(b) >= n {
		return b
	}
	out := make([]byte, n)
	copy(out[n-len(b):], b)
	return out
}

func padRight(b []byte, n int) []byte {
	if len(b) >= n {
		return b
	}
	out := make([]byte, n)
	copy(out, b)
	return out
}

// validateScalar checks that payload is a well-formed canonical value for
// typeName: the exact byte width for fixed-width elementary types, any
// length for string/bytes.
func validateScalar(typeName string, payload []byte) error {
	width, err := Width(typeName)
	if err != nil {
		return err
	}
	if width >= 0 && len(payload) != width {
		return &InvalidTypeAndValueError{
			Type:   typeName,
			Detail: "expected " + strconv.Itoa(width) + " bytes, got " + strconv.Itoa(len(payload)),
		}
	}
	return nil
}

// encodeUint renders v as the big-endian two's-complement-free (unsigned)
// representation of the named uintN type, failing if v is negative or
// overflows the type's width.
func encodeUint(typeName string, v *big.Int) ([]byte, error) {
	width, err := Width(typeName)
	if err != nil {
		return nil, err
	}
	if v.Sign() < 0 {
		return nil, &InvalidTypeAndValueError{Type: typeName, Detail: "negative value for unsigned type"}
	}
	max := new(big.Int).Lsh(big.NewInt(1), uint(width*8))
	if v.Cmp(max) >= 0 {
		return nil, &InvalidTypeAndValueError{Type: typeName, Detail: "value overflows " + typeName}
	}
	buf := make([]byte, width)
	v.FillBytes(buf)
	return buf, nil
}

// encodeInt renders v as the big-endian two's-complement representation of
// the named intN type, failing if v is out of range for the type's width.
func encodeInt(typeName string, v *big.Int) ([]byte, error) {
	width, err := Width(typeName)
	if err != nil {
		return nil, err
	}
	bits := uint(width * 8)
	lowerBound := new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), bits-1))
	upperBound := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), bits-1), big.NewInt(1))
	if v.Cmp(lowerBound) < 0 || v.Cmp(upperBound) > 0 {
		return nil, &InvalidTypeAndValueError{Type: typeName, Detail: "value out of range for " + typeName}
	}

	u := new(big.Int).Set(v)
	if v.Sign() < 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), bits)
		u.Add(v, mod)
	}
	buf := make([]byte, width)
	u.FillBytes(buf)
	return buf, nil
}

// decodeUint interprets b (big-endian, unsigned) as a non-negative integer.
func decodeUint(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// decodeInt interprets b (big-endian, two's complement, len(b) bytes wide)
// as a signed integer.
func decodeInt(b []byte) *big.Int {
	v := new(big.Int).SetBytes(b)
	bits := uint(len(b) * 8)
	signBit := new(big.Int).Lsh(big.NewInt(1), bits-1)
	if v.Cmp(signBit) >= 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), bits)
		v.Sub(v, mod)
	}
	return v
}

func isSignedIntType(typeName string) bool {
	return strings.HasPrefix(typeName, "int")
}

func isUnsignedIntType(typeName string) bool {
	return strings.HasPrefix(typeName, "uint")
}

// --- convenience constructors: build a validated Leaf Value ---

// NewUint builds a Leaf for a uintN type from an arbitrary-precision
// integer.
func NewUint(typeName string, v *big.Int) (Value, error) {
	if !isUnsignedIntType(typeName) {
		return Value{}, &UnsupportedTypeError{Type: typeName}
	}
	b, err := encodeUint(typeName, v)
	if err != nil {
		return Value{}, err
	}
	return Leaf(typeName, b), nil
}

// NewInt builds a Leaf for an intN type from an arbitrary-precision
// integer.
func NewInt(typeName string, v *big.Int) (Value, error) {
	if !isSignedIntType(typeName) {
		return Value{}, &UnsupportedTypeError{Type: typeName}
	}
	b, err := encodeInt(typeName, v)
	if err != nil {
		return Value{}, err
	}
	return Leaf(typeName, b), nil
}

// NewBool builds a Leaf for the bool type.
func NewBool(v bool) Value {
	if v {
		return Leaf("bool", []byte{1})
	}
	return Leaf("bool", []byte{0})
}

// NewAddress builds a Leaf for the address type.
func NewAddress(addr common.Address) Value {
	return Leaf("address", append([]byte(nil), addr.Bytes()...))
}

// NewFixedBytes builds a Leaf for a bytesN type. len(b) must equal N.
func NewFixedBytes(n int, b []byte) (Value, error) {
	typeName := "bytes" + strconv.Itoa(n)
	if err := validateScalar(typeName, b); err != nil {
		return Value{}, err
	}
	return Leaf(typeName, append([]byte(nil), b...)), nil
}

// NewBytes builds a Leaf for the dynamic bytes type.
func NewBytes(b []byte) Value {
	return Leaf("bytes", append([]byte(nil), b...))
}

// NewString builds a Leaf for the string type.
func NewString(s string) Value {
	return Leaf("string", []byte(s))
}

// --- convenience accessors: read back a Leaf Value ---

// AsUint interprets a Leaf's payload as an unsigned integer.
func (v Value) AsUint() *big.Int {
	return decodeUint(v.payload)
}

// AsInt interprets a Leaf's payload as a signed (two's complement) integer.
func (v Value) AsInt() *big.Int {
	return decodeInt(v.payload)
}

// AsBool interprets a Leaf's payload as a bool.
func (v Value) AsBool() bool {
	return len(v.payload) > 0 && v.payload[0] != 0
}

// AsAddress interprets a Leaf's payload as an address.
func (v Value) AsAddress() common.Address {
	return common.BytesToAddress(v.payload)
}

// AsString interprets a Leaf's payload as UTF-8 text.
func (v Value) AsString() string {
	return string(v.payload)
}

// AsBytes returns a Leaf's raw payload.
func (v Value) AsBytes() []byte {
	return v.payload
}
