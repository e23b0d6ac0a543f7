package abi

import (
	"encoding/hex"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodePackedScalar(t *testing.T) {
	v := mustUint(t, "uint256", 1)
	got, err := EncodePacked([]string{"uint256"}, []Value{v})
	require.NoError(t, err)
	assert.Equal(t, v.Payload(), got)
}

func TestEncodePackedNoPadding(t *testing.T) {
	// Unlike Encode, a uint8 takes exactly 1 byte, not a 32-byte slot.
	got, err := EncodePacked([]string{"uint8", "address"}, []Value{
		mustUint(t, "uint8", 1),
		NewAddress(common.Address{}),
	})
	require.NoError(t, err)
	assert.Len(t, got, 1+20)
}

func TestEncodePackedArrayAppendOrder(t *testing.T) {
	// Packed array elements concatenate in the order given, not reversed.
	arr := Group([]Value{NewFixedBytesT(t, 1, []byte{0x01}), NewFixedBytesT(t, 1, []byte{0x02}), NewFixedBytesT(t, 1, []byte{0x03})})
	got, err := EncodePacked([]string{"bytes1[]"}, []Value{arr})
	require.NoError(t, err)
	assert.Equal(t, "010203", hex.EncodeToString(got))
}

func TestEncodePackedTuple(t *testing.T) {
	tup := Group([]Value{mustUint(t, "uint8", 1), mustUint(t, "uint8", 2)})
	got, err := EncodePacked([]string{"(uint8,uint8)"}, []Value{tup})
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, got)
}

func TestEncodePackedLogsAmbiguousNesting(t *testing.T) {
	var messages []string
	logger := func(format string, args ...any) {
		messages = append(messages, format)
	}

	arr := Group([]Value{
		Group([]Value{NewString("a"), NewString("b")}),
	})
	_, err := encodePacked([]string{"string[][]"}, []Value{arr}, logger)
	require.NoError(t, err)
	assert.NotEmpty(t, messages)
}

func NewFixedBytesT(t *testing.T, n int, b []byte) Value {
	t.Helper()
	v, err := NewFixedBytes(n, b)
	require.NoError(t, err)
	return v
}
