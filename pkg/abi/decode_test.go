package abi

import (
	"encoding/hex"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRoundTripRegular(t *testing.T) {
	types := []string{"uint256", "uint256", "address"}
	values := []Value{
		mustUint(t, "uint256", 1),
		mustUint(t, "uint256", 2),
		NewAddress(common.Address{}),
	}

	encoded, err := Encode(types, values)
	require.NoError(t, err)

	decoded, err := Decode(types, encoded)
	require.NoError(t, err)
	assert.Equal(t, values, decoded)
}

func TestDecodeRoundTripArray(t *testing.T) {
	types := []string{"address", "string[2]", "uint256"}
	values := []Value{
		NewAddress(common.Address{}),
		Group([]Value{NewString("Hello, world!"), NewString("Hello, world!")}),
		mustUint(t, "uint256", 1),
	}

	encoded, err := Encode(types, values)
	require.NoError(t, err)

	decoded, err := Decode(types, encoded)
	require.NoError(t, err)
	assert.Equal(t, values, decoded)
}

func TestDecodeRoundTripDynamicTuple(t *testing.T) {
	types := []string{"address", "(string[],uint256,uint8)", "uint256"}
	values := []Value{
		NewAddress(common.Address{}),
		Group([]Value{
			Group([]Value{NewString("Hello, world!"), NewString("Hello, world!")}),
			mustUint(t, "uint256", 1),
			mustUint(t, "uint8", 1),
		}),
		mustUint(t, "uint256", 1),
	}

	encoded, err := Encode(types, values)
	require.NoError(t, err)

	decoded, err := Decode(types, encoded)
	require.NoError(t, err)
	assert.Equal(t, values, decoded)
}

// TestDecodeRoundTripArrayOfTuples exercises a dynamic-length array whose
// element type is itself a tuple with more than one static-width component
// per element — the scenario where advancing the cursor by a flat
// 32*elementCount, instead of each tuple's exact head width, silently
// misaligns every element after the first whose components don't all
// individually occupy one slot.
func TestDecodeRoundTripArrayOfTuples(t *testing.T) {
	types := []string{"(uint256,uint256,uint256)[]"}
	values := []Value{
		Group([]Value{
			Group([]Value{mustUint(t, "uint256", 1), mustUint(t, "uint256", 2), mustUint(t, "uint256", 3)}),
			Group([]Value{mustUint(t, "uint256", 4), mustUint(t, "uint256", 5), mustUint(t, "uint256", 6)}),
			Group([]Value{mustUint(t, "uint256", 7), mustUint(t, "uint256", 8), mustUint(t, "uint256", 9)}),
		}),
	}

	encoded, err := Encode(types, values)
	require.NoError(t, err)

	decoded, err := Decode(types, encoded)
	require.NoError(t, err)
	assert.Equal(t, values, decoded)
}

func TestDecodeRoundTripStaticTuple(t *testing.T) {
	types := []string{"(uint256,address)", "uint8"}
	values := []Value{
		Group([]Value{mustUint(t, "uint256", 7), NewAddress(common.Address{})}),
		mustUint(t, "uint8", 9),
	}

	encoded, err := Encode(types, values)
	require.NoError(t, err)

	decoded, err := Decode(types, encoded)
	require.NoError(t, err)
	assert.Equal(t, values, decoded)
}

func TestDecodeStaticFixedArrayOfTuplesFollowedByMoreArgs(t *testing.T) {
	// The fixed array occupies 4 static slots in the head; the trailing
	// uint256 must be read from exactly the right offset afterwards,
	// which only happens if the array's consumed width was computed
	// exactly rather than assumed.
	types := []string{"(uint256,uint256)[2]", "uint256"}
	values := []Value{
		Group([]Value{
			Group([]Value{mustUint(t, "uint256", 1), mustUint(t, "uint256", 2)}),
			Group([]Value{mustUint(t, "uint256", 3), mustUint(t, "uint256", 4)}),
		}),
		mustUint(t, "uint256", 99),
	}

	encoded, err := Encode(types, values)
	require.NoError(t, err)

	decoded, err := Decode(types, encoded)
	require.NoError(t, err)
	assert.Equal(t, values, decoded)
}

func TestDecodeShortBuffer(t *testing.T) {
	_, err := Decode([]string{"uint256"}, []byte{0x01, 0x02})
	require.Error(t, err)
	var target *ShortBufferError
	assert.ErrorAs(t, err, &target)
}

func TestDecodeFixedBytesAlignment(t *testing.T) {
	v, err := NewFixedBytes(3, []byte{0xaa, 0xbb, 0xcc})
	require.NoError(t, err)

	encoded, err := Encode([]string{"bytes3"}, []Value{v})
	require.NoError(t, err)
	// Right zero-padded: data sits in the first 3 bytes of the slot.
	assert.Equal(t, "aabbcc0000000000000000000000000000000000000000000000000000000000", hex.EncodeToString(encoded))

	decoded, err := Decode([]string{"bytes3"}, encoded)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xaa, 0xbb, 0xcc}, decoded[0].Payload())
}

func TestDecodeInvalidUTF8String(t *testing.T) {
	// Encode the malformed payload as plain bytes (which carries no
	// encoding constraint), then decode the same wire bytes as a string,
	// where the loose 0xff byte isn't valid UTF-8.
	encoded, err := Encode([]string{"bytes"}, []Value{NewBytes([]byte{0xff, 0xfe})})
	require.NoError(t, err)

	_, err = Decode([]string{"string"}, encoded)
	require.Error(t, err)
	var target *InvalidTypeAndValueError
	assert.ErrorAs(t, err, &target)
}
