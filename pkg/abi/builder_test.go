package abi

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderAddScalars(t *testing.T) {
	types, values, err := NewBuilder().
		Add("address", NewAddress(common.Address{})).
		Add("uint256", mustUint(t, "uint256", 42)).
		Build()

	require.NoError(t, err)
	assert.Equal(t, []string{"address", "uint256"}, types)
	require.Len(t, values, 2)
	assert.Equal(t, common.Address{}, values[0].AsAddress())
}

func TestBuilderAddArray(t *testing.T) {
	types, values, err := NewBuilder().
		AddArray("string", 0, []Value{NewString("a"), NewString("b")}).
		Build()

	require.NoError(t, err)
	assert.Equal(t, []string{"string[]"}, types)
	assert.True(t, values[0].IsGroup())
}

func TestBuilderAddFixedArrayLengthMismatch(t *testing.T) {
	_, _, err := NewBuilder().
		AddArray("string", 3, []Value{NewString("a")}).
		Build()
	require.Error(t, err)
}

func TestBuilderAddTuple(t *testing.T) {
	types, values, err := NewBuilder().
		AddTuple([]string{"uint256", "address"}, []Value{mustUint(t, "uint256", 1), NewAddress(common.Address{})}).
		Build()

	require.NoError(t, err)
	assert.Equal(t, []string{"(uint256,address)"}, types)
	assert.True(t, values[0].IsGroup())
}

func TestBuilderRoundTripsThroughEncode(t *testing.T) {
	types, values := NewBuilder().
		Add("address", NewAddress(common.Address{})).
		AddArray("uint256", 2, []Value{mustUint(t, "uint256", 1), mustUint(t, "uint256", 2)}).
		MustBuild()

	encoded, err := Encode(types, values)
	require.NoError(t, err)

	decoded, err := Decode(types, encoded)
	require.NoError(t, err)
	assert.Equal(t, values, decoded)
}

func TestBuilderMustBuildPanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		NewBuilder().AddTuple([]string{"uint256"}, nil).MustBuild()
	})
}
