// Copyright (c) 2025 github.com/kslamph
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// Package abi implements Ethereum contract ABI encoding: the calldata
// layout used to call contract functions, and the packed format used for
// off-chain hashing.
//
// # Type Strings
//
// Types are named the way Solidity names them in a function signature:
// elementary types (uint256, int8, bool, address, bytesN, bytes, string),
// fixed and dynamic arrays (uint256[3], address[]), and tuples
// ((uint256,address), nestable and arbitrarily composable with arrays).
// GetParamTypes extracts a parameter list from a full signature such as
// "transfer(address,uint256)"; SplitParams, IsArray and IsTuple are the
// lower-level grammar it's built from.
//
// # Values
//
// A Value is either a scalar Leaf carrying its canonical unpadded payload,
// or a Group of child Values standing for a tuple's components or an
// array's elements. The New* constructors in scalar.go build validated
// Leaf values from Go types (*big.Int, bool, common.Address, strings,
// byte slices); Builder assembles a matching type-string/Value pair list
// for Encode without requiring the two slices be kept in lockstep by hand.
//
//	amountValue, err := abi.NewUint("uint256", amount)
//	b := abi.NewBuilder().
//		Add("address", abi.NewAddress(to)).
//		Add("uint256", amountValue)
//	types, values := b.MustBuild()
//	calldata, err := abi.EncodeWithSelector(abi.Selector("transfer(address,uint256)"), types, values)
//
// # Encoding
//
// Encode implements the standard head/tail calldata layout: every
// top-level (and, recursively, every tuple/array component) gets a fixed
// head slot, holding either the value in place (static types) or a 32-byte
// offset into the tail (dynamic types — string, bytes, dynamic arrays, and
// anything containing one). EncodePacked implements encodePacked instead:
// no padding, no offsets, straight concatenation — a format only safe to
// produce, never safe to decode back.
//
// # Configuration
//
// The package-level Encode/Decode/EncodePacked/Selector functions use
// sane defaults. New builds a Codec with functional options (WithLogger,
// WithMaxDepth) for callers that want diagnostics on ambiguous packed
// encodings or a tighter recursion bound against adversarial type
// strings.
package abi
