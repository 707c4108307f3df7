//
// Copyright (c) 2026 mpcfield Authors
//
// All rights reserved.
//

// Package field defines the abstract prime-field contract that
// MpcField lifts. Any concrete field satisfying Element may be
// substituted; this module ships one concrete implementation in
// package fp.
package field

import "math/big"

// Element is an immutable, equatable, serializable field value.
// Implementations must be safe for concurrent reads: every method
// returns a new Element rather than mutating the receiver.
type Element interface {
	// Add returns the sum of this element and other. Panics if other
	// belongs to a different field (different modulus).
	Add(other Element) Element
	// Sub returns the difference of this element and other.
	Sub(other Element) Element
	// Mul returns the product of this element and other.
	Mul(other Element) Element
	// Neg returns the additive inverse.
	Neg() Element
	// Square returns this element multiplied by itself.
	Square() Element
	// Double returns this element added to itself.
	Double() Element
	// Inverse returns the multiplicative inverse, or ok=false if the
	// element is zero.
	Inverse() (inv Element, ok bool)
	// Equal reports whether two elements of the same field hold the
	// same value.
	Equal(other Element) bool
	// IsZero reports whether the element is the additive identity.
	IsZero() bool
	// IsOne reports whether the element is the multiplicative
	// identity.
	IsOne() bool
	// Bytes returns the canonical fixed-width little-endian encoding.
	Bytes() []byte
	// SetBytes decodes a canonical encoding produced by Bytes and
	// returns the corresponding Element in the same field as the
	// receiver. The receiver's own value is not read, only its field
	// (modulus); it exists purely so callers without a zero-value
	// constructor can still decode into the right field.
	SetBytes(b []byte) Element
	// String renders the element in decimal.
	String() string
}

// PrimeField is an Element that additionally exposes its big.Int
// representation and characteristic, needed for the FFT-field and
// prime-field contracts MpcField must implement.
type PrimeField interface {
	Element
	// BigInt returns the canonical non-negative representative in
	// [0, Modulus).
	BigInt() *big.Int
	// Modulus returns the field's characteristic.
	Modulus() *big.Int
	// ByteLen returns the width, in bytes, of Bytes()'s output.
	ByteLen() int
}

// FftField is a PrimeField that additionally knows a two-adic root of
// unity, needed by FFT-based SNARK provers (Groth16, Marlin).
type FftField interface {
	PrimeField
	// TwoAdicRootOfUnity returns a generator of the 2-Sylow subgroup
	// of the multiplicative group.
	TwoAdicRootOfUnity() Element
	// TwoAdicity returns the exponent s such that Modulus()-1 = 2^s * t
	// for odd t.
	TwoAdicity() uint
}
