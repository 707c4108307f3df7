//
// Copyright (c) 2026 mpcfield Authors
//
// All rights reserved.
//

// Package fp is a concrete prime-field implementation satisfying
// field.FftField. Values carry their modulus so a single Go type can
// represent both the base field and the scalar field of a curve
// (curve.NewFq and curve.NewFr both return *fp.Element; for the demo
// curve the two fields share one modulus).
//
// Serialization uses a canonical little-endian fixed-width encoding,
// high bits zero padded, generalizing a bytes32/read32ToBig pair
// originally fixed to a 32-byte P-256 field into one that works for
// an arbitrary modulus.
package fp

import (
	"fmt"
	"math/big"

	"github.com/Bhavya2662/collaborative-zksnark/field"
)

// Element is a value of a prime field Z/pZ.
type Element struct {
	v       *big.Int
	modulus *big.Int
	byteLen int
}

var _ field.FftField = (*Element)(nil)

// New reduces v modulo modulus and returns the resulting Element.
func New(modulus, v *big.Int) *Element {
	if modulus == nil || modulus.Sign() <= 0 {
		panic("fp: modulus must be positive")
	}
	z := new(big.Int).Mod(v, modulus)
	if z.Sign() < 0 {
		z.Add(z, modulus)
	}
	return &Element{
		v:       z,
		modulus: modulus,
		byteLen: (modulus.BitLen() + 7) / 8,
	}
}

// Zero returns the additive identity of the field with the given
// modulus.
func Zero(modulus *big.Int) *Element {
	return New(modulus, big.NewInt(0))
}

// One returns the multiplicative identity of the field with the given
// modulus.
func One(modulus *big.Int) *Element {
	return New(modulus, big.NewInt(1))
}

func (e *Element) sameField(other field.Element) *Element {
	o, ok := other.(*Element)
	if !ok {
		panic("fp: operand is not an *fp.Element")
	}
	if e.modulus.Cmp(o.modulus) != 0 {
		panic("fp: operands belong to different fields")
	}
	return o
}

// Add implements field.Element.
func (e *Element) Add(other field.Element) field.Element {
	o := e.sameField(other)
	return New(e.modulus, new(big.Int).Add(e.v, o.v))
}

// Sub implements field.Element.
func (e *Element) Sub(other field.Element) field.Element {
	o := e.sameField(other)
	return New(e.modulus, new(big.Int).Sub(e.v, o.v))
}

// Mul implements field.Element.
func (e *Element) Mul(other field.Element) field.Element {
	o := e.sameField(other)
	return New(e.modulus, new(big.Int).Mul(e.v, o.v))
}

// Neg implements field.Element.
func (e *Element) Neg() field.Element {
	return New(e.modulus, new(big.Int).Neg(e.v))
}

// Square implements field.Element.
func (e *Element) Square() field.Element {
	return New(e.modulus, new(big.Int).Mul(e.v, e.v))
}

// Double implements field.Element.
func (e *Element) Double() field.Element {
	return New(e.modulus, new(big.Int).Lsh(e.v, 1))
}

// Inverse implements field.Element.
func (e *Element) Inverse() (field.Element, bool) {
	if e.v.Sign() == 0 {
		return nil, false
	}
	inv := new(big.Int).ModInverse(e.v, e.modulus)
	if inv == nil {
		return nil, false
	}
	return New(e.modulus, inv), true
}

// Equal implements field.Element.
func (e *Element) Equal(other field.Element) bool {
	o := e.sameField(other)
	return e.v.Cmp(o.v) == 0
}

// IsZero implements field.Element.
func (e *Element) IsZero() bool {
	return e.v.Sign() == 0
}

// IsOne implements field.Element.
func (e *Element) IsOne() bool {
	return e.v.Cmp(big.NewInt(1)) == 0
}

// Bytes implements field.Element.
func (e *Element) Bytes() []byte {
	b := make([]byte, e.byteLen)
	raw := e.v.Bytes()
	// little-endian: reverse raw (big.Int.Bytes is big-endian) into b
	for i, c := range raw {
		b[len(raw)-1-i] = c
	}
	return b
}

// SetBytes implements field.Element.
func (e *Element) SetBytes(b []byte) field.Element {
	be := make([]byte, len(b))
	for i, c := range b {
		be[len(b)-1-i] = c
	}
	return New(e.modulus, new(big.Int).SetBytes(be))
}

// String implements field.Element.
func (e *Element) String() string {
	return e.v.String()
}

// BigInt implements field.PrimeField.
func (e *Element) BigInt() *big.Int {
	return new(big.Int).Set(e.v)
}

// Modulus implements field.PrimeField.
func (e *Element) Modulus() *big.Int {
	return new(big.Int).Set(e.modulus)
}

// ByteLen implements field.PrimeField.
func (e *Element) ByteLen() int {
	return e.byteLen
}

// TwoAdicity returns s such that modulus-1 = 2^s * t for odd t.
func (e *Element) TwoAdicity() uint {
	t := new(big.Int).Sub(e.modulus, big.NewInt(1))
	var s uint
	for t.Bit(0) == 0 {
		t.Rsh(t, 1)
		s++
	}
	return s
}

// TwoAdicRootOfUnity returns a generator of the 2-Sylow subgroup,
// found by raising the smallest quadratic non-residue to the odd
// cofactor t. Adequate for the toy, demo-sized curve this module
// ships; a production field would hardcode the constant instead of
// searching for it at init time.
//
// A candidate g must be rejected unless it is a genuine quadratic
// non-residue (Euler's criterion: g^((p-1)/2) = -1 mod p), not merely
// a value with g^t != 1: the 2-adic valuation of g's multiplicative
// order equals s exactly when g is a non-residue, which is exactly
// the property that guarantees g^t has order 2^s, the full 2-Sylow
// subgroup. A candidate that merely fails g^t = 1 is not enough — it
// can still have a strictly smaller power-of-two order than 2^s.
func (e *Element) TwoAdicRootOfUnity() field.Element {
	pMinus1 := new(big.Int).Sub(e.modulus, big.NewInt(1))
	t := new(big.Int).Set(pMinus1)
	for t.Bit(0) == 0 {
		t.Rsh(t, 1)
	}
	half := new(big.Int).Rsh(pMinus1, 1)
	minusOne := new(big.Int).Sub(e.modulus, big.NewInt(1))

	for g := int64(2); g < 1_000_000; g++ {
		cand := big.NewInt(g)
		if new(big.Int).Exp(cand, half, e.modulus).Cmp(minusOne) != 0 {
			continue // cand is a residue (or zero); not eligible
		}
		root := new(big.Int).Exp(cand, t, e.modulus)
		return New(e.modulus, root)
	}
	panic(fmt.Sprintf("fp: could not find two-adic root of unity for modulus %s", e.modulus))
}
