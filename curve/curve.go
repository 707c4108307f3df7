//
// Copyright (c) 2026 mpcfield Authors
//
// All rights reserved.
//

// Package curve supplies a frozen constant table: base-field and
// scalar-field moduli, short-Weierstrass coefficients, generator,
// cofactor and cofactor-inverse, for a single demo-sized
// pairing-friendly curve. Concrete curve parameters are deliberately
// kept out of the MPC arithmetic core; this package is the constant
// block the core consumes, modeled on the constant layout of
// original_source/curves/cp6_782/src/curves/g1.rs, but with a small
// modulus so tests run fast.
//
// The modulus chosen, 2^64-2^32+1, is the well known "Goldilocks"
// prime: it has a large two-adic subgroup (2-adicity 32), which Groth16
// and Marlin's FFT-based provers require, while staying small enough
// that big.Int arithmetic in tests is instant. Base field and scalar
// field are deliberately the same field: this is not a
// cryptographically accurate embedding-degree-6 Cocks-Pinch curve,
// only a demo stand-in exercising the MPC field lift's dispatch rules;
// the real pairing math (Miller loop, final exponentiation) a
// production Cocks-Pinch-6 curve needs stays out of this core's
// scope, with curve parameters specified only at the interface level.
package curve

import (
	"math/big"

	"github.com/Bhavya2662/collaborative-zksnark/field"
	"github.com/Bhavya2662/collaborative-zksnark/field/fp"
)

var (
	// Modulus is the shared base-field/scalar-field modulus: 2^64 - 2^32 + 1.
	Modulus = mustParse("18446744069414584321")

	// A is the short-Weierstrass coefficient A in y^2 = x^3 + Ax + B.
	A = mustParse("0")

	// B is the short-Weierstrass coefficient B.
	B = mustParse("5")

	// GeneratorX is the x-coordinate of the curve generator.
	GeneratorX = mustParse("1")

	// GeneratorY is the y-coordinate of the curve generator, a square
	// root of x^3+Ax+B mod Modulus.
	GeneratorY = mustParse("18302629980867133697")

	// Cofactor is the curve's cofactor (1 for this demo curve: the
	// full group is prime order).
	Cofactor = mustParse("1")

	// CofactorInv is the inverse of Cofactor mod Modulus.
	CofactorInv = mustParse("1")
)

func mustParse(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("curve: invalid constant " + s)
	}
	return v
}

// NewFq constructs a base-field element.
func NewFq(v *big.Int) *fp.Element {
	return fp.New(Modulus, v)
}

// NewFr constructs a scalar-field element.
func NewFr(v *big.Int) *fp.Element {
	return fp.New(Modulus, v)
}

// FqZero and FqOne are the base field's identities, exposed so callers
// don't need to round-trip through big.Int for common constants.
func FqZero() field.Element { return fp.Zero(Modulus) }
func FqOne() field.Element  { return fp.One(Modulus) }
