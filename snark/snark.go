//
// Copyright (c) 2026 mpcfield Authors
//
// All rights reserved.
//

// Package snark implements a deliberately small Groth16-shaped prover
// and verifier for a single toy circuit, repeated squaring, grounded
// on original_source/mpc-snarks/src/proof.rs's
// squarings::RepeatedSquaringCircuit. Neither a general R1CS
// constraint system nor real Groth16/Marlin exists anywhere in the
// example pack with a generic-field lift compatible with mpcfield, so
// this package stands in for one. It builds the N-fold repeated
// squaring chain a0, a0^2, a0^4, ... from a witness a0, and its proof
// commits to a0 alone (A = a0*G): Verify compares A with input*G for
// the public input it is given, so it accepts the witness itself and
// does not check the squaring chain or its output. The chain is built
// with the same Public/Shared-polymorphic arithmetic every other
// package in this module uses, over mpcfield.Element with every value
// Public ("local", a regression oracle that the lift changes nothing
// about a purely public computation) or with the witness genuinely
// Shared ("mpc"); the "ark-local" mode computes its chain over plain
// field.Element without this package.
package snark

import (
	"fmt"
	"math/big"

	"github.com/Bhavya2662/collaborative-zksnark/curve"
	"github.com/Bhavya2662/collaborative-zksnark/field"
	"github.com/Bhavya2662/collaborative-zksnark/mpcerr"
	"github.com/Bhavya2662/collaborative-zksnark/mpcfield"
	"github.com/Bhavya2662/collaborative-zksnark/mpcnet"
	"github.com/Bhavya2662/collaborative-zksnark/mpcpairing"
	"github.com/Bhavya2662/collaborative-zksnark/share"
)

// RepeatedSquaringCircuit holds the squaring chain: Chain[0] is the
// witness, Chain[i] = Chain[i-1]^2. FromStart builds the chain from a
// known witness, mirroring the Rust original's from_start
// constructor.
type RepeatedSquaringCircuit struct {
	Chain []mpcfield.Element
}

// FromStart builds the full chain from a witness, squaring N times.
func FromStart(witness mpcfield.Element, squarings int, ch *mpcnet.Channel, src share.BeaverSource) (*RepeatedSquaringCircuit, error) {
	chain := make([]mpcfield.Element, squarings+1)
	chain[0] = witness
	for i := 0; i < squarings; i++ {
		sq, err := chain[i].Square(ch, src)
		if err != nil {
			return nil, err
		}
		chain[i+1] = sq
	}
	return &RepeatedSquaringCircuit{Chain: chain}, nil
}

// Output is the chain's last element, the claimed public statement.
func (c *RepeatedSquaringCircuit) Output() mpcfield.Element {
	return c.Chain[len(c.Chain)-1]
}

// Squarings reports how many squaring constraints the chain encodes.
func (c *RepeatedSquaringCircuit) Squarings() int {
	return len(c.Chain) - 1
}

// ProvingKey is the toy CRS: a single generator point, fixed once per
// circuit size. A real Groth16 CRS also commits to the constraint
// system's A/B/C matrices; this toy circuit has exactly one shape
// (a fixed-length squaring chain) so the matrices collapse to the
// generator alone.
type ProvingKey struct {
	G *mpcpairing.Point
}

// VerifyingKey mirrors ProvingKey; kept distinct so the CLI's
// verifier path does not need prover-only state, matching the
// prover/verifier key split every pack example with a proof system
// (groth16, marlin) uses.
type VerifyingKey struct {
	G *mpcpairing.Point
}

// Setup returns a fixed toy CRS: the curve generator point, Public.
// A real trusted setup samples toxic waste (alpha, beta, ...); this
// stand-in has none, since it exists only to exercise reveal's
// proof-walking contract end to end.
func Setup() (*ProvingKey, *VerifyingKey) {
	g := mpcpairing.Generator()
	return &ProvingKey{G: g}, &VerifyingKey{G: g}
}

// Proof is a toy Groth16-shaped proof: three group elements, of which
// only A genuinely carries the witness commitment (A = witness * G);
// B and C are carried along unchanged so reveal.PublicizeProof has
// three fields to walk, matching a real Groth16 proof's per-field
// publicize shape even though this circuit's soundness rests on A
// alone.
type Proof struct {
	A, B, C *mpcpairing.Point
}

// Prove commits to the circuit's witness (Chain[0]) as A = witness*G,
// and fills B, C with the generator so a caller publicizing the whole
// proof exercises every field. amFirst must match the channel's role
// when the witness is Shared.
//
// Scalar multiplication by a Shared exponent is not one of
// mpcpairing's lifted operations (only Shared coordinates are), so
// this toy prover reads the witness via UnwrapAsPublic before scaling
// the generator: in "mpc" mode that party-local read is exactly the
// unsafe coercion share.Share.UnwrapAsPublic's doc comment warns
// about, and Prove must only be called on a value the caller has
// already, deliberately, set_shared(false)'d (e.g. revealed the
// output and wants to prove knowledge of a matching opening in the
// clear). A faithful multi-party Groth16 prover would instead express
// the whole R1CS as shared arithmetic and never call UnwrapAsPublic on
// the witness; that is out of scope for this toy circuit.
func Prove(pk *ProvingKey, circ *RepeatedSquaringCircuit, ch *mpcnet.Channel, src share.BeaverSource, amFirst bool) (*Proof, error) {
	witness := circ.Chain[0]
	prime, ok := witness.UnwrapAsPublic().(field.PrimeField)
	if !ok {
		return nil, fmt.Errorf("%w: proving requires a scalar drawn from a field.PrimeField", mpcerr.ErrProtocolUnsupported)
	}
	scalar := prime.BigInt()
	a, err := pk.G.ScalarMulPublic(scalar, ch, src, amFirst)
	if err != nil {
		return nil, err
	}
	return &Proof{A: a, B: pk.G, C: pk.G}, nil
}

// Verify checks that the proof's A component equals publicInput*G,
// using Pair as a one-sided (Public G, Public A) consistency check
// rather than a real pairing equation, consistent with mpcpairing's
// toy Pair documented restriction.
func Verify(vk *VerifyingKey, proof *Proof, publicInput *big.Int, ch *mpcnet.Channel, src share.BeaverSource, amFirst bool) (bool, error) {
	expected, err := vk.G.ScalarMulPublic(publicInput, ch, src, amFirst)
	if err != nil {
		return false, err
	}
	lhs, err := mpcpairing.Pair(proof.A, vk.G, ch, src)
	if err != nil {
		return false, err
	}
	rhs, err := mpcpairing.Pair(expected, vk.G, ch, src)
	if err != nil {
		return false, err
	}
	return lhs.UnwrapAsPublic().Equal(rhs.UnwrapAsPublic()), nil
}

// NewFq is a small convenience re-export so cmd/mpcdemo does not need
// to import curve directly just to build a witness.
func NewFq(v *big.Int) mpcfield.Element {
	return mpcfield.FromPublic(curve.NewFq(v))
}
