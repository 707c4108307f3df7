//
// Copyright (c) 2026 mpcfield Authors
//
// All rights reserved.
//

// Package mpcpairing lifts short-Weierstrass group operations onto
// points whose coordinates are mpcfield.Element values, plus a toy
// bilinear pairing used only to exercise the sharing-restriction rule
// between Public and Shared coordinates.
//
// Real embedding-degree-6 pairing math (Miller loop, final
// exponentiation) is out of this core's scope, exactly as
// package curve's doc comment explains; Pair here is a deliberately
// simplified stand-in so mpcpairing can still enforce and test the
// restriction that a pairing needs at least one Public-tagged side.
package mpcpairing

import (
	"fmt"
	"math/big"

	"github.com/Bhavya2662/collaborative-zksnark/curve"
	"github.com/Bhavya2662/collaborative-zksnark/mpcerr"
	"github.com/Bhavya2662/collaborative-zksnark/mpcfield"
	"github.com/Bhavya2662/collaborative-zksnark/mpcnet"
	"github.com/Bhavya2662/collaborative-zksnark/share"
)

// Point is an affine short-Weierstrass point (G1, and — since the
// toy curve's base and scalar fields coincide — G2) whose coordinates
// may independently be Public or Shared.
type Point struct {
	X, Y     mpcfield.Element
	Infinity bool
}

// Generator returns the curve's base point as a Public-coordinate
// Point.
func Generator() *Point {
	return &Point{
		X: mpcfield.FromPublic(curve.NewFq(curve.GeneratorX)),
		Y: mpcfield.FromPublic(curve.NewFq(curve.GeneratorY)),
	}
}

// Identity returns the point at infinity, the group identity.
func Identity() *Point {
	return &Point{Infinity: true}
}

// Add returns p+q using the standard short-Weierstrass chord-and-
// tangent formulas, lifted to mpcfield.Element so that either point's
// coordinates may be Shared: the division in the slope computation
// becomes a network round via mpcfield.Element.Div whenever its
// operands are Shared, and a local operation otherwise.
func (p *Point) Add(q *Point, ch *mpcnet.Channel, src share.BeaverSource, amFirst bool) (*Point, error) {
	if p.Infinity {
		return q, nil
	}
	if q.Infinity {
		return p, nil
	}

	// The doubling/vertical-line special cases below only matter for
	// Public points in practice (a proof system's fixed setup points,
	// its public inputs): for genuinely Shared points, comparing
	// UnwrapAsPublic's party-local halves is meaningless, so callers
	// combining two Shared points rely on the generic chord formula
	// happening to avoid these branches, the same restriction Pair
	// below already places on its own inputs.
	xEqual := p.X.UnwrapAsPublic().Equal(q.X.UnwrapAsPublic())
	yEqual := p.Y.UnwrapAsPublic().Equal(q.Y.UnwrapAsPublic())
	if xEqual && !yEqual {
		return Identity(), nil
	}

	var num, den mpcfield.Element
	if xEqual && yEqual {
		// Doubling: lambda = (3x^2 + A) / 2y.
		three := mpcfield.FromPublic(curve.NewFq(big.NewInt(3)))
		a := mpcfield.FromPublic(curve.NewFq(curve.A))
		xSq, err := p.X.Square(ch, src)
		if err != nil {
			return nil, err
		}
		threeXSq, err := three.Mul(xSq, ch, src)
		if err != nil {
			return nil, err
		}
		num = threeXSq.Add(a, amFirst)
		den = p.Y.Double(amFirst)
	} else {
		num = p.Y.Sub(q.Y, amFirst)
		den = p.X.Sub(q.X, amFirst)
	}

	lambda, err := num.Div(den, ch, src)
	if err != nil {
		return nil, err
	}
	lambdaSq, err := lambda.Square(ch, src)
	if err != nil {
		return nil, err
	}

	rx := lambdaSq.Sub(p.X, amFirst).Sub(q.X, amFirst)
	diffX := p.X.Sub(rx, amFirst)
	term, err := lambda.Mul(diffX, ch, src)
	if err != nil {
		return nil, err
	}
	ry := term.Sub(p.Y, amFirst)

	return &Point{X: rx, Y: ry}, nil
}

// ScalarMulPublic computes k*p via left-to-right double-and-add, for a
// publicly known scalar k. Each bit costs the network rounds of its
// Point.Add calls (one doubling acc.Add(acc), plus one acc.Add(p) for
// a set bit), i.e. zero rounds per bit when p's coordinates are
// Public, and a handful of rounds per bit when Shared.
func (p *Point) ScalarMulPublic(k *big.Int, ch *mpcnet.Channel, src share.BeaverSource, amFirst bool) (*Point, error) {
	acc := Identity()
	base := p
	bits := k.BitLen()
	for i := bits - 1; i >= 0; i-- {
		var err error
		acc, err = acc.Add(acc, ch, src, amFirst)
		if err != nil {
			return nil, err
		}
		if k.Bit(i) == 1 {
			acc, err = acc.Add(base, ch, src, amFirst)
			if err != nil {
				return nil, err
			}
		}
	}
	return acc, nil
}

// Publicize reveals both coordinates of p in place, applying the same
// open-and-check-equal publicize semantics coordinate-wise.
func (p *Point) Publicize(ch *mpcnet.Channel) error {
	if p.Infinity {
		return nil
	}
	if err := p.X.Publicize(ch); err != nil {
		return err
	}
	return p.Y.Publicize(ch)
}

// GT is the pairing target group's element type: for this toy engine
// it is simply a base-field element, since the demo curve has no real
// extension-field target group.
type GT = mpcfield.Element

// Pair computes a deliberately simplified bilinear pairing,
// e(p, q) = p.X * q.X, sufficient only to exercise the sharing
// restriction and the CLI's pairing-based verifier demo, never a
// substitute for a real Miller-loop pairing. At least one of p, q
// must have Public coordinates; if both are Shared, Pair returns
// mpcerr.ErrProtocolUnsupported rather than silently performing an
// expensive (and, for a toy curve, meaningless) Shared-Shared
// multiplication chain.
func Pair(p, q *Point, ch *mpcnet.Channel, src share.BeaverSource) (GT, error) {
	if p.X.IsShared() && q.X.IsShared() {
		return GT{}, fmt.Errorf("%w: pairing both sides shared", mpcerr.ErrProtocolUnsupported)
	}
	if p.Infinity || q.Infinity {
		return mpcfield.FromPublic(curve.FqOne()), nil
	}
	return p.X.Mul(q.X, ch, src)
}
