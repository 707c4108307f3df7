//
// Copyright (c) 2026 mpcfield Authors
//
// All rights reserved.
//

// Package share implements an additive secret sharing of a
// field.Element, its local operations (add, sub, neg, scale, shift),
// and its protocol operations (open, mul, inv, div) that consume a
// mpcnet.Channel and a BeaverSource.
//
// Generalized from an SPDZ-style additive-sharing implementation
// (AddShare/SubShare/MulShare/InvShare/openTwoShares) hardcoded to
// *big.Int over a single fixed base field; here the same algorithm
// runs over any field.Element.
package share

import (
	"fmt"

	"github.com/Bhavya2662/collaborative-zksnark/field"
	"github.com/Bhavya2662/collaborative-zksnark/mpcerr"
	"github.com/Bhavya2662/collaborative-zksnark/mpcnet"
)

// BeaverSource supplies correlated randomness: multiplication
// triples (a, b, c) with a*b = c, and inversion pairs (r, r^-1), both
// held in additively shared form. Declared here, alongside the Share
// type that consumes it, rather than in package beaver, so that
// package beaver (which provides concrete Source implementations) can
// depend on package share without an import cycle.
type BeaverSource interface {
	// Triple returns one fresh multiplication triple.
	Triple() (a, b, c *Share, err error)
	// InvPair returns one fresh inversion pair.
	InvPair() (r, rInv *Share, err error)
}

// Share is a party's half of an additive sharing of a field.Element:
// this party holds s, the peer holds s', and s+s' is the true value.
// Share is immutable; every operation returns a new Share.
type Share struct {
	v field.Element
}

// New wraps a locally held value as a share: the true value is the
// sum of both parties' locally supplied v.
func New(v field.Element) *Share {
	return &Share{v: v}
}

// FromPublic injects a publicly known constant b into a share by
// adding it to party 0's share only: party 0 holds b, party 1 holds
// zero (the field's additive identity, same field as b).
func FromPublic(b field.Element, amFirst bool) *Share {
	if amFirst {
		return &Share{v: b}
	}
	return &Share{v: b.Sub(b)}
}

// Value returns the party-local share value. It does not reveal the
// true value; callers must not treat it as public data.
func (s *Share) Value() field.Element {
	return s.v
}

// Add returns a share of v1+v2, computed entirely locally.
func (s *Share) Add(other *Share) *Share {
	return &Share{v: s.v.Add(other.v)}
}

// Sub returns a share of v1-v2, computed entirely locally.
func (s *Share) Sub(other *Share) *Share {
	return &Share{v: s.v.Sub(other.v)}
}

// Neg returns a share of -v, computed entirely locally.
func (s *Share) Neg() *Share {
	return &Share{v: s.v.Neg()}
}

// Scale returns a share of k*v for a public scalar k, computed
// entirely locally.
func (s *Share) Scale(k field.Element) *Share {
	return &Share{v: s.v.Mul(k)}
}

// Shift returns a share of v+k for a public constant k, implemented
// by adding k to party 0's share only.
func (s *Share) Shift(k field.Element, amFirst bool) *Share {
	if amFirst {
		return &Share{v: s.v.Add(k)}
	}
	return s
}

// UnwrapAsPublic returns the party-local share value as if it were
// public. This is an unsafe coercion: it must only be called inside a
// deliberate declassification (mpcfield.Element.SetShared(false)),
// never on genuinely secret data.
func (s *Share) UnwrapAsPublic() field.Element {
	return s.v
}

// Open is the one-round network operation that reconstructs the true
// value: each party sends its share and receives the peer's, and both
// return s+s'.
func (s *Share) Open(ch *mpcnet.Channel) (field.Element, error) {
	resp, err := ch.Exchange(s.v.Bytes())
	if err != nil {
		return nil, err
	}
	peer := s.v.SetBytes(resp)
	return s.v.Add(peer), nil
}

// openTwo opens two shares in a single fused exchange, used by Mul to
// open its D, E pair in one network round instead of two.
func openTwo(ch *mpcnet.Channel, s1, s2 *Share) (field.Element, field.Element, error) {
	payload := append(append([]byte{}, s1.v.Bytes()...), s2.v.Bytes()...)
	n1 := len(s1.v.Bytes())

	resp, err := ch.Exchange(payload)
	if err != nil {
		return nil, nil, err
	}
	if len(resp) != len(payload) {
		return nil, nil, fmt.Errorf("%w: %w: openTwo: got %d bytes, want %d", mpcerr.ErrChannelTransport, mpcerr.ErrSerialization, len(resp), len(payload))
	}
	p1 := s1.v.SetBytes(resp[:n1])
	p2 := s2.v.SetBytes(resp[n1:])

	open1 := s1.v.Add(p1)
	open2 := s2.v.Add(p2)
	return open1, open2, nil
}

// Mul computes a share of x*y via Beaver multiplication: given a
// triple (a,b,c) with a*b=c, compute d=x-a, e=y-b, open d and e in one
// round, then locally reconstruct z = c + D*b + E*a + D*E (the D*E
// term added to party 0's share only, so it is not double counted).
func (s *Share) Mul(other *Share, ch *mpcnet.Channel, src BeaverSource) (*Share, error) {
	a, b, c, err := src.Triple()
	if err != nil {
		return nil, err
	}

	d := s.Sub(a)
	e := other.Sub(b)

	D, E, err := openTwo(ch, d, e)
	if err != nil {
		return nil, err
	}

	term := c.v.Add(b.v.Mul(D)).Add(a.v.Mul(E))
	if ch.AmFirst() {
		term = term.Add(D.Mul(E))
	}
	return &Share{v: term}, nil
}

// Inv computes a share of x^-1 via mask-and-reveal: given an
// inversion pair (r, r^-1), open m = x*r (one round of Beaver
// multiplication to form the share, one more round to open it), then
// return r scaled by the public inverse of m: since m=x*r, m^-1 =
// x^-1*r^-1, so r*m^-1 = x^-1.
func (s *Share) Inv(ch *mpcnet.Channel, src BeaverSource) (*Share, error) {
	r, _, err := src.InvPair()
	if err != nil {
		return nil, err
	}

	masked, err := s.Mul(r, ch, src)
	if err != nil {
		return nil, err
	}
	m, err := masked.Open(ch)
	if err != nil {
		return nil, err
	}
	mInv, ok := m.Inverse()
	if !ok {
		return nil, fmt.Errorf("%w: inverse of zero", mpcerr.ErrProtocolUnsupported)
	}
	return r.Scale(mInv), nil
}

// Div computes a share of x/y as x * inv(y), with no fusion: it costs
// three network rounds (the inversion's Beaver multiplication and
// masked open, then the multiplication by the inverse).
func (s *Share) Div(other *Share, ch *mpcnet.Channel, src BeaverSource) (*Share, error) {
	inv, err := other.Inv(ch, src)
	if err != nil {
		return nil, err
	}
	return s.Mul(inv, ch, src)
}
