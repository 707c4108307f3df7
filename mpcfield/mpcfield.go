//
// Copyright (c) 2026 mpcfield Authors
//
// All rights reserved.
//

// Package mpcfield implements the user-facing value that
// transparently lifts a field.Element into one that may be either
// Public (known to both parties) or Shared (additively
// secret-shared). Every arithmetic operation dispatches on the
// (lhs, rhs) tag pair.
//
// Element is a closed sum type, not an interface hierarchy: the two
// cases are represented with a bool discriminant plus one payload
// field per case, matched exhaustively in every method, rather than
// modeled as a small class hierarchy with virtual dispatch.
package mpcfield

import (
	"fmt"

	"github.com/Bhavya2662/collaborative-zksnark/field"
	"github.com/Bhavya2662/collaborative-zksnark/mpcerr"
	"github.com/Bhavya2662/collaborative-zksnark/mpcnet"
	"github.com/Bhavya2662/collaborative-zksnark/share"
)

// Element is a field value that is either public or additively
// shared between the two parties.
type Element struct {
	shared bool
	pub    field.Element
	shr    *share.Share
}

// FromPublic embeds a publicly known constant: both parties hold the
// identical value.
func FromPublic(v field.Element) Element {
	return Element{shared: false, pub: v}
}

// FromAddShared wraps a locally held additive share: each party
// interprets its local b as its own share, so the true value is the
// sum of both parties' b.
func FromAddShared(b field.Element) Element {
	return Element{shared: true, shr: share.New(b)}
}

// IsShared reports whether the value is currently Shared.
func (e Element) IsShared() bool {
	return e.shared
}

// UnwrapAsPublic returns the value as if it were public: for a
// genuinely Public value this is exact; for a Shared value it returns
// only this party's local share, an unsafe coercion that must only be
// used inside a deliberate declassification.
func (e Element) UnwrapAsPublic() field.Element {
	if e.shared {
		return e.shr.UnwrapAsPublic()
	}
	return e.pub
}

// SetShared transitions Public to Shared (wrapping the value, no
// network round) or Shared to Public (the unsafe per-party coercion,
// not a reveal). The peer must perform the symmetric transition for
// the sharing invariant to hold; this call alone never synchronizes.
func (e Element) SetShared(shared bool, amFirst bool) Element {
	if shared == e.shared {
		return e
	}
	if e.shared {
		return Element{shared: false, pub: e.shr.UnwrapAsPublic()}
	}
	return Element{shared: true, shr: share.FromPublic(e.pub, amFirst)}
}

// Add is local in all four tag combinations: addition never needs a
// network round, whether either side is Shared or Public.
func (e Element) Add(o Element, amFirst bool) Element {
	switch {
	case !e.shared && !o.shared:
		return Element{shared: false, pub: e.pub.Add(o.pub)}
	case !e.shared && o.shared:
		return Element{shared: true, shr: o.shr.Shift(e.pub, amFirst)}
	case e.shared && !o.shared:
		return Element{shared: true, shr: e.shr.Shift(o.pub, amFirst)}
	default:
		return Element{shared: true, shr: e.shr.Add(o.shr)}
	}
}

// Sub mirrors Add: always local, never a network round.
func (e Element) Sub(o Element, amFirst bool) Element {
	switch {
	case !e.shared && !o.shared:
		return Element{shared: false, pub: e.pub.Sub(o.pub)}
	case !e.shared && o.shared:
		return Element{shared: true, shr: o.shr.Neg().Shift(e.pub, amFirst)}
	case e.shared && !o.shared:
		return Element{shared: true, shr: e.shr.Shift(o.pub.Neg(), amFirst)}
	default:
		return Element{shared: true, shr: e.shr.Sub(o.shr)}
	}
}

// Neg returns the negation, computed locally: for Shared values each party negates
// its own share, for Public values it is plain field negation.
func (e Element) Neg() Element {
	if e.shared {
		return Element{shared: true, shr: e.shr.Neg()}
	}
	return Element{shared: false, pub: e.pub.Neg()}
}

// Mul dispatches on both operands' tags. Only the (Shared, Shared)
// case touches the network, costing exactly one Channel.Exchange
// call via share.Share.Mul's Beaver protocol; every other combination
// is a local scalar multiply.
func (e Element) Mul(o Element, ch *mpcnet.Channel, src share.BeaverSource) (Element, error) {
	switch {
	case !e.shared && !o.shared:
		return Element{shared: false, pub: e.pub.Mul(o.pub)}, nil
	case !e.shared && o.shared:
		return Element{shared: true, shr: o.shr.Scale(e.pub)}, nil
	case e.shared && !o.shared:
		return Element{shared: true, shr: e.shr.Scale(o.pub)}, nil
	default:
		z, err := e.shr.Mul(o.shr, ch, src)
		if err != nil {
			return Element{}, err
		}
		return Element{shared: true, shr: z}, nil
	}
}

// Div dispatches on both operands' tags, inverting a Shared divisor
// via share.Share.Inv and a Public divisor via a local field inverse.
func (e Element) Div(o Element, ch *mpcnet.Channel, src share.BeaverSource) (Element, error) {
	switch {
	case !e.shared && !o.shared:
		inv, ok := o.pub.Inverse()
		if !ok {
			return Element{}, fmt.Errorf("%w: division by zero", mpcerr.ErrProtocolUnsupported)
		}
		return Element{shared: false, pub: e.pub.Mul(inv)}, nil
	case !e.shared && o.shared:
		inv, err := o.shr.Inv(ch, src)
		if err != nil {
			return Element{}, err
		}
		return Element{shared: true, shr: inv.Scale(e.pub)}, nil
	case e.shared && !o.shared:
		inv, ok := o.pub.Inverse()
		if !ok {
			return Element{}, fmt.Errorf("%w: division by zero", mpcerr.ErrProtocolUnsupported)
		}
		return Element{shared: true, shr: e.shr.Scale(inv)}, nil
	default:
		z, err := e.shr.Div(o.shr, ch, src)
		if err != nil {
			return Element{}, err
		}
		return Element{shared: true, shr: z}, nil
	}
}

// Square is self-multiplication: self*self. For a Shared value this
// consumes one triple and one round.
func (e Element) Square(ch *mpcnet.Channel, src share.BeaverSource) (Element, error) {
	return e.Mul(e, ch, src)
}

// Double is self-addition: self+self. Always local, since addition
// never touches the network.
func (e Element) Double(amFirst bool) Element {
	return e.Add(e, amFirst)
}

// Inverse computes the multiplicative inverse, using the mask-based
// inversion protocol for Shared values and a local field inverse for
// Public ones.
func (e Element) Inverse(ch *mpcnet.Channel, src share.BeaverSource) (Element, error) {
	if !e.shared {
		inv, ok := e.pub.Inverse()
		if !ok {
			return Element{}, fmt.Errorf("%w: inverse of zero", mpcerr.ErrProtocolUnsupported)
		}
		return Element{shared: false, pub: inv}, nil
	}
	inv, err := e.shr.Inv(ch, src)
	if err != nil {
		return Element{}, err
	}
	return Element{shared: true, shr: inv}, nil
}

// FrobeniusMap, Legendre and Sqrt are unimplemented: they are not
// used by Groth16/Marlin over prime fields here, and fail loudly
// rather than silently producing wrong results.
func (e Element) FrobeniusMap(int) error {
	return fmt.Errorf("%w: frobenius_map", mpcerr.ErrProtocolUnsupported)
}

// Legendre is unimplemented; see FrobeniusMap's doc comment.
func (e Element) Legendre() error {
	return fmt.Errorf("%w: legendre", mpcerr.ErrProtocolUnsupported)
}

// Sqrt is unimplemented; see FrobeniusMap's doc comment.
func (e Element) Sqrt() (Element, error) {
	return Element{}, fmt.Errorf("%w: sqrt", mpcerr.ErrProtocolUnsupported)
}

// FromRepr wraps a public value; it cannot introduce a shared value.
func FromRepr(v field.Element) Element {
	return FromPublic(v)
}

// IntoRepr calls UnwrapAsPublic, a deliberate declassification that
// must not be invoked on genuinely secret data.
func (e Element) IntoRepr() field.Element {
	return e.UnwrapAsPublic()
}

// TwoAdicRootOfUnity returns the field's two-adic root of unity as a
// Public value, since it is a public field constant. The receiver's
// own tag/value are irrelevant; only its underlying concrete field
// type matters, since FFT parameters are always public constants.
func (e Element) TwoAdicRootOfUnity() (Element, error) {
	fft, ok := e.UnwrapAsPublic().(field.FftField)
	if !ok {
		return Element{}, fmt.Errorf("%w: underlying field is not an FftField", mpcerr.ErrProtocolUnsupported)
	}
	return FromPublic(fft.TwoAdicRootOfUnity()), nil
}

// Publicize opens the value and replaces it with Public if Shared,
// then checks the opened value for agreement across parties. If
// already Public, this is a no-op with zero network operations: a
// value both parties already know needs no further exchange to be
// "published", even though a literal reading of a publicize-on-public
// call site elsewhere might expect one round regardless of the
// starting tag. Zero rounds here is the behavior this package commits
// to; do not assert a nonzero exchange count for a Publicize call
// whose receiver started out Public.
func (e *Element) Publicize(ch *mpcnet.Channel) error {
	if !e.shared {
		return nil
	}
	v, err := e.shr.Open(ch)
	if err != nil {
		return err
	}
	*e = Element{shared: false, pub: v}
	return ch.CheckEq(v.Bytes())
}

// Reveal consumes the value and returns the plain field element: same
// as Publicize but by value.
func Reveal(e Element, ch *mpcnet.Channel) (field.Element, error) {
	if err := e.Publicize(ch); err != nil {
		return nil, err
	}
	return e.pub, nil
}
