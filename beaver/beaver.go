//
// Copyright (c) 2026 mpcfield Authors
//
// All rights reserved.
//

// Package beaver provides concrete BeaverSource implementations:
// a Dummy source for correctness testing and benchmarking of the
// online protocol's algebra, and a Seeded source that derives
// correlated randomness from an exchanged seed rather than from a
// fixed constant, demonstrating that share.BeaverSource is genuinely
// pluggable and not hardwired to the Dummy implementation.
//
// Neither source is suitable for a production deployment: see the
// doc comments on Dummy and Seeded for their respective trust models.
package beaver

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"

	"github.com/Bhavya2662/collaborative-zksnark/field"
	"github.com/Bhavya2662/collaborative-zksnark/field/fp"
	"github.com/Bhavya2662/collaborative-zksnark/mpcnet"
	"github.com/Bhavya2662/collaborative-zksnark/share"
)

// Dummy returns fixed shares encoding the public triple (1,1,1) and
// pair (1,1): party 0 gets the additive share 1 for every component,
// party 1 gets 0. This
// is only a placeholder for benchmarking and for end-to-end testing of
// the online protocol's algebra; it does not provide privacy on its
// own (both parties, and any eavesdropper, already know every triple
// and pair this source will ever produce).
type Dummy struct {
	amFirst bool
	zero    field.Element
	one     field.Element
}

var _ share.BeaverSource = (*Dummy)(nil)

// NewDummy constructs a Dummy source over the given field's zero and
// one elements, for the given party. Logs a warning once at
// construction time, since nothing about the interface itself flags
// that a given source is insecure.
func NewDummy(amFirst bool, zero, one field.Element) *Dummy {
	log.Printf("beaver: constructing Dummy source: INSECURE, constant (1,1,1)/(1,1) triples and pairs, testing/benchmarking only")
	return &Dummy{amFirst: amFirst, zero: zero, one: one}
}

func (d *Dummy) localOne() *share.Share {
	if d.amFirst {
		return share.New(d.one)
	}
	return share.New(d.zero)
}

// Triple implements share.BeaverSource.
func (d *Dummy) Triple() (a, b, c *share.Share, err error) {
	o := d.localOne()
	return o, d.localOne(), d.localOne(), nil
}

// InvPair implements share.BeaverSource.
func (d *Dummy) InvPair() (r, rInv *share.Share, err error) {
	return d.localOne(), d.localOne(), nil
}

// Seeded derives Beaver triples and inversion pairs from a shared PRG
// seed: the two parties exchange random contributions once (via
// Channel.Exchange) to agree on a seed, then each deterministically
// expands (a, b) from that seed with a linear congruential step over
// math/big integers and locally
// computes c=a*b, splitting a, b, c between the parties the same way
// Dummy splits its constant triple: party 0 holds the full
// seed-derived value, party 1 holds zero, so the shares still sum
// correctly. This generalizes the batched sampling loop of an
// oblivious-transfer based triple generator
// (GenerateBeaverTriplesOTBatch), with the OT expansion it uses to
// hide a, b from the deriving party replaced by a plain shared seed:
// Seeded is therefore exactly as insecure as Dummy (anyone who learns
// the seed learns every triple) but exercises a genuinely different,
// pluggable code path through share.BeaverSource, proving the
// interface is not hardwired to one implementation.
type Seeded struct {
	amFirst bool
	modulus *big.Int
	rng     *big.Int // running PRG state, advanced on every draw
}

var _ share.BeaverSource = (*Seeded)(nil)

// NewSeeded exchanges one random 32-byte contribution per party over
// ch to agree on a shared seed, then returns a Seeded source over the
// given modulus. The two contributions are combined with XOR, a
// commutative and associative operation, so both parties land on the
// identical combined seed regardless of which one is "mine" and which
// is "peer" locally — concatenating them instead (mine‖peer on one
// side, peer‖mine on the other) would produce two different byte
// strings and desynchronize the PRG from the start.
func NewSeeded(ch *mpcnet.Channel, modulus *big.Int) (*Seeded, error) {
	log.Printf("beaver: constructing Seeded source: INSECURE, seed is exchanged in the clear, testing/benchmarking only")

	mine := make([]byte, 32)
	if _, err := rand.Read(mine); err != nil {
		return nil, fmt.Errorf("beaver: seeding: %w", err)
	}
	peer, err := ch.Exchange(mine)
	if err != nil {
		return nil, err
	}
	combined := make([]byte, 32)
	for i := range combined {
		combined[i] = mine[i] ^ peer[i]
	}
	seed := new(big.Int).SetBytes(combined)
	seed.Mod(seed, modulus)

	return &Seeded{
		amFirst: ch.AmFirst(),
		modulus: modulus,
		rng:     seed,
	}, nil
}

// draw advances the internal PRG state and returns the next field
// element, identically on both parties since both started from the
// same agreed seed.
func (s *Seeded) draw() *big.Int {
	s.rng = new(big.Int).Mul(s.rng, big.NewInt(6364136223846793005))
	s.rng.Add(s.rng, big.NewInt(1))
	s.rng.Mod(s.rng, s.modulus)
	return new(big.Int).Set(s.rng)
}

func (s *Seeded) splitShare(v *big.Int) *share.Share {
	if s.amFirst {
		return share.New(fp.New(s.modulus, v))
	}
	return share.New(fp.Zero(s.modulus))
}

// Triple implements share.BeaverSource. Both parties derive the same
// (a, b) from the shared PRG state and locally compute c=a*b; the
// triple is then split so party 0 holds (a,b,c) and party 1 holds
// zero, exactly like Dummy's split but with non-constant values.
func (s *Seeded) Triple() (a, b, c *share.Share, err error) {
	av := s.draw()
	bv := s.draw()
	cv := new(big.Int).Mod(new(big.Int).Mul(av, bv), s.modulus)
	return s.splitShare(av), s.splitShare(bv), s.splitShare(cv), nil
}

// InvPair implements share.BeaverSource.
func (s *Seeded) InvPair() (r, rInv *share.Share, err error) {
	rv := s.draw()
	if rv.Sign() == 0 {
		rv = s.draw()
	}
	rInvV := new(big.Int).ModInverse(rv, s.modulus)
	if rInvV == nil {
		return nil, nil, fmt.Errorf("beaver: seeded source drew a non-invertible value")
	}
	return s.splitShare(rv), s.splitShare(rInvV), nil
}
