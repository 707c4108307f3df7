//
// Copyright (c) 2026 mpcfield Authors
//
// All rights reserved.
//

// Package reveal implements the C6 adapter: the thin layer that
// applies mpcfield.Element's publicize/reveal to whole proof-system
// structures, field by field, the way
// original_source/mpc-snarks/src/proof.rs's pf_publicize does for a
// Groth16 ark_groth16::Proof — a fixed per-field walk, not generic
// reflection, matching the original's explicit style.
package reveal

import (
	"github.com/Bhavya2662/collaborative-zksnark/field"
	"github.com/Bhavya2662/collaborative-zksnark/mpcfield"
	"github.com/Bhavya2662/collaborative-zksnark/mpcnet"
	"github.com/Bhavya2662/collaborative-zksnark/snark"
)

// Publicize reveals e in place: if Shared, opens it and check_eq's
// the opened value across parties; if already Public, a no-op. A
// one-line rename of mpcfield.Element.Publicize so callers that only
// import reveal (the C6 adapter) never need to import mpcfield
// directly just to publicize a single value.
func Publicize(e *mpcfield.Element, ch *mpcnet.Channel) error {
	return e.Publicize(ch)
}

// Reveal consumes e and returns the plain field element underneath.
func Reveal(e mpcfield.Element, ch *mpcnet.Channel) (field.Element, error) {
	return mpcfield.Reveal(e, ch)
}

// PublicizeProof walks every group element of a Proof — A, B, C — and
// publicizes each in place, matching pf_publicize's field-by-field
// walk over a Groth16 proof's A/B/C components.
func PublicizeProof(p *snark.Proof, ch *mpcnet.Channel) error {
	if err := p.A.Publicize(ch); err != nil {
		return err
	}
	if err := p.B.Publicize(ch); err != nil {
		return err
	}
	return p.C.Publicize(ch)
}

// PublicizeProvingKey walks a ProvingKey's single generator point.
// The original's pk_to_mpc/pf_publicize pair lifts and then
// publicizes every element of a full Groth16 ProvingKey (its A/B/C
// query vectors, delta/gamma elements, and so on); this toy
// ProvingKey's CRS collapses to one generator (see snark.ProvingKey's
// doc comment), so the walk has exactly one step.
func PublicizeProvingKey(pk *snark.ProvingKey, ch *mpcnet.Channel) error {
	return pk.G.Publicize(ch)
}

// PublicizeVerifyingKey mirrors PublicizeProvingKey for the verifier
// side's key.
func PublicizeVerifyingKey(vk *snark.VerifyingKey, ch *mpcnet.Channel) error {
	return vk.G.Publicize(ch)
}
