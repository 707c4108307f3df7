//
// Copyright (c) 2026 mpcfield Authors
//
// All rights reserved.
//

package snark

import (
	"math/big"
	"sync"
	"testing"

	"github.com/Bhavya2662/collaborative-zksnark/curve"
	"github.com/Bhavya2662/collaborative-zksnark/mpcfield"
	"github.com/Bhavya2662/collaborative-zksnark/mpcnet"
	"github.com/Bhavya2662/collaborative-zksnark/share"
)

type dummySource struct{ amFirst bool }

func (d dummySource) localOne() *share.Share {
	if d.amFirst {
		return share.New(curve.NewFq(big.NewInt(1)))
	}
	return share.New(curve.NewFq(big.NewInt(0)))
}

func (d dummySource) Triple() (a, b, c *share.Share, err error) {
	o := d.localOne()
	return o, d.localOne(), d.localOne(), nil
}

func (d dummySource) InvPair() (r, rInv *share.Share, err error) {
	return d.localOne(), d.localOne(), nil
}

func TestRepeatedSquaringChainIsConsistent(t *testing.T) {
	ch0, _ := mpcnet.Pipe()
	defer ch0.Close()
	src := dummySource{amFirst: true}

	witness := NewFq(big.NewInt(3))
	circ, err := FromStart(witness, 4, ch0, src)
	if err != nil {
		t.Fatalf("from start: %v", err)
	}
	if circ.Squarings() != 4 {
		t.Fatalf("expected 4 squarings, got %d", circ.Squarings())
	}

	want := big.NewInt(3)
	for i := 0; i < 4; i++ {
		want.Mul(want, want)
		want.Mod(want, curve.Modulus)
	}
	if !circ.Output().UnwrapAsPublic().Equal(curve.NewFq(want)) {
		t.Fatalf("chain output mismatch: got %v want %v", circ.Output().UnwrapAsPublic(), want)
	}
}

func TestProveVerifyPublicWitness(t *testing.T) {
	ch0, _ := mpcnet.Pipe()
	defer ch0.Close()
	src := dummySource{amFirst: true}

	witness := NewFq(big.NewInt(5))
	circ, err := FromStart(witness, 2, ch0, src)
	if err != nil {
		t.Fatalf("from start: %v", err)
	}

	pk, vk := Setup()
	proof, err := Prove(pk, circ, ch0, src, ch0.AmFirst())
	if err != nil {
		t.Fatalf("prove: %v", err)
	}

	ok, err := Verify(vk, proof, big.NewInt(5), ch0, src, ch0.AmFirst())
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Fatalf("proof for the correct witness should verify")
	}

	bad, err := Verify(vk, proof, big.NewInt(6), ch0, src, ch0.AmFirst())
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if bad {
		t.Fatalf("proof should not verify against the wrong public input")
	}
}

func TestSquaringChainOverSharedWitnessRevealsSameOutput(t *testing.T) {
	ch0, ch1 := mpcnet.Pipe()
	defer ch0.Close()
	defer ch1.Close()
	src0 := dummySource{amFirst: true}
	src1 := dummySource{amFirst: false}

	witness := big.NewInt(9)
	shareA := mpcfield.FromAddShared(curve.NewFq(witness))
	shareB := mpcfield.FromAddShared(curve.NewFq(big.NewInt(0)))

	var out0, out1 mpcfield.Element
	var err0, err1 error
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		circ, err := FromStart(shareA, 3, ch0, src0)
		if err != nil {
			err0 = err
			return
		}
		out0 = circ.Output()
		err0 = out0.Publicize(ch0)
	}()
	go func() {
		defer wg.Done()
		circ, err := FromStart(shareB, 3, ch1, src1)
		if err != nil {
			err1 = err
			return
		}
		out1 = circ.Output()
		err1 = out1.Publicize(ch1)
	}()
	wg.Wait()

	if err0 != nil || err1 != nil {
		t.Fatalf("publicize failed: err0=%v err1=%v", err0, err1)
	}
	if !out0.UnwrapAsPublic().Equal(out1.UnwrapAsPublic()) {
		t.Fatalf("both parties should reveal the same output, got %v vs %v", out0.UnwrapAsPublic(), out1.UnwrapAsPublic())
	}

	want := new(big.Int).Set(witness)
	for i := 0; i < 3; i++ {
		want.Mul(want, want)
		want.Mod(want, curve.Modulus)
	}
	if !out0.UnwrapAsPublic().Equal(curve.NewFq(want)) {
		t.Fatalf("revealed output mismatch: got %v want %v", out0.UnwrapAsPublic(), want)
	}
}
