//
// Copyright (c) 2026 mpcfield Authors
//
// All rights reserved.
//

package share

import (
	"math/big"
	"sync"
	"testing"

	"github.com/Bhavya2662/collaborative-zksnark/field"
	"github.com/Bhavya2662/collaborative-zksnark/field/fp"
	"github.com/Bhavya2662/collaborative-zksnark/mpcnet"
)

var testModulus = big.NewInt(101)

func fq(v int64) field.Element {
	return fp.New(testModulus, big.NewInt(v))
}

// dummySource is a fixed (1,1,1)/(1,1) split BeaverSource used
// throughout these tests, reimplemented locally so package share's
// tests do not import package beaver (which itself imports share).
type dummySource struct {
	amFirst bool
}

func (d dummySource) localOne() *Share {
	if d.amFirst {
		return New(fq(1))
	}
	return New(fq(0))
}

func (d dummySource) Triple() (a, b, c *Share, err error) {
	o := d.localOne()
	return o, d.localOne(), d.localOne(), nil
}

func (d dummySource) InvPair() (r, rInv *Share, err error) {
	return d.localOne(), d.localOne(), nil
}

// splitAdditive returns two shares that sum to v: party 0 gets v,
// party 1 gets zero, the same split share.FromPublic performs.
func splitAdditive(v field.Element) (*Share, *Share) {
	return New(v), New(fq(0))
}

func runTwoParty(t *testing.T, f func(ch *mpcnet.Channel, src BeaverSource) (field.Element, error)) (field.Element, field.Element) {
	t.Helper()
	ch0, ch1 := mpcnet.Pipe()
	defer ch0.Close()
	defer ch1.Close()

	var r0, r1 field.Element
	var e0, e1 error
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		r0, e0 = f(ch0, dummySource{amFirst: true})
	}()
	go func() {
		defer wg.Done()
		r1, e1 = f(ch1, dummySource{amFirst: false})
	}()
	wg.Wait()

	if e0 != nil {
		t.Fatalf("party 0: %v", e0)
	}
	if e1 != nil {
		t.Fatalf("party 1: %v", e1)
	}
	return r0, r1
}

func TestOpenReconstructsValue(t *testing.T) {
	x := fq(42)
	s0, s1 := splitAdditive(x)

	r0, r1 := runTwoParty(t, func(ch *mpcnet.Channel, src BeaverSource) (field.Element, error) {
		if ch.AmFirst() {
			return s0.Open(ch)
		}
		return s1.Open(ch)
	})

	if !r0.Equal(x) || !r1.Equal(x) {
		t.Fatalf("open should reconstruct 42, got r0=%v r1=%v", r0, r1)
	}
}

func TestMulBeaver(t *testing.T) {
	x, y := fq(6), fq(7)
	x0, x1 := splitAdditive(x)
	y0, y1 := splitAdditive(y)

	r0, r1 := runTwoParty(t, func(ch *mpcnet.Channel, src BeaverSource) (field.Element, error) {
		var a, b *Share
		if ch.AmFirst() {
			a, b = x0, y0
		} else {
			a, b = x1, y1
		}
		z, err := a.Mul(b, ch, src)
		if err != nil {
			return nil, err
		}
		return z.Open(ch)
	})

	want := x.Mul(y)
	if !r0.Equal(want) || !r1.Equal(want) {
		t.Fatalf("6*7 should reconstruct to %v, got r0=%v r1=%v", want, r0, r1)
	}
}

func TestMulSingleRoundTrip(t *testing.T) {
	x, y := fq(3), fq(5)
	x0, x1 := splitAdditive(x)
	y0, y1 := splitAdditive(y)

	ch0, ch1 := mpcnet.Pipe()
	defer ch0.Close()
	defer ch1.Close()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if _, err := x0.Mul(y0, ch0, dummySource{amFirst: true}); err != nil {
			t.Errorf("party 0 mul: %v", err)
		}
	}()
	go func() {
		defer wg.Done()
		if _, err := x1.Mul(y1, ch1, dummySource{amFirst: false}); err != nil {
			t.Errorf("party 1 mul: %v", err)
		}
	}()
	wg.Wait()

	if ch0.Stats().Exchanges != 1 || ch1.Stats().Exchanges != 1 {
		t.Fatalf("Mul must cost exactly one Exchange, got ch0=%d ch1=%d", ch0.Stats().Exchanges, ch1.Stats().Exchanges)
	}
}

func TestInverseCorrectness(t *testing.T) {
	a := fq(11)
	a0, a1 := splitAdditive(a)

	r0, r1 := runTwoParty(t, func(ch *mpcnet.Channel, src BeaverSource) (field.Element, error) {
		var s *Share
		if ch.AmFirst() {
			s = a0
		} else {
			s = a1
		}
		inv, err := s.Inv(ch, src)
		if err != nil {
			return nil, err
		}
		prod, err := s.Mul(inv, ch, src)
		if err != nil {
			return nil, err
		}
		return prod.Open(ch)
	})

	if !r0.IsOne() || !r1.IsOne() {
		t.Fatalf("a * inv(a) should reveal to 1, got r0=%v r1=%v", r0, r1)
	}
}

func TestDivCorrectness(t *testing.T) {
	x, y := fq(20), fq(4)
	x0, x1 := splitAdditive(x)
	y0, y1 := splitAdditive(y)

	r0, r1 := runTwoParty(t, func(ch *mpcnet.Channel, src BeaverSource) (field.Element, error) {
		var a, b *Share
		if ch.AmFirst() {
			a, b = x0, y0
		} else {
			a, b = x1, y1
		}
		z, err := a.Div(b, ch, src)
		if err != nil {
			return nil, err
		}
		return z.Open(ch)
	})

	want := fq(5)
	if !r0.Equal(want) || !r1.Equal(want) {
		t.Fatalf("20/4 should reconstruct to 5, got r0=%v r1=%v", r0, r1)
	}
}

func TestLocalOpsStayLocal(t *testing.T) {
	ch0, _ := mpcnet.Pipe()
	defer ch0.Close()

	s := New(fq(9))
	_ = s.Add(New(fq(3)))
	_ = s.Sub(New(fq(3)))
	_ = s.Neg()
	_ = s.Scale(fq(2))
	_ = s.Shift(fq(1), true)

	if ch0.Stats().Exchanges != 0 {
		t.Fatalf("local share ops must not touch the channel")
	}
}
