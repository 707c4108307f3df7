//
// Copyright (c) 2026 mpcfield Authors
//
// All rights reserved.
//

package mpcnet

import (
	"sync"
	"testing"
)

func TestPipeExchange(t *testing.T) {
	p0, p1 := Pipe()
	defer p0.Close()
	defer p1.Close()

	if !p0.AmFirst() {
		t.Fatalf("p0 should be party 0")
	}
	if p1.AmFirst() {
		t.Fatalf("p1 should be party 1")
	}

	var wg sync.WaitGroup
	wg.Add(2)

	var got0, got1 []byte
	go func() {
		defer wg.Done()
		var err error
		got0, err = p0.Exchange([]byte("hello"))
		if err != nil {
			t.Errorf("p0 exchange: %v", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		got1, err = p1.Exchange([]byte("world"))
		if err != nil {
			t.Errorf("p1 exchange: %v", err)
		}
	}()
	wg.Wait()

	if string(got0) != "world" {
		t.Fatalf("p0 got %q, want %q", got0, "world")
	}
	if string(got1) != "hello" {
		t.Fatalf("p1 got %q, want %q", got1, "hello")
	}
}

func TestPipeConcurrentExchangesAreCounted(t *testing.T) {
	p0, p1 := Pipe()
	defer p0.Close()
	defer p1.Close()

	var wg sync.WaitGroup
	for round := 0; round < 5; round++ {
		round := round
		wg.Add(2)
		go func() {
			defer wg.Done()
			if _, err := p0.Exchange([]byte{byte(round)}); err != nil {
				t.Errorf("round %d p0: %v", round, err)
			}
		}()
		go func() {
			defer wg.Done()
			if _, err := p1.Exchange([]byte{byte(round)}); err != nil {
				t.Errorf("round %d p1: %v", round, err)
			}
		}()
	}
	wg.Wait()

	if p0.Stats().Exchanges != 5 || p1.Stats().Exchanges != 5 {
		t.Fatalf("expected 5 exchanges each, got p0=%d p1=%d", p0.Stats().Exchanges, p1.Stats().Exchanges)
	}
}

func TestCheckEqAgree(t *testing.T) {
	p0, p1 := Pipe()
	defer p0.Close()
	defer p1.Close()

	var wg sync.WaitGroup
	wg.Add(2)
	var err0, err1 error
	go func() {
		defer wg.Done()
		err0 = p0.CheckEq([]byte("same"))
	}()
	go func() {
		defer wg.Done()
		err1 = p1.CheckEq([]byte("same"))
	}()
	wg.Wait()

	if err0 != nil || err1 != nil {
		t.Fatalf("expected no desync, got err0=%v err1=%v", err0, err1)
	}
}

func TestCheckEqDesync(t *testing.T) {
	p0, p1 := Pipe()
	defer p0.Close()
	defer p1.Close()

	var wg sync.WaitGroup
	wg.Add(2)
	var err0, err1 error
	go func() {
		defer wg.Done()
		err0 = p0.CheckEq([]byte("party0value"))
	}()
	go func() {
		defer wg.Done()
		err1 = p1.CheckEq([]byte("party1value"))
	}()
	wg.Wait()

	if err0 == nil || err1 == nil {
		t.Fatalf("expected desync error, got err0=%v err1=%v", err0, err1)
	}
}

func TestTranscriptDigestMatches(t *testing.T) {
	p0, p1 := Pipe()
	defer p0.Close()
	defer p1.Close()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		p0.Exchange([]byte("a"))
	}()
	go func() {
		defer wg.Done()
		p1.Exchange([]byte("b"))
	}()
	wg.Wait()

	if p0.TranscriptDigest() != p1.TranscriptDigest() {
		t.Fatalf("transcript digests should match after a shared exchange")
	}
}
