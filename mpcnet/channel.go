//
// Copyright (c) 2026 mpcfield Authors
//
// All rights reserved.
//

// Package mpcnet implements the two-party channel: a synchronous,
// ordered, blocking byte exchange over TCP, plus an in-process Pipe
// for tests. Every suspension point in the MPC protocol (open, mul,
// inv, div, publicize, reveal) eventually calls Exchange or CheckEq
// here; there are no others.
//
// The wire format is a length-prefixed blob: an 8-byte little-endian
// unsigned length followed by that many payload bytes. Party 0 binds
// and accepts; party 1 connects, breaking the symmetry so neither
// side blocks waiting for the other to listen first.
package mpcnet

import (
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"sync"

	"golang.org/x/crypto/blake2s"

	"github.com/Bhavya2662/collaborative-zksnark/mpcerr"
)

// Stats are cumulative channel counters.
type Stats struct {
	BytesSent     uint64
	BytesReceived uint64
	Exchanges     uint64
}

// Channel is a bound two-party connection. The zero value is not
// usable; construct with Dial or Pipe.
type Channel struct {
	conn    io.ReadWriteCloser
	amFirst bool

	mu        sync.Mutex
	stats     Stats
	digest    [32]byte
	digestSet bool
}

// Dial establishes the transport: if amFirst, selfAddr is bound and
// accepted on; otherwise peerAddr is dialed. Party 0 blocks in Accept
// until the peer connects; party 1 makes a single dial attempt and
// returns an error if party 0 is not yet listening.
func Dial(selfAddr, peerAddr string, amFirst bool) (*Channel, error) {
	if amFirst {
		ln, err := net.Listen("tcp", selfAddr)
		if err != nil {
			return nil, fmt.Errorf("%w: listen %s: %v", mpcerr.ErrChannelTransport, selfAddr, err)
		}
		defer ln.Close()
		conn, err := ln.Accept()
		if err != nil {
			return nil, fmt.Errorf("%w: accept on %s: %v", mpcerr.ErrChannelTransport, selfAddr, err)
		}
		return &Channel{conn: conn, amFirst: true}, nil
	}

	conn, err := net.Dial("tcp", peerAddr)
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %v", mpcerr.ErrChannelTransport, peerAddr, err)
	}
	return &Channel{conn: conn, amFirst: false}, nil
}

// pipeEnd is one side of an in-process Pipe: reads come from the
// peer's writes and vice versa, ordered with a buffered channel of
// whole frames so Exchange's "send then receive" pairing holds
// without needing a real socket.
type pipeEnd struct {
	out chan<- []byte
	in  <-chan []byte
	buf []byte
}

func (p *pipeEnd) Write(b []byte) (int, error) {
	frame := make([]byte, len(b))
	copy(frame, b)
	p.out <- frame
	return len(b), nil
}

func (p *pipeEnd) Read(b []byte) (int, error) {
	for len(p.buf) == 0 {
		frame, ok := <-p.in
		if !ok {
			return 0, io.EOF
		}
		p.buf = frame
	}
	n := copy(b, p.buf)
	p.buf = p.buf[n:]
	return n, nil
}

func (p *pipeEnd) Close() error {
	return nil
}

// Pipe returns two in-process, connected Channels (party 0 and party
// 1) for deterministic tests without touching a real socket.
func Pipe() (p0, p1 *Channel) {
	ab := make(chan []byte, 64)
	ba := make(chan []byte, 64)
	e0 := &pipeEnd{out: ab, in: ba}
	e1 := &pipeEnd{out: ba, in: ab}
	return &Channel{conn: e0, amFirst: true}, &Channel{conn: e1, amFirst: false}
}

// AmFirst reports whether this party bound-and-accepted (party 0).
func (c *Channel) AmFirst() bool {
	return c.amFirst
}

// Stats returns a snapshot of the cumulative counters.
func (c *Channel) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

func (c *Channel) sendFrame(payload []byte) error {
	hdr := make([]byte, 8)
	binary.LittleEndian.PutUint64(hdr, uint64(len(payload)))
	if _, err := c.conn.Write(hdr); err != nil {
		return fmt.Errorf("%w: write length: %v", mpcerr.ErrChannelTransport, err)
	}
	if len(payload) > 0 {
		if _, err := c.conn.Write(payload); err != nil {
			return fmt.Errorf("%w: write payload: %v", mpcerr.ErrChannelTransport, err)
		}
	}
	c.stats.BytesSent += uint64(8 + len(payload))
	return nil
}

func (c *Channel) recvFrame() ([]byte, error) {
	hdr := make([]byte, 8)
	if _, err := io.ReadFull(c.conn, hdr); err != nil {
		return nil, fmt.Errorf("%w: read length: %v", mpcerr.ErrChannelTransport, err)
	}
	n := binary.LittleEndian.Uint64(hdr)
	payload := make([]byte, n)
	if n > 0 {
		if _, err := io.ReadFull(c.conn, payload); err != nil {
			return nil, fmt.Errorf("%w: read payload: %v", mpcerr.ErrChannelTransport, err)
		}
	}
	c.stats.BytesReceived += uint64(8 + n)
	return payload, nil
}

// Exchange atomically sends payload and returns the peer's equally
// ordered payload: the n-th Exchange call on party 0 is paired with
// the n-th Exchange call on party 1. Party 0 sends first; party 1
// receives first, then sends, so two blocking full-duplex writers
// never deadlock waiting on each other's read.
func (c *Channel) Exchange(payload []byte) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var peer []byte
	var err error
	if c.amFirst {
		if err = c.sendFrame(payload); err != nil {
			return nil, err
		}
		if peer, err = c.recvFrame(); err != nil {
			return nil, err
		}
	} else {
		if peer, err = c.recvFrame(); err != nil {
			return nil, err
		}
		if err = c.sendFrame(payload); err != nil {
			return nil, err
		}
	}
	c.stats.Exchanges++
	c.updateDigest(payload, peer)
	return peer, nil
}

// updateDigest folds the exchanged frames into a running blake2s
// transcript hash, in canonical party-0-then-party-1 order so both
// parties fold identical bytes regardless of which one is sending
// versus receiving: sent/received are this party's own/peer frames,
// so party 0 folds (sent, received) while party 1, whose own frame is
// the second one chronologically, folds (received, sent) instead.
func (c *Channel) updateDigest(sent, received []byte) {
	first, second := sent, received
	if !c.amFirst {
		first, second = received, sent
	}

	h, err := blake2s.New256(nil)
	if err != nil {
		// blake2s.New256 only fails for an over-long key, and we pass
		// none.
		panic(err)
	}
	if c.digestSet {
		h.Write(c.digest[:])
	}
	h.Write(first)
	h.Write(second)
	sum := h.Sum(nil)
	copy(c.digest[:], sum)
	c.digestSet = true
}

// TranscriptDigest returns the running blake2s digest of every
// Exchange this channel has performed so far.
func (c *Channel) TranscriptDigest() [32]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.digest
}

// CheckEq is a debug-mode barrier meant to run after every publicize:
// both parties exchange value, bound to the transcript digest
// accumulated so far, and abort with ErrDesynchronized if either the
// value or the prior transcript differ. Binding the digest catches a
// class of desync that comparing value alone would miss: two parties
// that happen to publicize the same value after having exchanged
// different frames earlier in the run.
func (c *Channel) CheckEq(value []byte) error {
	digest := c.TranscriptDigest()
	payload := make([]byte, 0, len(value)+len(digest))
	payload = append(payload, value...)
	payload = append(payload, digest[:]...)

	peer, err := c.Exchange(payload)
	if err != nil {
		return err
	}
	if len(peer) != len(payload) {
		return mpcerr.ErrDesynchronized
	}
	for i := range payload {
		if peer[i] != payload[i] {
			return mpcerr.ErrDesynchronized
		}
	}
	return nil
}

// Close releases the channel's transport.
func (c *Channel) Close() error {
	return c.conn.Close()
}
