//
// Copyright (c) 2026 mpcfield Authors
//
// All rights reserved.
//

// Package mpcerr defines the sentinel error kinds raised by the MPC
// arithmetic layer. Every fault is fatal to the current run: none of
// these are meant to be retried, only reported and propagated up to
// the CLI driver.
package mpcerr

import "errors"

// Sentinel error kinds. Wrap with fmt.Errorf("...: %w", Err...) to add
// context; compare with errors.Is.
var (
	// ErrChannelTransport covers TCP I/O failure, short reads, and EOF
	// on the two-party channel.
	ErrChannelTransport = errors.New("mpcerr: channel transport failure")

	// ErrDesynchronized is raised by Channel.CheckEq when the two
	// parties' values diverge after a publicize.
	ErrDesynchronized = errors.New("mpcerr: parties desynchronized")

	// ErrProtocolUnsupported is raised by operations the MPC lift
	// does not implement: frobenius_map, legendre, sqrt, and a
	// pairing whose both inputs are shared.
	ErrProtocolUnsupported = errors.New("mpcerr: protocol unsupported over shared values")

	// ErrSerialization covers malformed wire payloads; it is returned
	// wrapped together with ErrChannelTransport, so errors.Is matches
	// it as a transport failure too.
	ErrSerialization = errors.New("mpcerr: serialization error")

	// ErrAssignmentMissing passes through from circuit synthesis
	// unchanged; defined here only so callers in this module can
	// return it without importing a synthesis package.
	ErrAssignmentMissing = errors.New("mpcerr: assignment missing")

	// ErrTripleExhausted is raised when a BeaverSource cannot supply
	// another correlated-randomness triple or inversion pair.
	ErrTripleExhausted = errors.New("mpcerr: beaver source exhausted")
)
