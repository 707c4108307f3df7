//
// Copyright (c) 2026 mpcfield Authors
//
// All rights reserved.
//

// Command mpcdemo drives the repeated-squaring toy circuit through
// three modes — mpc, local, ark-local — the way
// original_source/mpc-snarks/src/proof.rs's squarings::groth module
// drives mpc/local/local_ark, grounded on cmd/tss/main.go's
// flag.Parse()+log.Fatal+p2p.Pipe() style for the in-process two-party
// case. mpc mode simulates both parties in one process by default;
// pass -net to instead dial a real peer over -host/-peer-host, one
// process per party, via mpcnet.Dial.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"sync"

	"github.com/Bhavya2662/collaborative-zksnark/beaver"
	"github.com/Bhavya2662/collaborative-zksnark/curve"
	"github.com/Bhavya2662/collaborative-zksnark/field"
	"github.com/Bhavya2662/collaborative-zksnark/mpcfield"
	"github.com/Bhavya2662/collaborative-zksnark/mpcnet"
	"github.com/Bhavya2662/collaborative-zksnark/snark"
)

func main() {
	host := flag.String("host", "127.0.0.1:9100", "address this party binds to (party 0 only)")
	port := flag.String("port", "", "deprecated alias for -host")
	peerHost := flag.String("peer-host", "127.0.0.1:9100", "address of the peer (party 1 only)")
	party := flag.Int("party", 0, "party index, 0 or 1 (mpc mode only)")
	netMode := flag.Bool("net", false, "mpc mode only: dial a real peer over -host/-peer-host instead of simulating both parties in-process over a pipe")
	circuit := flag.String("c", "squaring", "circuit name (only \"squaring\" is implemented)")
	proofSystem := flag.String("p", "groth16", "proof system name (cosmetic: only a toy Groth16-shaped prover exists)")
	size := flag.Int("computation-size", 8, "number of repeated-squaring constraints")
	stats := flag.Bool("stats", false, "mpc mode only: print channel byte/round counters before and after the two-party computation")
	flag.Parse()

	if len(flag.Args()) != 1 {
		log.Fatalf("usage: mpcdemo [flags] mpc|local|ark-local")
	}
	if *circuit != "squaring" {
		log.Fatalf("unsupported circuit %q: only \"squaring\" is implemented", *circuit)
	}
	if *port != "" {
		*host = *port
	}
	_ = *proofSystem

	switch flag.Args()[0] {
	case "ark-local":
		runArkLocal(*size)
	case "local":
		runLocal(*size)
	case "mpc":
		if *netMode {
			runMPCNet(*host, *peerHost, *party == 0, *size, *stats)
		} else {
			runMPC(*host, *peerHost, *party == 0, *size, *stats)
		}
	default:
		log.Fatalf("invalid mode: %v", flag.Args()[0])
	}
}

func fq(v int64) field.Element {
	return curve.NewFq(big.NewInt(v))
}

// runArkLocal computes the squaring chain over the raw underlying
// field, bypassing the mpcfield lift entirely, and produces no proof:
// the control case against which the other two modes' outputs can be
// compared.
func runArkLocal(size int) {
	witness := fq(7)
	chain := []field.Element{witness}
	for i := 0; i < size; i++ {
		chain = append(chain, chain[i].Mul(chain[i]))
	}
	fmt.Printf("ark-local: witness=%s output=%s (no lift, no proof system wired at this layer)\n",
		witness.String(), chain[size].String())
}

// runLocal proves and verifies over mpcfield.Element with every value
// Public: a regression guard that the lift adds no overhead and no
// behavioral change to a purely public computation.
func runLocal(size int) {
	witness := mpcfield.FromPublic(fq(7))

	ch0, ch1 := mpcnet.Pipe()
	src0 := beaver.NewDummy(ch0.AmFirst(), fq(0), fq(1))

	circ, err := snark.FromStart(witness, size, ch0, src0)
	if err != nil {
		log.Fatalf("local: %v", err)
	}
	_ = ch1

	pk, vk := snark.Setup()
	proof, err := snark.Prove(pk, circ, ch0, src0, ch0.AmFirst())
	if err != nil {
		log.Fatalf("prove: %v", err)
	}
	output, ok := circ.Output().UnwrapAsPublic().(field.PrimeField)
	if !ok {
		log.Fatalf("output is not a prime field element")
	}
	verified, err := snark.Verify(vk, proof, output.BigInt(), ch0, src0, ch0.AmFirst())
	if err != nil {
		log.Fatalf("verify: %v", err)
	}
	fmt.Printf("local: squarings=%d output=%s verify=%v\n", size, output.String(), verified)
}

// runMPC runs the genuine two-party online protocol, as two
// goroutines over an in-process mpcnet.Pipe, for a quick single-process
// demo run. It always simulates both parties regardless of -party;
// for a real two-process deployment driven by -host/-peer-host/-party,
// use -net (see runMPCNet) instead.
func runMPC(host, peerHost string, amFirst bool, size int, printStats bool) {
	ch0, ch1 := mpcnet.Pipe()
	src0 := beaver.NewDummy(ch0.AmFirst(), fq(0), fq(1))
	src1 := beaver.NewDummy(ch1.AmFirst(), fq(0), fq(1))

	// Party 0 holds the real witness's additive share, party 1 holds
	// the complementary zero share, the split FromPublic/FromAddShared
	// use throughout this module.
	shareA := mpcfield.FromAddShared(fq(7))
	shareB := mpcfield.FromAddShared(fq(0))

	if printStats {
		fmt.Printf("mpc: stats before: party0=%+v party1=%+v\n", ch0.Stats(), ch1.Stats())
	}

	var outputs [2]field.Element
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		circ, err := snark.FromStart(shareA, size, ch0, src0)
		if err != nil {
			log.Fatalf("party 0: %v", err)
		}
		o := circ.Output()
		if err := o.Publicize(ch0); err != nil {
			log.Fatalf("party 0: publicize: %v", err)
		}
		outputs[0] = o.UnwrapAsPublic()
	}()
	go func() {
		defer wg.Done()
		circ, err := snark.FromStart(shareB, size, ch1, src1)
		if err != nil {
			log.Fatalf("party 1: %v", err)
		}
		o := circ.Output()
		if err := o.Publicize(ch1); err != nil {
			log.Fatalf("party 1: publicize: %v", err)
		}
		outputs[1] = o.UnwrapAsPublic()
	}()
	wg.Wait()

	if printStats {
		fmt.Printf("mpc: stats after: party0=%+v party1=%+v\n", ch0.Stats(), ch1.Stats())
	}

	fmt.Printf("mpc: squarings=%d revealed output party0=%s party1=%s match=%v\n",
		size, outputs[0].String(), outputs[1].String(), outputs[0].Equal(outputs[1]))

	_, _ = host, peerHost // unused in the in-process simulation; see runMPCNet for the real two-process path.
}

// runMPCNet runs this process as a single party of the two-party
// online protocol, dialing its peer over a real TCP connection via
// mpcnet.Dial instead of simulating both sides in-process. Each
// party runs this function in its own process: the party started
// with -party 0 binds -host and accepts; the party started with
// -party 1 connects to -peer-host. Only this party's own witness
// share is known locally; the other party's share lives in the other
// process entirely, unlike runMPC's demo where both halves are
// visible to a single Go process for convenience.
func runMPCNet(host, peerHost string, amFirst bool, size int, printStats bool) {
	ch, err := mpcnet.Dial(host, peerHost, amFirst)
	if err != nil {
		log.Fatalf("dial: %v", err)
	}
	defer ch.Close()

	src := beaver.NewDummy(ch.AmFirst(), fq(0), fq(1))

	// Party 0 holds the real witness's additive share, party 1 holds
	// the complementary zero share, the same split runMPC uses.
	var witness mpcfield.Element
	if amFirst {
		witness = mpcfield.FromAddShared(fq(7))
	} else {
		witness = mpcfield.FromAddShared(fq(0))
	}

	if printStats {
		fmt.Printf("mpc (net): stats before: %+v\n", ch.Stats())
	}

	circ, err := snark.FromStart(witness, size, ch, src)
	if err != nil {
		log.Fatalf("mpc (net): %v", err)
	}
	o := circ.Output()
	if err := o.Publicize(ch); err != nil {
		log.Fatalf("mpc (net): publicize: %v", err)
	}

	if printStats {
		fmt.Printf("mpc (net): stats after: %+v\n", ch.Stats())
	}

	fmt.Printf("mpc (net): squarings=%d revealed output=%s\n", size, o.UnwrapAsPublic().String())
}
