//
// main.go
//
// Copyright (c) 2025-2026 The andgate authors
//
// All rights reserved.
//

// Command andgate computes a single garbled AND gate between two
// peers. The garbler listens, garbles the gate, and transfers the
// evaluator's input label with oblivious transfer; the evaluator
// dials, evaluates the gate, and reports the output bit back.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/twopc/andgate/crypt"
	"github.com/twopc/andgate/p2p"
	"github.com/twopc/andgate/prng"
)

func main() {
	garbler := pflag.Bool("garbler", false, "run as the garbler")
	evaluator := pflag.Bool("evaluator", false, "run as the evaluator")
	addr := pflag.String("addr", "localhost:8080", "peer address")
	bit := pflag.Int("bit", 0, "input bit (0 or 1)")
	verbose := pflag.BoolP("verbose", "v", false, "verbose output")
	seed := pflag.String("seed", "",
		"deterministic randomness seed (debugging only)")
	pflag.Parse()

	if *garbler == *evaluator {
		fmt.Fprintf(os.Stderr,
			"specify exactly one of --garbler and --evaluator\n")
		os.Exit(2)
	}
	if *bit != 0 && *bit != 1 {
		fmt.Fprintf(os.Stderr, "--bit must be 0 or 1\n")
		os.Exit(2)
	}

	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	log = log.With(zap.String("session", uuid.NewString()))

	var rand io.Reader
	if *seed != "" {
		log.Warn("deterministic seed set, output is not secure")
		rand, err = prng.NewDeterministic(crypt.Digest([]byte(*seed)))
		if err != nil {
			log.Fatal("prng init failed", zap.Error(err))
		}
	} else {
		rand = prng.System()
	}

	if err := run(*garbler, *addr, *bit == 1, *verbose, rand, log); err != nil {
		log.Fatal("session failed", zap.Error(err))
	}
}

func run(garbler bool, addr string, bit, verbose bool,
	rand io.Reader, log *zap.Logger) error {

	var conn *p2p.Conn
	var err error
	if garbler {
		conn, err = p2p.Listen(addr, log)
	} else {
		conn, err = p2p.Dial(addr, log)
	}
	if err != nil {
		return err
	}
	defer conn.Close()

	var result bool
	if garbler {
		result, err = Garble(conn, rand, bit, verbose, log)
	} else {
		result, err = Evaluate(conn, rand, bit, verbose, log)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Result: %v\n", result)
	return nil
}
