//
// co.go
//
// Copyright (c) 2025-2026 The andgate authors
//
// All rights reserved.
//
// Chou Orlandi OT - The Simplest Protocol for Oblivious Transfer.
//  - https://eprint.iacr.org/2015/267.pdf

// Package ot implements 1-of-2 oblivious transfer of wire labels over
// NIST P-256. The sender holds the two labels of an evaluator input
// wire; the receiver learns exactly the label matching its choice bit
// and the sender learns nothing about the choice.
//
// Wire format of one exchange, all messages positional:
//
//	sender -> receiver   65 bytes   A, SEC1 uncompressed
//	receiver -> sender   65 bytes   B, SEC1 uncompressed
//	sender -> receiver   34 bytes   E0 || E1, masked labels
package ot

import (
	"io"

	"github.com/cockroachdb/errors"

	"github.com/twopc/andgate/ecc"
	"github.com/twopc/andgate/gc"
	"github.com/twopc/andgate/p2p"
)

// Sender implements the garbler side of the transfer.
type Sender struct {
	rand io.Reader
}

// NewSender creates a new OT sender drawing randomness from rand.
func NewSender(rand io.Reader) *Sender {
	return &Sender{
		rand: rand,
	}
}

// SendLabels runs one transfer as the sender. The receiver obtains
// exactly one of label0, label1 according to its choice bit. The
// session ephemerals are destroyed before the call returns.
func (s *Sender) SendLabels(conn *p2p.Conn, label0, label1 gc.Label) error {
	setup, err := NewSenderSetup(s.rand)
	if err != nil {
		return errors.Wrap(err, "ot: sender setup")
	}
	defer ecc.Wipe(setup.Scalar)

	if err := conn.SendBytes(ecc.Marshal(setup.A)); err != nil {
		return errors.Wrap(err, "ot: sending A")
	}
	if err := conn.Flush(); err != nil {
		return errors.Wrap(err, "ot: sending A")
	}

	var bBuf [ecc.PointSize]byte
	if err := conn.ReceiveFixed(bBuf[:]); err != nil {
		return errors.Wrap(err, "ot: receiving B")
	}
	b, err := ecc.Unmarshal(bBuf[:])
	if err != nil {
		return errors.Wrap(err, "ot: receiving B")
	}

	k0, k1, err := SenderKeys(setup, b)
	if err != nil {
		return err
	}
	defer wipeBytes(k0[:])
	defer wipeBytes(k1[:])

	var e0, e1 gc.LabelData
	label0.GetData(&e0)
	label1.GetData(&e1)
	maskLabel(k0, e0[:])
	maskLabel(k1, e1[:])
	defer wipeBytes(e0[:])
	defer wipeBytes(e1[:])

	if err := conn.SendBytes(e0[:]); err != nil {
		return errors.Wrap(err, "ot: sending E0")
	}
	if err := conn.SendBytes(e1[:]); err != nil {
		return errors.Wrap(err, "ot: sending E1")
	}
	if err := conn.Flush(); err != nil {
		return errors.Wrap(err, "ot: sending E0,E1")
	}

	return nil
}

// Receiver implements the evaluator side of the transfer.
type Receiver struct {
	rand io.Reader
}

// NewReceiver creates a new OT receiver drawing randomness from rand.
func NewReceiver(rand io.Reader) *Receiver {
	return &Receiver{
		rand: rand,
	}
}

// ReceiveLabel runs one transfer as the receiver and returns the
// label matching the choice bit. The session ephemerals are destroyed
// before the call returns.
func (r *Receiver) ReceiveLabel(conn *p2p.Conn, choice bool) (
	gc.Label, error) {

	var label gc.Label

	var aBuf [ecc.PointSize]byte
	if err := conn.ReceiveFixed(aBuf[:]); err != nil {
		return label, errors.Wrap(err, "ot: receiving A")
	}
	a, err := ecc.Unmarshal(aBuf[:])
	if err != nil {
		return label, errors.Wrap(err, "ot: receiving A")
	}

	choicePoint, err := NewChoice(r.rand, a, choice)
	if err != nil {
		return label, errors.Wrap(err, "ot: choice setup")
	}
	defer ecc.Wipe(choicePoint.Scalar)

	if err := conn.SendBytes(ecc.Marshal(choicePoint.B)); err != nil {
		return label, errors.Wrap(err, "ot: sending B")
	}
	if err := conn.Flush(); err != nil {
		return label, errors.Wrap(err, "ot: sending B")
	}

	var e0, e1 gc.LabelData
	if err := conn.ReceiveFixed(e0[:]); err != nil {
		return label, errors.Wrap(err, "ot: receiving E0")
	}
	if err := conn.ReceiveFixed(e1[:]); err != nil {
		return label, errors.Wrap(err, "ot: receiving E1")
	}

	k := ReceiverKey(choicePoint)
	defer wipeBytes(k[:])
	defer wipeBytes(e0[:])
	defer wipeBytes(e1[:])

	if choice {
		maskLabel(k, e1[:])
		label.SetData(&e1)
	} else {
		maskLabel(k, e0[:])
		label.SetData(&e0)
	}

	return label, nil
}
