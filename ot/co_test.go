//
// co_test.go
//
// Copyright (c) 2025-2026 The andgate authors
//
// All rights reserved.
//

package ot

import (
	"crypto/rand"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/twopc/andgate/ecc"
	"github.com/twopc/andgate/gc"
	"github.com/twopc/andgate/p2p"
)

func TestTransfer(t *testing.T) {
	l0, err := gc.NewLabel(rand.Reader, false)
	if err != nil {
		t.Fatalf("NewLabel: %v", err)
	}
	l1, err := gc.NewLabel(rand.Reader, true)
	if err != nil {
		t.Fatalf("NewLabel: %v", err)
	}

	for _, choice := range []bool{false, true} {
		gConn, eConn := p2p.Pipe()

		errc := make(chan error, 1)
		go func() {
			sender := NewSender(rand.Reader)
			errc <- sender.SendLabels(gConn, l0, l1)
		}()

		receiver := NewReceiver(rand.Reader)
		label, err := receiver.ReceiveLabel(eConn, choice)
		if err != nil {
			t.Fatalf("ReceiveLabel: %v", err)
		}
		if err := <-errc; err != nil {
			t.Fatalf("SendLabels: %v", err)
		}

		expected := l0
		if choice {
			expected = l1
		}
		if !label.Equal(expected) {
			t.Errorf("choice %v: received wrong label", choice)
		}
	}
}

// A truncated sender point must abort the receiver with a transport
// error or an invalid-point error, never with a mis-parsed point.
func TestTruncatedPoint(t *testing.T) {
	gConn, eConn := p2p.Pipe()

	go func() {
		setup, err := NewSenderSetup(rand.Reader)
		if err != nil {
			return
		}
		data := ecc.Marshal(setup.A)
		if err := gConn.SendBytes(data[:ecc.PointSize-1]); err != nil {
			return
		}
		gConn.Close()
	}()

	receiver := NewReceiver(rand.Reader)
	_, err := receiver.ReceiveLabel(eConn, false)
	if err == nil {
		t.Fatalf("ReceiveLabel accepted a truncated point")
	}
	if !errors.Is(err, p2p.ErrTransport) &&
		!errors.Is(err, ecc.ErrInvalidPoint) {
		t.Errorf("unexpected error: %v", err)
	}
}

// One garbled table and two transfers compose into a two-party AND:
// the evaluator learns x AND y and nothing else.
func TestGateComposition(t *testing.T) {
	a0, err := gc.NewLabel(rand.Reader, false)
	if err != nil {
		t.Fatalf("NewLabel: %v", err)
	}
	a1, err := gc.NewLabel(rand.Reader, true)
	if err != nil {
		t.Fatalf("NewLabel: %v", err)
	}
	b0, err := gc.NewLabel(rand.Reader, false)
	if err != nil {
		t.Fatalf("NewLabel: %v", err)
	}
	b1, err := gc.NewLabel(rand.Reader, true)
	if err != nil {
		t.Fatalf("NewLabel: %v", err)
	}

	table, err := gc.NewANDTable(rand.Reader, a0, a1, b0, b1)
	if err != nil {
		t.Fatalf("NewANDTable: %v", err)
	}

	for _, x := range []bool{false, true} {
		for _, y := range []bool{false, true} {
			gConn, eConn := p2p.Pipe()

			errc := make(chan error, 1)
			go func() {
				sender := NewSender(rand.Reader)
				if err := sender.SendLabels(gConn, a0, a1); err != nil {
					errc <- err
					return
				}
				errc <- sender.SendLabels(gConn, b0, b1)
			}()

			receiver := NewReceiver(rand.Reader)
			wa, err := receiver.ReceiveLabel(eConn, x)
			if err != nil {
				t.Fatalf("ReceiveLabel: %v", err)
			}
			wb, err := receiver.ReceiveLabel(eConn, y)
			if err != nil {
				t.Fatalf("ReceiveLabel: %v", err)
			}
			if err := <-errc; err != nil {
				t.Fatalf("SendLabels: %v", err)
			}

			result, err := gc.Evaluate(wa, wb, table)
			if err != nil {
				t.Fatalf("Evaluate: %v", err)
			}
			if result != (x && y) {
				t.Errorf("(%v, %v): got %v, expected %v", x, y, result, x && y)
			}
		}
	}
}
