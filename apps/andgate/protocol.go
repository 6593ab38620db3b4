//
// protocol.go
//
// Copyright (c) 2025-2026 The andgate authors
//
// All rights reserved.
//

package main

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/markkurossi/text/superscript"
	"go.uber.org/zap"

	"github.com/twopc/andgate/gc"
	"github.com/twopc/andgate/ot"
	"github.com/twopc/andgate/p2p"
)

// Garble garbles one AND gate and drives the garbler side of the
// session: table transfer, direct label for the garbler's own input
// wire, one oblivious transfer for the evaluator's input wire, and
// the result readback. Returns the output bit reported by the peer.
func Garble(conn *p2p.Conn, rand io.Reader, bit, verbose bool,
	log *zap.Logger) (bool, error) {

	timing := NewTiming()

	a0, err := gc.NewLabel(rand, false)
	if err != nil {
		return false, err
	}
	a1, err := gc.NewLabel(rand, true)
	if err != nil {
		return false, err
	}
	b0, err := gc.NewLabel(rand, false)
	if err != nil {
		return false, err
	}
	b1, err := gc.NewLabel(rand, true)
	if err != nil {
		return false, err
	}

	table, err := gc.NewANDTable(rand, a0, a1, b0, b1)
	if err != nil {
		return false, err
	}
	timing.Sample("Garble", nil)

	if verbose {
		fmt.Printf(" - w%s: 0=%s 1=%s\n", superscript.Itoa(0), a0, a1)
		fmt.Printf(" - w%s: 0=%s 1=%s\n", superscript.Itoa(1), b0, b1)
	}

	if err := conn.SendBytes(table.Bytes()); err != nil {
		return false, err
	}

	// The garbler's own input wire needs no transfer protocol: send
	// the label for the input bit as-is.
	wa := a0
	if bit {
		wa = a1
	}
	var data gc.LabelData
	if err := conn.SendBytes(wa.Bytes(&data)); err != nil {
		return false, err
	}
	if err := conn.Flush(); err != nil {
		return false, err
	}
	timing.Sample("Xfer", []string{FileSize(conn.Stats.Sent.Load()).String()})

	sender := ot.NewSender(rand)
	if err := sender.SendLabels(conn, b0, b1); err != nil {
		return false, err
	}
	timing.Sample("OT", []string{FileSize(conn.Stats.Sum()).String()})

	result, err := conn.ReceiveByte()
	if err != nil {
		return false, err
	}
	if result > 1 {
		return false, errors.Newf("andgate: invalid result byte %d", result)
	}
	timing.Sample("Result", nil)

	log.Info("gate computed", zap.Bool("output", result == 1))
	if verbose {
		timing.Print(conn.Stats)
	}

	return result == 1, nil
}

// Evaluate drives the evaluator side of the session: table receive,
// garbler label receive, one oblivious transfer for this side's input
// bit, blind evaluation, and the result readback.
func Evaluate(conn *p2p.Conn, rand io.Reader, bit, verbose bool,
	log *zap.Logger) (bool, error) {

	timing := NewTiming()

	tableBuf := make([]byte, gc.TableSize)
	if err := conn.ReceiveFixed(tableBuf); err != nil {
		return false, err
	}
	table, err := gc.TableFromBytes(tableBuf)
	if err != nil {
		return false, err
	}

	var data gc.LabelData
	if err := conn.ReceiveFixed(data[:]); err != nil {
		return false, err
	}
	var wa gc.Label
	wa.SetData(&data)
	timing.Sample("Xfer",
		[]string{FileSize(conn.Stats.Recvd.Load()).String()})

	receiver := ot.NewReceiver(rand)
	wb, err := receiver.ReceiveLabel(conn, bit)
	if err != nil {
		return false, err
	}
	timing.Sample("OT", []string{FileSize(conn.Stats.Sum()).String()})

	if verbose {
		fmt.Printf(" - w%s: %s\n", superscript.Itoa(0), wa)
		fmt.Printf(" - w%s: %s\n", superscript.Itoa(1), wb)
	}

	result, err := gc.Evaluate(wa, wb, table)
	if err != nil {
		return false, err
	}
	timing.Sample("Eval", nil)

	var resultByte byte
	if result {
		resultByte = 1
	}
	if err := conn.SendByte(resultByte); err != nil {
		return false, err
	}
	if err := conn.Flush(); err != nil {
		return false, err
	}
	timing.Sample("Result", nil)

	log.Info("gate computed", zap.Bool("output", result))
	if verbose {
		timing.Print(conn.Stats)
	}

	return result, nil
}
