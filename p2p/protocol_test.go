//
// protocol_test.go
//
// Copyright (c) 2025-2026 The andgate authors
//
// All rights reserved.
//

package p2p

import (
	"bytes"
	"fmt"
	"net"
	"testing"

	"github.com/cockroachdb/errors"
)

var tests = [][]byte{
	{42},
	{1, 2, 3},
	bytes.Repeat([]byte{0xa5}, 65),
	bytes.Repeat([]byte{0x5a}, 1024),
	bytes.Repeat([]byte{7}, 2*1024*1024),
}

func writer(c *Conn) {
	for _, test := range tests {
		if err := c.SendBytes(test); err != nil {
			fmt.Printf("SendBytes [%v]byte: %v\n", len(test), err)
		}
		if err := c.Flush(); err != nil {
			fmt.Printf("Flush: %v\n", err)
		}
	}
}

func TestProtocol(t *testing.T) {
	cw, c := Pipe()

	go writer(cw)

	for _, test := range tests {
		buf := make([]byte, len(test))
		if err := c.ReceiveFixed(buf); err != nil {
			t.Fatalf("ReceiveFixed: %v", err)
		}
		if !bytes.Equal(buf, test) {
			t.Errorf("ReceiveFixed: got %x, expected %x", buf, test)
		}
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestByte(t *testing.T) {
	cw, c := Pipe()

	go func() {
		for i := 0; i < 256; i++ {
			if err := cw.SendByte(byte(i)); err != nil {
				fmt.Printf("SendByte: %v\n", err)
			}
		}
		if err := cw.Flush(); err != nil {
			fmt.Printf("Flush: %v\n", err)
		}
	}()

	for i := 0; i < 256; i++ {
		v, err := c.ReceiveByte()
		if err != nil {
			t.Fatalf("ReceiveByte: %v", err)
		}
		if v != byte(i) {
			t.Errorf("ReceiveByte: got %v, expected %v", v, i)
		}
	}
}

// TestFixedAcrossWrites verifies that a fixed-size read blocks until
// the full count has arrived, even when the sender splits the message
// across several flushes.
func TestFixedAcrossWrites(t *testing.T) {
	p0, p1 := net.Pipe()
	cw := NewConn(p0)
	c := NewConn(p1)

	msg := bytes.Repeat([]byte{0xc3}, 65)
	go func() {
		for _, chunk := range [][]byte{msg[:10], msg[10:40], msg[40:]} {
			if err := cw.SendBytes(chunk); err != nil {
				fmt.Printf("SendBytes: %v\n", err)
			}
			if err := cw.Flush(); err != nil {
				fmt.Printf("Flush: %v\n", err)
			}
		}
	}()

	buf := make([]byte, len(msg))
	if err := c.ReceiveFixed(buf); err != nil {
		t.Fatalf("ReceiveFixed: %v", err)
	}
	if !bytes.Equal(buf, msg) {
		t.Errorf("ReceiveFixed: got %x, expected %x", buf, msg)
	}
}

// TestShortStream verifies that a stream closing before the full
// message is delivered surfaces as ErrTransport.
func TestShortStream(t *testing.T) {
	p0, p1 := net.Pipe()
	cw := NewConn(p0)
	c := NewConn(p1)

	go func() {
		if err := cw.SendBytes(make([]byte, 10)); err != nil {
			fmt.Printf("SendBytes: %v\n", err)
		}
		if err := cw.Close(); err != nil {
			fmt.Printf("Close: %v\n", err)
		}
	}()

	buf := make([]byte, 65)
	err := c.ReceiveFixed(buf)
	if err == nil {
		t.Fatalf("ReceiveFixed: expected error on short stream")
	}
	if !errors.Is(err, ErrTransport) {
		t.Errorf("ReceiveFixed: error %v is not ErrTransport", err)
	}
}

func TestStats(t *testing.T) {
	cw, c := Pipe()

	go func() {
		if err := cw.SendBytes(make([]byte, 100)); err != nil {
			fmt.Printf("SendBytes: %v\n", err)
		}
		if err := cw.Flush(); err != nil {
			fmt.Printf("Flush: %v\n", err)
		}
	}()

	buf := make([]byte, 100)
	if err := c.ReceiveFixed(buf); err != nil {
		t.Fatalf("ReceiveFixed: %v", err)
	}
	if cw.Stats.Sent.Load() != 100 {
		t.Errorf("Stats.Sent: got %v, expected 100", cw.Stats.Sent.Load())
	}
	if cw.Stats.Flushed.Load() != 1 {
		t.Errorf("Stats.Flushed: got %v, expected 1", cw.Stats.Flushed.Load())
	}
	if c.Stats.Recvd.Load() != 100 {
		t.Errorf("Stats.Recvd: got %v, expected 100", c.Stats.Recvd.Load())
	}
	if c.Stats.Sum() != 100 {
		t.Errorf("Stats.Sum: got %v, expected 100", c.Stats.Sum())
	}
}
