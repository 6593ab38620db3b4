//
// Copyright (c) 2025-2026 The andgate authors
//
// All rights reserved.
//

package p2p

import (
	"net"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

const dialRetryDelay = 5 * time.Second

// Listen accepts one peer connection on addr. Each session has
// exactly one peer; the listener is closed once the peer connects.
func Listen(addr string, log *zap.Logger) (*Conn, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Mark(err, ErrTransport)
	}
	defer listener.Close()

	log.Info("waiting for peer", zap.String("addr", addr))
	nc, err := listener.Accept()
	if err != nil {
		return nil, errors.Mark(err, ErrTransport)
	}
	log.Info("peer connected",
		zap.String("peer", nc.RemoteAddr().String()))

	return NewConn(nc), nil
}

// Dial connects to the peer at addr, retrying until the peer starts
// listening.
func Dial(addr string, log *zap.Logger) (*Conn, error) {
	for {
		nc, err := net.Dial("tcp", addr)
		if err != nil {
			log.Info("connect failed, retrying",
				zap.String("addr", addr),
				zap.Duration("delay", dialRetryDelay),
				zap.Error(err))
			<-time.After(dialRetryDelay)
			continue
		}
		log.Info("connected", zap.String("addr", addr))
		return NewConn(nc), nil
	}
}
