// Package server implements the TCP ingestion side: it accepts the bridge
// connection, reassembles lines from the byte stream, and feeds them to
// the pipeline in wire order.
package server

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"strings"

	"github.com/flashtools/flashlog/internal/pipeline"
	"github.com/flashtools/flashlog/internal/state"
)

// Flash's socket sandbox asks for a cross-domain policy before it will
// deliver data. The request is NUL-terminated rather than newline-
// terminated, and the reply must carry a trailing NUL as well.
const (
	policyRequest  = "<policy-file-request/>"
	policyResponse = `<?xml version="1.0"?>` +
		`<cross-domain-policy>` +
		`<allow-access-from domain="*" to-ports="*"/>` +
		"</cross-domain-policy>\x00"
)

const (
	readBufferSize = 64 * 1024
	maxLineSize    = 1024 * 1024
)

// Server accepts one bridge connection at a time and drives the pipeline.
// Connections are served sequentially: a second producer connecting while
// one is active waits in the accept backlog (there is only one expected
// producer, so this never matters in practice and can never crash us).
type Server struct {
	addr  string
	pipe  *pipeline.Pipeline
	store *state.Store
	ln    net.Listener
}

// New returns an unstarted server for the given listen address.
func New(addr string, pipe *pipeline.Pipeline, store *state.Store) *Server {
	return &Server{addr: addr, pipe: pipe, store: store}
}

// Start binds the listen socket and launches the accept loop. A bind
// failure (port in use, permission denied) is returned immediately and is
// fatal to startup; every later network error is handled inside the loop.
// The loop stops when ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	s.ln = ln
	s.store.SetAddr(ln.Addr().String())
	s.store.SetPhase(state.PhaseListening)
	log.Printf("server: listening on %s (run the bridge to connect)", ln.Addr())

	go func() {
		<-ctx.Done()
		ln.Close()
	}()
	go s.acceptLoop(ctx, ln)
	return nil
}

// Addr returns the bound listen address, nil before Start.
func (s *Server) Addr() net.Addr {
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

func (s *Server) acceptLoop(ctx context.Context, ln net.Listener) {
	defer s.store.SetPhase(state.PhaseStopped)

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return
			}
			log.Printf("server: accept: %v", err)
			continue
		}
		s.store.SetPhase(state.PhaseConnected)
		s.store.SetError(nil)
		s.serve(ctx, conn)
		s.store.SetPhase(state.PhaseListening)
	}
}

// serve reads one connection line by line until it drops. A line may span
// several reads; a trailing fragment without a terminator is discarded
// when the connection ends. A client disconnect is expected, not an
// error: the server simply goes back to listening.
func (s *Server) serve(ctx context.Context, conn net.Conn) {
	defer conn.Close()
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	log.Printf("server: bridge connected from %s", conn.RemoteAddr())

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, readBufferSize), maxLineSize)
	scanner.Split(splitLines)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.Contains(line, policyRequest) {
			if _, err := io.WriteString(conn, policyResponse); err != nil {
				log.Printf("server: write policy response: %v", err)
				return
			}
			continue
		}
		s.pipe.Ingest(line)
	}

	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		s.store.SetError(err)
		log.Printf("server: connection lost: %v", err)
		return
	}
	log.Printf("server: bridge disconnected")
}

// splitLines is bufio.ScanLines with two bridge quirks: a NUL byte also
// terminates a token (the policy request has no newline), and a trailing
// fragment at end of stream is dropped instead of returned as a token.
func splitLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if i := bytes.IndexAny(data, "\n\x00"); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		// Incomplete line at disconnect; discard it.
		return len(data), nil, nil
	}
	return 0, nil, nil
}
