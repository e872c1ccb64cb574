// Package server runs the TCP accept loop: one goroutine per
// connection, each decoding RESP requests and dispatching them against
// a shared command.Handler.
package server

import (
	"context"
	"net"
	"sync"

	"github.com/sizzlecar/simple-redis/internal/command"
	"github.com/sizzlecar/simple-redis/internal/logging"
)

type Server struct {
	addr    string
	handler *command.Handler
	log     logging.Logger

	mu   sync.Mutex
	ln   net.Listener
	wg   sync.WaitGroup
	conn map[net.Conn]struct{}
}

func New(addr string, handler *command.Handler, log logging.Logger) *Server {
	return &Server{
		addr:    addr,
		handler: handler,
		log:     log,
		conn:    make(map[net.Conn]struct{}),
	}
}

// ListenAndServe binds addr and accepts connections until ctx is
// canceled, at which point the listener is closed, every open
// connection is closed, and ListenAndServe returns once all
// per-connection goroutines have exited.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()
	s.log.Infof("listening on %s", s.addr)

	go func() {
		<-ctx.Done()
		s.log.Infof("shutdown requested, closing listener")
		ln.Close()
		s.closeAllConns()
	}()

	for {
		nc, err := ln.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				s.wg.Wait()
				return nil
			default:
				return err
			}
		}

		s.handler.Stats.ConnectionsReceived.Add(1)
		s.trackConn(nc)
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer s.untrackConn(nc)
			c := newConn(nc, s.handler, s.log)
			c.serve()
		}()
	}
}

func (s *Server) trackConn(nc net.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn[nc] = struct{}{}
}

func (s *Server) untrackConn(nc net.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conn, nc)
}

func (s *Server) closeAllConns() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for nc := range s.conn {
		nc.Close()
	}
}
