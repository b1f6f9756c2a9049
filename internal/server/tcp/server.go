// Package tcp implements the bank's wire protocol: a raw TCP listener, a
// hand-rolled line-oriented request parser, and the router for the three
// banking operations. One connection carries exactly one request/response
// exchange.
package tcp

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/alinaagnistova/TestTask/internal/logging"
	"github.com/google/uuid"
)

type Server struct {
	address string
	handler *Handler
	logger  logging.Logger
}

func NewServer(address string, h *Handler, l logging.Logger) *Server {
	return &Server{
		address: address,
		handler: h,
		logger:  l.With("module", "tcp_server"),
	}
}

// Run binds the listener and accepts until ctx is cancelled. Bind failure is
// returned (fatal at startup); per-connection failures never stop the accept
// loop.
func (s *Server) Run(ctx context.Context) error {

	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listener)
}

// Serve accepts on the given listener until ctx is cancelled. Each accepted
// connection gets its own goroutine, no pooling, no queueing, no
// backpressure; accepting never waits on a handler.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping server...")
		_ = listener.Close()
	}()

	s.logger.Info(ctx, "Server listening", "address", listener.Addr().String())

	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.logger.Error(ctx, "accept error", "error", err.Error())
			continue
		}
		go s.handleConn(ctx, conn)
	}
}

// handleConn owns the connection for its single exchange and always closes
// it. A panicking handler is contained here so it cannot take down the
// acceptor or sibling connections.
func (s *Server) handleConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	log := s.logger.With("conn_id", uuid.NewString(), "remote_addr", conn.RemoteAddr().String())

	defer func() {
		if p := recover(); p != nil {
			log.Error(ctx, "panic in connection handler", "panic", fmt.Sprint(p))
		}
	}()

	s.handler.Handle(ctx, conn, log)
}
