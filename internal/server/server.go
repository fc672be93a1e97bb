// Package server exposes the dispatcher over a line-based TCP protocol.
package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"sync"

	"github.com/hashicorp/go-hclog"

	"redicore/internal/redigo"
	"redicore/internal/telemetry"
)

type Server struct {
	address    string
	dispatcher *redigo.Dispatcher
	journal    *redigo.Journal
	metrics    *telemetry.Metrics
	executor   *Executor
	logger     hclog.Logger
}

func NewServer(address string, dispatcher *redigo.Dispatcher, journal *redigo.Journal, metrics *telemetry.Metrics, logger hclog.Logger) *Server {
	return &Server{
		address:    address,
		dispatcher: dispatcher,
		journal:    journal,
		metrics:    metrics,
		executor:   NewExecutor(),
		logger:     logger.Named("server"),
	}
}

// Listens on the configured address and serves connections until ctx is cancelled
func (server *Server) ListenAndServe(ctx context.Context) error {
	listener, err := net.Listen("tcp", server.address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", server.address, err)
	}
	return server.Serve(ctx, listener)
}

func (server *Server) Serve(ctx context.Context, listener net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var connections sync.WaitGroup
	go func() {
		<-ctx.Done()
		listener.Close()
	}()
	go server.executor.Run(ctx)

	server.logger.Info("redigo server started", "address", listener.Addr().String())

	for {
		connection, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				connections.Wait()
				server.logger.Info("redigo server stopped")
				return nil
			}
			server.logger.Warn("accept failed", "error", err)
			continue
		}

		connections.Add(1)
		go func() {
			defer connections.Done()
			server.HandleConnection(ctx, connection)
		}()
	}
}

// Serves one client until it quits, disconnects or ctx is cancelled
func (server *Server) HandleConnection(ctx context.Context, connection net.Conn) {
	defer connection.Close()
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			connection.Close()
		case <-done:
		}
	}()

	session := NewSession(server.dispatcher, server.journal, server.metrics, server.logger)
	session.logger.Debug("client connected", "remote", connection.RemoteAddr().String())

	err := ServeLines(connection, connection, func(line string) (ClientResponse, bool, error) {
		var response ClientResponse
		var quit bool
		err := server.executor.Do(ctx, func() {
			response, quit = session.ExecuteLine(line)
		})
		return response, quit, err
	})
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, net.ErrClosed) {
		session.logger.Warn("connection closed with error", "error", err)
	}
	session.logger.Debug("client disconnected")
}

// Reads command lines from reader and writes one response per non-empty line.
// Tokens are split on whitespace, so a value cannot contain spaces; "" sends an empty value.
func ServeLines(reader io.Reader, writer io.Writer, handle func(line string) (ClientResponse, bool, error)) error {
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		response, quit, err := handle(line)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(writer, response.ToString()); err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}
