// Package wsserver implements the manager's websocket listener: an
// accepted connection on the "/source" path becomes a websocket source
// (wsrc), matched against a websocket-kind SourceConfig and handed to a
// composite exactly like a hardware device; an accepted connection on
// "/target" becomes an unattached websocket target (wstgt) the control
// plane can later attach.
package wsserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/hidbridge/daemon/internal/logging"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server listens on one address, routing accepted connections to onSource
// or onTarget by path. Each accepted connection is assigned a uuid-based
// id unique to this process run, since a websocket peer carries no sysfs
// device path to key on.
type Server struct {
	onSource func(id string, conn *websocket.Conn)
	onTarget func(id string, conn *websocket.Conn)

	logger *log.Logger
	srv    *http.Server
}

// New builds a Server that invokes onSource for every accepted "/source"
// connection and onTarget for every accepted "/target" connection.
func New(onSource, onTarget func(id string, conn *websocket.Conn)) *Server {
	return &Server{
		onSource: onSource,
		onTarget: onTarget,
		logger:   logging.For("wsserver"),
	}
}

// ListenAndServe blocks accepting connections on address until ctx is
// canceled.
func (s *Server) ListenAndServe(ctx context.Context, address string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/source", s.handle(s.onSource))
	mux.HandleFunc("/target", s.handle(s.onTarget))

	ln, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("wsserver.ListenAndServe: %w", err)
	}

	s.srv = &http.Server{Handler: mux}

	go func() {
		<-ctx.Done()
		s.srv.Close()
	}()

	if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("wsserver.ListenAndServe: %w", err)
	}

	return nil
}

func (s *Server) handle(onAccept func(id string, conn *websocket.Conn)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if onAccept == nil {
			http.Error(w, "not accepted", http.StatusServiceUnavailable)

			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			s.logger.Warn("upgrade failed", "err", err)

			return
		}

		onAccept(uuid.NewString(), conn)
	}
}
