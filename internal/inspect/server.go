package inspect

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/lanikai/mediatest/internal/logging"
)

var log = logging.DefaultLogger.WithTag("inspect")

var errNotSubscribed = errors.New("Not subscribed")

// Server exposes a recorder's event feed over a websocket, so a browser
// or websocket client can tail the reads a test performs. Intended for
// debugging only; there is no authentication.
type Server struct {
	rec    *Recorder
	server *http.Server
}

func NewServer(addr string, rec *Recorder) *Server {
	router := http.NewServeMux()
	s := &Server{
		rec: rec,
		server: &http.Server{
			Addr:    addr,
			Handler: router,
		},
	}
	router.HandleFunc("/events", s.handleWebsocket)
	return s
}

func (s *Server) Listen() error {
	log.Info("Event inspector listening on %s", s.server.Addr)
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown() error {
	return s.server.Shutdown(context.Background())
}

func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	// Upgrade websocket connection
	ws, err := new(websocket.Upgrader).Upgrade(w, r, nil)
	if err != nil {
		log.Warn("upgrade: %v", err)
		return
	}
	defer ws.Close()

	events := s.rec.Subscribe(32)
	defer s.rec.Unsubscribe(events)

	for line := range events {
		if err := ws.WriteMessage(websocket.TextMessage, line); err != nil {
			log.Debug("write: %v", err)
			return
		}
	}
}
