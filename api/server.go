// Package api exposes live games over HTTP: viewers create a game, poll
// its latest frame or follow the whole game over a websocket. Viewers
// only ever see board snapshots.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"

	"github.com/snakeduel/engine/strategy"
)

// Server is the viewer-facing HTTP server.
type Server struct {
	hs  *http.Server
	hub *hub
}

// New wires up the routes and returns a server ready to listen on addr.
func New(addr string) *Server {
	s := &Server{hub: newHub()}

	router := httprouter.New()
	router.GET("/strategies", s.listStrategies)
	router.POST("/games", s.createGame)
	router.GET("/games/:id", s.gameStatus)
	router.GET("/socket/:id", s.gameSocket)

	s.hs = &http.Server{
		Addr:    addr,
		Handler: cors.AllowAll().Handler(router),
	}
	return s
}

// WaitForExit listens until the server stops.
func (s *Server) WaitForExit() error {
	log.WithField("listen", s.hs.Addr).Info("api serving")
	return s.hs.ListenAndServe()
}

// Shutdown drains the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.hs.Shutdown(ctx)
}

func (s *Server) listStrategies(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, map[string][]string{"strategies": strategy.Names()})
}

func (s *Server) createGame(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req GameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	id, err := s.hub.start(context.Background(), req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (s *Server) gameStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	game, ok := s.hub.get(ps.ByName("id"))
	if !ok {
		writeError(w, http.StatusNotFound, ErrGameNotFound)
		return
	}
	frame, ok := game.latest()
	if !ok {
		writeError(w, http.StatusNotFound, ErrGameNotFound)
		return
	}
	writeJSON(w, http.StatusOK, frame)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

// gameSocket streams every frame of the game, past and future, then
// closes normally.
func (s *Server) gameSocket(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	game, ok := s.hub.get(ps.ByName("id"))
	if !ok {
		writeError(w, http.StatusNotFound, ErrGameNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	backlog, live := game.subscribe()
	for _, f := range backlog {
		if err := conn.WriteJSON(f); err != nil {
			return
		}
	}
	if live != nil {
		for f := range live {
			if err := conn.WriteJSON(f); err != nil {
				return
			}
		}
	}
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "game over")
	if err := conn.WriteMessage(websocket.CloseMessage, msg); err != nil {
		log.WithError(err).Debug("closing websocket")
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Warn("encoding response")
	}
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}
