// SPDX-License-Identifier: MIT

// Package server serves a manager.Manager over HTTP with JSON bodies.
//
// Routes:
//
//	GET    /towns                  list town names
//	POST   /towns                  {"name"}
//	GET    /towns/{name}           one town and its neighbours
//	DELETE /towns/{name}           remove a town and its roads
//	GET    /roads[?from=&to=]      list road names, or the road between two towns
//	POST   /roads                  {"from","to","weight","name"}
//	DELETE /roads                  {"from","to","name"}
//	GET    /path?from=&to=         {"from","to","steps"}
//	GET    /metrics                prometheus exposition
//	GET    /healthz
//
// Every manager call runs under one mutex, so multi-step operations such as
// AddRoad (add missing towns, then the road) are never interleaved.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/katalvlaran/roadnet/core"
	"github.com/katalvlaran/roadnet/manager"
	"github.com/katalvlaran/roadnet/metrics"
)

// Server holds the HTTP handlers for one Manager.
type Server struct {
	mu      sync.Mutex
	manager *manager.Manager
	metrics *metrics.Registry
	logger  *zap.Logger
	router  *mux.Router
}

// New builds a Server. A nil reg disables /metrics; a nil logger discards logs.
func New(m *manager.Manager, reg *metrics.Registry, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{manager: m, metrics: reg, logger: logger}

	router := mux.NewRouter()
	router.HandleFunc("/towns", s.listTowns).Methods(http.MethodGet)
	router.HandleFunc("/towns", s.addTown).Methods(http.MethodPost)
	router.HandleFunc("/towns/{name}", s.getTown).Methods(http.MethodGet)
	router.HandleFunc("/towns/{name}", s.deleteTown).Methods(http.MethodDelete)

	router.HandleFunc("/roads", s.getRoads).Methods(http.MethodGet)
	router.HandleFunc("/roads", s.addRoad).Methods(http.MethodPost)
	router.HandleFunc("/roads", s.deleteRoad).Methods(http.MethodDelete)

	router.HandleFunc("/path", s.getPath).Methods(http.MethodGet)

	if reg != nil {
		router.Handle("/metrics", reg.Handler()).Methods(http.MethodGet)
	}
	router.HandleFunc("/healthz", s.health).Methods(http.MethodGet)

	router.Use(s.loggingMiddleware)
	s.router = router

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("uri", r.RequestURI),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}

// Town handlers

func (s *Server) listTowns(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	towns := s.manager.AllTowns()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"towns": towns})
}

func (s *Server) addTown(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	added, err := s.manager.AddTown(req.Name)
	s.mu.Unlock()
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	writeJSON(w, status, map[string]any{"name": req.Name, "added": added})
}

func (s *Server) getTown(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	s.mu.Lock()
	town, ok := s.manager.GetTown(name)
	var neighbors []string
	if ok {
		for _, n := range s.manager.Graph().Neighbors(town) {
			neighbors = append(neighbors, n.Name())
		}
	}
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, errors.New("town not found: "+name))
		return
	}
	if neighbors == nil {
		neighbors = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"name": town.Name(), "neighbors": neighbors})
}

func (s *Server) deleteTown(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	s.mu.Lock()
	removed := s.manager.DeleteTown(name)
	s.mu.Unlock()

	if !removed {
		writeError(w, http.StatusNotFound, errors.New("town not found: "+name))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Road handlers

type roadRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int64  `json:"weight"`
	Name   string `json:"name"`
}

func (s *Server) getRoads(w http.ResponseWriter, r *http.Request) {
	from, to := r.URL.Query().Get("from"), r.URL.Query().Get("to")
	if from == "" && to == "" {
		s.mu.Lock()
		roads := s.manager.AllRoads()
		s.mu.Unlock()

		writeJSON(w, http.StatusOK, map[string]any{"roads": roads})
		return
	}
	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, errors.New("both from and to are required"))
		return
	}

	s.mu.Lock()
	name, ok := s.manager.GetRoad(from, to)
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, errors.New("no road between "+from+" and "+to))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"from": from, "to": to, "name": name})
}

func (s *Server) addRoad(w http.ResponseWriter, r *http.Request) {
	var req roadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	err := s.manager.AddRoad(req.From, req.To, req.Weight, req.Name)
	s.mu.Unlock()
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

func (s *Server) deleteRoad(w http.ResponseWriter, r *http.Request) {
	var req roadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	removed := s.manager.DeleteRoadConnection(req.From, req.To, req.Name)
	s.mu.Unlock()

	if !removed {
		writeError(w, http.StatusNotFound, errors.New("road not found: "+req.Name))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Path handler

func (s *Server) getPath(w http.ResponseWriter, r *http.Request) {
	from, to := r.URL.Query().Get("from"), r.URL.Query().Get("to")
	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, errors.New("both from and to are required"))
		return
	}

	s.mu.Lock()
	steps := s.manager.GetPath(from, to)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"from": from, "to": to, "steps": steps})
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// statusFor maps core argument errors to 400 and anything else to 500.
func statusFor(err error) int {
	if errors.Is(err, core.ErrInvalidArgument) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
