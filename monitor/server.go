// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package monitor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/bbanerjee/Fracture-Effects-sub001/pd"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StatusSource gives the status of a simulation; e.g. *pd.PD
type StatusSource interface {
	Status() pd.Status
}

// NewRouter returns the routes of the monitor
//  origins -- allowed origins; nil => all
func NewRouter(src StatusSource, hub *Hub, origins []string) *chi.Mux {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, src.Status())
	})
	r.Handle("/metrics", promhttp.Handler())
	if hub != nil {
		r.Get("/ws", hub.HandleWebSocket)
	}
	return r
}

// Server runs the monitor in the background
type Server struct {
	Hub  *Hub
	http *http.Server
}

// Start starts the hub and listens on addr; e.g. ":8080"
func Start(addr string, src StatusSource, verbose bool) (o *Server) {
	o = new(Server)
	o.Hub = NewHub()
	o.Hub.Verbose = verbose
	go o.Hub.Run()
	o.http = &http.Server{
		Addr:              addr,
		Handler:           NewRouter(src, o.Hub, nil),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		err := o.http.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			io.PfRed("monitor: %v\n", err)
		}
	}()
	if verbose {
		io.Pf("monitor: listening on %s\n", addr)
	}
	return
}

// Stop shuts down the server and the hub
func (o *Server) Stop(timeout time.Duration) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	err = o.http.Shutdown(ctx)
	o.Hub.Stop()
	if err != nil {
		return chk.Err("monitor: shutdown failed: %v", err)
	}
	return
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
