// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package monitor implements an HTTP server to watch running simulations
package monitor

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/bbanerjee/Fracture-Effects-sub001/pd"
	"github.com/cpmech/gosl/io"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // origins are filtered by the cors middleware
	},
}

// Message is sent to websocket clients
type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// BodyState summarises the state of one body at an output time
type BodyState struct {
	Id        int     `json:"id"`
	Nnodes    int     `json:"nnodes"`
	Nbonds    int     `json:"nbonds"`
	Nbroken   int     `json:"nbroken"`
	MaxDamage float64 `json:"maxdamage"`
}

// Frame is broadcast after each output step
type Frame struct {
	T      float64     `json:"t"`
	Tidx   int         `json:"tidx"`
	Bodies []BodyState `json:"bodies"`
}

// Hub sends frames to all connected websocket clients
type Hub struct {
	Verbose bool

	clients    map[*websocket.Conn]bool
	broadcast  chan []byte
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	done       chan struct{}
	mu         sync.RWMutex
}

// NewHub returns a new hub. Call Run to start it
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		done:       make(chan struct{}),
	}
}

// Run dispatches messages until Stop is called
func (o *Hub) Run() {
	for {
		select {
		case conn := <-o.register:
			o.mu.Lock()
			o.clients[conn] = true
			o.mu.Unlock()
			if o.Verbose {
				io.Pf("monitor: client connected (%d)\n", o.ClientCount())
			}

		case conn := <-o.unregister:
			o.mu.Lock()
			if _, ok := o.clients[conn]; ok {
				delete(o.clients, conn)
				conn.Close()
			}
			o.mu.Unlock()

		case msg := <-o.broadcast:
			o.mu.RLock()
			var failed []*websocket.Conn
			for conn := range o.clients {
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					failed = append(failed, conn)
				}
			}
			o.mu.RUnlock()
			if len(failed) > 0 {
				o.mu.Lock()
				for _, conn := range failed {
					delete(o.clients, conn)
					conn.Close()
				}
				o.mu.Unlock()
			}

		case <-o.done:
			o.mu.Lock()
			for conn := range o.clients {
				conn.Close()
				delete(o.clients, conn)
			}
			o.mu.Unlock()
			return
		}
	}
}

// Stop terminates Run and closes all connections
func (o *Hub) Stop() {
	close(o.done)
}

// Broadcast queues a message for all clients. Messages are dropped when the queue is full
func (o *Hub) Broadcast(event string, data interface{}) (err error) {
	b, err := json.Marshal(Message{Event: event, Data: data})
	if err != nil {
		return
	}
	select {
	case o.broadcast <- b:
	default:
		if o.Verbose {
			io.Pf("monitor: queue is full; %q dropped\n", event)
		}
	}
	return
}

// ClientCount returns the number of connected clients
func (o *Hub) ClientCount() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.clients)
}

// Write implements pd.Writer by broadcasting a frame
func (o *Hub) Write(t float64, tidx int, dom *pd.Domain, bodies []*pd.Body) error {
	return o.Broadcast("frame", NewFrame(t, tidx, bodies))
}

// NewFrame summarises the bodies at time t
func NewFrame(t float64, tidx int, bodies []*pd.Body) (f Frame) {
	f = Frame{T: t, Tidx: tidx, Bodies: make([]BodyState, len(bodies))}
	for i, b := range bodies {
		s := BodyState{Id: b.Id, Nnodes: len(b.Nodes)}
		s.Nbonds, s.Nbroken = b.Links.Len(), b.Links.Nbroken()
		for _, n := range b.Nodes {
			if n.Damage > s.MaxDamage {
				s.MaxDamage = n.Damage
			}
		}
		f.Bodies[i] = s
	}
	return
}

// HandleWebSocket upgrades the connection and registers the client
func (o *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		if o.Verbose {
			io.Pf("monitor: websocket upgrade failed: %v\n", err)
		}
		return
	}
	select {
	case o.register <- conn:
	case <-o.done:
		conn.Close()
		return
	}

	// clients only listen; reading detects closed connections
	go func() {
		defer func() {
			select {
			case o.unregister <- conn:
			case <-o.done:
			}
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
