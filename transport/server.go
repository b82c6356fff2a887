// Package transport serves the engine's per-tick state over a
// websocket, the way the tabular example's server package pushes
// reinforcement-learning grid updates to a browser: one upgrader, one
// JSON-encoded snapshot type, one broadcast fan-out per connected
// client. It performs no simulation logic of its own.
package transport

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	channerics "github.com/niceyeti/channerics/channels"

	"dispersion3d/engine"
)

const (
	writeWait  = 1 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// maxClients bounds the number of simultaneously broadcast-fanned
	// client slots, mirroring the teacher's fixed builderFns-width
	// Broadcast call rather than a dynamically resized fan-out.
	maxClients = 8
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// CellSnapshot is one rendered grid cell, per spec.md section 4.C3's
// CellKind.
type CellSnapshot struct {
	X, Y, Z int
	Kind    engine.CellKind
}

// RobotEvent is one robot's C9 lifecycle transition for this tick.
type RobotEvent struct {
	ID        int
	Tag       engine.EventTag
	Direction engine.Direction
}

// TickSnapshot is one broadcast unit: the full rendered grid plus every
// robot's event for the tick that produced it.
type TickSnapshot struct {
	Tick    int
	Cells   []CellSnapshot
	Events  []RobotEvent
	Metrics engine.Metrics
}

// Server pumps TickSnapshots from an *engine.Engine to any number of
// connected websocket clients.
type Server struct {
	addr string
	eng  *engine.Engine
	log  *log.Logger

	source chan TickSnapshot
	fanout []<-chan TickSnapshot

	mu       sync.Mutex
	slotUsed [maxClients]bool
}

// NewServer wires a Server to eng. The fan-out is built once at
// construction, per channerics.Broadcast's fixed-width contract.
func NewServer(addr string, eng *engine.Engine, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	source := make(chan TickSnapshot, 1)
	s := &Server{
		addr:   addr,
		eng:    eng,
		log:    logger,
		source: source,
	}
	s.fanout = channerics.Broadcast(nil, source, maxClients)
	return s
}

// Pump samples the engine once per interval and publishes a snapshot,
// until ctx is cancelled. A full source buffer drops the snapshot
// rather than blocking the caller (spec.md section 4, expansion E1).
func (s *Server) Pump(ctx context.Context, interval time.Duration) {
	ticker := channerics.NewTicker(ctx.Done(), interval)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker:
			snap := s.snapshot()
			select {
			case s.source <- snap:
			default:
				s.log.Printf("transport: dropped tick %d snapshot, no room in source buffer", snap.Tick)
			}
		}
	}
}

func (s *Server) snapshot() TickSnapshot {
	sx, sy, sz := s.eng.GridSize()
	cells := make([]CellSnapshot, 0, sx*sy*sz)
	for z := 0; z < sz; z++ {
		for y := 0; y < sy; y++ {
			for x := 0; x < sx; x++ {
				cells = append(cells, CellSnapshot{X: x, Y: y, Z: z, Kind: s.eng.CellView(x, y, z)})
			}
		}
	}

	events := make([]RobotEvent, 0, s.eng.RobotCount())
	for id := 0; id < s.eng.RobotCount(); id++ {
		packed := s.eng.PopEvent(id)
		tag, dir := engine.UnpackEvent(packed)
		events = append(events, RobotEvent{ID: id, Tag: tag, Direction: dir})
	}

	return TickSnapshot{
		Tick:    s.eng.SimulationSteps(),
		Cells:   cells,
		Events:  events,
		Metrics: s.eng.MetricsSnapshot(),
	}
}

// acquireSlot claims an unused fan-out channel for a new client
// connection, or -1 if every slot is in use.
func (s *Server) acquireSlot() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, used := range s.slotUsed {
		if !used {
			s.slotUsed[i] = true
			return i
		}
	}
	return -1
}

func (s *Server) releaseSlot(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slotUsed[i] = false
}

// Serve registers the health-check and websocket handlers and blocks on
// http.ListenAndServe, the same two-handler shape as the teacher's
// Server.Serve.
func (s *Server) Serve() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWebsocket)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "ok")
	})

	if err := http.ListenAndServe(s.addr, mux); err != nil {
		return fmt.Errorf("transport: serve: %w", err)
	}
	return nil
}

func (s *Server) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	slot := s.acquireSlot()
	if slot < 0 {
		http.Error(w, "too many connected clients", http.StatusServiceUnavailable)
		return
	}
	defer s.releaseSlot(slot)

	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Printf("transport: upgrade: %v", err)
		return
	}
	defer s.closeWebsocket(ws)

	s.publishSnapshots(r.Context(), ws, s.fanout[slot])
}

func (s *Server) publishSnapshots(ctx context.Context, ws *websocket.Conn, feed <-chan TickSnapshot) {
	pubCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	guarded := channerics.OrDone(pubCtx.Done(), feed)
	for {
		select {
		case <-pubCtx.Done():
			return
		case <-ticker.C:
			if err := ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case snap, ok := <-guarded:
			if !ok {
				return
			}
			if err := ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := ws.WriteJSON(snap); err != nil {
				s.log.Printf("transport: write: %v", err)
				return
			}
		}
	}
}

func (s *Server) closeWebsocket(ws *websocket.Conn) {
	_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
	_ = ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	_ = ws.Close()
}
