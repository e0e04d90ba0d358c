package web

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"firesim/internal/sims/forest"

	"github.com/gorilla/websocket"
)

// Server exposes the simulation over HTTP: frames stream out on a
// websocket and control messages come back in on the same connection. It
// only ever talks to the scheduler, so every operation is sequenced at a
// tick barrier and safe concurrent with an in-flight tick.
type Server struct {
	sched    *forest.Scheduler
	interval time.Duration
	upgrader websocket.Upgrader
}

// FrameMessage carries one completed frame. The cell layers are flattened
// into parallel row-major arrays to keep the payload compact.
type FrameMessage struct {
	Type       string    `json:"type"`
	Tick       uint64    `json:"tick"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Tree       []float32 `json:"tree"`
	Underbrush []float32 `json:"underbrush"`
	Fire       []uint32  `json:"fire"`
}

// ControlMessage is a client request: pause, resume, stop, or a parameter
// replacement built from the current record plus the given overrides.
type ControlMessage struct {
	Op     string             `json:"op"`
	Params map[string]float64 `json:"params,omitempty"`
}

// StatusMessage acknowledges a control request or reports final run stats.
type StatusMessage struct {
	Type    string  `json:"type"`
	Op      string  `json:"op"`
	Error   string  `json:"error,omitempty"`
	Ticks   uint64  `json:"ticks,omitempty"`
	AvgTick float64 `json:"avg_tick_ms,omitempty"`
}

// NewServer wraps a scheduler. interval is the frame broadcast period.
func NewServer(sched *forest.Scheduler, interval time.Duration) *Server {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return &Server{sched: sched, interval: interval}
}

// Routes returns the server's HTTP mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/params", s.handleParams)
	return mux
}

func (s *Server) handleParams(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.sched.Parameters()); err != nil {
		log.Printf("web: params encode: %v", err)
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("web: upgrade: %v", err)
		return
	}

	// One writer goroutine per connection; the read loop funnels its
	// responses through the same channel so frames and acks never
	// interleave mid-write.
	out := make(chan any, 8)
	done := make(chan struct{})
	go s.writeLoop(conn, out, done)

	out <- s.frameMessage()
	s.readLoop(conn, out)
	close(done)
	conn.Close()
}

func (s *Server) writeLoop(conn *websocket.Conn, out <-chan any, done <-chan struct{}) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case msg := <-out:
			if err := conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteJSON(s.frameMessage()); err != nil {
				return
			}
		}
	}
}

func (s *Server) readLoop(conn *websocket.Conn, out chan<- any) {
	for {
		var msg ControlMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("web: read: %v", err)
			}
			return
		}
		out <- s.apply(msg)
	}
}

// apply executes one control request and builds its acknowledgment.
func (s *Server) apply(msg ControlMessage) StatusMessage {
	status := StatusMessage{Type: "status", Op: msg.Op}
	switch msg.Op {
	case "pause":
		s.sched.Pause()
	case "resume":
		s.sched.Resume()
	case "stop":
		stats := s.sched.Stop()
		status.Ticks = stats.Ticks
		status.AvgTick = float64(stats.AvgTick) / float64(time.Millisecond)
	case "set":
		p := s.sched.Parameters()
		for key, value := range msg.Params {
			if !p.Set(key, value) {
				status.Error = "unknown parameter: " + key
				return status
			}
		}
		if err := s.sched.SetParameters(p); err != nil {
			status.Error = err.Error()
		}
	default:
		status.Error = "unknown op: " + msg.Op
	}
	return status
}

func (s *Server) frameMessage() FrameMessage {
	frame, tick := s.sched.Latest()
	msg := FrameMessage{
		Type:       "frame",
		Tick:       tick,
		Width:      frame.W,
		Height:     frame.H,
		Tree:       make([]float32, len(frame.Cells)),
		Underbrush: make([]float32, len(frame.Cells)),
		Fire:       make([]uint32, len(frame.Cells)),
	}
	for i, c := range frame.Cells {
		msg.Tree[i] = c.Tree
		msg.Underbrush[i] = c.Underbrush
		msg.Fire[i] = c.FireRemaining
	}
	return msg
}
