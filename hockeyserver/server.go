// Package hockeyserver runs a hockey game at a fixed tick rate and serializes
// every outside access to it.
package hockeyserver

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/wybiral/air-hockey/common/types"
	"github.com/wybiral/air-hockey/game/hockey"
)

// ErrStopped is returned by commands submitted once the loop has exited.
var ErrStopped = errors.New("simulation loop is stopped")

// frames buffered per observer before they start being dropped
const observerBuffer = 4

type Server struct {
	game        *hockey.HockeyGame
	tickspersec int

	ticknum int
	ticking bool

	commands chan command
	done     chan struct{}
	running  atomic.Bool
	lastTick atomic.Int64 // unix nanoseconds

	stateobservers      []chan []byte
	stateobserversMutex *sync.Mutex

	tearDownCallbacks      []types.TearDownCallback
	tearDownCallbacksMutex *sync.Mutex

	debugNbTicks    int
	debugNbCommands int
	debugNbDropped  int
}

func NewServer(game *hockey.HockeyGame, tickspersec int) *Server {
	return &Server{
		game:        game,
		tickspersec: tickspersec,

		commands: make(chan command),
		done:     make(chan struct{}),

		stateobservers:      make([]chan []byte, 0),
		stateobserversMutex: &sync.Mutex{},

		tearDownCallbacks:      make([]types.TearDownCallback, 0),
		tearDownCallbacksMutex: &sync.Mutex{},
	}
}

func (server *Server) GetTicksPerSecond() int {
	return server.tickspersec
}

func (server *Server) GetGame() *hockey.HockeyGame {
	return server.game
}

// IsRunning can be called from any goroutine.
func (server *Server) IsRunning() bool {
	return server.running.Load()
}

// SinceLastTick can be called from any goroutine.
func (server *Server) SinceLastTick() time.Duration {
	last := server.lastTick.Load()
	if last == 0 {
		return 0
	}

	return time.Since(time.Unix(0, last))
}

// HealthCheck reports the loop as healthy while it runs and ticks.
func (server *Server) HealthCheck() (error, bool) {
	if !server.IsRunning() {
		return errors.New("simulation loop is not running"), false
	}

	// a stalled loop misses many ticks in a row
	if server.SinceLastTick() > time.Second {
		return errors.Errorf("no tick for %s", server.SinceLastTick()), false
	}

	return nil, true
}

func (server *Server) SubscribeStateObservation() chan []byte {
	ch := make(chan []byte, observerBuffer)

	server.stateobserversMutex.Lock()
	server.stateobservers = append(server.stateobservers, ch)
	server.stateobserversMutex.Unlock()

	return ch
}

func (server *Server) UnsubscribeStateObservation(ch chan []byte) {
	server.stateobserversMutex.Lock()
	defer server.stateobserversMutex.Unlock()

	for i, observer := range server.stateobservers {
		if observer == ch {
			server.stateobservers = append(server.stateobservers[:i], server.stateobservers[i+1:]...)
			return
		}
	}
}

func (server *Server) publish(frame []byte) {
	server.stateobserversMutex.Lock()
	defer server.stateobserversMutex.Unlock()

	for _, observer := range server.stateobservers {
		select {
		case observer <- frame:
		default:
			server.debugNbDropped++
		}
	}
}
