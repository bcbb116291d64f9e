package hockeyserver

import (
	"context"
	"strconv"
	"time"

	"github.com/wybiral/air-hockey/common/types"
	"github.com/wybiral/air-hockey/common/utils"
)

// Run ticks the game until ctx is cancelled. It is the only goroutine
// touching the game while it runs; teardown callbacks are executed on exit.
func (server *Server) Run(ctx context.Context) error {

	tickduration := time.Duration((1000000 / time.Duration(server.tickspersec)) * time.Microsecond)
	ticker := time.NewTicker(tickduration)
	defer ticker.Stop()

	monitor := time.NewTicker(monitorfreq)
	defer monitor.Stop()

	server.running.Store(true)
	defer close(server.done)
	defer server.TearDown()
	defer server.running.Store(false)

	utils.Debug("core-loop", "Ticking at "+strconv.Itoa(server.tickspersec)+" tps, mode "+server.game.GetMode())

	for {
		select {
		case <-ctx.Done():
			{
				utils.Debug("core-loop", "Received stop ticking signal")
				return nil
			}
		case cmd := <-server.commands:
			{
				server.execute(cmd)
			}
		case <-monitor.C:
			{
				server.monitoring()
			}
		case <-ticker.C:
			{
				server.DoTick()
			}
		}
	}
}

// DoTick advances the game by one tick and publishes the resulting frame.
func (server *Server) DoTick() {

	server.ticking = true
	defer func() { server.ticking = false }()

	server.ticknum++
	server.debugNbTicks++

	dolog := (server.ticknum % server.tickspersec) == 0

	if dolog {
		utils.Debug("core-loop", "######## Tick ######## "+strconv.Itoa(server.ticknum))
	}

	///////////////////////////////////////////////////////////////////////////
	// Updating world state
	///////////////////////////////////////////////////////////////////////////
	server.game.Step(server.ticknum, 1.0/float64(server.tickspersec))
	server.lastTick.Store(time.Now().UnixNano())

	///////////////////////////////////////////////////////////////////////////
	// Pushing updated state to viz
	///////////////////////////////////////////////////////////////////////////
	server.publish(server.game.GetVizFrameJson())
}

func (server *Server) AddTearDownCall(fn types.TearDownCallback) {
	server.tearDownCallbacksMutex.Lock()
	defer server.tearDownCallbacksMutex.Unlock()

	server.tearDownCallbacks = append(server.tearDownCallbacks, fn)
}

func (server *Server) TearDown() {
	utils.Debug("hockey-server", "teardown")

	server.tearDownCallbacksMutex.Lock()

	for i := len(server.tearDownCallbacks) - 1; i >= 0; i-- {
		utils.Debug("teardown", "Executing TearDownCallback")
		if err := server.tearDownCallbacks[i](); err != nil {
			utils.Debug("teardown", "TearDownCallback failed: "+err.Error())
		}
	}

	// Reset to avoid calling teardown callback multiple times
	server.tearDownCallbacks = make([]types.TearDownCallback, 0)

	server.tearDownCallbacksMutex.Unlock()
}
