package hockeyserver

import (
	"strconv"
	"time"

	"github.com/wybiral/air-hockey/common/utils"
)

const monitorfreq = time.Second

// monitoring runs on the loop goroutine, between two ticks.
func (server *Server) monitoring() {
	stats := server.game.Stats()

	server.stateobserversMutex.Lock()
	dropped := server.debugNbDropped
	server.debugNbDropped = 0
	server.stateobserversMutex.Unlock()

	msg := "-- MONITORING -- " +
		strconv.Itoa(server.debugNbTicks) + " ticks per " + monitorfreq.String() + "; " +
		strconv.Itoa(server.debugNbCommands) + " commands per " + monitorfreq.String() + "; " +
		strconv.Itoa(dropped) + " frames dropped; " +
		"last tick " + utils.FloatToStr(utils.DurationMs(server.SinceLastTick()), 2) + "ms ago; " +
		"episode " + strconv.Itoa(stats.Episode) + "; " +
		"hits " + strconv.Itoa(stats.HitsA) + "/" + strconv.Itoa(stats.HitsB)

	if stats.LastTouch != "" {
		msg += "; last touch " + stats.LastTouch
	}

	if stats.Learner != nil {
		msg += "; " +
			strconv.Itoa(stats.Learner.Buffered) + " samples; " +
			strconv.Itoa(stats.Learner.Updates) + " updates"
	}

	utils.Debug("monitoring", msg)

	server.debugNbTicks = 0
	server.debugNbCommands = 0
}
