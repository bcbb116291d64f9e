package types

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/pkg/errors"
	"github.com/wybiral/air-hockey/common/config"
	"github.com/wybiral/air-hockey/common/input"
	"github.com/wybiral/air-hockey/common/utils"
	"github.com/wybiral/air-hockey/game/hockey"
)

// Simulation is the part of the simulation loop exposed to viz clients.
type Simulation interface {
	Randomize(ctx context.Context) error
	LoadNetwork(ctx context.Context, data []byte) (bool, error)
	SaveNetwork(ctx context.Context) ([]byte, error)
	Stats(ctx context.Context) (hockey.Stats, error)
	SubscribeStateObservation() chan []byte
	UnsubscribeStateObservation(ch chan []byte)
}

type VizInitMessageData struct {
	Mode   string              `json:"mode"`
	Width  float64             `json:"width"`
	Height float64             `json:"height"`
	Keys   config.KeysConfig   `json:"keys"`
	Colors config.ColorsConfig `json:"colors"`
}

func MakeVizInitMessageData(conf config.Config) VizInitMessageData {
	return VizInitMessageData{
		Mode:   conf.Mode,
		Width:  conf.Table.Width,
		Height: conf.Table.Height,
		Keys:   conf.Keys,
		Colors: conf.Colors,
	}
}

type VizInitMessage struct {
	Type string             `json:"type"`
	Data VizInitMessageData `json:"data"`
}

// VizIncomingMessage is sent by viz clients.
type VizIncomingMessage struct {
	Type string `json:"type"`
	Code string `json:"code,omitempty"`
}

type VizHockey struct {
	simulation Simulation
	keys       *input.State
	init       VizInitMessageData
	pool       *WatcherMap

	// number of watchers holding each code; a code leaves the input state
	// when its last holder lets go
	holders      map[string]int
	holdersMutex *sync.Mutex
}

func NewVizHockey(simulation Simulation, keys *input.State, init VizInitMessageData) *VizHockey {
	return &VizHockey{
		simulation: simulation,
		keys:       keys,
		init:       init,
		pool:       NewWatcherMap(),

		holders:      make(map[string]int),
		holdersMutex: &sync.Mutex{},
	}
}

func (vizhockey *VizHockey) GetSimulation() Simulation {
	return vizhockey.simulation
}

func (vizhockey *VizHockey) GetInit() VizInitMessageData {
	return vizhockey.init
}

func (vizhockey *VizHockey) SetWatcher(watcher *Watcher) {
	vizhockey.pool.Set(watcher.GetId(), watcher)

	initMsg := VizInitMessage{
		Type: "init",
		Data: vizhockey.init,
	}

	err := watcher.conn.WriteJSON(initMsg)
	if err != nil {
		utils.Debug("viz-server", "Could not send VizInitMessage JSON;"+err.Error())
	}
}

// RemoveWatcher forgets the watcher and releases every key it still holds.
func (vizhockey *VizHockey) RemoveWatcher(watcherid string) {
	watcher := vizhockey.pool.Find(watcherid)
	if watcher == nil {
		return
	}

	vizhockey.holdersMutex.Lock()
	for _, code := range watcher.heldKeys() {
		vizhockey.releaseLocked(watcher, code)
	}
	vizhockey.holdersMutex.Unlock()

	vizhockey.pool.Remove(watcherid)
}

func (vizhockey *VizHockey) GetNumberWatchers() int {
	return vizhockey.pool.Size()
}

// HandleMessage applies one message read from the watcher's socket.
func (vizhockey *VizHockey) HandleMessage(ctx context.Context, watcher *Watcher, data []byte) error {
	var msg VizIncomingMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return errors.Wrap(err, "Could not decode viz message")
	}

	switch msg.Type {
	case "keydown":
		if msg.Code == "" {
			return errors.New("keydown without code")
		}
		vizhockey.press(watcher, msg.Code)
	case "keyup":
		if msg.Code == "" {
			return errors.New("keyup without code")
		}
		vizhockey.release(watcher, msg.Code)
	case "randomize":
		return vizhockey.simulation.Randomize(ctx)
	default:
		return errors.Errorf("unknown viz message type %q", msg.Type)
	}

	return nil
}

func (vizhockey *VizHockey) press(watcher *Watcher, code string) {
	vizhockey.holdersMutex.Lock()
	defer vizhockey.holdersMutex.Unlock()

	if !watcher.press(code) {
		return
	}

	vizhockey.holders[code]++
	vizhockey.keys.Press(code)
}

func (vizhockey *VizHockey) release(watcher *Watcher, code string) {
	vizhockey.holdersMutex.Lock()
	defer vizhockey.holdersMutex.Unlock()

	vizhockey.releaseLocked(watcher, code)
}

func (vizhockey *VizHockey) releaseLocked(watcher *Watcher, code string) {
	if !watcher.release(code) {
		return
	}

	vizhockey.holders[code]--
	if vizhockey.holders[code] > 0 {
		return
	}

	delete(vizhockey.holders, code)
	vizhockey.keys.Release(code)
}
