package handler

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/wybiral/air-hockey/common/utils"
	"github.com/wybiral/air-hockey/vizserver/types"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func Websocket(vizhockey *types.VizHockey) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {

		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			utils.Debug("viz-server", "upgrade: "+err.Error())
			return
		}

		watcher := types.NewWatcher(c)
		vizhockey.SetWatcher(watcher)

		frames := vizhockey.GetSimulation().SubscribeStateObservation()

		// Listen to messages incoming from viz; mandatory to notice when websocket is closed client side
		clientclosedsocket := make(chan struct{})
		go func() {
			defer close(clientclosedsocket)

			for {
				_, p, err := c.ReadMessage()
				if err != nil {
					return
				}

				if err := vizhockey.HandleMessage(r.Context(), watcher, p); err != nil {
					utils.Debug("viz-server", "watcher "+watcher.GetId()+": "+err.Error())
				}
			}
		}()

		defer func() {
			vizhockey.GetSimulation().UnsubscribeStateObservation(frames)
			c.Close()
			<-clientclosedsocket
			vizhockey.RemoveWatcher(watcher.GetId())
			utils.Debug("viz-server", "watcher "+watcher.GetId()+" left")
		}()

		for {
			select {
			case <-clientclosedsocket:
				{
					return
				}
			case frame := <-frames:
				{
					if err := watcher.WriteFrame(frame); err != nil {
						return
					}
				}
			}
		}
	}
}
