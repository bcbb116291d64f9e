package handler

import (
	"net/http"

	"github.com/wybiral/air-hockey/vizserver/types"
)

func Randomize(vizhockey *types.VizHockey) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := vizhockey.GetSimulation().Randomize(r.Context()); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
