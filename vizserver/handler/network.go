package handler

import (
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/wybiral/air-hockey/hockeyserver"
	"github.com/wybiral/air-hockey/vizserver/types"
)

// uploaded networks are a few tens of kilobytes
const maxNetworkSize = 8 << 20

func GetNetwork(vizhockey *types.VizHockey) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := vizhockey.GetSimulation().SaveNetwork(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", "attachment; filename=\"network.json\"")
		w.Write(data)
	}
}

// PostNetwork replaces the network with the request body. An empty body changes nothing.
func PostNetwork(vizhockey *types.VizHockey) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxNetworkSize))
		if err != nil {
			writeError(w, badRequest(errors.Wrap(err, "Could not read network")))
			return
		}

		loaded, err := vizhockey.GetSimulation().LoadNetwork(r.Context(), data)
		if err != nil {
			if errors.Is(err, hockeyserver.ErrStopped) || r.Context().Err() != nil {
				writeError(w, err)
				return
			}

			writeError(w, badRequest(err))
			return
		}

		if !loaded {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"status": "loaded"})
	}
}
