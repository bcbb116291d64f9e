package handler

import (
	"html/template"
	"net/http"

	"github.com/wybiral/air-hockey/game/hockey"
	"github.com/wybiral/air-hockey/vizserver/types"
)

var homeTemplate = template.Must(template.New("home").Parse(`<h2>Air hockey</h2>
<p>Mode <b>{{.Init.Mode}}</b> on a {{.Init.Width}}x{{.Init.Height}} table, {{.Watchers}} watchers right now.</p>
<ul>
<li>tick {{.Stats.Tick}}</li>
<li>episode {{.Stats.Episode}}</li>
<li>puck hits {{.Stats.HitsA}} (A) / {{.Stats.HitsB}} (B), {{.Stats.WallHits}} on walls</li>
{{with .Stats.Learner}}<li>{{.Buffered}} samples buffered, {{.Recorded}} recorded, {{.Evictions}} evicted, {{.Updates}} updates</li>
{{end}}</ul>
<p>Keys: A {{.Init.Keys.A.Up}} {{.Init.Keys.A.Left}} {{.Init.Keys.A.Down}} {{.Init.Keys.A.Right}},
B {{.Init.Keys.B.Up}} {{.Init.Keys.B.Left}} {{.Init.Keys.B.Down}} {{.Init.Keys.B.Right}}.
Frames are streamed on <code>/ws</code>.</p>
`))

func Home(vizhockey *types.VizHockey) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := vizhockey.GetSimulation().Stats(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		homeTemplate.Execute(w, struct {
			Init     types.VizInitMessageData
			Watchers int
			Stats    hockey.Stats
		}{
			Init:     vizhockey.GetInit(),
			Watchers: vizhockey.GetNumberWatchers(),
			Stats:    stats,
		})
	}
}

func Stats(vizhockey *types.VizHockey) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := vizhockey.GetSimulation().Stats(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}
