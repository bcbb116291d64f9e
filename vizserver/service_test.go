package vizserver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wybiral/air-hockey/common/config"
	"github.com/wybiral/air-hockey/common/input"
	"github.com/wybiral/air-hockey/common/utils"
	"github.com/wybiral/air-hockey/game/hockey"
	"github.com/wybiral/air-hockey/game/learning"
	"github.com/wybiral/air-hockey/hockeyserver"
	"github.com/wybiral/air-hockey/vizserver/types"
)

func init() {
	utils.LogFn = utils.SilentLog
}

type fixture struct {
	http   *httptest.Server
	server *hockeyserver.Server
	keys   *input.State
}

func newFixture(t *testing.T, mode string) *fixture {
	conf := config.Default()
	conf.Mode = mode
	conf.Learning.Capacity = 1000

	keys := input.NewState()
	game, err := hockey.NewHockeyGame(conf, keys, nil, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	server := hockeyserver.NewServer(game, 200)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		server.Run(ctx)
	}()

	viz := NewVizService("", server, keys, types.MakeVizInitMessageData(conf), io.Discard)
	viz.RegisterHealthCheck("loop", server.HealthCheck)

	ts := httptest.NewServer(viz.Router())

	t.Cleanup(func() {
		ts.Close()
		cancel()
		<-stopped
	})

	return &fixture{
		http:   ts,
		server: server,
		keys:   keys,
	}
}

func (f *fixture) do(t *testing.T, method string, path string, body []byte) (*http.Response, []byte) {
	req, err := http.NewRequest(method, f.http.URL+path, bytes.NewReader(body))
	require.NoError(t, err)

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res, data
}

func TestHome(t *testing.T) {
	f := newFixture(t, config.ModeLearning)

	res, body := f.do(t, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, string(body), "learning")
	assert.Contains(t, string(body), "samples buffered")
}

func TestHealth(t *testing.T) {
	f := newFixture(t, config.ModeStatic)

	res, _ := f.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestNetworkRoundTrip(t *testing.T) {
	f := newFixture(t, config.ModeLearning)

	res, saved := f.do(t, http.MethodGet, "/network", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "application/json", res.Header.Get("Content-Type"))

	var topology learning.Topology
	require.NoError(t, json.Unmarshal(saved, &topology))
	assert.Equal(t, learning.DefaultTopology, topology)

	replacement, err := learning.MarshalNetwork(learning.NewPerceptron(learning.DefaultTopology, rand.New(rand.NewSource(5))))
	require.NoError(t, err)

	res, _ = f.do(t, http.MethodPost, "/network", replacement)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	_, current := f.do(t, http.MethodGet, "/network", nil)
	assert.JSONEq(t, string(replacement), string(current))
}

func TestPostNetworkRejectsWrongTopology(t *testing.T) {
	f := newFixture(t, config.ModeLearning)

	_, before := f.do(t, http.MethodGet, "/network", nil)

	wrong, err := learning.MarshalNetwork(learning.NewPerceptron(learning.Topology{Inputs: 10, Hidden: 8, Outputs: 4}, rand.New(rand.NewSource(5))))
	require.NoError(t, err)

	examples := []struct {
		Name   string
		Body   []byte
		Status int
	}{
		{Name: "Empty body is a no-op", Body: nil, Status: http.StatusNoContent},
		{Name: "Malformed body", Body: []byte("{\"inputs\":"), Status: http.StatusBadRequest},
		{Name: "Wrong topology", Body: wrong, Status: http.StatusBadRequest},
	}

	for _, example := range examples {
		t.Run(example.Name, func(t *testing.T) {
			res, _ := f.do(t, http.MethodPost, "/network", example.Body)
			assert.Equal(t, example.Status, res.StatusCode)

			_, after := f.do(t, http.MethodGet, "/network", nil)
			assert.Equal(t, before, after)
		})
	}
}

func TestGetNetworkWithoutAgent(t *testing.T) {
	f := newFixture(t, config.ModeVersus)

	res, _ := f.do(t, http.MethodGet, "/network", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestRandomize(t *testing.T) {
	f := newFixture(t, config.ModeKeyboard)

	res, _ := f.do(t, http.MethodPost, "/randomize", nil)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)

	res, body := f.do(t, http.MethodGet, "/stats", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var stats hockey.Stats
	require.NoError(t, json.Unmarshal(body, &stats))
	assert.Equal(t, 1, stats.Episode)
}

func dial(t *testing.T, f *fixture) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(f.http.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	var init types.VizInitMessage
	require.NoError(t, conn.ReadJSON(&init))
	assert.Equal(t, "init", init.Type)

	return conn
}

func TestWebsocketStreamsFrames(t *testing.T) {
	f := newFixture(t, config.ModeVersus)
	conn := dial(t, f)
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var msg struct {
		Type string          `json:"type"`
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&msg))

	assert.Equal(t, "frame", msg.Type)
	assert.Contains(t, string(msg.Data), "\"paddle\"")
}

func TestWebsocketKeysAreReleasedOnClose(t *testing.T) {
	f := newFixture(t, config.ModeVersus)
	conn := dial(t, f)

	require.NoError(t, conn.WriteJSON(types.VizIncomingMessage{Type: "keydown", Code: "KeyW"}))
	require.NoError(t, conn.WriteJSON(types.VizIncomingMessage{Type: "keydown", Code: "ArrowUp"}))
	require.NoError(t, conn.WriteJSON(types.VizIncomingMessage{Type: "keyup", Code: "ArrowUp"}))

	require.Eventually(t, func() bool {
		return f.keys.IsDown("KeyW") && !f.keys.IsDown("ArrowUp")
	}, 2*time.Second, 5*time.Millisecond)

	f.keys.Press("KeyD") // held by another client

	conn.Close()

	require.Eventually(t, func() bool {
		return !f.keys.IsDown("KeyW")
	}, 2*time.Second, 5*time.Millisecond)

	assert.True(t, f.keys.IsDown("KeyD"))
}

func TestWebsocketRandomize(t *testing.T) {
	f := newFixture(t, config.ModeKeyboard)
	conn := dial(t, f)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(types.VizIncomingMessage{Type: "randomize"}))

	require.Eventually(t, func() bool {
		stats, err := f.server.Stats(context.Background())
		return err == nil && stats.Episode == 1
	}, 2*time.Second, 5*time.Millisecond)
}
