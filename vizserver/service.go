package vizserver

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/wybiral/air-hockey/common/healthcheck"
	"github.com/wybiral/air-hockey/common/input"
	"github.com/wybiral/air-hockey/common/utils"
	apphandler "github.com/wybiral/air-hockey/vizserver/handler"
	"github.com/wybiral/air-hockey/vizserver/types"
)

type VizService struct {
	addr      string
	logger    io.Writer
	vizhockey *types.VizHockey
	health    *healthcheck.HealthCheckServer
}

// NewVizService serves the viz of one simulation; every request is logged
// to logger in the combined log format.
func NewVizService(addr string, simulation types.Simulation, keys *input.State, init types.VizInitMessageData, logger io.Writer) *VizService {
	return &VizService{
		addr:      addr,
		logger:    logger,
		vizhockey: types.NewVizHockey(simulation, keys, init),
		health:    healthcheck.NewHealthCheckServer(),
	}
}

func (viz *VizService) RegisterHealthCheck(name string, handler healthcheck.HealthCheckHandler) {
	viz.health.Register(name, handler)
}

func (viz *VizService) GetVizHockey() *types.VizHockey {
	return viz.vizhockey
}

func (viz *VizService) Router() http.Handler {
	logger := viz.logger
	router := mux.NewRouter()

	router.Handle("/", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Home(viz.vizhockey)),
	)).Methods("GET")

	router.Handle("/health", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(viz.health.HttpHandler),
	)).Methods("GET")

	router.Handle("/stats", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Stats(viz.vizhockey)),
	)).Methods("GET")

	router.Handle("/network", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.GetNetwork(viz.vizhockey)),
	)).Methods("GET")

	router.Handle("/network", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.PostNetwork(viz.vizhockey)),
	)).Methods("POST")

	router.Handle("/randomize", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Randomize(viz.vizhockey)),
	)).Methods("POST")

	router.Handle("/ws", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Websocket(viz.vizhockey)),
	)).Methods("GET")

	return router
}

// ListenAndServe blocks until ctx is cancelled or the listener fails.
func (viz *VizService) ListenAndServe(ctx context.Context) error {
	server := &http.Server{
		Addr:    viz.addr,
		Handler: viz.Router(),
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	utils.Debug("viz-server", "VIZ Listening on "+viz.addr)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}

	return nil
}
