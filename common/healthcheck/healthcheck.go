package healthcheck

import (
	"encoding/json"
	"net/http"

	"github.com/wybiral/air-hockey/common/utils"
)

type HealthCheckServer struct {
	Checkers []namedChecker
}

type namedChecker struct {
	name    string
	handler HealthCheckHandler
}

type HealthChecks struct {
	Status bool
	Name   string
	Error  string `json:",omitempty"`
}

type HealthCheckHttpResponse struct {
	Checks     []HealthChecks
	StatusCode int
}

type HealthCheckHandler func() (err error, ok bool)

func NewHealthCheckServer() *HealthCheckServer {
	return &HealthCheckServer{
		Checkers: make([]namedChecker, 0),
	}
}

func (server *HealthCheckServer) Register(name string, handler HealthCheckHandler) {
	server.Checkers = append(server.Checkers, namedChecker{
		name:    name,
		handler: handler,
	})
}

func (server *HealthCheckServer) Check() HealthCheckHttpResponse {
	res := HealthCheckHttpResponse{
		Checks:     make([]HealthChecks, 0),
		StatusCode: http.StatusOK,
	}

	for _, checker := range server.Checkers {
		err, checkerRes := checker.handler()

		check := HealthChecks{
			Status: err == nil && checkerRes,
			Name:   checker.name,
		}

		if err != nil {
			check.Error = err.Error()
		}

		if !check.Status {
			res.StatusCode = http.StatusServiceUnavailable
		}

		res.Checks = append(res.Checks, check)
	}

	return res
}

func (server *HealthCheckServer) HttpHandler(w http.ResponseWriter, r *http.Request) {
	res := server.Check()

	data, err := json.Marshal(res)
	utils.Check(err, "Failed to marshal response")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)
	w.Write(data)
}
