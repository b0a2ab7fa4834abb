package handler

import (
	"net/http"
	"time"

	"github.com/svcbase/item-service/internal/commons"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type StatusResponse struct {
	Status      string    `json:"status"`
	Version     string    `json:"version"`
	Environment string    `json:"environment"`
	Timestamp   time.Time `json:"timestamp"`
}

type HelloWorldResponse struct {
	Message  string `json:"message"`
	Status   string `json:"status"`
	Endpoint string `json:"endpoint"`
}

// ExampleResponse is a deliberately nested payload showing how typed
// responses compose; clients use it to verify serialization end to end.
type ExampleResponse struct {
	Message    string            `json:"message"`
	Data       ExampleData       `json:"data"`
	Pagination ExamplePagination `json:"pagination"`
}

type ExampleData struct {
	ID         int64             `json:"id"`
	Attributes ExampleAttributes `json:"attributes"`
	Tags       []string          `json:"tags"`
}

type ExampleAttributes struct {
	Kind    string `json:"kind"`
	Enabled bool   `json:"enabled"`
	Weight  int    `json:"weight"`
}

type ExamplePagination struct {
	Page    int  `json:"page"`
	PerPage int  `json:"per_page"`
	Total   int  `json:"total"`
	HasNext bool `json:"has_next"`
}

// APIHandler serves the template endpoints that carry no item state.
type APIHandler struct {
	version     string
	environment string
}

func NewAPIHandler(version, environment string) *APIHandler {
	return &APIHandler{
		version:     version,
		environment: environment,
	}
}

func (h *APIHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	commons.RespondWithJSON(w, http.StatusOK, MessageResponse{Message: "Welcome to the Item Service API v1!"})
}

func (h *APIHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	commons.RespondWithJSON(w, http.StatusOK, StatusResponse{
		Status:      "operational",
		Version:     h.version,
		Environment: h.environment,
		Timestamp:   time.Now().UTC(),
	})
}

func (h *APIHandler) HandleHelloWorld(w http.ResponseWriter, r *http.Request) {
	commons.RespondWithJSON(w, http.StatusOK, HelloWorldResponse{
		Message:  "Hello World!",
		Status:   "success",
		Endpoint: "/hello-world",
	})
}

func (h *APIHandler) HandleExample(w http.ResponseWriter, r *http.Request) {
	commons.RespondWithJSON(w, http.StatusOK, ExampleResponse{
		Message: "This is an example of a nested response payload",
		Data: ExampleData{
			ID: 1,
			Attributes: ExampleAttributes{
				Kind:    "sample",
				Enabled: true,
				Weight:  42,
			},
			Tags: []string{"example", "template"},
		},
		Pagination: ExamplePagination{
			Page:    1,
			PerPage: 10,
			Total:   1,
			HasNext: false,
		},
	})
}
