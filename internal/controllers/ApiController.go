package controllers

import (
	"errors"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gookit/validate"

	"wld/internal/github"
	"wld/internal/models"
	"wld/internal/providers"
	"wld/internal/services"
	"wld/internal/structures"
	"wld/internal/winelog"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type ApiController struct {
	logger  providers.Logger
	service services.WineLogServiceInterface
	debug   bool
}

func NewApiController(logger providers.Logger, service services.WineLogServiceInterface, conf *structures.Config) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		debug:   conf.Debug,
	}
}

type loadResponse struct {
	Success   bool            `json:"success"`
	Timestamp string          `json:"timestamp"`
	Data      models.Document `json:"data"`
}

type saveResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Date      string `json:"date"`
}

type statsResponse struct {
	Success   bool                 `json:"success"`
	Timestamp string               `json:"timestamp"`
	Stats     *models.DerivedStats `json:"stats"`
}

type importResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func (ac *ApiController) writeJSON(w http.ResponseWriter, status int, v any) {
	gson, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

// writeError maps err onto the failure envelope. The raw error detail is
// echoed only in debug mode; production callers get the message alone.
func (ac *ApiController) writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := models.ErrorResponse{
		Success:   false,
		Message:   message,
		Timestamp: timestamp(),
	}
	if ac.debug && err != nil {
		resp.Error = err.Error()
	}
	ac.writeJSON(w, status, resp)
}

// storeFailure translates remote-store errors into the HTTP taxonomy:
// credential problems map to 401, a misconfigured repository location to
// 404, everything else (stale-revision conflicts included) to 500.
func (ac *ApiController) storeFailure(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, github.ErrUnauthorized), errors.Is(err, github.ErrForbidden):
		ac.writeError(w, http.StatusUnauthorized, "GitHub authentication failed", err)
	case errors.Is(err, github.ErrNotFound):
		ac.writeError(w, http.StatusNotFound, "Configured repository, branch or path does not exist", err)
	case errors.Is(err, winelog.ErrRevisionConflict):
		ac.writeError(w, http.StatusInternalServerError, "Concurrent modification detected, please retry", err)
	default:
		ac.writeError(w, http.StatusInternalServerError, "Remote store operation failed", err)
	}
}

func (ac *ApiController) Load(w http.ResponseWriter, r *http.Request) {
	doc, err := ac.service.Load(r.Context())
	if err != nil {
		ac.logger.Errorf(providers.TypeGet, "Load failed: %s", err)
		ac.storeFailure(w, err)
		return
	}

	ac.writeJSON(w, http.StatusOK, loadResponse{
		Success:   true,
		Timestamp: timestamp(),
		Data:      doc,
	})
}

func (ac *ApiController) Save(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var payload models.SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		ac.writeError(w, http.StatusBadRequest, "Invalid JSON body", err)
		return
	}

	v := validate.Struct(&payload)
	if !v.Validate() {
		ac.writeError(w, http.StatusBadRequest, v.Errors.One(), nil)
		return
	}
	if string(payload.Data) == "null" {
		ac.writeError(w, http.StatusBadRequest, "data is required", nil)
		return
	}

	if err := ac.service.Save(r.Context(), payload.Date, payload.Data); err != nil {
		ac.logger.Errorf(providers.TypePost, "Save for %s failed: %s", payload.Date, err)
		ac.storeFailure(w, err)
		return
	}

	ac.writeJSON(w, http.StatusOK, saveResponse{
		Success:   true,
		Message:   "Record saved",
		Timestamp: timestamp(),
		Date:      payload.Date,
	})
}

func (ac *ApiController) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := ac.service.Stats(r.Context())
	if err != nil {
		ac.logger.Errorf(providers.TypeGet, "Stats failed: %s", err)
		ac.storeFailure(w, err)
		return
	}

	ac.writeJSON(w, http.StatusOK, statsResponse{
		Success:   true,
		Timestamp: timestamp(),
		Stats:     stats,
	})
}

func (ac *ApiController) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var payload models.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		ac.writeError(w, http.StatusBadRequest, "Invalid JSON body", err)
		return
	}
	if len(payload.Data) == 0 || string(payload.Data) == "null" {
		ac.writeError(w, http.StatusBadRequest, "data is required", nil)
		return
	}

	var doc models.Document
	if err := json.Unmarshal(payload.Data, &doc); err != nil {
		ac.writeError(w, http.StatusBadRequest, "data must be an object of date keys", err)
		return
	}

	if err := ac.service.Import(r.Context(), doc); err != nil {
		ac.logger.Errorf(providers.TypePost, "Import failed: %s", err)
		ac.storeFailure(w, err)
		return
	}

	ac.writeJSON(w, http.StatusOK, importResponse{
		Success: true,
		Message: "Import complete",
	})
}
