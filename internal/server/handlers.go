package server

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/matzehuels/planforge/pkg/errors"
	"github.com/matzehuels/planforge/pkg/pipeline"
	"github.com/matzehuels/planforge/pkg/plan"
	"github.com/matzehuels/planforge/pkg/render/floor"
)

// floorplanRequest is the POST /api/floorplans body. Either a description
// (generate then render) or a payload (render only) must be present.
type floorplanRequest struct {
	Description string   `json:"description,omitempty"`
	Payload     string   `json:"payload,omitempty"`
	VizTypes    []string `json:"viz_types,omitempty"`
	Formats     []string `json:"formats,omitempty"`
	Detailed    bool     `json:"detailed,omitempty"`
	Thumbnail   bool     `json:"thumbnail,omitempty"`
	Refresh     bool     `json:"refresh,omitempty"`
}

// floorplanResponse is the success body. Artifacts are base64-encoded and
// keyed like the pipeline keys them ("floor.png", "adjacency.svg", ...).
type floorplanResponse struct {
	PayloadHash string             `json:"payload_hash"`
	Plan        *plan.Plan         `json:"plan"`
	Warnings    []string           `json:"warnings,omitempty"`
	Skipped     []floor.RoomResult `json:"skipped,omitempty"`
	Artifacts   map[string]string  `json:"artifacts"`
	Cached      bool               `json:"cached"`
	Stats       statsResponse      `json:"stats"`
}

type statsResponse struct {
	Rooms      int   `json:"rooms"`
	Drawn      int   `json:"drawn"`
	Skipped    int   `json:"skipped"`
	GenerateMS int64 `json:"generate_ms"`
	RenderMS   int64 `json:"render_ms"`
}

type errorResponse struct {
	Error     errorBody `json:"error"`
	RequestID string    `json:"request_id,omitempty"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleFloorplans(w http.ResponseWriter, r *http.Request) {
	var req floorplanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}

	if req.Description == "" && req.Payload == "" {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "description or payload is required"))
		return
	}
	if err := pipeline.ValidateVizTypes(req.VizTypes); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidVizType, err, "invalid viz_types"))
		return
	}
	if err := pipeline.ValidateFormats(req.Formats); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid formats"))
		return
	}

	result, err := s.runner.Execute(r.Context(), pipeline.Options{
		Description: req.Description,
		Payload:     req.Payload,
		VizTypes:    req.VizTypes,
		Formats:     req.Formats,
		Detailed:    req.Detailed,
		Thumbnail:   req.Thumbnail,
		Refresh:     req.Refresh,
		Logger:      s.logger,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	artifacts := make(map[string]string, len(result.Artifacts))
	for name, data := range result.Artifacts {
		artifacts[name] = base64.StdEncoding.EncodeToString(data)
	}

	writeJSON(w, http.StatusOK, floorplanResponse{
		PayloadHash: result.PayloadHash,
		Plan:        result.Plan,
		Warnings:    result.Report.Warnings(),
		Skipped:     result.Report.Skipped(),
		Artifacts:   artifacts,
		Cached:      result.CacheInfo.GenerateHit,
		Stats: statsResponse{
			Rooms:      result.Stats.RoomCount,
			Drawn:      result.Stats.DrawnCount,
			Skipped:    result.Stats.SkippedCount,
			GenerateMS: result.Stats.GenerateTime.Milliseconds(),
			RenderMS:   result.Stats.RenderTime.Milliseconds(),
		},
	})
}

// writeError maps an error's code to an HTTP status and renders the
// machine-readable body.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)

	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidVizType,
		errors.ErrCodeInvalidModel, errors.ErrCodeInvalidDimensions,
		errors.ErrCodeMalformedResponse, errors.ErrCodeIncompleteSchema:
		status = http.StatusBadRequest
	case errors.ErrCodeUnauthorized:
		status = http.StatusUnauthorized
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeGeneration:
		status = http.StatusBadGateway
	}

	if status >= 500 {
		s.logger.Error("request failed", "id", RequestID(r.Context()), "err", err)
	}

	writeJSON(w, status, errorResponse{
		Error: errorBody{
			Code:    string(code),
			Message: errors.UserMessage(err),
		},
		RequestID: RequestID(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
