package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/matzehuels/hillclimb/pkg/buildinfo"
	apperr "github.com/matzehuels/hillclimb/pkg/errors"
	"github.com/matzehuels/hillclimb/pkg/pipeline"
)

// SolveResponse is the body of a successful solve.
type SolveResponse struct {
	Cost     int      `json:"cost"`
	Path     [][2]int `json:"path,omitempty"`
	Sources  int      `json:"sources"`
	Expanded int      `json:"expanded"`
}

// ErrorResponse is the body of a failed request.
type ErrorResponse struct {
	Code      apperr.Code `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"request_id,omitempty"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
	buildinfo.Info
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Info: buildinfo.Get()})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	opts, err := s.solveOptions(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, apperr.MaxGridBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			err = apperr.New(apperr.ErrCodeInvalidInput, "grid too large (max %d bytes)", apperr.MaxGridBytes)
		} else {
			err = apperr.Wrap(apperr.ErrCodeInvalidInput, err, "read request body")
		}
		s.writeError(w, r, err)
		return
	}
	if err := apperr.ValidateGridSize(len(body)); err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Grid = string(body)

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := SolveResponse{
		Cost:     result.Search.Cost,
		Sources:  result.Stats.Sources,
		Expanded: result.Stats.Expanded,
	}
	if !opts.SkipPath {
		resp.Path = make([][2]int, len(result.Search.Path))
		for i, id := range result.Search.Path {
			row, col := result.Grid.Coord(id)
			resp.Path[i] = [2]int{row, col}
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// solveOptions builds pipeline options from the query string and server
// configuration.
func (s *Server) solveOptions(r *http.Request) (pipeline.Options, error) {
	opts := pipeline.Options{
		Challenge: pipeline.DefaultChallenge,
		Workers:   s.config.Workers,
		Timeout:   s.config.Timeout,
		Graph:     s.config.Graph,
		SkipPath:  true,
		Logger:    s.logger,
	}

	q := r.URL.Query()
	if v := q.Get("challenge"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, apperr.New(apperr.ErrCodeInvalidInput, "challenge must be an integer, got %q", v)
		}
		if err := apperr.ValidateChallenge(n); err != nil {
			return opts, apperr.New(apperr.ErrCodeInvalidInput, "%s", apperr.UserMessage(err))
		}
		opts.Challenge = n
	}
	if v := q.Get("path"); v != "" {
		want, err := strconv.ParseBool(v)
		if err != nil {
			return opts, apperr.New(apperr.ErrCodeInvalidInput, "path must be a boolean, got %q", v)
		}
		opts.SkipPath = !want
	}
	return opts, nil
}

// StatusFor maps an error code to its HTTP status.
func StatusFor(code apperr.Code) int {
	switch code {
	case apperr.ErrCodeMalformedGrid, apperr.ErrCodeMissingEndpoint, apperr.ErrCodeInvalidInput:
		return http.StatusBadRequest
	case apperr.ErrCodeNotFound, apperr.ErrCodeNoPathFromAnySource:
		return http.StatusUnprocessableEntity
	case apperr.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := apperr.GetCode(err)
	if code == "" {
		code = apperr.ErrCodeInternal
	}
	status := StatusFor(code)
	id := RequestIDFromContext(r.Context())
	if status >= http.StatusInternalServerError {
		s.logger.Error("solve failed", "id", id, "error", err)
	} else {
		s.logger.Debug("solve rejected", "id", id, "error", err)
	}
	writeJSON(w, status, ErrorResponse{
		Code:      code,
		Message:   apperr.UserMessage(err),
		RequestID: id,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
