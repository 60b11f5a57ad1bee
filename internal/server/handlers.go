package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"shingle/internal/api"
	"shingle/internal/comparison"
	"shingle/internal/history"
	"shingle/internal/logging"
)

const defaultHistoryLimit = 50

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.status(r.Context()))
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req api.CompareRequest
	if !s.decode(w, r, &req) {
		return
	}
	resp, err := s.svc.Compare(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleClean(w http.ResponseWriter, r *http.Request) {
	var req api.CleanRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := comparison.RequireText(req.Text); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, s.svc.Clean(req))
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if value := strings.TrimSpace(r.URL.Query().Get("limit")); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 0 {
			s.writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}
	items, err := s.svc.List(r.Context(), limit)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, api.HistoryListResponse{Items: items})
}

func (s *Server) handleHistoryItem(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		s.writeError(w, http.StatusNotFound, "comparison not found")
		return
	}
	item, err := s.svc.Describe(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, item)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		s.writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, comparison.ErrEmptyInput):
		s.writeError(w, http.StatusBadRequest, comparison.ErrEmptyInput.Error())
	case errors.Is(err, comparison.ErrDocumentTooLarge):
		s.writeError(w, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, history.ErrNotFound):
		s.writeError(w, http.StatusNotFound, "comparison not found")
	case errors.Is(err, r.Context().Err()) && r.Context().Err() != nil:
		s.writeError(w, http.StatusServiceUnavailable, "request cancelled")
	default:
		logging.WithContext(r.Context(), s.logger).Error("request failed",
			logging.String("path", r.URL.Path),
			logging.Error(err),
		)
		s.writeError(w, http.StatusInternalServerError, "internal error")
	}
}
