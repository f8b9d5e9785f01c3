package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/visl/parking-test/pkg/parking"
)

func (s *Server) handlePark(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "use POST")
		return
	}

	var req parkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "malformed JSON body")
		return
	}
	if len(req.Tag) != 1 || req.Tag[0] < '!' || req.Tag[0] > '~' {
		writeError(w, http.StatusBadRequest, codeInvalidVehicleTag,
			"tag must be a single printable ASCII character")
		return
	}

	s.mu.Lock()
	bay, err := s.engine.Park(req.Tag[0])
	available := s.grid.AvailableBays()
	s.mu.Unlock()

	switch {
	case errors.Is(err, parking.ErrNoBayAvailable):
		writeError(w, http.StatusConflict, codeNoBayAvailable, "no bay found")
	case errors.Is(err, parking.ErrInvalidVehicleTag):
		writeError(w, http.StatusBadRequest, codeInvalidVehicleTag,
			"tag is a reserved character")
	case err != nil:
		writeError(w, http.StatusInternalServerError, codeInternal, "park failed")
	default:
		writeJSON(w, http.StatusOK, parkResponse{Bay: bay, Available: available})
	}
}

func (s *Server) handleUnpark(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "use POST")
		return
	}

	var req unparkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "malformed JSON body")
		return
	}

	s.mu.Lock()
	removed, err := s.engine.Unpark(req.Bay)
	available := s.grid.AvailableBays()
	s.mu.Unlock()

	switch {
	case errors.Is(err, parking.ErrInvalidBayIndex):
		writeError(w, http.StatusBadRequest, codeInvalidBayIndex, "bay index out of range")
	case err != nil:
		writeError(w, http.StatusInternalServerError, codeInternal, "unpark failed")
	default:
		writeJSON(w, http.StatusOK, unparkResponse{Removed: removed, Available: available})
	}
}

func (s *Server) handleCapacity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "use GET")
		return
	}

	s.mu.Lock()
	resp := capacityResponse{
		LaneSize:        s.grid.LaneSize(),
		Total:           s.grid.Total(),
		PedestrianExits: len(s.grid.PedestrianExits()),
		ParkedCars:      s.grid.ParkedCars(),
		Available:       s.grid.AvailableBays(),
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "use GET")
		return
	}

	s.mu.Lock()
	diagram := s.renderer.Render()
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(diagram))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "use GET")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().Unix(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorDetail{Code: code, Message: message}})
}
