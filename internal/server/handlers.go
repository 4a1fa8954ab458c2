package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ziadkadry99/salaryboard/internal/chart"
	"github.com/ziadkadry99/salaryboard/internal/table"
)

// fragmentResponse is the JSON body of the table endpoints.
type fragmentResponse struct {
	table.Fragment
	Found *bool `json:"found,omitempty"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.board.WritePage(w, "/"); err != nil {
		s.logger.Error("rendering page", zap.Error(err))
	}
}

func (s *Server) handleChartSVG(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write([]byte(s.board.ChartSVG))
}

func (s *Server) handleDataset(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.board.Data)
}

func (s *Server) handleChartPoints(w http.ResponseWriter, r *http.Request) {
	points := s.board.Chart.Points
	if points == nil {
		points = []chart.AggregatedPoint{}
	}
	writeJSON(w, http.StatusOK, points)
}

func (s *Server) handleSort(w http.ResponseWriter, r *http.Request) {
	column, err := strconv.Atoi(chi.URLParam(r, "column"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "column must be an integer")
		return
	}

	if err := s.board.View.SortTable(column); err != nil {
		if errors.Is(err, table.ErrUnknownColumn) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("sorting table", zap.Int("column", column), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "sorting failed")
		return
	}

	writeJSON(w, http.StatusOK, fragmentResponse{Fragment: s.board.View.Fragment()})
}

func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "year must be an integer")
		return
	}

	found, err := s.board.View.RenderDetailTable(year)
	if err != nil {
		s.logger.Error("rendering detail table", zap.Int("year", year), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "rendering failed")
		return
	}

	writeJSON(w, http.StatusOK, fragmentResponse{Fragment: s.board.View.Fragment(), Found: &found})
}

func serveAsset(contentType string, body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write(body)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
