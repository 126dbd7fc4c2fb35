package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Gestaoimpacto/ceo-virtual-analyzer-sub000/internal/model"
	"github.com/Gestaoimpacto/ceo-virtual-analyzer-sub000/internal/store"
)

type errorResponse struct {
	Error string `json:"erro"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("server: encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleCreateAnalysis accepts a survey record, stores it, runs the engine
// and returns the completed assessment.
func (s *Server) handleCreateAnalysis(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var record model.CompanyRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		writeError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}
	if record.Name == "" {
		writeError(w, http.StatusUnprocessableEntity, "nomeEmpresa é obrigatório")
		return
	}

	assessment, err := s.store.CreateAssessment(r.Context(), record)
	if err != nil {
		zap.L().Error("server: create assessment", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "falha ao registrar avaliação")
		return
	}

	result := s.analyzer.Analyze(record)
	if err := s.store.CompleteAssessment(r.Context(), assessment.ID, &result); err != nil {
		zap.L().Error("server: complete assessment", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "falha ao salvar resultado")
		return
	}

	assessment.Result = &result
	assessment.Status = model.AssessmentComplete

	analysesTotal.WithLabelValues(result.Benchmark.Sector).Inc()
	analysisDuration.Observe(time.Since(start).Seconds())

	writeJSON(w, http.StatusCreated, assessment)
}

func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	assessment, err := s.store.GetAssessment(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "avaliação não encontrada")
		return
	}
	writeJSON(w, http.StatusOK, assessment)
}

func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := store.AssessmentFilter{
		Status: model.AssessmentStatus(q.Get("status")),
		Sector: q.Get("setor"),
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit inválido")
			return
		}
		filter.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "offset inválido")
			return
		}
		filter.Offset = n
	}

	assessments, err := s.store.ListAssessments(r.Context(), filter)
	if err != nil {
		zap.L().Error("server: list assessments", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "falha ao listar avaliações")
		return
	}
	if assessments == nil {
		assessments = []model.Assessment{}
	}
	writeJSON(w, http.StatusOK, assessments)
}

// handleGetBenchmark resolves a sector label the same way the engine does,
// so clients can preview which reference values apply.
func (s *Server) handleGetBenchmark(w http.ResponseWriter, r *http.Request) {
	sector := chi.URLParam(r, "sector")
	writeJSON(w, http.StatusOK, s.benchmarks.Resolve(sector))
}
