package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/internship-recommender/internal/classifier"
	"github.com/jonathan/internship-recommender/internal/metrics"
	"github.com/jonathan/internship-recommender/internal/types"
)

// RecommendRequest represents the JSON body for /api/recommend.
type RecommendRequest struct {
	Education string `json:"education"`
	Skills    string `json:"skills"`
	Interests string `json:"interests"`
	Age       *int   `json:"age,omitempty"`
	Location  string `json:"location,omitempty"`
}

func (r *RecommendRequest) toProfile() *types.LearnerProfile {
	return &types.LearnerProfile{
		Education: r.Education,
		Skills:    r.Skills,
		Interests: r.Interests,
		Age:       r.Age,
		Location:  r.Location,
	}
}

// HealthResponse represents the response for /healthz.
type HealthResponse struct {
	Status      string `json:"status"`
	Mode        string `json:"mode"`
	Records     int    `json:"records"`
	ModelLoaded bool   `json:"model_loaded"`
}

// handleAPIRecommend scores a profile and returns the ranked list as JSON.
func (s *Server) handleAPIRecommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	profile := req.toProfile()
	if err := profile.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid profile: "+err.Error())
		return
	}

	limit := s.defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit: must be a positive integer")
			return
		}
		limit = parsed
	}

	start := time.Now()
	recs, err := s.engine.Recommend(profile, limit)
	if err != nil {
		if errors.Is(err, classifier.ErrNotTrained) {
			s.errorResponse(w, http.StatusServiceUnavailable, "Model not trained")
			return
		}
		s.logger.Error("recommendation failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Recommendation failed")
		return
	}
	metrics.RecommendDuration.WithLabelValues(string(s.engine.Mode())).Observe(time.Since(start).Seconds())

	s.jsonResponse(w, http.StatusOK, recs)
}

// handleHealth reports liveness plus the loaded dataset/model summary.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, HealthResponse{
		Status:      "ok",
		Mode:        string(s.engine.Mode()),
		Records:     s.engine.RecordCount(),
		ModelLoaded: s.engine.ModelLoaded(),
	})
}

// jsonResponse writes a JSON response with the given status code.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

// errorResponse writes a JSON error response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
