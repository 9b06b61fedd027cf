package server

import (
	_ "embed"
	"html/template"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/jonathan/internship-recommender/internal/types"
)

//go:embed templates/form.html
var formHTML string

var formTemplate = template.Must(template.New("form").Parse(formHTML))

// formData is the template context for the recommendation form.
type formData struct {
	Education       string
	Skills          string
	Interests       string
	Age             string
	Location        string
	Limit           int
	Error           string
	Recommendations []types.Recommendation
}

// handleForm renders the empty recommendation form.
func (s *Server) handleForm(w http.ResponseWriter, _ *http.Request) {
	s.renderForm(w, formData{Limit: s.defaultLimit})
}

// handleFormSubmit scores the submitted form and re-renders it with the
// ranked results.
func (s *Server) handleFormSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	data := formData{
		Education: r.PostFormValue("education"),
		Skills:    r.PostFormValue("skills"),
		Interests: r.PostFormValue("interests"),
		Age:       r.PostFormValue("age"),
		Location:  r.PostFormValue("location"),
		Limit:     s.defaultLimit,
	}
	if raw := r.PostFormValue("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			data.Limit = limit
		}
	}

	profile := &types.LearnerProfile{
		Education: data.Education,
		Skills:    data.Skills,
		Interests: data.Interests,
		Location:  data.Location,
	}
	if data.Age != "" {
		if age, err := strconv.Atoi(data.Age); err == nil {
			profile.Age = &age
		}
	}

	if err := profile.Validate(); err != nil {
		data.Error = "Please fill in education, skills and interests."
		w.WriteHeader(http.StatusBadRequest)
		s.renderForm(w, data)
		return
	}

	recs, err := s.engine.Recommend(profile, data.Limit)
	if err != nil {
		s.logger.Error("form recommendation failed", zap.Error(err))
		data.Error = "Recommendation failed. Please try again."
		w.WriteHeader(http.StatusInternalServerError)
		s.renderForm(w, data)
		return
	}

	data.Recommendations = recs
	s.renderForm(w, data)
}

func (s *Server) renderForm(w http.ResponseWriter, data formData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := formTemplate.Execute(w, data); err != nil {
		s.logger.Error("failed to render form", zap.Error(err))
	}
}
