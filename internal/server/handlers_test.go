package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/internship-recommender/internal/dataset"
	"github.com/jonathan/internship-recommender/internal/features"
	"github.com/jonathan/internship-recommender/internal/recommender"
	"github.com/jonathan/internship-recommender/internal/types"
)

func testEngine(t *testing.T) *recommender.Engine {
	t.Helper()

	examples := []types.TrainingExample{
		{Skills: "python; data analysis", Interests: "ai; analytics", Education: "Bachelor's", Career: "Data Scientist"},
		{Skills: "go; sql", Interests: "software; cloud computing", Education: "Bachelor's", Career: "Software Engineer"},
		{Skills: "figma; user research", Interests: "design; accessibility", Education: "Diploma", Career: "UX Designer"},
	}
	ds := &dataset.Dataset{Examples: examples}
	for _, ex := range examples {
		ds.Records = append(ds.Records, types.CareerRecord{
			Title:           ex.Career,
			EducationLevels: []string{ex.Education},
			Skills:          features.SplitList(ex.Skills),
			Interests:       features.SplitList(ex.Interests),
		})
	}

	engine, err := recommender.New(ds, nil, recommender.ModeRules)
	require.NoError(t, err)
	return engine
}

func testServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	s, err := New(cfg, testEngine(t), zap.NewNop())
	require.NoError(t, err)
	if s.rateLimiter != nil {
		t.Cleanup(s.rateLimiter.Stop)
	}
	return s
}

func postJSON(t *testing.T, s *Server, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func TestAPIRecommend_ReturnsRankedResults(t *testing.T) {
	s := testServer(t, Config{Port: 0, DefaultLimit: 3})

	rec := postJSON(t, s, "/api/recommend", `{
		"education": "Bachelor's",
		"skills": "python, data analysis",
		"interests": "ai"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var recs []types.Recommendation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &recs))
	require.NotEmpty(t, recs)
	assert.Equal(t, "Data Scientist", recs[0].Career)
	assert.Equal(t, 1, recs[0].Rank)
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].Score, recs[i].Score)
	}
}

func TestAPIRecommend_LimitQueryParameter(t *testing.T) {
	s := testServer(t, Config{Port: 0, DefaultLimit: 3})

	rec := postJSON(t, s, "/api/recommend?limit=1", `{
		"education": "Bachelor's",
		"skills": "python, go, figma",
		"interests": "ai, software, design"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var recs []types.Recommendation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &recs))
	assert.Len(t, recs, 1)
}

func TestAPIRecommend_RejectsMissingFields(t *testing.T) {
	s := testServer(t, Config{Port: 0})

	rec := postJSON(t, s, "/api/recommend", `{"education": "Bachelor's"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "Invalid profile")
}

func TestAPIRecommend_RejectsMalformedJSON(t *testing.T) {
	s := testServer(t, Config{Port: 0})

	rec := postJSON(t, s, "/api/recommend", `{"education":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPIRecommend_RejectsBadLimit(t *testing.T) {
	s := testServer(t, Config{Port: 0})

	for _, limit := range []string{"0", "-2", "abc"} {
		rec := postJSON(t, s, "/api/recommend?limit="+limit, `{
			"education": "Bachelor's",
			"skills": "python",
			"interests": "ai"
		}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "limit=%s", limit)
	}
}

func TestAPIRecommend_RejectsOutOfRangeAge(t *testing.T) {
	s := testServer(t, Config{Port: 0})

	rec := postJSON(t, s, "/api/recommend", `{
		"education": "Bachelor's",
		"skills": "python",
		"interests": "ai",
		"age": 5
	}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	s := testServer(t, Config{Port: 0})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var health HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "rules", health.Mode)
	assert.Equal(t, 3, health.Records)
	assert.False(t, health.ModelLoaded)
}

func TestFormRendersEmpty(t *testing.T) {
	s := testServer(t, Config{Port: 0})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "<form")
}

func TestFormSubmitShowsRecommendations(t *testing.T) {
	s := testServer(t, Config{Port: 0})

	form := url.Values{
		"education": {"Bachelor's"},
		"skills":    {"python, data analysis"},
		"interests": {"ai"},
	}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Data Scientist")
}

func TestFormSubmitMissingFields(t *testing.T) {
	s := testServer(t, Config{Port: 0})

	form := url.Values{"education": {"Bachelor's"}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please fill in education, skills and interests.")
}

func TestCORSPreflight(t *testing.T) {
	s := testServer(t, Config{Port: 0})

	req := httptest.NewRequest(http.MethodOptions, "/api/recommend", nil)
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit_BlocksAfterBurst(t *testing.T) {
	s := testServer(t, Config{Port: 0, RateLimit: 2, RateWindow: time.Minute})

	body := `{"education": "Bachelor's", "skills": "python", "interests": "ai"}`
	for i := 0; i < 2; i++ {
		rec := postJSON(t, s, "/api/recommend", body)
		assert.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}

	rec := postJSON(t, s, "/api/recommend", body)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimit_SkipsHealthEndpoint(t *testing.T) {
	s := testServer(t, Config{Port: 0, RateLimit: 1, RateWindow: time.Minute})

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rec := httptest.NewRecorder()
		s.httpServer.Handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}
