package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edustat/markboard-backend/internal/model"
	"github.com/edustat/markboard-backend/internal/repository"
	"github.com/edustat/markboard-backend/internal/service"
	"github.com/edustat/markboard-backend/internal/validator"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validator.Setup()
	os.Exit(m.Run())
}

// envelope mirrors the response shape for assertions.
type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
	Data    json.RawMessage   `json:"data"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

// ─── Stats ──────────────────────────────────────────────────────────────────

type stubMarksStats struct{}

func (stubMarksStats) AvgAndCount(context.Context, model.ClassContext) (float64, int, error) {
	return 78.333, 3, nil
}

type stubStudentCounter struct{}

func (stubStudentCounter) CountByCohort(context.Context, string, string, string) (int, error) {
	return 20, nil
}

type stubPendingCounter struct{}

func (stubPendingCounter) CountPending(context.Context, model.ClassContext) (int, error) {
	return 1, nil
}

type stubFAChecker struct{}

func (stubFAChecker) Exists(context.Context, model.ClassContext) (bool, error) {
	return false, nil
}

func statsRouter() *gin.Engine {
	svc := service.NewStatsService(stubMarksStats{}, stubStudentCounter{}, stubPendingCounter{}, stubFAChecker{}, zerolog.Nop())
	h := NewStatsHandler(svc, zerolog.Nop())
	r := gin.New()
	r.POST("/api/class-stats", h.ClassStats)
	return r
}

func TestClassStatsEndpoint(t *testing.T) {
	r := statsRouter()
	w, env := doJSON(t, r, http.MethodPost, "/api/class-stats", gin.H{
		"subject": "DBMS", "division": "A", "department": "Computer", "year": "TE",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	var stats model.ClassStats
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 78, stats.AvgMarks)
	assert.Equal(t, 20, stats.TotalStudents)
	assert.Equal(t, 3, stats.SubmissionsReceived)
}

func TestClassStatsMissingField(t *testing.T) {
	r := statsRouter()
	w, env := doJSON(t, r, http.MethodPost, "/api/class-stats", gin.H{
		"subject": "DBMS", "division": "A", "department": "Computer",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.Contains(t, env.Fields, "year")
}

// ─── Queries ────────────────────────────────────────────────────────────────

type stubQueryStore struct{}

func (stubQueryStore) GetAll(context.Context) ([]model.Query, error) {
	return nil, nil
}

func (stubQueryStore) Respond(_ context.Context, id int64, text string) (*model.Query, error) {
	if id != 1 {
		return nil, repository.ErrQueryNotFound
	}
	return &model.Query{ID: 1, Response: &text, Status: model.QueryStatusResolved}, nil
}

type stubNotifications struct{}

func (stubNotifications) GetActive(context.Context) ([]model.Notification, error) {
	return nil, nil
}

func queryRouter() *gin.Engine {
	svc := service.NewQueryService(stubQueryStore{}, stubNotifications{}, zerolog.Nop())
	h := NewQueryHandler(svc, zerolog.Nop())
	r := gin.New()
	r.GET("/api/queries", h.List)
	r.POST("/api/queries/respond", h.Respond)
	return r
}

func TestListQueriesEmptySlices(t *testing.T) {
	r := queryRouter()
	w, env := doJSON(t, r, http.MethodGet, "/api/queries", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	// Empty stores serialize as [] rather than null.
	assert.JSONEq(t, `{"queries":[],"notifications":[]}`, string(env.Data))
}

func TestRespondEndpoint(t *testing.T) {
	r := queryRouter()
	w, env := doJSON(t, r, http.MethodPost, "/api/queries/respond", gin.H{
		"queryId": 1, "response": "Resolved, thanks.",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
}

func TestRespondUnknownID(t *testing.T) {
	r := queryRouter()
	w, env := doJSON(t, r, http.MethodPost, "/api/queries/respond", gin.H{
		"queryId": 42, "response": "anyone there?",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Query not found", env.Message)
}

func TestRespondMissingFields(t *testing.T) {
	r := queryRouter()
	w, env := doJSON(t, r, http.MethodPost, "/api/queries/respond", gin.H{"queryId": 1})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.Contains(t, env.Fields, "response")
}

// ─── FA mode ────────────────────────────────────────────────────────────────

type stubFAStore struct {
	setting *model.FASetting
}

func (s *stubFAStore) Replace(_ context.Context, setting *model.FASetting) error {
	setting.ID = 1
	s.setting = setting
	return nil
}

func (s *stubFAStore) Get(context.Context, model.ClassContext) (*model.FASetting, error) {
	return s.setting, nil
}

func faRouter(store *stubFAStore) *gin.Engine {
	svc := service.NewFASettingService(store, nil, zerolog.Nop())
	h := NewFAModeHandler(svc, zerolog.Nop())
	r := gin.New()
	r.POST("/api/fa-mode", h.Set)
	r.GET("/api/fa-mode", h.Get)
	return r
}

func TestSetFAModeEndpoint(t *testing.T) {
	store := &stubFAStore{}
	r := faRouter(store)
	w, env := doJSON(t, r, http.MethodPost, "/api/fa-mode", gin.H{
		"subject": "DBMS", "division": "A", "department": "Computer", "year": "TE",
		"mode": "Online Quiz",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	require.NotNil(t, store.setting)
	assert.Equal(t, model.FAModeOnlineQuiz, store.setting.Mode)
}

func TestSetFAModeRejectsUnknownMode(t *testing.T) {
	r := faRouter(&stubFAStore{})
	w, env := doJSON(t, r, http.MethodPost, "/api/fa-mode", gin.H{
		"subject": "DBMS", "division": "A", "department": "Computer", "year": "TE",
		"mode": "Karaoke",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
}

func TestGetFAModeUnsetReturnsNull(t *testing.T) {
	r := faRouter(&stubFAStore{})
	w, env := doJSON(t, r, http.MethodGet, "/api/fa-mode?subject=DBMS&division=A&department=Computer&year=TE", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "null", string(env.Data))
}

func TestGetFAModeMissingParams(t *testing.T) {
	r := faRouter(&stubFAStore{})
	w, env := doJSON(t, r, http.MethodGet, "/api/fa-mode?subject=DBMS", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
}

// ─── Init ───────────────────────────────────────────────────────────────────

type stubFilterSource struct{}

func (stubFilterSource) Options(context.Context) (*model.FilterOptions, error) {
	return &model.FilterOptions{
		Subjects:    []string{"DBMS"},
		Departments: []string{"Computer"},
		Years:       []string{"TE"},
		Divisions:   []string{"A"},
		FAModes:     model.FAModes,
	}, nil
}

func TestInitEndpoint(t *testing.T) {
	svc := service.NewFilterService(stubFilterSource{}, nil, 0, zerolog.Nop())
	h := NewFilterHandler(svc, zerolog.Nop())
	r := gin.New()
	r.GET("/api/init", h.Init)

	w, env := doJSON(t, r, http.MethodGet, "/api/init", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	var opts model.FilterOptions
	require.NoError(t, json.Unmarshal(env.Data, &opts))
	assert.Equal(t, []string{"DBMS"}, opts.Subjects)
	assert.Len(t, opts.FAModes, 6)
}
