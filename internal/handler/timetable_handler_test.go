package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/gaon-hs/gaon-portal-api/internal/dto"
	"github.com/gaon-hs/gaon-portal-api/internal/neis"
	"github.com/gaon-hs/gaon-portal-api/internal/schedule"
	"github.com/gaon-hs/gaon-portal-api/internal/service"
	"github.com/gaon-hs/gaon-portal-api/pkg/config"
)

func newTimetableRouter(t *testing.T, upstreamURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	RegisterValidators()

	client, err := neis.NewClient(config.NEISConfig{
		BaseURL: upstreamURL,
		Timeout: 2 * time.Second,
	}, 8, nil, nil)
	require.NoError(t, err)

	svc := service.NewTimetableService(client, nil, time.UTC, nil)
	r := gin.New()
	r.GET("/api/timetable", NewTimetableHandler(svc, time.UTC).List)
	return r
}

func TestTimetableEndToEnd(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "1", r.URL.Query().Get("GRADE"))
		require.Equal(t, "1", r.URL.Query().Get("CLASS_NM"))
		w.Write([]byte(`{"hisTimetable":[{"head":[]},{"row":[{"PERIO":"1","ITRT_CNTNT":"Math"}]}]}`))
	}))
	t.Cleanup(upstream.Close)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/timetable?grade=1&class=1&date=20240905", nil)
	newTimetableRouter(t, upstream.URL).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var rows []dto.TimetableRow
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, len(schedule.Table))

	byPeriod := map[string]dto.TimetableRow{}
	for _, row := range rows {
		if row.Period != "" {
			byPeriod[row.Period] = row
		}
	}

	require.Equal(t, "Math", byPeriod["1"].Subject)
	require.Equal(t, "-", byPeriod["1"].Teacher)
	// Period 2 has no upstream entry and no default label.
	require.Equal(t, "2교시", byPeriod["2"].Subject)
	// Period 8 has a default label instead of the generated one.
	require.Equal(t, "방과후학교", byPeriod["8"].Subject)
}

func TestTimetableDegradedUpstreamStillReturnsFullPlan(t *testing.T) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/timetable?date=20240905", nil)
	newTimetableRouter(t, "http://127.0.0.1:1").ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var rows []dto.TimetableRow
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, len(schedule.Table))
}

func TestTimetableRejectsMalformedDate(t *testing.T) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/timetable?date=bad", nil)
	newTimetableRouter(t, "http://unused").ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
