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
	"github.com/gaon-hs/gaon-portal-api/internal/service"
)

func newSchoolRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewSchoolHandler(service.NewSchoolService("부산소프트웨어마이스터고등학교"), time.UTC)
	r := gin.New()
	r.GET("/school/meal", h.Meal)
	r.GET("/school/event", h.Events)
	r.GET("/school/timetable", h.Timetable)
	return r
}

func TestSchoolMealEchoesRequestedDay(t *testing.T) {
	r := newSchoolRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/school/meal?day=2024-09-05", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.SchoolMealResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "2024-09-05", resp.Date)
	require.Equal(t, "부산소프트웨어마이스터고등학교", resp.SchoolName)
	require.Len(t, resp.Items, 3)
}

func TestSchoolEventBuildsDatesFromMonth(t *testing.T) {
	r := newSchoolRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/school/event?month=2024-09", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.SchoolEventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "2024-09", resp.Month)
	require.NotEmpty(t, resp.Items)
	require.Equal(t, "2024-09-02", resp.Items[0].StartDate)
}

func TestSchoolTimetableSevenPeriods(t *testing.T) {
	r := newSchoolRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/school/timetable", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.SchoolTimetableResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 7)
	require.Equal(t, "1", resp.Items[0].Period)
}
