package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/gaon-hs/gaon-portal-api/internal/neis"
	"github.com/gaon-hs/gaon-portal-api/internal/service"
	"github.com/gaon-hs/gaon-portal-api/pkg/config"
)

func newMealRouter(t *testing.T, upstreamURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	RegisterValidators()

	client, err := neis.NewClient(config.NEISConfig{
		BaseURL: upstreamURL,
		Timeout: 2 * time.Second,
	}, 8, nil, nil)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/api/meals", NewMealHandler(service.NewMealService(client, nil), time.UTC).Get)
	return r
}

func TestMealsEndToEnd(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"mealServiceDietInfo":[{"head":[]},{"row":[` +
			`{"MMEAL_SC_CODE":"2","DDISH_NM":"Rice(1.2)<br/>Soup","CAL_INFO":"800 Kcal"}]}]}`))
	}))
	t.Cleanup(upstream.Close)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/meals?date=20240905", nil)
	newMealRouter(t, upstream.URL).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{
		"date": "20240905",
		"meals": {
			"breakfast": {"menu": [], "calories": "0 Kcal"},
			"lunch": {
				"menu": [
					{"name": "Rice", "allergyTags": ["난류", "우유"]},
					{"name": "Soup", "allergyTags": []}
				],
				"calories": "800 Kcal"
			},
			"dinner": {"menu": [], "calories": "0 Kcal"}
		}
	}`, w.Body.String())
}

func TestMealsDegradedUpstreamStillReturns200(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(upstream.Close)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/meals?date=20240905", nil)
	newMealRouter(t, upstream.URL).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{
		"date": "20240905",
		"meals": {
			"breakfast": {"menu": [], "calories": "0 Kcal"},
			"lunch": {"menu": [], "calories": "0 Kcal"},
			"dinner": {"menu": [], "calories": "0 Kcal"}
		}
	}`, w.Body.String())
}

func TestMealsRejectsMalformedDate(t *testing.T) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/meals?date=2024-09-05", nil)
	newMealRouter(t, "http://unused").ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
