package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMusicAlwaysNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/music", NewDeviceHandler().Music)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/music?title=NewJeans", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"detail":"music 'NewJeans' not found"}`, w.Body.String())
}

func TestSpeakerConnectEchoesDeviceID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/speaker/connect", NewDeviceHandler().SpeakerConnect)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/speaker/connect", nil)
	req.Header.Set("X-Device-Id", "speaker-7")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"ok","protocol":"mcp","version":"1.0","deviceId":"speaker-7"}`, w.Body.String())
}
