package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type chatServiceMock struct {
	received string
	reply    string
}

func (m *chatServiceMock) Reply(ctx context.Context, message string) string {
	m.received = message
	return m.reply
}

func TestChatReturnsReply(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &chatServiceMock{reply: "급식은 제육덮밥이에요!"}
	r := gin.New()
	r.POST("/api/chat", NewChatHandler(mockSvc).Post)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"오늘 급식 뭐야?"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"response":"급식은 제육덮밥이에요!"}`, w.Body.String())
	require.Equal(t, "오늘 급식 뭐야?", mockSvc.received)
}

func TestChatRequiresMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/chat", NewChatHandler(&chatServiceMock{}).Post)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
