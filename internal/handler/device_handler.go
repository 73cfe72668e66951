package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gaon-hs/gaon-portal-api/internal/dto"
)

// DeviceHandler covers the speaker handshake and the music stub.
type DeviceHandler struct{}

func NewDeviceHandler() *DeviceHandler {
	return &DeviceHandler{}
}

// SpeakerConnect acknowledges a speaker pairing request, echoing the device
// identity back.
func (h *DeviceHandler) SpeakerConnect(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SpeakerConnectResponse{
		Status:   "ok",
		Protocol: "mcp",
		Version:  "1.0",
		DeviceID: c.GetHeader(deviceHeader),
	})
}

// Music is a deliberate stub; no lookup exists, every title 404s.
func (h *DeviceHandler) Music(c *gin.Context) {
	title := c.Query("title")
	c.JSON(http.StatusNotFound, gin.H{
		"detail": fmt.Sprintf("music '%s' not found", title),
	})
}
