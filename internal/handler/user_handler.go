package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gaon-hs/gaon-portal-api/internal/models"
	appErrors "github.com/gaon-hs/gaon-portal-api/pkg/errors"
)

const deviceHeader = "X-Device-Id"

type userConfigService interface {
	Get(key string) models.UserConfig
	Update(key string, patch models.UserConfigPatch) models.UserConfig
}

// UserHandler exposes caller-scoped portal preferences.
type UserHandler struct {
	service userConfigService
}

func NewUserHandler(service userConfigService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Get(callerKey(c)))
}

func (h *UserHandler) PutConfig(c *gin.Context) {
	var patch models.UserConfigPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, appErrors.Clone(appErrors.ErrValidation, "invalid config payload"))
		return
	}
	c.JSON(http.StatusOK, h.service.Update(callerKey(c), patch))
}

func (h *UserHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Get(callerKey(c)))
}

func callerKey(c *gin.Context) string {
	return c.GetHeader(deviceHeader)
}
