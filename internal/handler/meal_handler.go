package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gaon-hs/gaon-portal-api/internal/dto"
	appErrors "github.com/gaon-hs/gaon-portal-api/pkg/errors"
)

type mealService interface {
	Meals(ctx context.Context, date string) (dto.MealsResponse, bool)
}

// MealHandler exposes the per-meal-type menu view.
type MealHandler struct {
	service mealService
	loc     *time.Location
}

func NewMealHandler(service mealService, loc *time.Location) *MealHandler {
	if loc == nil {
		loc = time.Local
	}
	return &MealHandler{service: service, loc: loc}
}

type mealQuery struct {
	Date string `form:"date" binding:"omitempty,yyyymmdd"`
}

// Get godoc
// @Summary Daily meal menus
// @Tags Meals
// @Produce json
// @Param date query string false "Date (YYYYMMDD), defaults to today"
// @Success 200 {object} dto.MealsResponse
// @Router /api/meals [get]
func (h *MealHandler) Get(c *gin.Context) {
	var q mealQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, appErrors.Clone(appErrors.ErrValidation, "invalid date, expected YYYYMMDD"))
		return
	}
	if q.Date == "" {
		q.Date = time.Now().In(h.loc).Format("20060102")
	}

	resp, _ := h.service.Meals(c.Request.Context(), q.Date)
	c.JSON(http.StatusOK, resp)
}
