package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gaon-hs/gaon-portal-api/internal/dto"
	appErrors "github.com/gaon-hs/gaon-portal-api/pkg/errors"
)

type timetableService interface {
	Rows(ctx context.Context, date, grade, class string) ([]dto.TimetableRow, bool)
}

// TimetableHandler exposes the assembled daily plan.
type TimetableHandler struct {
	service timetableService
	loc     *time.Location
}

func NewTimetableHandler(service timetableService, loc *time.Location) *TimetableHandler {
	if loc == nil {
		loc = time.Local
	}
	return &TimetableHandler{service: service, loc: loc}
}

type timetableQuery struct {
	Grade string `form:"grade"`
	Class string `form:"class"`
	Date  string `form:"date" binding:"omitempty,yyyymmdd"`
}

// List godoc
// @Summary Assembled daily timetable
// @Tags Timetable
// @Produce json
// @Param grade query string false "Grade" default(1)
// @Param class query string false "Class" default(1)
// @Param date query string false "Date (YYYYMMDD), defaults to today"
// @Success 200 {array} dto.TimetableRow
// @Router /api/timetable [get]
func (h *TimetableHandler) List(c *gin.Context) {
	var q timetableQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, appErrors.Clone(appErrors.ErrValidation, "invalid date, expected YYYYMMDD"))
		return
	}
	if q.Grade == "" {
		q.Grade = "1"
	}
	if q.Class == "" {
		q.Class = "1"
	}
	if q.Date == "" {
		q.Date = time.Now().In(h.loc).Format("20060102")
	}

	rows, _ := h.service.Rows(c.Request.Context(), q.Date, q.Grade, q.Class)
	c.JSON(http.StatusOK, rows)
}
