package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gaon-hs/gaon-portal-api/internal/dto"
)

type schoolService interface {
	Meal(date string) dto.SchoolMealResponse
	Events(month string) dto.SchoolEventResponse
	Timetable(date string) dto.SchoolTimetableResponse
}

// SchoolHandler serves the legacy /school/* endpoints.
type SchoolHandler struct {
	service schoolService
	loc     *time.Location
}

func NewSchoolHandler(service schoolService, loc *time.Location) *SchoolHandler {
	if loc == nil {
		loc = time.Local
	}
	return &SchoolHandler{service: service, loc: loc}
}

func (h *SchoolHandler) Meal(c *gin.Context) {
	day := c.Query("day")
	if day == "" {
		day = time.Now().In(h.loc).Format("2006-01-02")
	}
	c.JSON(http.StatusOK, h.service.Meal(day))
}

func (h *SchoolHandler) Events(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		month = time.Now().In(h.loc).Format("2006-01")
	}
	c.JSON(http.StatusOK, h.service.Events(month))
}

func (h *SchoolHandler) Timetable(c *gin.Context) {
	day := c.Query("day")
	if day == "" {
		day = time.Now().In(h.loc).Format("2006-01-02")
	}
	c.JSON(http.StatusOK, h.service.Timetable(day))
}
