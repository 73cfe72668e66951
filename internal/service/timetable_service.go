package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/gaon-hs/gaon-portal-api/internal/dto"
	"github.com/gaon-hs/gaon-portal-api/internal/models"
	"github.com/gaon-hs/gaon-portal-api/internal/neis"
	"github.com/gaon-hs/gaon-portal-api/internal/schedule"
)

// TimetableFeed is the upstream slice the timetable assembler needs.
type TimetableFeed interface {
	Timetable(ctx context.Context, date, grade, class string) neis.TimetableResult
}

// TimetableService merges the static bell table with the remote timetable
// feed into the displayed daily plan.
type TimetableService struct {
	feed   TimetableFeed
	window *schedule.Window
	loc    *time.Location
	logger *zap.Logger
}

func NewTimetableService(feed TimetableFeed, window *schedule.Window, loc *time.Location, logger *zap.Logger) *TimetableService {
	if loc == nil {
		loc = time.Local
	}
	return &TimetableService{feed: feed, window: window, loc: loc, logger: logger}
}

// Rows assembles one row per schedule segment for date (YYYYMMDD). The
// second return marks a degraded upstream; the rows are still valid, class
// periods just fall back to their default or generated labels.
func (s *TimetableService) Rows(ctx context.Context, date, grade, class string) ([]dto.TimetableRow, bool) {
	result := s.feed.Timetable(ctx, date, grade, class)
	if result.Degraded && s.logger != nil {
		s.logger.Warn("timetable upstream degraded", zap.String("date", date), zap.Error(result.Cause))
	}

	var target *time.Time
	if parsed, err := time.ParseInLocation("20060102", date, s.loc); err == nil {
		target = &parsed
	}

	rows := make([]dto.TimetableRow, 0, len(schedule.Table))
	for _, seg := range schedule.Table {
		row := dto.TimetableRow{
			Time:      fmt.Sprintf("%s - %s", seg.Start, seg.End),
			Teacher:   "-",
			IsSpecial: seg.Special,
			Kind:      string(seg.Kind),
		}
		if s.window != nil {
			row.IsCurrent = s.window.IsCurrent(seg.Start, seg.End, target)
		}

		if seg.Kind == models.SegmentClass {
			row.Period = strconv.Itoa(seg.Period)
			row.Subject = subjectFor(seg.Period, result.Periods)
		} else {
			row.Subject = seg.Label
		}

		rows = append(rows, row)
	}

	return rows, result.Degraded
}

func subjectFor(period int, remote map[int]string) string {
	if subject, ok := remote[period]; ok && subject != "" {
		return subject
	}
	if label, ok := schedule.DefaultLabels[period]; ok {
		return label
	}
	return fmt.Sprintf("%d교시", period)
}
