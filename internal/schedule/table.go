// Package schedule holds the school's fixed daily bell table and the logic
// that decides which segment is current.
package schedule

import "github.com/gaon-hs/gaon-portal-api/internal/models"

// DefaultLabels supplies the display label for class periods that have no
// upstream subject, keyed by period number. After-school periods fall back to
// these instead of the generated "N교시" label.
var DefaultLabels = map[int]string{
	8: "방과후학교",
	9: "방과후학교",
}

// Table is the canonical daily plan, ordered by start time, contiguous and
// non-overlapping. The source had several conflicting versions of the evening
// boundaries; this one is authoritative (see DESIGN.md).
var Table = []models.ScheduleSegment{
	{Kind: models.SegmentFixed, Label: "아침 식사", Start: "07:30", End: "08:10", Special: true},
	{Kind: models.SegmentFixed, Label: "조회", Start: "08:20", End: "08:40"},
	{Kind: models.SegmentClass, Period: 1, Start: "08:40", End: "09:30"},
	{Kind: models.SegmentClass, Period: 2, Start: "09:40", End: "10:30"},
	{Kind: models.SegmentClass, Period: 3, Start: "10:40", End: "11:30"},
	{Kind: models.SegmentClass, Period: 4, Start: "11:40", End: "12:30"},
	{Kind: models.SegmentBreak, Label: "점심 식사", Start: "12:30", End: "13:30", Special: true},
	{Kind: models.SegmentClass, Period: 5, Start: "13:30", End: "14:20"},
	{Kind: models.SegmentClass, Period: 6, Start: "14:30", End: "15:20"},
	{Kind: models.SegmentClass, Period: 7, Start: "15:30", End: "16:20"},
	{Kind: models.SegmentBreak, Label: "청소", Start: "16:20", End: "16:40"},
	{Kind: models.SegmentClass, Period: 8, Start: "16:40", End: "17:30"},
	{Kind: models.SegmentBreak, Label: "저녁 식사", Start: "17:30", End: "18:30", Special: true},
	{Kind: models.SegmentClass, Period: 9, Start: "18:30", End: "19:20"},
	{Kind: models.SegmentFixed, Label: "야간자율학습", Start: "19:30", End: "21:00"},
}
