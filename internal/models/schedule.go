package models

// SegmentKind classifies a row of the static daily plan.
type SegmentKind string

const (
	SegmentFixed SegmentKind = "fixed"
	SegmentBreak SegmentKind = "break"
	SegmentClass SegmentKind = "class"
)

// ScheduleSegment is one block of the static daily schedule. Class segments
// derive their label from the period number or remote timetable data; fixed
// and break segments display Label as-is.
type ScheduleSegment struct {
	Kind    SegmentKind
	Label   string
	Period  int // set only for class segments
	Start   string
	End     string
	Special bool
}
