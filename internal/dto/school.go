package dto

// SchoolMealResponse is the legacy /school/meal contract.
type SchoolMealResponse struct {
	Date       string           `json:"date"`
	SchoolName string           `json:"schoolName"`
	Items      []SchoolMealItem `json:"items"`
}

type SchoolMealItem struct {
	Dish      string `json:"dish"`
	Calories  string `json:"calories"`
	Nutrients string `json:"nutrients"`
	Type      string `json:"type"`
}

// SchoolEventResponse is the legacy /school/event contract.
type SchoolEventResponse struct {
	Month      string            `json:"month"`
	SchoolName string            `json:"schoolName"`
	Items      []SchoolEventItem `json:"items"`
}

type SchoolEventItem struct {
	Title       string `json:"title"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// SchoolTimetableResponse is the legacy /school/timetable contract.
type SchoolTimetableResponse struct {
	Date       string                `json:"date"`
	SchoolName string                `json:"schoolName"`
	Items      []SchoolTimetableItem `json:"items"`
}

type SchoolTimetableItem struct {
	Period    string `json:"period"`
	Subject   string `json:"subject"`
	Teacher   string `json:"teacher"`
	Classroom string `json:"classroom"`
}
