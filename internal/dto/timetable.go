package dto

// TimetableRow is one displayed row of the daily plan, static segments and
// class periods alike.
type TimetableRow struct {
	Period    string `json:"period"`
	Time      string `json:"time"`
	Subject   string `json:"subject"`
	Teacher   string `json:"teacher"`
	IsCurrent bool   `json:"isCurrent"`
	IsSpecial bool   `json:"isSpecial"`
	Kind      string `json:"kind"`
}
