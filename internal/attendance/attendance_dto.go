package attendance

type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Date       string `json:"date" binding:"required"`
	IsPresent  bool   `json:"is_present"`
}

type AttendanceResponse struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	IsPresent  bool   `json:"is_present"`
}

type MonthSheetRequest struct {
	EmployeeID string `form:"employee_id" binding:"required,uuid"`
	Year       int    `form:"year"`
	Month      int    `form:"month"`
}

type DayCell struct {
	Date     string `json:"date"`
	Day      int    `json:"day"`
	InMonth  bool   `json:"in_month"`
	Disabled bool   `json:"disabled"`
	Present  bool   `json:"present"`
}

type MonthSheetResponse struct {
	EmployeeID string      `json:"employee_id"`
	Year       int         `json:"year"`
	Month      int         `json:"month"`
	MonthName  string      `json:"month_name"`
	Weekdays   []string    `json:"weekdays"`
	Weeks      [][]DayCell `json:"weeks"`
}

type SaveMonthRequest struct {
	EmployeeID   string   `json:"employee_id" binding:"required,uuid"`
	Year         int      `json:"year" binding:"required"`
	Month        int      `json:"month" binding:"required"`
	PresentDates []string `json:"present_dates"`
}

type SaveMonthResponse struct {
	EmployeeID string `json:"employee_id"`
	DaysSaved  int    `json:"days_saved"`
	DaysMarked int    `json:"days_present"`
}

type DailyRosterResponse struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Attendance string `json:"attendance"`
}
