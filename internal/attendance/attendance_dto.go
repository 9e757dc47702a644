package attendance

type MarkAttendanceRequest struct {
	StaffID          string `json:"staff_id" binding:"required,uuid"`
	Date             string `json:"date" binding:"required"`
	Status           string `json:"status" binding:"required"`
	Shift            string `json:"shift"`
	LocationOverride string `json:"location_override"`
}

type BulkMarkRequest struct {
	Date     string `json:"date" binding:"required"`
	Status   string `json:"status" binding:"required"`
	Location string `json:"location"`
}

type BulkMarkResponse struct {
	Date   string `json:"date"`
	Status string `json:"status"`
	Marked int    `json:"marked"`
}

type PartTimeEntryRequest struct {
	StaffName   string `json:"staff_name" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Shift       string `json:"shift"`
	Salary      *int64 `json:"salary" binding:"omitempty,gte=0"`
	ArrivalTime string `json:"arrival_time"`
	LeavingTime string `json:"leaving_time"`
}

type AddPartTimeRequest struct {
	Date    string                 `json:"date" binding:"required"`
	Entries []PartTimeEntryRequest `json:"entries" binding:"required,min=1,dive"`
}

// UpdateAttendanceRequest edits one row; nil fields keep their value.
type UpdateAttendanceRequest struct {
	Status           *string `json:"status"`
	Shift            *string `json:"shift"`
	LocationOverride *string `json:"location_override"`
	StaffName        *string `json:"staff_name"`
	Location         *string `json:"location"`
	Salary           *int64  `json:"salary" binding:"omitempty,gte=0"`
	ArrivalTime      *string `json:"arrival_time"`
	LeavingTime      *string `json:"leaving_time"`
}

type ListAttendanceRequest struct {
	From     string `form:"from" binding:"required"`
	To       string `form:"to" binding:"required"`
	PartTime *bool  `form:"part_time"`
	StaffID  string `form:"staff_id"`
}

type MonthlySummaryRequest struct {
	Year     int    `form:"year" binding:"required,min=2000"`
	Month    int    `form:"month" binding:"required,min=1,max=12"`
	Location string `form:"location"`
}

type AttendanceResponse struct {
	ID               string  `json:"id"`
	Date             string  `json:"date"`
	Status           string  `json:"status"`
	AttendanceValue  float64 `json:"attendance_value"`
	Shift            string  `json:"shift,omitempty"`
	IsPartTime       bool    `json:"is_part_time"`
	StaffID          string  `json:"staff_id,omitempty"`
	LocationOverride string  `json:"location_override,omitempty"`
	StaffName        string  `json:"staff_name,omitempty"`
	Location         string  `json:"location,omitempty"`
	Salary           *int64  `json:"salary,omitempty"`
	SalaryOverride   bool    `json:"salary_override"`
	ArrivalTime      string  `json:"arrival_time,omitempty"`
	LeavingTime      string  `json:"leaving_time,omitempty"`
}

type MonthlySummaryResponse struct {
	StaffID        string `json:"staff_id"`
	StaffName      string `json:"staff_name"`
	Location       string `json:"location"`
	SundayHalfDays int    `json:"sunday_half_days"`
	Metrics
}
