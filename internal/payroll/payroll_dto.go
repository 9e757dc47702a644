package payroll

type PeriodQuery struct {
	Year     int    `form:"year" binding:"required,min=1"`
	Month    int    `form:"month" binding:"required,min=1,max=12"`
	Location string `form:"location"`
}

type SaveAdvanceRequest struct {
	StaffID        string `json:"staff_id" binding:"required,uuid"`
	Year           int    `json:"year" binding:"required,min=1"`
	Month          int    `json:"month" binding:"required,min=1,max=12"`
	OldAdvance     *int64 `json:"old_advance" binding:"omitempty,min=0"`
	CurrentAdvance int64  `json:"current_advance" binding:"min=0"`
	Deduction      int64  `json:"deduction" binding:"min=0"`
}

type AdvanceResponse struct {
	ID             string `json:"id"`
	StaffID        string `json:"staff_id"`
	Year           int    `json:"year"`
	Month          int    `json:"month"`
	OldAdvance     int64  `json:"old_advance"`
	CurrentAdvance int64  `json:"current_advance"`
	Deduction      int64  `json:"deduction"`
	NewAdvance     int64  `json:"new_advance"`
}

type UpsertOverrideRequest struct {
	StaffID       string `json:"staff_id" binding:"required,uuid"`
	Year          int    `json:"year" binding:"required,min=1"`
	Month         int    `json:"month" binding:"required,min=1,max=12"`
	Basic         *int64 `json:"basic" binding:"omitempty,min=0"`
	Incentive     *int64 `json:"incentive" binding:"omitempty,min=0"`
	HRA           *int64 `json:"hra" binding:"omitempty,min=0"`
	MealAllowance *int64 `json:"meal_allowance" binding:"omitempty,min=0"`
	SundayPenalty *int64 `json:"sunday_penalty" binding:"omitempty,min=0"`
}

type OverrideResponse struct {
	ID            string `json:"id"`
	StaffID       string `json:"staff_id"`
	Year          int    `json:"year"`
	Month         int    `json:"month"`
	Basic         *int64 `json:"basic,omitempty"`
	Incentive     *int64 `json:"incentive,omitempty"`
	HRA           *int64 `json:"hra,omitempty"`
	MealAllowance *int64 `json:"meal_allowance,omitempty"`
	SundayPenalty *int64 `json:"sunday_penalty,omitempty"`
}

type RequestSlipsRequest struct {
	Year     int      `json:"year" binding:"required,min=1"`
	Month    int      `json:"month" binding:"required,min=1,max=12"`
	Location string   `json:"location"`
	StaffIDs []string `json:"staff_ids" binding:"omitempty,dive,uuid"`
}

type RequestSlipsResponse struct {
	Year     int      `json:"year"`
	Month    int      `json:"month"`
	Location string   `json:"location,omitempty"`
	StaffIDs []string `json:"staff_ids,omitempty"`
	Queued   bool     `json:"queued"`
}
