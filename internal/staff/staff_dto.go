package staff

type StaffRequest struct {
	Name                  string           `json:"name"`
	Phone                 string           `json:"phone"`
	Location              string           `json:"location"`
	EmploymentType        string           `json:"employment_type" binding:"required"`
	JoinedDate            string           `json:"joined_date"`
	BasicSalary           int64            `json:"basic_salary"`
	Incentive             int64            `json:"incentive"`
	HRA                   int64            `json:"hra"`
	MealAllowance         int64            `json:"meal_allowance"`
	Supplements           map[string]int64 `json:"supplements"`
	SundayPenaltyEnabled  *bool            `json:"sunday_penalty_enabled"`
	SalaryCalculationDays int              `json:"salary_calculation_days" binding:"min=0"`
}

type CreateStaffRequest = StaffRequest

type UpdateStaffRequest = StaffRequest

type ListStaffRequest struct {
	Location       string `form:"location"`
	EmploymentType string `form:"employment_type" binding:"omitempty,oneof=full_time part_time"`
	ActiveOnly     bool   `form:"active_only"`
}

type StaffResponse struct {
	ID                    string           `json:"id"`
	Code                  string           `json:"code"`
	Name                  string           `json:"name"`
	Phone                 string           `json:"phone"`
	Location              string           `json:"location"`
	EmploymentType        string           `json:"employment_type"`
	IsActive              bool             `json:"is_active"`
	JoinedDate            string           `json:"joined_date"`
	BasicSalary           int64            `json:"basic_salary"`
	Incentive             int64            `json:"incentive"`
	HRA                   int64            `json:"hra"`
	MealAllowance         int64            `json:"meal_allowance"`
	Supplements           map[string]int64 `json:"supplements,omitempty"`
	TotalSalary           int64            `json:"total_salary"`
	SundayPenaltyEnabled  bool             `json:"sunday_penalty_enabled"`
	SalaryCalculationDays int              `json:"salary_calculation_days"`
}

type OptionResponse struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type HikeRequest struct {
	NewBasic      int64  `json:"new_basic" binding:"min=0"`
	EffectiveDate string `json:"effective_date" binding:"required"`
	Reason        string `json:"reason"`
}

type HikeResponse struct {
	ID            string `json:"id"`
	StaffID       string `json:"staff_id"`
	PreviousBasic int64  `json:"previous_basic"`
	NewBasic      int64  `json:"new_basic"`
	EffectiveDate string `json:"effective_date"`
	Reason        string `json:"reason,omitempty"`
}

type ArchiveRequest struct {
	Reason   string `json:"reason" binding:"required"`
	LeftDate string `json:"left_date"`
}

type RejoinRequest struct {
	JoinedDate string `json:"joined_date"`
}

type OldStaffResponse struct {
	ID             string           `json:"id"`
	StaffID        string           `json:"staff_id"`
	Code           string           `json:"code"`
	Name           string           `json:"name"`
	Phone          string           `json:"phone"`
	Location       string           `json:"location"`
	EmploymentType string           `json:"employment_type"`
	JoinedDate     string           `json:"joined_date"`
	LeftDate       string           `json:"left_date"`
	Experience     string           `json:"experience"`
	BasicSalary    int64            `json:"basic_salary"`
	Incentive      int64            `json:"incentive"`
	HRA            int64            `json:"hra"`
	MealAllowance  int64            `json:"meal_allowance"`
	Supplements    map[string]int64 `json:"supplements,omitempty"`
	TotalSalary    int64            `json:"total_salary"`
	LastAdvance    *LastAdvance     `json:"last_advance,omitempty"`
	LeaveReason    string           `json:"leave_reason"`
}

type LastAdvance struct {
	Month          int   `json:"month"`
	Year           int   `json:"year"`
	OldAdvance     int64 `json:"old_advance"`
	CurrentAdvance int64 `json:"current_advance"`
	Deduction      int64 `json:"deduction"`
	NewAdvance     int64 `json:"new_advance"`
}
