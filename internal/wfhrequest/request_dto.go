package wfhrequest

type CreateRequestRequest struct {
	StaffID        int      `json:"staff_id" binding:"required"`
	Department     string   `json:"department" binding:"required"`
	RequestedDates []string `json:"requested_dates" binding:"required,min=1,dive,datetime=2006-01-02"`
	TimeOfDay      string   `json:"time_of_day" binding:"omitempty,oneof=FULL_DAY HALF_DAY_AM HALF_DAY_PM"`
	Reason         string   `json:"reason" binding:"required"`
	RequesterEmail string   `json:"requester_email" binding:"omitempty,email"`
}

type RequestResponse struct {
	RequestID             string   `json:"request_id"`
	StaffID               int      `json:"staff_id"`
	Department            string   `json:"department"`
	RequestedDates        []string `json:"requested_dates"`
	TimeOfDay             string   `json:"time_of_day"`
	Reason                string   `json:"reason"`
	Status                string   `json:"status"`
	ReportingManagerID    int      `json:"reporting_manager_id"`
	ReportingManagerName  string   `json:"reporting_manager_name"`
	ReportingManagerEmail string   `json:"reporting_manager_email"`
	RequesterEmail        string   `json:"requester_email"`
	ApproverComment       *string  `json:"approver_comment,omitempty"`
	CreatedAt             string   `json:"created_at,omitempty"`
}
