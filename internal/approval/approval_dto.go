package approval

import "worknest/internal/wfhrequest"

// DecisionRequest carries the approver's identity in the body, matching
// the original submit contract from the approval UI.
type DecisionRequest struct {
	ApproverID      int    `json:"approver_id" binding:"required"`
	ApproverEmail   string `json:"approver_email" binding:"required,email"`
	ApproverComment string `json:"approver_comment" binding:"omitempty,max=500"`
}

type UpdateRequestRequest struct {
	RequestedDates []string `json:"requested_dates" binding:"required,min=1,dive,datetime=2006-01-02"`
	TimeOfDay      string   `json:"time_of_day" binding:"omitempty,oneof=FULL_DAY HALF_DAY_AM HALF_DAY_PM"`
	Reason         string   `json:"reason" binding:"required"`
}

// DecisionResponse wraps the post-decision request. Warning is set when
// the decision committed but schedule propagation did not stick.
type DecisionResponse struct {
	Status  string                     `json:"status"`
	Request wfhrequest.RequestResponse `json:"request"`
	Warning string                     `json:"warning,omitempty"`
}
