package auditlog

type EntryResponse struct {
	LogID           string  `json:"log_id"`
	RequestID       string  `json:"request_id"`
	RequesterEmail  string  `json:"requester_email"`
	Action          string  `json:"action"`
	ApproverID      int     `json:"approver_id"`
	ApproverEmail   string  `json:"approver_email"`
	RequestedDate   string  `json:"requested_date"`
	Department      string  `json:"department"`
	TimeOfDay       string  `json:"time_of_day"`
	Comment         *string `json:"comment,omitempty"`
	ActionTimestamp string  `json:"action_timestamp"`
}
