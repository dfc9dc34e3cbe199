package schedule

type UpsertEntryRequest struct {
	StaffID    int    `json:"staff_id" binding:"required"`
	Date       string `json:"date" binding:"required,datetime=2006-01-02"`
	Department string `json:"department" binding:"required"`
	Status     string `json:"status" binding:"required,oneof=Approved Rejected Withdrawn Cancelled"`
}

type EntryResponse struct {
	StaffID    int    `json:"staff_id"`
	Date       string `json:"date"`
	Department string `json:"department"`
	Status     string `json:"status"`
}
