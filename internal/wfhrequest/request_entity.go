package wfhrequest

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending   = "Pending"
	StatusApproved  = "Approved"
	StatusRejected  = "Rejected"
	StatusWithdrawn = "Withdrawn"
	StatusCancelled = "Cancelled"
)

const (
	TimeOfDayFull   = "FULL_DAY"
	TimeOfDayHalfAM = "HALF_DAY_AM"
	TimeOfDayHalfPM = "HALF_DAY_PM"
)

// Request is one WFH submission covering one or more dates. Rows are never
// deleted; terminal states stay for audit history.
type Request struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StaffID    int       `gorm:"not null;index:idx_requests_staff"`
	Department string    `gorm:"type:varchar(50);not null;index:idx_requests_department"`

	Reason    string `gorm:"type:text;not null"`
	TimeOfDay string `gorm:"type:varchar(20);not null;default:'FULL_DAY'"`
	Status    string `gorm:"type:varchar(20);not null;default:'Pending';index:idx_requests_status"`

	ReportingManagerID    int    `gorm:"index:idx_requests_manager"`
	ReportingManagerName  string `gorm:"type:varchar(100)"`
	ReportingManagerEmail string `gorm:"type:varchar(100)"`
	RequesterEmail        string `gorm:"type:varchar(100)"`
	ApproverComment       *string `gorm:"type:text"`

	Dates []RequestDate `gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Request) TableName() string { return "requests" }

// RequestDate is one calendar date of a request, unique per request.
type RequestDate struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RequestID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_request_dates_request_date"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_request_dates_request_date"`
}

func (RequestDate) TableName() string { return "request_dates" }

// DateStrings returns the request's dates in wire format, ordered.
func (r Request) DateStrings() []string {
	out := make([]string, len(r.Dates))
	for i, d := range r.Dates {
		out[i] = d.Date.Format("2006-01-02")
	}
	return out
}
