package auditlog

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one approval/rejection decision for one affected date. Rows are
// append-only; nothing updates or deletes them. A multi-date request gets
// one entry per date, all stamped with the same decision timestamp.
type Entry struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RequestID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_audit_request_date_action"`
	RequesterEmail  string    `gorm:"type:varchar(100)"`
	Action          string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_audit_request_date_action"`
	ApproverID      int       `gorm:"not null"`
	ApproverEmail   string    `gorm:"type:varchar(100);not null"`
	RequestedDate   time.Time `gorm:"type:date;not null;uniqueIndex:idx_audit_request_date_action"`
	Department      string    `gorm:"type:varchar(50)"`
	TimeOfDay       string    `gorm:"type:varchar(20)"`
	Comment         *string   `gorm:"type:text"`
	ActionTimestamp time.Time `gorm:"not null"`
}

func (Entry) TableName() string { return "audit_log" }
