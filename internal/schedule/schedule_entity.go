package schedule

import "time"

// Entry is the derived per-staff, per-date work-location record consumed by
// reporting. At most one row per (staff_id, date); later decisions
// overwrite the status for that day.
type Entry struct {
	StaffID    int       `gorm:"primaryKey"`
	Date       time.Time `gorm:"type:date;primaryKey"`
	Department string    `gorm:"type:varchar(50);not null"`
	Status     string    `gorm:"type:varchar(20);not null"`
	UpdatedAt  time.Time
}

func (Entry) TableName() string { return "schedule" }
