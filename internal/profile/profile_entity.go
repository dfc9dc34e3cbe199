package profile

import "time"

type Profile struct {
	StaffID            int    `gorm:"primaryKey"`
	FirstName          string `gorm:"type:varchar(50);not null"`
	LastName           string `gorm:"type:varchar(50);not null"`
	Email              string `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash       string `gorm:"type:varchar(255);not null"`
	Role               string `gorm:"type:varchar(20);not null"`
	Department         string `gorm:"type:varchar(50);not null"`
	Position           string `gorm:"type:varchar(50)"`
	ReportingManagerID *int   `gorm:"index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (Profile) TableName() string { return "profiles" }
