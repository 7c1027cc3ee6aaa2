package report

import (
	"time"

	"github.com/google/uuid"
)

// Record existence means the reporter reported the subject. Report content
// itself lives in the report service.
type Record struct {
	ID uuid.UUID `gorm:"primary_key"`

	CreatedAt time.Time
	UpdatedAt time.Time

	ReporterID     uuid.UUID `gorm:"index:idx_reported_users_pair"`
	ReportedUserID uuid.UUID `gorm:"index:idx_reported_users_pair"`
}

func (r *Record) TableName() string {
	return "reported_users"
}
