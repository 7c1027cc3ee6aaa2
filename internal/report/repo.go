package report

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Exists(reporterID, reportedUserID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.
		Model(&Record{}).
		Where(&Record{
			ReporterID:     reporterID,
			ReportedUserID: reportedUserID,
		}).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
