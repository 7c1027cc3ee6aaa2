package friend

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

// HasAccepted checks the unordered pair in both stored orders.
func (r *Repo) HasAccepted(userOneID, userTwoID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.
		Model(&Record{}).
		Where("status = ?", StatusAccepted).
		Where(
			"(user_one_id = ? AND user_two_id = ?) OR (user_one_id = ? AND user_two_id = ?)",
			userOneID, userTwoID, userTwoID, userOneID,
		).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
