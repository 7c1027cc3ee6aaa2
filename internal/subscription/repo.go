package subscription

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fanbase-labs/relation-storage/internal/list"
)

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) GetByConnectionID(connectionID uuid.UUID) (*Detail, error) {
	var res Detail
	err := r.db.
		Where(&Detail{ConnectionID: connectionID}).
		Take(&res).
		Error
	if err != nil {
		return nil, err
	}

	return &res, nil
}

func (r *Repo) GetActiveByConnectionID(connectionID uuid.UUID) (*Detail, error) {
	var res Detail
	err := r.db.
		Where("connection_id = ? AND expired_at IS NULL", connectionID).
		Take(&res).
		Error
	if err != nil {
		return nil, err
	}

	return &res, nil
}

// HasTrialClaim reports whether the viewer ever held a trial subscription to
// the creator granted by the given plan, regardless of expiry state.
func (r *Repo) HasTrialClaim(viewerID, creatorID, planID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.
		Model(&Detail{}).
		Joins("JOIN connections ON connections.id = subscriptions_details.connection_id").
		Joins("JOIN lists ON lists.id = connections.list_id").
		Where("lists.user_id = ? AND lists.type = ?", viewerID, list.TypeFollowing).
		Where("connections.member_id = ?", creatorID).
		Where("subscriptions_details.type = ? AND subscriptions_details.plan_id = ?", TypeTrial, planID).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
