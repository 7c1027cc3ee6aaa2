package list

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

func (r *Repo) GetByOwnerAndType(ownerID uuid.UUID, listType Type) (*List, error) {
	var res List
	err := r.db.
		Where(&List{
			UserID: ownerID,
			Type:   listType,
		}).
		Take(&res).
		Error
	if err != nil {
		return nil, err
	}

	return &res, nil
}

func (r *Repo) GetActiveConnection(listID, memberID uuid.UUID) (*Connection, error) {
	var res Connection
	err := r.db.
		Where("list_id = ? AND member_id = ? AND expired_at IS NULL", listID, memberID).
		Take(&res).
		Error
	if err != nil {
		return nil, err
	}

	return &res, nil
}

// GetLastExpiredConnection returns the most recently expired membership.
func (r *Repo) GetLastExpiredConnection(listID, memberID uuid.UUID) (*Connection, error) {
	var res Connection
	err := r.db.
		Where("list_id = ? AND member_id = ? AND expired_at IS NOT NULL", listID, memberID).
		Order("expired_at DESC").
		First(&res).
		Error
	if err != nil {
		return nil, err
	}

	return &res, nil
}

func (r *Repo) GetActiveMemberIDs(listID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.
		Model(&Connection{}).
		Where("list_id = ? AND expired_at IS NULL", listID).
		Pluck("member_id", &ids).
		Error
	if err != nil {
		return nil, err
	}

	return ids, nil
}

// GetOwnersOfListsContaining returns owners of lists of the given types that
// actively contain the member.
func (r *Repo) GetOwnersOfListsContaining(memberID uuid.UUID, types []Type) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.
		Model(&List{}).
		Joins("JOIN connections ON connections.list_id = lists.id").
		Where("connections.member_id = ? AND connections.expired_at IS NULL AND lists.type IN ?", memberID, types).
		Pluck("lists.user_id", &ids).
		Error
	if err != nil {
		return nil, err
	}

	return ids, nil
}

// GetListsIncludingUser returns the owner's lists that contain the member,
// excluding the followers list. Active selects current memberships, otherwise
// expired ones.
func (r *Repo) GetListsIncludingUser(ownerID, memberID uuid.UUID, active bool) ([]List, error) {
	expiry := "connections.expired_at IS NULL"
	if !active {
		expiry = "connections.expired_at IS NOT NULL"
	}

	var res []List
	err := r.db.
		Model(&List{}).
		Distinct("lists.*").
		Joins("JOIN connections ON connections.list_id = lists.id").
		Where("lists.user_id = ? AND lists.type <> ? AND connections.member_id = ? AND "+expiry, ownerID, TypeFollowers, memberID).
		Find(&res).
		Error
	if err != nil {
		return nil, err
	}

	return res, nil
}
