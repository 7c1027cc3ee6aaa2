package friend

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
)

// Record is an unordered user pair; the stored order of the two ids carries
// no meaning.
type Record struct {
	ID uuid.UUID `gorm:"primary_key"`

	CreatedAt time.Time
	UpdatedAt time.Time

	UserOneID uuid.UUID `gorm:"index:idx_friend_lists_pair"`
	UserTwoID uuid.UUID `gorm:"index:idx_friend_lists_pair"`
	Status    Status
}

func (r *Record) TableName() string {
	return "friend_lists"
}
