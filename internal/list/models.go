package list

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeFollowing  Type = "following"
	TypeFollowers  Type = "followers"
	TypeBlocked    Type = "blocked"
	TypeRestricted Type = "restricted"
	TypeCustom     Type = "custom"
)

// BaseTypes are created once per user at onboarding; at most one list per
// (owner, type). Custom lists are unlimited.
var BaseTypes = []Type{TypeFollowing, TypeFollowers, TypeBlocked, TypeRestricted}

func (t Type) IsBase() bool {
	for _, base := range BaseTypes {
		if t == base {
			return true
		}
	}

	return false
}

type List struct {
	ID uuid.UUID `gorm:"primary_key"`

	CreatedAt time.Time
	UpdatedAt time.Time

	UserID uuid.UUID `gorm:"index:idx_lists_owner_type"`
	Type   Type      `gorm:"index:idx_lists_owner_type"`
	Name   string
}

// Connection is a softly-expirable membership of MemberID inside a list.
// Expired rows are never deleted: they distinguish "was related, now isn't"
// from "never related". The write path keeps at most one active row per
// (list_id, member_id).
type Connection struct {
	ID uuid.UUID `gorm:"primary_key"`

	CreatedAt time.Time
	UpdatedAt time.Time

	ListID    uuid.UUID  `gorm:"index:idx_connections_list_member"`
	MemberID  uuid.UUID  `gorm:"index:idx_connections_list_member"`
	ExpiredAt *time.Time `gorm:"index:idx_connections_list_member"`
}

func (c *Connection) Active() bool {
	return c.ExpiredAt == nil
}

// Membership is the tri-state relationship of a user to a list.
type Membership int

const (
	MembershipNone Membership = iota
	MembershipActive
	MembershipExpired
)
