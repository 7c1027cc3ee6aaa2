package entitlement

import (
	"github.com/google/uuid"

	"github.com/fanbase-labs/relation-storage/internal/list"
	"github.com/fanbase-labs/relation-storage/internal/subscription"
	"github.com/fanbase-labs/relation-storage/internal/user"
)

type ListCatalog interface {
	FindList(ownerID uuid.UUID, listType list.Type) (*list.List, error)
	ActiveConnection(ownerID uuid.UUID, listType list.Type, memberID uuid.UUID) (*list.Connection, error)
	MembershipState(ownerID uuid.UUID, listType list.Type, memberID uuid.UUID) (list.Membership, error)
	ActiveMemberIDs(listID uuid.UUID) ([]uuid.UUID, error)
	OwnersOfListsContaining(memberID uuid.UUID, types []list.Type) ([]uuid.UUID, error)
}

type SubscriptionProvider interface {
	GetActiveByConnectionID(connectionID uuid.UUID) (*subscription.Detail, error)
}

type ReportProvider interface {
	Exists(reporterID, reportedUserID uuid.UUID) (bool, error)
}

type FriendProvider interface {
	HasAccepted(userOneID, userTwoID uuid.UUID) (bool, error)
}

type UserProvider interface {
	GetByID(id uuid.UUID) (*user.User, error)
}
