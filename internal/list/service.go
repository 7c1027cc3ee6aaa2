package list

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DataProvider interface {
	GetByOwnerAndType(ownerID uuid.UUID, listType Type) (*List, error)
	GetActiveConnection(listID, memberID uuid.UUID) (*Connection, error)
	GetLastExpiredConnection(listID, memberID uuid.UUID) (*Connection, error)
	GetActiveMemberIDs(listID uuid.UUID) ([]uuid.UUID, error)
	GetOwnersOfListsContaining(memberID uuid.UUID, types []Type) ([]uuid.UUID, error)
	GetListsIncludingUser(ownerID, memberID uuid.UUID, active bool) ([]List, error)
}

// Catalog answers read-only questions about lists and their memberships.
// Mutation belongs to the owning write path.
type Catalog struct {
	repo DataProvider
}

func NewCatalog(r DataProvider) *Catalog {
	return &Catalog{
		repo: r,
	}
}

// FindList returns nil without error when the owner has no list of this type.
func (c *Catalog) FindList(ownerID uuid.UUID, listType Type) (*List, error) {
	l, err := c.repo.GetByOwnerAndType(ownerID, listType)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get list %s/%s: %w", ownerID, listType, err)
	}

	return l, nil
}

// ActiveConnection returns the active membership of member in the owner's
// list of the given type, or nil when absent.
func (c *Catalog) ActiveConnection(ownerID uuid.UUID, listType Type, memberID uuid.UUID) (*Connection, error) {
	l, err := c.FindList(ownerID, listType)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, nil
	}

	conn, err := c.repo.GetActiveConnection(l.ID, memberID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get active connection %s/%s: %w", l.ID, memberID, err)
	}

	return conn, nil
}

// MembershipState classifies member against the owner's list of the given
// type: never related, currently active, or expired.
func (c *Catalog) MembershipState(ownerID uuid.UUID, listType Type, memberID uuid.UUID) (Membership, error) {
	l, err := c.FindList(ownerID, listType)
	if err != nil {
		return MembershipNone, err
	}
	if l == nil {
		return MembershipNone, nil
	}

	conn, err := c.repo.GetActiveConnection(l.ID, memberID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return MembershipNone, fmt.Errorf("get active connection %s/%s: %w", l.ID, memberID, err)
	}
	if conn != nil {
		return MembershipActive, nil
	}

	expired, err := c.repo.GetLastExpiredConnection(l.ID, memberID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return MembershipNone, fmt.Errorf("get expired connection %s/%s: %w", l.ID, memberID, err)
	}
	if expired != nil {
		return MembershipExpired, nil
	}

	return MembershipNone, nil
}

func (c *Catalog) ActiveMemberIDs(listID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := c.repo.GetActiveMemberIDs(listID)
	if err != nil {
		return nil, fmt.Errorf("get active members %s: %w", listID, err)
	}

	return ids, nil
}

func (c *Catalog) OwnersOfListsContaining(memberID uuid.UUID, types []Type) ([]uuid.UUID, error) {
	ids, err := c.repo.GetOwnersOfListsContaining(memberID, types)
	if err != nil {
		return nil, fmt.Errorf("get owners containing %s: %w", memberID, err)
	}

	return ids, nil
}

// ListsIncludingUser returns the owner's lists containing the member,
// excluding the followers list.
func (c *Catalog) ListsIncludingUser(ownerID, memberID uuid.UUID, active bool) ([]List, error) {
	lists, err := c.repo.GetListsIncludingUser(ownerID, memberID, active)
	if err != nil {
		return nil, fmt.Errorf("get lists including %s/%s: %w", ownerID, memberID, err)
	}

	return lists, nil
}
