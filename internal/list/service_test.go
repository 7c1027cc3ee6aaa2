package list

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeStore struct {
	lists []List
	conns []Connection
}

func (f *fakeStore) addList(ownerID uuid.UUID, listType Type) uuid.UUID {
	l := List{ID: uuid.New(), UserID: ownerID, Type: listType}
	f.lists = append(f.lists, l)

	return l.ID
}

func (f *fakeStore) connect(listID, memberID uuid.UUID, expiredAt *time.Time) {
	f.conns = append(f.conns, Connection{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		ListID:    listID,
		MemberID:  memberID,
		ExpiredAt: expiredAt,
	})
}

func (f *fakeStore) GetByOwnerAndType(ownerID uuid.UUID, listType Type) (*List, error) {
	for i := range f.lists {
		if f.lists[i].UserID == ownerID && f.lists[i].Type == listType {
			return &f.lists[i], nil
		}
	}

	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) GetActiveConnection(listID, memberID uuid.UUID) (*Connection, error) {
	for i := range f.conns {
		c := f.conns[i]
		if c.ListID == listID && c.MemberID == memberID && c.ExpiredAt == nil {
			return &f.conns[i], nil
		}
	}

	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) GetLastExpiredConnection(listID, memberID uuid.UUID) (*Connection, error) {
	var last *Connection
	for i := range f.conns {
		c := &f.conns[i]
		if c.ListID != listID || c.MemberID != memberID || c.ExpiredAt == nil {
			continue
		}
		if last == nil || c.ExpiredAt.After(*last.ExpiredAt) {
			last = c
		}
	}
	if last == nil {
		return nil, gorm.ErrRecordNotFound
	}

	return last, nil
}

func (f *fakeStore) GetActiveMemberIDs(listID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, c := range f.conns {
		if c.ListID == listID && c.ExpiredAt == nil {
			ids = append(ids, c.MemberID)
		}
	}

	return ids, nil
}

func (f *fakeStore) GetOwnersOfListsContaining(memberID uuid.UUID, types []Type) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, l := range f.lists {
		match := false
		for _, t := range types {
			if l.Type == t {
				match = true
			}
		}
		if !match {
			continue
		}

		for _, c := range f.conns {
			if c.ListID == l.ID && c.MemberID == memberID && c.ExpiredAt == nil {
				ids = append(ids, l.UserID)
			}
		}
	}

	return ids, nil
}

func (f *fakeStore) GetListsIncludingUser(ownerID, memberID uuid.UUID, active bool) ([]List, error) {
	var res []List
	for _, l := range f.lists {
		if l.UserID != ownerID || l.Type == TypeFollowers {
			continue
		}

		for _, c := range f.conns {
			if c.ListID != l.ID || c.MemberID != memberID {
				continue
			}
			if active == (c.ExpiredAt == nil) {
				res = append(res, l)

				break
			}
		}
	}

	return res, nil
}

func expiredAt(t time.Time) *time.Time {
	return &t
}

func TestUnitFindList(t *testing.T) {
	store := &fakeStore{}
	owner := uuid.New()
	store.addList(owner, TypeBlocked)

	catalog := NewCatalog(store)

	t.Run("existing list", func(t *testing.T) {
		l, err := catalog.FindList(owner, TypeBlocked)
		require.NoError(t, err)
		require.NotNil(t, l)
		require.Equal(t, TypeBlocked, l.Type)
	})

	t.Run("missing list is not an error", func(t *testing.T) {
		l, err := catalog.FindList(owner, TypeRestricted)
		require.NoError(t, err)
		require.Nil(t, l)
	})
}

func TestUnitMembershipState(t *testing.T) {
	store := &fakeStore{}
	owner := uuid.New()
	active := uuid.New()
	lapsed := uuid.New()
	stranger := uuid.New()

	listID := store.addList(owner, TypeFollowers)
	store.connect(listID, active, nil)
	store.connect(listID, lapsed, expiredAt(time.Now().Add(-time.Hour)))

	catalog := NewCatalog(store)

	for name, tc := range map[string]struct {
		member   uuid.UUID
		expected Membership
	}{
		"active member":  {member: active, expected: MembershipActive},
		"expired member": {member: lapsed, expected: MembershipExpired},
		"never related":  {member: stranger, expected: MembershipNone},
	} {
		t.Run(name, func(t *testing.T) {
			state, err := catalog.MembershipState(owner, TypeFollowers, tc.member)
			require.NoError(t, err)
			require.Equal(t, tc.expected, state)
		})
	}

	t.Run("no list at all", func(t *testing.T) {
		state, err := catalog.MembershipState(uuid.New(), TypeFollowers, active)
		require.NoError(t, err)
		require.Equal(t, MembershipNone, state)
	})
}

func TestUnitMembershipStateActiveWinsOverExpired(t *testing.T) {
	// resubscribed user has both an expired and an active row
	store := &fakeStore{}
	owner := uuid.New()
	member := uuid.New()

	listID := store.addList(owner, TypeFollowers)
	store.connect(listID, member, expiredAt(time.Now().Add(-time.Hour)))
	store.connect(listID, member, nil)

	catalog := NewCatalog(store)

	state, err := catalog.MembershipState(owner, TypeFollowers, member)
	require.NoError(t, err)
	require.Equal(t, MembershipActive, state)
}

func TestUnitActiveConnection(t *testing.T) {
	store := &fakeStore{}
	owner := uuid.New()
	member := uuid.New()

	listID := store.addList(owner, TypeFollowing)
	store.connect(listID, member, nil)

	catalog := NewCatalog(store)

	t.Run("present", func(t *testing.T) {
		conn, err := catalog.ActiveConnection(owner, TypeFollowing, member)
		require.NoError(t, err)
		require.NotNil(t, conn)
		require.Equal(t, member, conn.MemberID)
	})

	t.Run("absent member", func(t *testing.T) {
		conn, err := catalog.ActiveConnection(owner, TypeFollowing, uuid.New())
		require.NoError(t, err)
		require.Nil(t, conn)
	})

	t.Run("absent list", func(t *testing.T) {
		conn, err := catalog.ActiveConnection(uuid.New(), TypeFollowing, member)
		require.NoError(t, err)
		require.Nil(t, conn)
	})
}

func TestUnitListsIncludingUserSkipsFollowers(t *testing.T) {
	store := &fakeStore{}
	owner := uuid.New()
	member := uuid.New()

	followers := store.addList(owner, TypeFollowers)
	blocked := store.addList(owner, TypeBlocked)
	store.connect(followers, member, nil)
	store.connect(blocked, member, nil)

	catalog := NewCatalog(store)

	lists, err := catalog.ListsIncludingUser(owner, member, true)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	require.Equal(t, TypeBlocked, lists[0].Type)
}
