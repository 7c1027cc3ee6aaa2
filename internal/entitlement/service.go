package entitlement

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fanbase-labs/relation-storage/internal/list"
	"github.com/fanbase-labs/relation-storage/internal/metrics"
)

type Service struct {
	lists   ListCatalog
	subs    SubscriptionProvider
	reports ReportProvider
	friends FriendProvider
	users   UserProvider

	cache *Cache // optional, nil disables not-allowed caching
}

func NewService(lists ListCatalog, subs SubscriptionProvider, reports ReportProvider, friends FriendProvider, users UserProvider, cache *Cache) *Service {
	return &Service{
		lists:   lists,
		subs:    subs,
		reports: reports,
		friends: friends,
		users:   users,
		cache:   cache,
	}
}

// Resolve computes the full relationship state of viewer towards subject.
// The sub-checks answer independent questions and touch disjoint rows, so
// they run concurrently; none short-circuits another. No write side effects.
func (s *Service) Resolve(ctx context.Context, viewerID, subjectID uuid.UUID) (ent *Entitlement, err error) {
	defer func(start time.Time) {
		metrics.CollectResolveMetric(err, start)
	}(time.Now())

	res := Entitlement{}

	checks := []func() error{
		func() error { return s.resolveSubscription(&res, viewerID, subjectID) },
		func() error {
			return s.resolveMembership(&res.Blocked, viewerID, list.TypeBlocked, subjectID)
		},
		func() error {
			return s.resolveMembership(&res.BlockedReversal, subjectID, list.TypeBlocked, viewerID)
		},
		func() error {
			return s.resolveMembership(&res.Restricted, viewerID, list.TypeRestricted, subjectID)
		},
		func() error {
			return s.resolveMembership(&res.RestrictedReversal, subjectID, list.TypeRestricted, viewerID)
		},
		func() error {
			reported, errR := s.reports.Exists(viewerID, subjectID)
			if errR != nil {
				return fmt.Errorf("check report: %w", errR)
			}
			res.Reported = reported

			return nil
		},
		func() error {
			isFriend, errF := s.friends.HasAccepted(viewerID, subjectID)
			if errF != nil {
				return fmt.Errorf("check friendship: %w", errF)
			}
			res.IsFriend = isFriend

			return nil
		},
	}

	// each check writes its own fields, no shared state beyond the error slot
	var wg sync.WaitGroup
	errs := make([]error, len(checks))
	for i, check := range checks {
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		wg.Add(1)
		go func(i int, check func() error) {
			defer wg.Done()
			errs[i] = check()
		}(i, check)
	}
	wg.Wait()

	if err = errors.Join(errs...); err != nil {
		return nil, err
	}

	return &res, nil
}

func (s *Service) resolveSubscription(res *Entitlement, viewerID, subjectID uuid.UUID) error {
	conn, err := s.lists.ActiveConnection(viewerID, list.TypeFollowing, subjectID)
	if err != nil {
		return fmt.Errorf("check subscription: %w", err)
	}
	if conn == nil {
		return nil
	}

	res.Subscribed = true
	subscribedAt := conn.CreatedAt
	res.SubscribedAt = &subscribedAt

	detail, err := s.subs.GetActiveByConnectionID(conn.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("get subscription detail: %w", err)
	}
	if detail != nil {
		res.CurrentSubscriptionPrice = detail.Price
		res.SubscriptionExpireAt = detail.ExpireAt
	}

	return nil
}

func (s *Service) resolveMembership(target *bool, ownerID uuid.UUID, listType list.Type, memberID uuid.UUID) error {
	state, err := s.lists.MembershipState(ownerID, listType, memberID)
	if err != nil {
		return fmt.Errorf("check %s membership: %w", listType, err)
	}

	*target = state == list.MembershipActive

	return nil
}
