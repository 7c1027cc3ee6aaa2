package entitlement

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/fanbase-labs/relation-storage/internal/list"
)

// BuildNotAllowed returns the deduplicated set of users excluded from the
// given user's view: the users they blocked (and restricted, when included)
// plus, unless excluded, the users who blocked (restricted) them. The result
// is sorted for determinism. The cache is an optimization only; on any cache
// failure the set is rebuilt from the store.
func (s *Service) BuildNotAllowed(ctx context.Context, userID uuid.UUID, opts NotAllowedOptions) ([]uuid.UUID, error) {
	if s.cache != nil {
		ids, ok, err := s.cache.GetNotAllowed(ctx, userID, opts)
		if err != nil {
			log.Warn().Err(err).Msgf("get cached not-allowed set for %s", userID)
		}
		if ok {
			return ids, nil
		}
	}

	types := []list.Type{list.TypeBlocked}
	if opts.IncludeRestricted {
		types = append(types, list.TypeRestricted)
	}

	set := make(map[uuid.UUID]struct{})

	for _, listType := range types {
		l, err := s.lists.FindList(userID, listType)
		if err != nil {
			return nil, fmt.Errorf("find %s list: %w", listType, err)
		}
		if l == nil {
			continue
		}

		members, err := s.lists.ActiveMemberIDs(l.ID)
		if err != nil {
			return nil, fmt.Errorf("collect %s members: %w", listType, err)
		}
		for _, id := range members {
			set[id] = struct{}{}
		}
	}

	if !opts.ExcludeBlockedReversal {
		owners, err := s.lists.OwnersOfListsContaining(userID, types)
		if err != nil {
			return nil, fmt.Errorf("collect list owners: %w", err)
		}
		for _, id := range owners {
			set[id] = struct{}{}
		}
	}

	result := make([]uuid.UUID, 0, len(set))
	for id := range set {
		result = append(result, id)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].String() < result[j].String()
	})

	if s.cache != nil {
		if err := s.cache.SetNotAllowed(ctx, userID, opts, result); err != nil {
			log.Warn().Err(err).Msgf("cache not-allowed set for %s", userID)
		}
	}

	return result, nil
}
