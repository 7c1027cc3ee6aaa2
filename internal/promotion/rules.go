package promotion

import (
	"time"

	"github.com/google/uuid"

	"github.com/fanbase-labs/relation-storage/internal/list"
)

// Message text below is client contract, rendered verbatim.
const (
	MsgNotActive         = "Promotion is not active"
	MsgLimitReached      = "Promotion subscribers limit reached"
	MsgOwnPromotion      = "Own promotion"
	MsgTrialClaimed      = "This free trial offer doesn't exist anymore because it was claimed"
	MsgAlreadySubscribed = "Already subscribed to this user"
	MsgOnlyExpired       = "Only for expired users"
	MsgOnlyNew           = "Only for new subscribers"
)

// evalContext carries one promotion/viewer pair through the rule chain.
// expiredFollower is resolved lazily and memoized so the segment rules share
// a single lookup.
type evalContext struct {
	now       time.Time
	promotion *Promotion
	viewerID  *uuid.UUID

	expiredFollowerKnown bool
	expiredFollowerValue bool
}

func (ec *evalContext) expiredFollower(lists ListCatalog) (bool, error) {
	if ec.expiredFollowerKnown {
		return ec.expiredFollowerValue, nil
	}

	state, err := lists.MembershipState(ec.promotion.UserID, list.TypeFollowers, *ec.viewerID)
	if err != nil {
		return false, err
	}

	ec.expiredFollowerKnown = true
	ec.expiredFollowerValue = state == list.MembershipExpired

	return ec.expiredFollowerValue, nil
}

type rule struct {
	outcome string
	message string
	// viewerRequired rules are skipped when a promotion is evaluated without
	// a claimant, leaving only capacity/time state.
	viewerRequired bool
	failed         func(*evalContext) (bool, error)
}

// rules is the ordered eligibility chain; the first failing rule is terminal.
func (s *Service) rules() []rule {
	return []rule{
		{
			outcome: "not_active",
			message: MsgNotActive,
			failed: func(ec *evalContext) (bool, error) {
				return ec.promotion.Finished(ec.now), nil
			},
		},
		{
			outcome: "limit_reached",
			message: MsgLimitReached,
			failed: func(ec *evalContext) (bool, error) {
				return ec.promotion.LimitReached(), nil
			},
		},
		{
			outcome:        "own_promotion",
			message:        MsgOwnPromotion,
			viewerRequired: true,
			failed: func(ec *evalContext) (bool, error) {
				return *ec.viewerID == ec.promotion.UserID, nil
			},
		},
		{
			outcome:        "trial_claimed",
			message:        MsgTrialClaimed,
			viewerRequired: true,
			failed: func(ec *evalContext) (bool, error) {
				if ec.promotion.Type != TypeTrial {
					return false, nil
				}

				return s.trials.HasTrialClaim(*ec.viewerID, ec.promotion.UserID, ec.promotion.ID)
			},
		},
		{
			outcome:        "already_subscribed",
			message:        MsgAlreadySubscribed,
			viewerRequired: true,
			failed: func(ec *evalContext) (bool, error) {
				conn, err := s.lists.ActiveConnection(*ec.viewerID, list.TypeFollowing, ec.promotion.UserID)
				if err != nil {
					return false, err
				}

				return conn != nil, nil
			},
		},
		{
			outcome:        "only_for_expired",
			message:        MsgOnlyExpired,
			viewerRequired: true,
			failed: func(ec *evalContext) (bool, error) {
				if ec.promotion.Group != GroupExpired {
					return false, nil
				}

				expired, err := ec.expiredFollower(s.lists)
				if err != nil {
					return false, err
				}

				return !expired, nil
			},
		},
		{
			outcome:        "only_for_new",
			message:        MsgOnlyNew,
			viewerRequired: true,
			failed: func(ec *evalContext) (bool, error) {
				if ec.promotion.Group != GroupNew {
					return false, nil
				}

				return ec.expiredFollower(s.lists)
			},
		},
	}
}
