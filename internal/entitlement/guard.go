package entitlement

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fanbase-labs/relation-storage/internal/list"
	"github.com/fanbase-labs/relation-storage/internal/metrics"
	"github.com/fanbase-labs/relation-storage/pkg/errs"
)

// Message text below is client contract, rendered verbatim.
const (
	MsgUserNotExists    = "User not exists"
	MsgDeactivatedUser  = "Deactivated user"
	MsgBlockedUser      = "Blocked user"
	MsgBlockedByUser    = "You are blocked by this user"
	MsgRestrictedUser   = "Restricted user"
	MsgRestrictedByUser = "You are restricted by this user"
)

// AssertAllowed rejects an interaction of userID with refUserID when blocking
// applies, checked in a fixed order: ref user missing, ref user deactivated,
// blocked, blocked in reverse, then (when validateRestricted) restricted and
// restricted in reverse. It returns nil when none apply and never mutates.
func (s *Service) AssertAllowed(ctx context.Context, userID, refUserID uuid.UUID, validateRestricted bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ref, err := s.users.GetByID(refUserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		metrics.CollectGuardDenial("user_not_exists")

		return errs.NewConflict(MsgUserNotExists)
	}
	if err != nil {
		return fmt.Errorf("get ref user: %w", err)
	}
	if !ref.Active {
		metrics.CollectGuardDenial("deactivated_user")

		return errs.NewConflict(MsgDeactivatedUser)
	}

	type check struct {
		ownerID  uuid.UUID
		listType list.Type
		memberID uuid.UUID
		reason   string
		message  string
	}

	checks := []check{
		{userID, list.TypeBlocked, refUserID, "blocked", MsgBlockedUser},
		{refUserID, list.TypeBlocked, userID, "blocked_reversal", MsgBlockedByUser},
	}
	if validateRestricted {
		checks = append(checks,
			check{userID, list.TypeRestricted, refUserID, "restricted", MsgRestrictedUser},
			check{refUserID, list.TypeRestricted, userID, "restricted_reversal", MsgRestrictedByUser},
		)
	}

	for _, c := range checks {
		state, err := s.lists.MembershipState(c.ownerID, c.listType, c.memberID)
		if err != nil {
			return fmt.Errorf("check %s: %w", c.reason, err)
		}

		if state == list.MembershipActive {
			metrics.CollectGuardDenial(c.reason)

			return errs.NewConflict(c.message)
		}
	}

	return nil
}
