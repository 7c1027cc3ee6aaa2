package promotion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fanbase-labs/relation-storage/internal/list"
	"github.com/fanbase-labs/relation-storage/internal/metrics"
	"github.com/fanbase-labs/relation-storage/pkg/errs"
)

const MsgPromotionNotFound = "Promotion not found"

type ListCatalog interface {
	ActiveConnection(ownerID uuid.UUID, listType list.Type, memberID uuid.UUID) (*list.Connection, error)
	MembershipState(ownerID uuid.UUID, listType list.Type, memberID uuid.UUID) (list.Membership, error)
}

type TrialProvider interface {
	HasTrialClaim(viewerID, creatorID, planID uuid.UUID) (bool, error)
}

type DataProvider interface {
	GetByID(id uuid.UUID) (*Promotion, error)
	GetByFilters(filters []Filter) ([]Promotion, error)
}

type Service struct {
	repo   DataProvider
	lists  ListCatalog
	trials TrialProvider
}

func NewService(repo DataProvider, lists ListCatalog, trials TrialProvider) *Service {
	return &Service{
		repo:   repo,
		lists:  lists,
		trials: trials,
	}
}

// Evaluate runs the ordered eligibility chain for one promotion. A nil viewer
// restricts the chain to capacity/time state. In soft mode the first failing
// rule annotates the result; in enforce mode it becomes a conflict error.
func (s *Service) Evaluate(ctx context.Context, promo Promotion, viewerID *uuid.UUID, mode Mode) (Evaluated, error) {
	if err := ctx.Err(); err != nil {
		return Evaluated{Promotion: promo}, err
	}

	res := Evaluated{Promotion: promo}
	ec := &evalContext{
		now:       time.Now(),
		promotion: &promo,
		viewerID:  viewerID,
	}

	for _, r := range s.rules() {
		if r.viewerRequired && viewerID == nil {
			continue
		}

		failed, err := r.failed(ec)
		if err != nil {
			return res, fmt.Errorf("evaluate %s: %w", r.outcome, err)
		}
		if !failed {
			continue
		}

		metrics.CollectPromotionCheck(r.outcome)

		if mode == ModeEnforce {
			return res, errs.NewConflict(r.message)
		}

		res.Reason = r.message

		return res, nil
	}

	metrics.CollectPromotionCheck("eligible")
	res.CanClaim = true

	return res, nil
}

// EvaluateByID loads the promotion first; absence is a not-found domain error.
func (s *Service) EvaluateByID(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID, mode Mode) (Evaluated, error) {
	promo, err := s.repo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Evaluated{}, errs.NewNotFound(MsgPromotionNotFound)
	}
	if err != nil {
		return Evaluated{}, fmt.Errorf("get promotion %s: %w", id, err)
	}

	return s.Evaluate(ctx, *promo, viewerID, mode)
}

// EvaluateBatch soft-evaluates each promotion independently; a rule failure
// is terminal only within its own promotion.
func (s *Service) EvaluateBatch(ctx context.Context, promos []Promotion, viewerID *uuid.UUID) ([]Evaluated, error) {
	res := make([]Evaluated, 0, len(promos))
	for _, promo := range promos {
		evaluated, err := s.Evaluate(ctx, promo, viewerID, ModeSoft)
		if err != nil {
			return nil, err
		}

		res = append(res, evaluated)
	}

	return res, nil
}

// ListForCreator returns the creator's ordinary (non-link) promotions with
// per-item eligibility for the viewer.
func (s *Service) ListForCreator(ctx context.Context, creatorID uuid.UUID, viewerID *uuid.UUID) ([]Evaluated, error) {
	promos, err := s.repo.GetByFilters([]Filter{
		CreatorFilter{ID: creatorID},
		ListedFilter{},
	})
	if err != nil {
		return nil, fmt.Errorf("get promotions for %s: %w", creatorID, err)
	}

	return s.EvaluateBatch(ctx, promos, viewerID)
}
