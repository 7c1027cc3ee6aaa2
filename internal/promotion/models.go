package promotion

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Group string

const (
	GroupAll     Group = "all"
	GroupNew     Group = "new"
	GroupExpired Group = "expired"
)

type Type string

const (
	TypeTrial    Type = "trial"
	TypeDiscount Type = "discount"
)

type Mode string

const (
	// ModeSoft annotates CanClaim=false and returns normally.
	ModeSoft Mode = "soft"
	// ModeEnforce returns a conflict error carrying the failed rule message.
	ModeEnforce Mode = "enforce"
)

// Promotion is a creator-issued, time/quantity-bounded offer targeted at a
// follower segment. It becomes inert via FinishAt or claims exhaustion and is
// never deleted by this engine.
type Promotion struct {
	ID uuid.UUID `gorm:"primary_key"`

	CreatedAt time.Time
	UpdatedAt time.Time

	UserID uuid.UUID `gorm:"index"` // creator

	Group Group
	Type  Type

	Price    decimal.Decimal `gorm:"type:numeric(10,2)"`
	Duration int             // days
	Discount int             // percent

	FinishAt       *time.Time
	SubscribeCount *int
	ClaimsCount    int

	Message string
	// Link marks a shareable-link variant hidden from ordinary listings.
	Link bool
}

func (p *Promotion) Finished(now time.Time) bool {
	return p.FinishAt != nil && p.FinishAt.Before(now)
}

func (p *Promotion) LimitReached() bool {
	return p.SubscribeCount != nil && p.ClaimsCount >= *p.SubscribeCount
}

// Evaluated is a promotion annotated with the viewer's eligibility. Reason
// carries the failed rule message in soft mode.
type Evaluated struct {
	Promotion
	CanClaim bool   `json:"can_claim"`
	Reason   string `json:"reason,omitempty"`
}
