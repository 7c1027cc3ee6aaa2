package subscription

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeFree  Type = "free"
	TypePaid  Type = "paid"
	TypeTrial Type = "trial"
)

// Detail extends a connection in a following list with pricing and renewal
// metadata. PlanID links a trial back to the promotion that granted it.
type Detail struct {
	ID uuid.UUID `gorm:"primary_key"`

	CreatedAt time.Time
	UpdatedAt time.Time

	ConnectionID uuid.UUID `gorm:"index"`

	Price decimal.Decimal `gorm:"type:numeric(10,2)"`
	Type  Type

	ExpireAt  *time.Time
	ExpiredAt *time.Time

	UnsubscribeReason string
	AutoRenewal       bool
	CheckRenewal      bool

	PlanID *uuid.UUID
}

func (d *Detail) TableName() string {
	return "subscriptions_details"
}

func (d *Detail) Active() bool {
	return d.ExpiredAt == nil
}
