package entitlement

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entitlement is the resolved relationship state of a viewer towards a
// subject. Direction matters: Blocked means the viewer blocked the subject,
// BlockedReversal means the subject blocked the viewer.
type Entitlement struct {
	Subscribed               bool            `json:"subscribed"`
	CurrentSubscriptionPrice decimal.Decimal `json:"current_subscription_price"`
	SubscriptionExpireAt     *time.Time      `json:"subscription_expire_at"`
	SubscribedAt             *time.Time      `json:"subscribed_at"`

	Blocked            bool `json:"blocked"`
	BlockedReversal    bool `json:"blocked_reversal"`
	Restricted         bool `json:"restricted"`
	RestrictedReversal bool `json:"restricted_reversal"`

	Reported bool `json:"reported"`
	IsFriend bool `json:"is_friend"`
}

// NotAllowedOptions tune the not-allowed set. IncludeRestricted extends the
// set with restriction relations; ExcludeBlockedReversal drops the users who
// blocked/restricted the subject.
type NotAllowedOptions struct {
	IncludeRestricted      bool
	ExcludeBlockedReversal bool
}
