package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentIntentStatus tracks collection of money for one pledge.
type PaymentIntentStatus string

const (
	PaymentIntentPending        PaymentIntentStatus = "PENDING"
	PaymentIntentProcessing     PaymentIntentStatus = "PROCESSING"
	PaymentIntentSucceeded      PaymentIntentStatus = "SUCCEEDED"
	PaymentIntentFailedRetry1   PaymentIntentStatus = "FAILED_RETRY_1"
	PaymentIntentFailedRetry2   PaymentIntentStatus = "FAILED_RETRY_2"
	PaymentIntentFailedRetry3   PaymentIntentStatus = "FAILED_RETRY_3"
	PaymentIntentSentToAR       PaymentIntentStatus = "SENT_TO_AR"
	PaymentIntentCollectedViaAR PaymentIntentStatus = "COLLECTED_VIA_AR"
	PaymentIntentWrittenOff     PaymentIntentStatus = "WRITTEN_OFF"
)

// MaxPaymentRetries bounds the automatic retry escalation.
const MaxPaymentRetries = 3

var paymentIntentTransitions = map[PaymentIntentStatus][]PaymentIntentStatus{
	PaymentIntentPending:      {PaymentIntentProcessing, PaymentIntentSucceeded},
	PaymentIntentProcessing:   {PaymentIntentSucceeded, PaymentIntentFailedRetry1},
	PaymentIntentFailedRetry1: {PaymentIntentFailedRetry2, PaymentIntentSucceeded},
	PaymentIntentFailedRetry2: {PaymentIntentFailedRetry3, PaymentIntentSucceeded},
	PaymentIntentFailedRetry3: {PaymentIntentSentToAR, PaymentIntentSucceeded},
	PaymentIntentSentToAR:     {PaymentIntentCollectedViaAR, PaymentIntentWrittenOff},
}

// Valid reports whether s is a known payment intent status.
func (s PaymentIntentStatus) Valid() bool {
	switch s {
	case PaymentIntentPending, PaymentIntentProcessing, PaymentIntentSucceeded,
		PaymentIntentFailedRetry1, PaymentIntentFailedRetry2, PaymentIntentFailedRetry3,
		PaymentIntentSentToAR, PaymentIntentCollectedViaAR, PaymentIntentWrittenOff:
		return true
	}
	return false
}

// CanTransitionTo is the single authority on legal payment intent changes.
func (s PaymentIntentStatus) CanTransitionTo(next PaymentIntentStatus) bool {
	return canTransition(paymentIntentTransitions, s, next)
}

// Terminal reports whether no further transition is possible.
func (s PaymentIntentStatus) Terminal() bool {
	return len(paymentIntentTransitions[s]) == 0
}

// PreEscalation reports whether the intent is still on the automatic
// collection channel (not yet handed to accounts receivable).
func (s PaymentIntentStatus) PreEscalation() bool {
	switch s {
	case PaymentIntentPending, PaymentIntentProcessing,
		PaymentIntentFailedRetry1, PaymentIntentFailedRetry2, PaymentIntentFailedRetry3:
		return true
	}
	return false
}

// RetryStage returns the retry count implied by a FAILED_RETRY_n status.
func (s PaymentIntentStatus) RetryStage() (int, bool) {
	switch s {
	case PaymentIntentFailedRetry1:
		return 1, true
	case PaymentIntentFailedRetry2:
		return 2, true
	case PaymentIntentFailedRetry3:
		return 3, true
	}
	return 0, false
}

// PaymentIntent is the unit of work tracking collection for one pledge.
type PaymentIntent struct {
	ID                  uuid.UUID           `json:"id"`
	PledgeID            uuid.UUID           `json:"pledge_id"`
	CampaignID          uuid.UUID           `json:"campaign_id"`
	BuyerOrganizationID uuid.UUID           `json:"buyer_organization_id"`
	Amount              decimal.Decimal     `json:"amount"`
	Status              PaymentIntentStatus `json:"status"`
	RetryCount          int                 `json:"retry_count"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

// Transition applies next, keeping RetryCount in lockstep with the retry
// stage. The count never leaves 0..MaxPaymentRetries.
func (p *PaymentIntent) Transition(next PaymentIntentStatus) error {
	if !next.Valid() {
		return NewValidation("status", "unknown payment intent status "+string(next))
	}
	if !p.Status.CanTransitionTo(next) {
		return &TransitionError{Entity: "payment intent", From: string(p.Status), To: string(next)}
	}
	retries := p.RetryCount
	if stage, ok := next.RetryStage(); ok {
		retries = stage
	}
	if retries < 0 || retries > MaxPaymentRetries {
		return NewValidation("retry_count", "must be between 0 and 3")
	}
	p.Status = next
	p.RetryCount = retries
	return nil
}

// SettlementStatus picks the terminal status a manual invoice payment moves
// the intent to. The boolean is false when the intent already reflects a
// completed collection and must be left alone.
func (p *PaymentIntent) SettlementStatus() (PaymentIntentStatus, bool, error) {
	switch {
	case p.Status.PreEscalation():
		return PaymentIntentSucceeded, true, nil
	case p.Status == PaymentIntentSentToAR:
		return PaymentIntentCollectedViaAR, true, nil
	case p.Status == PaymentIntentSucceeded, p.Status == PaymentIntentCollectedViaAR:
		return p.Status, false, nil
	default:
		return "", false, &TransitionError{Entity: "payment intent", From: string(p.Status), To: string(PaymentIntentSucceeded)}
	}
}
