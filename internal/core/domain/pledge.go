package domain

import (
	"time"

	"github.com/google/uuid"
)

// PledgeStatus is owned by the pledge-management side; settlement only reads it.
type PledgeStatus string

const (
	PledgeStatusCommitted PledgeStatus = "COMMITTED"
	PledgeStatusCancelled PledgeStatus = "CANCELLED"
)

// Pledge is a buyer organization's committed quantity within a campaign.
type Pledge struct {
	ID                  uuid.UUID    `json:"id"`
	CampaignID          uuid.UUID    `json:"campaign_id"`
	BuyerOrganizationID uuid.UUID    `json:"buyer_organization_id"`
	Quantity            int64        `json:"quantity"`
	Status              PledgeStatus `json:"status"`
	CreatedAt           time.Time    `json:"created_at"`
}

// TotalQuantity sums pledge quantities.
func TotalQuantity(pledges []Pledge) int64 {
	var total int64
	for _, p := range pledges {
		total += p.Quantity
	}
	return total
}
