package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CampaignStatus is the lifecycle state of a group-buying campaign.
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "DRAFT"
	CampaignStatusActive    CampaignStatus = "ACTIVE"
	CampaignStatusLocked    CampaignStatus = "LOCKED"
	CampaignStatusCompleted CampaignStatus = "COMPLETED"
	CampaignStatusCancelled CampaignStatus = "CANCELLED"
)

var campaignTransitions = map[CampaignStatus][]CampaignStatus{
	CampaignStatusDraft:  {CampaignStatusActive, CampaignStatusCancelled},
	CampaignStatusActive: {CampaignStatusLocked, CampaignStatusCancelled},
	CampaignStatusLocked: {CampaignStatusCompleted},
}

// Valid reports whether s is a known campaign status.
func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignStatusDraft, CampaignStatusActive, CampaignStatusLocked,
		CampaignStatusCompleted, CampaignStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo is the single authority on legal campaign status changes.
func (s CampaignStatus) CanTransitionTo(next CampaignStatus) bool {
	return canTransition(campaignTransitions, s, next)
}

// Campaign is a supplier offer with a tiered price ladder. Brackets and
// pledges reference it by ID and are loaded through their repositories.
type Campaign struct {
	ID                     uuid.UUID      `json:"id"`
	SupplierOrganizationID uuid.UUID      `json:"supplier_organization_id"`
	Title                  string         `json:"title"`
	Description            string         `json:"description"`
	TargetQuantity         int64          `json:"target_quantity"`
	StartDate              time.Time      `json:"start_date"`
	EndDate                time.Time      `json:"end_date"`
	Status                 CampaignStatus `json:"status"`
	LockedBracketID        *uuid.UUID     `json:"locked_bracket_id,omitempty"`
	LockedAt               *time.Time     `json:"locked_at,omitempty"`
	CreatedAt              time.Time      `json:"created_at"`
	UpdatedAt              time.Time      `json:"updated_at"`
}

// Validate checks the mutable core fields of a campaign.
func (c *Campaign) Validate() error {
	if c.SupplierOrganizationID == uuid.Nil {
		return NewValidation("supplier_organization_id", "is required")
	}
	if strings.TrimSpace(c.Title) == "" {
		return NewValidation("title", "is required")
	}
	if c.TargetQuantity <= 0 {
		return NewValidation("target_quantity", "must be greater than 0")
	}
	if c.StartDate.IsZero() || c.EndDate.IsZero() {
		return NewValidation("start_date", "start and end dates are required")
	}
	if !c.EndDate.After(c.StartDate) {
		return NewValidation("end_date", "must be after start_date")
	}
	return nil
}

// Transition moves the campaign to next or returns a TransitionError.
func (c *Campaign) Transition(next CampaignStatus) error {
	if !c.Status.CanTransitionTo(next) {
		return &TransitionError{Entity: "campaign", From: string(c.Status), To: string(next)}
	}
	c.Status = next
	return nil
}

// EnsureDraft rejects mutation of anything but a DRAFT campaign.
func (c *Campaign) EnsureDraft(what string) error {
	if c.Status != CampaignStatusDraft {
		return NewValidation("", what+" can only be mutated on DRAFT campaigns")
	}
	return nil
}

func canTransition[S comparable](table map[S][]S, from, to S) bool {
	for _, s := range table[from] {
		if s == to {
			return true
		}
	}
	return false
}
