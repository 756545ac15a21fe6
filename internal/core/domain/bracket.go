package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscountBracket maps an inclusive quantity range to a unit price.
// A nil MaxQuantity means the range is unbounded above.
type DiscountBracket struct {
	ID           uuid.UUID       `json:"id"`
	CampaignID   uuid.UUID       `json:"campaign_id"`
	MinQuantity  int64           `json:"min_quantity"`
	MaxQuantity  *int64          `json:"max_quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	BracketOrder int             `json:"bracket_order"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Validate checks the bracket on its own, without looking at its siblings.
func (b *DiscountBracket) Validate() error {
	if b.MinQuantity < 0 {
		return NewValidation("min_quantity", "must be greater than or equal to 0")
	}
	if b.MaxQuantity != nil && *b.MaxQuantity <= b.MinQuantity {
		return NewValidation("max_quantity", "must be greater than min_quantity")
	}
	if !b.UnitPrice.IsPositive() {
		return NewValidation("unit_price", "must be greater than 0")
	}
	if !b.UnitPrice.Equal(b.UnitPrice.Round(moneyScale)) {
		return NewValidation("unit_price", fmt.Sprintf("must have at most %d decimal places", moneyScale))
	}
	if b.BracketOrder < 0 {
		return NewValidation("bracket_order", "must be greater than or equal to 0")
	}
	return nil
}

// Contains reports whether qty falls inside the bracket range.
func (b *DiscountBracket) Contains(qty int64) bool {
	if qty < b.MinQuantity {
		return false
	}
	return b.MaxQuantity == nil || qty <= *b.MaxQuantity
}

// Overlaps reports whether two bracket ranges share at least one quantity.
func (b *DiscountBracket) Overlaps(o *DiscountBracket) bool {
	bBelowO := b.MaxQuantity != nil && *b.MaxQuantity < o.MinQuantity
	oBelowB := o.MaxQuantity != nil && *o.MaxQuantity < b.MinQuantity
	return !bBelowO && !oBelowB
}

// ValidateLadder checks candidate against the existing brackets of the same
// campaign. A bracket with candidate's ID is treated as the one being
// replaced and ignored.
func ValidateLadder(existing []DiscountBracket, candidate *DiscountBracket) error {
	if err := candidate.Validate(); err != nil {
		return err
	}
	for i := range existing {
		other := &existing[i]
		if other.ID == candidate.ID {
			continue
		}
		if other.BracketOrder == candidate.BracketOrder {
			return NewValidation("bracket_order",
				fmt.Sprintf("bracket order %d is already used by bracket %s", candidate.BracketOrder, other.ID))
		}
		if candidate.Overlaps(other) {
			return NewValidation("min_quantity",
				fmt.Sprintf("quantity range overlaps bracket %s", other.ID))
		}
	}
	return nil
}

// ValidateLadderCoverage checks that the ladder prices every quantity from
// its first minimum upward exactly once: each bracket starts right after the
// previous one ends and only the last one may be unbounded.
func ValidateLadderCoverage(brackets []DiscountBracket) error {
	if len(brackets) == 0 {
		return NewValidation("brackets", "at least one discount bracket is required")
	}
	ladder := make([]DiscountBracket, len(brackets))
	copy(ladder, brackets)
	SortBrackets(ladder)

	for i := 1; i < len(ladder); i++ {
		prev, next := &ladder[i-1], &ladder[i]
		if prev.MaxQuantity == nil {
			return NewValidation("max_quantity",
				fmt.Sprintf("bracket %s is unbounded but is followed by bracket %s", prev.ID, next.ID))
		}
		if next.MinQuantity != *prev.MaxQuantity+1 {
			return NewValidation("min_quantity",
				fmt.Sprintf("bracket %s must start at %d to follow bracket %s", next.ID, *prev.MaxQuantity+1, prev.ID))
		}
	}
	return nil
}

// SortBrackets orders brackets by minimum quantity, then by bracket order.
func SortBrackets(brackets []DiscountBracket) {
	sort.SliceStable(brackets, func(i, j int) bool {
		if brackets[i].MinQuantity != brackets[j].MinQuantity {
			return brackets[i].MinQuantity < brackets[j].MinQuantity
		}
		return brackets[i].BracketOrder < brackets[j].BracketOrder
	})
}

// BracketResolution is the read-only pricing view for a committed quantity.
type BracketResolution struct {
	TotalQuantity      int64            `json:"total_quantity"`
	CurrentBracket     *DiscountBracket `json:"current_bracket"`
	NextBracket        *DiscountBracket `json:"next_bracket"`
	UnitsToNextBracket *int64           `json:"units_to_next_bracket"`
}

// ResolveBracket finds the bracket for total. The current bracket is the last
// one (by minimum quantity) whose minimum is not above total, so totals past
// every finite range fall into the top tier. When total is below the first
// minimum there is no current bracket and the first one is reported as next.
func ResolveBracket(brackets []DiscountBracket, total int64) BracketResolution {
	ladder := make([]DiscountBracket, len(brackets))
	copy(ladder, brackets)
	SortBrackets(ladder)

	res := BracketResolution{TotalQuantity: total}
	current := -1
	for i := range ladder {
		if ladder[i].MinQuantity <= total {
			current = i
		}
	}
	if current >= 0 {
		res.CurrentBracket = &ladder[current]
	}
	if next := current + 1; next < len(ladder) {
		res.NextBracket = &ladder[next]
		units := ladder[next].MinQuantity - total
		res.UnitsToNextBracket = &units
	}
	return res
}
