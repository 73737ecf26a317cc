package ledger

import (
	"strconv"
	"time"

	"github.com/express22chief-pixel/money-planner-sub000/internal/calendar"
	"github.com/express22chief-pixel/money-planner-sub000/internal/models"
	"github.com/express22chief-pixel/money-planner-sub000/internal/uuid"
)

// FindSettlement returns the index of the drawdown entry paired with
// parentID, or -1.
func FindSettlement(entries []models.Transaction, parentID string) int {
	for i := range entries {
		if entries[i].IsSettlement && entries[i].ParentID != nil && *entries[i].ParentID == parentID {
			return i
		}
	}
	return -1
}

// Settlement builds the drawdown entry for a credit purchase against cards.
// A missing card reference resolves to the first card, then to the default
// rule.
func Settlement(parent *models.Transaction, cards []models.CreditCard, today time.Time) models.Transaction {
	return settlementFor(parent, models.ResolveCard(cards, parent.CardID), today)
}

// AttachSettlement appends parent and, for credit purchases, its drawdown
// entry. The purchase itself stays unsettled.
func AttachSettlement(entries []models.Transaction, parent models.Transaction, cards []models.CreditCard, today time.Time) Result {
	out := clone(entries)
	var added []models.Transaction

	if parent.ID == "" {
		parent.ID = uuid.New()
	}
	if parent.IsCredit() && parent.Type == models.TransactionTypeExpense {
		parent.Settled = false
	}
	out = append(out, parent)
	added = append(added, parent)

	if parent.IsCredit() && parent.Type == models.TransactionTypeExpense && FindSettlement(out, parent.ID) < 0 {
		pair := Settlement(&parent, cards, today)
		out = append(out, pair)
		added = append(added, pair)
	}
	return Result{Ledger: out, Added: added}
}

// Resync is the outcome of re-deriving a purchase's drawdown entry.
type Resync struct {
	Ledger []models.Transaction
	// Upserted is the recomputed drawdown entry, if the parent needs one.
	Upserted *models.Transaction
	// RemovedID is the id of a drawdown entry that no longer applies.
	RemovedID string
}

// ResyncSettlement replaces the entry with parent.ID and recomputes its
// drawdown entry: created when the parent became a credit purchase, updated
// when it still is one, removed otherwise.
func ResyncSettlement(entries []models.Transaction, parent models.Transaction, cards []models.CreditCard, today time.Time) Resync {
	out := clone(entries)
	for i := range out {
		if out[i].ID == parent.ID {
			out[i] = parent
			break
		}
	}

	idx := FindSettlement(out, parent.ID)
	needsPair := parent.IsCredit() && parent.Type == models.TransactionTypeExpense

	switch {
	case needsPair:
		pair := Settlement(&parent, cards, today)
		if idx >= 0 {
			pair.Base = out[idx].Base
			out[idx] = pair
		} else {
			out = append(out, pair)
		}
		return Resync{Ledger: out, Upserted: &pair}
	case idx >= 0:
		removed := out[idx].ID
		out = append(out[:idx], out[idx+1:]...)
		return Resync{Ledger: out, RemovedID: removed}
	}
	return Resync{Ledger: out}
}

// RemoveWithSettlement deletes the entry with id together with its drawdown
// entry. It returns the new ledger and the removed ids.
func RemoveWithSettlement(entries []models.Transaction, id string) ([]models.Transaction, []string) {
	out := make([]models.Transaction, 0, len(entries))
	var removed []string
	for i := range entries {
		t := &entries[i]
		if t.ID == id || (t.IsSettlement && t.ParentID != nil && *t.ParentID == id) {
			removed = append(removed, t.ID)
			continue
		}
		out = append(out, *t)
	}
	return out, removed
}

// SplitRecovery is the outcome of settling one person's split share.
type SplitRecovery struct {
	Ledger []models.Transaction
	// Updated is the split expense after the share was marked settled.
	Updated models.Transaction
	// Recovery is the income entry recording the money paid back.
	Recovery models.Transaction
}

// SettleSplitShare marks person's share of the split expense id as repaid
// and appends an income entry for the recovered amount. ok is false when the
// entry or an unsettled share for person does not exist.
func SettleSplitShare(entries []models.Transaction, id, person string, today time.Time) (SplitRecovery, bool) {
	out := clone(entries)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		t := &out[i]
		splits := make([]models.SplitShare, len(t.Splits))
		copy(splits, t.Splits)

		share := -1
		for j := range splits {
			if splits[j].Person == person && !splits[j].Settled {
				share = j
				break
			}
		}
		if share < 0 {
			return SplitRecovery{}, false
		}

		splits[share].Settled = true
		t.Splits = splits
		t.SplitSettled = true
		for _, s := range splits {
			if !s.Settled {
				t.SplitSettled = false
				break
			}
		}

		parentID := t.ID
		recovery := models.Transaction{
			Base:        models.Base{ID: uuid.Derive("split", t.ID, person, strconv.Itoa(share))},
			Date:        calendar.Day(today),
			Category:    models.SplitRecoveryCategory,
			Amount:      splits[share].Amount,
			Type:        models.TransactionTypeIncome,
			Description: person,
			Settled:     true,
			ParentID:    &parentID,
		}
		out = append(out, recovery)
		return SplitRecovery{Ledger: out, Updated: *t, Recovery: recovery}, true
	}
	return SplitRecovery{}, false
}
