// Package ledger merges recurring obligations into a transaction ledger and
// maintains the credit drawdown entries paired with card purchases.
//
// Every function takes the ledger by value and returns a new slice; the
// caller's records are never modified.
package ledger

import (
	"time"

	"github.com/express22chief-pixel/money-planner-sub000/internal/calendar"
	"github.com/express22chief-pixel/money-planner-sub000/internal/models"
	"github.com/express22chief-pixel/money-planner-sub000/internal/recurring"
	"github.com/express22chief-pixel/money-planner-sub000/internal/uuid"
)

// Result is the outcome of a generation pass.
type Result struct {
	Ledger []models.Transaction
	// Added lists the entries appended to Ledger, in append order.
	Added []models.Transaction
}

// key identifies a generated recurring entry for idempotency.
type key struct {
	date        string
	category    string
	amount      int64
	recurringID string
}

func keyOf(t *models.Transaction) key {
	k := key{
		date:     t.Date.Format(time.DateOnly),
		category: t.Category,
		amount:   t.AbsAmount(),
	}
	if t.RecurringID != nil {
		k.recurringID = *t.RecurringID
	}
	return k
}

// OccurrenceID returns the id of the entry generated for an obligation on a
// given date.
func OccurrenceID(obligationID string, date time.Time) string {
	return uuid.Derive("recurring", obligationID, date.Format(time.DateOnly))
}

// SettlementID returns the id of the drawdown entry paired with parentID.
func SettlementID(parentID string) string {
	return uuid.Derive("settlement", parentID)
}

// Generate expands every obligation for the month containing today.
func Generate(entries []models.Transaction, obligations []models.RecurringObligation, cards []models.CreditCard, today time.Time) Result {
	return GenerateMonth(entries, obligations, cards, calendar.Of(today), today)
}

// GenerateMonth appends the entries obligations produce in ym that are not
// already present. Credit obligations also get a paired settlement entry.
func GenerateMonth(entries []models.Transaction, obligations []models.RecurringObligation, cards []models.CreditCard, ym calendar.YearMonth, today time.Time) Result {
	today = calendar.Day(today)
	out := clone(entries)

	seen := make(map[key]int, len(out))
	paired := make(map[string]bool)
	for i := range out {
		if out[i].IsSettlement {
			if out[i].ParentID != nil {
				paired[*out[i].ParentID] = true
			}
			continue
		}
		if out[i].IsRecurring() {
			seen[keyOf(&out[i])] = i
		}
	}

	var added []models.Transaction
	for i := range obligations {
		ob := &obligations[i]
		for _, occ := range recurring.Expand(ob, ym, today) {
			entry := fromObligation(ob, occ)
			k := keyOf(&entry)
			if idx, ok := seen[k]; ok {
				entry = out[idx]
			} else {
				seen[k] = len(out)
				out = append(out, entry)
				added = append(added, entry)
			}

			if !entry.IsCredit() || paired[entry.ID] {
				continue
			}
			pair := settlementFor(&entry, models.ResolveCard(cards, entry.CardID), today)
			paired[entry.ID] = true
			out = append(out, pair)
			added = append(added, pair)
		}
	}

	return Result{Ledger: out, Added: added}
}

func fromObligation(ob *models.RecurringObligation, occ recurring.Occurrence) models.Transaction {
	recID := ob.ID
	entry := models.Transaction{
		Base:          models.Base{ID: OccurrenceID(ob.ID, occ.Date)},
		Date:          occ.Date,
		Category:      ob.Category,
		Amount:        -ob.Amount,
		Type:          models.TransactionTypeExpense,
		PaymentMethod: ob.PaymentMethod,
		Description:   ob.Name,
		RecurringID:   &recID,
		RecurringName: ob.Name,
		RecurringType: ob.Type,
	}
	if entry.PaymentMethod == "" {
		entry.PaymentMethod = models.PaymentMethodCash
	}
	if entry.IsCredit() {
		entry.CardID = copyString(ob.CardID)
	} else {
		entry.Settled = occ.Past
	}
	return entry
}

// settlementFor builds the drawdown entry for a credit purchase. card may be
// nil, in which case the default settlement rule applies.
func settlementFor(parent *models.Transaction, card *models.CreditCard, today time.Time) models.Transaction {
	var rule *calendar.CardRule
	cardID := copyString(parent.CardID)
	if card != nil {
		rule = card.Rule()
		id := card.ID
		cardID = &id
	}
	date := calendar.ResolveSettlementDate(parent.Date, rule)
	parentID := parent.ID

	return models.Transaction{
		Base:          models.Base{ID: SettlementID(parent.ID)},
		Date:          date,
		Category:      models.SettlementCategory,
		Amount:        parent.Amount,
		Type:          models.TransactionTypeExpense,
		PaymentMethod: models.PaymentMethodCredit,
		Description:   parent.Description,
		Settled:       !date.After(calendar.Day(today)),
		IsSettlement:  true,
		ParentID:      &parentID,
		CardID:        cardID,
		RecurringID:   copyString(parent.RecurringID),
		RecurringName: parent.RecurringName,
		RecurringType: parent.RecurringType,
	}
}

// ReconcileSettledStatus marks cash recurring entries and settlement entries
// as settled once their date has arrived. It returns the updated ledger and
// the ids that changed; running it again with the same today changes nothing.
func ReconcileSettledStatus(entries []models.Transaction, today time.Time) ([]models.Transaction, []string) {
	today = calendar.Day(today)
	out := clone(entries)

	var flipped []string
	for i := range out {
		t := &out[i]
		if t.Settled || calendar.Day(t.Date).After(today) {
			continue
		}
		cashRecurring := !t.IsSettlement && t.IsRecurring() && !t.IsCredit()
		if cashRecurring || t.IsSettlement {
			t.Settled = true
			flipped = append(flipped, t.ID)
		}
	}
	return out, flipped
}

func clone(entries []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, len(entries))
	copy(out, entries)
	return out
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
