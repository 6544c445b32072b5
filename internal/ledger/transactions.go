package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/model"
)

// AddTransaction validates and appends a new transaction, returning it with
// its freshly assigned id. Any validation failure aborts the whole add with
// no state change.
func (l *Ledger) AddTransaction(date string, typ model.TxnType, amount decimal.Decimal, categoryID int32, note string) (model.Transaction, error) {
	if !ValidDate(date) {
		return model.Transaction{}, fmt.Errorf("date %q: %w", date, ErrInvalidDate)
	}
	if !typ.Valid() {
		return model.Transaction{}, fmt.Errorf("type %d: %w", typ, ErrInvalidType)
	}
	if !amount.IsPositive() {
		return model.Transaction{}, fmt.Errorf("amount %s: %w", amount, ErrNonPositiveAmount)
	}
	if !storableAmount(amount) {
		return model.Transaction{}, fmt.Errorf("amount %s: %w", amount, ErrAmountPrecision)
	}
	if _, ok := l.CategoryByID(categoryID); !ok {
		return model.Transaction{}, fmt.Errorf("category %d: %w", categoryID, common.ErrNotFound)
	}

	t := model.Transaction{
		ID:         l.nextTransactionID,
		Date:       date,
		Amount:     amount,
		CategoryID: categoryID,
		Type:       typ,
		Note:       truncate(note, model.MaxNote),
	}
	l.nextTransactionID++
	l.transactions = append(l.transactions, t)
	return t, nil
}

// TransactionPatch carries the optional field replacements for an edit.
// Nil fields keep their current value.
type TransactionPatch struct {
	Date       *string
	Type       *model.TxnType
	Amount     *decimal.Decimal
	CategoryID *int32
	Note       *string
}

// EditTransaction replaces the supplied fields of an existing transaction.
// Every supplied field must pass the same validation as AddTransaction; a
// supplied-but-invalid field rejects the whole edit and leaves the
// transaction untouched.
func (l *Ledger) EditTransaction(id int32, patch TransactionPatch) error {
	i := l.transactionIndex(id)
	if i < 0 {
		return fmt.Errorf("transaction %d: %w", id, common.ErrNotFound)
	}

	updated := l.transactions[i]
	if patch.Date != nil {
		if !ValidDate(*patch.Date) {
			return fmt.Errorf("date %q: %w", *patch.Date, ErrInvalidDate)
		}
		updated.Date = *patch.Date
	}
	if patch.Type != nil {
		if !patch.Type.Valid() {
			return fmt.Errorf("type %d: %w", *patch.Type, ErrInvalidType)
		}
		updated.Type = *patch.Type
	}
	if patch.Amount != nil {
		if !patch.Amount.IsPositive() {
			return fmt.Errorf("amount %s: %w", patch.Amount, ErrNonPositiveAmount)
		}
		if !storableAmount(*patch.Amount) {
			return fmt.Errorf("amount %s: %w", patch.Amount, ErrAmountPrecision)
		}
		updated.Amount = *patch.Amount
	}
	if patch.CategoryID != nil {
		if _, ok := l.CategoryByID(*patch.CategoryID); !ok {
			return fmt.Errorf("category %d: %w", *patch.CategoryID, common.ErrNotFound)
		}
		updated.CategoryID = *patch.CategoryID
	}
	if patch.Note != nil {
		updated.Note = truncate(*patch.Note, model.MaxNote)
	}

	l.transactions[i] = updated
	return nil
}

// RemoveTransaction deletes a transaction by swapping the last element into
// its slot. O(1), reorders the collection.
func (l *Ledger) RemoveTransaction(id int32) error {
	i := l.transactionIndex(id)
	if i < 0 {
		return fmt.Errorf("transaction %d: %w", id, common.ErrNotFound)
	}
	l.transactions = swapDelete(l.transactions, i)
	return nil
}

// Transactions returns transactions in storage order, bounded by the given
// dates when non-empty. Both bounds are inclusive; comparison is
// lexicographic, which is chronological for this date format.
func (l *Ledger) Transactions(startDate, endDate string) ([]model.Transaction, error) {
	if startDate != "" && !ValidDate(startDate) {
		return nil, fmt.Errorf("start date %q: %w", startDate, ErrInvalidDate)
	}
	if endDate != "" && !ValidDate(endDate) {
		return nil, fmt.Errorf("end date %q: %w", endDate, ErrInvalidDate)
	}

	out := make([]model.Transaction, 0, len(l.transactions))
	for _, t := range l.transactions {
		if startDate != "" && t.Date < startDate {
			continue
		}
		if endDate != "" && t.Date > endDate {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// TransactionByID looks up a transaction by id.
func (l *Ledger) TransactionByID(id int32) (model.Transaction, bool) {
	i := l.transactionIndex(id)
	if i < 0 {
		return model.Transaction{}, false
	}
	return l.transactions[i], true
}

func (l *Ledger) transactionIndex(id int32) int {
	for i, t := range l.transactions {
		if t.ID == id {
			return i
		}
	}
	return -1
}
