// Package storage provides the data persistence layer: each record
// collection is serialized to its own file as a flat sequence of fixed-size
// binary records, with an optional reversible byte-transform over the whole
// file.
package storage

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/tally/internal/model"
)

// On-disk record layouts. Little-endian, no delimiters, no length prefixes;
// record size is implied by the type. Strings are NUL-padded fixed-width
// fields. Amounts are stored as decimal coefficient plus exponent so the
// stored precision round-trips exactly; a coefficient that does not fit the
// int64 field is an encode error, never a silent truncation.
type categoryRecord struct {
	ID   int32
	Name [64]byte
}

type transactionRecord struct {
	ID          int32
	Date        [11]byte
	AmountUnits int64
	AmountExp   int32
	CategoryID  int32
	Type        int32
	Note        [256]byte
}

type budgetRecord struct {
	CategoryID  int32
	Year        int32
	Month       int32
	AmountUnits int64
	AmountExp   int32
}

var (
	categoryRecordSize    = binary.Size(categoryRecord{})
	transactionRecordSize = binary.Size(transactionRecord{})
	budgetRecordSize      = binary.Size(budgetRecord{})
)

func putFixedString(dst []byte, s string) {
	// Room for a trailing NUL is guaranteed by the write-path truncation.
	copy(dst, s)
}

func fixedString(src []byte) string {
	if i := bytes.IndexByte(src, 0); i >= 0 {
		src = src[:i]
	}
	return string(src)
}

func putAmount(d decimal.Decimal) (units int64, exp int32, err error) {
	coeff := d.Coefficient()
	if !coeff.IsInt64() {
		return 0, 0, fmt.Errorf("amount %s does not fit the fixed-size amount field", d)
	}
	return coeff.Int64(), d.Exponent(), nil
}

func amount(units int64, exp int32) decimal.Decimal {
	return decimal.New(units, exp)
}

// EncodeCategories serializes categories into the fixed-record layout.
func EncodeCategories(categories []model.Category) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, len(categories)*categoryRecordSize))
	for _, c := range categories {
		var rec categoryRecord
		rec.ID = c.ID
		putFixedString(rec.Name[:], c.Name)
		if err := binary.Write(buf, binary.LittleEndian, rec); err != nil {
			return nil, fmt.Errorf("failed to encode category %d: %w", c.ID, err)
		}
	}
	return buf.Bytes(), nil
}

// DecodeCategories reads as many whole category records as data holds.
// A trailing partial record is silently discarded.
func DecodeCategories(data []byte) ([]model.Category, error) {
	count := len(data) / categoryRecordSize
	out := make([]model.Category, 0, count)
	r := bytes.NewReader(data[:count*categoryRecordSize])
	for i := 0; i < count; i++ {
		var rec categoryRecord
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("failed to decode category record %d: %w", i, err)
		}
		out = append(out, model.Category{
			ID:   rec.ID,
			Name: fixedString(rec.Name[:]),
		})
	}
	return out, nil
}

// EncodeTransactions serializes transactions into the fixed-record layout.
func EncodeTransactions(transactions []model.Transaction) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, len(transactions)*transactionRecordSize))
	for _, t := range transactions {
		var rec transactionRecord
		rec.ID = t.ID
		putFixedString(rec.Date[:], t.Date)
		units, exp, err := putAmount(t.Amount)
		if err != nil {
			return nil, fmt.Errorf("failed to encode transaction %d: %w", t.ID, err)
		}
		rec.AmountUnits, rec.AmountExp = units, exp
		rec.CategoryID = t.CategoryID
		rec.Type = int32(t.Type)
		putFixedString(rec.Note[:], t.Note)
		if err := binary.Write(buf, binary.LittleEndian, rec); err != nil {
			return nil, fmt.Errorf("failed to encode transaction %d: %w", t.ID, err)
		}
	}
	return buf.Bytes(), nil
}

// DecodeTransactions reads as many whole transaction records as data holds.
func DecodeTransactions(data []byte) ([]model.Transaction, error) {
	count := len(data) / transactionRecordSize
	out := make([]model.Transaction, 0, count)
	r := bytes.NewReader(data[:count*transactionRecordSize])
	for i := 0; i < count; i++ {
		var rec transactionRecord
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("failed to decode transaction record %d: %w", i, err)
		}
		out = append(out, model.Transaction{
			ID:         rec.ID,
			Date:       fixedString(rec.Date[:]),
			Amount:     amount(rec.AmountUnits, rec.AmountExp),
			CategoryID: rec.CategoryID,
			Type:       model.TxnType(rec.Type),
			Note:       fixedString(rec.Note[:]),
		})
	}
	return out, nil
}

// EncodeBudgets serializes budget entries into the fixed-record layout.
func EncodeBudgets(budgets []model.BudgetEntry) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, len(budgets)*budgetRecordSize))
	for _, b := range budgets {
		rec := budgetRecord{
			CategoryID: b.CategoryID,
			Year:       b.Year,
			Month:      b.Month,
		}
		units, exp, err := putAmount(b.Amount)
		if err != nil {
			return nil, fmt.Errorf("failed to encode budget for category %d: %w", b.CategoryID, err)
		}
		rec.AmountUnits, rec.AmountExp = units, exp
		if err := binary.Write(buf, binary.LittleEndian, rec); err != nil {
			return nil, fmt.Errorf("failed to encode budget for category %d: %w", b.CategoryID, err)
		}
	}
	return buf.Bytes(), nil
}

// DecodeBudgets reads as many whole budget records as data holds.
func DecodeBudgets(data []byte) ([]model.BudgetEntry, error) {
	count := len(data) / budgetRecordSize
	out := make([]model.BudgetEntry, 0, count)
	r := bytes.NewReader(data[:count*budgetRecordSize])
	for i := 0; i < count; i++ {
		var rec budgetRecord
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("failed to decode budget record %d: %w", i, err)
		}
		out = append(out, model.BudgetEntry{
			CategoryID: rec.CategoryID,
			Year:       rec.Year,
			Month:      rec.Month,
			Amount:     amount(rec.AmountUnits, rec.AmountExp),
		})
	}
	return out, nil
}
