package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/ledger"
	"github.com/Veraticus/tally/internal/model"
)

func TestParseTxnType(t *testing.T) {
	tests := []struct {
		input    string
		expected model.TxnType
		wantErr  bool
	}{
		{input: "0", expected: model.TypeExpense},
		{input: "expense", expected: model.TypeExpense},
		{input: "EX", expected: model.TypeExpense},
		{input: "1", expected: model.TypeIncome},
		{input: "Income", expected: model.TypeIncome},
		{input: " in ", expected: model.TypeIncome},
		{input: "2", wantErr: true},
		{input: "spend", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseTxnType(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseAmount(t *testing.T) {
	d, err := parseAmount(" 42.50 ")
	require.NoError(t, err)
	assert.Equal(t, "42.5", d.String())

	_, err = parseAmount("forty")
	assert.Error(t, err)
}

func TestParseID(t *testing.T) {
	tests := []struct {
		input    string
		expected int32
		wantErr  bool
	}{
		{input: "1", expected: 1},
		{input: "42", expected: 42},
		{input: "0", wantErr: true},
		{input: "-3", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseID(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveCategory(t *testing.T) {
	l := ledger.New()
	food, err := l.AddCategory("Food")
	require.NoError(t, err)

	byID, err := resolveCategory(l, "1")
	require.NoError(t, err)
	assert.Equal(t, food, byID)

	byName, err := resolveCategory(l, "food")
	require.NoError(t, err)
	assert.Equal(t, food, byName)

	_, err = resolveCategory(l, "99")
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = resolveCategory(l, "Rent")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestValidMonth(t *testing.T) {
	assert.NoError(t, validMonth(1))
	assert.NoError(t, validMonth(12))
	assert.ErrorIs(t, validMonth(0), ledger.ErrInvalidMonth)
	assert.ErrorIs(t, validMonth(13), ledger.ErrInvalidMonth)
}
