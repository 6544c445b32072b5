// Package ofx parses OFX/QFX bank statements into ledger entry drafts.
package ofx

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"

	"github.com/Veraticus/tally/internal/model"
)

// Entry is one statement transaction ready to be added to the ledger. The
// sign of the statement amount decides the type: debits become expenses,
// credits become income. Which category it lands in is the importer's call.
type Entry struct {
	Date   string // "YYYY-MM-DD"
	Note   string
	Amount decimal.Decimal // absolute value
	Type   model.TxnType
}

// Parser implements OFX/QFX file parsing.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

// preprocessOFX fixes common formatting issues in OFX files.
func (p *Parser) preprocessOFX(content string) string {
	// Trim any leading whitespace or blank lines before the header
	content = strings.TrimLeft(content, " \t\r\n")

	// Fix mixed-case SEVERITY values (should be INFO, WARN, or ERROR)
	severityRegex := regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	content = severityRegex.ReplaceAllStringFunc(content, func(match string) string {
		return strings.ToUpper(match)
	})

	// Fix missing closing angle brackets in SGML-style OFX files
	tagFixRegex := regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
	content = tagFixRegex.ReplaceAllString(content, "$1>")

	return content
}

// ParseFile parses an OFX/QFX file and returns ledger entry drafts from
// every bank and credit card statement it contains.
func (p *Parser) ParseFile(reader io.Reader) ([]Entry, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	processedContent := p.preprocessOFX(string(content))

	resp, err := ofxgo.ParseResponse(strings.NewReader(processedContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var entries []Entry
	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok && stmt.BankTranList != nil {
			for _, ofxTx := range stmt.BankTranList.Transactions {
				entries = append(entries, p.convertTransaction(ofxTx))
			}
		}
	}
	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok && stmt.BankTranList != nil {
			for _, ofxTx := range stmt.BankTranList.Transactions {
				entries = append(entries, p.convertTransaction(ofxTx))
			}
		}
	}

	return entries, nil
}

// convertTransaction maps one OFX transaction to an entry draft.
func (p *Parser) convertTransaction(ofxTx ofxgo.Transaction) Entry {
	// OFX uses negative amounts for debits. Statement amounts are currency
	// values, so two decimal places captures them exactly.
	amount := decimal.NewFromBigRat(&ofxTx.TrnAmt.Rat, 2)

	typ := model.TypeIncome
	if amount.IsNegative() {
		typ = model.TypeExpense
		amount = amount.Neg()
	}

	return Entry{
		Date:   ofxTx.DtPosted.Time.Format(model.DateFormat),
		Amount: amount,
		Type:   typ,
		Note:   p.describe(ofxTx),
	}
}

// describe builds the transaction note from the statement fields, preferring
// the payee name and falling back to NAME, with the memo appended when it
// adds anything.
func (p *Parser) describe(tx ofxgo.Transaction) string {
	name := string(tx.Name)
	if tx.Payee != nil && tx.Payee.Name != "" {
		name = string(tx.Payee.Name)
	}
	name = strings.TrimSpace(name)

	memo := strings.TrimSpace(string(tx.Memo))
	if memo != "" && !strings.EqualFold(memo, name) {
		if name == "" {
			return memo
		}
		return name + " " + memo
	}
	return name
}
