package tracker

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// This file handles the persistence of property records. The format is
// JSONL, one property per line, human-readable and git-friendly: the main
// goal is that the records can live on a private repo and merge cleanly.

// DecodeProperties reads property records from a stream of JSONL data.
// Empty lines are skipped; any malformed line aborts with its content in
// the error.
func DecodeProperties(r io.Reader) ([]PropertyFacts, error) {
	var properties []PropertyFacts
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var p PropertyFacts
		if err := json.Unmarshal(line, &p); err != nil {
			return nil, fmt.Errorf("format error on line %d %q: %w", i, string(line), err)
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("invalid property on line %d: %w", i, err)
		}
		properties = append(properties, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading properties: %w", err)
	}
	return properties, nil
}

// EncodeProperty writes a single property record as one canonical JSON line.
// Field order is stable and empty optional fields are omitted, so that
// re-encoding a file yields a minimal diff.
func EncodeProperty(w io.Writer, p PropertyFacts) error {
	// Records entering the file receive a stable identity.
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	var jw jsonObjectWriter
	jw.Append("id", p.ID)
	jw.Append("name", p.Name)
	jw.Optional("country", p.Country)
	jw.Optional("currency", p.Currency)
	jw.Append("type", p.Type)
	jw.Append("purchasePrice", p.PurchasePrice)
	jw.Append("currentValue", p.CurrentValue)
	jw.Optional("purchaseDate", p.PurchaseDate)
	jw.Optional("downPayment", p.DownPayment)
	jw.Optional("loanAmount", p.LoanAmount)
	jw.Optional("outstandingBalance", p.OutstandingBalance)
	jw.Optional("interestRate", p.InterestRate)
	jw.Optional("termMonths", p.TermMonths)
	jw.Optional("monthlyMortgage", p.MonthlyMortgage)
	jw.Optional("monthsElapsed", p.MonthsElapsed)
	jw.Optional("monthlyRent", p.MonthlyRent)
	jw.Optional("potentialRent", p.PotentialRent)
	jw.Optional("monthlyExpenses", p.MonthlyExpenses)
	if p.Expenses != nil {
		jw.Append("expenses", p.Expenses)
	}
	jw.Optional("appreciationOverride", p.AppreciationOverride)
	jw.Optional("costBasis", p.CostBasis)
	jw.Optional("annualPropertyTaxes", p.AnnualPropertyTaxes)
	jw.Optional("taxBenefitOverride", p.TaxBenefitOverride)

	data, err := jw.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode property %q: %w", p.Name, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write property %q: %w", p.Name, err)
	}
	return nil
}

// EncodeProperties persists all property records to an io.Writer in JSONL
// format, in the given order.
func EncodeProperties(w io.Writer, properties []PropertyFacts) error {
	for _, p := range properties {
		if err := EncodeProperty(w, p); err != nil {
			return err
		}
	}
	return nil
}
