package invoiceiq

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/AstrowareConception/invoiceiq-sdk-go/internal/constants"
)

// taxGroup accumulates the taxable basis for one (rate, category) pair.
type taxGroup struct {
	rate            float64
	categoryCode    string
	exemptionReason string
	basis           decimal.Decimal
}

// ComputeTotals derives the monetary aggregates of the record from its lines:
// each line's TotalAmount (quantity times net or unit price, rounded to 2
// decimals), the TaxSummaries grouped by rate and category code, and the
// three document totals. Lines without a price keep a zero total. Existing
// line totals and summaries are overwritten.
func (m *TransformationMetadata) ComputeTotals() {
	m.Normalize()

	groups := make(map[string]*taxGroup)
	order := make([]string, 0, len(m.Lines))

	for i := range m.Lines {
		line := &m.Lines[i]

		total := lineTotal(line)
		line.TotalAmount = total.InexactFloat64()

		rate := 0.0
		if line.TaxRate != nil {
			rate = *line.TaxRate
		}

		key := decimal.NewFromFloat(rate).String() + "|" + line.TaxCategoryCode

		group, ok := groups[key]
		if !ok {
			group = &taxGroup{rate: rate, categoryCode: line.TaxCategoryCode}
			groups[key] = group
			order = append(order, key)
		}

		group.basis = group.basis.Add(total)

		if group.exemptionReason == "" {
			group.exemptionReason = line.TaxExemptionReason
		}
	}

	sort.Strings(order)

	summaries := make([]TaxSummary, 0, len(order))
	exclusive := decimal.Zero
	taxTotal := decimal.Zero

	for _, key := range order {
		group := groups[key]

		basis := roundAmount(group.basis)
		tax := taxOnBasis(basis, group.rate)

		exclusive = exclusive.Add(basis)
		taxTotal = taxTotal.Add(tax)

		summaries = append(summaries, TaxSummary{
			TaxRate:            floatPtr(group.rate),
			BasisAmount:        floatPtr(basis.InexactFloat64()),
			TaxableAmount:      floatPtr(basis.InexactFloat64()),
			TaxAmount:          floatPtr(tax.InexactFloat64()),
			TaxCategoryCode:    group.categoryCode,
			TaxExemptionReason: group.exemptionReason,
		})
	}

	m.TaxSummaries = summaries
	m.TotalTaxExclusiveAmount = roundAmount(exclusive).InexactFloat64()
	m.TaxTotalAmount = roundAmount(taxTotal).InexactFloat64()
	m.TotalTaxInclusiveAmount = roundAmount(exclusive.Add(taxTotal)).InexactFloat64()
}

// lineTotal computes quantity times price for one line. NetPrice wins over
// UnitPrice when both are set.
func lineTotal(line *InvoiceLine) decimal.Decimal {
	price := decimal.Zero

	switch {
	case line.NetPrice != nil:
		price = decimal.NewFromFloat(*line.NetPrice)
	case line.UnitPrice != nil:
		price = decimal.NewFromFloat(*line.UnitPrice)
	}

	return roundAmount(decimal.NewFromFloat(line.Quantity).Mul(price))
}

// taxOnBasis computes the tax amount for a basis at a percentage rate.
func taxOnBasis(basis decimal.Decimal, ratePercent float64) decimal.Decimal {
	if ratePercent == 0 {
		return decimal.Zero
	}

	rate := decimal.NewFromFloat(ratePercent)
	divisor := decimal.NewFromInt(constants.PercentDivisor)

	return roundAmount(basis.Mul(rate).Div(divisor))
}

// roundAmount rounds a monetary amount to the currency scale.
func roundAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(constants.CurrencyScale)
}

func floatPtr(v float64) *float64 {
	return &v
}
