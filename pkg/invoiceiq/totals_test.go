package invoiceiq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AstrowareConception/invoiceiq-sdk-go/pkg/invoiceiq"
)

func floatPtr(value float64) *float64 {
	return &value
}

func TestComputeTotalsSingleRate(t *testing.T) {
	t.Parallel()

	metadata := validMetadata()
	metadata.Lines = []invoiceiq.InvoiceLine{
		{Name: "Consulting", Quantity: 3, NetPrice: floatPtr(450), TaxRate: floatPtr(20)},
		{Name: "Training", Quantity: 1, NetPrice: floatPtr(1200), TaxRate: floatPtr(20)},
	}

	metadata.ComputeTotals()

	assert.InDelta(t, 1350, metadata.Lines[0].TotalAmount, 0.001)
	assert.InDelta(t, 1200, metadata.Lines[1].TotalAmount, 0.001)

	require.Len(t, metadata.TaxSummaries, 1)

	summary := metadata.TaxSummaries[0]
	require.NotNil(t, summary.TaxRate)
	assert.InDelta(t, 20, *summary.TaxRate, 0.001)
	require.NotNil(t, summary.BasisAmount)
	assert.InDelta(t, 2550, *summary.BasisAmount, 0.001)
	require.NotNil(t, summary.TaxableAmount)
	assert.InDelta(t, 2550, *summary.TaxableAmount, 0.001)
	require.NotNil(t, summary.TaxAmount)
	assert.InDelta(t, 510, *summary.TaxAmount, 0.001)
	assert.Equal(t, "S", summary.TaxCategoryCode)

	assert.InDelta(t, 2550, metadata.TotalTaxExclusiveAmount, 0.001)
	assert.InDelta(t, 510, metadata.TaxTotalAmount, 0.001)
	assert.InDelta(t, 3060, metadata.TotalTaxInclusiveAmount, 0.001)
}

func TestComputeTotalsGroupsByRate(t *testing.T) {
	t.Parallel()

	metadata := validMetadata()
	metadata.Lines = []invoiceiq.InvoiceLine{
		{Name: "Books", Quantity: 2, NetPrice: floatPtr(100), TaxRate: floatPtr(10)},
		{Name: "Hardware", Quantity: 1, NetPrice: floatPtr(50), TaxRate: floatPtr(20)},
		{Name: "More books", Quantity: 1, NetPrice: floatPtr(30), TaxRate: floatPtr(10)},
	}

	metadata.ComputeTotals()

	require.Len(t, metadata.TaxSummaries, 2)

	assert.InDelta(t, 10, *metadata.TaxSummaries[0].TaxRate, 0.001)
	assert.InDelta(t, 230, *metadata.TaxSummaries[0].BasisAmount, 0.001)
	assert.InDelta(t, 23, *metadata.TaxSummaries[0].TaxAmount, 0.001)

	assert.InDelta(t, 20, *metadata.TaxSummaries[1].TaxRate, 0.001)
	assert.InDelta(t, 50, *metadata.TaxSummaries[1].BasisAmount, 0.001)
	assert.InDelta(t, 10, *metadata.TaxSummaries[1].TaxAmount, 0.001)

	assert.InDelta(t, 280, metadata.TotalTaxExclusiveAmount, 0.001)
	assert.InDelta(t, 33, metadata.TaxTotalAmount, 0.001)
	assert.InDelta(t, 313, metadata.TotalTaxInclusiveAmount, 0.001)
}

func TestComputeTotalsZeroRatedLine(t *testing.T) {
	t.Parallel()

	metadata := validMetadata()
	metadata.Lines = []invoiceiq.InvoiceLine{
		{
			Name:               "Export delivery",
			Quantity:           1,
			NetPrice:           floatPtr(100),
			TaxCategoryCode:    "Z",
			TaxExemptionReason: "Export outside EU",
		},
	}

	metadata.ComputeTotals()

	require.Len(t, metadata.TaxSummaries, 1)

	summary := metadata.TaxSummaries[0]
	assert.InDelta(t, 0, *summary.TaxRate, 0.001)
	assert.InDelta(t, 0, *summary.TaxAmount, 0.001)
	assert.Equal(t, "Z", summary.TaxCategoryCode)
	assert.Equal(t, "Export outside EU", summary.TaxExemptionReason)

	assert.InDelta(t, 100, metadata.TotalTaxExclusiveAmount, 0.001)
	assert.InDelta(t, 0, metadata.TaxTotalAmount, 0.001)
	assert.InDelta(t, 100, metadata.TotalTaxInclusiveAmount, 0.001)
}

func TestComputeTotalsRounding(t *testing.T) {
	t.Parallel()

	metadata := validMetadata()
	metadata.Lines = []invoiceiq.InvoiceLine{
		{Name: "Fractional", Quantity: 7, UnitPrice: floatPtr(14.285), TaxRate: floatPtr(20)},
	}

	metadata.ComputeTotals()

	// 7 * 14.285 = 99.995, rounded half away from zero at 2 decimals
	assert.InDelta(t, 100.00, metadata.Lines[0].TotalAmount, 0.001)
	assert.InDelta(t, 20.00, *metadata.TaxSummaries[0].TaxAmount, 0.001)
	assert.InDelta(t, 120.00, metadata.TotalTaxInclusiveAmount, 0.001)
}

func TestComputeTotalsNetPriceWinsOverUnitPrice(t *testing.T) {
	t.Parallel()

	metadata := validMetadata()
	metadata.Lines = []invoiceiq.InvoiceLine{
		{Name: "Discounted", Quantity: 2, NetPrice: floatPtr(90), UnitPrice: floatPtr(100), TaxRate: floatPtr(20)},
	}

	metadata.ComputeTotals()

	assert.InDelta(t, 180, metadata.Lines[0].TotalAmount, 0.001)
	assert.InDelta(t, 180, metadata.TotalTaxExclusiveAmount, 0.001)
}

func TestComputeTotalsOverwritesStaleFigures(t *testing.T) {
	t.Parallel()

	metadata := validMetadata()
	metadata.Lines = []invoiceiq.InvoiceLine{
		{Name: "Unpriced", Quantity: 5, TotalAmount: 500},
	}
	metadata.TaxSummaries = []invoiceiq.TaxSummary{{TaxCategoryCode: "E"}}
	metadata.TotalTaxInclusiveAmount = 9999

	metadata.ComputeTotals()

	// A line without a price contributes zero, stale figures are replaced
	assert.InDelta(t, 0, metadata.Lines[0].TotalAmount, 0.001)
	require.Len(t, metadata.TaxSummaries, 1)
	assert.Equal(t, "S", metadata.TaxSummaries[0].TaxCategoryCode)
	assert.InDelta(t, 0, metadata.TotalTaxInclusiveAmount, 0.001)
}
