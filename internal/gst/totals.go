// Package gst holds the tax arithmetic for GST invoices: aggregate totals with
// the CGST/SGST split and the rendering of rupee amounts in words.
//
// Both computations are pure and safe for concurrent use.
package gst

import (
	"github.com/shopspring/decimal"

	"github.com/ridwanfathin/gst-billing-service/internal/domain"
)

var (
	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)
)

// LineTotals is the per-line tax breakdown printed on the invoice
type LineTotals struct {
	Gross          domain.Amount
	DiscountAmount domain.Amount
	TaxableValue   domain.Amount
	CGSTRate       float64
	CGSTAmount     domain.Amount
	SGSTRate       float64
	SGSTAmount     domain.Amount
	Total          domain.Amount
}

type lineAmounts struct {
	gross, discount, taxable, cgstRate, cgst, sgstRate, sgst decimal.Decimal
}

func computeLine(item domain.LineItem) lineAmounts {
	gross := decimal.NewFromInt(int64(item.Quantity)).Mul(decimal.NewFromFloat(item.UnitRate))
	discount := gross.Mul(decimal.NewFromFloat(item.DiscountPercentage)).Div(hundred)
	taxable := gross.Sub(discount)

	cgstRate := decimal.NewFromFloat(item.GSTRate).Div(two)
	sgstRate := decimal.NewFromFloat(item.GSTRate).Div(two)

	return lineAmounts{
		gross:    gross,
		discount: discount,
		taxable:  taxable,
		cgstRate: cgstRate,
		cgst:     taxable.Mul(cgstRate).Div(hundred),
		sgstRate: sgstRate,
		sgst:     taxable.Mul(sgstRate).Div(hundred),
	}
}

// CalculateLine returns the display breakdown of a single line item
func CalculateLine(item domain.LineItem) LineTotals {
	l := computeLine(item)
	return LineTotals{
		Gross:          toAmount(l.gross),
		DiscountAmount: toAmount(l.discount),
		TaxableValue:   toAmount(l.taxable),
		CGSTRate:       l.cgstRate.InexactFloat64(),
		CGSTAmount:     toAmount(l.cgst),
		SGSTRate:       l.sgstRate.InexactFloat64(),
		SGSTAmount:     toAmount(l.sgst),
		Total:          toAmount(l.taxable.Add(l.cgst).Add(l.sgst)),
	}
}

// CalculateTotals reduces the line items of an invoice into its aggregate totals.
//
// Line amounts are accumulated at full precision and only the results are
// rounded. Rounding is half to even: the gross total is rounded to a whole
// rupee (2242.5 -> 2242, 2243.5 -> 2244) and the remaining fields to paise.
// Inputs are not validated; a discount above 100% yields a negative taxable value.
func CalculateTotals(items []domain.LineItem) domain.InvoiceTotals {
	taxable := decimal.Zero
	cgst := decimal.Zero
	sgst := decimal.Zero

	for _, item := range items {
		l := computeLine(item)
		taxable = taxable.Add(l.taxable)
		cgst = cgst.Add(l.cgst)
		sgst = sgst.Add(l.sgst)
	}

	grossTotal := taxable.Add(cgst).Add(sgst)
	finalAmount := grossTotal.RoundBank(0)
	roundOff := finalAmount.Sub(grossTotal)

	// total_tax is the sum of the printed halves so the invoice always adds up
	roundedCGST := cgst.RoundBank(2)
	roundedSGST := sgst.RoundBank(2)

	return domain.InvoiceTotals{
		TotalTaxableValue: toAmount(taxable),
		TotalCGST:         toAmount(roundedCGST),
		TotalSGST:         toAmount(roundedSGST),
		TotalTax:          toAmount(roundedCGST.Add(roundedSGST)),
		RoundOff:          toAmount(roundOff),
		FinalAmount:       finalAmount.IntPart(),
	}
}

func toAmount(d decimal.Decimal) domain.Amount {
	return domain.Amount(d.RoundBank(2).InexactFloat64())
}
