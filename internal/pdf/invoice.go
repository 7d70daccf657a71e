// Package pdf renders stored invoices as printable GST tax invoices.
package pdf

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/ridwanfathin/gst-billing-service/internal/domain"
	"github.com/ridwanfathin/gst-billing-service/internal/gst"
	"github.com/ridwanfathin/gst-billing-service/internal/imageutil"
)

const dateLayout = "02 Jan 2006"

// InvoiceRenderer turns an invoice into PDF bytes
type InvoiceRenderer struct {
	pagePattern string
}

// NewInvoiceRenderer creates a renderer with page numbering in the footer
func NewInvoiceRenderer() *InvoiceRenderer {
	return &InvoiceRenderer{pagePattern: "Page {current} of {total}"}
}

// Render lays out the invoice header, the per-line tax table and the totals.
// Line amounts are recomputed with the same arithmetic used for the stored totals.
func (r *InvoiceRenderer) Render(ctx context.Context, invoice *domain.Invoice) ([]byte, error) {
	if invoice == nil {
		return nil, fmt.Errorf("render invoice: nil invoice")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: r.pagePattern,
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, "TAX INVOICE", props.Text{
			Size:  18,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)

	shop := invoice.ShopDetails
	shopLines := []string{shop.Address, "State: " + shop.State, "GSTIN: " + shop.GSTNumber}
	if shop.Phone != nil && *shop.Phone != "" {
		shopLines = append(shopLines, "Phone: "+*shop.Phone)
	}

	reverseCharge := "No"
	if invoice.ReverseCharge {
		reverseCharge = "Yes"
	}

	m.AddRow(30,
		stackedCol(7, shop.Name, shopLines),
		stackedCol(5, "Invoice No: "+invoice.InvoiceNumber, []string{
			"Date: " + invoice.CreatedAt.Format(dateLayout),
			"Reverse Charge: " + reverseCharge,
		}),
	)

	customer := invoice.CustomerDetails
	customerLines := []string{"Mobile: " + customer.Mobile}
	if customer.Address != "" {
		customerLines = append(customerLines, customer.Address)
	}
	if customer.State != "" {
		customerLines = append(customerLines, "State: "+customer.State)
	}
	m.AddRow(26, stackedCol(12, "Bill to: "+customer.Name, customerLines))

	m.AddRow(8,
		headerCol(3, "Product", align.Left),
		headerCol(1, "Qty", align.Right),
		headerCol(2, "Rate", align.Right),
		headerCol(1, "Disc %", align.Right),
		headerCol(2, "Taxable", align.Right),
		headerCol(1, "CGST", align.Right),
		headerCol(1, "SGST", align.Right),
		headerCol(1, "Total", align.Right),
	)
	m.AddRow(2, line.NewCol(12))

	for _, item := range invoice.Products {
		lt := gst.CalculateLine(item)
		m.AddRow(8,
			cellCol(3, item.Name, align.Left),
			cellCol(1, strconv.Itoa(item.Quantity), align.Right),
			cellCol(2, domain.Amount(item.UnitRate).String(), align.Right),
			cellCol(1, formatRate(item.DiscountPercentage), align.Right),
			cellCol(2, lt.TaxableValue.String(), align.Right),
			cellCol(1, lt.CGSTAmount.String()+" @"+formatRate(lt.CGSTRate)+"%", align.Right),
			cellCol(1, lt.SGSTAmount.String()+" @"+formatRate(lt.SGSTRate)+"%", align.Right),
			cellCol(1, lt.Total.String(), align.Right),
		)
	}
	m.AddRow(2, line.NewCol(12))

	totals := []struct {
		label string
		value string
	}{
		{"Taxable Value", invoice.TotalTaxableValue.String()},
		{"CGST", invoice.TotalCGST.String()},
		{"SGST", invoice.TotalSGST.String()},
		{"Total Tax", invoice.TotalTax.String()},
		{"Round Off", invoice.RoundOff.String()},
	}
	for _, t := range totals {
		m.AddRow(6,
			col.New(8),
			cellCol(2, t.label, align.Left),
			cellCol(2, t.value, align.Right),
		)
	}
	m.AddRow(8,
		col.New(8),
		headerCol(2, "Grand Total", align.Left),
		headerCol(2, "Rs. "+strconv.FormatInt(invoice.FinalAmount, 10)+".00", align.Right),
	)

	m.AddRow(12,
		text.NewCol(12, "Amount in words: "+invoice.AmountInWords, props.Text{
			Size:  10,
			Style: fontstyle.BoldItalic,
			Top:   4,
		}),
	)

	if qr, ok := decodeQRCode(invoice.QRCodeBase64); ok {
		m.AddRow(40,
			col.New(9),
			image.NewFromBytesCol(3, qr, extension.Png, props.Rect{Center: true, Percent: 90}),
		)
	}

	m.AddRow(20,
		col.New(6),
		col.New(6).Add(
			text.New("For "+shop.Name, props.Text{Size: 9, Align: align.Right, Top: 2}),
			text.New("Authorised Signatory", props.Text{Size: 9, Align: align.Right, Top: 14}),
		),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate invoice pdf: %w", err)
	}

	return doc.GetBytes(), nil
}

func stackedCol(size int, title string, lines []string) core.Col {
	c := col.New(size).Add(text.New(title, props.Text{Style: fontstyle.Bold, Size: 11}))
	for i, l := range lines {
		c.Add(text.New(l, props.Text{Size: 9, Top: float64(5 + 4*i)}))
	}
	return c
}

func headerCol(size int, value string, a align.Type) core.Col {
	return text.NewCol(size, value, props.Text{Style: fontstyle.Bold, Size: 9, Align: a})
}

func cellCol(size int, value string, a align.Type) core.Col {
	return text.NewCol(size, value, props.Text{Size: 8, Align: a})
}

func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}

// decodeQRCode accepts raw base64 or a data URL holding a PNG or JPEG image
// and returns it as a PNG sized for the page
func decodeQRCode(encoded *string) ([]byte, bool) {
	if encoded == nil {
		return nil, false
	}

	raw := strings.TrimSpace(*encoded)
	if i := strings.Index(raw, ","); strings.HasPrefix(raw, "data:") && i >= 0 {
		raw = raw[i+1:]
	}
	if raw == "" {
		return nil, false
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, false
	}

	qr, err := imageutil.NormalizeQRCode(data, imageutil.DefaultQRDimension)
	if err != nil {
		return nil, false
	}
	return qr, true
}
