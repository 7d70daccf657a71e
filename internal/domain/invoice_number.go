package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// InvoiceNumberPrefix is the fixed textual prefix of every invoice number
const InvoiceNumberPrefix = "INV"

// FormatInvoiceNumber renders sequence n as an invoice number, e.g. 12 -> "INV12"
func FormatInvoiceNumber(n int64) string {
	return InvoiceNumberPrefix + strconv.FormatInt(n, 10)
}

// ParseInvoiceNumber strips the prefix and parses the remainder as a base-10 integer
func ParseInvoiceNumber(number string) (int64, error) {
	if !strings.HasPrefix(number, InvoiceNumberPrefix) {
		return 0, fmt.Errorf("%w: %q has no %s prefix", ErrInvalidInvoiceNumber, number, InvoiceNumberPrefix)
	}

	n, err := strconv.ParseInt(strings.TrimPrefix(number, InvoiceNumberPrefix), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidInvoiceNumber, number, err)
	}

	return n, nil
}

// NextInvoiceNumber returns the number following last.
// When no invoice has been stored yet (found is false) numbering starts at INV1.
func NextInvoiceNumber(last string, found bool) (string, error) {
	if !found {
		return FormatInvoiceNumber(1), nil
	}

	n, err := ParseInvoiceNumber(last)
	if err != nil {
		return "", err
	}

	return FormatInvoiceNumber(n + 1), nil
}
