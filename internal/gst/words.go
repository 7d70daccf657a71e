package gst

import (
	"fmt"
	"math"
	"strings"
)

// AmountConversionFallback is returned by AmountInWords when the amount cannot be rendered
const AmountConversionFallback = "Amount calculation error"

const (
	rupeesSuffix = "Rupees Only"
	lakh         = 100000
	thousand     = 1000

	// the lakh segment goes through the hundreds converter, which names at most 999
	maxRenderable = 1000*lakh - 1
)

var (
	onesWords  = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}
	teensWords = []string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
		"Sixteen", "Seventeen", "Eighteen", "Nineteen"}
	tensWords = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
)

// ConversionError reports an amount that cannot be rendered in words
type ConversionError struct {
	Value  float64
	Reason string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %v to words: %s", e.Value, e.Reason)
}

// ToWords renders a rupee amount in English words on the Indian scale,
// e.g. 123456 -> "One Lakh Twenty Three Thousand Four Hundred Fifty Six Rupees Only".
// Fractional amounts are truncated toward zero before conversion.
func ToWords(amount float64) (string, error) {
	switch {
	case math.IsNaN(amount) || math.IsInf(amount, 0):
		return "", &ConversionError{Value: amount, Reason: "not a finite number"}
	case math.Trunc(amount) < 0:
		return "", &ConversionError{Value: amount, Reason: "negative amount"}
	case math.Trunc(amount) > maxRenderable:
		return "", &ConversionError{Value: amount, Reason: "exceeds 999 lakh"}
	}

	return integerToWords(int64(amount)), nil
}

// AmountInWords is ToWords for a whole-rupee amount that never fails:
// an amount that cannot be rendered yields AmountConversionFallback.
func AmountInWords(amount int64) string {
	words, err := ToWords(float64(amount))
	if err != nil {
		return AmountConversionFallback
	}
	return words
}

func integerToWords(n int64) string {
	if n == 0 {
		return "Zero " + rupeesSuffix
	}

	var parts []string

	if n >= lakh {
		parts = append(parts, convertHundreds(n/lakh), "Lakh")
		n %= lakh
	}
	if n >= thousand {
		parts = append(parts, convertHundreds(n/thousand), "Thousand")
		n %= thousand
	}
	if n > 0 {
		parts = append(parts, convertHundreds(n))
	}

	parts = append(parts, rupeesSuffix)
	return strings.Join(parts, " ")
}

// convertHundreds names an integer in 0..999
func convertHundreds(n int64) string {
	var words []string

	if n >= 100 {
		words = append(words, onesWords[n/100], "Hundred")
		n %= 100
	}

	if n >= 20 {
		words = append(words, tensWords[n/10])
		n %= 10
	} else if n >= 10 {
		words = append(words, teensWords[n-10])
		n = 0
	}

	if n > 0 {
		words = append(words, onesWords[n])
	}

	return strings.TrimSpace(strings.Join(words, " "))
}
