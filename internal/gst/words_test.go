package gst

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToWords(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "Zero Rupees Only"},
		{5, "Five Rupees Only"},
		{10, "Ten Rupees Only"},
		{19, "Nineteen Rupees Only"},
		{20, "Twenty Rupees Only"},
		{21, "Twenty One Rupees Only"},
		{100, "One Hundred Rupees Only"},
		{110, "One Hundred Ten Rupees Only"},
		{999, "Nine Hundred Ninety Nine Rupees Only"},
		{1000, "One Thousand Rupees Only"},
		{1001, "One Thousand One Rupees Only"},
		{2242, "Two Thousand Two Hundred Forty Two Rupees Only"},
		{8797, "Eight Thousand Seven Hundred Ninety Seven Rupees Only"},
		{12345, "Twelve Thousand Three Hundred Forty Five Rupees Only"},
		{99999, "Ninety Nine Thousand Nine Hundred Ninety Nine Rupees Only"},
		{100000, "One Lakh Rupees Only"},
		{100001, "One Lakh One Rupees Only"},
		{101000, "One Lakh One Thousand Rupees Only"},
		{123456, "One Lakh Twenty Three Thousand Four Hundred Fifty Six Rupees Only"},
		{9999999, "Ninety Nine Lakh Ninety Nine Thousand Nine Hundred Ninety Nine Rupees Only"},
		{99999999, "Nine Hundred Ninety Nine Lakh Ninety Nine Thousand Nine Hundred Ninety Nine Rupees Only"},
		{2242.99, "Two Thousand Two Hundred Forty Two Rupees Only"},
		{-0.5, "Zero Rupees Only"},
	}

	for _, tt := range tests {
		got, err := ToWords(tt.amount)
		require.NoError(t, err, "amount %v", tt.amount)
		assert.Equal(t, tt.want, got, "amount %v", tt.amount)
	}
}

func TestToWords_ConversionError(t *testing.T) {
	for _, amount := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1), 100000000, 1e18} {
		got, err := ToWords(amount)
		assert.Empty(t, got)

		var convErr *ConversionError
		require.True(t, errors.As(err, &convErr), "amount %v", amount)
		assert.NotEmpty(t, convErr.Reason)
	}
}

func TestAmountInWords(t *testing.T) {
	assert.Equal(t, "Two Thousand Two Hundred Forty Two Rupees Only", AmountInWords(2242))
	assert.Equal(t, "Zero Rupees Only", AmountInWords(0))
	assert.Equal(t, AmountConversionFallback, AmountInWords(-59))
	assert.Equal(t, AmountConversionFallback, AmountInWords(100000000))
}
