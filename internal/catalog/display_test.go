package catalog

import (
	"testing"

	"storefront/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestFormatRating(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"450", "4.50"},
		{"500", "5.00"},
		{"487", "4.87"},
		{" 399 ", "3.99"},
		{"", "5.00"},
		{"n/a", "5.00"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatRating(tt.raw))
		})
	}
}

func TestFormatSold(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"1200", "1.200 Terjual"},
		{"1.250.000", "1.250.000 Terjual"},
		{"85 sold", "85 Terjual"},
		{"", "0 Terjual"},
		{"banyak", "0 Terjual"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatSold(tt.raw))
		})
	}
}

func TestImages(t *testing.T) {
	p := model.Product{
		ImageLink:           "https://img/1.jpg",
		AdditionalImageLink: " https://img/2.jpg, ,https://img/3.jpg ",
	}
	assert.Equal(t, []string{"https://img/1.jpg", "https://img/2.jpg", "https://img/3.jpg"}, Images(p))

	assert.Equal(t, []string{"https://img/1.jpg"}, Images(model.Product{ImageLink: "https://img/1.jpg"}))
}

func TestFlashSaleProgress(t *testing.T) {
	tests := []struct {
		raw      string
		expected int
	}{
		{"", 78},
		{"45%", 45},
		{"150", 100},
		{"-5", 0},
		{"abc", 0},
		{"60% sold", 60},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, FlashSaleProgress(model.Product{QuantityToSell: tt.raw}))
		})
	}
}
