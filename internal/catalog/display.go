package catalog

import (
	"strconv"
	"strings"
	"unicode"

	"storefront/internal/model"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	defaultRating       = "5.00"
	soldSuffix          = " Terjual"
	defaultSaleProgress = 78
)

var (
	ratingScale = decimal.NewFromInt(100)
	idPrinter   = message.NewPrinter(language.Indonesian)
)

// FormatRating renders a rating stored as an integer scaled by 100.
func FormatRating(raw string) string {
	r, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return defaultRating
	}
	return r.Div(ratingScale).StringFixed(2)
}

// FormatSold keeps only the digits of the sold counter and renders them with
// Indonesian thousands grouping.
func FormatSold(raw string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, raw)

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return "0" + soldSuffix
	}
	return idPrinter.Sprintf("%d", n) + soldSuffix
}

// Images returns the primary image followed by the additional images.
func Images(p model.Product) []string {
	imgs := []string{p.ImageLink}
	for _, link := range strings.Split(p.AdditionalImageLink, ",") {
		if link = strings.TrimSpace(link); link != "" {
			imgs = append(imgs, link)
		}
	}
	return imgs
}

// FlashSaleProgress returns the sold-through percentage shown on a flash sale
// card, clamped to [0, 100].
func FlashSaleProgress(p model.Product) int {
	raw := strings.ReplaceAll(p.QuantityToSell, "%", "")
	if p.QuantityToSell == "" {
		return defaultSaleProgress
	}

	v, ok := leadingInt(raw)
	if !ok {
		return 0
	}
	return min(max(v, 0), 100)
}

// leadingInt parses the integer prefix of s, ignoring leading spaces.
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t")
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return v, true
}
