package model

import (
	"fmt"
	"slices"
	"strings"
)

const addressFieldCount = 6

// Provinces lists the provinces offered by the address form.
var Provinces = []string{
	"Aceh", "Sumatera Utara", "Sumatera Barat", "Riau", "Kepulauan Riau", "Jambi", "Bengkulu",
	"Sumatera Selatan", "Kepulauan Bangka Belitung", "Lampung", "Banten", "Jawa Barat",
	"DKI Jakarta", "Jawa Tengah", "DI Yogyakarta", "Jawa Timur", "Bali", "Nusa Tenggara Barat",
	"Nusa Tenggara Timur", "Kalimantan Barat", "Kalimantan Tengah", "Kalimantan Selatan",
	"Kalimantan Timur", "Kalimantan Utara", "Sulawesi Utara", "Gorontalo", "Sulawesi Tengah",
	"Sulawesi Barat", "Sulawesi Selatan", "Sulawesi Tenggara", "Maluku", "Maluku Utara",
	"Papua Barat", "Papua",
}

// ShippingAddress is the typed form of the comma-joined address field.
type ShippingAddress struct {
	Province    string `json:"provinsi"`
	City        string `json:"kabupaten"`
	District    string `json:"kecamatan"`
	Subdistrict string `json:"kelurahan"`
	Postcode    string `json:"kodepos"`
	Street      string `json:"jalan"`
}

// ParseShippingAddress decodes the stored address field. It only succeeds
// when the value holds exactly six non-empty comma-separated fields.
func ParseShippingAddress(s string) (ShippingAddress, bool) {
	if s == "" {
		return ShippingAddress{}, false
	}
	parts := strings.Split(s, ",")
	if len(parts) != addressFieldCount {
		return ShippingAddress{}, false
	}
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			return ShippingAddress{}, false
		}
	}
	return ShippingAddress{
		Province:    parts[0],
		City:        parts[1],
		District:    parts[2],
		Subdistrict: parts[3],
		Postcode:    parts[4],
		Street:      parts[5],
	}, true
}

func (a ShippingAddress) fields() []string {
	return []string{a.Province, a.City, a.District, a.Subdistrict, a.Postcode, a.Street}
}

// Validate checks that the address can round-trip through the stored form
// and names a known province.
func (a ShippingAddress) Validate() error {
	names := []string{"province", "city", "district", "subdistrict", "postcode", "street"}
	for i, f := range a.fields() {
		if strings.TrimSpace(f) == "" {
			return NewDomainError(ErrCodeInvalidAddress, fmt.Sprintf("Shipping address %s is required", names[i]))
		}
		if strings.Contains(f, ",") {
			return NewDomainError(ErrCodeInvalidAddress, fmt.Sprintf("Shipping address %s must not contain commas", names[i]))
		}
	}
	if !slices.Contains(Provinces, a.Province) {
		return NewDomainError(ErrCodeInvalidAddress, fmt.Sprintf("Unknown province %q", a.Province))
	}
	return nil
}

// String returns the stored, comma-joined form.
func (a ShippingAddress) String() string {
	return strings.Join(a.fields(), ",")
}

// Display renders the address the way the checkout screen shows it.
func (a ShippingAddress) Display() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s (%s)",
		a.Street, a.Subdistrict, a.District, a.City, a.Province, a.Postcode)
}
