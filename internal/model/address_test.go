package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShippingAddress(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantOK bool
	}{
		{name: "Complete address", input: "Jawa Barat,Bandung,Coblong,Dago,40135,Jl. Dago 10", wantOK: true},
		{name: "Empty", input: "", wantOK: false},
		{name: "Registration default", input: "[]", wantOK: false},
		{name: "Five fields", input: "Jawa Barat,Bandung,Coblong,Dago,40135", wantOK: false},
		{name: "Seven fields", input: "a,b,c,d,e,f,g", wantOK: false},
		{name: "Blank field", input: "Jawa Barat,Bandung, ,Dago,40135,Jl. Dago 10", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParseShippingAddress(tt.input)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestShippingAddress_RoundTrip(t *testing.T) {
	addr := ShippingAddress{
		Province:    "DKI Jakarta",
		City:        "Jakarta Selatan",
		District:    "Kebayoran Baru",
		Subdistrict: "Senayan",
		Postcode:    "12190",
		Street:      "Jl. Asia Afrika 8",
	}
	require.NoError(t, addr.Validate())

	parsed, ok := ParseShippingAddress(addr.String())
	require.True(t, ok)
	assert.Equal(t, addr, parsed)
	assert.Equal(t, "Jl. Asia Afrika 8, Senayan, Kebayoran Baru, Jakarta Selatan, DKI Jakarta (12190)", parsed.Display())
}

func TestShippingAddress_Validate(t *testing.T) {
	addr := ShippingAddress{Province: "Bali", City: "Denpasar", District: "X", Subdistrict: "Y", Postcode: "80111", Street: "Jl. A, No. 1"}
	err := addr.Validate()
	require.Error(t, err)

	var domainErr *DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, ErrCodeInvalidAddress, domainErr.Code)

	addr.Street = ""
	assert.Error(t, addr.Validate())

	addr.Street = "Jl. A No. 1"
	assert.NoError(t, addr.Validate())

	addr.Province = "Atlantis"
	assert.Error(t, addr.Validate())
}

func TestUserAccount_HasAddress(t *testing.T) {
	var nilUser *UserAccount
	assert.False(t, nilUser.HasAddress())

	user := &UserAccount{ShippingAddresses: "a,b,c,d,e,f"}
	assert.True(t, user.HasAddress())
}

func TestProduct_Attributes(t *testing.T) {
	p := Product{Color: "Black", Size: "42mm", Connectivity: "GPS", BandColor: "Red", BandType: "Sport"}

	assert.Equal(t, "Black", p.Attribute(AttributeColor))
	assert.Equal(t, "Sport", p.Attribute(AttributeBandType))

	changed := p.WithAttribute(AttributeSize, "46mm")
	assert.Equal(t, "46mm", changed.Size)
	assert.Equal(t, "42mm", p.Size, "original must be untouched")

	a, ok := ParseAttribute("band_color")
	assert.True(t, ok)
	assert.Equal(t, AttributeBandColor, a)

	_, ok = ParseAttribute("weight")
	assert.False(t, ok)
}
