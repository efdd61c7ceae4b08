package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShippingMethods(t *testing.T) {
	methods := ShippingMethods()
	require.Len(t, methods, 13)
	assert.Equal(t, "JNE REG", methods[0].Method)

	// Callers get a copy
	methods[0].Fee = 1
	opt, ok := LookupShipping("JNE REG")
	require.True(t, ok)
	assert.Equal(t, int64(30000), opt.Fee)
}

func TestCarriers(t *testing.T) {
	assert.Equal(t, []string{
		"JNE", "J&T", "POS", "SiCepat", "TIKI", "Grab", "Gojek", "AnterAja",
	}, Carriers())
}

func TestMethodsFor(t *testing.T) {
	sicepat := MethodsFor("SiCepat")
	require.Len(t, sicepat, 2)
	assert.Equal(t, "SiCepat REG", sicepat[0].Method)
	assert.Equal(t, int64(44000), sicepat[1].Fee)

	assert.Empty(t, MethodsFor("DHL"))
}

func TestLookupShipping(t *testing.T) {
	tests := []struct {
		method   string
		fee      int64
		estimate string
		found    bool
	}{
		{"J&T REG", 24000, "2-3 hari", true},
		{"POS Indonesia REG", 20000, "3-5 hari", true},
		{"GrabExpress", 36000, "1 hari", true},
		{"TIKI REG", 30000, "2-4 hari", true},
		{"Unknown", 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			opt, ok := LookupShipping(tt.method)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.fee, opt.Fee)
			assert.Equal(t, tt.estimate, opt.Estimate)
		})
	}
}

func TestShippingOption_Available(t *testing.T) {
	reg, _ := LookupShipping("JNE REG")
	yes, _ := LookupShipping("JNE YES")
	grab, _ := LookupShipping("GrabExpress")

	assert.True(t, reg.Available())
	assert.False(t, yes.Available())
	assert.False(t, grab.Available())
}
