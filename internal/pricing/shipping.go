package pricing

// Same-day options are listed but cannot be selected.
const unavailableEstimate = "1 hari"

// ShippingOption is one row of the carrier table.
type ShippingOption struct {
	Carrier  string `json:"carrier"`
	Method   string `json:"method"`
	Fee      int64  `json:"fee"`
	Estimate string `json:"estimate"`
}

// Available reports whether the option can be chosen at checkout.
func (o ShippingOption) Available() bool {
	return o.Estimate != unavailableEstimate
}

var shippingTable = []ShippingOption{
	{Carrier: "JNE", Method: "JNE REG", Fee: 30000, Estimate: "2-3 hari"},
	{Carrier: "JNE", Method: "JNE YES", Fee: 50000, Estimate: "1 hari"},
	{Carrier: "J&T", Method: "J&T REG", Fee: 24000, Estimate: "2-3 hari"},
	{Carrier: "J&T", Method: "J&T YES", Fee: 44000, Estimate: "1 hari"},
	{Carrier: "POS", Method: "POS Indonesia REG", Fee: 20000, Estimate: "3-5 hari"},
	{Carrier: "SiCepat", Method: "SiCepat REG", Fee: 24000, Estimate: "2-3 hari"},
	{Carrier: "SiCepat", Method: "SiCepat BEST", Fee: 44000, Estimate: "1 hari"},
	{Carrier: "TIKI", Method: "TIKI REG", Fee: 30000, Estimate: "2-4 hari"},
	{Carrier: "TIKI", Method: "TIKI ONS", Fee: 50000, Estimate: "1 hari"},
	{Carrier: "Grab", Method: "GrabExpress", Fee: 36000, Estimate: "1 hari"},
	{Carrier: "Gojek", Method: "Gojek Instant", Fee: 40000, Estimate: "1 hari"},
	{Carrier: "AnterAja", Method: "AnterAja REG", Fee: 24000, Estimate: "2-3 hari"},
	{Carrier: "AnterAja", Method: "AnterAja YES", Fee: 44000, Estimate: "1 hari"},
}

// ShippingMethods returns every shipping option in display order.
func ShippingMethods() []ShippingOption {
	out := make([]ShippingOption, len(shippingTable))
	copy(out, shippingTable)
	return out
}

// Carriers returns the distinct carrier names in display order.
func Carriers() []string {
	var carriers []string
	seen := make(map[string]bool)
	for _, opt := range shippingTable {
		if !seen[opt.Carrier] {
			seen[opt.Carrier] = true
			carriers = append(carriers, opt.Carrier)
		}
	}
	return carriers
}

// MethodsFor returns the options offered by one carrier.
func MethodsFor(carrier string) []ShippingOption {
	var out []ShippingOption
	for _, opt := range shippingTable {
		if opt.Carrier == carrier {
			out = append(out, opt)
		}
	}
	return out
}

// LookupShipping finds an option by its method name.
func LookupShipping(method string) (ShippingOption, bool) {
	for _, opt := range shippingTable {
		if opt.Method == method {
			return opt, true
		}
	}
	return ShippingOption{}, false
}
