package checkout

// Bank is a virtual account destination.
type Bank struct {
	Name     string `json:"bank"`
	VANumber string `json:"vaNumber"`
}

var bankTable = []Bank{
	{Name: "BNI", VANumber: "8848066554909394"},
	{Name: "BRIVA", VANumber: "7878925554909394"},
	{Name: "Mandiri", VANumber: "8804925554909394"},
	{Name: "BCA", VANumber: "11717081350968308"},
	{Name: "CIMB Niaga", VANumber: "5919025554909394"},
	{Name: "Permata", VANumber: "8625025554909394"},
	{Name: "Danamon", VANumber: "7915025554909394"},
}

// Banks returns the supported banks in display order.
func Banks() []Bank {
	out := make([]Bank, len(bankTable))
	copy(out, bankTable)
	return out
}

// LookupBank finds a bank by name.
func LookupBank(name string) (Bank, bool) {
	for _, b := range bankTable {
		if b.Name == name {
			return b, true
		}
	}
	return Bank{}, false
}
