package model

// Product represents one sellable variant as published on the catalog sheet.
// Every field is kept as the raw string the sheet carries; numeric fields are
// parsed on demand by the pricing and catalog packages.
type Product struct {
	Title               string `json:"title"`
	Price               string `json:"price"`
	SalePrice           string `json:"sale_price"`
	ImageLink           string `json:"image_link"`
	AdditionalImageLink string `json:"additional_image_link,omitempty"`
	DiscountPercentage  string `json:"discount_percentage"`
	Rating              string `json:"rating"`
	Sold                string `json:"sold"`
	ItemGroupID         string `json:"item_group_id"`
	FlashSale           string `json:"flashsale"`
	EventTag            string `json:"event_tag,omitempty"`
	Category            string `json:"category,omitempty"`
	Description         string `json:"description,omitempty"`
	Color               string `json:"color,omitempty"`
	Size                string `json:"size,omitempty"`
	Connectivity        string `json:"connectivity,omitempty"`
	BandColor           string `json:"band_color,omitempty"`
	BandType            string `json:"band_type,omitempty"`
	QuantityToSell      string `json:"quantity_to_sell_on_facebook,omitempty"`
}

// Attribute names one of the variant dimensions of a product group.
type Attribute string

const (
	AttributeColor        Attribute = "color"
	AttributeSize         Attribute = "size"
	AttributeConnectivity Attribute = "connectivity"
	AttributeBandColor    Attribute = "band_color"
	AttributeBandType     Attribute = "band_type"
)

// Attributes lists the variant dimensions in display order.
var Attributes = []Attribute{
	AttributeColor,
	AttributeSize,
	AttributeConnectivity,
	AttributeBandColor,
	AttributeBandType,
}

// ParseAttribute validates an attribute name received from a client.
func ParseAttribute(name string) (Attribute, bool) {
	for _, a := range Attributes {
		if string(a) == name {
			return a, true
		}
	}
	return "", false
}

// Attribute returns the value of the given variant dimension.
func (p Product) Attribute(a Attribute) string {
	switch a {
	case AttributeColor:
		return p.Color
	case AttributeSize:
		return p.Size
	case AttributeConnectivity:
		return p.Connectivity
	case AttributeBandColor:
		return p.BandColor
	case AttributeBandType:
		return p.BandType
	}
	return ""
}

// WithAttribute returns a copy of p with one variant dimension overwritten.
func (p Product) WithAttribute(a Attribute, value string) Product {
	switch a {
	case AttributeColor:
		p.Color = value
	case AttributeSize:
		p.Size = value
	case AttributeConnectivity:
		p.Connectivity = value
	case AttributeBandColor:
		p.BandColor = value
	case AttributeBandType:
		p.BandType = value
	}
	return p
}
