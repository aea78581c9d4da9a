package domain

// DeliveryType identifies how a carrier computes prices and ships parcels.
type DeliveryType string

const (
	DeliveryTypeFixed        DeliveryType = "fixed"
	DeliveryTypeBaseOnRule   DeliveryType = "base_on_rule"
	DeliveryTypeEasyDelivery DeliveryType = "easy_delivery"
)

// DeliveryTypeOption is one selectable entry of the delivery type list.
type DeliveryTypeOption struct {
	Value DeliveryType `json:"value"`
	Label string       `json:"label"`
}

var deliveryTypeOptions = []DeliveryTypeOption{
	{Value: DeliveryTypeFixed, Label: "Fixed Price"},
	{Value: DeliveryTypeBaseOnRule, Label: "Based on Rules"},
	{Value: DeliveryTypeEasyDelivery, Label: "Easy delivery"},
}

// DeliveryTypes returns the selectable delivery types, Easy Delivery included.
func DeliveryTypes() []DeliveryTypeOption {
	out := make([]DeliveryTypeOption, len(deliveryTypeOptions))
	copy(out, deliveryTypeOptions)
	return out
}

// IsValid reports whether t is one of the known delivery types.
func (t DeliveryType) IsValid() bool {
	for _, o := range deliveryTypeOptions {
		if o.Value == t {
			return true
		}
	}
	return false
}

// Carrier is a configured delivery method.
type Carrier struct {
	ID           int64        `yaml:"id"            json:"id"`
	Name         string       `yaml:"name"          json:"name"`
	DeliveryType DeliveryType `yaml:"delivery_type" json:"delivery_type"`
	FixedPrice   float64      `yaml:"fixed_price"   json:"fixed_price"`
}

// SupportsLabelFetch reports whether the Easy Delivery label action applies to c.
// A nil carrier never does.
func (c *Carrier) SupportsLabelFetch() bool {
	return c != nil && c.DeliveryType == DeliveryTypeEasyDelivery
}

// ReleaseEasyDelivery returns carriers with every Easy Delivery carrier turned
// into a free fixed-price carrier. It is applied when the option is withdrawn
// so that no carrier is left pointing at an unknown delivery type.
func ReleaseEasyDelivery(carriers []Carrier) []Carrier {
	out := make([]Carrier, len(carriers))
	for i, c := range carriers {
		if c.DeliveryType == DeliveryTypeEasyDelivery {
			c.DeliveryType = DeliveryTypeFixed
			c.FixedPrice = 0
		}
		out[i] = c
	}
	return out
}
