package domain

import "strings"

// PickingModel is the record model every label attachment is linked to.
const PickingModel = "stock.picking"

// Partner holds the address and contact fields of a company or customer.
type Partner struct {
	Name        string `yaml:"name"         json:"name"`
	Street      string `yaml:"street"       json:"street,omitempty"`
	Street2     string `yaml:"street2"      json:"street2,omitempty"`
	City        string `yaml:"city"         json:"city,omitempty"`
	StateCode   string `yaml:"state_code"   json:"state_code,omitempty"`
	Zip         string `yaml:"zip"          json:"zip,omitempty"`
	CountryCode string `yaml:"country_code" json:"country_code,omitempty"`
	CountryName string `yaml:"country_name" json:"country_name,omitempty"`
	Phone       string `yaml:"phone"        json:"phone,omitempty"`
	Email       string `yaml:"email"        json:"email,omitempty"`
}

// ContactAddress formats the partner's postal address on multiple lines:
// street, street2, "city state zip", country. Empty lines are dropped.
func (p Partner) ContactAddress() string {
	cityLine := strings.Join(nonEmpty(p.City, p.StateCode, p.Zip), " ")
	return strings.Join(nonEmpty(p.Street, p.Street2, cityLine, p.CountryName), "\n")
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Move is one product line of a picking.
type Move struct {
	ProductName string  `yaml:"product_name" json:"product_name"`
	Weight      float64 `yaml:"weight"       json:"weight"`
	ListPrice   float64 `yaml:"list_price"   json:"list_price"`
	Quantity    float64 `yaml:"quantity"     json:"quantity"`
	Description string  `yaml:"description"  json:"description"`
	// PackageLevelID is set when the move is shipped inside a package level.
	PackageLevelID int64 `yaml:"package_level_id" json:"package_level_id,omitempty"`
}

// InPackage reports whether the move belongs to a package level.
func (m Move) InPackage() bool { return m.PackageLevelID != 0 }

// Picking is an outbound shipment as read from the host platform.
type Picking struct {
	ID      int64    `yaml:"id"      json:"id"`
	Name    string   `yaml:"name"    json:"name"`
	Carrier *Carrier `yaml:"carrier" json:"carrier,omitempty"`
	Partner Partner  `yaml:"partner" json:"partner"`
	Moves   []Move   `yaml:"moves"   json:"moves"`
}

// MovesWithoutPackage returns the moves not shipped inside a package level.
func (p Picking) MovesWithoutPackage() []Move {
	out := make([]Move, 0, len(p.Moves))
	for _, m := range p.Moves {
		if !m.InPackage() {
			out = append(out, m)
		}
	}
	return out
}
