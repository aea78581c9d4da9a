package domain

// PrintTypeZPL is the label format requested from the API.
const PrintTypeZPL = "zpl"

// defaultShipperPostalCode stands in for a company without a zip code.
const defaultShipperPostalCode = "-"

// ShipmentRequest is the order payload sent to the Easy Delivery API.
type ShipmentRequest struct {
	Shipper   Party    `json:"shipper"`
	Recipient Party    `json:"recipient"`
	Parcels   []Parcel `json:"parcels"`
	PrintType string   `json:"printtype"`
}

// Party is a shipper or recipient as the API expects it.
// PostalCode is nil when the recipient has no zip and is sent as null.
type Party struct {
	Name       string  `json:"name"`
	Street     string  `json:"street"`
	Country    string  `json:"country"`
	PostalCode *string `json:"postal_code"`
	City       string  `json:"city"`
	Tel        string  `json:"tel"`
	Email      string  `json:"email"`
}

// Parcel is one line of the order.
type Parcel struct {
	Weight           float64 `json:"weight"`
	ShipperReference string  `json:"shipper_reference"`
	Comment          string  `json:"comment"`
	Value            float64 `json:"value"`
}

// BuildShipmentRequest maps a picking and the shipping company into the API
// payload. Nothing is validated here; the API rejects malformed orders.
//
// The shipper postal code falls back to "-" while the recipient postal code is
// passed through as is, null included.
func BuildShipmentRequest(p Picking, company Partner) ShipmentRequest {
	shipper := partyFrom(company)
	if shipper.PostalCode == nil {
		zip := defaultShipperPostalCode
		shipper.PostalCode = &zip
	}

	var carrierName string
	if p.Carrier != nil {
		carrierName = p.Carrier.Name
	}

	moves := p.MovesWithoutPackage()
	parcels := make([]Parcel, 0, len(moves))
	for _, m := range moves {
		parcels = append(parcels, Parcel{
			Weight:           m.Weight,
			ShipperReference: carrierName,
			Comment:          m.Description,
			Value:            m.ListPrice * m.Quantity,
		})
	}

	return ShipmentRequest{
		Shipper:   shipper,
		Recipient: partyFrom(p.Partner),
		Parcels:   parcels,
		PrintType: PrintTypeZPL,
	}
}

func partyFrom(p Partner) Party {
	party := Party{
		Name:    p.Name,
		Street:  p.ContactAddress(),
		Country: p.CountryCode,
		City:    p.City,
		Tel:     p.Phone,
		Email:   p.Email,
	}
	if p.Zip != "" {
		zip := p.Zip
		party.PostalCode = &zip
	}
	return party
}
