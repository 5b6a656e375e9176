package types

import "github.com/shopspring/decimal"

// QuoteRequest is the cargo and option snapshot a quotation is priced from.
// Range checks belong to the input layer; the engine trusts these values.
type QuoteRequest struct {
	// Length of the cargo in meters
	Length decimal.Decimal `json:"length" validate:"gte=0"`

	// Width of the cargo in meters
	Width decimal.Decimal `json:"width" validate:"gte=0"`

	// Height of the cargo in meters
	Height decimal.Decimal `json:"height" validate:"gte=0"`

	// Weight of the cargo in metric tons
	Weight decimal.Decimal `json:"weight" validate:"gte=0"`

	// Trailers is the number of trailers passing the gate
	Trailers int `json:"trailers" validate:"gte=1"`

	// Mafis is the number of mafi units, used by MAFI mode only
	Mafis int `json:"mafis" validate:"gte=1"`

	// Modes are the selected quotation modes, may be empty
	Modes []Mode `json:"modes" validate:"dive,oneof=MAFI BBK"`

	// TrailerType selects the gate rate
	TrailerType TrailerType `json:"trailer_type" validate:"required,oneof=mechanical hydraulic"`

	// IncludeCustomClearance adds the flat clearance fee
	IncludeCustomClearance bool `json:"include_custom_clearance"`

	// SecurityPersons is the BBK security headcount
	SecurityPersons int `json:"security_persons" validate:"gte=0"`

	// SecurityShifts is the number of 8 hour BBK security shifts
	SecurityShifts int `json:"security_shifts" validate:"gte=0"`
}

// HasMode reports whether m is among the selected modes
func (r *QuoteRequest) HasMode(m Mode) bool {
	for _, selected := range r.Modes {
		if selected == m {
			return true
		}
	}
	return false
}

// Volume returns length x width x height in cubic meters
func (r *QuoteRequest) Volume() decimal.Decimal {
	return r.Length.Mul(r.Width).Mul(r.Height)
}
