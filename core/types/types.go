// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
package types

import (
	"fmt"
	"strings"
)

// Mode is a shipping quotation mode
type Mode string

const (
	// ModeMAFI prices roll-on/roll-off cargo per mafi unit and metric ton
	ModeMAFI Mode = "MAFI"

	// ModeBBK prices break-bulk cargo by volume
	ModeBBK Mode = "BBK"
)

// AllModes lists the modes in the order quotes are produced
var AllModes = []Mode{ModeMAFI, ModeBBK}

// String returns the string representation of the mode
func (m Mode) String() string {
	return string(m)
}

// Label returns the display label used on quotations
func (m Mode) Label() string {
	return string(m) + " MODE"
}

// IsValid checks if the mode is a known mode
func (m Mode) IsValid() bool {
	switch m {
	case ModeMAFI, ModeBBK:
		return true
	default:
		return false
	}
}

// ParseMode accepts "MAFI", "bbk" or the form label "MAFI MODE"
func ParseMode(s string) (Mode, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	name = strings.TrimSuffix(name, " MODE")
	m := Mode(strings.TrimSpace(name))
	if !m.IsValid() {
		return "", fmt.Errorf("unknown shipping mode %q", s)
	}
	return m, nil
}

// TrailerType selects the gate IN/OUT rate
type TrailerType string

const (
	// TrailerMechanical is a mechanical trailer (<50 MT & <12 m)
	TrailerMechanical TrailerType = "mechanical"

	// TrailerHydraulic is a hydraulic axle trailer (>50 MT & >14 m)
	TrailerHydraulic TrailerType = "hydraulic"
)

// String returns the string representation of the trailer type
func (t TrailerType) String() string {
	return string(t)
}

// Label returns the description shown on the gate charge line
func (t TrailerType) Label() string {
	if t == TrailerMechanical {
		return "Mechanical Trailer (<50 MT & <12 m)"
	}
	return "Hydraulic Axle Trailer (>50 MT & >14 m)"
}

// IsValid checks if the trailer type is known
func (t TrailerType) IsValid() bool {
	return t == TrailerMechanical || t == TrailerHydraulic
}

// ParseTrailerType accepts "mechanical", "hydraulic" or any label that
// starts with one of them.
func ParseTrailerType(s string) (TrailerType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(name, string(TrailerMechanical)):
		return TrailerMechanical, nil
	case strings.HasPrefix(name, string(TrailerHydraulic)):
		return TrailerHydraulic, nil
	}
	return "", fmt.Errorf("unknown trailer type %q", s)
}

// Currency represents a currency code
type Currency string

const (
	CurrencyINR Currency = "INR"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// UnmarshalText normalizes form labels such as "MAFI MODE". Unknown
// names are kept verbatim so validation can report them.
func (m *Mode) UnmarshalText(text []byte) error {
	if parsed, err := ParseMode(string(text)); err == nil {
		*m = parsed
		return nil
	}
	*m = Mode(text)
	return nil
}

// UnmarshalText normalizes trailer labels. Unknown names are kept
// verbatim so validation can report them.
func (t *TrailerType) UnmarshalText(text []byte) error {
	if parsed, err := ParseTrailerType(string(text)); err == nil {
		*t = parsed
		return nil
	}
	*t = TrailerType(text)
	return nil
}
