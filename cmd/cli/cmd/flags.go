package cmd

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
)

// decimalValue adapts a decimal.Decimal to a command-line flag so
// quantities such as 4.1 m are kept exact.
type decimalValue struct {
	d *decimal.Decimal
}

var _ pflag.Value = decimalValue{}

func newDecimalValue(d *decimal.Decimal) decimalValue {
	return decimalValue{d: d}
}

func (v decimalValue) String() string {
	if v.d == nil {
		return "0"
	}
	return v.d.String()
}

func (v decimalValue) Set(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return err
	}
	*v.d = d
	return nil
}

func (v decimalValue) Type() string {
	return "decimal"
}
