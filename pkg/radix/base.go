package radix

import (
	"strings"

	"github.com/pkg/errors"
)

// Base is a numeral system supported by the converter.
type Base byte

const (
	Binary Base = iota + 1
	Decimal
	Hexadecimal
)

var baseNames = map[Base]string{
	Binary:      "bin",
	Decimal:     "dec",
	Hexadecimal: "hex",
}

var baseAliases = map[string]Base{
	"bin":         Binary,
	"binary":      Binary,
	"2":           Binary,
	"dec":         Decimal,
	"decimal":     Decimal,
	"10":          Decimal,
	"hex":         Hexadecimal,
	"hexadecimal": Hexadecimal,
	"16":          Hexadecimal,
}

// ParseBase returns the base named by s. Short names ("bin", "dec", "hex"), full names and radixes are accepted.
func ParseBase(s string) (Base, error) {
	b, ok := baseAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, errors.Errorf("unsupported base %q", s)
	}
	return b, nil
}

func (b Base) String() string {
	if n, ok := baseNames[b]; ok {
		return n
	}
	return "unknown"
}

// Radix returns the number of digits of the base, zero for an unknown base.
func (b Base) Radix() int {
	switch b {
	case Binary:
		return 2
	case Decimal:
		return 10
	case Hexadecimal:
		return 16
	default:
		return 0
	}
}

func (b Base) Valid() bool {
	_, ok := baseNames[b]
	return ok
}

func (b Base) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, errors.Errorf("invalid base %d", byte(b))
	}
	return []byte(b.String()), nil
}

func (b *Base) UnmarshalText(text []byte) error {
	v, err := ParseBase(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// Set implements pflag.Value.
func (b *Base) Set(s string) error {
	return b.UnmarshalText([]byte(s))
}

// Type implements pflag.Value.
func (b *Base) Type() string {
	return "base"
}
