package radix

import (
	"strconv"
	"unicode/utf8"

	"github.com/ccoveille/go-safecast"
	"github.com/pkg/errors"

	"github.com/baseconv/baseconv/pkg/errs"
)

// ParseDecimal parses the base 10 text s into a value that fits the converter's 32-bit word.
func ParseDecimal(s string) (uint32, error) {
	if s == "" {
		return 0, errors.New("empty decimal value")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			d, _ := utf8.DecodeRuneInString(s[i:])
			return 0, errs.NewInvalidDigit(d, i, 10)
		}
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to parse decimal value %q", s)
	}
	r, err := safecast.ToUint32(v)
	if err != nil {
		return 0, errors.Wrapf(err, "decimal value %q does not fit in 32 bits", s)
	}
	return r, nil
}

// Convert rewrites the number s given in base from into base to.
// Binary and hexadecimal results of zero are empty strings, decimal zero is "0".
func Convert(s string, from, to Base) (string, error) {
	v, err := decode(s, from)
	if err != nil {
		return "", errs.Extend(err, "failed to decode "+from.String()+" value")
	}
	switch to {
	case Decimal:
		return strconv.FormatUint(v, 10), nil
	case Binary, Hexadecimal:
		w, err := safecast.ToUint32(v)
		if err != nil {
			return "", errors.Wrapf(err, "%s value %q is too large to convert to %s", from, s, to)
		}
		if to == Binary {
			return DecToBin(w), nil
		}
		return DecToHex(w), nil
	default:
		return "", errors.Errorf("unsupported target base %d", byte(to))
	}
}

func decode(s string, b Base) (uint64, error) {
	switch b {
	case Binary:
		return uint64(BinToDec(s)), nil
	case Decimal:
		v, err := ParseDecimal(s)
		return uint64(v), err
	case Hexadecimal:
		return HexToDec(s)
	default:
		return 0, errors.Errorf("unsupported source base %d", byte(b))
	}
}
