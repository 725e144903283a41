package radix

import (
	"unicode/utf8"

	"github.com/baseconv/baseconv/pkg/errs"
)

// BinToDec returns the value of the binary number s.
// Characters other than '1' contribute nothing, so BinToDec never fails.
func BinToDec(s string) uint32 {
	var r uint32
	for i := 0; i < len(s) && i < binWeightsLen; i++ {
		if s[len(s)-1-i] == '1' {
			r += binWeights[i]
		}
	}
	return r
}

// HexToDec returns the value of the hexadecimal number s written with uppercase digits.
// Any character outside of '0'-'9' and 'A'-'F' aborts the conversion with *errs.InvalidDigit.
func HexToDec(s string) (uint64, error) {
	var r uint64
	for i := 0; i < len(s); i++ {
		pos := len(s) - 1 - i
		v, ok := hexValues[s[pos]]
		if !ok {
			// pos is the last byte of the offending character.
			d, size := utf8.DecodeLastRuneInString(s[:pos+1])
			return 0, errs.NewInvalidDigit(d, pos+1-size, 16)
		}
		if i < hexWeightsLen {
			r += v * hexWeights[i]
		}
	}
	return r, nil
}

// DecToBin returns the binary representation of v without leading zeros.
// Zero is represented by an empty string.
func DecToBin(v uint32) string {
	var buf [binWeightsLen]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = '0' + byte(v%2)
		v /= 2
	}
	return string(buf[i:])
}

// DecToHex returns the uppercase hexadecimal representation of v without leading zeros.
// Zero is represented by an empty string.
func DecToHex(v uint32) string {
	var buf [8]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = hexDigits[v%16]
		v /= 16
	}
	return string(buf[i:])
}
