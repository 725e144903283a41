package radix

const (
	binWeightsLen = 32
	hexWeightsLen = 16
	hexDigitsLen  = 16
)

var (
	// binWeights[i] is the place value of the i-th binary digit counting from the least significant one.
	binWeights [binWeightsLen]uint32
	// hexWeights[i] is the place value of the i-th hexadecimal digit counting from the least significant one.
	hexWeights [hexWeightsLen]uint64
	// hexDigits maps a value in the range 0..15 to its uppercase hexadecimal character.
	hexDigits = [hexDigitsLen]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'A', 'B', 'C', 'D', 'E', 'F'}
	// hexValues maps a hexadecimal character to its value. Characters missing from the map are not digits.
	hexValues = make(map[byte]uint64, hexDigitsLen)
)

func init() {
	for i := range binWeights {
		binWeights[i] = 1 << i
	}
	for i := range hexWeights {
		hexWeights[i] = 1 << (4 * i)
	}
	for v, d := range hexDigits {
		hexValues[d] = uint64(v)
	}
}
