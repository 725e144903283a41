package errs

import "fmt"

// InvalidDigit is returned when a character can not be mapped to a digit value of the given base.
type InvalidDigit struct {
	Digit    rune
	Position int
	Base     int
	message  string
}

func NewInvalidDigit(digit rune, position, base int) *InvalidDigit {
	return &InvalidDigit{
		Digit:    digit,
		Position: position,
		Base:     base,
		message:  fmt.Sprintf("invalid base %d digit %q at position %d", base, digit, position),
	}
}

func (a InvalidDigit) Error() string {
	return a.message
}

func (a InvalidDigit) Extend(message string) error {
	e := a
	e.message = fmtExtend(a, message)
	return &e
}

func (a InvalidDigit) Is(target error) bool {
	switch target.(type) {
	case InvalidDigit, *InvalidDigit:
		return true
	default:
		return false
	}
}
