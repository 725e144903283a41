// Package radix converts unsigned values between their decimal, binary and hexadecimal textual forms.
//
// Digit strings are read most-significant digit first. The documented input domain is up to 8 digits;
// the conversions themselves do not check it. Binary decoding treats every character other than '1'
// as a zero digit, while hexadecimal decoding rejects anything outside '0'-'9' and 'A'-'F' with
// an *errs.InvalidDigit error. Encoding zero yields an empty string in both binary and hexadecimal.
//
// All functions are safe for concurrent use.
package radix
