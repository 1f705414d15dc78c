package wizard

import "strings"

// maskDigit is the placeholder that consumes one input digit.
const maskDigit = 'x'

// Mask is a fixed-width input template such as "xxxxx-xxxxxxx-x". Each 'x'
// takes the next digit of the input; every other character is a separator
// inserted verbatim.
type Mask string

// Apply strips every non-digit from s and lays the remaining digits onto
// the mask. Output stops as soon as the digits run out, so no trailing
// separator is emitted, and digits beyond the mask's capacity are dropped.
// A zero Mask returns s unchanged.
func (m Mask) Apply(s string) string {
	if m == "" {
		return s
	}

	digits := onlyDigits(s)

	var b strings.Builder
	b.Grow(len(m))

	di := 0
	for i := 0; i < len(m) && di < len(digits); i++ {
		if m[i] == maskDigit {
			b.WriteByte(digits[di])
			di++
		} else {
			b.WriteByte(m[i])
		}
	}
	return b.String()
}

// Capacity returns the number of digits the mask holds.
func (m Mask) Capacity() int {
	return strings.Count(string(m), string(maskDigit))
}

// Complete reports whether s is a fully filled rendering of the mask.
func (m Mask) Complete(s string) bool {
	if len(s) != len(m) {
		return false
	}
	for i := 0; i < len(m); i++ {
		if m[i] == maskDigit {
			if !isDigit(s[i]) {
				return false
			}
		} else if s[i] != m[i] {
			return false
		}
	}
	return true
}

func onlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
