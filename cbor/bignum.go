package cbor

import (
	"math/big"
	"strconv"
)

// bignumToDecimalString renders a tag-2/tag-3 bignum payload as a
// decimal string (spec §4.7). magnitude is the big-endian byte string;
// negative selects the tag-3 "-"+|n| form.
func bignumToDecimalString(magnitude []byte, negative bool) string {
	n := new(big.Int).SetBytes(magnitude)
	if negative {
		n.Neg(n)
	}
	return n.String()
}

// decimalPrettifyLo and decimalPrettifyHi bound the decimal exponent
// range rendered in plain (non-scientific) form, matching jsoncons's
// prettify_string(s, len, exponent, -4, 17, result) call that this
// package's bigdec rendering is grounded on.
const (
	decimalPrettifyLo = -4
	decimalPrettifyHi = 17
)

// renderBigDec renders a tag-4 [exponent, mantissa] pair as a decimal
// string (spec §4.8): value = mantissa * 10^exponent. Plain notation is
// used when the number's decimal exponent falls in
// [decimalPrettifyLo, decimalPrettifyHi]; scientific notation otherwise.
func renderBigDec(exponent int64, mantissa *big.Int) string {
	sign := ""
	abs := mantissa
	if mantissa.Sign() < 0 {
		sign = "-"
		abs = new(big.Int).Neg(mantissa)
	}
	digits := abs.String()
	if digits == "0" {
		return "0"
	}
	nDigits := int64(len(digits))

	// decExp is E such that value = d.ddd... * 10^E.
	decExp := exponent + nDigits - 1

	if decExp < decimalPrettifyLo || decExp > decimalPrettifyHi {
		return sign + scientificForm(digits, decExp)
	}
	return sign + plainForm(digits, exponent)
}

// plainForm places a decimal point into digits per exponent, where the
// represented value is digits (as an integer) * 10^exponent.
func plainForm(digits string, exponent int64) string {
	nDigits := int64(len(digits))
	pointPos := nDigits + exponent

	switch {
	case pointPos <= 0:
		return "0." + zeros(-pointPos) + digits
	case pointPos >= nDigits:
		return digits + zeros(pointPos-nDigits)
	default:
		return digits[:pointPos] + "." + digits[pointPos:]
	}
}

// scientificForm renders digits as d[.ddd]e±EXP, trimming trailing
// fractional zeros.
func scientificForm(digits string, decExp int64) string {
	frac := trimTrailingZeros(digits[1:])
	out := digits[:1]
	if frac != "" {
		out += "." + frac
	}
	out += "e"
	if decExp >= 0 {
		out += "+"
	}
	out += strconv.FormatInt(decExp, 10)
	return out
}

func trimTrailingZeros(s string) string {
	i := len(s)
	for i > 0 && s[i-1] == '0' {
		i--
	}
	return s[:i]
}

func zeros(n int64) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}

// renderBigFloat renders a tag-5 [exponent, mantissa] pair as a hex
// float string (spec §4.8): mantissa in hex, signed, followed by a
// base-2 exponent as "p<exp>".
func renderBigFloat(exponent int64, mantissa *big.Int) string {
	sign := ""
	abs := mantissa
	if mantissa.Sign() < 0 {
		sign = "-"
		abs = new(big.Int).Neg(mantissa)
	}
	return sign + "0x" + abs.Text(16) + "p" + strconv.FormatInt(exponent, 10)
}
