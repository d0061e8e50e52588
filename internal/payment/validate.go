package payment

import (
	"regexp"
	"strings"
)

type Network string

const (
	NetworkVisa       Network = "visa"
	NetworkMastercard Network = "mastercard"
	NetworkAmex       Network = "amex"
	NetworkRupay      Network = "rupay"
	NetworkUnknown    Network = "unknown"
)

// ValidLuhn reports whether the digits of number satisfy the Luhn checksum.
// Non-digit characters are stripped first. An input with no digits at all
// sums to zero, which passes the modulus check.
func ValidLuhn(number string) bool {
	var digits []int
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}

	sum := 0
	for i := 0; i < len(digits); i++ {
		d := digits[len(digits)-1-i]
		if i%2 == 1 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	return sum%10 == 0
}

var rupayPrefixes = []string{"60", "65", "81", "82", "83", "84", "85", "86", "87", "88", "89"}

// NetworkOf classifies a card number by its leading digits. First matching
// rule wins; the prefixes are mutually exclusive.
func NetworkOf(number string) Network {
	if strings.HasPrefix(number, "4") {
		return NetworkVisa
	}
	if len(number) < 2 {
		return NetworkUnknown
	}

	prefix := number[:2]
	if prefix >= "51" && prefix <= "55" {
		return NetworkMastercard
	}
	if prefix == "34" || prefix == "37" {
		return NetworkAmex
	}
	for _, p := range rupayPrefixes {
		if prefix == p {
			return NetworkRupay
		}
	}
	return NetworkUnknown
}

var vpaPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9]+$`)

// ValidVPA reports whether vpa is syntactically a local-part@handle UPI
// address. No bank-handle verification happens.
func ValidVPA(vpa string) bool {
	return vpaPattern.MatchString(vpa)
}
