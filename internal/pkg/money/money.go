// Package money handles monetary amounts as integer cents to avoid
// floating-point drift when summing order totals.
package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidAmount = errors.New("money: invalid amount")

// Cents is a monetary amount in cents.
type Cents int64

// String formats the amount with two decimal places, e.g. 1099 -> "10.99".
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Parse converts a decimal string like "10.99" or "7" into Cents. At most two
// fractional digits are accepted.
func Parse(s string) (Cents, error) {
	s = strings.TrimSpace(s)

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidAmount)
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if whole == "" {
		whole = "0"
	}

	// ParseUint rejects embedded signs, so "1.-5" and "--1" fail here
	// instead of parsing to a wrong amount. The sign is handled above.
	units, err := strconv.ParseUint(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	var cents uint64
	switch len(frac) {
	case 0:
	case 1:
		cents, err = strconv.ParseUint(frac, 10, 64)
		cents *= 10
	case 2:
		cents, err = strconv.ParseUint(frac, 10, 64)
	default:
		return 0, fmt.Errorf("%w: more than two decimal places in %q", ErrInvalidAmount, s)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	total := int64(units)*100 + int64(cents)
	if neg {
		total = -total
	}
	return Cents(total), nil
}
