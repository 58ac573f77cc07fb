package utils

import "strconv"

// FormatCurrency renders a whole-unit amount as "$1,234,567" with
// thousands separators. Amounts are whole currency units; the planning
// engine never produces fractional amounts.
func FormatCurrency(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, d)
	}

	out := "$" + string(grouped)
	if negative {
		out = "-" + out
	}
	return out
}
