package helper

import "strings"

var persianDigits = strings.NewReplacer(
	"۰", "0", "۱", "1", "۲", "2", "۳", "3", "۴", "4",
	"۵", "5", "۶", "6", "۷", "7", "۸", "8", "۹", "9",
	"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4",
	"٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
)

// NormalizePhoneNumber maps Persian/Arabic digits to ASCII, strips
// everything but digits and "+", and rewrites local 0xxxxxxxxxx
// numbers to the +98 international form.
func NormalizePhoneNumber(value string) string {
	normalized := persianDigits.Replace(strings.TrimSpace(value))

	var b strings.Builder
	for i, r := range normalized {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	normalized = b.String()

	if strings.HasPrefix(normalized, "00") {
		normalized = "+" + normalized[2:]
	}
	if strings.HasPrefix(normalized, "0") && len(normalized) == 11 {
		normalized = "+98" + normalized[1:]
	}
	return normalized
}
