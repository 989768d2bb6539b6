package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhoneNumber(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"09123456789", "+989123456789"},
		{"+989123456789", "+989123456789"},
		{"00989123456789", "+989123456789"},
		{"۰۹۱۲۳۴۵۶۷۸۹", "+989123456789"},
		{"٠٩١٢٣٤٥٦٧٨٩", "+989123456789"},
		{" 0912 345-6789 ", "+989123456789"},
		// short local numbers are left as digits only
		{"12345", "12345"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NormalizePhoneNumber(c.in), "input %q", c.in)
	}
}
