package textx

import "strings"

var (
	smallNumbers = [...]string{ //nolint: gochecknoglobals
		"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
		"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
		"seventeen", "eighteen", "nineteen",
	}
	tens = [...]string{ //nolint: gochecknoglobals
		"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
	}
	scales = [...]string{ //nolint: gochecknoglobals
		"", "thousand", "million", "billion", "trillion", "quadrillion", "quintillion",
	}
)

// NumberToWords spells n out in English, e.g. 1042 → "one thousand forty-two".
func NumberToWords(n int64) string {
	if n == 0 {
		return smallNumbers[0]
	}

	var prefix string
	mag := uint64(n)
	if n < 0 {
		prefix = "minus "
		mag = -mag
	}

	var groups []string
	for scale := 0; mag > 0; scale++ {
		chunk := mag % 1000
		mag /= 1000
		if chunk == 0 {
			continue
		}
		words := hundreds(int(chunk))
		if scales[scale] != "" {
			words += " " + scales[scale]
		}
		groups = append(groups, words)
	}

	for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
		groups[i], groups[j] = groups[j], groups[i]
	}

	return prefix + strings.Join(groups, " ")
}

// hundreds spells 1..999.
func hundreds(n int) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, smallNumbers[n/100]+" hundred")
		n %= 100
	}
	switch {
	case n == 0:
	case n < 20:
		parts = append(parts, smallNumbers[n])
	case n%10 == 0:
		parts = append(parts, tens[n/10])
	default:
		parts = append(parts, tens[n/10]+"-"+smallNumbers[n%10])
	}

	return strings.Join(parts, " ")
}
