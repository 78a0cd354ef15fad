package dashboard

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var numberPrinter = message.NewPrinter(language.English)

// fixed renders v with exactly decimals digits after the point.
func fixed(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// grouped renders an integer with thousands separators.
func grouped(v int64) string {
	return numberPrinter.Sprintf("%d", v)
}

// percent renders a 0..1 fraction as a percentage with two decimals.
func percent(fraction float64) string {
	return fixed(fraction*100, 2) + "%"
}

// tail returns the last n entries of s, preserving order.
func tail[T any](s []T, n int) []T {
	if n < 0 || len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
