package amount

import "strings"

// AddCommas inserts separator between every three digits of the integer portion of numeral,
// counting leftwards from the decimal point. The fractional part and any non-digit prefix
// (such as the approximation marker) are left untouched. An empty separator means ",".
func AddCommas(numeral string, separator string) string {
	if separator == "" {
		separator = DefaultSeparator
	}

	start := 0
	for start < len(numeral) && !isDigit(numeral[start]) {
		start++
	}
	end := start
	for end < len(numeral) && isDigit(numeral[end]) {
		end++
	}

	integer := numeral[start:end]
	if len(integer) <= 3 {
		return numeral
	}

	var sb strings.Builder
	sb.Grow(len(numeral) + (len(integer)-1)/3*len(separator))
	sb.WriteString(numeral[:start])

	head := len(integer) % 3
	if head == 0 {
		head = 3
	}
	sb.WriteString(integer[:head])
	for i := head; i < len(integer); i += 3 {
		sb.WriteString(separator)
		sb.WriteString(integer[i : i+3])
	}

	sb.WriteString(numeral[end:])
	return sb.String()
}

// AddCommas groups the digits of numeral with the formatter separator.
func (f *Formatter) AddCommas(numeral string) string {
	return AddCommas(numeral, f.separator)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
