package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var rxKeepNums = regexp.MustCompile(`[^\d.\-]`)

// FoldDigits maps Arabic-Indic and Eastern Arabic-Indic digits to ASCII.
// Merchant price lists freely mix "100 ml" and "١٠٠ مل".
func FoldDigits(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '٠' && r <= '٩': // ٠..٩
			return '0' + (r - '٠')
		case r >= '۰' && r <= '۹': // ۰..۹
			return '0' + (r - '۰')
		}
		return r
	}, s)
}

// ParseFloat parses merchant-authored price cells: "1 234,50", "٣٥٠",
// "197 ,00", NBSP/thin-space separated thousands, Arabic decimal (٫) and
// thousands (٬) marks, parenthesized negatives. Returns ok=false on junk.
func ParseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = FoldDigits(s)
	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = s[1 : len(s)-1]
	}
	repl := strings.NewReplacer(
		" ", "", " ", "", " ", "", " ", "", "\t", "",
		"٬", "", // Arabic thousands separator
		"٫", ".", // Arabic decimal separator
		"،", ".", // Arabic comma
		",", ".",
	)
	s = repl.Replace(s)
	s = rxKeepNums.ReplaceAllString(s, "")
	if s == "" || s == "-" || s == "." {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		f = -f
	}
	return f, true
}
