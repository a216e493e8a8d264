package classify

import "strings"

// arabicLatin maps Arabic letters to Latin approximations so the same
// perfume listed in both scripts ("شانيل" / "chanel") lands on comparable
// fingerprints. The choices lean French because the perfume trade does:
// ش -> "ch", و -> "u". The map is deliberately lossy; it only has to make
// cross-script pairs score close, not round-trip.
var arabicLatin = map[rune]string{
	'ا': "a", 'ب': "b", 'ت': "t", 'ث': "th",
	'ج': "j", 'ح': "h", 'خ': "kh", 'د': "d",
	'ذ': "th", 'ر': "r", 'ز': "z", 'س': "s",
	'ش': "ch", 'ص': "s", 'ض': "d", 'ط': "t",
	'ظ': "z", 'ع': "a", 'غ': "gh", 'ف': "f",
	'ق': "q", 'ك': "k", 'ل': "l", 'م': "m",
	'ن': "n", 'ه': "h", 'و': "u", 'ي': "i",
	'ى': "a", 'ء': "", 'ئ': "i", 'ؤ': "u",
}

func transliterate(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if lat, ok := arabicLatin[r]; ok {
			b.WriteString(lat)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
