package classify

import (
	"regexp"
	"sort"
	"strings"
)

// noiseWords are packaging/marketing filler stripped from names before
// scoring. Removal is literal substring removal anywhere in the text,
// not word-boundary aware: that matches how the same filler gets glued
// onto names in real price lists ("100ml", "edp100").
var noiseWords = []string{
	"عطر", "perfume", "parfum", "ml", "مل",
	"edp", "edt", "eau", "de", "toilette",
	"spray", "intense", "original", "اصلي",
	// Arabic spellings of the same filler, common in Gulf listings
	"بارفان", "تواليت", "او دي", "سبراي",
}

// Arabic orthography folding: alif variants to bare alif, closed taa
// marbuta to haa. Sellers are not consistent about either.
var arabicFold = strings.NewReplacer(
	"أ", "ا", "إ", "ا", "آ", "ا",
	"ة", "ه",
)

var (
	nonWordRe = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	digitsRe  = regexp.MustCompile(`\p{Nd}+`)
)

// Fingerprint reduces a raw product name to a canonical, order-insensitive
// token signature used only for similarity scoring. Deterministic and pure;
// idempotent on already-normalized text. Sizes and digits are stripped on
// purpose: packaging size is enforced as a separate hard filter and must
// not leak into name similarity.
func Fingerprint(name string) string {
	txt := strings.ToLower(name)
	txt = arabicFold.Replace(txt)
	for _, w := range noiseWords {
		txt = strings.ReplaceAll(txt, w, "")
	}
	txt = nonWordRe.ReplaceAllString(txt, "")
	txt = digitsRe.ReplaceAllString(txt, "")
	txt = transliterate(txt)
	tokens := strings.Fields(txt)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}
