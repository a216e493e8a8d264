package classify

import (
	"regexp"
	"strconv"
	"strings"

	"pricecomp-service/internal/perfume/model"
	"pricecomp-service/internal/utils"
)

// Vocabulary lists are data, not control flow: extend the slices, the
// matching logic stays untouched. Matching is case-insensitive and
// substring-based, same as the merchant-authored names it has to survive.

// rejectedWords veto a listing outright: samples and decants are not
// comparable products, whatever else the name says.
var rejectedWords = []string{"عينة", "sample", "تقسيم", "decant"}

// typeRules are evaluated in priority order, first hit wins.
// A name carrying both a set word and a tester word is a Set.
var typeRules = []struct {
	Type  model.VariantType
	Words []string
}{
	{model.TypeSet, []string{"طقم", "set", "مجموعة", "gift set"}},
	{model.TypeHairMist, []string{"عطر شعر", "hair mist"}},
	{model.TypeBodyMist, []string{"body mist", "body spray", "ميست"}},
	{model.TypeTester, []string{"تستر", "tester", "testeur"}},
}

// first integer followed by a volume unit, Latin or Arabic spelling
var sizeRe = regexp.MustCompile(`(\d+)\s*(?:ml|مل)`)

// Classify derives the variant type and the packaging size (ml) from a raw
// product name. rejected=true short-circuits: type and size are not
// meaningful and must not be relied upon.
func Classify(name string) (ptype model.VariantType, sizeML int, rejected bool) {
	low := strings.ToLower(name)

	for _, w := range rejectedWords {
		if strings.Contains(low, w) {
			return "", 0, true
		}
	}

	ptype = model.TypeRetail
	for _, rule := range typeRules {
		if containsAny(low, rule.Words) {
			ptype = rule.Type
			break
		}
	}

	// Arabic-Indic digits count: "١٠٠ مل" is 100 ml
	if m := sizeRe.FindStringSubmatch(utils.FoldDigits(low)); m != nil {
		sizeML, _ = strconv.Atoi(m[1])
	}
	return ptype, sizeML, false
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
