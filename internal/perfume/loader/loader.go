package loader

import (
	"strings"

	"pricecomp-service/internal/fileio"
	"pricecomp-service/internal/perfume/classify"
	"pricecomp-service/internal/perfume/model"
	"pricecomp-service/internal/utils"
)

// Header tokens that identify the name / price columns, either language.
var (
	nameTokens  = []string{"اسم", "name", "منتج"}
	priceTokens = []string{"سعر", "price"}
)

// ResolveColumns guesses which header holds the product name and which the
// price. Default: first column is the name, last column is the price. A
// header containing a known token overrides the guess; later matches win.
// Last-match-wins on ambiguous headers is intentional simplicity, not a
// ranking.
func ResolveColumns(headers []string) (nameCol, priceCol string) {
	if len(headers) == 0 {
		return "", ""
	}
	nameCol = headers[0]
	priceCol = headers[len(headers)-1]
	for _, h := range headers {
		hl := strings.ToLower(h)
		for _, t := range nameTokens {
			if strings.Contains(hl, t) {
				nameCol = h
				break
			}
		}
		for _, t := range priceTokens {
			if strings.Contains(hl, t) {
				priceCol = h
				break
			}
		}
	}
	return nameCol, priceCol
}

// Load turns a raw table into product records. Rows are dropped silently
// when the name is vetoed (samples, decants) or the price cell does not
// parse; that is expected noise in merchant-authored lists, not an error.
// Source row order is preserved.
func Load(t fileio.Table) []model.Product {
	nameCol, priceCol := ResolveColumns(t.Headers)

	out := make([]model.Product, 0, len(t.Records))
	for _, rec := range t.Records {
		name := strings.TrimSpace(rec[nameCol])
		if name == "" {
			continue
		}
		ptype, size, rejected := classify.Classify(name)
		if rejected {
			continue
		}
		price, ok := utils.ParseFloat(rec[priceCol])
		if !ok || price < 0 {
			continue
		}
		out = append(out, model.Product{
			Name:        name,
			Price:       price,
			Type:        ptype,
			SizeML:      size,
			Fingerprint: classify.Fingerprint(name),
		})
	}
	return out
}
