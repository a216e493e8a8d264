package engine

import (
	"errors"
	"math"

	"pricecomp-service/internal/perfume/model"
)

// Run-level hard failures; everything row-level is dropped silently
// upstream in the loader.
var (
	ErrNoStoreFile       = errors.New("no store price list provided")
	ErrNoCompetitorFiles = errors.New("no competitor price list provided")
)

// Competitor is one competitor price list: the source label (filename
// without extension) and its loaded products.
type Competitor struct {
	Label    string
	Products []model.Product
}

// MinScore bounds per the external configuration contract.
const (
	MinScoreFloor   = 50
	MinScoreCeil    = 100
	DefaultMinScore = 75
)

// ClampMinScore pins a threshold into the valid [50,100] range.
func ClampMinScore(v int) int {
	if v < MinScoreFloor {
		return MinScoreFloor
	}
	if v > MinScoreCeil {
		return MinScoreCeil
	}
	return v
}

type typeSize struct {
	t model.VariantType
	s int
}

// Run matches every one of our products against every competitor list and
// returns the decisions in deterministic order: our products in source
// order, competitor files in upload order within each product.
func Run(mine []model.Product, comps []Competitor, minScore int) []model.Match {
	// partition each competitor by (type,size): the strict filter is a
	// map lookup, no scoring across types or sizes ever happens
	indexes := make([]map[typeSize][]model.Product, len(comps))
	for i, c := range comps {
		idx := make(map[typeSize][]model.Product)
		for _, p := range c.Products {
			k := typeSize{p.Type, p.SizeML}
			idx[k] = append(idx[k], p)
		}
		indexes[i] = idx
	}

	var out []model.Match
	for _, my := range mine {
		// matching size-unknown items is unsafe, skip them outright
		if my.SizeML == 0 {
			continue
		}
		for ci, comp := range comps {
			candidates := indexes[ci][typeSize{my.Type, my.SizeML}]
			if len(candidates) == 0 {
				continue // normal outcome, not an error
			}

			best, score := pickBest(my.Fingerprint, candidates)
			if score < minScore {
				continue
			}

			delta := round2(best.Price - my.Price)
			out = append(out, model.Match{
				MyName:     my.Name,
				MyType:     my.Type,
				MyPrice:    my.Price,
				Competitor: comp.Label,
				CompName:   best.Name,
				CompPrice:  best.Price,
				SizeML:     my.SizeML,
				Delta:      delta,
				Decision:   decide(delta),
				Score:      score,
			})
		}
	}
	return out
}

// pickBest scores fp against every candidate fingerprint and returns the
// single highest scorer. Ties go to the first candidate in input order
// (strictly-greater replacement keeps the choice deterministic).
func pickBest(fp string, candidates []model.Product) (model.Product, int) {
	best := candidates[0]
	bestScore := -1
	for _, c := range candidates {
		if s := Score(fp, c.Fingerprint); s > bestScore {
			best = c
			bestScore = s
		}
	}
	return best, bestScore
}

func decide(delta float64) model.Decision {
	switch {
	case delta < 0:
		return model.Losing
	case delta > 0:
		return model.Leading
	default:
		return model.Tied
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
