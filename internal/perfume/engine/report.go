package engine

import "pricecomp-service/internal/perfume/model"

// reportColumns is the fixed output column order.
var reportColumns = []string{
	"My Product", "Type", "My Price",
	"Competitor", "Competitor Product", "Competitor Price",
	"Size (ml)", "Delta", "Decision", "Score",
}

// BuildReport flattens matches into the final table. Row order follows
// match emission order, no re-sorting. With zero matches the table has no
// columns at all, not ten empty ones.
func BuildReport(matches []model.Match) model.Report {
	if len(matches) == 0 {
		return model.Report{}
	}
	rep := model.Report{
		Columns: append([]string(nil), reportColumns...),
		Rows:    make([][]any, 0, len(matches)),
	}
	for _, m := range matches {
		rep.Rows = append(rep.Rows, []any{
			m.MyName, string(m.MyType), m.MyPrice,
			m.Competitor, m.CompName, m.CompPrice,
			m.SizeML, m.Delta, string(m.Decision), m.Score,
		})
	}
	return rep
}

// Summary is the per-decision tally shown next to the table.
type Summary struct {
	Total   int `json:"total"`
	Losing  int `json:"losing"`
	Leading int `json:"leading"`
	Tied    int `json:"tied"`
}

func Summarize(matches []model.Match) Summary {
	s := Summary{Total: len(matches)}
	for _, m := range matches {
		switch m.Decision {
		case model.Losing:
			s.Losing++
		case model.Leading:
			s.Leading++
		case model.Tied:
			s.Tied++
		}
	}
	return s
}
