package model

// VariantType is the sales-channel/packaging category of a listing.
// A product only ever competes against the same variant type.
type VariantType string

const (
	TypeRetail   VariantType = "Retail"
	TypeTester   VariantType = "Tester"
	TypeHairMist VariantType = "Hair Mist"
	TypeBodyMist VariantType = "Body Mist"
	TypeSet      VariantType = "Set"
)

// Decision is chosen by the sign of (competitor price - our price).
// delta < 0 -> Losing, delta > 0 -> Leading, delta == 0 -> Tied.
// Downstream consumers depend on this exact mapping; do not invert it.
type Decision string

const (
	Losing  Decision = "Losing"
	Leading Decision = "Leading"
	Tied    Decision = "Tied"
)

// Product is one priced listing, immutable once built.
type Product struct {
	Name        string      `json:"name"` // original display string, shown as-is
	Price       float64     `json:"price"`
	Type        VariantType `json:"type"`
	SizeML      int         `json:"sizeMl"` // 0 = size not stated in the name
	Fingerprint string      `json:"-"`      // for scoring only, never displayed
}

// Match is one comparison outcome between our product and the best
// competitor candidate. Both names are carried verbatim so an operator
// can visually verify the pairing before trusting the numbers.
type Match struct {
	MyName     string      `json:"myName"`
	MyType     VariantType `json:"myType"`
	MyPrice    float64     `json:"myPrice"`
	Competitor string      `json:"competitor"` // source file label
	CompName   string      `json:"compName"`
	CompPrice  float64     `json:"compPrice"`
	SizeML     int         `json:"sizeMl"`
	Delta      float64     `json:"delta"`    // compPrice - myPrice, 2 decimals
	Decision   Decision    `json:"decision"`
	Score      int         `json:"score"`    // similarity 0..100
}

// Report is the flat tabular form of a match list, ready for display
// or spreadsheet export. Column order is fixed; row order follows
// match emission order.
type Report struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}
