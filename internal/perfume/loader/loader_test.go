package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricecomp-service/internal/fileio"
	"pricecomp-service/internal/perfume/model"
)

func TestResolveColumnsDefaults(t *testing.T) {
	name, price := ResolveColumns([]string{"Column 1", "Column 2", "Column 3"})
	assert.Equal(t, "Column 1", name)
	assert.Equal(t, "Column 3", price)
}

func TestResolveColumnsHeaderTokens(t *testing.T) {
	cases := []struct {
		headers   []string
		wantName  string
		wantPrice string
	}{
		{[]string{"SKU", "Product Name", "Price"}, "Product Name", "Price"},
		{[]string{"اسم المنتج", "الكمية", "السعر"}, "اسم المنتج", "السعر"},
		{[]string{"منتج", "سعر"}, "منتج", "سعر"},
		// last match wins on duplicates
		{[]string{"name", "old name", "price"}, "old name", "price"},
		// a header matching both tokens sets both guesses
		{[]string{"item", "name and price"}, "name and price", "name and price"},
	}
	for _, tc := range cases {
		name, price := ResolveColumns(tc.headers)
		assert.Equal(t, tc.wantName, name)
		assert.Equal(t, tc.wantPrice, price)
	}
}

func TestLoadDropsRejectedAndUnpriced(t *testing.T) {
	table := fileio.Table{
		Headers: []string{"name", "price"},
		Records: []map[string]string{
			{"name": "Chanel Bleu EDP 100ml", "price": "350"},
			{"name": "Sample Dior 10ml", "price": "50"},     // vetoed
			{"name": "Creed Aventus 100ml", "price": "N/A"}, // unparsable price
			{"name": "Dior Sauvage 60ml", "price": "٢٤٥"},   // Arabic-Indic price
		},
	}

	got := Load(table)
	require.Len(t, got, 2)

	// source order preserved, names verbatim
	assert.Equal(t, "Chanel Bleu EDP 100ml", got[0].Name)
	assert.Equal(t, model.TypeRetail, got[0].Type)
	assert.Equal(t, 100, got[0].SizeML)
	assert.Equal(t, 350.0, got[0].Price)
	assert.Equal(t, "bleu chanel", got[0].Fingerprint)

	assert.Equal(t, "Dior Sauvage 60ml", got[1].Name)
	assert.Equal(t, 245.0, got[1].Price)
	assert.Equal(t, 60, got[1].SizeML)
}

func TestLoadSizeUnknownIsZero(t *testing.T) {
	table := fileio.Table{
		Headers: []string{"name", "price"},
		Records: []map[string]string{
			{"name": "Dior Sauvage", "price": "300"},
		},
	}
	got := Load(table)
	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].SizeML)
}
