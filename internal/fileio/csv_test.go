package fileio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSVUTF8(t *testing.T) {
	src := "name,price\nChanel Bleu EDP 100ml,350\nبلو شانيل او دي بارفان ١٠٠ مل,380\n"
	table, err := readCSV(strings.NewReader(src), 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "price"}, table.Headers)
	require.Len(t, table.Records, 2)
	assert.Equal(t, "350", table.Records[0]["price"])
	assert.Equal(t, "بلو شانيل او دي بارفان ١٠٠ مل", table.Records[1]["name"])
}

func TestReadCSVBlankHeaderGetsFallbackName(t *testing.T) {
	src := "name,\nBleu,350\n"
	table, err := readCSV(strings.NewReader(src), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "Column 2"}, table.Headers)
	assert.Equal(t, "350", table.Records[0]["Column 2"])
}

func TestReadCSVSkipsBlankRows(t *testing.T) {
	src := "name,price\n,\nBleu,350\n"
	table, err := readCSV(strings.NewReader(src), 1)
	require.NoError(t, err)
	require.Len(t, table.Records, 1)
	assert.Equal(t, "Bleu", table.Records[0]["name"])
}

func TestReadAnyRejectsUnknownExtension(t *testing.T) {
	_, err := ReadAny(strings.NewReader("x"), "prices.pdf", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file")
}
