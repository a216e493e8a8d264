package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pricecomp-service/internal/perfume/model"
)

func TestClassifyRejection(t *testing.T) {
	cases := []string{
		"Sample Dior 10ml",
		"SAMPLE Chanel",
		"عينة شانيل بلو",
		"Decant Aventus 5ml",
		"تقسيم عود 10 مل",
		"Tester sample set", // veto wins over every type word
	}
	for _, name := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, rejected := Classify(name)
			assert.True(t, rejected)
		})
	}
}

func TestClassifyTypePriority(t *testing.T) {
	cases := []struct {
		name string
		want model.VariantType
	}{
		{"Chanel Bleu EDP 100ml", model.TypeRetail},
		{"Bleu Chanel Tester 100ml", model.TypeTester},
		{"تستر ديور سوفاج", model.TypeTester},
		{"Gift Set Tester Chanel", model.TypeSet}, // Set outranks Tester
		{"طقم عود مع تستر", model.TypeSet},
		{"Chanel Hair Mist 35ml", model.TypeHairMist},
		{"عطر شعر ماجد", model.TypeHairMist},
		{"Body Mist Victoria 250ml", model.TypeBodyMist},
		{"ميست الجسم 250 مل", model.TypeBodyMist},
		{"VICTORIA BODY SPRAY", model.TypeBodyMist},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, _, rejected := Classify(tc.name)
			assert.False(t, rejected)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassifySize(t *testing.T) {
	cases := []struct {
		name string
		want int
	}{
		{"Chanel No5 100ml", 100},
		{"Dior 50 مل", 50},
		{"Dior Sauvage", 0},
		{"بلو شانيل او دي بارفان ١٠٠ مل", 100}, // Arabic-Indic digits
		{"Aventus 75 ML", 75},
		{"Oud 200  ml", 200},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, size, rejected := Classify(tc.name)
			assert.False(t, rejected)
			assert.Equal(t, tc.want, size)
		})
	}
}
