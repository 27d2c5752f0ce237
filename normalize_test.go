package ubigkas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"double ng", "ng ng", "ng"},
		{"double ng in sentence", "kumain ng ng isda", "kumain ng isda"},
		{"triple sa mixed case", "pumunta sa SA sa bahay", "pumunta sa bahay"},
		{"double ay", "si Ana ay ay masaya", "si Ana ay masaya"},
		{"different markers kept", "ng sa ay", "ng sa ay"},
		{"marker prefix of word kept", "ng nga", "ng nga"},
		{"locative missing ng", "sa ilalim mesa", "sa ilalim ng mesa"},
		{"locative missing sa", "ilalim ng mesa", "sa ilalim ng mesa"},
		{"locative wrong marker", "sa loob sa kahon", "sa loob ng kahon"},
		{"locative in sentence", "ang pusa ay sa likod bahay", "ang pusa ay sa likod ng bahay"},
		{"already canonical", "sa ibabaw ng mesa", "sa ibabaw ng mesa"},
		{"capitalized leading marker", "Sa ilalim mesa", "sa ilalim ng mesa"},
		{"capitalized trailing marker", "ilalim NG mesa", "sa ilalim ng mesa"},
		{"capitalized run then locative", "Sa SA baba Ng", "Sa baba Ng"},
		{"locative before marker kept", "ng loob ng", "ng loob ng"},
		{"locative before capitalized marker kept", "Ng loob Ng", "Ng loob Ng"},
		{"locative at end", "sa ilalim ng", "sa ilalim ng"},
		{"two locatives", "ay nasa ilalim baba mesa loob ng", "ay nasa sa ilalim ng baba mesa loob ng"},
		{"no match", "kumain ako", "kumain ako"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"ng ng ng",
		"sa sa ilalim mesa",
		"ilalim ng sa mesa",
		"sa ilalim ng",
		"kumain ng ng isda sa loob bahay",
		"Ang bata ay ay nasa gitna kalsada",
		"NG ng Ng",
		"Sa ilalim mesa",
		"Ng loob Ng",
		"Sa SA baba Ng",
		"ng loob ng",
		"ay nasa ilalim baba mesa loob ng",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func FuzzNormalize(f *testing.F) {
	for _, seed := range []string{
		"",
		"ng ng",
		"Sa ilalim mesa",
		"Ng loob Ng",
		"Sa SA baba Ng",
		"ng loob ng",
		"kumain ng ng isda sa loob bahay",
		"ay nasa ilalim baba mesa loob ng",
	} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, in string) {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	})
}

func TestFoldKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"KAIN", "kain"},
		{"Bukás", "bukas"},
		{"  ngayon ", "ngayon"},
		{"araw-araw", "araw-araw"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FoldKey(tt.in), "FoldKey(%q)", tt.in)
	}
}

func TestFinish(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"kumain ako", "Kumain ako."},
		{" si Juan ay mabait ", "Si Juan ay mabait."},
		{"talaga?", "Talaga?"},
		{"Oo!", "Oo!"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Finish(tt.in), "Finish(%q)", tt.in)
	}
}

func TestIsMarker(t *testing.T) {
	for _, w := range []string{"ang", "Ang", "mga", "ng", "si", "ni", "sa", "NASA", "ay"} {
		assert.True(t, IsMarker(w), w)
	}
	for _, w := range []string{"nang", "mesa", ""} {
		assert.False(t, IsMarker(w), w)
	}
}
