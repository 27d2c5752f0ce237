package ubigkas

import (
	"testing"
	"unicode/utf8"
)

func TestConjugate(t *testing.T) {
	tests := []struct {
		root  string
		class VerbClass
		tense Tense
		want  string
	}{
		// -um-
		{"kain", ClassUM, TensePast, "kumain"},
		{"kain", ClassUM, TensePresent, "kumakain"},
		{"kain", ClassUM, TenseFuture, "kakain"},
		{"inom", ClassUM, TensePast, "uminom"},
		{"inom", ClassUM, TensePresent, "umiinom"},
		{"inom", ClassUM, TenseFuture, "iinom"},
		// mag-/nag-
		{"luto", ClassMAG, TenseFuture, "magluluto"},
		{"luto", ClassMAG, TensePresent, "nagluluto"},
		{"luto", ClassMAG, TensePast, "nagluto"},
		{"aral", ClassMAG, TenseFuture, "mag-aaral"},
		{"aral", ClassMAG, TensePresent, "nag-aaral"},
		{"aral", ClassMAG, TensePast, "nag-aral"},
		{"trabaho", ClassMAG, TensePresent, "nagtratrabaho"},
		// -in
		{"basa", ClassIN, TenseFuture, "babasahin"},
		{"basa", ClassIN, TensePresent, "binabasa"},
		{"basa", ClassIN, TensePast, "binasa"},
		{"sulat", ClassIN, TenseFuture, "susulatin"},
		{"sulat", ClassIN, TensePast, "sinulat"},
		// -an
		{"hugas", ClassAN, TenseFuture, "huhugasan"},
		{"hugas", ClassAN, TensePresent, "hinuhugasan"},
		{"hugas", ClassAN, TensePast, "hinugasan"},
		{"sarado", ClassAN, TenseFuture, "sasaradohan"},
		{"bigay", ClassAN, TensePast, "binigayan"},
	}
	for _, tt := range tests {
		got := Conjugate(tt.root, tt.class, tt.tense)
		if got != tt.want {
			t.Errorf("Conjugate(%q, %s, %s) = %q, want %q", tt.root, tt.class, tt.tense, got, tt.want)
		}
	}
}

func TestConjugateIrregular(t *testing.T) {
	tests := []struct {
		root  string
		class VerbClass
		tense Tense
		want  string
	}{
		{"nood", ClassMAG, TenseFuture, "manonood"},
		{"nood", ClassMAG, TensePresent, "nanonood"},
		{"nood", ClassMAG, TensePast, "nanood"},
		// the nood override applies whatever the class
		{"nood", ClassUM, TensePast, "nanood"},
		{"nood", ClassNone, TenseBase, "manonood"},
		{"bukas", ClassAN, TenseFuture, "bubuksan"},
		{"bukas", ClassAN, TensePresent, "binubuksan"},
		{"bukas", ClassAN, TensePast, "binuksan"},
		// the bukas override is bound to -an
		{"bukas", ClassMAG, TensePast, "nagbukas"},
	}
	for _, tt := range tests {
		got := Conjugate(tt.root, tt.class, tt.tense)
		if got != tt.want {
			t.Errorf("Conjugate(%q, %s, %s) = %q, want %q", tt.root, tt.class, tt.tense, got, tt.want)
		}
	}
}

func TestConjugateBaseIsFuture(t *testing.T) {
	for _, class := range []VerbClass{ClassMAG, ClassUM, ClassIN, ClassAN} {
		for _, root := range []string{"kain", "aral", "hugas", "basa"} {
			base := Conjugate(root, class, TenseBase)
			future := Conjugate(root, class, TenseFuture)
			if base != future {
				t.Errorf("Conjugate(%q, %s): base %q != future %q", root, class, base, future)
			}
		}
	}
}

func TestConjugatePassThrough(t *testing.T) {
	if got := Conjugate("", ClassUM, TensePast); got != "" {
		t.Errorf("empty root: got %q", got)
	}
	if got := Conjugate("takbo", ClassNone, TensePast); got != "takbo" {
		t.Errorf("unknown class: got %q, want %q", got, "takbo")
	}
	// a root that passes through keeps its spelling
	if got := MustNew().Conjugate("Takbo", ClassNone, TensePast); got != "Takbo" {
		t.Errorf("unknown class, capitalized: got %q, want %q", got, "Takbo")
	}
	// roots are folded before inflection
	if got := Conjugate("Kain", ClassUM, TensePast); got != "kumain" {
		t.Errorf("capitalized root: got %q, want %q", got, "kumain")
	}
	if got := Conjugate("bukás", ClassAN, TensePast); got != "binuksan" {
		t.Errorf("accented root: got %q, want %q", got, "binuksan")
	}
}

func TestReduplicate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"kain", "ka"},
		{"trabaho", "tra"},
		{"aral", "a"},
		{"ihip", "i"},
		{"xyz", "x"},
		{"ŋŋ", "ŋ"},
		{"", ""},
	}
	for _, tt := range tests {
		got := reduplicate(tt.in)
		if got != tt.want {
			t.Errorf("reduplicate(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("reduplicate(%q) = %q is not valid UTF-8", tt.in, got)
		}
	}
}

func TestInsertInfix(t *testing.T) {
	tests := []struct {
		root, infix, want string
	}{
		{"kain", "um", "kumain"},
		{"trabaho", "um", "trumabaho"},
		{"aral", "in", "inaral"},
		{"xyz", "um", "xyzum"},
		{"", "um", ""},
	}
	for _, tt := range tests {
		if got := insertInfix(tt.root, tt.infix); got != tt.want {
			t.Errorf("insertInfix(%q, %q) = %q, want %q", tt.root, tt.infix, got, tt.want)
		}
	}
}

func TestConjugationTable(t *testing.T) {
	e := MustNew()
	table, ok := e.ConjugationTable("Kain")
	if !ok {
		t.Fatal("ConjugationTable(Kain) not found")
	}
	want := ConjugationTable{Root: "kain", Class: ClassUM, Future: "kakain", Present: "kumakain", Past: "kumain"}
	if *table != want {
		t.Errorf("ConjugationTable(Kain) = %+v, want %+v", *table, want)
	}
	if _, ok := e.ConjugationTable("mesa"); ok {
		t.Error("ConjugationTable(mesa) should not be found")
	}
}
