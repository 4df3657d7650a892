package name

import (
	"testing"
	"testing/quick"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{"Pikachu", "pikachu"},
		{"Mr. Mime", "mrmime"},
		{"Farfetch'd", "farfetchd"},
		{"Farfetch’d", "farfetchd"},
		{"Sirfetch`d", "sirfetchd"},
		{"Ho-Oh", "ho-oh"},
		{"Ho–Oh", "ho-oh"},
		{"Jangmo—o", "jangmo-o"},
		{"  Type: Null  ", "type:null"},
		{"Flabébé", "flabebe"},
		{"Mime Jr.", "mimejr"},
		{"Tapu\tKoko\n", "tapukoko"},
		{"...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := Normalize(tt.raw); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestStripHyphen(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{"ho-oh", "hooh"},
		{"Porygon-Z", "porygonz"},
		{"Kommo–o", "kommoo"},
		{"pikachu", "pikachu"},
	}

	for _, tt := range tests {
		if got := StripHyphen(tt.raw); got != tt.want {
			t.Errorf("StripHyphen(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestRune(t *testing.T) {
	for _, r := range []rune{'.', ' ', '\'', '`', '\t'} {
		if got := Rune(r); got != "" {
			t.Errorf("Rune(%q) = %q, want empty", r, got)
		}
	}
	if got := Rune('M'); got != "m" {
		t.Errorf("Rune('M') = %q, want %q", got, "m")
	}
	if got := Rune('-'); got != "-" {
		t.Errorf("Rune('-') = %q, want %q", got, "-")
	}
	if got := Rune('—'); got != "-" {
		t.Errorf("Rune(em dash) = %q, want %q", got, "-")
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	idempotent := func(s string) bool {
		once := Normalize(s)
		return Normalize(once) == once
	}
	if err := quick.Check(idempotent, nil); err != nil {
		t.Error(err)
	}

	for _, s := range []string{"Mr. Mime", "Ho–Oh", "Flabébé", "  ", "Nidoran♀", "İstanbul", "\u1fef"} {
		if !idempotent(s) {
			t.Errorf("Normalize not idempotent for %q", s)
		}
	}
}

// TestNormalizeComposesAcrossRemovedSeparators covers jamo that only become
// adjacent once the separator between them is dropped
func TestNormalizeComposesAcrossRemovedSeparators(t *testing.T) {
	for _, raw := range []string{"ᄀ.ᅡ", "ᄀ ᅡ", "ᄒ'ᅡ", "ᄀ`ᅡ"} {
		once := Normalize(raw)
		if n := len([]rune(once)); n != 1 {
			t.Errorf("Normalize(%q) = %q (%d runes), want one syllable", raw, once, n)
		}
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize(%q) = %q, second pass = %q", raw, once, twice)
		}
	}
	if got := Normalize("ᄀ.ᅡ"); got != "가" {
		t.Errorf("Normalize(jamo) = %q, want %q", got, "가")
	}
}

func TestStripHyphenHasNoHyphen(t *testing.T) {
	noHyphen := func(s string) bool {
		for _, r := range StripHyphen(s) {
			if r == '-' {
				return false
			}
		}
		return true
	}
	if err := quick.Check(noHyphen, nil); err != nil {
		t.Error(err)
	}
}
