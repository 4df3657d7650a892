package engine

import "testing"

func TestNewEntityTargets(t *testing.T) {
	e := NewEntity(1, "Ho-Oh")
	if e.Target != "ho-oh" {
		t.Errorf("Target = %q, want %q", e.Target, "ho-oh")
	}
	if e.TargetNoHyphen != "hooh" {
		t.Errorf("TargetNoHyphen = %q, want %q", e.TargetNoHyphen, "hooh")
	}
	if e.Len() != 5 {
		t.Errorf("Len = %d, want 5", e.Len())
	}
}

func TestEntityTypedClamped(t *testing.T) {
	e := NewEntity(1, "Mew")

	e.SetTyped(-3)
	if e.Typed() != 0 {
		t.Errorf("Expected clamp to 0, got %d", e.Typed())
	}
	e.SetTyped(10)
	if e.Typed() != 3 {
		t.Errorf("Expected clamp to 3, got %d", e.Typed())
	}
}

func TestEntityCatchIsOneWay(t *testing.T) {
	e := NewEntity(1, "Mr. Mime")
	e.SetTyped(2)

	if !e.Catch() {
		t.Fatal("First catch should succeed")
	}
	if e.Catch() {
		t.Error("Second catch should report already caught")
	}
	if !e.Caught() || e.Typed() != 8 {
		t.Errorf("Caught entity: caught=%v typed=%d, want true/8", e.Caught(), e.Typed())
	}

	e.SetTyped(0)
	if e.Typed() != 8 {
		t.Errorf("Progress must stay frozen once caught, got %d", e.Typed())
	}
}

func TestEntityLabel(t *testing.T) {
	e := NewEntity(1, "Flabébé")
	e.SetTyped(5)

	typed, rest := e.Label()
	if typed != "Flabé" || rest != "bé" {
		t.Errorf("Label = %q|%q, want %q|%q", typed, rest, "Flabé", "bé")
	}
}

func TestVecGeometry(t *testing.T) {
	a := Vec{X: 0, Y: 0}
	b := Vec{X: 3, Y: 4}
	if d := a.Dist(b); d != 5 {
		t.Errorf("Dist = %v, want 5", d)
	}
	if got := b.Sub(a).Scale(2).Add(Vec{X: 1, Y: 1}); got != (Vec{X: 7, Y: 9}) {
		t.Errorf("Vector arithmetic = %+v", got)
	}
	if c := (Size{W: 80, H: 48}).Center(); c != (Vec{X: 40, Y: 24}) {
		t.Errorf("Center = %+v", c)
	}
}
