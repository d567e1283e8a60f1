package pinchpad

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want Affine) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

func assertVec(t *testing.T, name string, got, want Vec2) {
	t.Helper()
	if math.Abs(got.X-want.X) > epsilon || math.Abs(got.Y-want.Y) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// --- Compose ---

func TestComposeIdentity(t *testing.T) {
	m := Affine{2, 1, 3, 4, 5, 6}
	id := Identity()

	var got Affine
	Compose(&got, &id, &m)
	assertMatrix(t, "id*m", got, m)
	Compose(&got, &m, &id)
	assertMatrix(t, "m*id", got, m)
}

func TestComposeTranslations(t *testing.T) {
	a := Translate(Vec2{10, 20})
	b := Translate(Vec2{5, 3})
	var got Affine
	Compose(&got, &a, &b)
	assertMatrix(t, "translations", got, Translate(Vec2{15, 23}))
}

func TestComposeOrder(t *testing.T) {
	// lhs*rhs applies rhs first: scale then translate ≠ translate then scale.
	s := Scale(Vec2{2, 2})
	tr := Translate(Vec2{10, 0})

	var st, ts Affine
	Compose(&st, &s, &tr) // translate first, then scale
	Compose(&ts, &tr, &s) // scale first, then translate

	assertVec(t, "scale∘translate", st.Apply(Vec2{1, 0}), Vec2{22, 0})
	assertVec(t, "translate∘scale", ts.Apply(Vec2{1, 0}), Vec2{12, 0})
}

func TestComposeAliasing(t *testing.T) {
	a := Affine{2, 0.1, 0.3, 3, 100, 200}
	b := Affine{1.5, 0.2, 0.1, 2.5, 50, 30}

	var want Affine
	Compose(&want, &a, &b)

	// dst aliasing lhs.
	lhs := a
	Compose(&lhs, &lhs, &b)
	assertMatrix(t, "dst=lhs", lhs, want)

	// dst aliasing rhs.
	rhs := b
	Compose(&rhs, &a, &rhs)
	assertMatrix(t, "dst=rhs", rhs, want)
}

// --- TRS ---

func TestTRSScaleOnly(t *testing.T) {
	got := TRS(Vec2{}, 0, Vec2{2, 3})
	assertMatrix(t, "scale", got, Affine{2, 0, 0, 3, 0, 0})
}

func TestTRSRotation90(t *testing.T) {
	got := TRS(Vec2{}, math.Pi/2, Vec2{1, 1})
	assertMatrix(t, "rot90", got, Affine{0, 1, -1, 0, 0, 0})
}

func TestTRSCombined(t *testing.T) {
	// Scale first, then rotate, then translate.
	got := TRS(Vec2{50, 100}, math.Pi/2, Vec2{2, 2})
	assertMatrix(t, "combined", got, Affine{0, 2, -2, 0, 50, 100})

	// Equivalent to Translate * Rotate * Scale composed explicitly.
	r := TRS(Vec2{}, math.Pi/2, Vec2{1, 1})
	s := Scale(Vec2{2, 2})
	tr := Translate(Vec2{50, 100})
	var want Affine
	Compose(&want, &r, &s)
	Compose(&want, &tr, &want)
	assertMatrix(t, "explicit", got, want)
}

// --- FixAt ---

func TestFixAtPivotInvariance(t *testing.T) {
	tests := []struct {
		name  string
		m     Affine
		pivot Vec2
	}{
		{"scale", Scale(Vec2{2, 2}), Vec2{30, 40}},
		{"anisotropic scale", Scale(Vec2{0.5, 3}), Vec2{-10, 7}},
		{"rotation", TRS(Vec2{}, 1.2, Vec2{1, 1}), Vec2{100, -50}},
		{"rotate+scale", TRS(Vec2{}, -0.7, Vec2{3, 3}), Vec2{0.5, 0.25}},
		{"with translation", TRS(Vec2{5, -3}, 0.3, Vec2{1.5, 1.5}), Vec2{12, 34}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixed := FixAt(tt.m, tt.pivot)
			got := fixed.Apply(tt.pivot)
			// The pivot moves only by the matrix's own translation part.
			want := tt.pivot.Add(Vec2{tt.m[4], tt.m[5]})
			assertVec(t, "pivot", got, want)
		})
	}
}

func TestFixAtPureLinearKeepsPivotFixed(t *testing.T) {
	m := TRS(Vec2{}, 0.9, Vec2{2.5, 2.5})
	pivot := Vec2{30, 40}
	assertVec(t, "pivot fixed", FixAt(m, pivot).Apply(pivot), pivot)
}

func TestFixAtMatchesConjugation(t *testing.T) {
	m := TRS(Vec2{7, -2}, 0.4, Vec2{2, 0.5})
	pivot := Vec2{13, 21}

	var want Affine
	neg := Translate(Vec2{-pivot.X, -pivot.Y})
	pos := Translate(pivot)
	Compose(&want, &m, &neg)
	Compose(&want, &pos, &want)

	assertMatrix(t, "T(p)*m*T(-p)", FixAt(m, pivot), want)
}

// --- Invert ---

func TestInvertRoundtrip(t *testing.T) {
	m := TRS(Vec2{10, 20}, math.Pi/3, Vec2{2, 1})
	inv := m.Invert()
	var got Affine
	Compose(&got, &m, &inv)
	assertMatrix(t, "m*inv=id", got, Identity())
}

func TestInvertSingularReturnsIdentity(t *testing.T) {
	m := Affine{0, 0, 0, 1, 10, 20}
	assertMatrix(t, "singular", m.Invert(), Identity())
}

// --- Apply / Lerp ---

func TestApplyTranslation(t *testing.T) {
	m := Translate(Vec2{3, 4})
	assertVec(t, "apply", m.Apply(Vec2{1, 1}), Vec2{4, 5})
}

func TestLerpEndpoints(t *testing.T) {
	a := TRS(Vec2{10, 0}, 0, Vec2{2, 2})
	b := Identity()
	assertMatrix(t, "t=0", Lerp(a, b, 0), a)
	assertMatrix(t, "t=1", Lerp(a, b, 1), b)
	assertNear(t, "t=0.5 tx", Lerp(a, b, 0.5)[4], 5)
}

// --- Benchmarks ---

func BenchmarkCompose(b *testing.B) {
	x := Affine{2, 0.1, 0.3, 3, 100, 200}
	y := Affine{1.5, 0.2, 0.1, 2.5, 50, 30}
	var dst Affine
	b.ReportAllocs()
	for b.Loop() {
		Compose(&dst, &x, &y)
	}
}

func BenchmarkFixAt(b *testing.B) {
	m := TRS(Vec2{5, -3}, 0.3, Vec2{1.5, 1.5})
	b.ReportAllocs()
	for b.Loop() {
		_ = FixAt(m, Vec2{12, 34})
	}
}
