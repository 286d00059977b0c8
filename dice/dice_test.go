package dice

import (
	"math"
	"slices"
	"testing"
)

// TestGenerateCountRangeOrder verifies every selectable count yields sorted in-range faces
func TestGenerateCountRangeOrder(t *testing.T) {
	gen := NewGenerator(NewSource(42))

	for count := 1; count <= 5; count++ {
		for trial := 0; trial < 200; trial++ {
			faces := gen.Generate(count)
			if len(faces) != count {
				t.Fatalf("count %d: expected %d faces, got %d", count, count, len(faces))
			}
			for _, f := range faces {
				if !f.Valid() {
					t.Fatalf("count %d: face %d out of range", count, f)
				}
			}
			if !slices.IsSorted(faces) {
				t.Fatalf("count %d: faces not ascending: %v", count, faces)
			}
		}
	}
}

// TestGenerateClampsCount verifies out-of-range counts are bounded
func TestGenerateClampsCount(t *testing.T) {
	gen := NewGenerator(NewSource(7))

	tests := []struct {
		in   int
		want int
	}{
		{-3, 1},
		{0, 1},
		{3, 3},
		{6, 5},
		{100, 5},
	}

	for _, tt := range tests {
		if got := len(gen.Generate(tt.in)); got != tt.want {
			t.Errorf("Generate(%d): expected %d faces, got %d", tt.in, tt.want, got)
		}
	}
}

// TestGenerateSeededDeterminism verifies equal seeds give equal outcomes
func TestGenerateSeededDeterminism(t *testing.T) {
	a := NewGenerator(NewSource(99))
	b := NewGenerator(NewSource(99))

	for i := 0; i < 50; i++ {
		fa, fb := a.Generate(5), b.Generate(5)
		if !slices.Equal(fa, fb) {
			t.Fatalf("roll %d diverged: %v vs %v", i, fa, fb)
		}
	}
}

// TestRollUniformity checks every face appears with roughly equal frequency
func TestRollUniformity(t *testing.T) {
	gen := NewGenerator(NewSource(1234))

	const draws = 60000
	var counts [7]int
	for i := 0; i < draws; i++ {
		counts[gen.Roll()]++
	}

	expected := float64(draws) / 6
	for f := 1; f <= 6; f++ {
		dev := math.Abs(float64(counts[f])-expected) / expected
		if dev > 0.05 {
			t.Errorf("face %d: frequency %d deviates %.1f%% from expected", f, counts[f], dev*100)
		}
	}
}

// TestPipLayout verifies the pip table matches a standard die
func TestPipLayout(t *testing.T) {
	if got := Pips(1); len(got) != 1 || got[0] != 4 {
		t.Errorf("face 1 must light only the center cell, got %v", got)
	}

	for f := Face(1); f <= 6; f++ {
		cells := Pips(f)
		if len(cells) != int(f) {
			t.Errorf("face %d: expected %d pips, got %d", f, f, len(cells))
		}
		for _, c := range cells {
			if c < 0 || c > 8 {
				t.Errorf("face %d: cell %d outside 3x3 grid", f, c)
			}
		}
		if len(Pips(f))+len(Pips(f.Opposite())) != 7 {
			t.Errorf("face %d and %d pips do not sum to 7", f, f.Opposite())
		}
	}

	if Pips(0) != nil || Pips(7) != nil {
		t.Error("invalid faces must have no pips")
	}
}

// TestHasPip spot-checks cell membership
func TestHasPip(t *testing.T) {
	if !HasPip(6, 3) || HasPip(6, 4) {
		t.Error("face 6 must light cell 3 and not the center")
	}
	if !HasPip(5, 4) {
		t.Error("face 5 must light the center")
	}
}

// TestOppositeFacesOrientation verifies opposite faces differ by 180 degrees on one axis
func TestOppositeFacesOrientation(t *testing.T) {
	for f := Face(1); f <= 6; f++ {
		opp := f.Opposite()
		if f+opp != 7 {
			t.Fatalf("face %d: opposite %d does not sum to 7", f, opp)
		}

		a, b := FaceOrientation(f), FaceOrientation(opp)
		dx := math.Abs(a.X - b.X)
		dy := math.Abs(a.Y - b.Y)

		switch {
		case dx == 180 && dy == 0:
		case dy == 180 && dx == 0:
		default:
			t.Errorf("faces %d/%d: orientations %v and %v do not differ by 180 on exactly one axis", f, opp, a, b)
		}
	}
}

// TestOrientationsDistinct verifies no two faces share a pose
func TestOrientationsDistinct(t *testing.T) {
	seen := make(map[Orientation]Face)
	for f := Face(1); f <= 6; f++ {
		o := FaceOrientation(f)
		if prev, ok := seen[o]; ok {
			t.Errorf("faces %d and %d share orientation %v", prev, f, o)
		}
		seen[o] = f
	}
}

// TestRedPips verifies pip colouring
func TestRedPips(t *testing.T) {
	for f := Face(1); f <= 6; f++ {
		want := f == 1 || f == 4
		if RedPips(f) != want {
			t.Errorf("face %d: RedPips=%v, want %v", f, RedPips(f), want)
		}
	}
}
