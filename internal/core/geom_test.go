package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained box",
			a:        NewBox(0, 0, 20, 20),
			b:        NewBox(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "single cell overlap",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(9, 9, 10, 10),
			expected: true,
		},
		{
			name:     "negative coordinates",
			a:        NewBox(-11, 14, 10, 6),
			b:        NewBox(-3, 10, 9, 16),
			expected: true,
		},
		{
			name:     "zero width inside other",
			a:        NewBox(5, 5, 0, 3),
			b:        NewBox(0, 0, 10, 10),
			expected: false,
		},
		{
			name:     "zero height inside other",
			a:        NewBox(5, 5, 3, 0),
			b:        NewBox(0, 0, 10, 10),
			expected: false,
		},
		{
			name:     "two zero boxes at same spot",
			a:        Box{},
			b:        Box{},
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Overlaps(tc.b)
			if result != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := Overlaps(tc.b, tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestBoxOverlapsSymmetricGrid(t *testing.T) {
	// Sweep one box across another on both axes.
	fixed := NewBox(10, 10, 4, 3)
	for x := 0; x < 20; x++ {
		for y := 0; y < 20; y++ {
			for _, size := range [][2]int{{0, 2}, {2, 0}, {1, 1}, {5, 5}} {
				moving := NewBox(x, y, size[0], size[1])
				if fixed.Overlaps(moving) != moving.Overlaps(fixed) {
					t.Fatalf("asymmetric result for %+v vs %+v", fixed, moving)
				}
				if moving.Empty() && moving.Overlaps(fixed) {
					t.Fatalf("empty box %+v overlaps %+v", moving, fixed)
				}
			}
		}
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(5, 10, 20, 15)

	if b.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", b.Right())
	}
	if b.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", b.Bottom())
	}

	moved := b.Translate(-2, 3)
	if moved != NewBox(3, 13, 20, 15) {
		t.Errorf("Translate(-2, 3) = %+v", moved)
	}
}

func TestMax(t *testing.T) {
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
