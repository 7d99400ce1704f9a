package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 4, false}, // Right edge is exclusive
		{5, 5, false}, // Bottom edge is exclusive
		{1, 3, false},
		{2, 2, false},
	}

	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(0, 0, 10, 6).Inset(1)
	if r != NewRect(1, 1, 8, 4) {
		t.Errorf("Inset(1) = %+v", r)
	}

	// Never negative
	r = NewRect(0, 0, 2, 2).Inset(3)
	if r.W != 0 || r.H != 0 {
		t.Errorf("Inset(3) on 2x2 = %+v, expected zero size", r)
	}
}

func TestRectCell(t *testing.T) {
	// 3x3 grid of 4x2 cells starting at (10, 5)
	board := NewRect(10, 5, 12, 6)

	tests := []struct {
		name       string
		x, y       int
		row, col   int
		expectedOK bool
	}{
		{"top-left corner", 10, 5, 0, 0, true},
		{"inside first cell", 13, 6, 0, 0, true},
		{"second column", 14, 5, 0, 1, true},
		{"centre cell", 15, 7, 1, 1, true},
		{"bottom-right cell", 21, 10, 2, 2, true},
		{"left of board", 9, 5, 0, 0, false},
		{"below board", 10, 11, 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			row, col, ok := board.Cell(tc.x, tc.y, 3)
			if ok != tc.expectedOK {
				t.Fatalf("Cell(%d, %d) ok = %v, expected %v", tc.x, tc.y, ok, tc.expectedOK)
			}
			if ok && (row != tc.row || col != tc.col) {
				t.Errorf("Cell(%d, %d) = (%d, %d), expected (%d, %d)", tc.x, tc.y, row, col, tc.row, tc.col)
			}
		})
	}
}

func TestRectCellLeftover(t *testing.T) {
	// 7 wide split in 3 leaves one spare column at x=6
	board := NewRect(0, 0, 7, 6)
	if _, _, ok := board.Cell(6, 0, 3); ok {
		t.Error("spare column should not map to a cell")
	}
	if _, _, ok := board.Cell(0, 0, 0); ok {
		t.Error("n=0 should not map to a cell")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestAbsMinMax(t *testing.T) {
	if Abs(-3) != 3 || Abs(4) != 4 {
		t.Error("Abs returned wrong value")
	}
	if Min(2, 7) != 2 || Min(7, 2) != 2 {
		t.Error("Min returned wrong value")
	}
	if Max(2, 7) != 7 || Max(7, 2) != 7 {
		t.Error("Max returned wrong value")
	}
}
