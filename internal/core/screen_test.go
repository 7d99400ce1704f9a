package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y) != blankCell {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", s.GetCell(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, Cell{Rune: 'X', Fg: ColorRed, Bg: ColorBlue})
	if got := s.GetCell(5, 5); got.Rune != 'X' || got.Fg != ColorRed || got.Bg != ColorBlue {
		t.Errorf("GetCell(5, 5) = %+v", got)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawText(7, 0, "hello", ColorGreen)

	if s.Row(0) != "       hel" {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
	if s.GetCell(7, 0).Fg != ColorGreen {
		t.Error("DrawText should color the runes")
	}
}

func TestScreenDrawTextOn(t *testing.T) {
	s := NewScreen(4, 1)
	s.DrawTextOn(1, 0, "ab", ColorBlack, ColorYellow)

	c := s.GetCell(2, 0)
	if c.Rune != 'b' || c.Fg != ColorBlack || c.Bg != ColorYellow {
		t.Errorf("GetCell(2, 0) = %+v", c)
	}
	if s.GetCell(0, 0).Bg != ColorDefault {
		t.Error("cells outside the text keep their background")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(s.Bounds(), 0, "abc", ColorDefault)

	if s.Row(0) != "    abc    " {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(5, 3)
	s.FillRect(NewRect(1, 1, 3, 5), Cell{Rune: '#', Bg: ColorGray})

	expected := []string{"     ", " ### ", " ### "}
	for y, row := range expected {
		if s.Row(y) != row {
			t.Errorf("Row(%d) = %q, expected %q", y, s.Row(y), row)
		}
	}
	if s.GetCell(2, 2).Bg != ColorGray {
		t.Error("FillRect should apply the background color")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(s.Bounds(), ColorWhite)

	expected := []string{"┌──┐", "│  │", "└──┘"}
	for y, row := range expected {
		if s.Row(y) != row {
			t.Errorf("Row(%d) = %q, expected %q", y, s.Row(y), row)
		}
	}

	// Degenerate boxes draw nothing
	small := NewScreen(3, 3)
	small.DrawBox(NewRect(0, 0, 1, 3), ColorWhite)
	if strings.TrimSpace(small.String()) != "" {
		t.Error("1-wide box should not be drawn")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	if s.String() != "a  \n  b" {
		t.Errorf("String() = %q", s.String())
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(0, 0, 'X')
	s.Resize(6, 2)

	if s.Width() != 6 || s.Height() != 2 {
		t.Fatalf("Resize: got %dx%d", s.Width(), s.Height())
	}
	if s.Get(0, 0) != ' ' {
		t.Error("Resize should clear content")
	}
	if s.Row(5) != "      " {
		t.Errorf("Row out of range = %q", s.Row(5))
	}
}
