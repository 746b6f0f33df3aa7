package table

import "testing"

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"alpha", "3", "x"},
		{"be", "120", "yy"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignRight, AlignLeft})
	want := []string{
		"alpha    3  x ",
		"be     120  yy",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestFormatRaggedRows(t *testing.T) {
	got := Format([][]string{{"a", "b"}, {"ccc"}}, nil)
	if got[0] != "a    b" {
		t.Fatalf("unexpected first row %q", got[0])
	}
	if got[1] != "ccc   " {
		t.Fatalf("expected missing cells padded, got %q", got[1])
	}
}

func TestFormatMeasuresWideRunes(t *testing.T) {
	got := Format([][]string{{"销售", "1"}, {"abcd", "2"}}, nil)
	if got[0] != "销售  1" {
		t.Fatalf("expected wide runes counted as two cells, got %q", got[0])
	}
}

func TestFormatStyledCells(t *testing.T) {
	styled := "\x1b[1mab\x1b[0m"
	got := Format([][]string{{styled, "x"}, {"abc", "y"}}, nil)
	if got[0] != styled+"   x" {
		t.Fatalf("expected ANSI sequences ignored when padding, got %q", got[0])
	}
}

func TestFormatEmpty(t *testing.T) {
	if Format(nil, nil) != nil {
		t.Fatalf("expected nil for no rows")
	}
}
