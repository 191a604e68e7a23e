package marker

import (
	"reflect"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{TableStart, "TableStart"},
		{TableEnd, "TableEnd"},
		{RowStart, "RowStart"},
		{RowEnd, "RowEnd"},
		{CellContent, "CellContent"},
		{Kind(42), "Kind(42)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestMarker_String(t *testing.T) {
	if got := Cell("a b").String(); got != `CellContent("a b")` {
		t.Errorf("Cell.String() = %q", got)
	}
	if got := RowOpen().String(); got != "RowStart" {
		t.Errorf("RowOpen().String() = %q", got)
	}
}

func TestBuilder(t *testing.T) {
	var b Builder
	got := b.Table([]string{"a", "b"}, []string{"c"}).Add(Cell("stray")).Markers()

	want := []Marker{
		{Kind: TableStart},
		{Kind: RowStart}, {Kind: CellContent, Text: "a"}, {Kind: CellContent, Text: "b"}, {Kind: RowEnd},
		{Kind: RowStart}, {Kind: CellContent, Text: "c"}, {Kind: RowEnd},
		{Kind: TableEnd},
		{Kind: CellContent, Text: "stray"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Markers() = %v, want %v", got, want)
	}
}

func TestTokenizerFunc(t *testing.T) {
	var tok Tokenizer = TokenizerFunc(func(src []byte) ([]Marker, error) {
		return []Marker{Cell(string(src))}, nil
	})

	got, err := tok.Tokenize([]byte("x"))
	if err != nil {
		t.Fatalf("Tokenize() failed: %v", err)
	}
	if len(got) != 1 || got[0].Text != "x" {
		t.Errorf("Tokenize() = %v", got)
	}
}
