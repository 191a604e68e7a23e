package htmldoc

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/tsawler/mdtables/marker"
)

func tokenize(t *testing.T, src string) []marker.Marker {
	t.Helper()
	ms, err := NewTokenizer().Tokenize([]byte(src))
	if err != nil {
		t.Fatalf("Tokenize() failed: %v", err)
	}
	return ms
}

func TestTokenize_SimpleTable(t *testing.T) {
	src := `<!DOCTYPE html>
<html>
<body>
	<h1>Cats</h1>
	<p>Some text.</p>
	<table>
		<thead><tr><th>Name</th><th>Head</th></tr></thead>
		<tbody>
			<tr><td> Mittens </td><td>BLACK</td></tr>
			<tr><td>Snow</td><td></td></tr>
		</tbody>
	</table>
</body>
</html>`

	var want marker.Builder
	want.Table(
		[]string{"Name", "Head"},
		[]string{"Mittens", "BLACK"},
		[]string{"Snow", ""},
	)

	if got := tokenize(t, src); !reflect.DeepEqual(got, want.Markers()) {
		t.Errorf("Tokenize() = %v, want %v", got, want.Markers())
	}
}

func TestTokenize_NoTables(t *testing.T) {
	got := tokenize(t, `<html><body><p>unclosed paragraph`)
	if got == nil || len(got) != 0 {
		t.Errorf("Tokenize() = %v, want empty", got)
	}
}

func TestTokenize_OmittedEndTags(t *testing.T) {
	src := `<table>
<tr><td>a<td>b
<tr><td>c<td>d
</table>`

	var want marker.Builder
	want.Table([]string{"a", "b"}, []string{"c", "d"})

	if got := tokenize(t, src); !reflect.DeepEqual(got, want.Markers()) {
		t.Errorf("Tokenize() = %v, want %v", got, want.Markers())
	}
}

func TestTokenize_UnclosedTableClosedAtEOF(t *testing.T) {
	var want marker.Builder
	want.Table([]string{"a"})

	if got := tokenize(t, `<table><tr><td>a`); !reflect.DeepEqual(got, want.Markers()) {
		t.Errorf("Tokenize() = %v, want %v", got, want.Markers())
	}
}

func TestTokenize_CellWithoutRow(t *testing.T) {
	var want marker.Builder
	want.Table([]string{"x", "y"})

	if got := tokenize(t, `<table><td>x</td><td>y</td></table>`); !reflect.DeepEqual(got, want.Markers()) {
		t.Errorf("Tokenize() = %v, want %v", got, want.Markers())
	}
}

func TestTokenize_InlineMarkupAndEntities(t *testing.T) {
	got := tokenize(t, `<table><tr><td><b>bold</b> &amp; <i>it</i></td><td>a<br>b</td></tr></table>`)

	var want marker.Builder
	want.Table([]string{"bold & it", "a\nb"})

	if !reflect.DeepEqual(got, want.Markers()) {
		t.Errorf("Tokenize() = %v, want %v", got, want.Markers())
	}
}

func TestTokenize_SkipsScriptContent(t *testing.T) {
	got := tokenize(t, `<table><tr><td>x<script>var s = "<td>no</td>";</script>y</td><td><svg/>z</td></tr></table>`)

	var want marker.Builder
	want.Table([]string{"xy", "z"})

	if !reflect.DeepEqual(got, want.Markers()) {
		t.Errorf("Tokenize() = %v, want %v", got, want.Markers())
	}
}

func TestTokenize_NestedTable(t *testing.T) {
	got := tokenize(t, `<table><tr><td>outer<table><tr><td>inner</td></tr></table></td></tr></table>`)

	want := []marker.Marker{
		marker.TableOpen(),
		marker.RowOpen(),
		marker.TableOpen(), marker.RowOpen(), marker.Cell("inner"), marker.RowClose(), marker.TableClose(),
		marker.Cell("outer"),
		marker.RowClose(),
		marker.TableClose(),
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %v, want %v", got, want)
	}
}

func TestTokenize_MultipleTables(t *testing.T) {
	got := tokenize(t, `<table><tr><td>1</td></tr></table><p>between</p><table><tr><td>2</td></tr></table>`)

	var want marker.Builder
	want.Table([]string{"1"}).Table([]string{"2"})

	if !reflect.DeepEqual(got, want.Markers()) {
		t.Errorf("Tokenize() = %v, want %v", got, want.Markers())
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}

func TestTokenizeReader_Error(t *testing.T) {
	_, err := NewTokenizer().TokenizeReader(failingReader{})
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("TokenizeReader() error = %v, want wrapped read error", err)
	}
}

func TestTokenizeReader(t *testing.T) {
	ms, err := NewTokenizer().TokenizeReader(strings.NewReader(`<table><tr><th>k</th></tr></table>`))
	if err != nil {
		t.Fatalf("TokenizeReader() failed: %v", err)
	}
	if len(ms) != 5 || ms[2].Text != "k" {
		t.Errorf("TokenizeReader() = %v", ms)
	}
}
