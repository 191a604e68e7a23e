package tables

import (
	"reflect"
	"testing"

	"golang.org/x/text/language"

	"github.com/tsawler/mdtables/model"
)

func catTable() *model.Table {
	return model.NewTable(
		[]string{"Name", "Head", "Body", "Tail", "Paws"},
		[]string{"Mittens", "BLACK", "black", "black", "white"},
		[]string{"Dipstick", "white", "white", "black", "white"},
		[]string{"Snow", "white", "white", "white", "white"},
	)
}

func TestToObject(t *testing.T) {
	obj := ToObject(catTable(), ConvertOptions{})

	if v, ok := obj.Get("Mittens", "Head"); !ok || v != "BLACK" {
		t.Errorf("obj[Mittens][Head] = (%q, %v), want BLACK", v, ok)
	}
	if v, _ := obj.Get("Dipstick", "Tail"); v != "black" {
		t.Errorf("obj[Dipstick][Tail] = %q, want black", v)
	}
	if got := obj.Keys(); !reflect.DeepEqual(got, []string{"Mittens", "Dipstick", "Snow"}) {
		t.Errorf("Keys() = %v", got)
	}
	if got := obj.Fields("Snow"); !reflect.DeepEqual(got, []string{"Head", "Body", "Tail", "Paws"}) {
		t.Errorf("Fields() = %v", got)
	}
	if obj.Has("Name") {
		t.Error("header row should not become a record")
	}
}

func TestToObject_LowercaseKeys(t *testing.T) {
	obj := ToObject(catTable(), ConvertOptions{LowercaseKeys: true})

	if v, ok := obj.Get("mittens", "head"); !ok || v != "BLACK" {
		t.Errorf("obj[mittens][head] = (%q, %v), want BLACK (values keep their case)", v, ok)
	}
	if _, ok := obj.Get("Mittens", "Head"); ok {
		t.Error("original casing should not be addressable when lowercasing")
	}

	plain := ToObject(catTable(), ConvertOptions{})
	if _, ok := plain.Get("mittens", "head"); ok {
		t.Error("lowercase keys should not be addressable without the flag")
	}
}

func TestToObject_LowercaseLanguage(t *testing.T) {
	table := model.NewTable([]string{"", "TITLE"}, []string{"İSTANBUL", "x"})

	und := ToObject(table, ConvertOptions{LowercaseKeys: true})
	if und.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", und.Len())
	}
	if got := und.Fields(und.Keys()[0]); !reflect.DeepEqual(got, []string{"title"}) {
		t.Errorf("Und folding fields = %v, want [title]", got)
	}

	tr := ToObject(table, ConvertOptions{LowercaseKeys: true, Language: language.Turkish})
	if !tr.Has("istanbul") {
		t.Errorf("Turkish folding keys = %v", tr.Keys())
	}
	if _, ok := tr.Get("istanbul", "tıtle"); !ok {
		t.Errorf("Turkish folding fields = %v", tr.Fields("istanbul"))
	}
}

func TestToObject_EmptyTable(t *testing.T) {
	for name, table := range map[string]*model.Table{
		"nil":       nil,
		"zero rows": {},
	} {
		t.Run(name, func(t *testing.T) {
			obj := ToObject(table, ConvertOptions{})
			if obj == nil {
				t.Fatal("ToObject() should never return nil")
			}
			if obj.Len() != 0 {
				t.Errorf("Len() = %d, want 0", obj.Len())
			}
		})
	}
}

func TestToObject_HeaderOnly(t *testing.T) {
	obj := ToObject(model.NewTable([]string{"Name", "Head"}), ConvertOptions{})
	if obj.Len() != 0 {
		t.Errorf("header-only table should give an empty object, got %v", obj.Map())
	}
}

func TestToObject_EmptyCells(t *testing.T) {
	table := model.NewTable(
		[]string{"Name", "Age", "Location"},
		[]string{"Alice", "30", ""},
		[]string{"Bob", "", "New York"},
	)
	obj := ToObject(table, ConvertOptions{})

	if v, ok := obj.Get("Alice", "Location"); !ok || v != "" {
		t.Errorf("obj[Alice][Location] = (%q, %v), want empty string present", v, ok)
	}
	if v, ok := obj.Get("Bob", "Age"); !ok || v != "" {
		t.Errorf("obj[Bob][Age] = (%q, %v), want empty string present", v, ok)
	}
}

func TestToObject_Irregular(t *testing.T) {
	table := model.NewTable(
		[]string{"K", "a", "b", "a"},
		[]string{"short", "1"},
		[]string{},
		[]string{"long", "1", "2", "3", "4"},
		[]string{"short", "9", "8"},
	)
	got := ToObject(table, ConvertOptions{}).Map()

	expected := map[string]map[string]string{
		// the second "short" row replaces the first; duplicate column "a"
		// resolves to the last cell written under it
		"short": {"a": "9", "b": "8"},
		"long":  {"a": "3", "b": "2"},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("ToObject() = %v, want %v", got, expected)
	}
}

func TestToObject_DoesNotMutateInput(t *testing.T) {
	table := catTable()
	before := table.Clone()

	first := ToObject(table, ConvertOptions{LowercaseKeys: true})
	second := ToObject(table, ConvertOptions{LowercaseKeys: true})

	if !table.Equal(before) {
		t.Errorf("ToObject() mutated its input: %v", table.Rows)
	}
	if !reflect.DeepEqual(first.Map(), second.Map()) {
		t.Errorf("repeated conversion differs: %v vs %v", first.Map(), second.Map())
	}
}

func TestToObjects(t *testing.T) {
	objs := ToObjects([]*model.Table{catTable(), model.NewTable([]string{"Key", "Value"}, []string{"A", "1"})}, ConvertOptions{})
	if len(objs) != 2 {
		t.Fatalf("got %d objects, want 2", len(objs))
	}
	if v, _ := objs[1].Get("A", "Value"); v != "1" {
		t.Errorf("objs[1][A][Value] = %q", v)
	}
	if got := ToObjects(nil, ConvertOptions{}); got == nil || len(got) != 0 {
		t.Errorf("ToObjects(nil) = %v, want empty slice", got)
	}
}
