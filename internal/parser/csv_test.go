package parser

import (
	"strings"
	"testing"

	"github.com/dgallion1/docrtf/internal/doctree"
)

func TestCSVParser_Table(t *testing.T) {
	input := "name,size\nalpha,1\nbeta\n"
	tree, err := (&CSVParser{}).Parse(strings.NewReader(input), "data.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Title != "data" {
		t.Errorf("expected title %q, got %q", "data", tree.Title)
	}

	tables := ofType[*doctree.HTMLTable](tree)
	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}
	table := tables[0]
	if table.Columns != 2 || len(table.Nodes) != 3 {
		t.Fatalf("expected 2 columns and 3 rows, got %d and %d", table.Columns, len(table.Nodes))
	}

	header := doctree.Children(table.Nodes[0])
	first := doctree.Children(header[0])
	if sc, ok := first[0].(*doctree.StyleChange); !ok || sc.Style != doctree.Bold || !sc.Enable {
		t.Errorf("expected bold header cell, got %#v", first[0])
	}

	last := doctree.Children(table.Nodes[2])
	if len(last) != 2 || !last[1].(*doctree.HTMLTableCell).IsLast || len(doctree.Children(last[1])) != 0 {
		t.Error("expected short record padded with an empty last cell")
	}
}

func TestCSVParser_Empty(t *testing.T) {
	tree, err := (&CSVParser{}).Parse(strings.NewReader(""), "none.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Children()) != 0 {
		t.Errorf("expected no table for empty input, got %d children", len(tree.Children()))
	}
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Getting Started":   "getting-started",
		"  API / v2 (beta)": "api-v2-beta",
		"Año nuevo":         "año-nuevo",
		"!!!":               "",
	}
	for in, want := range tests {
		if got := slugify(in); got != want {
			t.Errorf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
