package ui

import (
	"strings"
	"testing"

	"gazetteer/internal/countries"
	"gazetteer/internal/listview"
)

func TestTableColumns_SortMarker(t *testing.T) {
	st := listview.State{SortField: countries.FieldCapital, SortDescending: false}
	cols := tableColumns(120, st)

	if len(cols) != len(columnLabels) {
		t.Fatalf("len(cols) = %d, want %d", len(cols), len(columnLabels))
	}
	if !strings.HasSuffix(cols[1].Title, "▲") {
		t.Fatalf("capital column title = %q, want ascending marker", cols[1].Title)
	}
	if strings.ContainsAny(cols[0].Title, "▲▼") {
		t.Fatalf("name column title = %q, want no marker", cols[0].Title)
	}

	st.SortDescending = true
	cols = tableColumns(120, st)
	if !strings.HasSuffix(cols[1].Title, "▼") {
		t.Fatalf("capital column title = %q, want descending marker", cols[1].Title)
	}
}

func TestTableColumns_MinimumWidth(t *testing.T) {
	cols := tableColumns(20, listview.State{})
	for _, c := range cols[:4] {
		if c.Width < 10 {
			t.Fatalf("column %q width = %d, want >= 10", c.Title, c.Width)
		}
	}
	if cols[4].Width != flagColumnWidth {
		t.Fatalf("flag column width = %d, want %d", cols[4].Width, flagColumnWidth)
	}
}

func TestTableRows_PreservesOrder(t *testing.T) {
	items := []countries.Country{
		{Name: "Portugal", Capital: "Lisbon", CurrencyName: "Euro", LanguageName: "Portuguese", FlagCode: "PT"},
		{Name: "Austria", Capital: "Vienna", CurrencyName: "Euro", LanguageName: "German", FlagCode: "AT"},
	}

	rows := tableRows(items)
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0][0] != "Portugal" || rows[1][0] != "Austria" {
		t.Fatalf("rows out of order: %v", rows)
	}
	if rows[1][1] != "Vienna" || rows[1][4] != "AT" {
		t.Fatalf("row fields = %v, want capital and flag code", rows[1])
	}
}

func TestTableRows_Empty(t *testing.T) {
	if rows := tableRows(nil); len(rows) != 0 {
		t.Fatalf("tableRows(nil) = %v, want empty", rows)
	}
}
