package ui

import (
	"github.com/charmbracelet/bubbles/table"

	"gazetteer/internal/countries"
	"gazetteer/internal/listview"
)

// Column layout: the four sortable fields plus the display-only flag code.
var columnLabels = []string{"Name", "Capital", "Currency", "Language", "Flag"}

const flagColumnWidth = 6

// tableColumns builds the column set for the current width and sort state.
// The active sort column carries a direction marker.
func tableColumns(width int, st listview.State) []table.Column {
	if width <= 0 {
		width = 120
	}
	// The flag column is fixed; the rest share the remaining width.
	fieldWidth := (width - flagColumnWidth - 2) / len(countries.Fields())
	if fieldWidth < 10 {
		fieldWidth = 10
	}

	cols := make([]table.Column, 0, len(columnLabels))
	for i, field := range countries.Fields() {
		title := columnLabels[i]
		if st.SortField == field {
			title += sortMarker(st.SortDescending)
		}
		cols = append(cols, table.Column{Title: title, Width: fieldWidth})
	}
	cols = append(cols, table.Column{Title: columnLabels[len(columnLabels)-1], Width: flagColumnWidth})
	return cols
}

func sortMarker(descending bool) string {
	if descending {
		return " ▼"
	}
	return " ▲"
}

// tableRows converts fetched items into rows, one per item, in the order the
// endpoint returned them.
func tableRows(items []countries.Country) []table.Row {
	rows := make([]table.Row, 0, len(items))
	for _, c := range items {
		rows = append(rows, table.Row{c.Name, c.Capital, c.CurrencyName, c.LanguageName, c.FlagCode})
	}
	return rows
}
