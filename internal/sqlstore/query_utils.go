package sqlstore

import "strings"

// tableColumn qualifies column with its table name.
func tableColumn(table, column string) string {
	return table + "." + column
}

func tableColumns(table string, columns []string) []string {
	cs := make([]string, len(columns))
	for i, c := range columns {
		cs[i] = tableColumn(table, c)
	}
	return cs
}

// returning builds a RETURNING clause for the unqualified columns, which is
// the form both PostgreSQL and SQLite accept.
func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}
