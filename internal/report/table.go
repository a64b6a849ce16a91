package report

// Row is a single labelled entry of a result table, holding one value per
// metric column.
type Row struct {
	Label   string           `json:"label"`
	Metrics map[string]int64 `json:"metrics"`
}

// Table is an in-memory tabular result set produced during report
// computation. Tables can be large, so report computation passes them
// around by registry handle instead of by value.
type Table struct {
	Name string `json:"name"`
	Rows []Row  `json:"rows"`
}

func NewTable(name string) *Table {
	return &Table{Name: name}
}

func (t *Table) AddRow(label string, metrics map[string]int64) {
	t.Rows = append(t.Rows, Row{Label: label, Metrics: metrics})
}

func (t *Table) RowCount() int {
	return len(t.Rows)
}

// Totals sums every metric column across all rows.
func (t *Table) Totals() map[string]int64 {
	totals := map[string]int64{}
	for _, row := range t.Rows {
		for metric, value := range row.Metrics {
			totals[metric] += value
		}
	}
	return totals
}
