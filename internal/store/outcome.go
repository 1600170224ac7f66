package store

// Outcome reports what a store operation did. Missing boards, tasks and
// columns are not errors; they resolve to a no-op with the matching outcome.
type Outcome int

const (
	Applied Outcome = iota
	Unchanged
	BoardMissing
	TaskMissing
	ColumnMissing
	// the operation was applied but the board was already inconsistent
	Inconsistent
)

var outcomeNames = map[Outcome]string{
	Applied:       "applied",
	Unchanged:     "unchanged",
	BoardMissing:  "board_missing",
	TaskMissing:   "task_missing",
	ColumnMissing: "column_missing",
	Inconsistent:  "inconsistent",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "unknown"
}

// Persisted reports whether the operation wrote state.
func (o Outcome) Persisted() bool {
	return o == Applied || o == Inconsistent
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}
