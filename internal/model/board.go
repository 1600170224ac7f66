package model

type Board struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Columns []*Column        `json:"columns"`
	Tasks   map[string]*Task `json:"tasks"`
}

// FindColumn returns the column with the given id, or nil.
func (b *Board) FindColumn(id string) *Column {
	for _, col := range b.Columns {
		if col.ID == id {
			return col
		}
	}
	return nil
}

// ColumnTasks resolves a column's ordered task ids against the task map.
// Ids that do not resolve are skipped.
func (b *Board) ColumnTasks(columnID string) []*Task {
	col := b.FindColumn(columnID)
	if col == nil {
		return nil
	}
	tasks := make([]*Task, 0, len(col.TaskIDs))
	for _, id := range col.TaskIDs {
		if t, ok := b.Tasks[id]; ok {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	cp := &Board{
		ID:      b.ID,
		Title:   b.Title,
		Columns: make([]*Column, len(b.Columns)),
		Tasks:   make(map[string]*Task, len(b.Tasks)),
	}
	for i, col := range b.Columns {
		cp.Columns[i] = col.Clone()
	}
	for id, t := range b.Tasks {
		cp.Tasks[id] = t.Clone()
	}
	return cp
}
