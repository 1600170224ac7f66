package model

// Column is an ordered bucket of task references. The order of TaskIDs is
// the display order.
type Column struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Color   string   `json:"color,omitempty"`
	TaskIDs []string `json:"taskIds"`
}

// IndexOf returns the position of taskID in the column, or -1.
func (c *Column) IndexOf(taskID string) int {
	for i, id := range c.TaskIDs {
		if id == taskID {
			return i
		}
	}
	return -1
}

func (c *Column) Contains(taskID string) bool {
	return c.IndexOf(taskID) >= 0
}

func (c *Column) Clone() *Column {
	if c == nil {
		return nil
	}
	cp := *c
	cp.TaskIDs = append(make([]string, 0, len(c.TaskIDs)), c.TaskIDs...)
	return &cp
}

// RemoveID returns ids without any occurrence of id. The result is never nil.
func RemoveID(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// InsertID returns ids with id inserted at index, clamped to [0, len(ids)].
func InsertID(ids []string, index int, id string) []string {
	if index < 0 {
		index = 0
	}
	if index > len(ids) {
		index = len(ids)
	}
	out := make([]string, 0, len(ids)+1)
	out = append(out, ids[:index]...)
	out = append(out, id)
	return append(out, ids[index:]...)
}
