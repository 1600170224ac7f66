package model

import (
	"fmt"
	"sort"
)

type ViolationKind string

const (
	// a column lists an id that is not in the task map
	ViolationOrphanID ViolationKind = "orphan_id"
	// an id is listed more than once across the board's columns
	ViolationDuplicateID ViolationKind = "duplicate_id"
	// a task is not listed by any column
	ViolationUnlisted ViolationKind = "unlisted_task"
	// a task is listed by a column other than its columnId
	ViolationWrongColumn ViolationKind = "wrong_column"
	// a task's columnId names no column on the board
	ViolationMissingColumn ViolationKind = "missing_column"
)

type Violation struct {
	Kind     ViolationKind `json:"kind"`
	TaskID   string        `json:"taskId"`
	ColumnID string        `json:"columnId,omitempty"`
}

func (v Violation) String() string {
	if v.ColumnID == "" {
		return fmt.Sprintf("%s: task %s", v.Kind, v.TaskID)
	}
	return fmt.Sprintf("%s: task %s in column %s", v.Kind, v.TaskID, v.ColumnID)
}

// Check reports every place where the board breaks the ownership
// invariants: each task listed exactly once, by the column its columnId
// names, and every listed id resolving to a task.
func (b *Board) Check() []Violation {
	var out []Violation
	listed := make(map[string]int)

	for _, col := range b.Columns {
		for _, id := range col.TaskIDs {
			listed[id]++
			if listed[id] == 2 {
				out = append(out, Violation{Kind: ViolationDuplicateID, TaskID: id, ColumnID: col.ID})
			}
			t, ok := b.Tasks[id]
			if !ok {
				out = append(out, Violation{Kind: ViolationOrphanID, TaskID: id, ColumnID: col.ID})
				continue
			}
			if t.ColumnID != col.ID {
				out = append(out, Violation{Kind: ViolationWrongColumn, TaskID: id, ColumnID: col.ID})
			}
		}
	}

	ids := make([]string, 0, len(b.Tasks))
	for id := range b.Tasks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		t := b.Tasks[id]
		if b.FindColumn(t.ColumnID) == nil {
			out = append(out, Violation{Kind: ViolationMissingColumn, TaskID: id, ColumnID: t.ColumnID})
		}
		if listed[id] == 0 {
			out = append(out, Violation{Kind: ViolationUnlisted, TaskID: id})
		}
	}
	return out
}
