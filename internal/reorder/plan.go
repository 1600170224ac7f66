// Package reorder derives the live preview of a drag gesture from committed
// board state and turns the final drop into a single store move.
package reorder

import (
	"taskboard/internal/model"
)

// ComputeInsertionIndex converts the index of the drop target inside the
// task's own column into the index the store must splice at after the task
// has been removed from that column.
func ComputeInsertionIndex(oldIndex, rawTargetIndex int) int {
	if rawTargetIndex > oldIndex {
		return rawTargetIndex - 1
	}
	return rawTargetIndex
}

// ResolveDestination maps a hover or drop target to a column id. A task
// target resolves to the column owning that task; any other target must be
// a column id of the board.
func ResolveDestination(b *model.Board, targetID string) (string, bool) {
	if b == nil || targetID == "" {
		return "", false
	}
	if t, ok := b.Tasks[targetID]; ok {
		return t.ColumnID, true
	}
	if b.FindColumn(targetID) != nil {
		return targetID, true
	}
	return "", false
}

// targetIndex is the position of targetID in col, or the column length when
// the target is the column itself or is not listed.
func targetIndex(col *model.Column, targetID string) int {
	if i := col.IndexOf(targetID); i >= 0 {
		return i
	}
	return len(col.TaskIDs)
}

// Preview returns a copy of committed showing where the active task would
// land if dropped on targetID. Only moves across columns change the
// preview; committed is never modified.
func Preview(committed *model.Board, activeID, targetID string) *model.Board {
	preview := committed.Clone()
	if preview == nil {
		return nil
	}
	active, ok := preview.Tasks[activeID]
	if !ok {
		return preview
	}
	dest, ok := ResolveDestination(committed, targetID)
	if !ok || dest == active.ColumnID {
		return preview
	}
	src := preview.FindColumn(active.ColumnID)
	dst := preview.FindColumn(dest)
	if src == nil || dst == nil {
		return preview
	}

	src.TaskIDs = model.RemoveID(src.TaskIDs, activeID)
	dst.TaskIDs = model.InsertID(dst.TaskIDs, targetIndex(dst, targetID), activeID)
	active.ColumnID = dest
	return preview
}

type Decision int

const (
	// move the task with the planned Drop
	DecisionMove Decision = iota
	// the drop leaves the task where it is
	DecisionStay
	// no valid target; discard the preview
	DecisionRevert
)

func (d Decision) String() string {
	switch d {
	case DecisionMove:
		return "move"
	case DecisionStay:
		return "stay"
	case DecisionRevert:
		return "revert"
	}
	return "unknown"
}

func (d Decision) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Drop holds the arguments of the store move that commits a gesture.
type Drop struct {
	TaskID         string `json:"taskId"`
	SourceColumnID string `json:"sourceColumnId"`
	DestColumnID   string `json:"destColumnId"`
	Index          int    `json:"index"`
}

// PlanDrop computes the commit for dropping activeID on targetID, using
// only the committed board. Within one column the raw target index is
// shifted to account for the task's own removal; across columns it is used
// as is.
func PlanDrop(committed *model.Board, activeID, targetID string) (Drop, Decision) {
	if committed == nil {
		return Drop{}, DecisionRevert
	}
	active, ok := committed.Tasks[activeID]
	if !ok {
		return Drop{}, DecisionRevert
	}
	dest, ok := ResolveDestination(committed, targetID)
	if !ok {
		return Drop{}, DecisionRevert
	}
	src := committed.FindColumn(active.ColumnID)
	dst := committed.FindColumn(dest)
	if src == nil || dst == nil {
		return Drop{}, DecisionRevert
	}

	drop := Drop{TaskID: activeID, SourceColumnID: src.ID, DestColumnID: dst.ID}
	raw := targetIndex(dst, targetID)

	if src.ID != dst.ID {
		drop.Index = raw
		return drop, DecisionMove
	}

	oldIndex := src.IndexOf(activeID)
	if oldIndex == raw {
		return drop, DecisionStay
	}
	if oldIndex < 0 {
		// the column does not list the task; nothing shifts on removal
		drop.Index = raw
		return drop, DecisionMove
	}
	drop.Index = ComputeInsertionIndex(oldIndex, raw)
	return drop, DecisionMove
}
