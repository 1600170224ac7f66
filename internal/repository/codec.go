package repository

import (
	"fmt"

	"github.com/bytedance/sonic"

	"taskboard/internal/model"
)

// Encode serializes the full state. ConfigStd sorts map keys, so equal
// states produce identical blobs.
func Encode(state *model.KanbanState) ([]byte, error) {
	data, err := sonic.ConfigStd.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return data, nil
}

// Decode parses a blob produced by Encode and normalizes the result.
func Decode(data []byte) (*model.KanbanState, error) {
	var state model.KanbanState
	if err := sonic.ConfigStd.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptState, err)
	}
	Normalize(&state)
	return &state, nil
}

// Normalize rewrites state in place so it is safe to mutate: nil maps and
// column id lists become empty, nil boards and columns are dropped. A nil
// and an empty list encode differently but mean the same thing.
func Normalize(state *model.KanbanState) {
	if state == nil {
		return
	}
	if state.Boards == nil {
		state.Boards = map[string]*model.Board{}
	}
	for id, board := range state.Boards {
		if board == nil {
			delete(state.Boards, id)
			continue
		}
		if board.Tasks == nil {
			board.Tasks = map[string]*model.Task{}
		}
		columns := make([]*model.Column, 0, len(board.Columns))
		for _, col := range board.Columns {
			if col == nil {
				continue
			}
			if col.TaskIDs == nil {
				col.TaskIDs = []string{}
			}
			columns = append(columns, col)
		}
		board.Columns = columns
	}
}
