package model

// KanbanState is the whole persisted document. ActiveBoard is a weak
// reference: it names a key of Boards or is nil.
type KanbanState struct {
	Boards      map[string]*Board `json:"boards"`
	ActiveBoard *string           `json:"activeBoard"`
}

// Active resolves ActiveBoard, returning nil when unset or dangling.
func (s *KanbanState) Active() *Board {
	if s == nil || s.ActiveBoard == nil {
		return nil
	}
	return s.Boards[*s.ActiveBoard]
}

func (s *KanbanState) Clone() *KanbanState {
	if s == nil {
		return nil
	}
	cp := &KanbanState{Boards: make(map[string]*Board, len(s.Boards))}
	for id, b := range s.Boards {
		cp.Boards[id] = b.Clone()
	}
	cp.ActiveBoard = cloneString(s.ActiveBoard)
	return cp
}

const DefaultBoardID = "default"

// DefaultState is the state constructed on first use: one board with the
// four fixed workflow columns and no tasks.
func DefaultState() *KanbanState {
	board := &Board{
		ID:    DefaultBoardID,
		Title: "Team Board",
		Columns: []*Column{
			{ID: "todo", Title: "To Do", Color: "#6366f1", TaskIDs: []string{}},
			{ID: "in-progress", Title: "In Progress", Color: "#f59e0b", TaskIDs: []string{}},
			{ID: "review", Title: "Review", Color: "#8b5cf6", TaskIDs: []string{}},
			{ID: "done", Title: "Done", Color: "#10b981", TaskIDs: []string{}},
		},
		Tasks: map[string]*Task{},
	}
	active := DefaultBoardID
	return &KanbanState{
		Boards:      map[string]*Board{board.ID: board},
		ActiveBoard: &active,
	}
}
