package model

import (
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a unit of work owned by exactly one column of its board.
// Optional fields are pointers so that absence survives a persistence round trip.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	ColumnID    string    `json:"columnId"`
	Assignee    *string   `json:"assignee,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
	DueDate     *string   `json:"dueDate,omitempty"`
	Completed   *bool     `json:"completed,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// IsCompleted treats an unset flag as false.
func (t *Task) IsCompleted() bool {
	return t.Completed != nil && *t.Completed
}

// Touch refreshes UpdatedAt without ever moving it backwards.
func (t *Task) Touch(now time.Time) {
	if now.Before(t.UpdatedAt) {
		return
	}
	t.UpdatedAt = now
}

func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	c := *t
	c.Description = cloneString(t.Description)
	c.Assignee = cloneString(t.Assignee)
	c.DueDate = cloneString(t.DueDate)
	if t.Priority != nil {
		p := *t.Priority
		c.Priority = &p
	}
	if t.Completed != nil {
		done := *t.Completed
		c.Completed = &done
	}
	return &c
}

// TaskFields carries the caller-supplied fields of a new task.
type TaskFields struct {
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Assignee    *string   `json:"assignee,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
	DueDate     *string   `json:"dueDate,omitempty"`
	Completed   *bool     `json:"completed,omitempty"`
}

// TaskPatch is a partial update. A nil field is left untouched; an empty
// string clears an optional field. Identity and column ownership are not
// part of a patch: ownership only changes through a move.
type TaskPatch struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Assignee    *string   `json:"assignee,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
	DueDate     *string   `json:"dueDate,omitempty"`
	Completed   *bool     `json:"completed,omitempty"`
}

func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Assignee == nil &&
		p.Priority == nil && p.DueDate == nil && p.Completed == nil
}

// ApplyTo merges the patch into t. It does not touch timestamps.
func (p TaskPatch) ApplyTo(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = optional(*p.Description)
	}
	if p.Assignee != nil {
		t.Assignee = optional(*p.Assignee)
	}
	if p.DueDate != nil {
		t.DueDate = optional(*p.DueDate)
	}
	if p.Priority != nil {
		if *p.Priority == "" {
			t.Priority = nil
		} else {
			pr := *p.Priority
			t.Priority = &pr
		}
	}
	if p.Completed != nil {
		done := *p.Completed
		t.Completed = &done
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
