package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"taskboard/internal/logging"
	"taskboard/internal/model"
	"taskboard/internal/repository"
)

var (
	// ErrNotFound is returned when a board a task is added to does not exist
	ErrNotFound = errors.New("board not found")

	// ErrInconsistent is returned by Verify when a board breaks the ownership invariants
	ErrInconsistent = errors.New("board state is inconsistent")
)

// Store owns the canonical KanbanState. Every operation is a full
// read-modify-write of the persisted blob; operations are serialized so the
// store is the single writer of its repository.
type Store struct {
	repo  repository.StateRepository
	now   func() time.Time
	newID func() string
	log   *logrus.Entry

	mu sync.Mutex
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

func New(repo repository.StateRepository, opts ...Option) *Store {
	if repo == nil {
		panic("store.New: repository is nil")
	}
	s := &Store{
		repo:  repo,
		now:   time.Now,
		newID: func() string { return "task-" + uuid.NewString() },
		log:   logging.Logger.WithField("component", "store"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetState returns the durable state, creating and persisting the default
// state on first use.
func (s *Store) GetState(ctx context.Context) (*model.KanbanState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// SetState replaces the whole durable state. state is normalized in place
// first, so a later GetState returns a structurally equal value.
func (s *Store) SetState(ctx context.Context, state *model.KanbanState) error {
	if state == nil {
		return fmt.Errorf("%w: nil state", repository.ErrCorruptState)
	}
	repository.Normalize(state)

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, state)
}

// AddTask creates a task at the end of the column. It is the only operation
// that fails on a missing board. A missing column creates nothing.
func (s *Store) AddTask(ctx context.Context, boardID, columnID string, fields model.TaskFields) (*model.Task, Outcome, error) {
	var created *model.Task
	out, err := s.update(ctx, boardID, func(b *model.Board) Outcome {
		col := b.FindColumn(columnID)
		if col == nil {
			return ColumnMissing
		}
		now := s.now()
		task := &model.Task{
			ID:          s.newID(),
			Title:       fields.Title,
			Description: fields.Description,
			ColumnID:    columnID,
			Assignee:    fields.Assignee,
			Priority:    fields.Priority,
			DueDate:     fields.DueDate,
			Completed:   fields.Completed,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		b.Tasks[task.ID] = task
		col.TaskIDs = append(col.TaskIDs, task.ID)
		created = task.Clone()
		return Applied
	})
	if err != nil {
		return nil, out, err
	}
	if out == BoardMissing {
		return nil, out, fmt.Errorf("%w: %s", ErrNotFound, boardID)
	}
	s.log.WithFields(logrus.Fields{"board": boardID, "column": columnID, "outcome": out}).Debug("add task")
	return created, out, nil
}

// UpdateTask merges patch into the task and refreshes updatedAt.
func (s *Store) UpdateTask(ctx context.Context, boardID, taskID string, patch model.TaskPatch) (Outcome, error) {
	out, err := s.update(ctx, boardID, func(b *model.Board) Outcome {
		task, ok := b.Tasks[taskID]
		if !ok {
			return TaskMissing
		}
		patch.ApplyTo(task)
		task.Touch(s.now())
		return Applied
	})
	s.trace("update task", boardID, taskID, out, err)
	return out, err
}

// DeleteTask removes the task from the map and from every column that
// lists it, not only the one its columnId names.
func (s *Store) DeleteTask(ctx context.Context, boardID, taskID string) (Outcome, error) {
	out, err := s.update(ctx, boardID, func(b *model.Board) Outcome {
		if _, ok := b.Tasks[taskID]; !ok {
			return TaskMissing
		}
		delete(b.Tasks, taskID)
		for _, col := range b.Columns {
			col.TaskIDs = model.RemoveID(col.TaskIDs, taskID)
		}
		return Applied
	})
	s.trace("delete task", boardID, taskID, out, err)
	return out, err
}

// ToggleComplete flips the completed flag, treating unset as false.
func (s *Store) ToggleComplete(ctx context.Context, boardID, taskID string) (Outcome, error) {
	out, err := s.update(ctx, boardID, func(b *model.Board) Outcome {
		task, ok := b.Tasks[taskID]
		if !ok {
			return TaskMissing
		}
		done := !task.IsCompleted()
		task.Completed = &done
		task.Touch(s.now())
		return Applied
	})
	s.trace("toggle complete", boardID, taskID, out, err)
	return out, err
}

// MoveTask removes taskID from the source column and splices it into the
// destination at index, clamped to the destination length after removal.
//
// For a move within one column the caller must already have adjusted index
// for the shift the removal causes; the store does not re-derive it.
//
// If the task is absent from the task map the column lists are still
// rewritten and the outcome is Inconsistent.
func (s *Store) MoveTask(ctx context.Context, boardID, taskID, sourceColumnID, destColumnID string, index int) (Outcome, error) {
	out, err := s.update(ctx, boardID, func(b *model.Board) Outcome {
		src := b.FindColumn(sourceColumnID)
		dst := b.FindColumn(destColumnID)
		if src == nil || dst == nil {
			return ColumnMissing
		}

		src.TaskIDs = model.RemoveID(src.TaskIDs, taskID)
		dst.TaskIDs = model.InsertID(dst.TaskIDs, index, taskID)

		task, ok := b.Tasks[taskID]
		if !ok {
			return Inconsistent
		}
		task.ColumnID = destColumnID
		task.Touch(s.now())
		return Applied
	})
	s.log.WithFields(logrus.Fields{
		"board":   boardID,
		"task":    taskID,
		"from":    sourceColumnID,
		"to":      destColumnID,
		"index":   index,
		"outcome": out,
	}).Debug("move task")
	if err != nil {
		s.log.WithError(err).Error("move task failed")
	}
	return out, err
}

// Verify reports the board's invariant violations. A non-empty result comes
// with an error wrapping ErrInconsistent.
func (s *Store) Verify(ctx context.Context, boardID string) ([]model.Violation, error) {
	state, err := s.GetState(ctx)
	if err != nil {
		return nil, err
	}
	board, ok := state.Boards[boardID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, boardID)
	}
	violations := board.Check()
	if len(violations) > 0 {
		return violations, fmt.Errorf("%w: %s has %d violations", ErrInconsistent, boardID, len(violations))
	}
	return nil, nil
}

func (s *Store) update(ctx context.Context, boardID string, fn func(*model.Board) Outcome) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load(ctx)
	if err != nil {
		return Unchanged, err
	}
	board, ok := state.Boards[boardID]
	if !ok {
		return BoardMissing, nil
	}

	out := fn(board)
	if !out.Persisted() {
		return out, nil
	}
	if err := s.save(ctx, state); err != nil {
		return out, err
	}
	return out, nil
}

func (s *Store) load(ctx context.Context) (*model.KanbanState, error) {
	data, found, err := s.repo.Get(ctx)
	if err != nil {
		return nil, persistenceError(err)
	}
	if !found {
		state := model.DefaultState()
		if err := s.save(ctx, state); err != nil {
			return nil, err
		}
		s.log.Info("✅ Initialized default board state")
		return state, nil
	}
	state, err := repository.Decode(data)
	if err != nil {
		return nil, persistenceError(err)
	}
	return state, nil
}

func (s *Store) save(ctx context.Context, state *model.KanbanState) error {
	data, err := repository.Encode(state)
	if err != nil {
		return persistenceError(err)
	}
	if err := s.repo.Set(ctx, data); err != nil {
		return persistenceError(err)
	}
	return nil
}

func (s *Store) trace(op, boardID, taskID string, out Outcome, err error) {
	entry := s.log.WithFields(logrus.Fields{"board": boardID, "task": taskID, "outcome": out})
	if err != nil {
		entry.WithError(err).Error(op + " failed")
		return
	}
	entry.Debug(op)
}

func persistenceError(err error) error {
	if errors.Is(err, repository.ErrPersistence) {
		return err
	}
	return fmt.Errorf("%w: %w", repository.ErrPersistence, err)
}
