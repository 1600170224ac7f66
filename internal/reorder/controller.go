package reorder

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"taskboard/internal/logging"
	"taskboard/internal/model"
	"taskboard/internal/store"
)

var (
	ErrNotDragging = errors.New("no gesture in progress")
	ErrNoBoard     = errors.New("no active board")
)

// BoardStore is the part of the board state store the controller commits through.
type BoardStore interface {
	GetState(ctx context.Context) (*model.KanbanState, error)
	MoveTask(ctx context.Context, boardID, taskID, sourceColumnID, destColumnID string, index int) (store.Outcome, error)
}

type Phase int

const (
	Idle Phase = iota
	Dragging
)

func (p Phase) String() string {
	if p == Dragging {
		return "dragging"
	}
	return "idle"
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// View is what the presentation layer renders: the preview while a gesture
// is in progress, the committed board otherwise.
type View struct {
	Phase  Phase        `json:"phase"`
	Board  *model.Board `json:"board"`
	Active *model.Task  `json:"active,omitempty"`
}

// Result describes how a gesture ended.
type Result struct {
	Decision Decision      `json:"decision"`
	Drop     *Drop         `json:"drop,omitempty"`
	Outcome  store.Outcome `json:"outcome"`
}

// Controller tracks one reorder gesture on the active board. The committed
// snapshot only changes on Load; hover events only recompute the preview.
type Controller struct {
	store BoardStore
	log   *logrus.Entry

	mu        sync.Mutex
	phase     Phase
	activeID  string
	committed *model.Board
	preview   *model.Board
}

func New(s BoardStore) *Controller {
	return &Controller{
		store: s,
		log:   logging.Logger.WithField("component", "reorder"),
	}
}

// Load replaces the committed snapshot with the durable active board. A
// gesture in progress is abandoned: its preview was derived from the old
// snapshot.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase == Dragging {
		c.log.WithField("task", c.activeID).Debug("gesture abandoned by reload")
	}
	c.phase = Idle
	c.activeID = ""
	return c.reload(ctx)
}

// Start begins a gesture if taskID is a task of the displayed board.
func (c *Controller) Start(taskID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.committed == nil {
		return false
	}
	if _, ok := c.committed.Tasks[taskID]; !ok {
		return false
	}
	c.phase = Dragging
	c.activeID = taskID
	c.preview = c.committed.Clone()
	c.log.WithField("task", taskID).Debug("gesture start")
	return true
}

// Hover recomputes the preview for the current target. It never touches
// durable state.
func (c *Controller) Hover(targetID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != Dragging {
		return false
	}
	c.preview = Preview(c.committed, c.activeID, targetID)
	return true
}

// End finishes the gesture. Without a valid target the preview is
// discarded and durable state reloaded; otherwise the planned move is
// committed and the authoritative result reloaded.
func (c *Controller) End(ctx context.Context, targetID string) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != Dragging {
		return Result{}, ErrNotDragging
	}
	activeID := c.activeID
	committed := c.committed
	c.phase = Idle
	c.activeID = ""

	drop, decision := PlanDrop(committed, activeID, targetID)
	entry := c.log.WithFields(logrus.Fields{"task": activeID, "target": targetID, "decision": decision})

	res := Result{Decision: decision, Outcome: store.Unchanged}
	if decision == DecisionMove {
		res.Drop = &drop
		out, err := c.store.MoveTask(ctx, committed.ID, drop.TaskID, drop.SourceColumnID, drop.DestColumnID, drop.Index)
		res.Outcome = out
		if err != nil {
			entry.WithError(err).Error("❌ Failed to commit move")
			// the preview is stale either way
			if rerr := c.reload(ctx); rerr != nil {
				entry.WithError(rerr).Warn("reload after failed commit")
			}
			return res, err
		}
	}
	entry.WithField("outcome", res.Outcome).Debug("gesture end")

	if err := c.reload(ctx); err != nil {
		return res, err
	}
	return res, nil
}

// Cancel abandons the gesture and reverts to durable state.
func (c *Controller) Cancel(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != Dragging {
		return ErrNotDragging
	}
	c.phase = Idle
	c.activeID = ""
	return c.reload(ctx)
}

// View returns a copy safe to hand to the renderer.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase == Dragging && c.preview != nil {
		return View{
			Phase:  Dragging,
			Board:  c.preview.Clone(),
			Active: c.preview.Tasks[c.activeID].Clone(),
		}
	}
	return View{Phase: Idle, Board: c.committed.Clone()}
}

func (c *Controller) reload(ctx context.Context) error {
	c.preview = nil
	state, err := c.store.GetState(ctx)
	if err != nil {
		return err
	}
	board := state.Active()
	if board == nil {
		c.committed = nil
		return ErrNoBoard
	}
	c.committed = board
	return nil
}
