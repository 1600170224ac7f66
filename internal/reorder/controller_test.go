package reorder_test

import (
	"context"
	"errors"
	"testing"

	"taskboard/internal/model"
	"taskboard/internal/reorder"
	"taskboard/internal/repository"
	"taskboard/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// setupController persists fixture() and returns a loaded controller.
func setupController(t *testing.T) (*reorder.Controller, *store.Store) {
	t.Helper()
	s := store.New(repository.NewMemoryRepository())
	state := model.DefaultState()
	state.Boards[model.DefaultBoardID] = fixture()
	require.NoError(t, s.SetState(context.Background(), state))

	c := reorder.New(s)
	require.NoError(t, c.Load(context.Background()))
	return c, s
}

func durableColumn(t *testing.T, s *store.Store, columnID string) []string {
	t.Helper()
	state, err := s.GetState(context.Background())
	require.NoError(t, err)
	return state.Active().FindColumn(columnID).TaskIDs
}

func TestController_StartRequiresKnownTask(t *testing.T) {
	c, _ := setupController(t)

	assert.False(t, c.Start("ghost"))
	assert.Equal(t, reorder.Idle, c.View().Phase)

	assert.True(t, c.Start("a"))
	view := c.View()
	assert.Equal(t, reorder.Dragging, view.Phase)
	require.NotNil(t, view.Active)
	assert.Equal(t, "a", view.Active.ID)
}

func TestController_HoverUpdatesPreviewOnly(t *testing.T) {
	c, s := setupController(t)
	require.True(t, c.Start("a"))

	assert.True(t, c.Hover("d"))

	view := c.View()
	assert.Equal(t, []string{"b", "c"}, view.Board.FindColumn("todo").TaskIDs)
	assert.Equal(t, []string{"a", "d"}, view.Board.FindColumn("done").TaskIDs)
	assert.Equal(t, "done", view.Active.ColumnID)

	assert.Equal(t, []string{"a", "b", "c"}, durableColumn(t, s, "todo"))
	assert.Equal(t, []string{"d"}, durableColumn(t, s, "done"))
}

func TestController_HoverWhileIdleIsIgnored(t *testing.T) {
	c, _ := setupController(t)
	assert.False(t, c.Hover("done"))
}

func TestController_EndSameColumnDown(t *testing.T) {
	c, s := setupController(t)
	require.True(t, c.Start("a"))
	c.Hover("c")

	res, err := c.End(context.Background(), "c")
	require.NoError(t, err)

	assert.Equal(t, reorder.DecisionMove, res.Decision)
	assert.Equal(t, store.Applied, res.Outcome)
	require.NotNil(t, res.Drop)
	assert.Equal(t, 1, res.Drop.Index)
	assert.Equal(t, []string{"b", "a", "c"}, durableColumn(t, s, "todo"))

	view := c.View()
	assert.Equal(t, reorder.Idle, view.Phase)
	assert.Nil(t, view.Active)
	assert.Equal(t, []string{"b", "a", "c"}, view.Board.FindColumn("todo").TaskIDs)
}

func TestController_EndSameColumnUp(t *testing.T) {
	c, s := setupController(t)
	require.True(t, c.Start("b"))

	_, err := c.End(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, durableColumn(t, s, "todo"))
}

func TestController_EndAcrossColumns(t *testing.T) {
	c, s := setupController(t)
	require.True(t, c.Start("a"))
	c.Hover("done")
	c.Hover("d")

	res, err := c.End(context.Background(), "d")
	require.NoError(t, err)
	assert.Equal(t, reorder.DecisionMove, res.Decision)

	assert.Equal(t, []string{"b", "c"}, durableColumn(t, s, "todo"))
	assert.Equal(t, []string{"a", "d"}, durableColumn(t, s, "done"))

	state, err := s.GetState(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "done", state.Active().Tasks["a"].ColumnID)
	assert.Empty(t, state.Active().Check())
	assert.Equal(t, state.Active(), c.View().Board)
}

func TestController_EndOntoItselfDoesNotCommit(t *testing.T) {
	repo := new(MockBoardStore)
	state := model.DefaultState()
	state.Boards[model.DefaultBoardID] = fixture()
	repo.On("GetState", mock.Anything).Return(state, nil)

	c := reorder.New(repo)
	require.NoError(t, c.Load(context.Background()))
	require.True(t, c.Start("b"))

	res, err := c.End(context.Background(), "b")
	require.NoError(t, err)
	assert.Equal(t, reorder.DecisionStay, res.Decision)
	assert.Nil(t, res.Drop)
	repo.AssertNotCalled(t, "MoveTask", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestController_EndWithoutTargetReverts(t *testing.T) {
	c, s := setupController(t)
	require.True(t, c.Start("a"))
	c.Hover("review")
	assert.Equal(t, []string{"a"}, c.View().Board.FindColumn("review").TaskIDs)

	res, err := c.End(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, reorder.DecisionRevert, res.Decision)

	view := c.View()
	assert.Equal(t, reorder.Idle, view.Phase)
	assert.Empty(t, view.Board.FindColumn("review").TaskIDs)
	assert.Equal(t, []string{"a", "b", "c"}, durableColumn(t, s, "todo"))
}

func TestController_Cancel(t *testing.T) {
	c, _ := setupController(t)

	assert.True(t, errors.Is(c.Cancel(context.Background()), reorder.ErrNotDragging))

	require.True(t, c.Start("c"))
	c.Hover("done")
	require.NoError(t, c.Cancel(context.Background()))

	view := c.View()
	assert.Equal(t, reorder.Idle, view.Phase)
	assert.Equal(t, []string{"d"}, view.Board.FindColumn("done").TaskIDs)
}

func TestController_EndWhileIdle(t *testing.T) {
	c, _ := setupController(t)
	_, err := c.End(context.Background(), "a")
	assert.True(t, errors.Is(err, reorder.ErrNotDragging))
}

func TestController_StartWithoutLoad(t *testing.T) {
	c := reorder.New(store.New(repository.NewMemoryRepository()))
	assert.False(t, c.Start("a"))
	assert.Nil(t, c.View().Board)
}

func TestController_LoadDuringDragAbandonsGesture(t *testing.T) {
	c, s := setupController(t)
	require.True(t, c.Start("a"))
	require.True(t, c.Hover("done"))

	require.NoError(t, c.Load(context.Background()))

	var view reorder.View
	assert.NotPanics(t, func() { view = c.View() })
	assert.Equal(t, reorder.Idle, view.Phase)
	assert.Nil(t, view.Active)
	assert.Equal(t, []string{"a", "b", "c"}, view.Board.FindColumn("todo").TaskIDs)

	assert.False(t, c.Hover("d"))
	_, err := c.End(context.Background(), "d")
	assert.True(t, errors.Is(err, reorder.ErrNotDragging))
	assert.Equal(t, []string{"d"}, durableColumn(t, s, "done"))
}

func TestController_FailedRestartLeavesIdle(t *testing.T) {
	c, _ := setupController(t)
	require.True(t, c.Start("a"))

	require.NoError(t, c.Load(context.Background()))
	assert.False(t, c.Start("ghost"))

	assert.NotPanics(t, func() { c.View() })
	assert.Equal(t, reorder.Idle, c.View().Phase)

	// a fresh gesture works after the failed one
	require.True(t, c.Start("b"))
	assert.Equal(t, "b", c.View().Active.ID)
}

// MockBoardStore is a testify mock of reorder.BoardStore
type MockBoardStore struct {
	mock.Mock
}

func (m *MockBoardStore) GetState(ctx context.Context) (*model.KanbanState, error) {
	args := m.Called(ctx)
	state, _ := args.Get(0).(*model.KanbanState)
	return state.Clone(), args.Error(1)
}

func (m *MockBoardStore) MoveTask(ctx context.Context, boardID, taskID, sourceColumnID, destColumnID string, index int) (store.Outcome, error) {
	args := m.Called(ctx, boardID, taskID, sourceColumnID, destColumnID, index)
	return args.Get(0).(store.Outcome), args.Error(1)
}

func TestController_CommitFailurePropagates(t *testing.T) {
	repo := new(MockBoardStore)
	state := model.DefaultState()
	state.Boards[model.DefaultBoardID] = fixture()
	repo.On("GetState", mock.Anything).Return(state, nil)
	repo.On("MoveTask", mock.Anything, "default", "a", "todo", "done", 1).
		Return(store.Applied, repository.ErrPersistence)

	c := reorder.New(repo)
	require.NoError(t, c.Load(context.Background()))
	require.True(t, c.Start("a"))
	c.Hover("done")

	res, err := c.End(context.Background(), "done")
	assert.True(t, errors.Is(err, repository.ErrPersistence))
	assert.Equal(t, reorder.DecisionMove, res.Decision)

	view := c.View()
	assert.Equal(t, reorder.Idle, view.Phase)
	assert.Equal(t, []string{"d"}, view.Board.FindColumn("done").TaskIDs)
	repo.AssertExpectations(t)
}

func TestController_LoadWithoutActiveBoard(t *testing.T) {
	repo := new(MockBoardStore)
	state := model.DefaultState()
	state.ActiveBoard = nil
	repo.On("GetState", mock.Anything).Return(state, nil)

	c := reorder.New(repo)
	assert.True(t, errors.Is(c.Load(context.Background()), reorder.ErrNoBoard))
	assert.False(t, c.Start("a"))
}
