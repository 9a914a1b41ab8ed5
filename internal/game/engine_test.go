package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatch_OpeningState(t *testing.T) {
	s := NewMatch(DefaultRules()).Snapshot()

	assert.Equal(t, 9, s.GridSize)
	assert.Equal(t, Player1, s.CurrentPlayer)
	assert.Equal(t, Position{8, 4}, s.Players[Player1].Position)
	assert.Equal(t, Position{0, 4}, s.Players[Player2].Position)
	assert.Equal(t, DefaultPlayer1Color, s.Players[Player1].Color)
	assert.Equal(t, DefaultPlayer2Color, s.Players[Player2].Color)
	assert.Empty(t, s.Walls)
	assert.Equal(t, 10, s.WallsRemaining[Player1])
	assert.Equal(t, 10, s.WallsRemaining[Player2])
	assert.Equal(t, PhaseInProgress, s.Phase)
	assert.Equal(t, ActionMove, s.SelectedAction)
	assert.Nil(t, s.Winner)
}

func TestMovePlayer_AcceptedFlipsTurn(t *testing.T) {
	m := NewMatch(DefaultRules())
	require.NoError(t, m.SetSelectedAction(Player1, ActionWall))

	require.NoError(t, m.MovePlayer(Player1, Position{7, 4}))

	s := m.Snapshot()
	assert.Equal(t, Position{7, 4}, s.Players[Player1].Position)
	assert.Equal(t, Player2, s.CurrentPlayer)
	assert.Equal(t, ActionMove, s.SelectedAction)
}

func TestMovePlayer_Rejections(t *testing.T) {
	m := NewMatch(DefaultRules())
	before := m.Snapshot()

	assert.ErrorIs(t, m.MovePlayer(Player2, Position{1, 4}), ErrNotYourTurn)
	assert.ErrorIs(t, m.MovePlayer(Player1, Position{6, 4}), ErrIllegalMove)
	assert.ErrorIs(t, m.MovePlayer(Player1, Position{9, 4}), ErrIllegalMove)
	assert.ErrorIs(t, m.MovePlayer("player3", Position{7, 4}), ErrUnknownPlayer)

	assert.Equal(t, before, m.Snapshot(), "rejected moves leave no trace")
}

func TestMovePlayer_BlockedByWall(t *testing.T) {
	m := NewMatch(DefaultRules())
	require.NoError(t, m.PlaceWall(Player1, 4, 1, Horizontal))

	assert.ErrorIs(t, m.MovePlayer(Player2, Position{1, 4}), ErrIllegalMove)
	assert.NoError(t, m.MovePlayer(Player2, Position{0, 3}))
}

func TestMovePlayer_WinFinishesMatch(t *testing.T) {
	m := NewMatch(DefaultRules())
	m.state.Players[Player1] = Player{ID: Player1, Position: Position{1, 4}, Color: DefaultPlayer1Color}
	m.state.Players[Player2] = Player{ID: Player2, Position: Position{5, 0}, Color: DefaultPlayer2Color}

	require.NoError(t, m.MovePlayer(Player1, Position{0, 4}))

	s := m.Snapshot()
	assert.Equal(t, PhaseFinished, s.Phase)
	require.NotNil(t, s.Winner)
	assert.Equal(t, Player1, *s.Winner)
	assert.Equal(t, Player1, s.CurrentPlayer, "turn does not flip on a winning move")

	assert.ErrorIs(t, m.MovePlayer(Player1, Position{0, 3}), ErrGameFinished)
	assert.ErrorIs(t, m.PlaceWall(Player1, 0, 3, Horizontal), ErrGameFinished)
	assert.ErrorIs(t, m.SetSelectedAction(Player1, ActionWall), ErrGameFinished)
}

func TestPlaceWall_AcceptedFlipsTurnAndSpendsBudget(t *testing.T) {
	m := NewMatch(DefaultRules())
	require.NoError(t, m.SetSelectedAction(Player1, ActionWall))

	require.NoError(t, m.PlaceWall(Player1, 4, 5, Horizontal))

	s := m.Snapshot()
	require.Len(t, s.Walls, 1)
	assert.Equal(t, Wall{X: 4, Y: 5, Orientation: Horizontal, Color: DefaultPlayer1Color}, s.Walls[0])
	assert.Equal(t, 9, s.WallsRemaining[Player1])
	assert.Equal(t, 10, s.WallsRemaining[Player2])
	assert.Equal(t, Player2, s.CurrentPlayer)
	assert.Equal(t, ActionMove, s.SelectedAction)
}

func TestPlaceWall_Rejections(t *testing.T) {
	m := NewMatch(DefaultRules())
	require.NoError(t, m.PlaceWall(Player1, 2, 2, Vertical))
	before := m.Snapshot()

	assert.ErrorIs(t, m.PlaceWall(Player1, 3, 3, Vertical), ErrNotYourTurn)
	assert.ErrorIs(t, m.PlaceWall(Player2, 2, 2, Vertical), ErrIllegalWall)
	assert.ErrorIs(t, m.PlaceWall(Player2, 12, 2, Vertical), ErrIllegalWall)

	assert.Equal(t, before, m.Snapshot())
}

func TestPlaceWall_BudgetNeverNegative(t *testing.T) {
	r := DefaultRules()
	r.WallsPerPlayer = 2
	m := NewMatch(r)

	require.NoError(t, m.PlaceWall(Player1, 0, 2, Vertical))
	require.NoError(t, m.PlaceWall(Player2, 1, 2, Vertical))
	require.NoError(t, m.PlaceWall(Player1, 2, 2, Vertical))
	require.NoError(t, m.PlaceWall(Player2, 3, 2, Vertical))

	assert.ErrorIs(t, m.PlaceWall(Player1, 4, 2, Vertical), ErrNoWallsRemaining)
	s := m.Snapshot()
	assert.Equal(t, 0, s.WallsRemaining[Player1])
	assert.Equal(t, Player1, s.CurrentPlayer)
	assert.Len(t, s.Walls, 4)
}

func TestSetSelectedAction_DoesNotFlipTurn(t *testing.T) {
	m := NewMatch(DefaultRules())

	require.NoError(t, m.SetSelectedAction(Player1, ActionWall))
	s := m.Snapshot()
	assert.Equal(t, ActionWall, s.SelectedAction)
	assert.Equal(t, Player1, s.CurrentPlayer)

	assert.ErrorIs(t, m.SetSelectedAction(Player2, ActionWall), ErrNotYourTurn)
	assert.ErrorIs(t, m.SetSelectedAction(Player1, "jump"), ErrUnknownAction)
}

func TestReset_RestoresOpeningFromAnyState(t *testing.T) {
	m := NewMatch(DefaultRules())
	require.NoError(t, m.PlaceWall(Player1, 4, 5, Horizontal))
	require.NoError(t, m.MovePlayer(Player2, Position{1, 4}))
	m.finish(Player2)

	m.Reset()

	assert.Equal(t, NewState(DefaultRules()), m.Snapshot())
}

func TestClaimWin_RecomputedOnServer(t *testing.T) {
	m := NewMatch(DefaultRules())
	assert.ErrorIs(t, m.ClaimWin(Player1), ErrWinNotReached)
	assert.ErrorIs(t, m.ClaimWin("nobody"), ErrUnknownPlayer)
	assert.False(t, m.Finished())

	m.state.Players[Player2] = Player{ID: Player2, Position: Position{8, 0}, Color: DefaultPlayer2Color}
	assert.ErrorIs(t, m.ClaimWin(Player1), ErrWinNotReached)
	require.NoError(t, m.ClaimWin(Player2))
	assert.True(t, m.Finished())

	w, ok := m.Winner()
	require.True(t, ok)
	assert.Equal(t, Player2, w)
	assert.NoError(t, m.ClaimWin(Player2), "repeat claims for the recorded winner are accepted")
	assert.ErrorIs(t, m.ClaimWin(Player1), ErrWinNotReached)
}

func TestSnapshot_IsDetached(t *testing.T) {
	m := NewMatch(DefaultRules())
	s := m.Snapshot()
	s.Players[Player1] = Player{ID: Player1, Position: Position{0, 0}}
	s.WallsRemaining[Player1] = 0
	s.Walls = append(s.Walls, Wall{X: 1, Y: 1, Orientation: Vertical})

	fresh := m.Snapshot()
	assert.Equal(t, Position{8, 4}, fresh.Players[Player1].Position)
	assert.Equal(t, 10, fresh.WallsRemaining[Player1])
	assert.Empty(t, fresh.Walls)
}
