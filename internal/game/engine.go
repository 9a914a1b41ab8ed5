package game

import "errors"

var (
	ErrGameFinished     = errors.New("game is finished")
	ErrNotYourTurn      = errors.New("not your turn")
	ErrIllegalMove      = errors.New("illegal move")
	ErrIllegalWall      = errors.New("illegal wall placement")
	ErrNoWallsRemaining = errors.New("no walls remaining")
	ErrUnknownAction    = errors.New("unknown action")
	ErrUnknownPlayer    = errors.New("unknown player")
	ErrWinNotReached    = errors.New("claimed winner has not reached the goal row")
)

const (
	DefaultGridSize       = 9
	DefaultWallsPerPlayer = 10
	DefaultPlayer1Color   = "#3b82f6"
	DefaultPlayer2Color   = "#ef4444"
)

type Rules struct {
	GridSize       int
	WallsPerPlayer int
	Colors         map[PlayerID]string
}

func DefaultRules() Rules {
	return Rules{
		GridSize:       DefaultGridSize,
		WallsPerPlayer: DefaultWallsPerPlayer,
		Colors: map[PlayerID]string{
			Player1: DefaultPlayer1Color,
			Player2: DefaultPlayer2Color,
		},
	}
}

func (r Rules) color(id PlayerID) string {
	if c, ok := r.Colors[id]; ok && c != "" {
		return c
	}
	if id == Player1 {
		return DefaultPlayer1Color
	}
	return DefaultPlayer2Color
}

// NewState builds the opening position: player1 on the bottom row, player2 on
// the top row, both in the middle column.
func NewState(r Rules) MatchState {
	n := r.GridSize
	if n <= 0 {
		n = DefaultGridSize
	}
	return MatchState{
		GridSize:      n,
		CurrentPlayer: Player1,
		Players: Players{
			Player1: {ID: Player1, Position: Position{Row: n - 1, Col: n / 2}, Color: r.color(Player1)},
			Player2: {ID: Player2, Position: Position{Row: 0, Col: n / 2}, Color: r.color(Player2)},
		},
		Walls: []Wall{},
		WallsRemaining: map[PlayerID]int{
			Player1: r.WallsPerPlayer,
			Player2: r.WallsPerPlayer,
		},
		Phase:          PhaseInProgress,
		SelectedAction: ActionMove,
	}
}

// Match owns one game's canonical state. It is not safe for concurrent use;
// callers serialize access per room.
type Match struct {
	rules Rules
	state MatchState
}

func NewMatch(r Rules) *Match {
	return &Match{rules: r, state: NewState(r)}
}

func (m *Match) Snapshot() MatchState {
	return m.state.Clone()
}

func (m *Match) Finished() bool {
	return m.state.Phase == PhaseFinished
}

func (m *Match) Winner() (PlayerID, bool) {
	if m.state.Winner == nil {
		return "", false
	}
	return *m.state.Winner, true
}

func (m *Match) guardTurn(actor PlayerID) error {
	if !actor.Valid() {
		return ErrUnknownPlayer
	}
	if m.state.Phase != PhaseInProgress {
		return ErrGameFinished
	}
	if actor != m.state.CurrentPlayer {
		return ErrNotYourTurn
	}
	return nil
}

func (m *Match) endTurn() {
	m.state.CurrentPlayer = m.state.CurrentPlayer.Opponent()
	m.state.SelectedAction = ActionMove
}

func (m *Match) finish(winner PlayerID) {
	m.state.Phase = PhaseFinished
	m.state.Winner = &winner
}

func (m *Match) MovePlayer(actor PlayerID, target Position) error {
	if err := m.guardTurn(actor); err != nil {
		return err
	}

	p := m.state.Players[actor]
	if !IsValidMove(p.Position, target, m.state.Walls, m.state.GridSize) {
		return ErrIllegalMove
	}

	p.Position = target
	m.state.Players[actor] = p

	if winner, ok := CheckWinCondition(m.state.Players, m.state.GridSize); ok {
		m.finish(winner)
		return nil
	}
	m.endTurn()
	return nil
}

func (m *Match) PlaceWall(actor PlayerID, x, y int, o Orientation) error {
	if err := m.guardTurn(actor); err != nil {
		return err
	}
	if m.state.WallsRemaining[actor] <= 0 {
		return ErrNoWallsRemaining
	}

	w := Wall{X: x, Y: y, Orientation: o, Color: m.state.Players[actor].Color}
	if !IsValidWallPlacement(m.state.Walls, w, m.state.Players, m.state.GridSize) {
		return ErrIllegalWall
	}

	m.state.Walls = append(m.state.Walls, w)
	m.state.WallsRemaining[actor]--
	m.endTurn()
	return nil
}

func (m *Match) SetSelectedAction(actor PlayerID, a Action) error {
	if !a.Valid() {
		return ErrUnknownAction
	}
	if err := m.guardTurn(actor); err != nil {
		return err
	}
	m.state.SelectedAction = a
	return nil
}

// Reset discards the current game and starts over from the opening position.
func (m *Match) Reset() {
	m.state = NewState(m.rules)
}

// ClaimWin honors a client-reported win only when the board agrees. Claims
// for a match that already ended with the same winner are accepted again so
// the game-over notice can be re-sent.
func (m *Match) ClaimWin(claimed PlayerID) error {
	if !claimed.Valid() {
		return ErrUnknownPlayer
	}
	if w, ok := m.Winner(); ok {
		if w != claimed {
			return ErrWinNotReached
		}
		return nil
	}

	winner, ok := CheckWinCondition(m.state.Players, m.state.GridSize)
	if !ok || winner != claimed {
		return ErrWinNotReached
	}
	m.finish(winner)
	return nil
}
